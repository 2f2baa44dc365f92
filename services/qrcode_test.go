package services

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWelcomeQRCodeURL(t *testing.T) {
	qr := NewWelcomeQRCode("https://seuapp.com/welcome", 0)
	assert.Equal(t, "https://seuapp.com/welcome/MESA-7", qr.URL("MESA-7"))
	assert.Equal(t, 256, qr.Size)
}

func TestWelcomeQRCodeEncodeIsBase64PNG(t *testing.T) {
	qr := NewWelcomeQRCode("https://seuapp.com/welcome", 128)

	payload, err := qr.Encode("MESA-1")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestWelcomeQRCodeEncodeIsDeterministic(t *testing.T) {
	qr := NewWelcomeQRCode("https://seuapp.com/welcome", 128)

	first, err := qr.Encode("MESA-2")
	require.NoError(t, err)
	second, err := qr.Encode("MESA-2")
	require.NoError(t, err)
	other, err := qr.Encode("MESA-3")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}
