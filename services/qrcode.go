package services

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// WelcomeQRCode encodes the welcome URL of a table as a base64 PNG.
type WelcomeQRCode struct {
	BaseURL string
	Size    int
}

func NewWelcomeQRCode(baseURL string, size int) *WelcomeQRCode {
	if size <= 0 {
		size = 256
	}
	return &WelcomeQRCode{BaseURL: baseURL, Size: size}
}

// URL is the address a scan of the table's code opens.
func (q *WelcomeQRCode) URL(identifier string) string {
	return fmt.Sprintf("%s/%s", q.BaseURL, identifier)
}

func (q *WelcomeQRCode) Encode(identifier string) (string, error) {
	png, err := qrcode.Encode(q.URL(identifier), qrcode.Medium, q.Size)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
