package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every runtime setting. Values come from the environment
// (optionally seeded from .env by main) with the defaults below.
type Config struct {
	Port    string
	GinMode string

	DBDriver     string // "mysql" or "sqlite"
	DBUser       string
	DBPassword   string
	DBHost       string
	DBPort       string
	DBName       string
	DBSQLitePath string

	WelcomeBaseURL string
	QRCodeSize     int

	JWTSecret         string
	JWTTTL            time.Duration
	AdminUsername     string
	AdminPasswordHash string

	CORSAllowedOrigin string

	AMQPURL   string
	AMQPQueue string

	RateLimitRPS   float64
	RateLimitBurst int

	LogLevel string
}

// Load reads the configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:    getenv("PORT", "8080"),
		GinMode: os.Getenv("GIN_MODE"),

		DBDriver:     strings.ToLower(getenv("DB_DRIVER", "mysql")),
		DBUser:       getenv("DB_USER", "root"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBHost:       getenv("DB_HOST", "localhost"),
		DBPort:       getenv("DB_PORT", "3306"),
		DBName:       getenv("DB_NAME", "bar"),
		DBSQLitePath: getenv("DB_SQLITE_PATH", "bar.db"),

		WelcomeBaseURL: strings.TrimRight(getenv("WELCOME_BASE_URL", "https://seuapp.com/welcome"), "/"),
		QRCodeSize:     atoi(getenv("QRCODE_SIZE", "256"), 256),

		// Development fallback; production deployments set JWT_SECRET.
		JWTSecret:         getenv("JWT_SECRET", "BarApiDevSecret"),
		JWTTTL:            parseDur(getenv("JWT_TTL", "24h"), 24*time.Hour),
		AdminUsername:     getenv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		CORSAllowedOrigin: getenv("CORS_ALLOWED_ORIGIN", "*"),

		AMQPURL:   os.Getenv("AMQP_URL"),
		AMQPQueue: getenv("AMQP_QUEUE", "bar.orders"),

		RateLimitRPS:   parseFloat(getenv("RATE_LIMIT_RPS", "5"), 5),
		RateLimitBurst: atoi(getenv("RATE_LIMIT_BURST", "10"), 10),

		LogLevel: getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func parseFloat(s string, def float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return def
	}
	return f
}

func parseDur(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
