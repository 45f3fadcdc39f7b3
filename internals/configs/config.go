package configs

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config dibaca sekali dari ENV (setelah .env dimuat bila ada)
type Config struct {
	Port string `env:"PORT" envDefault:"3000"`

	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBUser      string `env:"DB_USER" envDefault:"postgres"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME" envDefault:"postgres"`
	DBSSLMode   string `env:"DB_SSLMODE" envDefault:"require"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"false"`

	JWTSecret        string        `env:"JWT_SECRET"`
	JWTRefreshSecret string        `env:"JWT_REFRESH_SECRET"`
	AccessTokenTTL   time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"24h"`
	RefreshTokenTTL  time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"168h"`

	CorsOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:3000"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`

	ImportMaxRows    int `env:"IMPORT_MAX_ROWS" envDefault:"1000"`
	StaleAccountDays int `env:"STALE_ACCOUNT_DAYS" envDefault:"90"`

	OpenAIKey     string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
}

var (
	App              Config
	JWTSecret        string
	JWTRefreshSecret string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			Log.Warn("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			Log.Info("✅ .env file berhasil dimuat!")
		}
	} else {
		Log.Info("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		Log.Fatalf("❌ Gagal membaca konfigurasi ENV: %v", err)
	}
	App = cfg
	JWTSecret = strings.TrimSpace(cfg.JWTSecret)
	JWTRefreshSecret = strings.TrimSpace(cfg.JWTRefreshSecret)

	SetLogLevel(cfg.LogLevel)

	if JWTSecret == "" {
		Log.Error("❌ JWT_SECRET belum diset!")
	} else {
		Log.Info("✅ JWT_SECRET berhasil dimuat.")
	}
	if JWTRefreshSecret == "" {
		Log.Error("❌ JWT_REFRESH_SECRET belum diset!")
	} else {
		Log.Info("✅ JWT_REFRESH_SECRET berhasil dimuat.")
	}
	if cfg.OpenAIKey == "" {
		Log.Info("ℹ️ OPENAI_API_KEY kosong, ringkasan dashboard memakai mode lokal")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
