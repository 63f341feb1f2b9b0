package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	API      APIConfig
	Language string
	Log      LogConfig
}

// APIConfig holds the outbound transport configuration. BaseURL and Token
// are validated for presence by the transport, not here: the portal must
// still start and surface the configuration error through the normal
// error display.
type APIConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// A missing .env is fine: configuration may come entirely from the
	// environment, and missing endpoint/token surface later through the
	// transport's config errors.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.API = APIConfig{
		BaseURL: strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		Token:   v.GetString("API_TOKEN"),
		Timeout: parseDuration(v.GetString("UPLOAD_TIMEOUT"), 120*time.Second),
	}

	cfg.Language = normalizeLanguage(v.GetString("LANGUAGE"))

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("API_BASE_URL", "")
	v.SetDefault("API_TOKEN", "")
	v.SetDefault("UPLOAD_TIMEOUT", "120s")

	v.SetDefault("LANGUAGE", "de")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// TokenExpiry inspects API_TOKEN without verifying its signature. Backends
// deploy both opaque tokens and JWTs; for the latter an expired token can be
// reported at startup instead of as a 401 after a long upload. Returns false
// for opaque tokens and JWTs without an exp claim.
func (c *Config) TokenExpiry() (time.Time, bool) {
	if c == nil || strings.Count(c.API.Token, ".") != 2 {
		return time.Time{}, false
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(c.API.Token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func normalizeLanguage(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "en":
		return "en"
	default:
		return "de"
	}
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}
