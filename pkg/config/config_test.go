package config

import (
	"encoding/base64"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// chdirTemp moves into an empty directory so a developer .env file cannot
// leak into the assertions.
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, EnvDevelopment, cfg.Env)
	require.Empty(t, cfg.API.BaseURL)
	require.Empty(t, cfg.API.Token)
	require.Equal(t, 120*time.Second, cfg.API.Timeout)
	require.Equal(t, "de", cfg.Language)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("API_BASE_URL", "https://portal.example/api/")
	t.Setenv("API_TOKEN", "secret-token")
	t.Setenv("UPLOAD_TIMEOUT", "30s")
	t.Setenv("LANGUAGE", "EN")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	// Trailing slash is stripped so path joining stays predictable.
	require.Equal(t, "https://portal.example/api", cfg.API.BaseURL)
	require.Equal(t, "secret-token", cfg.API.Token)
	require.Equal(t, 30*time.Second, cfg.API.Timeout)
	require.Equal(t, "en", cfg.Language)
	require.Equal(t, "debug", cfg.Log.Level)
}

// Load must succeed with no .env file at all; an empty endpoint and token
// are reported later by the transport, never at startup.
func TestLoadWithoutEnvFile(t *testing.T) {
	chdirTemp(t)
	require.NoFileExists(t, ".env")

	cfg, err := Load()
	require.NoError(t, err)
	require.Empty(t, cfg.API.BaseURL)
	require.Empty(t, cfg.API.Token)
}

func TestLoadFromEnvFile(t *testing.T) {
	chdirTemp(t)
	content := "API_BASE_URL=https://portal.example/api\nAPI_TOKEN=file-token\nLANGUAGE=en\n"
	require.NoError(t, os.WriteFile(".env", []byte(content), 0o600))
	// godotenv exports the file's entries into the process environment.
	t.Cleanup(func() {
		for _, key := range []string{"API_BASE_URL", "API_TOKEN", "LANGUAGE"} {
			os.Unsetenv(key)
		}
	})

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://portal.example/api", cfg.API.BaseURL)
	require.Equal(t, "file-token", cfg.API.Token)
	require.Equal(t, "en", cfg.Language)
}

func TestLoadInvalidTimeoutFallsBack(t *testing.T) {
	chdirTemp(t)
	t.Setenv("UPLOAD_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 120*time.Second, cfg.API.Timeout)
}

func TestNormalizeLanguage(t *testing.T) {
	require.Equal(t, "en", normalizeLanguage("en"))
	require.Equal(t, "en", normalizeLanguage(" EN "))
	require.Equal(t, "de", normalizeLanguage("de"))
	require.Equal(t, "de", normalizeLanguage("fr"))
	require.Equal(t, "de", normalizeLanguage(""))
}

func unsignedJWT(t *testing.T, claims map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + "."
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	cfg := &Config{API: APIConfig{Token: unsignedJWT(t, map[string]any{"exp": exp})}}

	got, ok := cfg.TokenExpiry()
	require.True(t, ok)
	require.Equal(t, exp, got.Unix())
}

func TestTokenExpiryOpaqueToken(t *testing.T) {
	cfg := &Config{API: APIConfig{Token: "opaque-token"}}
	_, ok := cfg.TokenExpiry()
	require.False(t, ok)
}

func TestTokenExpiryJWTWithoutExp(t *testing.T) {
	cfg := &Config{API: APIConfig{Token: unsignedJWT(t, map[string]any{"sub": "portal"})}}
	_, ok := cfg.TokenExpiry()
	require.False(t, ok)
}
