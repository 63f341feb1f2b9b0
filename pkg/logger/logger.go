package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dst-portal/upload-portal/pkg/config"
)

func New(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Env == config.EnvProduction {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Log.Format {
	case "console":
		zapCfg.Encoding = "console"
	default:
		zapCfg.Encoding = "json"
	}

	if cfg.Log.Level != "" {
		if err := zapCfg.Level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}
	}

	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// The portal runs inside an interactive terminal UI; stderr would tear
	// the screen apart, so everything goes to a file in dev as well.
	zapCfg.OutputPaths = []string{"portal.log"}
	zapCfg.ErrorOutputPaths = []string{"portal.log"}

	return zapCfg.Build()
}

// redactedKeys are field names that must never reach the log in cleartext,
// at any level: submitter identity, project wording, filenames and raw
// server responses.
var redactedKeys = map[string]struct{}{
	"email":           {},
	"uploader_name":   {},
	"project_title":   {},
	"project_details": {},
	"filename":        {},
	"filenames":       {},
	"files":           {},
	"headers":         {},
	"response_body":   {},
}

const redactedValue = "[redacted]"

// SafeFields converts a loose field map into zap fields, replacing the value
// of every redacted key. Callers pass PII through here instead of deciding
// case by case.
func SafeFields(fields map[string]interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		if _, ok := redactedKeys[k]; ok {
			out = append(out, zap.String(k, redactedValue))
			continue
		}
		out = append(out, zap.Any(k, v))
	}
	return out
}

// Redacted returns a single already-redacted field for the given key.
func Redacted(key string) zap.Field {
	return zap.String(key, redactedValue)
}
