package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSafeFieldsRedactsIdentityAndContent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	log.Info("submit_started", SafeFields(map[string]interface{}{
		"email":         "r@uni.example",
		"project_title": "Memory Study",
		"filenames":     []string{"dsk.pdf"},
		"response_body": "{\"ok\":false}",
		"file_count":    3,
	})...)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	require.Equal(t, "[redacted]", fields["email"])
	require.Equal(t, "[redacted]", fields["project_title"])
	require.Equal(t, "[redacted]", fields["filenames"])
	require.Equal(t, "[redacted]", fields["response_body"])
	require.EqualValues(t, 3, fields["file_count"])
}

func TestRedactedField(t *testing.T) {
	field := Redacted("filename")
	require.Equal(t, "filename", field.Key)
	require.Equal(t, "[redacted]", field.String)
}
