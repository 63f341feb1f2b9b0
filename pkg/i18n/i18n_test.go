package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNormalisesLanguage(t *testing.T) {
	require.Equal(t, LangDE, New("de").Language())
	require.Equal(t, LangEN, New("en").Language())
	require.Equal(t, LangEN, New(" EN ").Language())
	require.Equal(t, LangDE, New("fr").Language())
	require.Equal(t, LangDE, New("").Language())
}

func TestTResolvesPerLanguage(t *testing.T) {
	require.Equal(t, "E-Mail-Adresse ist erforderlich", New("de").T("error.emailRequired"))
	require.Equal(t, "Email address is required", New("en").T("error.emailRequired"))
}

func TestTUnknownKeyReturnsKey(t *testing.T) {
	require.Equal(t, "no.such.key", New("de").T("no.such.key"))
	require.Equal(t, "no.such.key", New("en").T("no.such.key"))
}

func TestTfInterpolates(t *testing.T) {
	got := New("en").Tf("upload.phase.uploading.desc", map[string]string{"count": "3"})
	require.Equal(t, "Uploading 3 file(s)...", got)
}

// Every key present in one language table must exist in the other, so a
// language switch never mixes languages mid-screen.
func TestTablesAreSymmetric(t *testing.T) {
	for key := range de {
		_, ok := en[key]
		require.True(t, ok, "key %q missing from EN table", key)
	}
	for key := range en {
		_, ok := de[key]
		require.True(t, ok, "key %q missing from DE table", key)
	}
}

// The phases and error kinds reference their keys by convention; a typo in
// either table would surface as a raw key on screen.
func TestRequiredKeysPresent(t *testing.T) {
	required := []string{
		"error.emailRequired", "error.emailInvalid", "error.titleRequired",
		"error.categoryRequired", "error.legalRequired", "error.uploadFailed",
		"error.uploadNotSuccessful", "error.network", "error.authFailed",
		"error.configMissingToken", "error.configMissingApiUrl",
	}
	for _, phase := range []string{"preparing", "validating", "connecting", "uploading", "processing", "email", "completing", "done"} {
		required = append(required, "upload.phase."+phase, "upload.phase."+phase+".desc")
	}
	for _, cat := range []string{"datenschutzkonzept", "verantwortung", "schulung_uni", "schulung_ukf", "einwilligung", "ethikvotum", "sonstiges", "nachzureichende_daten"} {
		required = append(required, "category."+cat)
	}

	tr := New("de")
	for _, key := range required {
		require.NotEqual(t, key, tr.T(key), "missing translation for %q", key)
	}
}
