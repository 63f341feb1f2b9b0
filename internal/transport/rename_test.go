package transport

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dst-portal/upload-portal/internal/models"
)

func TestRenamedFilenamePrefixes(t *testing.T) {
	cases := []struct {
		category string
		name     string
		title    string
		want     string
	}{
		{models.CategoryVerantwortung, "proof.pdf", "irrelevant", "Verpflichtung_proof.pdf"},
		{models.CategorySchulungUni, "cert.pdf", "irrelevant", "SchulungGU_cert.pdf"},
		{models.CategorySchulungUKF, "cert.pdf", "irrelevant", "SchulungUKF_cert.pdf"},
		{models.CategoryEthikvotum, "votum.pdf", "irrelevant", "ethik_votum.pdf"},
		{models.CategorySonstiges, "notes.pdf", "irrelevant", "notes.pdf"},
		{models.CategoryNachzureichendeDaten, "late.pdf", "irrelevant", "late.pdf"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, RenamedFilename(tc.category, tc.name, tc.title), "category %s", tc.category)
	}
}

func TestRenamedFilenameTitleFragment(t *testing.T) {
	got := RenamedFilename(models.CategoryDatenschutzkonzept, "doc.pdf", "Memory Study of Sleep")
	require.Equal(t, "DSK_Memory Stu_doc.pdf", got)

	got = RenamedFilename(models.CategoryEinwilligung, "consent.pdf", "Memory Study of Sleep")
	require.Equal(t, "EW_Memory Stu_consent.pdf", got)
}

func TestTitleFragmentShortTitleNoPadding(t *testing.T) {
	got := RenamedFilename(models.CategoryDatenschutzkonzept, "doc.pdf", "Kurz")
	require.Equal(t, "DSK_Kurz_doc.pdf", got)
}

func TestTitleFragmentSeparatorReplacement(t *testing.T) {
	got := RenamedFilename(models.CategoryDatenschutzkonzept, "doc.pdf", `A/B\C:D`)
	require.Equal(t, "DSK_A_B_C_D_doc.pdf", got)

	// Separators past position 10 never make it into the fragment.
	got = RenamedFilename(models.CategoryDatenschutzkonzept, "doc.pdf", "0123456789/evil")
	require.Equal(t, "DSK_0123456789_doc.pdf", got)
}

func TestTitleFragmentEmptyTitle(t *testing.T) {
	got := RenamedFilename(models.CategoryDatenschutzkonzept, "doc.pdf", "")
	require.Equal(t, "DSK__doc.pdf", got)
}
