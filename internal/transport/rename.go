package transport

import (
	"strings"

	"github.com/dst-portal/upload-portal/internal/models"
)

// The backend's storage indexes a subset of categories by filename
// convention instead of structured metadata. The prefixes below are that
// convention; they must match the backend byte for byte.
const (
	prefixVerantwortung = "Verpflichtung_"
	prefixSchulungUni   = "SchulungGU_"
	prefixSchulungUKF   = "SchulungUKF_"
	prefixKonzept       = "DSK_"
	prefixEinwilligung  = "EW_"
	prefixEthikvotum    = "ethik_"
)

const titleFragmentLen = 10

// RenamedFilename derives the transport filename for a file in the given
// category. Files in sonstiges and nachzureichende_daten keep their
// original names.
func RenamedFilename(categoryKey, originalName, projectTitle string) string {
	switch categoryKey {
	case models.CategoryVerantwortung:
		return prefixVerantwortung + originalName
	case models.CategorySchulungUni:
		return prefixSchulungUni + originalName
	case models.CategorySchulungUKF:
		return prefixSchulungUKF + originalName
	case models.CategoryDatenschutzkonzept:
		return prefixKonzept + titleFragment(projectTitle) + "_" + originalName
	case models.CategoryEinwilligung:
		return prefixEinwilligung + titleFragment(projectTitle) + "_" + originalName
	case models.CategoryEthikvotum:
		return prefixEthikvotum + originalName
	default:
		return originalName
	}
}

// titleFragment takes the first 10 characters of the project title, with
// path and drive separators replaced so the fragment stays filename-safe.
// Shorter titles are used as-is, no padding.
func titleFragment(title string) string {
	runes := []rune(title)
	if len(runes) > titleFragmentLen {
		runes = runes[:titleFragmentLen]
	}
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_")
	return replacer.Replace(string(runes))
}
