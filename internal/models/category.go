package models

// Category keys are wire-level identifiers: the backend sorts uploads into
// folders by these exact strings. Labels are resolved through i18n keys
// "category.<key>".
const (
	CategoryDatenschutzkonzept   = "datenschutzkonzept"
	CategoryVerantwortung        = "verantwortung"
	CategorySchulungUni          = "schulung_uni"
	CategorySchulungUKF          = "schulung_ukf"
	CategoryEinwilligung         = "einwilligung"
	CategoryEthikvotum           = "ethikvotum"
	CategorySonstiges            = "sonstiges"
	CategoryNachzureichendeDaten = "nachzureichende_daten"
)

// FileCategory is one named bucket of document uploads.
type FileCategory struct {
	Key                 string
	Label               string
	Required            bool
	ConditionalRequired bool
	Files               []FileHandle
}

// IsRequired is the effective-required predicate. Validation and rendering
// must both call this, never re-derive it.
func (c *FileCategory) IsRequired(form *FormState) bool {
	return c.Required || (c.ConditionalRequired && form != nil && form.IsProspectiveStudy)
}

// CategoriesForProjectType returns a fresh category set for the given
// project type, every file list empty. The order is user-visible: validation
// errors and form sections follow it.
func CategoriesForProjectType(pt ProjectType) []FileCategory {
	if pt == ProjectTypeExisting {
		return []FileCategory{
			{Key: CategoryNachzureichendeDaten, Label: "category.nachzureichende_daten", Required: true},
		}
	}
	return []FileCategory{
		{Key: CategoryDatenschutzkonzept, Label: "category.datenschutzkonzept", Required: true},
		{Key: CategoryVerantwortung, Label: "category.verantwortung", Required: true},
		{Key: CategorySchulungUni, Label: "category.schulung_uni", Required: true},
		{Key: CategorySchulungUKF, Label: "category.schulung_ukf", Required: true},
		{Key: CategoryEinwilligung, Label: "category.einwilligung", ConditionalRequired: true},
		{Key: CategoryEthikvotum, Label: "category.ethikvotum"},
		{Key: CategorySonstiges, Label: "category.sonstiges"},
	}
}

// TotalFiles counts files across all categories.
func TotalFiles(categories []FileCategory) int {
	total := 0
	for i := range categories {
		total += len(categories[i].Files)
	}
	return total
}
