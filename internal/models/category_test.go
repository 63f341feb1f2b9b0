package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoriesForProjectTypeNew(t *testing.T) {
	cats := CategoriesForProjectType(ProjectTypeNew)
	require.Len(t, cats, 7)

	keys := make([]string, 0, len(cats))
	for _, c := range cats {
		keys = append(keys, c.Key)
		require.Empty(t, c.Files)
	}
	require.Equal(t, []string{
		CategoryDatenschutzkonzept,
		CategoryVerantwortung,
		CategorySchulungUni,
		CategorySchulungUKF,
		CategoryEinwilligung,
		CategoryEthikvotum,
		CategorySonstiges,
	}, keys)
}

func TestCategoriesForProjectTypeExisting(t *testing.T) {
	cats := CategoriesForProjectType(ProjectTypeExisting)
	require.Len(t, cats, 1)
	require.Equal(t, CategoryNachzureichendeDaten, cats[0].Key)
	require.True(t, cats[0].Required)
	require.Empty(t, cats[0].Files)
}

func TestIsRequiredConditional(t *testing.T) {
	cats := CategoriesForProjectType(ProjectTypeNew)
	var einwilligung *FileCategory
	for i := range cats {
		if cats[i].Key == CategoryEinwilligung {
			einwilligung = &cats[i]
		}
	}
	require.NotNil(t, einwilligung)
	require.False(t, einwilligung.Required)
	require.True(t, einwilligung.ConditionalRequired)

	form := &FormState{}
	require.False(t, einwilligung.IsRequired(form))

	form.IsProspectiveStudy = true
	require.True(t, einwilligung.IsRequired(form))
}

func TestIsRequiredUnconditional(t *testing.T) {
	cat := &FileCategory{Key: CategoryDatenschutzkonzept, Required: true}
	require.True(t, cat.IsRequired(&FormState{}))
	require.True(t, cat.IsRequired(nil))
}
