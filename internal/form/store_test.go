package form

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dst-portal/upload-portal/internal/models"
)

func file(name string) models.FileHandle {
	return models.NewInMemoryFile(name, []byte("content of "+name))
}

func TestAddFilesPreservesOrder(t *testing.T) {
	s := NewStore(nil)
	s.AddFiles(models.CategoryEthikvotum, file("a.pdf"), file("b.pdf"))
	s.AddFiles(models.CategoryEthikvotum, file("c.pdf"))

	var cat *models.FileCategory
	for i, c := range s.Categories() {
		if c.Key == models.CategoryEthikvotum {
			cat = &s.Categories()[i]
		}
	}
	require.NotNil(t, cat)
	require.Len(t, cat.Files, 3)
	require.Equal(t, "a.pdf", cat.Files[0].Name)
	require.Equal(t, "b.pdf", cat.Files[1].Name)
	require.Equal(t, "c.pdf", cat.Files[2].Name)
}

func TestAddFilesEmptyAndUnknownCategory(t *testing.T) {
	s := NewStore(nil)
	s.AddFiles(models.CategoryEthikvotum)
	s.AddFiles("no_such_category", file("a.pdf"))
	require.Zero(t, s.TotalFiles())
}

func TestRemoveFileKeepsRelativeOrder(t *testing.T) {
	s := NewStore(nil)
	s.AddFiles(models.CategorySonstiges, file("a.pdf"), file("b.pdf"), file("c.pdf"))

	s.RemoveFile(models.CategorySonstiges, 1)

	files := s.Categories()[6].Files
	require.Len(t, files, 2)
	require.Equal(t, "a.pdf", files[0].Name)
	require.Equal(t, "c.pdf", files[1].Name)
}

func TestRemoveFileOutOfRangeIsNoop(t *testing.T) {
	s := NewStore(nil)
	s.AddFiles(models.CategorySonstiges, file("a.pdf"))

	s.RemoveFile(models.CategorySonstiges, -1)
	s.RemoveFile(models.CategorySonstiges, 1)
	s.RemoveFile("no_such_category", 0)

	require.Equal(t, 1, s.TotalFiles())
}

func TestSwitchingProjectTypeClearsFiles(t *testing.T) {
	s := NewStore(nil)
	s.AddFiles(models.CategoryDatenschutzkonzept, file("dsk.pdf"))
	require.Equal(t, 1, s.TotalFiles())

	s.SetProjectType(models.ProjectTypeExisting)
	require.Zero(t, s.TotalFiles())
	require.Len(t, s.Categories(), 1)

	s.AddFiles(models.CategoryNachzureichendeDaten, file("late.pdf"))
	s.SetProjectType(models.ProjectTypeNew)
	require.Zero(t, s.TotalFiles())
	require.Len(t, s.Categories(), 7)
}

func TestResetClearsEverything(t *testing.T) {
	s := NewStore(nil)
	s.SetEmail("a@b.de")
	s.SetUploaderName("someone")
	s.SetProjectTitle("T1")
	s.SetProjectDetails("details")
	s.SetProspectiveStudy(true)
	s.SetProjectType(models.ProjectTypeExisting)
	s.AddFiles(models.CategoryNachzureichendeDaten, file("late.pdf"))

	s.Reset()

	state := s.State()
	require.Empty(t, state.Email)
	require.Empty(t, state.UploaderName)
	require.Empty(t, state.ProjectTitle)
	require.Empty(t, state.ProjectDetails)
	require.False(t, state.IsProspectiveStudy)
	require.Equal(t, models.InstitutionUniversity, state.Institution)
	require.Equal(t, models.ProjectTypeNone, state.ProjectType)
	require.Len(t, s.Categories(), 7)
	require.Zero(t, s.TotalFiles())
}
