// Package form holds all user-entered state for one submission session:
// scalar fields plus the per-category file lists. It is pure data mutated
// through defined setters; validation and transport read from it.
package form

import (
	"go.uber.org/zap"

	"github.com/dst-portal/upload-portal/internal/models"
	"github.com/dst-portal/upload-portal/pkg/logger"
)

// Store is the single mutable form state for a session. It is not safe for
// concurrent use; the workflow runs on one event loop.
type Store struct {
	state      models.FormState
	categories []models.FileCategory
	log        *zap.Logger
}

func NewStore(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{log: log}
	s.Reset()
	return s
}

// Reset clears all scalar fields and restores the new-project category set
// with empty file lists. Used at construction and for "start another upload".
func (s *Store) Reset() {
	s.state = models.FormState{
		Institution: models.InstitutionUniversity,
		ProjectType: models.ProjectTypeNone,
	}
	s.categories = models.CategoriesForProjectType(models.ProjectTypeNew)
}

func (s *Store) State() *models.FormState { return &s.state }

// Categories returns the active category set. The slice is owned by the
// store; callers must not append to the file lists directly.
func (s *Store) Categories() []models.FileCategory { return s.categories }

func (s *Store) SetEmail(v string)          { s.state.Email = v }
func (s *Store) SetUploaderName(v string)   { s.state.UploaderName = v }
func (s *Store) SetProjectTitle(v string)   { s.state.ProjectTitle = v }
func (s *Store) SetProjectDetails(v string) { s.state.ProjectDetails = v }
func (s *Store) SetProspectiveStudy(v bool) { s.state.IsProspectiveStudy = v }

// SetProjectType installs the category set for the chosen type. Any files
// attached under the previous set are discarded; the sets never share file
// lists.
func (s *Store) SetProjectType(pt models.ProjectType) {
	s.state.ProjectType = pt
	s.categories = models.CategoriesForProjectType(pt)
}

// AddFiles appends files to the matching category, preserving existing and
// given order. An unknown key is a programming error of the calling layer:
// it is logged and ignored, never shown to the user.
func (s *Store) AddFiles(categoryKey string, files ...models.FileHandle) {
	if len(files) == 0 {
		return
	}
	for i := range s.categories {
		if s.categories[i].Key == categoryKey {
			s.categories[i].Files = append(s.categories[i].Files, files...)
			return
		}
	}
	s.log.Warn("add_files_unknown_category", zap.String("category", categoryKey))
}

// RemoveFile removes the file at index from the category's list; remaining
// files keep their relative order. Out-of-range indexes are a no-op.
func (s *Store) RemoveFile(categoryKey string, index int) {
	for i := range s.categories {
		if s.categories[i].Key != categoryKey {
			continue
		}
		files := s.categories[i].Files
		if index < 0 || index >= len(files) {
			return
		}
		s.categories[i].Files = append(files[:index], files[index+1:]...)
		return
	}
	s.log.Warn("remove_file_unknown_category", zap.String("category", categoryKey))
}

// TotalFiles counts attached files across the active categories.
func (s *Store) TotalFiles() int { return models.TotalFiles(s.categories) }

// LogSnapshot emits a redacted summary of the current form for diagnostics.
func (s *Store) LogSnapshot(event string) {
	s.log.Info(event, logger.SafeFields(map[string]interface{}{
		"email":         s.state.Email,
		"project_title": s.state.ProjectTitle,
		"project_type":  string(s.state.ProjectType),
		"prospective":   s.state.IsProspectiveStudy,
		"categories":    len(s.categories),
		"total_files":   s.TotalFiles(),
	})...)
}
