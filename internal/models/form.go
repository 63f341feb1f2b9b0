package models

// ProjectType selects which category set is active.
type ProjectType string

const (
	ProjectTypeNone     ProjectType = ""
	ProjectTypeNew      ProjectType = "new"
	ProjectTypeExisting ProjectType = "existing"
)

// Institution is fixed for now; the selection screen was removed upstream
// but the wire field remains.
type Institution string

const InstitutionUniversity Institution = "university"

// WorkflowStep is one screen of the multi-step submission process.
type WorkflowStep string

const (
	StepProjectType     WorkflowStep = "projectType"
	StepForm            WorkflowStep = "form"
	StepExistingProject WorkflowStep = "existingProject"
	StepDone            WorkflowStep = "done"
)

// FormState holds every user-entered scalar field.
type FormState struct {
	Email              string
	UploaderName       string
	ProjectTitle       string
	ProjectDetails     string
	IsProspectiveStudy bool
	Institution        Institution
	ProjectType        ProjectType
}
