package models

// UploadResult mirrors the backend response body. A success=false body is
// a well-formed result, not a transport error; callers decide how to
// present it.
type UploadResult struct {
	Success       bool   `json:"success"`
	Timestamp     string `json:"timestamp"`
	ProjectID     string `json:"project_id,omitempty"`
	FilesUploaded int    `json:"files_uploaded,omitempty"`
	Message       string `json:"message,omitempty"`
}
