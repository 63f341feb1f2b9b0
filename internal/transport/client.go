// Package transport serializes a form snapshot into the backend's multipart
// upload contract, sends it, and classifies every failure into the closed
// error-kind set from pkg/errors.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dst-portal/upload-portal/internal/models"
	"github.com/dst-portal/upload-portal/pkg/config"
	apperrors "github.com/dst-portal/upload-portal/pkg/errors"
	"github.com/dst-portal/upload-portal/pkg/logger"
)

// Client performs the single documented backend call. It is safe for
// sequential reuse; the workflow controller guarantees one submission is in
// flight at a time.
type Client struct {
	cfg      config.APIConfig
	language string
	http     *http.Client
	log      *zap.Logger
}

func New(cfg config.APIConfig, language string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		cfg:      cfg,
		language: language,
		http:     &http.Client{Timeout: cfg.Timeout},
		log:      log,
	}
}

// Submit sends the form and all attached files as one multipart request.
// A well-formed success=false response is returned as a result, not an
// error; everything else surfaces as a typed *apperrors.Error.
func (c *Client) Submit(ctx context.Context, form *models.FormState, categories []models.FileCategory) (*models.UploadResult, error) {
	if strings.TrimSpace(c.cfg.Token) == "" {
		c.log.Error("upload_config_missing", zap.String("field", "API_TOKEN"))
		return nil, apperrors.ErrMissingToken
	}
	if strings.TrimSpace(c.cfg.BaseURL) == "" {
		c.log.Error("upload_config_missing", zap.String("field", "API_BASE_URL"))
		return nil, apperrors.ErrMissingBaseURL
	}

	requestID := uuid.NewString()
	c.log.Info("upload_started", logger.SafeFields(map[string]interface{}{
		"request_id":   requestID,
		"email":        form.Email,
		"project_type": string(form.ProjectType),
		"total_files":  models.TotalFiles(categories),
	})...)

	body, contentType, err := c.buildPayload(form, categories, requestID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUploadFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/upload", body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		// Everything the round trip throws (DNS, refused connection,
		// timeout, cancelled context) is a connectivity problem from the
		// user's point of view.
		c.log.Error("upload_network_error", zap.String("request_id", requestID), zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrNetwork, err)
	}
	defer resp.Body.Close()

	return c.interpretResponse(resp, requestID)
}

// buildPayload assembles the multipart body: scalar fields, every file with
// its derived filename, and the filename-to-category side channel.
func (c *Client) buildPayload(form *models.FormState, categories []models.FileCategory, requestID string) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := map[string]string{
		"email":                form.Email,
		"project_title":        form.ProjectTitle,
		"institution":          string(form.Institution),
		"is_prospective_study": strconv.FormatBool(form.IsProspectiveStudy),
		"project_type":         string(form.ProjectType),
		"language":             c.language,
	}
	if form.UploaderName != "" {
		fields["uploader_name"] = form.UploaderName
	}
	if form.ProjectDetails != "" {
		fields["project_details"] = form.ProjectDetails
	}
	for _, name := range []string{"email", "uploader_name", "project_title", "institution", "is_prospective_study", "project_details", "project_type", "language"} {
		value, ok := fields[name]
		if !ok {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	categoryMap := make(map[string]string)
	for i := range categories {
		cat := &categories[i]
		for _, file := range cat.Files {
			finalName := RenamedFilename(cat.Key, file.Name, form.ProjectTitle)
			if priorKey, exists := categoryMap[finalName]; exists && priorKey != cat.Key {
				// The wire contract keys the map by final filename, so the
				// later file wins. Known contract weakness; the stable IDs
				// at least make the collision traceable.
				c.log.Warn("upload_filename_collision",
					zap.String("request_id", requestID),
					zap.String("file_id", file.ID),
					zap.String("category", cat.Key),
					zap.String("colliding_category", priorKey),
					logger.Redacted("filename"))
			}
			categoryMap[finalName] = cat.Key

			if err := writeFilePart(w, finalName, file); err != nil {
				return nil, "", err
			}
		}
	}

	mapping, err := json.Marshal(categoryMap)
	if err != nil {
		return nil, "", err
	}
	if err := w.WriteField("file_categories", string(mapping)); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

func writeFilePart(w *multipart.Writer, finalName string, file models.FileHandle) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="files"; filename="%s"`, escapeQuotes(finalName)))
	if file.MimeType != "" {
		header.Set("Content-Type", file.MimeType)
	}
	part, err := w.CreatePart(header)
	if err != nil {
		return err
	}
	reader, err := file.Reader()
	if err != nil {
		return err
	}
	defer reader.Close()
	_, err = io.Copy(part, reader)
	return err
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

func (c *Client) interpretResponse(resp *http.Response, requestID string) (*models.UploadResult, error) {
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Raw bodies may echo submitted data; they are logged redacted and
		// never surfaced to the user.
		c.log.Error("upload_http_error",
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode),
			logger.Redacted("response_body"))
		statusErr := fmt.Errorf("upload returned status %d", resp.StatusCode)
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return nil, apperrors.Wrap(apperrors.ErrAuthFailed, statusErr)
		}
		return nil, apperrors.Wrap(apperrors.ErrUploadFailed, statusErr)
	}

	if readErr != nil {
		return nil, apperrors.Wrap(apperrors.ErrUploadFailed, readErr)
	}

	result := &models.UploadResult{}
	if err := json.Unmarshal(raw, result); err != nil {
		c.log.Error("upload_bad_response",
			zap.String("request_id", requestID),
			zap.Error(err),
			logger.Redacted("response_body"))
		return nil, apperrors.Wrap(apperrors.ErrUploadFailed, err)
	}

	c.log.Info("upload_completed",
		zap.String("request_id", requestID),
		zap.Bool("success", result.Success),
		zap.Int("files_uploaded", result.FilesUploaded))
	return result, nil
}
