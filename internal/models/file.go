package models

import (
	"bytes"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileHandle is an opaque reference to binary content selected for upload.
// A handle belongs to exactly one category at a time. ID is a synthetic
// per-file identifier that stays stable across renaming, used to correlate
// files when derived filenames collide.
type FileHandle struct {
	ID        string
	Name      string
	SizeBytes int64
	MimeType  string

	// Exactly one of Path and Data is the content source; Data wins.
	Path string
	Data []byte
}

// NewFileHandle builds a handle for a local file without reading it.
func NewFileHandle(path string) (FileHandle, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileHandle{}, err
	}
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return FileHandle{
		ID:        uuid.NewString(),
		Name:      filepath.Base(path),
		SizeBytes: info.Size(),
		MimeType:  mimeType,
		Path:      path,
	}, nil
}

// NewInMemoryFile builds a handle around already-loaded content.
func NewInMemoryFile(name string, data []byte) FileHandle {
	mimeType := mime.TypeByExtension(filepath.Ext(name))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return FileHandle{
		ID:        uuid.NewString(),
		Name:      name,
		SizeBytes: int64(len(data)),
		MimeType:  mimeType,
		Data:      data,
	}
}

// Reader opens the content for streaming into the multipart body.
func (f FileHandle) Reader() (io.ReadCloser, error) {
	if f.Data != nil {
		return io.NopCloser(bytes.NewReader(f.Data)), nil
	}
	return os.Open(f.Path)
}
