// Package file uploads and manages files used by other endpoints,
// typically JSONL training data for fine-tuning.
package file

import (
	"context"
	"io"

	"github.com/jy130131/go-openai"
)

// UploadParam carries the content and declared purpose of an upload.
// All three fields are required.
type UploadParam struct {
	File     io.Reader
	Filename string
	Purpose  string
}

// NewUploadParam returns an UploadParam for the given content.
func NewUploadParam(f io.Reader, filename, purpose string) *UploadParam {
	return &UploadParam{File: f, Filename: filename, Purpose: purpose}
}

// File is a single stored file record.
type File struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	Bytes     int64  `json:"bytes"`
	CreatedAt int64  `json:"created_at"`
	Filename  string `json:"filename"`
	Purpose   string `json:"purpose"`
}

// Files is the list of files owned by the organization.
type Files struct {
	Object string `json:"object"`
	Data   []File `json:"data"`
}

// Upload stores a file under the given purpose.
func Upload(ctx context.Context, c *openai.Client, p *UploadParam) (*File, error) {
	if p == nil || p.File == nil {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "file: file is required"}
	}
	if p.Filename == "" {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "file: filename is required"}
	}
	if p.Purpose == "" {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "file: purpose is required"}
	}

	form := openai.NewForm().
		Field("purpose", p.Purpose).
		File("file", p.Filename, p.File)

	return openai.PostForm[File](ctx, c, "files", form)
}

// List returns all files owned by the organization.
func List(ctx context.Context, c *openai.Client) (*Files, error) {
	return openai.Get[Files](ctx, c, "files")
}

// Retrieve returns the metadata of a single file.
func Retrieve(ctx context.Context, c *openai.Client, fileID string) (*File, error) {
	if fileID == "" {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "file: file id is required"}
	}
	return openai.Get[File](ctx, c, "files/"+fileID)
}

// Delete removes a stored file.
func Delete(ctx context.Context, c *openai.Client, fileID string) (*openai.Deleted, error) {
	if fileID == "" {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "file: file id is required"}
	}
	return openai.Delete[openai.Deleted](ctx, c, "files/"+fileID)
}

// Content downloads the raw bytes of a stored file.
func Content(ctx context.Context, c *openai.Client, fileID string) ([]byte, error) {
	if fileID == "" {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "file: file id is required"}
	}
	return c.GetBytes(ctx, "files/"+fileID+"/content")
}
