package openai

import (
	"bytes"
	"io"
	"mime/multipart"
)

// Form accumulates fields and file parts for multipart/form-data
// endpoints (file upload, image edits and variations). Errors are
// deferred: the first failure sticks and surfaces when the form is
// sent, so call sites can chain without checking each step.
type Form struct {
	buf bytes.Buffer
	mw  *multipart.Writer
	err error
}

// NewForm returns an empty multipart form builder.
func NewForm() *Form {
	f := &Form{}
	f.mw = multipart.NewWriter(&f.buf)
	return f
}

// Field appends a plain text field.
func (f *Form) Field(name, value string) *Form {
	if f.err != nil {
		return f
	}
	f.err = f.mw.WriteField(name, value)
	return f
}

// File appends a file part read from r under the given field name.
func (f *Form) File(field, filename string, r io.Reader) *Form {
	if f.err != nil {
		return f
	}
	part, err := f.mw.CreateFormFile(field, filename)
	if err != nil {
		f.err = err
		return f
	}
	_, f.err = io.Copy(part, r)
	return f
}

// encode finalizes the form and returns the content type (including
// the boundary) and the encoded body.
func (f *Form) encode() (string, io.Reader, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	if err := f.mw.Close(); err != nil {
		return "", nil, err
	}
	return f.mw.FormDataContentType(), &f.buf, nil
}
