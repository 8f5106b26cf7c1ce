package gateway

import (
	"bytes"
	"mime/multipart"

	"github.com/pkg/errors"
)

type formField struct {
	name  string
	value string
}

type formFile struct {
	field    string
	fileName string
	content  []byte
}

// Form accumulates the fields and files of a multipart request. Fields
// keep their insertion order.
type Form struct {
	fields []formField
	files  []formFile
}

func NewForm() *Form {
	return &Form{}
}

// AddField appends a text field.
func (f *Form) AddField(name, value string) *Form {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// AddFile appends a binary attachment under the given field name.
func (f *Form) AddFile(field, fileName string, content []byte) *Form {
	f.files = append(f.files, formFile{field: field, fileName: fileName, content: content})
	return f
}

// encode writes the multipart body and returns it with the writer's
// content type, boundary included.
func (f *Form) encode() (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, field := range f.fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, "", errors.Wrapf(err, "[Form.encode] field %q", field.name)
		}
	}
	for _, file := range f.files {
		part, err := writer.CreateFormFile(file.field, file.fileName)
		if err != nil {
			return nil, "", errors.Wrapf(err, "[Form.encode] file %q", file.field)
		}
		if _, err := part.Write(file.content); err != nil {
			return nil, "", errors.Wrapf(err, "[Form.encode] write %q", file.field)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", errors.Wrap(err, "[Form.encode] writer.Close")
	}
	return body, writer.FormDataContentType(), nil
}
