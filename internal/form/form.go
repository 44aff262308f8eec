// Package form encodes deck fields as a multipart/form-data body the way the web client of the service does.
package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofrs/uuid/v5"
)

const (
	// ImageFieldName is the field holding a cover image reference to upload.
	ImageFieldName = "imageFile"

	// the service ignores the uploaded file name and type
	coverFilename    = "cover.jpg"
	coverContentType = "image/jpeg"

	boundaryLength = 16
)

// JSON list fields are always sent as a JSON string inside the form.
var jsonListFields = map[string]struct{}{
	"cards":                    {},
	"blacklistedQuestionTypes": {},
	"gradingModes":             {},
	"ttsLanguages":             {},
}

var ErrNoImageResolver = errors.New("no image resolver to attach an image")

// Field is a single form field. Fields are encoded in order.
type Field struct {
	Name  string
	Value any
}

// ImageResolver loads the bytes and the MIME type of an image reference such as a path or a URL.
type ImageResolver interface {
	Resolve(ctx context.Context, reference string) ([]byte, string, error)
}

type Encoder struct {
	images ImageResolver
}

// NewEncoder creates an encoder. images may be nil when no field holds an image.
func NewEncoder(images ImageResolver) *Encoder {
	return &Encoder{
		images: images,
	}
}

// Form is an encoded multipart body.
type Form struct {
	Boundary string
	Body     []byte
}

func (form *Form) ContentType() string {
	return "multipart/form-data; boundary=" + form.Boundary
}

// GenerateBoundary returns a random 16 character boundary.
func GenerateBoundary() string {
	return strings.ReplaceAll(uuid.Must(uuid.NewV4()).String(), "-", "")[:boundaryLength]
}

// Encode writes the fields as multipart parts separated by the boundary.
// A new boundary is generated when boundary is empty.
func (encoder *Encoder) Encode(ctx context.Context, fields []Field, boundary string) (*Form, error) {
	if boundary == "" {
		boundary = GenerateBoundary()
	}

	var body bytes.Buffer
	for _, field := range fields {
		body.WriteString("--" + boundary + "\n")

		if field.Name == ImageFieldName {
			data, err := encoder.resolveImage(ctx, field.Value)
			if err != nil {
				return nil, fmt.Errorf("field %s > %w", field.Name, err)
			}
			fmt.Fprintf(&body, "Content-Disposition: form-data; name=%q; filename=%q\n", field.Name, coverFilename)
			body.WriteString("Content-Type: " + coverContentType + "\n\n")
			body.Write(data)
			body.WriteString("\n")
			continue
		}

		value, err := stringify(field.Name, field.Value)
		if err != nil {
			return nil, fmt.Errorf("field %s > %w", field.Name, err)
		}
		fmt.Fprintf(&body, "Content-Disposition: form-data; name=%q\n\n", field.Name)
		body.WriteString(value)
		body.WriteString("\n")
	}
	body.WriteString("--" + boundary + "--")

	return &Form{
		Boundary: boundary,
		Body:     body.Bytes(),
	}, nil
}

// resolveImage loads an image. The resolver rejects unsupported image types.
func (encoder *Encoder) resolveImage(ctx context.Context, value any) ([]byte, error) {
	reference, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("image reference must be a string, got %T", value)
	}
	if encoder.images == nil {
		return nil, ErrNoImageResolver
	}
	data, _, err := encoder.images.Resolve(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("images.Resolve(%s) > %w", reference, err)
	}
	return data, nil
}

func stringify(name string, value any) (string, error) {
	if _, ok := jsonListFields[name]; ok {
		if s, ok := value.(string); ok {
			return s, nil
		}
		return marshal(value)
	}

	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		// lowercase like JSON
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	return marshal(value)
}

func marshal(value any) (string, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("json.Marshal > %w", err)
	}
	return string(b), nil
}
