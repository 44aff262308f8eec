// Package imageutil finds out the MIME type of cover images and loads them from disk or the web.
package imageutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const (
	MIMETypeJPEG = "image/jpeg"
	MIMETypePNG  = "image/png"

	// only the first bytes of an image are needed to know its type
	headerLength = 11
)

var (
	ErrUnsupportedImageType  = errors.New("unsupported image type")
	ErrInvalidImageReference = errors.New("image reference is neither an existing file nor an http(s) URL")
)

var (
	jpegMagic = []byte{0xff, 0xd8, 0xff, 0xe0}
	jfifMagic = []byte("JFIF\x00")
	pngMagic  = []byte("PNG")
)

// MIMETypeFromBytes detects JPEG (JFIF) and PNG images from their first bytes.
func MIMETypeFromBytes(data []byte) (string, error) {
	if len(data) > headerLength {
		data = data[:headerLength]
	}
	if len(data) == headerLength && bytes.Equal(data[:4], jpegMagic) && bytes.Equal(data[6:], jfifMagic) {
		return MIMETypeJPEG, nil
	}
	if len(data) >= 4 && bytes.Equal(data[1:4], pngMagic) {
		return MIMETypePNG, nil
	}
	return "", ErrUnsupportedImageType
}

// MIMETypeFromPath guesses the MIME type from the file extension,
// and reads the header of the file when the extension is not an image one.
func MIMETypeFromPath(imagePath string) (string, error) {
	if mimeType := imageTypeByExtension(filepath.Ext(imagePath)); mimeType != "" {
		return mimeType, nil
	}

	f, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	header := make([]byte, headerLength)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("io.ReadFull > %w", err)
	}
	return MIMETypeFromBytes(header[:n])
}

func mimeTypeFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return imageTypeByExtension(path.Ext(u.Path))
}

func imageTypeByExtension(ext string) string {
	if ext == "" {
		return ""
	}
	mimeType := mime.TypeByExtension(strings.ToLower(ext))
	if !strings.HasPrefix(mimeType, "image/") {
		return ""
	}
	return mimeType
}
