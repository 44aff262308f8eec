package imageutil

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Downloader fetches images over HTTP.
type Downloader struct {
	httpClient *resty.Client
}

func NewDownloader() *Downloader {
	return &Downloader{
		httpClient: resty.New(),
	}
}

// GetImage downloads an image and returns its bytes and MIME type.
// The MIME type is taken from the Content-Type header when it is an image one,
// then guessed from the URL, and finally detected from the bytes.
func (d *Downloader) GetImage(ctx context.Context, url string) ([]byte, string, error) {
	res, err := d.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, "", fmt.Errorf("client.R.Get(%s) > %w", url, err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, "", fmt.Errorf("failed to download image from %s: status code: %d, body: %s", url, res.StatusCode(), string(res.Body()))
	}

	body := res.Body()
	if contentType := res.Header().Get("Content-Type"); strings.HasPrefix(contentType, "image/") {
		return body, contentType, nil
	}
	if mimeType := mimeTypeFromURL(url); mimeType != "" {
		return body, mimeType, nil
	}
	mimeType, err := MIMETypeFromBytes(body)
	if err != nil {
		return nil, "", fmt.Errorf("MIMETypeFromBytes(%s) > %w", url, err)
	}
	return body, mimeType, nil
}

func (d *Downloader) Close() {
	d.httpClient.GetClient().CloseIdleConnections()
}
