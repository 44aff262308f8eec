package imageutil

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Resolver loads an image referenced either by a local path or by an http(s) URL.
type Resolver struct {
	downloader *Downloader
}

func NewResolver(downloader *Downloader) *Resolver {
	return &Resolver{
		downloader: downloader,
	}
}

func (r *Resolver) Resolve(ctx context.Context, reference string) ([]byte, string, error) {
	if info, err := os.Stat(reference); err == nil && !info.IsDir() {
		data, err := os.ReadFile(reference)
		if err != nil {
			return nil, "", fmt.Errorf("os.ReadFile > %w", err)
		}
		mimeType, err := MIMETypeFromPath(reference)
		if err != nil {
			return nil, "", fmt.Errorf("MIMETypeFromPath > %w", err)
		}
		return data, mimeType, nil
	}

	if strings.HasPrefix(reference, "http://") || strings.HasPrefix(reference, "https://") {
		return r.downloader.GetImage(ctx, reference)
	}
	return nil, "", fmt.Errorf("%w: %q", ErrInvalidImageReference, reference)
}
