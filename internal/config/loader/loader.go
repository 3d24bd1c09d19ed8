// Package loader resolves configuration documents from their sources.
// Configuration files are small and usually local, so file and fs.FS sources
// are plain synchronous reads; URL fetching covers configs shared outside a
// checkout and can be switched off entirely through the options.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"

	"github.com/goliatone/go-actorgen/pkg/config"
)

// Loader implements config.Loader across the three source kinds.
type Loader struct {
	files  fs.FS
	client *http.Client
}

var _ config.Loader = (*Loader)(nil)

// New constructs a Loader. URL loading is available when the options carry a
// client or allow the fallback one; otherwise URL sources fail at load time.
func New(options config.LoaderOptions) *Loader {
	client := options.HTTPClient
	if client == nil && options.AllowHTTPFallback {
		client = &http.Client{Timeout: options.RequestTimeout}
	}
	return &Loader{files: options.FileSystem, client: client}
}

// Load reads the document the source names.
func (l *Loader) Load(ctx context.Context, src config.Source) (config.Document, error) {
	if src == nil {
		return config.Document{}, errors.New("loader: source is required")
	}
	if err := ctx.Err(); err != nil {
		return config.Document{}, err
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case config.SourceKindFile:
		data, err = os.ReadFile(src.Location())
	case config.SourceKindFS:
		if l.files == nil {
			err = errors.New("no filesystem configured for fs sources")
		} else {
			data, err = fs.ReadFile(l.files, src.Location())
		}
	case config.SourceKindURL:
		data, err = l.fetch(ctx, src.Location())
	default:
		err = fmt.Errorf("unknown source kind %q", src.Kind())
	}
	if err != nil {
		return config.Document{}, fmt.Errorf("loader: read %s: %w", src.Location(), err)
	}

	return config.NewDocument(src.Location(), data), nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	if l.client == nil {
		return nil, errors.New("url loading is disabled")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
