package afs

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/aretw0/transducer/pkg/att"
	"github.com/aretw0/transducer/pkg/domain"
	backend "github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// DefaultExtension is appended to table names that carry no extension.
const DefaultExtension = ".att"

// Loader implements ports.TableLoader on top of an abstract file storage.
// The base URL may be a local directory or any scheme afs supports (file://, mem://, gs://, s3://).
type Loader struct {
	fs      backend.Service
	baseURL string
	ext     string
	mu      sync.RWMutex
}

type Option func(*Loader)

// WithExtension sets the extension used to resolve and list tables.
func WithExtension(ext string) Option {
	return func(l *Loader) {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		l.ext = ext
	}
}

// WithService injects an existing afs service.
func WithService(fs backend.Service) Option {
	return func(l *Loader) {
		l.fs = fs
	}
}

// New creates a loader rooted at baseURL.
func New(baseURL string, opts ...Option) *Loader {
	if baseURL == "" {
		baseURL = "."
	}
	l := &Loader{
		baseURL: url.Normalize(baseURL, file.Scheme),
		ext:     DefaultExtension,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.fs == nil {
		l.fs = backend.New()
	}
	return l
}

// BaseURL returns the normalized root of the loader.
func (l *Loader) BaseURL() string {
	return l.baseURL
}

func (l *Loader) location(name string) string {
	if path.Ext(name) == "" {
		name += l.ext
	}
	return url.Join(l.baseURL, name)
}

// Load downloads and parses the named table.
func (l *Loader) Load(ctx context.Context, name string) (*domain.Table, error) {
	if name == "" {
		return nil, fmt.Errorf("table name cannot be empty")
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	location := l.location(name)
	exists, err := l.fs.Exists(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to check if table exists: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrTableNotFound, location)
	}

	data, err := l.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", location, err)
	}

	table, err := att.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}
	return table, nil
}

// List returns the names (without extension) of the tables under the base URL.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	objects, err := l.fs.List(ctx, l.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	var names []string
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		if !strings.HasSuffix(object.Name(), l.ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(object.Name(), l.ext))
	}
	sort.Strings(names)
	return names, nil
}

// Save writes table under name in AT&T form.
func (l *Loader) Save(ctx context.Context, name string, table *domain.Table) error {
	if name == "" {
		return fmt.Errorf("table name cannot be empty")
	}

	var buf bytes.Buffer
	if err := att.Write(&buf, table); err != nil {
		return fmt.Errorf("failed to serialize table: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	location := l.location(name)
	if err := l.fs.Upload(ctx, location, file.DefaultFileOsMode, &buf); err != nil {
		return fmt.Errorf("failed to save table to %s: %w", location, err)
	}
	return nil
}
