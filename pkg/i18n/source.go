package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"
)

// maxDocumentBytes caps manifest and bundle response bodies.
const maxDocumentBytes = 4 << 20

// manifestBasename is the manifest file name relative to a source root.
const manifestBasename = "languages"

// Loader fetches the translation bundle for one language.
type Loader interface {
	Load(ctx context.Context, lang string) (*Bundle, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, lang string) (*Bundle, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, lang string) (*Bundle, error) {
	return f(ctx, lang)
}

// ManifestSource fetches the published list of supported languages.
type ManifestSource interface {
	Manifest(ctx context.Context) (*Manifest, error)
}

// Manifest is the language list document as published by the origin.
type Manifest struct {
	Languages   []Language `json:"languages" yaml:"languages"`
	DefaultLang string     `json:"defaultLang" yaml:"defaultLang"`
}

// HTTPSource serves the manifest and per-language bundles from a web origin.
// Every request carries a strictly monotonic cache-busting token so document
// edits are observed immediately; freshness is deliberately chosen over
// transfer efficiency. Concurrent loads of the same language are coalesced.
type HTTPSource struct {
	client       *http.Client
	baseURL      string
	manifestName string
	boot         int64
	seq          atomic.Uint64
	group        singleflight.Group
}

// HTTPSourceOption configures an HTTPSource during construction.
type HTTPSourceOption func(*HTTPSource) error

// NewHTTPSource creates a source rooted at baseURL. Bundles are expected at
// {baseURL}/{lang}.json and the manifest at {baseURL}/languages.json.
func NewHTTPSource(baseURL string, opts ...HTTPSourceOption) (*HTTPSource, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}

	s := &HTTPSource{
		client:       http.DefaultClient,
		baseURL:      baseURL,
		manifestName: manifestBasename + ".json",
		boot:         time.Now().Unix(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// WithHTTPClient sets the HTTP client used for fetches. Timeouts belong to
// the client; the source sets none of its own.
func WithHTTPClient(client *http.Client) HTTPSourceOption {
	return func(s *HTTPSource) error {
		if client != nil {
			s.client = client
		}
		return nil
	}
}

// WithManifestName overrides the manifest file name relative to the base URL.
func WithManifestName(name string) HTTPSourceOption {
	return func(s *HTTPSource) error {
		name = strings.Trim(strings.TrimSpace(name), "/")
		if name != "" {
			s.manifestName = name
		}
		return nil
	}
}

// Manifest fetches and decodes the language manifest.
func (s *HTTPSource) Manifest(ctx context.Context) (*Manifest, error) {
	body, _, err := s.fetch(ctx, s.manifestName)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, fmt.Errorf("i18n: decode manifest: %w", err)
	}
	if len(m.Languages) == 0 {
		return nil, ErrEmptyManifest
	}

	return &m, nil
}

// Load fetches and decodes the bundle for lang. Failures are reported as
// *LoadError so callers can drive the default-language fallback.
func (s *HTTPSource) Load(ctx context.Context, lang string) (*Bundle, error) {
	code := normalizeCode(lang)
	if code == "" {
		return nil, &LoadError{Lang: lang, Stage: LoadStageFetch, Err: ErrEmptyLanguage}
	}

	v, err, _ := s.group.Do(code, func() (any, error) {
		body, status, err := s.fetch(ctx, code+".json")
		if err != nil {
			var cause error
			stage := LoadStageFetch
			if status != 0 {
				stage = LoadStageStatus
				if status == http.StatusNotFound {
					cause = ErrBundleNotFound
				}
			} else {
				cause = err
			}
			return nil, &LoadError{Lang: code, Stage: stage, Status: status, Err: cause}
		}

		var values map[string]any
		if err := json.Unmarshal(body, &values); err != nil {
			return nil, &LoadError{Lang: code, Stage: LoadStageDecode, Err: err}
		}

		return NewBundle(values), nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Bundle), nil
}

// fetch requests a document relative to the base URL with a fresh
// cache-busting token. Returns the body, or the non-success status code as
// the second value with a non-nil error.
func (s *HTTPSource) fetch(ctx context.Context, name string) ([]byte, int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.documentURL(name), nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, resp.StatusCode, errors.New("i18n: unexpected response status")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, 0, err
	}

	return body, 0, nil
}

// documentURL builds the full URL for a document, token appended. The token
// is unique per fetch and strictly increasing for the process lifetime.
func (s *HTTPSource) documentURL(name string) string {
	sep := "?"
	if strings.Contains(name, "?") {
		sep = "&"
	}
	token := strconv.FormatInt(s.boot, 10) + "-" + strconv.FormatUint(s.seq.Add(1), 10)
	return s.baseURL + "/" + name + sep + "v=" + token
}

// FSSource serves the manifest and bundles from an fs.FS root. Intended for
// embedded defaults, tests, and embedders without a network origin. File
// convention: languages.json and {lang}.json at the root, with .yaml/.yml
// accepted alternatives.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource creates a source over fsys.
func NewFSSource(fsys fs.FS) (*FSSource, error) {
	if fsys == nil {
		return nil, ErrNilFS
	}
	return &FSSource{fsys: fsys}, nil
}

// Manifest reads and decodes the language manifest file.
func (s *FSSource) Manifest(ctx context.Context) (*Manifest, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	body, ext, err := s.readDocument(manifestBasename)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := unmarshalByExt(ext, body, &m); err != nil {
		return nil, fmt.Errorf("i18n: decode manifest: %w", err)
	}
	if len(m.Languages) == 0 {
		return nil, ErrEmptyManifest
	}

	return &m, nil
}

// Load reads and decodes the bundle file for lang.
func (s *FSSource) Load(ctx context.Context, lang string) (*Bundle, error) {
	code := normalizeCode(lang)
	if code == "" {
		return nil, &LoadError{Lang: lang, Stage: LoadStageFetch, Err: ErrEmptyLanguage}
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, &LoadError{Lang: code, Stage: LoadStageFetch, Err: err}
		}
	}

	body, ext, err := s.readDocument(code)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = ErrBundleNotFound
		}
		return nil, &LoadError{Lang: code, Stage: LoadStageFetch, Err: err}
	}

	var values map[string]any
	if err := unmarshalByExt(ext, body, &values); err != nil {
		return nil, &LoadError{Lang: code, Stage: LoadStageDecode, Err: err}
	}

	return NewBundle(values), nil
}

// readDocument tries basename with each supported extension in order and
// returns the first readable file.
func (s *FSSource) readDocument(basename string) ([]byte, string, error) {
	var lastErr error
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		body, err := fs.ReadFile(s.fsys, basename+ext)
		if err == nil {
			return body, ext, nil
		}
		lastErr = err
	}
	return nil, "", lastErr
}

func unmarshalByExt(ext string, data []byte, v any) error {
	if ext == ".yaml" || ext == ".yml" {
		return yaml.Unmarshal(data, v)
	}
	return json.Unmarshal(data, v)
}
