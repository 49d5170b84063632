package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrNilRegistry    = errors.New("i18n: registry cannot be nil")
	ErrNilLoader      = errors.New("i18n: loader cannot be nil")
	ErrNilContext     = errors.New("i18n: context cannot be nil")
	ErrEmptyLanguage  = errors.New("i18n: language cannot be empty")
	ErrEmptyBaseURL   = errors.New("i18n: base URL cannot be empty")
	ErrNilFS          = errors.New("i18n: filesystem cannot be nil")
	ErrEmptyManifest  = errors.New("i18n: manifest contains no languages")
	ErrBundleNotFound = errors.New("i18n: bundle not found")
)

// LoadStage identifies where a bundle or manifest load failed.
type LoadStage string

const (
	// LoadStageFetch covers transport failures: the request never produced
	// a response body.
	LoadStageFetch LoadStage = "fetch"
	// LoadStageStatus covers non-success HTTP responses.
	LoadStageStatus LoadStage = "status"
	// LoadStageDecode covers bodies that are not the expected mapping
	// structure.
	LoadStageDecode LoadStage = "decode"
)

// LoadError reports a failed bundle load for a specific language.
// Callers branch on it to drive the default-language fallback.
type LoadError struct {
	// Lang is the language code whose load failed.
	Lang string
	// Stage is where the load failed.
	Stage LoadStage
	// Status is the HTTP status code when Stage is LoadStageStatus, zero
	// otherwise.
	Status int
	// Err is the underlying cause, if any.
	Err error
}

func (e *LoadError) Error() string {
	switch {
	case e.Stage == LoadStageStatus:
		return fmt.Sprintf("i18n: load %q: unexpected status %d", e.Lang, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("i18n: load %q: %s: %v", e.Lang, e.Stage, e.Err)
	default:
		return fmt.Sprintf("i18n: load %q: %s failed", e.Lang, e.Stage)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
