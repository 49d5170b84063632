package binder

import "errors"

var (
	ErrNilTranslator = errors.New("binder: translator cannot be nil")
	ErrNilDocument   = errors.New("binder: document cannot be nil")
	ErrNilReader     = errors.New("binder: reader cannot be nil")
	ErrNilPolicy     = errors.New("binder: policy cannot be nil")
	ErrNilMarkdown   = errors.New("binder: markdown renderer cannot be nil")
	ErrNilSwitchURL  = errors.New("binder: switch URL builder cannot be nil")
	ErrEmptyFlagBase = errors.New("binder: flag base cannot be empty")
)
