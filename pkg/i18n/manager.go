package i18n

import (
	"context"
	"log/slog"
	"sync"
)

// State is the lifecycle phase of a Manager.
type State int

const (
	// StateUninitialized means Init has not run yet.
	StateUninitialized State = iota
	// StateLoading means a bundle load is in flight.
	StateLoading
	// StateReady means a bundle is active and lookups serve translations.
	StateReady
	// StateFailed means even the default language failed to load and no
	// prior bundle exists to serve.
	StateFailed
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// PreferenceStore persists the visitor's language choice across sessions.
// Implementations must not fail: trouble reading degrades to "no
// preference", trouble writing is swallowed by the implementation.
type PreferenceStore interface {
	// Get returns the saved code and whether one is present.
	Get() (string, bool)
	// Set saves code, overwriting any previous value.
	Set(code string)
}

// Manager is the translation state machine: it resolves the initial
// language, loads bundles through its Loader, owns the single active bundle,
// and serves lookups to every collaborator. Construct one per visitor
// session or page view; instances are cheap and share the Registry and
// Loader behind them.
//
// The manager never renders anything. Binding lookups to a document is the
// binder's job, which keeps this state machine testable on its own.
type Manager struct {
	registry *Registry
	loader   Loader
	prefs    PreferenceStore
	log      *slog.Logger

	// Called when a key misses in the active bundle, after the diagnostic
	// log entry. Useful for collecting untranslated keys.
	missingKeyHandler func(lang, key string)

	events *broadcaster

	mu     sync.RWMutex
	state  State
	lang   string
	dir    Direction
	bundle *Bundle
}

// Option configures a Manager during construction.
type Option func(*Manager) error

// New creates a manager over registry and loader.
func New(registry *Registry, loader Loader, opts ...Option) (*Manager, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	if loader == nil {
		return nil, ErrNilLoader
	}

	m := &Manager{
		registry: registry,
		loader:   loader,
		log:      slog.New(slog.DiscardHandler),
		events:   newBroadcaster(),
		state:    StateUninitialized,
		dir:      DirectionLTR,
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// WithLogger sets the diagnostic logger. Every swallowed failure in the
// pipeline passes through it.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) error {
		if log != nil {
			m.log = log
		}
		return nil
	}
}

// WithPreferences attaches the store consulted during Init and updated on
// every successful switch.
func WithPreferences(store PreferenceStore) Option {
	return func(m *Manager) error {
		m.prefs = store
		return nil
	}
}

// WithMissingKeyHandler sets a handler called when a lookup misses.
func WithMissingKeyHandler(handler func(lang, key string)) Option {
	return func(m *Manager) error {
		m.missingKeyHandler = handler
		return nil
	}
}

// Init resolves the initial language and activates it: the saved preference
// when valid, else the first detected candidate supported by the registry
// (primary subtags accepted, "en-US" matches "en"), else the registry
// default. Candidate order is the caller's detection priority.
func (m *Manager) Init(ctx context.Context, candidates ...string) error {
	return m.SetLanguage(ctx, m.resolveInitial(candidates))
}

// resolveInitial picks the first registry-supported code from the saved
// preference followed by the detected candidates.
func (m *Manager) resolveInitial(candidates []string) string {
	ordered := candidates
	if m.prefs != nil {
		if saved, ok := m.prefs.Get(); ok && saved != "" {
			ordered = make([]string, 0, len(candidates)+1)
			ordered = append(ordered, saved)
			ordered = append(ordered, candidates...)
		}
	}

	for _, c := range ordered {
		if l, ok := m.registry.Get(c); ok {
			return l.Code
		}
	}

	return m.registry.Default().Code
}

// SetLanguage loads the bundle for code and activates it. The code is not
// pre-validated against the registry: the load itself decides. On failure
// for a non-default code the default is retried exactly once; when even the
// default fails the previous bundle, if any, stays active and the load
// error is returned. Success swaps language, bundle, and direction as one
// unit, persists the preference, and notifies subscribers exactly once.
func (m *Manager) SetLanguage(ctx context.Context, code string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return m.switchTo(ctx, code, true)
}

func (m *Manager) switchTo(ctx context.Context, code string, allowFallback bool) error {
	m.setState(StateLoading)

	bundle, err := m.loader.Load(ctx, code)
	if err != nil {
		m.log.WarnContext(ctx, "bundle load failed",
			slog.String("lang", code),
			slog.Any("error", err),
		)

		def := m.registry.Default().Code
		if allowFallback && normalizeCode(code) != def {
			return m.switchTo(ctx, def, false)
		}

		// Keep the last good bundle on screen rather than blanking it.
		m.mu.Lock()
		if m.bundle != nil {
			m.state = StateReady
		} else {
			m.state = StateFailed
		}
		m.mu.Unlock()
		return err
	}

	lang := normalizeCode(code)
	if lang == "" {
		lang = code
	}

	dir := bundle.Meta().Dir
	if dir == "" {
		if l, ok := m.registry.Get(lang); ok {
			dir = l.Dir
		} else {
			dir = DirectionLTR
		}
		m.log.DebugContext(ctx, "bundle carries no direction metadata",
			slog.String("lang", lang),
			slog.String("dir", string(dir)),
		)
	}
	if meta := bundle.Meta().Lang; meta != "" && normalizeCode(meta) != lang {
		m.log.DebugContext(ctx, "bundle meta disagrees with requested language",
			slog.String("requested", lang),
			slog.String("meta", meta),
		)
	}

	m.mu.Lock()
	m.lang = lang
	m.bundle = bundle
	m.dir = dir
	m.state = StateReady
	m.mu.Unlock()

	if m.prefs != nil {
		m.prefs.Set(lang)
	}
	m.events.broadcast(Change{Lang: lang, Dir: dir})

	m.log.DebugContext(ctx, "language activated",
		slog.String("lang", lang),
		slog.String("dir", string(dir)),
	)
	return nil
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// T resolves a dot-separated key path over the active bundle and replaces
// {{name}} placeholders on hits. A missing key, a non-string leaf, or an
// inactive bundle all return the key itself so callers always have a
// displayable value; each miss is logged and forwarded to the missing-key
// handler.
func (m *Manager) T(key string, placeholders ...M) string {
	m.mu.RLock()
	bundle := m.bundle
	lang := m.lang
	m.mu.RUnlock()

	if bundle != nil {
		if s, ok := bundle.String(key); ok {
			return replaceMergedPlaceholders(s, placeholders...)
		}
	}

	m.log.Warn("translation missing",
		slog.String("lang", lang),
		slog.String("key", key),
	)
	if m.missingKeyHandler != nil {
		m.missingKeyHandler(lang, key)
	}
	return key
}

// Lookup resolves a key path to its raw value: a string leaf, or the nested
// mapping/list itself. Content consumers use it to pull structured content
// (ticker items, question/answer groups). Unlike T it stays silent on
// misses.
func (m *Manager) Lookup(key string) (any, bool) {
	m.mu.RLock()
	bundle := m.bundle
	m.mu.RUnlock()

	if bundle == nil {
		return nil, false
	}
	return bundle.Lookup(key)
}

// Strings resolves a key path to a list of strings, nil when the path does
// not lead to a list.
func (m *Manager) Strings(key string) []string {
	m.mu.RLock()
	bundle := m.bundle
	m.mu.RUnlock()

	if bundle == nil {
		return nil
	}
	return bundle.Strings(key)
}

// Lang returns the active language code, empty before the first successful
// load.
func (m *Manager) Lang() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lang
}

// Language returns the registry descriptor of the active language. The zero
// descriptor means no language is active or the registry no longer lists it.
func (m *Manager) Language() Language {
	if l, ok := m.registry.Get(m.Lang()); ok {
		return l
	}
	return Language{}
}

// Dir returns the active text direction, taken from the bundle's metadata
// with the registry descriptor as fallback. Left-to-right before the first
// successful load.
func (m *Manager) Dir() Direction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dir
}

// IsRTL reports whether the active direction is right-to-left.
func (m *Manager) IsRTL() bool {
	return m.Dir().IsRTL()
}

// State returns the current lifecycle phase.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Languages returns the registry's supported languages.
func (m *Manager) Languages() []Language {
	return m.registry.Languages()
}

// Default returns the registry's default language descriptor.
func (m *Manager) Default() Language {
	return m.registry.Default()
}

// Subscribe registers for language-change notifications. One Change is
// delivered per successful switch; the subscription ends with ctx and the
// channel is closed. Delivery is non-blocking: a subscriber that has not
// drained its one-slot buffer misses the event.
func (m *Manager) Subscribe(ctx context.Context) (<-chan Change, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	return m.events.subscribe(ctx), nil
}
