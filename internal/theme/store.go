package theme

import (
	"encoding/json"
	"fmt"
)

const (
	// StorageKey is the local record key, shared with the browser script.
	StorageKey = "theme"

	// RootAttribute mirrors the active theme on the document root.
	RootAttribute = "data-theme"
)

// Env tells a Store which execution environment it is running in.
type Env int

const (
	// EnvServer is server-side rendering: no local record is available.
	EnvServer Env = iota
	// EnvBrowser is any client that owns a persistent local record.
	EnvBrowser
)

// Encoding selects how the theme is written to the local record.
type Encoding int

const (
	// EncodingJSON stores the value JSON-encoded ("\"dark\""), as the browser script does.
	EncodingJSON Encoding = iota
	// EncodingRaw stores the bare value ("dark").
	EncodingRaw
)

// Storage is a synchronous key/value record, like the browser's localStorage.
type Storage interface {
	GetItem(key string) (string, bool)
	SetItem(key, value string) error
}

// Root receives the active theme as a document attribute.
type Root interface {
	SetAttribute(name, value string)
}

// AttributeFunc adapts a function to the Root interface.
type AttributeFunc func(name, value string)

func (f AttributeFunc) SetAttribute(name, value string) { f(name, value) }

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithEncoding sets the local record encoding. The default is EncodingJSON.
func WithEncoding(e Encoding) StoreOption {
	return func(s *Store) { s.encoding = e }
}

// WithRoot makes the Store reflect the active theme onto root.
func WithRoot(root Root) StoreOption {
	return func(s *Store) { s.root = root }
}

// WithInitial sets the value written when the local record is absent or
// unusable. The default is Default.
func WithInitial(t Theme) StoreOption {
	return func(s *Store) {
		if t.Valid() {
			s.initial = t
		}
	}
}

// Store holds the client-side preference. It is not safe for concurrent use;
// construct one per page or per request.
type Store struct {
	env      Env
	storage  Storage
	root     Root
	encoding Encoding
	initial  Theme
	current  Theme
}

// NewStore initialises a Store. In EnvBrowser an absent or unusable local
// record is replaced with the initial value (Default unless WithInitial is
// given) and an existing valid one is adopted. In
// EnvServer the Store starts at Default and storage is never touched; storage
// may be nil.
func NewStore(env Env, storage Storage, opts ...StoreOption) (*Store, error) {
	s := &Store{env: env, storage: storage, encoding: EncodingJSON, initial: Default, current: Default}
	for _, opt := range opts {
		opt(s)
	}
	if env != EnvBrowser {
		return s, nil
	}
	if storage == nil {
		return nil, fmt.Errorf("theme: browser store requires storage")
	}

	raw, ok := storage.GetItem(StorageKey)
	if ok {
		if t, err := s.decode(raw); err == nil {
			s.current = t
			s.reflect()
			return s, nil
		}
	}
	if err := storage.SetItem(StorageKey, s.encode(s.initial)); err != nil {
		return nil, fmt.Errorf("theme: initialise local record: %w", err)
	}
	s.current = s.initial
	s.reflect()
	return s, nil
}

// ReadRecord returns the theme held in storage's local record without
// initialising it. ok is false when the record is absent or unusable.
func ReadRecord(storage Storage, enc Encoding) (t Theme, ok bool) {
	raw, found := storage.GetItem(StorageKey)
	if !found {
		return "", false
	}
	s := Store{encoding: enc}
	t, err := s.decode(raw)
	if err != nil {
		return "", false
	}
	return t, true
}

// Theme returns the active theme.
func (s *Store) Theme() Theme {
	return s.current
}

// Switch makes t the active theme: the local record is overwritten, the
// in-memory value updated and the root attribute set. Switching to the
// already-active theme rewrites the same value.
func (s *Store) Switch(t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, string(t))
	}
	if s.env == EnvBrowser {
		if err := s.storage.SetItem(StorageKey, s.encode(t)); err != nil {
			return fmt.Errorf("theme: write local record: %w", err)
		}
	}
	s.current = t
	s.reflect()
	return nil
}

func (s *Store) reflect() {
	if s.root != nil {
		s.root.SetAttribute(RootAttribute, string(s.current))
	}
}

func (s *Store) encode(t Theme) string {
	if s.encoding == EncodingRaw {
		return string(t)
	}
	b, _ := json.Marshal(string(t))
	return string(b)
}

func (s *Store) decode(raw string) (Theme, error) {
	v := raw
	if s.encoding == EncodingJSON {
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return "", fmt.Errorf("decode local record: %w", err)
		}
	}
	return Parse(v)
}
