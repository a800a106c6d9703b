// Package store owns the persisted application document: it loads a stored
// payload, upgrades and reconciles it against the seed, and writes it back.
// Neither Load nor Save ever fails the caller; problems are logged and the
// in-memory document stays authoritative.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"ascend/internal/document"
	"ascend/internal/logging"
	"ascend/internal/storage"
)

// DefaultKey is the namespaced storage key holding the document.
const DefaultKey = "ascend.document.v1"

var ErrNotObject = errors.New("payload is not a JSON object")

var documentType = reflect.TypeOf(document.Document{})

// Store is single-writer and not safe for concurrent use.
type Store struct {
	kv         storage.KV
	key        string
	log        *logging.Logger
	migrations map[int]Migration

	// readFailed is set when the last Load could not read storage. Save
	// refuses to write until a Load succeeds, so a seed served after an
	// I/O error never replaces the stored document.
	readFailed bool
}

type Option func(*Store)

// WithKey overrides DefaultKey.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithMigrations replaces the migration table.
func WithMigrations(m map[int]Migration) Option {
	return func(s *Store) { s.migrations = m }
}

func New(kv storage.KV, log *logging.Logger, opts ...Option) *Store {
	if log == nil {
		log = logging.Nop()
	}
	s := &Store{
		kv:         kv,
		key:        DefaultKey,
		log:        log.With("component", "store"),
		migrations: DefaultMigrations(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Key() string { return s.key }

// Load returns the stored document, or the seed when nothing usable is stored.
func (s *Store) Load(ctx context.Context) document.Document {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.log.Error("read stored document", "key", s.key, "error", err)
		s.readFailed = true
		return document.Seed()
	}
	s.readFailed = false
	if !ok {
		return document.Seed()
	}
	doc, err := s.Decode(raw)
	if err != nil {
		s.log.Warn("stored document unreadable, using seed", "key", s.key, "bytes", len(raw), "error", err)
		return document.Seed()
	}
	return doc
}

// Decode runs the full reconciliation pipeline on raw bytes: parse, migrate,
// merge against the seed, conform to the document's types, decode,
// normalize.
func (s *Store) Decode(raw []byte) (document.Document, error) {
	payload, err := decodeObject(raw)
	if err != nil {
		return document.Document{}, err
	}
	if err := runMigrations(payload, s.migrations, document.CurrentVersion); err != nil {
		return document.Document{}, err
	}

	seed, err := toMap(document.Seed())
	if err != nil {
		return document.Document{}, err
	}
	merged, ok := conform(mergeWithSeed(seed, payload), documentType)
	if !ok {
		return document.Document{}, ErrNotObject
	}

	data, err := json.Marshal(merged)
	if err != nil {
		return document.Document{}, fmt.Errorf("marshal merged: %w", err)
	}
	var doc document.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document.Document{}, fmt.Errorf("decode merged: %w", err)
	}
	doc.Normalize()
	return doc, nil
}

// Save writes the full document. A failed write is logged and dropped.
// After a Load that failed to read storage, Save writes nothing until a
// later Load succeeds.
func (s *Store) Save(ctx context.Context, doc document.Document) {
	if s.readFailed {
		s.log.Warn("skip write after failed read", "key", s.key)
		return
	}
	data, err := Encode(doc)
	if err != nil {
		s.log.Error("encode document", "key", s.key, "error", err)
		return
	}
	if err := s.kv.Put(ctx, s.key, data); err != nil {
		s.log.Error("write document", "key", s.key, "bytes", len(data), "error", err)
	}
}

// Reset clears the stored document; the next Load returns the seed.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("reset %s: %w", s.key, err)
	}
	s.readFailed = false
	return nil
}

// Export returns the loaded document as indented JSON.
func (s *Store) Export(ctx context.Context) ([]byte, error) {
	doc := s.Load(ctx)
	doc.Normalize()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return data, nil
}

// Encode serializes a normalized copy of doc.
func Encode(doc document.Document) ([]byte, error) {
	c := doc.Clone()
	c.Normalize()
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return data, nil
}

func decodeObject(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if dec.More() {
		return nil, errors.New("parse: trailing data")
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return obj, nil
}
