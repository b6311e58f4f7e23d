// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package library

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/mixgraph/internal/metrics"
	"github.com/tomtom215/mixgraph/internal/track"
)

const libraryKeyPrefix = "library:"

// Options configures Open.
type Options struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path     string
	InMemory bool

	// GCRatio is the discard ratio passed to value log GC. Default: 0.5
	GCRatio float64
}

// Store is a BadgerDB-backed library catalogue. It is safe for concurrent
// use.
type Store struct {
	db        *badger.DB
	opts      Options
	logger    zerolog.Logger
	now       func() time.Time
	closeOnce sync.Once
}

// Open opens (or creates) the store.
func Open(opts Options, logger zerolog.Logger) (*Store, error) {
	if !opts.InMemory && strings.TrimSpace(opts.Path) == "" {
		return nil, fmt.Errorf("open library store: path is required")
	}
	if opts.GCRatio <= 0 || opts.GCRatio >= 1 {
		opts.GCRatio = 0.5
	}

	logger = logger.With().Str("component", "library").Logger()

	bopts := badger.DefaultOptions(opts.Path)
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	}
	bopts.Logger = newBadgerLogger(logger)

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	logger.Info().
		Str("path", opts.Path).
		Bool("in_memory", opts.InMemory).
		Msg("library store opened")

	return &Store{
		db:     db,
		opts:   opts,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Close closes the underlying database. Further calls are no-ops.
func (s *Store) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.db.Close()
	})
	return err
}

// Ping reports whether the store can serve requests.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.db.IsClosed() {
		return ErrClosed
	}
	return s.db.View(func(*badger.Txn) error { return nil })
}

// Create stores a new library and returns it with its assigned id and
// timestamps.
func (s *Store) Create(ctx context.Context, name string, tracks []track.Track, meta track.MetadataSet) (lib *Library, err error) {
	defer observe("create", time.Now(), &err)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidLibrary)
	}
	if len(tracks) == 0 {
		return nil, fmt.Errorf("%w: at least one track is required", ErrInvalidLibrary)
	}
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	lib = &Library{
		ID:        uuid.New().String(),
		Name:      name,
		Tracks:    slices.Clone(tracks),
		Metadata:  meta,
		CreatedAt: now,
		UpdatedAt: now,
	}

	data, err := json.Marshal(lib)
	if err != nil {
		return nil, fmt.Errorf("marshal library: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(libraryKey(lib.ID), data)
	})
	if err != nil {
		return nil, fmt.Errorf("store library: %w", err)
	}

	s.logger.Debug().
		Str("library_id", lib.ID).
		Int("tracks", len(lib.Tracks)).
		Msg("library created")
	return lib, nil
}

// Get returns the library with the given id.
func (s *Store) Get(ctx context.Context, id string) (lib *Library, err error) {
	defer observe("get", time.Now(), &err)

	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	lib = &Library{}
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(libraryKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get library: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, lib)
		})
	})
	if err != nil {
		return nil, err
	}
	return lib, nil
}

// List returns every library summary, newest first.
func (s *Store) List(ctx context.Context) (summaries []Summary, err error) {
	defer observe("list", time.Now(), &err)

	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	summaries = []Summary{}
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(libraryKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var lib Library
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &lib)
			})
			if err != nil {
				s.logger.Warn().Err(err).Str("key", string(it.Item().Key())).Msg("skipping unreadable library")
				continue
			}
			summaries = append(summaries, lib.Summary())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list libraries: %w", err)
	}

	slices.SortFunc(summaries, func(a, b Summary) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return summaries, nil
}

// Delete removes the library with the given id.
func (s *Store) Delete(ctx context.Context, id string) (err error) {
	defer observe("delete", time.Now(), &err)

	if err := s.ready(ctx); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		key := libraryKey(id)
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		} else if err != nil {
			return fmt.Errorf("get library: %w", err)
		}
		if err := txn.Delete(key); err != nil {
			return fmt.Errorf("delete library: %w", err)
		}
		return nil
	})
}

// Count returns the number of stored libraries.
func (s *Store) Count(ctx context.Context) (int, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}

	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(libraryKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// RunGC reclaims value log space until nothing is left to rewrite. It is a
// no-op for in-memory stores.
func (s *Store) RunGC() error {
	if s.opts.InMemory {
		return nil
	}
	if s.db.IsClosed() {
		return ErrClosed
	}
	for {
		err := s.db.RunValueLogGC(s.opts.GCRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run GC: %w", err)
		}
	}
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.db.IsClosed() {
		return ErrClosed
	}
	return nil
}

func libraryKey(id string) []byte {
	return []byte(libraryKeyPrefix + id)
}

func observe(operation string, start time.Time, err *error) {
	metrics.RecordLibraryOperation(operation, time.Since(start), *err)
}
