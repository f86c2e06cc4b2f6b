package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dgraph-io/badger/v4"
)

// BadgerCache stores entries in an embedded BadgerDB. Expiry uses Badger's
// native entry TTLs.
type BadgerCache struct {
	db *badger.DB
}

// BadgerOptions configures a BadgerCache.
type BadgerOptions struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps everything in RAM, for tests.
	InMemory bool

	// Logger receives Badger's internal messages. Nil silences them.
	Logger *log.Logger
}

// NewBadgerCache opens (or creates) a Badger database.
func NewBadgerCache(opts BadgerOptions) (*BadgerCache, error) {
	var bopts badger.Options
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if opts.Path == "" {
			return nil, errors.New("badger path is required for persistent cache")
		}
		if err := os.MkdirAll(opts.Path, 0750); err != nil {
			return nil, fmt.Errorf("create badger directory %s: %w", opts.Path, err)
		}
		bopts = badger.DefaultOptions(opts.Path)
	}

	bopts = bopts.WithNumVersionsToKeep(1)
	if opts.Logger != nil {
		bopts = bopts.WithLogger(&badgerLogger{logger: opts.Logger})
	} else {
		bopts = bopts.WithLogger(nil)
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &BadgerCache{db: db}, nil
}

// Get retrieves a value.
func (c *BadgerCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value. A ttl of zero or less stores it without expiry.
func (c *BadgerCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(key), data)
		if ttl > 0 {
			e = e.WithTTL(ttl)
		}
		return txn.SetEntry(e)
	})
}

// Delete removes a value.
func (c *BadgerCache) Delete(ctx context.Context, key string) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Close closes the database.
func (c *BadgerCache) Close() error {
	return c.db.Close()
}

// badgerLogger adapts a charmbracelet logger to badger.Logger.
type badgerLogger struct {
	logger *log.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any)   { l.logger.Errorf(format, args...) }
func (l *badgerLogger) Warningf(format string, args ...any) { l.logger.Warnf(format, args...) }
func (l *badgerLogger) Infof(format string, args ...any)    { l.logger.Debugf(format, args...) }
func (l *badgerLogger) Debugf(format string, args ...any)   { l.logger.Debugf(format, args...) }

var _ Cache = (*BadgerCache)(nil)
