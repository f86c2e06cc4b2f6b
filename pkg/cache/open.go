package cache

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendBadger = "badger"
	BackendNone   = "none"
)

// Backends lists every backend name in display order.
var Backends = []string{BackendFile, BackendRedis, BackendMongo, BackendBadger, BackendNone}

// Options selects and configures a backend.
type Options struct {
	Backend string

	Dir string // file

	RedisAddr     string // redis
	RedisPassword string
	RedisDB       int

	MongoURI        string // mongo
	MongoDatabase   string
	MongoCollection string

	BadgerPath string // badger

	Logger *log.Logger
}

// Open constructs the backend named by opts.Backend. An empty name means
// BackendFile.
func Open(ctx context.Context, opts Options) (Cache, error) {
	var (
		c   Cache
		err error
	)
	switch opts.Backend {
	case "", BackendFile:
		c, err = unwrap(NewFileCache(opts.Dir))
	case BackendRedis:
		c, err = unwrap(NewRedisCache(ctx, RedisOptions{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		}))
	case BackendMongo:
		c, err = unwrap(NewMongoCache(ctx, MongoOptions{
			URI:        opts.MongoURI,
			Database:   opts.MongoDatabase,
			Collection: opts.MongoCollection,
		}))
	case BackendBadger:
		c, err = unwrap(NewBadgerCache(BadgerOptions{Path: opts.BadgerPath, Logger: opts.Logger}))
	case BackendNone:
		c = NewNullCache()
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// unwrap keeps a typed nil pointer from turning into a non-nil Cache.
func unwrap[T Cache](c T, err error) (Cache, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}
