package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/switchyard/pkg/adapters/bolt"
	"github.com/aretw0/switchyard/pkg/adapters/file"
	"github.com/aretw0/switchyard/pkg/adapters/memory"
	"github.com/aretw0/switchyard/pkg/adapters/redis"
	"github.com/aretw0/switchyard/pkg/ports"
)

// Backend is an opened cursor store with its optional distributed locker.
type Backend struct {
	Store  ports.CursorStore
	Locker ports.DistributedLocker
	closer io.Closer
}

// Close releases the underlying connection or file, if any.
func (b *Backend) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer.Close()
}

// OpenBackend opens the store selected by cfg.Store.
func OpenBackend(cfg ServeConfig) (*Backend, error) {
	switch cfg.Store {
	case StoreMemory, "":
		return &Backend{Store: memory.NewStore()}, nil
	case StoreFile:
		return &Backend{Store: file.New(cfg.FileDir)}, nil
	case StoreBolt:
		store, err := bolt.Open(cfg.BoltPath)
		if err != nil {
			return nil, err
		}
		return &Backend{Store: store, closer: store}, nil
	case StoreRedis:
		var opts []redis.Option
		if cfg.SessionTTL > 0 {
			opts = append(opts, redis.WithTTL(cfg.SessionTTL))
		}
		store := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, opts...)
		return &Backend{
			Store:  store,
			Locker: redis.NewLocker(store.Client(), "switchyard:"),
			closer: store,
		}, nil
	default:
		return nil, fmt.Errorf("unknown store %q (want memory, file, bolt or redis)", cfg.Store)
	}
}
