package bootstrap

import (
	"parkspot/internal/infra/localstore"
	"parkspot/internal/pkg/config"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewLocalStore,
	),
)

// NewLocalStore builds the durable key/value layer. An empty directory opts
// out of durability and keeps everything in process memory.
func NewLocalStore(cfg config.Config) (localstore.Store, error) {
	if cfg.Storage.Dir == "" {
		return localstore.NewMemoryStore(), nil
	}
	return localstore.NewFileStore(cfg.Storage.Dir)
}
