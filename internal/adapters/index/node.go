package index

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgfetch/internal/adapters/cas"
	"go.trai.ch/pkgfetch/internal/adapters/config"
	"go.trai.ch/pkgfetch/internal/adapters/logger"
	"go.trai.ch/pkgfetch/internal/adapters/stream"
	"go.trai.ch/pkgfetch/internal/core/ports"
)

// NodeID is the unique identifier for the database opener Graft node.
const NodeID graft.ID = "adapter.database_opener"

func init() {
	graft.Register(graft.Node[ports.DatabaseOpener]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, stream.NodeID, cas.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DatabaseOpener, error) {
			cfg, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			streams, err := graft.Dep[ports.StreamOpener](ctx)
			if err != nil {
				return nil, err
			}
			caches, err := graft.Dep[ports.IndexCacheProvider](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewOpener(cfg, streams, caches, log), nil
		},
	})
}
