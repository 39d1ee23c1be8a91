package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgfetch/internal/core/ports"
)

// NodeID is the unique identifier for the index cache Graft node.
const NodeID graft.ID = "adapter.index_cache"

func init() {
	graft.Register(graft.Node[ports.IndexCacheProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IndexCacheProvider, error) {
			return Provider{}, nil
		},
	})
}
