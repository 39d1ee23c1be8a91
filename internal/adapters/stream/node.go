package stream

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgfetch/internal/core/ports"
)

// NodeID is the unique identifier for the stream opener Graft node.
const NodeID graft.ID = "adapter.stream_opener"

func init() {
	graft.Register(graft.Node[ports.StreamOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StreamOpener, error) {
			return NewOpener(), nil
		},
	})
}
