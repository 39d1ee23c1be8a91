package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgfetch/internal/core/ports"
)

// LinkerNodeID is the unique identifier for the hard-link Graft node.
const LinkerNodeID graft.ID = "adapter.fs.linker"

func init() {
	graft.Register(graft.Node[ports.Linker]{
		ID:        LinkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Linker, error) {
			return NewLinker(), nil
		},
	})
}
