package fetcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgfetch/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pkgfetch/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pkgfetch/internal/adapters/stream"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pkgfetch/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pkgfetch/internal/core/ports"
)

// NodeID is the unique identifier for the fetcher Graft node.
const NodeID graft.ID = "engine.fetcher"

func init() {
	graft.Register(graft.Node[ports.PackageFetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			stream.NodeID,
			fs.LinkerNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (ports.PackageFetcher, error) {
			streams, err := graft.Dep[ports.StreamOpener](ctx)
			if err != nil {
				return nil, err
			}

			linker, err := graft.Dep[ports.Linker](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(streams, linker, log, tel), nil
		},
	})
}
