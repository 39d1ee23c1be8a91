package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgfetch/internal/adapters/index"  //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgfetch/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgfetch/internal/adapters/solver" //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgfetch/internal/adapters/telemetry"
	"go.trai.ch/pkgfetch/internal/adapters/telemetry/progrock"
	"go.trai.ch/pkgfetch/internal/core/ports"
	"go.trai.ch/pkgfetch/internal/engine/fetcher"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			index.NodeID,
			solver.NodeID,
			fetcher.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	opener, err := graft.Dep[ports.DatabaseOpener](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	fetch, err := graft.Dep[ports.PackageFetcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(opener, resolver, fetch, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
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

	return NewComponents(app, log, tel), nil
}
