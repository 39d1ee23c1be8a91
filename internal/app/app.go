// Package app implements the application layer for pkgfetch.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/pkgfetch/internal/core/domain"
	"go.trai.ch/pkgfetch/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	opener   ports.DatabaseOpener
	resolver ports.Resolver
	fetcher  ports.PackageFetcher
	logger   ports.Logger
	tracer   ports.Tracer
}

// New creates a new App instance.
func New(
	opener ports.DatabaseOpener,
	resolver ports.Resolver,
	fetcher ports.PackageFetcher,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		opener:   opener,
		resolver: resolver,
		fetcher:  fetcher,
		logger:   log,
		tracer:   tracer,
	}
}

// Fetch downloads the packages named on the command line.
//
// Names are processed in order and the first failure ends the run. The
// database is opened once and closed on every path.
func (a *App) Fetch(ctx context.Context, names []string, opts domain.FetchOptions) (err error) {
	// 1. Validate arguments
	if len(names) == 0 {
		return domain.ErrNoPackagesSpecified
	}
	for _, name := range names {
		if err := domain.ValidatePackageName(name); err != nil {
			return err
		}
	}

	// 2. Open the database
	db, err := a.opener.Open(ctx, opts.Database)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil && err == nil {
			err = zerr.Wrap(closeErr, "failed to close package database")
		}
	}()

	// 3. Fetch every requested name
	for _, name := range names {
		if err := a.fetchName(ctx, db, name, opts); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) fetchName(ctx context.Context, db ports.Database, name string, opts domain.FetchOptions) (err error) {
	ctx, span := a.tracer.Start(ctx, "fetch "+name)
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
	}()
	span.SetAttribute("package", name)
	span.SetAttribute("recursive", opts.Recursive)

	rec, err := db.LookupName(name)
	if err != nil {
		return err
	}

	if opts.Recursive {
		return a.fetchClosure(ctx, db, name, opts)
	}

	pkg := selectGreatest(rec.Packages)
	if pkg == nil {
		a.logger.Warn(fmt.Sprintf("Unable to get '%s'", name))
		return zerr.With(zerr.Wrap(domain.ErrNoVariantsAvailable, "nothing to fetch"), "package", name)
	}
	span.SetAttribute("version", pkg.Version.String())
	a.tracer.EmitPlan(ctx, []string{pkg.String()})

	return a.fetcher.Fetch(ctx, db, pkg, opts)
}

// fetchClosure fetches name and everything it depends on, dependencies first.
func (a *App) fetchClosure(ctx context.Context, db ports.Database, name string, opts domain.FetchOptions) error {
	session := a.resolver.NewSession(db)
	defer session.Release()

	if err := session.Lock(ctx, domain.NewDependency(name)); err != nil {
		if errors.Is(err, domain.ErrUnresolvableDependency) {
			return zerr.With(zerr.Wrap(err, "unable to install"), "package", name)
		}
		return errors.Join(
			domain.ErrUnresolvableDependency,
			zerr.With(zerr.Wrap(err, "unable to install"), "package", name),
		)
	}

	var plan []*domain.Package
	for change := range session.Changes() {
		if change.New != nil {
			plan = append(plan, change.New)
		}
	}

	planned := make([]string, 0, len(plan))
	for _, pkg := range plan {
		planned = append(planned, pkg.String())
	}
	a.tracer.EmitPlan(ctx, planned)

	for _, pkg := range plan {
		if err := a.fetcher.Fetch(ctx, db, pkg, opts); err != nil {
			return err
		}
	}
	return nil
}

// selectGreatest returns the variant with the greatest version.
// Only a strictly greater version replaces the current pick.
func selectGreatest(pkgs []*domain.Package) *domain.Package {
	var best *domain.Package
	for _, pkg := range pkgs {
		if best == nil || domain.CompareVersions(pkg.Version.String(), best.Version.String()) == domain.VersionGreater {
			best = pkg
		}
	}
	return best
}
