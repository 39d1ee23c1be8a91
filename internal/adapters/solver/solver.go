// Package solver resolves the dependency closure of a package.
package solver

import (
	"context"
	"errors"
	"iter"

	"go.trai.ch/pkgfetch/internal/core/domain"
	"go.trai.ch/pkgfetch/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver implements ports.Resolver.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// NewSession starts a resolution session against db.
func (r *Resolver) NewSession(db ports.Database) ports.Session {
	return &Session{db: db}
}

// Session implements ports.Session.
// Each name is selected once, as the greatest variant satisfying the first
// constraint that reaches it; later constraints must accept that choice.
type Session struct {
	db       ports.Database
	selected map[domain.InternedString]*domain.Package
	changes  []domain.Change
}

// Lock resolves dep and its transitive dependencies into install order.
func (s *Session) Lock(ctx context.Context, dep domain.Dependency) error {
	s.selected = make(map[domain.InternedString]*domain.Package)
	s.changes = nil

	g := domain.NewGraph()
	if err := s.visit(ctx, dep, g); err != nil {
		return unresolvable(err, dep)
	}
	if err := g.Validate(); err != nil {
		return unresolvable(err, dep)
	}

	for p := range g.Walk() {
		s.changes = append(s.changes, domain.Change{New: p})
	}
	return nil
}

func (s *Session) visit(ctx context.Context, dep domain.Dependency, g *domain.Graph) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if p, ok := s.selected[dep.Name]; ok {
		if !dep.SatisfiedBy(p.Version.String()) {
			conflict := zerr.With(zerr.Wrap(domain.ErrDependencyConflict, "selected version rejected"), "dependency", dep.String())
			return zerr.With(conflict, "selected", p.String())
		}
		return nil
	}

	rec, err := s.db.LookupName(dep.Name.String())
	if err != nil {
		return err
	}

	pick := greatestSatisfying(rec.Packages, dep)
	if pick == nil {
		return zerr.With(zerr.Wrap(domain.ErrNoVariantsAvailable, "no variant satisfies constraint"), "dependency", dep.String())
	}

	s.selected[dep.Name] = pick
	if err := g.AddPackage(pick); err != nil {
		return err
	}

	for _, d := range pick.Depends {
		if err := s.visit(ctx, d, g); err != nil {
			return err
		}
	}
	return nil
}

// greatestSatisfying returns the highest version accepted by dep.
// Among equal versions the first one wins.
func greatestSatisfying(pkgs []*domain.Package, dep domain.Dependency) *domain.Package {
	var best *domain.Package
	for _, p := range pkgs {
		if !dep.SatisfiedBy(p.Version.String()) {
			continue
		}
		if best == nil || domain.CompareVersions(p.Version.String(), best.Version.String()) == domain.VersionGreater {
			best = p
		}
	}
	return best
}

// Changes yields the resolved packages, dependencies first.
func (s *Session) Changes() iter.Seq[domain.Change] {
	return func(yield func(domain.Change) bool) {
		for _, c := range s.changes {
			if !yield(c) {
				return
			}
		}
	}
}

// Release drops the session state.
func (s *Session) Release() {
	s.selected = nil
	s.changes = nil
	s.db = nil
}

func unresolvable(err error, dep domain.Dependency) error {
	return errors.Join(domain.ErrUnresolvableDependency, zerr.With(zerr.Wrap(err, "resolution failed"), "package", dep.Name.String()))
}
