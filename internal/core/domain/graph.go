// Package domain contains the core domain models for package fetching.
package domain

import (
	"iter"
	"strings"

	"go.trai.ch/zerr"
)

// Graph represents the dependency graph of a resolved package set.
// Each name appears at most once; edges follow Package.Depends by name.
type Graph struct {
	packages     map[InternedString]*Package
	order        []InternedString
	installOrder []InternedString
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		packages: make(map[InternedString]*Package),
	}
}

// AddPackage adds a package to the graph.
// It returns an error if a package with the same name already exists.
func (g *Graph) AddPackage(p *Package) error {
	if _, exists := g.packages[p.Name]; exists {
		return zerr.With(zerr.Wrap(ErrPackageAlreadyInGraph, "package already in graph"), "package", p.Name.String())
	}
	g.packages[p.Name] = p
	g.order = append(g.order, p.Name)
	return nil
}

// Len returns the number of packages in the graph.
func (g *Graph) Len() int {
	return len(g.packages)
}

// Validate checks for cycles using a depth-first topological sort.
// Roots are visited in insertion order so the resulting install order is deterministic.
func (g *Graph) Validate() error {
	g.installOrder = make([]InternedString, 0, len(g.packages))
	visited := make(map[InternedString]int) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		pkg, exists := g.packages[u]
		if !exists {
			return zerr.With(zerr.Wrap(ErrMissingDependency, "dependency not in graph"), "dependency", u.String())
		}

		for _, dep := range pkg.Depends {
			switch visited[dep.Name] {
			case 1:
				return g.buildCycleError(path, dep.Name)
			case 0:
				if err := visit(dep.Name); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.installOrder = append(g.installOrder, u)
		return nil
	}

	for _, name := range g.order {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

func (g *Graph) buildCycleError(path []InternedString, dep InternedString) error {
	var b strings.Builder
	for _, node := range path {
		if node != dep && b.Len() == 0 {
			continue
		}
		b.WriteString(node.String())
		b.WriteString(" -> ")
	}
	b.WriteString(dep.String())
	return zerr.With(zerr.Wrap(ErrCycleDetected, "dependency cycle"), "cycle", b.String())
}

// Walk returns an iterator that yields packages in install order, dependencies first.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[*Package] {
	return func(yield func(*Package) bool) {
		for _, name := range g.installOrder {
			if !yield(g.packages[name]) {
				return
			}
		}
	}
}
