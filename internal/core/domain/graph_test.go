package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/pkgfetch/internal/core/domain"
	"go.trai.ch/zerr"
)

func pkg(name, version string, deps ...string) *domain.Package {
	p := &domain.Package{
		Name:    domain.NewInternedString(name),
		Version: domain.NewInternedString(version),
	}
	for _, d := range deps {
		p.Depends = append(p.Depends, domain.NewDependency(d))
	}
	return p
}

func TestGraph_AddPackage(t *testing.T) {
	g := domain.NewGraph()
	p := pkg("busybox", "1.36.1-r2")

	if err := g.AddPackage(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := g.AddPackage(p)
	if err == nil {
		t.Fatal("expected error when adding duplicate package, got nil")
	}
	if !errors.Is(err, domain.ErrPackageAlreadyInGraph) {
		t.Errorf("expected ErrPackageAlreadyInGraph, got %v", err)
	}
	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if name, ok := zErr.Metadata()["package"].(string); !ok || name != "busybox" {
		t.Errorf("expected metadata package=busybox, got %v", zErr.Metadata()["package"])
	}
	if g.Len() != 1 {
		t.Errorf("expected 1 package, got %d", g.Len())
	}
}

func TestGraph_Validate_Cycle(t *testing.T) {
	g := domain.NewGraph()
	if err := g.AddPackage(pkg("A", "1", "B")); err != nil {
		t.Fatalf("failed to add A: %v", err)
	}
	if err := g.AddPackage(pkg("B", "1", "A")); err != nil {
		t.Fatalf("failed to add B: %v", err)
	}

	err := g.Validate()
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !errors.Is(err, domain.ErrCycleDetected) {
		t.Fatalf("expected ErrCycleDetected, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if cycle, ok := zErr.Metadata()["cycle"].(string); !ok || cycle != "A -> B -> A" {
		t.Errorf("expected cycle A -> B -> A, got %v", zErr.Metadata()["cycle"])
	}
}

func TestGraph_Validate_MissingDependency(t *testing.T) {
	g := domain.NewGraph()
	if err := g.AddPackage(pkg("A", "1", "ghost")); err != nil {
		t.Fatalf("failed to add A: %v", err)
	}

	err := g.Validate()
	if !errors.Is(err, domain.ErrMissingDependency) {
		t.Fatalf("expected ErrMissingDependency, got %v", err)
	}
}

func TestGraph_Walk(t *testing.T) {
	g := domain.NewGraph()
	// A -> B -> C, install order: C, B, A
	for _, p := range []*domain.Package{pkg("A", "1", "B"), pkg("B", "1", "C"), pkg("C", "1")} {
		if err := g.AddPackage(p); err != nil {
			t.Fatalf("failed to add %s: %v", p, err)
		}
	}

	if err := g.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var order []string
	for p := range g.Walk() {
		order = append(order, p.Name.String())
	}

	expected := []string{"C", "B", "A"}
	if len(order) != len(expected) {
		t.Fatalf("expected %d packages, got %d", len(expected), len(order))
	}
	for i, name := range expected {
		if order[i] != name {
			t.Errorf("expected %s at position %d, got %s", name, i, order[i])
		}
	}
}

func TestGraph_Walk_DeterministicForDisconnected(t *testing.T) {
	for range 20 {
		g := domain.NewGraph()
		for _, name := range []string{"zlib", "musl", "busybox"} {
			if err := g.AddPackage(pkg(name, "1")); err != nil {
				t.Fatalf("failed to add %s: %v", name, err)
			}
		}
		if err := g.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var order []string
		for p := range g.Walk() {
			order = append(order, p.Name.String())
		}
		if order[0] != "zlib" || order[1] != "musl" || order[2] != "busybox" {
			t.Fatalf("expected insertion order, got %v", order)
		}
	}
}

func TestGraph_Walk_StopsEarly(t *testing.T) {
	g := domain.NewGraph()
	for _, name := range []string{"a", "b", "c"} {
		if err := g.AddPackage(pkg(name, "1")); err != nil {
			t.Fatalf("failed to add %s: %v", name, err)
		}
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count := 0
	for range g.Walk() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("expected iteration to stop after 1, got %d", count)
	}
}
