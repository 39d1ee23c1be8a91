package domain

import (
	"iter"
	"math/bits"
)

// MaxRepositories is the number of repository slots a database can configure.
const MaxRepositories = 32

// RepoSet is the set of repository slots hosting a package.
// Iteration is always in ascending slot order.
type RepoSet struct {
	bits uint32
}

// NewRepoSet returns a set holding the given slots. Out-of-range slots are ignored.
func NewRepoSet(indices ...int) RepoSet {
	var s RepoSet
	for _, i := range indices {
		s.Add(i)
	}
	return s
}

// Add inserts a slot and reports whether it was in range.
func (s *RepoSet) Add(index int) bool {
	if index < 0 || index >= MaxRepositories {
		return false
	}
	s.bits |= 1 << uint(index)
	return true
}

// Union returns the slots present in either set.
func (s RepoSet) Union(o RepoSet) RepoSet {
	return RepoSet{bits: s.bits | o.bits}
}

// Has reports whether the slot is in the set.
func (s RepoSet) Has(index int) bool {
	if index < 0 || index >= MaxRepositories {
		return false
	}
	return s.bits&(1<<uint(index)) != 0
}

// Empty reports whether no repository carries the package.
func (s RepoSet) Empty() bool {
	return s.bits == 0
}

// Len returns the number of slots in the set.
func (s RepoSet) Len() int {
	return bits.OnesCount32(s.bits)
}

// First returns the lowest slot in the set.
func (s RepoSet) First() (int, bool) {
	for i := range s.All() {
		return i, true
	}
	return 0, false
}

// All yields the slots in ascending order.
func (s RepoSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range MaxRepositories {
			if s.Has(i) && !yield(i) {
				return
			}
		}
	}
}
