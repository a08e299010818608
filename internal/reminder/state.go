package reminder

import "encoding/json"

// CompletionSet is the set of completed task indices for one visitor. It is
// immutable; Toggle and Clear return a new set. Indices keep the order in
// which they were marked complete.
type CompletionSet struct {
	indices []int
}

// NewCompletionSet builds a set from stored indices, dropping anything
// outside [0, taskCount) and any repeats.
func NewCompletionSet(taskCount int, indices ...int) CompletionSet {
	seen := make(map[int]bool, len(indices))
	kept := make([]int, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= taskCount || seen[i] {
			continue
		}
		seen[i] = true
		kept = append(kept, i)
	}
	return CompletionSet{indices: kept}
}

func (s CompletionSet) Has(index int) bool {
	for _, i := range s.indices {
		if i == index {
			return true
		}
	}
	return false
}

// Toggle removes index when present and appends it otherwise.
func (s CompletionSet) Toggle(index int) CompletionSet {
	next := make([]int, 0, len(s.indices)+1)
	found := false
	for _, i := range s.indices {
		if i == index {
			found = true
			continue
		}
		next = append(next, i)
	}
	if !found {
		next = append(next, index)
	}
	return CompletionSet{indices: next}
}

func (s CompletionSet) Indices() []int {
	out := make([]int, len(s.indices))
	copy(out, s.indices)
	return out
}

func (s CompletionSet) Len() int {
	return len(s.indices)
}

// MarshalJSON encodes the set as a plain array. The empty set is [].
func (s CompletionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Indices())
}
