package eval

import (
	"casm/types"
	"errors"
	"fmt"
)

// Variable is one named, typed value in the store
type Variable struct {
	Name  string
	Value types.Value
}

// Store holds every variable of a running program.
// Variables keep their declaration order; redeclaring a name overwrites it in place.
type Store struct {
	vars     []Variable
	index    map[string]int
	capacity int // 0 = unlimited
}

// ErrStoreFull is returned by Set when a new name would exceed the capacity
var ErrStoreFull = errors.New("variable store is full")

// NewStore creates an empty store. capacity <= 0 means unlimited.
func NewStore(capacity int) *Store {
	if capacity < 0 {
		capacity = 0
	}
	return &Store{
		index:    make(map[string]int),
		capacity: capacity,
	}
}

// Get looks up a variable by name
// Returns (value, true) if found, (nil, false) if not found
func (s *Store) Get(name string) (types.Value, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.vars[i].Value, true
}

// Set installs or overwrites a variable. The type may change on overwrite.
func (s *Store) Set(name string, value types.Value) error {
	if i, ok := s.index[name]; ok {
		s.vars[i].Value = value
		return nil
	}
	if s.capacity > 0 && len(s.vars) >= s.capacity {
		return fmt.Errorf("%w (%d variables)", ErrStoreFull, s.capacity)
	}
	s.index[name] = len(s.vars)
	s.vars = append(s.vars, Variable{Name: name, Value: value})
	return nil
}

// Len returns the number of variables
func (s *Store) Len() int {
	return len(s.vars)
}

// Variables returns a copy of all variables in declaration order
func (s *Store) Variables() []Variable {
	out := make([]Variable, len(s.vars))
	copy(out, s.vars)
	return out
}
