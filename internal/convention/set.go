package convention

import (
	"fmt"
	"sort"

	"github.com/specialistvlad/licensegrid/internal/build"
)

// Value is the type-erased view of a Property, used by code that only knows
// property names (build descriptions, config dumps).
type Value interface {
	Name() string
	IsExplicit() bool
	Unset()
	HasConvention() bool

	resolve() any
	newTarget() any
	assign(target any) error
}

// Set is the named collection of properties a task exposes.
type Set struct {
	owner string
	props map[string]Value
	order []string
}

// NewSet creates an empty set. owner names the task in error messages.
func NewSet(owner string) *Set {
	return &Set{owner: owner, props: make(map[string]Value)}
}

// Register creates a property of type T and adds it to the set. Property
// names are fixed by the task type, so a duplicate is a programming error.
func Register[T any](s *Set, name string) *Property[T] {
	if _, exists := s.props[name]; exists {
		panic(fmt.Sprintf("convention: property %q already registered on %s", name, s.owner))
	}
	p := &Property[T]{name: name}
	s.props[name] = p
	s.order = append(s.order, name)
	return p
}

// Bind installs fn as the convention of the named property. It fails with a
// configuration error when the property does not exist or holds another type.
func Bind[T any](s *Set, name string, fn func() T) error {
	v, ok := s.props[name]
	if !ok {
		return &build.ConfigurationError{Subject: s.owner, Reason: fmt.Sprintf("no property %q to bind", name)}
	}
	p, ok := v.(*Property[T])
	if !ok {
		return &build.ConfigurationError{Subject: s.owner, Reason: fmt.Sprintf("property %q cannot be bound to %T", name, *new(T))}
	}
	p.SetConvention(fn)
	return nil
}

// Owner names the task the set belongs to.
func (s *Set) Owner() string { return s.owner }

// Lookup returns the named property.
func (s *Set) Lookup(name string) (Value, bool) {
	v, ok := s.props[name]
	return v, ok
}

// Names returns property names in registration order.
func (s *Set) Names() []string {
	return append([]string(nil), s.order...)
}

// Explicit returns the sorted names of properties holding an explicit value.
func (s *Set) Explicit() []string {
	var names []string
	for name, v := range s.props {
		if v.IsExplicit() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Unbound returns the sorted names of properties without a convention.
func (s *Set) Unbound() []string {
	var names []string
	for name, v := range s.props {
		if !v.HasConvention() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Resolve evaluates every property now.
func (s *Set) Resolve() map[string]any {
	out := make(map[string]any, len(s.props))
	for name, v := range s.props {
		out[name] = v.resolve()
	}
	return out
}

// Assign sets an explicit value by name. decode receives a pointer to a zero
// value of the property's type and must fill it in.
func (s *Set) Assign(name string, decode func(target any) error) error {
	v, ok := s.props[name]
	if !ok {
		return &build.ConfigurationError{Subject: s.owner, Reason: fmt.Sprintf("unknown property %q", name)}
	}
	target := v.newTarget()
	if err := decode(target); err != nil {
		return fmt.Errorf("%s.%s: %w", s.owner, name, err)
	}
	return v.assign(target)
}
