package convention

import "fmt"

// Property is a task property with a two-tier resolution: explicit value
// first, then the bound convention evaluated at read time.
type Property[T any] struct {
	name       string
	convention func() T
	copy       func(T) T
	value      T
	explicit   bool
}

// Name returns the property name used for binding and overrides.
func (p *Property[T]) Name() string { return p.name }

// WithCopy makes the property hand out copies made by fn, for both tiers.
// Set stores a copy too, so callers never share a collection with it.
func (p *Property[T]) WithCopy(fn func(T) T) *Property[T] {
	p.copy = fn
	return p
}

// Get resolves the property. Without an explicit value and without a bound
// convention it yields the zero value of T.
func (p *Property[T]) Get() T {
	switch {
	case p.explicit:
		return p.copied(p.value)
	case p.convention != nil:
		return p.copied(p.convention())
	}
	var zero T
	return zero
}

// Set assigns an explicit value. Later changes to the convention source are
// no longer observed.
func (p *Property[T]) Set(v T) {
	p.value = p.copied(v)
	p.explicit = true
}

func (p *Property[T]) copied(v T) T {
	if p.copy == nil {
		return v
	}
	return p.copy(v)
}

// Unset drops the explicit value so reads fall back to the convention again.
func (p *Property[T]) Unset() {
	var zero T
	p.value = zero
	p.explicit = false
}

// IsExplicit reports whether Set was called since the last Unset.
func (p *Property[T]) IsExplicit() bool { return p.explicit }

// HasConvention reports whether a convention is bound.
func (p *Property[T]) HasConvention() bool { return p.convention != nil }

// SetConvention replaces the convention. A nil fn removes it.
func (p *Property[T]) SetConvention(fn func() T) { p.convention = fn }

func (p *Property[T]) resolve() any { return p.Get() }

func (p *Property[T]) newTarget() any { return new(T) }

func (p *Property[T]) assign(target any) error {
	v, ok := target.(*T)
	if !ok {
		return fmt.Errorf("property %q expects %T, got %T", p.name, *new(T), target)
	}
	p.Set(*v)
	return nil
}
