package petal

import "github.com/samber/mo"

// ValueBundle holds the per-phase values of one attribute. Base is always
// present; Hover, Press and Cancel override it for the phases that use them
// (see ResolveInteractive).
//
// The With* methods return an updated copy, so a bundle can be shared and
// extended without affecting the original:
//
//	b := petal.Vals(petal.Px(10)).WithHover(petal.Px(20))
type ValueBundle[T any] struct {
	Base   T
	Hover  mo.Option[T]
	Press  mo.Option[T]
	Cancel mo.Option[T]
}

// Vals returns a base-only bundle.
func Vals[T any](base T) ValueBundle[T] {
	return ValueBundle[T]{Base: base}
}

// WithBase returns a copy of b with Base replaced.
func (b ValueBundle[T]) WithBase(v T) ValueBundle[T] {
	b.Base = v
	return b
}

// WithHover returns a copy of b with the hover value set.
func (b ValueBundle[T]) WithHover(v T) ValueBundle[T] {
	b.Hover = mo.Some(v)
	return b
}

// WithPress returns a copy of b with the press value set.
func (b ValueBundle[T]) WithPress(v T) ValueBundle[T] {
	b.Press = mo.Some(v)
	return b
}

// WithCancel returns a copy of b with the press-cancel value set.
func (b ValueBundle[T]) WithCancel(v T) ValueBundle[T] {
	b.Cancel = mo.Some(v)
	return b
}

// Lerp converts b into a LerpBundle that interpolates with fn.
func (b ValueBundle[T]) Lerp(fn LerpFunc[T]) LerpBundle[T] {
	return LerpBundle[T]{Values: b, Lerp: fn}
}

// LerpBundle is a ValueBundle whose values can be interpolated. It is what
// animated declarations carry.
type LerpBundle[T any] struct {
	Values ValueBundle[T]
	Lerp   LerpFunc[T]
}
