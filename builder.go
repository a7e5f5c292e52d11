package petal

import (
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
)

// warnOnOverwrite controls the warning logged when a builder replaces an
// earlier declaration for the same attribute. Set from Config.
var warnOnOverwrite = true

// StyleBuilder accumulates declarations for one node. Declaring an attribute
// a second time replaces the first declaration (last write wins) and logs a
// warning, so a builder never holds two declarations for one attribute.
//
//	style := petal.NewStyleBuilder().
//		Width(petal.Px(120)).
//		Height(petal.Px(40))
//	style.Interactive().
//		BorderColor(petal.Vals(petal.ColorWhite).WithHover(gold))
//	style.Animated(petal.Animate(0.15, ease.OutQuad)).
//		BackgroundColor(petal.Vals(slate).WithHover(teal).WithPress(navy))
//	node.SetStyle(style.Build())
//
// The plain setters live on StyleBuilder itself; Interactive and Animated
// return facades with one setter per attribute.
type StyleBuilder struct {
	style *DynamicStyle
}

// NewStyleBuilder returns an empty builder.
func NewStyleBuilder() *StyleBuilder {
	return &StyleBuilder{style: newDynamicStyle()}
}

// Len returns the number of declarations accumulated so far.
func (b *StyleBuilder) Len() int {
	return b.style.Len()
}

// Build drains the builder into a DynamicStyle. The builder is empty
// afterwards and can be reused.
func (b *StyleBuilder) Build() *DynamicStyle {
	s := b.style
	b.style = newDynamicStyle()
	return s
}

// ApplyTo writes the accumulated declarations to n immediately, resolved for
// n's current phase. Animated declarations are applied at rest. Returns the
// number of attributes that changed.
func (b *StyleBuilder) ApplyTo(n *Node, checkLock bool) int {
	if n == nil {
		return 0
	}
	return b.style.apply(n, checkLock)
}

// Custom adds a callback declaration. Custom declarations are never
// deduplicated.
func (b *StyleBuilder) Custom(fn func(CustomContext)) *StyleBuilder {
	b.add(CustomValue{Fn: fn})
	return b
}

// AnimatedCustom adds a callback declaration that receives animation states
// driven by settings.
func (b *StyleBuilder) AnimatedCustom(settings AnimationSettings, fn func(CustomContext)) *StyleBuilder {
	b.add(CustomValue{Fn: fn, Controller: mo.Some(NewAnimationController(settings))})
	return b
}

func (b *StyleBuilder) add(d Declaration) {
	if b.style.put(d) && warnOnOverwrite {
		logger.WithFields(logrus.Fields{
			"attribute": d.Attribute().String(),
			"variant":   d.Variant().String(),
		}).Warn("[petal] attribute declared twice; later declaration replaces the earlier one")
	}
}

// Interactive returns the facade for phase-dependent declarations.
func (b *StyleBuilder) Interactive() InteractiveBuilder {
	return InteractiveBuilder{b: b}
}

// Animated returns the facade for animated declarations. Every declaration
// made through it gets its own controller configured by settings.
func (b *StyleBuilder) Animated(settings AnimationSettings) AnimatedBuilder {
	return AnimatedBuilder{b: b, settings: settings}
}

// InteractiveBuilder declares attributes whose value depends on the
// interaction phase.
type InteractiveBuilder struct {
	b *StyleBuilder
}

// Builder returns the underlying StyleBuilder.
func (b InteractiveBuilder) Builder() *StyleBuilder { return b.b }

// AnimatedBuilder declares attributes that animate between per-phase values.
type AnimatedBuilder struct {
	b        *StyleBuilder
	settings AnimationSettings
}

// Builder returns the underlying StyleBuilder.
func (b AnimatedBuilder) Builder() *StyleBuilder { return b.b }

func addStatic[T any](b *StyleBuilder, a attribute[T], v T) *StyleBuilder {
	b.add(StaticValue[T]{attr: a, Value: a.cloneValue(v)})
	return b
}

func addInteractive[T any](b InteractiveBuilder, a attribute[T], v ValueBundle[T]) InteractiveBuilder {
	b.b.add(InteractiveValue[T]{attr: a, Bundle: a.cloneBundle(v)})
	return b
}

func addAnimated[T any](b AnimatedBuilder, a attribute[T], v ValueBundle[T]) AnimatedBuilder {
	b.b.add(AnimatedValue[T]{
		attr:       a,
		Bundle:     a.cloneBundle(v).Lerp(a.lerp),
		Controller: NewAnimationController(b.settings),
	})
	return b
}
