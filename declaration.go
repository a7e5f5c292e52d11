package petal

import "github.com/samber/mo"

// DeclarationKind tags the variant of a Declaration.
type DeclarationKind uint8

const (
	DeclStatic      DeclarationKind = iota // fixed value
	DeclInteractive                        // value picked by interaction phase
	DeclAnimated                           // value interpolated between phases over time
	DeclCustom                             // opaque callback
)

func (k DeclarationKind) String() string {
	switch k {
	case DeclStatic:
		return "static"
	case DeclInteractive:
		return "interactive"
	case DeclAnimated:
		return "animated"
	case DeclCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Declaration is one attribute of a DynamicStyle. The set of variants is
// closed: StaticValue, InteractiveValue, AnimatedValue and CustomValue.
type Declaration interface {
	// Attribute returns the attribute the declaration writes, or AttrCustom.
	Attribute() AttributeKind
	// Variant returns the declaration's kind.
	Variant() DeclarationKind

	// apply resolves the declaration for n's current phase and writes it.
	apply(n *Node, phase InteractionPhase, checkLock bool) bool
	// advance moves any animation clock forward by dt seconds.
	advance(dt float32, phase InteractionPhase)
	// instantiate returns a copy with its own animation clock.
	instantiate() Declaration
}

// --- Static ---

// StaticValue is a declaration with a fixed value.
type StaticValue[T any] struct {
	attr  attribute[T]
	Value T
}

// NewStatic returns a static declaration of v for kind. If T is not the value
// type of kind the declaration writes nothing and every Apply is reported as
// a skip.
//
//	petal.NewStatic(petal.AttrWidth, petal.Px(50)).Apply(node, true)
func NewStatic[T any](kind AttributeKind, v T) StaticValue[T] {
	a := lookupAttribute[T](kind)
	return StaticValue[T]{attr: a, Value: a.cloneValue(v)}
}

func (s StaticValue[T]) Attribute() AttributeKind { return s.attr.kind }
func (s StaticValue[T]) Variant() DeclarationKind { return DeclStatic }

// Apply writes Value to n. When checkLock is set a locked attribute is left
// untouched. Reports whether n changed.
func (s StaticValue[T]) Apply(n *Node, checkLock bool) bool {
	return applyAttribute(n, s.attr, s.Value, checkLock)
}

func (s StaticValue[T]) apply(n *Node, _ InteractionPhase, checkLock bool) bool {
	return s.Apply(n, checkLock)
}

func (s StaticValue[T]) advance(float32, InteractionPhase) {}
func (s StaticValue[T]) instantiate() Declaration { return s }

// --- Interactive ---

// InteractiveValue is a declaration whose value depends on the interaction
// phase.
type InteractiveValue[T any] struct {
	attr   attribute[T]
	Bundle ValueBundle[T]
}

// NewInteractive returns an interactive declaration of bundle for kind. A
// mismatched T behaves as in NewStatic.
func NewInteractive[T any](kind AttributeKind, bundle ValueBundle[T]) InteractiveValue[T] {
	a := lookupAttribute[T](kind)
	return InteractiveValue[T]{attr: a, Bundle: a.cloneBundle(bundle)}
}

func (v InteractiveValue[T]) Attribute() AttributeKind { return v.attr.kind }
func (v InteractiveValue[T]) Variant() DeclarationKind { return DeclInteractive }

// Apply resolves Bundle for phase and writes the result to n.
func (v InteractiveValue[T]) Apply(phase InteractionPhase, n *Node, checkLock bool) bool {
	return applyAttribute(n, v.attr, ResolveInteractive(v.Bundle, phase), checkLock)
}

func (v InteractiveValue[T]) apply(n *Node, phase InteractionPhase, checkLock bool) bool {
	return v.Apply(phase, n, checkLock)
}

func (v InteractiveValue[T]) advance(float32, InteractionPhase) {}
func (v InteractiveValue[T]) instantiate() Declaration { return v }

// --- Animated ---

// AnimatedValue is a declaration that interpolates between per-phase values
// as the node's interaction phase changes. Its Controller owns the animation
// clock; each node gets its own controller when the style is attached.
type AnimatedValue[T any] struct {
	attr       attribute[T]
	Bundle     LerpBundle[T]
	Controller *AnimationController
}

// NewAnimated returns an animated declaration of bundle for kind with its own
// controller. Attributes without an interpolator hold the old value until
// each transition ends. A mismatched T behaves as in NewStatic.
func NewAnimated[T any](kind AttributeKind, bundle ValueBundle[T], settings AnimationSettings) AnimatedValue[T] {
	a := lookupAttribute[T](kind)
	return AnimatedValue[T]{
		attr:       a,
		Bundle:     a.cloneBundle(bundle).Lerp(a.lerp),
		Controller: NewAnimationController(settings),
	}
}

func (v AnimatedValue[T]) Attribute() AttributeKind { return v.attr.kind }
func (v AnimatedValue[T]) Variant() DeclarationKind { return DeclAnimated }

// Apply resolves Bundle between the transition base and the current
// transition and writes the result to n.
func (v AnimatedValue[T]) Apply(base, current InteractionAnimationState, n *Node, checkLock bool) bool {
	return applyAttribute(n, v.attr, ResolveAnimated(v.Bundle, base, current), checkLock)
}

func (v AnimatedValue[T]) apply(n *Node, phase InteractionPhase, checkLock bool) bool {
	base, current := controllerStates(v.Controller, phase)
	return v.Apply(base, current, n, checkLock)
}

func (v AnimatedValue[T]) advance(dt float32, phase InteractionPhase) {
	if v.Controller != nil {
		v.Controller.Update(dt, phase)
	}
}

func (v AnimatedValue[T]) instantiate() Declaration {
	if v.Controller != nil {
		v.Controller = NewAnimationController(v.Controller.Settings)
	}
	return v
}

// controllerStates returns the states an animated declaration resolves
// against. Without a controller, or with one that has never started a
// transition, the value rests on phase.
func controllerStates(c *AnimationController, phase InteractionPhase) (base, current InteractionAnimationState) {
	if c == nil || !c.Started() {
		s := SettledState(phase)
		return s, s
	}
	return c.Base(), c.Current()
}

// --- Custom ---

// CustomContext is everything a custom callback may look at: the node it
// styles, the node's phase and, for animated custom declarations, the
// animation states.
type CustomContext struct {
	Node       *Node
	Phase      InteractionPhase
	Transition InteractionAnimationState
	Current    InteractionAnimationState
}

// CustomValue runs an arbitrary callback instead of writing a typed
// attribute. It bypasses the lock set and the equality check; the callback
// is invoked on every apply and owns its side effects.
type CustomValue struct {
	Fn         func(CustomContext)
	Controller mo.Option[*AnimationController]
}

func (c CustomValue) Attribute() AttributeKind { return AttrCustom }
func (c CustomValue) Variant() DeclarationKind { return DeclCustom }

// Apply invokes the callback with ctx.
func (c CustomValue) Apply(ctx CustomContext) {
	if c.Fn == nil || ctx.Node == nil || ctx.Node.disposed {
		return
	}
	c.Fn(ctx)
	if globalMetrics != nil {
		globalMetrics.custom.Inc()
	}
}

func (c CustomValue) apply(n *Node, phase InteractionPhase, _ bool) bool {
	base, current := controllerStates(c.Controller.OrEmpty(), phase)
	c.Apply(CustomContext{Node: n, Phase: phase, Transition: base, Current: current})
	return false
}

func (c CustomValue) advance(dt float32, phase InteractionPhase) {
	if ctrl, ok := c.Controller.Get(); ok {
		ctrl.Update(dt, phase)
	}
}

func (c CustomValue) instantiate() Declaration {
	if ctrl, ok := c.Controller.Get(); ok {
		c.Controller = mo.Some(NewAnimationController(ctrl.Settings))
	}
	return c
}
