package petal

// ResolveInteractive picks the value of b for phase.
//
//	None, PointerLeave, Disabled -> Base
//	PointerEnter, Released       -> Hover, else Base
//	Pressed                      -> Press, else Hover, else Base
//	PressCanceled                -> Cancel, else Base
//
// Leave and Disabled ignore every override so a node never stays visually
// hovered or pressed after it loses the pointer.
func ResolveInteractive[T any](b ValueBundle[T], phase InteractionPhase) T {
	switch phase {
	case PhasePointerEnter, PhaseReleased:
		return b.Hover.OrElse(b.Base)
	case PhasePressed:
		if v, ok := b.Press.Get(); ok {
			return v
		}
		return b.Hover.OrElse(b.Base)
	case PhasePressCanceled:
		return b.Cancel.OrElse(b.Base)
	default:
		return b.Base
	}
}

// ResolveAnimated blends the values of b for an animation that may have been
// interrupted mid-transition.
//
// base is where the previous transition left off and fixes the starting
// value; current is the running transition, which moves from that starting
// value toward its target phase. This lets a hover -> press -> hover
// sequence re-target smoothly instead of snapping.
func ResolveAnimated[T any](b LerpBundle[T], base, current InteractionAnimationState) T {
	lerp := b.Lerp
	if lerp == nil {
		// Without an interpolator an animation can only show its target.
		lerp = snapLerp[T]
	}
	phaseValue := func(p InteractionPhase) T {
		return ResolveInteractive(b.Values, p)
	}

	var start T
	switch bp := base.Progress; bp.Kind {
	case ProgressInbetween:
		start = lerp(phaseValue(bp.From), phaseValue(bp.To), bp.T)
	default:
		start = phaseValue(bp.Phase)
	}

	switch cp := current.Progress; cp.Kind {
	case ProgressStart:
		return start
	case ProgressInbetween:
		return lerp(start, phaseValue(cp.To), cp.T)
	default:
		return phaseValue(cp.Phase)
	}
}

func snapLerp[T any](a, b T, t float64) T {
	if t >= 1 {
		return b
	}
	return a
}
