package petal

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PhaseTween is the duration (seconds) and easing of a transition into one
// interaction phase. A zero Duration snaps straight to the target.
type PhaseTween struct {
	Duration float32
	Ease     ease.TweenFunc
}

// AnimationSettings configures how an animated declaration moves between
// phases. Each field covers transitions into the named phase; a zero entry
// falls back to Default.
type AnimationSettings struct {
	Default PhaseTween
	Enter   PhaseTween // into PointerEnter
	Leave   PhaseTween // into PointerLeave and None
	Press   PhaseTween // into Pressed
	Release PhaseTween // into Released
	Cancel  PhaseTween // into PressCanceled
	Disable PhaseTween // into Disabled
}

// Animate returns settings that use one duration and easing for every
// transition. A nil fn means ease.Linear.
func Animate(duration float32, fn ease.TweenFunc) AnimationSettings {
	return AnimationSettings{Default: PhaseTween{Duration: duration, Ease: fn}}
}

// WithEnter returns a copy of s with the pointer-enter transition replaced.
func (s AnimationSettings) WithEnter(duration float32, fn ease.TweenFunc) AnimationSettings {
	s.Enter = PhaseTween{Duration: duration, Ease: fn}
	return s
}

// WithLeave returns a copy of s with the pointer-leave transition replaced.
func (s AnimationSettings) WithLeave(duration float32, fn ease.TweenFunc) AnimationSettings {
	s.Leave = PhaseTween{Duration: duration, Ease: fn}
	return s
}

// WithPress returns a copy of s with the press transition replaced.
func (s AnimationSettings) WithPress(duration float32, fn ease.TweenFunc) AnimationSettings {
	s.Press = PhaseTween{Duration: duration, Ease: fn}
	return s
}

// WithRelease returns a copy of s with the release transition replaced.
func (s AnimationSettings) WithRelease(duration float32, fn ease.TweenFunc) AnimationSettings {
	s.Release = PhaseTween{Duration: duration, Ease: fn}
	return s
}

// WithCancel returns a copy of s with the press-cancel transition replaced.
func (s AnimationSettings) WithCancel(duration float32, fn ease.TweenFunc) AnimationSettings {
	s.Cancel = PhaseTween{Duration: duration, Ease: fn}
	return s
}

// WithDisable returns a copy of s with the disable transition replaced.
func (s AnimationSettings) WithDisable(duration float32, fn ease.TweenFunc) AnimationSettings {
	s.Disable = PhaseTween{Duration: duration, Ease: fn}
	return s
}

// tweenFor returns the transition used to reach target.
func (s AnimationSettings) tweenFor(target InteractionPhase) PhaseTween {
	var tw PhaseTween
	switch target {
	case PhasePointerEnter:
		tw = s.Enter
	case PhasePointerLeave, PhaseNone:
		tw = s.Leave
	case PhasePressed:
		tw = s.Press
	case PhaseReleased:
		tw = s.Release
	case PhasePressCanceled:
		tw = s.Cancel
	case PhaseDisabled:
		tw = s.Disable
	}
	if tw.Duration <= 0 {
		tw = s.Default
	}
	if tw.Ease == nil {
		tw.Ease = ease.Linear
	}
	return tw
}

// AnimationController is the clock behind an animated declaration. It
// tracks the node's interaction phase and exposes two states: Base, frozen
// where the previous transition was interrupted, and Current, the transition
// in progress.
//
// There is no global animation manager; DynamicStyle.Update advances the
// controllers of the style it owns.
type AnimationController struct {
	Settings AnimationSettings

	base    InteractionAnimationState
	current InteractionAnimationState
	from    InteractionPhase
	target  InteractionPhase
	tween   *gween.Tween
}

// NewAnimationController creates a controller resting on PhaseNone.
func NewAnimationController(settings AnimationSettings) *AnimationController {
	return &AnimationController{
		Settings: settings,
		base:     SettledState(PhaseNone),
		current:  SettledState(PhaseNone),
	}
}

// Base returns where the previous transition left off.
func (c *AnimationController) Base() InteractionAnimationState { return c.base }

// Current returns the running transition.
func (c *AnimationController) Current() InteractionAnimationState { return c.current }

// Target returns the phase the controller is moving toward.
func (c *AnimationController) Target() InteractionPhase { return c.target }

// Started reports whether the controller has begun any transition.
func (c *AnimationController) Started() bool { return c.current.Iteration > 0 }

// Done reports whether the current transition has settled.
func (c *AnimationController) Done() bool { return c.tween == nil }

// Update retargets the controller if phase differs from its target, then
// advances the running transition by dt seconds.
func (c *AnimationController) Update(dt float32, phase InteractionPhase) {
	if phase != c.target {
		c.retarget(phase)
	}
	if c.tween == nil {
		return
	}
	t, finished := c.tween.Update(dt)
	if finished {
		c.current.Progress = End(c.target)
		c.tween = nil
		return
	}
	c.current.Progress = Inbetween(c.from, c.target, float64(t))
}

// retarget starts a transition toward phase from wherever the controller is
// now. The interrupted transition becomes the new base.
func (c *AnimationController) retarget(phase InteractionPhase) {
	c.base = c.current
	c.from = c.target
	c.target = phase
	c.current = InteractionAnimationState{
		Iteration: c.current.Iteration + 1,
		Progress:  Start(c.from),
	}

	tw := c.Settings.tweenFor(phase)
	if tw.Duration <= 0 {
		c.current.Progress = End(phase)
		c.tween = nil
		return
	}
	c.tween = gween.New(0, 1, tw.Duration, tw.Ease)
}
