package petal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"
)

func TestAnimationControllerStartsSettled(t *testing.T) {
	c := NewAnimationController(Animate(1, nil))
	assert.Equal(t, SettledState(PhaseNone), c.Base())
	assert.Equal(t, SettledState(PhaseNone), c.Current())
	assert.True(t, c.Done())
}

func TestAnimationControllerRunsTransition(t *testing.T) {
	c := NewAnimationController(Animate(1, ease.Linear))

	c.Update(0.25, PhasePointerEnter)
	assert.Equal(t, PhasePointerEnter, c.Target())
	assert.Equal(t, uint32(1), c.Current().Iteration)
	assert.Equal(t, SettledState(PhaseNone), c.Base())
	p := c.Current().Progress
	assert.Equal(t, ProgressInbetween, p.Kind)
	assert.Equal(t, PhaseNone, p.From)
	assert.Equal(t, PhasePointerEnter, p.To)
	assert.InDelta(t, 0.25, p.T, 1e-6)

	c.Update(1, PhasePointerEnter)
	assert.Equal(t, End(PhasePointerEnter), c.Current().Progress)
	assert.True(t, c.Done())

	// settled controllers stay put
	c.Update(1, PhasePointerEnter)
	assert.Equal(t, End(PhasePointerEnter), c.Current().Progress)
	assert.Equal(t, uint32(1), c.Current().Iteration)
}

func TestAnimationControllerInterruptFreezesBase(t *testing.T) {
	c := NewAnimationController(Animate(1, ease.Linear))
	c.Update(0.4, PhasePointerEnter)
	interrupted := c.Current()

	c.Update(0.5, PhasePressed)
	assert.Equal(t, interrupted, c.Base())
	assert.Equal(t, uint32(2), c.Current().Iteration)
	p := c.Current().Progress
	assert.Equal(t, PhasePointerEnter, p.From)
	assert.Equal(t, PhasePressed, p.To)
	assert.InDelta(t, 0.5, p.T, 1e-6)
}

func TestAnimationControllerZeroDurationSnaps(t *testing.T) {
	c := NewAnimationController(AnimationSettings{})
	c.Update(0.01, PhasePressed)
	assert.Equal(t, End(PhasePressed), c.Current().Progress)
	assert.True(t, c.Done())
}

func TestAnimationControllerPerPhaseDuration(t *testing.T) {
	settings := Animate(1, ease.Linear).WithPress(0.5, ease.Linear)
	c := NewAnimationController(settings)
	c.Update(0.25, PhasePressed)
	assert.InDelta(t, 0.5, c.Current().Progress.T, 1e-6)
}

func TestAnimationSettingsTweenFor(t *testing.T) {
	s := Animate(1, nil).
		WithEnter(0.1, ease.OutQuad).
		WithLeave(0.2, nil).
		WithRelease(0.3, nil).
		WithCancel(0.4, nil).
		WithDisable(0.6, nil)

	cases := map[InteractionPhase]float32{
		PhasePointerEnter:  0.1,
		PhasePointerLeave:  0.2,
		PhaseNone:          0.2,
		PhasePressed:       1,
		PhaseReleased:      0.3,
		PhasePressCanceled: 0.4,
		PhaseDisabled:      0.6,
	}
	for phase, want := range cases {
		tw := s.tweenFor(phase)
		assert.Equal(t, want, tw.Duration, "phase %s", phase)
		assert.NotNil(t, tw.Ease, "phase %s", phase)
	}
}

func TestAnimatedStyleOverTicks(t *testing.T) {
	b := NewStyleBuilder()
	b.Animated(Animate(1, ease.Linear)).
		FlexGrow(Vals(0.0).WithHover(10).WithPress(20))
	n := NewPanel("btn")
	n.SetStyle(b.Build())
	step := func(dt float32) {
		n.Style().Update(dt, n.Phase())
		n.Style().Apply(n)
	}

	step(0.1)
	assert.Equal(t, 0.0, n.Layout.FlexGrow)

	n.SetPhase(PhasePointerEnter)
	step(0.5)
	assert.InDelta(t, 5.0, n.Layout.FlexGrow, 1e-4)

	// press interrupts the hover halfway: start from 5, head to 20
	n.SetPhase(PhasePressed)
	step(0.5)
	assert.InDelta(t, 12.5, n.Layout.FlexGrow, 1e-4)

	step(1)
	assert.Equal(t, 20.0, n.Layout.FlexGrow)
}
