package petal

import "fmt"

// ProgressKind tags an AnimationProgress.
type ProgressKind uint8

const (
	ProgressStart     ProgressKind = iota // transition has not advanced yet
	ProgressInbetween                     // transition is partway done
	ProgressEnd                           // transition reached its target
)

// AnimationProgress describes where in a two-phase transition a node is.
// Build values with Start, Inbetween and End.
//
// For Start and End only Phase is meaningful. For Inbetween, From and To are
// the phases being blended and T is the eased progress in [0, 1].
type AnimationProgress struct {
	Kind  ProgressKind
	Phase InteractionPhase
	From  InteractionPhase
	To    InteractionPhase
	T     float64
}

// Start returns the progress of a transition that is about to leave phase.
func Start(phase InteractionPhase) AnimationProgress {
	return AnimationProgress{Kind: ProgressStart, Phase: phase}
}

// Inbetween returns the progress of a transition from one phase to another.
// t is clamped to [0, 1].
func Inbetween(from, to InteractionPhase, t float64) AnimationProgress {
	return AnimationProgress{Kind: ProgressInbetween, From: from, To: to, T: clamp01(t)}
}

// End returns the progress of a transition that has settled on phase.
func End(phase InteractionPhase) AnimationProgress {
	return AnimationProgress{Kind: ProgressEnd, Phase: phase}
}

func (p AnimationProgress) String() string {
	switch p.Kind {
	case ProgressStart:
		return fmt.Sprintf("start(%s)", p.Phase)
	case ProgressInbetween:
		return fmt.Sprintf("inbetween(%s, %s, %.3f)", p.From, p.To, p.T)
	case ProgressEnd:
		return fmt.Sprintf("end(%s)", p.Phase)
	default:
		return fmt.Sprintf("AnimationProgress(%d)", uint8(p.Kind))
	}
}

// InteractionAnimationState is a snapshot of an animation clock. Resolution
// reads two of them: the transition base (where the previous transition left
// off) and the current transition.
type InteractionAnimationState struct {
	Iteration uint32
	Progress  AnimationProgress
}

// SettledState returns a state resting on phase.
func SettledState(phase InteractionPhase) InteractionAnimationState {
	return InteractionAnimationState{Progress: End(phase)}
}
