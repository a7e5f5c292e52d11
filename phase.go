package petal

import "fmt"

// InteractionPhase is the pointer-interaction state of a node. Phases are
// produced by the scene from pointer events (see Scene.HandleEvent) or set
// directly by the host; style resolution only reads them.
type InteractionPhase uint8

const (
	PhaseNone          InteractionPhase = iota // no interaction
	PhasePointerEnter                          // pointer is over the node
	PhasePointerLeave                          // pointer left the node
	PhasePressed                               // pointer button held on the node
	PhaseReleased                              // button released over the node
	PhasePressCanceled                         // press ended away from the node
	PhaseDisabled                              // node does not react to input
)

var phaseNames = [...]string{
	PhaseNone:          "none",
	PhasePointerEnter:  "pointer_enter",
	PhasePointerLeave:  "pointer_leave",
	PhasePressed:       "pressed",
	PhaseReleased:      "released",
	PhasePressCanceled: "press_canceled",
	PhaseDisabled:      "disabled",
}

func (p InteractionPhase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("InteractionPhase(%d)", uint8(p))
}

// phaseForEvent maps a pointer event onto the phase it puts a node in.
func phaseForEvent(e EventType) (InteractionPhase, bool) {
	switch e {
	case EventPointerEnter:
		return PhasePointerEnter, true
	case EventPointerLeave:
		return PhasePointerLeave, true
	case EventPointerDown:
		return PhasePressed, true
	case EventPointerUp:
		return PhaseReleased, true
	case EventPressCanceled:
		return PhasePressCanceled, true
	}
	return PhaseNone, false
}
