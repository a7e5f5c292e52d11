package petal

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// scriptStep is a single action in an interaction script.
type scriptStep struct {
	Action string  `json:"action"`
	Node   string  `json:"node,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"enter":   true,
	"leave":   true,
	"press":   true,
	"release": true,
	"cancel":  true,
	"disable": true,
	"enable":  true,
	"click":   true,
	"move":    true,
	"wait":    true,
}

// Script replays interaction steps against a scene, one step per update.
// Steps address nodes by name:
//
//	{"steps": [
//		{"action": "enter", "node": "play"},
//		{"action": "wait", "frames": 10},
//		{"action": "press", "node": "play"},
//		{"action": "click", "x": 40, "y": 12}
//	]}
//
// enter, leave, press, release and cancel deliver the matching pointer event
// to the node; disable and enable toggle it; click and move inject pointer
// samples at world coordinates; wait idles for a number of updates.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON interaction script.
func LoadScript(jsonData []byte) (*Script, error) {
	var sf scriptFile
	if err := json.Unmarshal(jsonData, &sf); err != nil {
		return nil, fmt.Errorf("parse interaction script: %w", err)
	}
	if len(sf.Steps) == 0 {
		return nil, fmt.Errorf("parse interaction script: no steps")
	}
	for i, st := range sf.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse interaction script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: sf.Steps}, nil
}

// SetScript attaches a script to the scene. Its step method is called from
// Scene.Update before pointer input is processed.
func (s *Scene) SetScript(script *Script) {
	s.script = script
}

// Done reports whether every step has run.
func (r *Script) Done() bool {
	return r.done
}

// step runs at most one step. Called from Scene.Update.
func (r *Script) step(s *Scene) {
	if r.done {
		return
	}
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		s.InjectClick(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	default:
		r.nodeStep(s, st)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}

func (r *Script) nodeStep(s *Scene, st scriptStep) {
	n := s.root.Find(st.Node)
	if n == nil {
		logger.WithFields(logrus.Fields{
			"action": st.Action,
			"node":   st.Node,
		}).Warn("[petal] script step targets unknown node")
		return
	}
	switch st.Action {
	case "enter":
		s.HandleEvent(n, EventPointerEnter)
	case "leave":
		s.HandleEvent(n, EventPointerLeave)
	case "press":
		s.HandleEvent(n, EventPointerDown)
	case "release":
		s.HandleEvent(n, EventPointerUp)
	case "cancel":
		s.HandleEvent(n, EventPressCanceled)
	case "disable":
		n.SetDisabled(true)
	case "enable":
		n.SetDisabled(false)
	}
}
