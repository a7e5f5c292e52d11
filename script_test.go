package petal

import (
	"strings"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "enter", "node": "play"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "disable", "node": "play"}
		]
	}`)

	script, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(script.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(script.steps))
	}
	if script.steps[0].Action != "enter" || script.steps[0].Node != "play" {
		t.Error("step 0 mismatch")
	}
	if script.steps[1].Action != "click" || script.steps[1].X != 100 || script.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if script.steps[2].Action != "wait" || script.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"invalid json", `{not json`, "parse interaction script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "screenshot"}]}`, "unknown action"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestScriptNodeSteps(t *testing.T) {
	s, a, _ := newButtonScene()
	script, err := LoadScript([]byte(`{"steps": [
		{"action": "enter", "node": "a"},
		{"action": "press", "node": "a"},
		{"action": "cancel", "node": "a"},
		{"action": "disable", "node": "a"},
		{"action": "enable", "node": "a"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetScript(script)

	want := []InteractionPhase{PhasePointerEnter, PhasePressed, PhasePressCanceled, PhaseDisabled, PhaseNone}
	for i, w := range want {
		s.Update(0)
		if a.Phase() != w {
			t.Errorf("update %d: phase = %v, want %v", i, a.Phase(), w)
		}
	}
	if !script.Done() {
		t.Error("script should be done")
	}
}

func TestScriptWait(t *testing.T) {
	s, a, _ := newButtonScene()
	script, _ := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "enter", "node": "a"}
	]}`))
	s.SetScript(script)

	for i := 0; i < 3; i++ {
		s.Update(0)
		if a.Phase() != PhaseNone {
			t.Fatalf("update %d: phase = %v, want none while waiting", i, a.Phase())
		}
	}
	s.Update(0)
	if a.Phase() != PhasePointerEnter {
		t.Errorf("phase = %v, want enter", a.Phase())
	}
}

func TestScriptClickWaitsForInjectQueue(t *testing.T) {
	s, a, _ := newButtonScene()
	script, _ := LoadScript([]byte(`{"steps": [
		{"action": "click", "x": 50, "y": 20},
		{"action": "leave", "node": "a"}
	]}`))
	s.SetScript(script)

	s.Update(0)
	if a.Phase() != PhasePressed {
		t.Fatalf("phase = %v, want pressed", a.Phase())
	}
	s.Update(0)
	if a.Phase() != PhaseReleased {
		t.Fatalf("phase = %v, want released", a.Phase())
	}
	s.Update(0)
	if a.Phase() != PhasePointerLeave {
		t.Errorf("phase = %v, want leave", a.Phase())
	}
	if !script.Done() {
		t.Error("script should be done")
	}
}

func TestScriptUnknownNode(t *testing.T) {
	hook := captureLogs(t)
	s := NewScene()
	script, _ := LoadScript([]byte(`{"steps": [{"action": "press", "node": "ghost"}]}`))
	s.SetScript(script)
	s.Update(0)

	w := warnings(hook)
	if len(w) != 1 || w[0].Data["node"] != "ghost" {
		t.Errorf("warnings = %v, want one for ghost", w)
	}
	if !script.Done() {
		t.Error("script should be done")
	}
}
