package petal

import "testing"

// newButtonScene returns a scene with two 100x40 buttons side by side at
// (0,0) and (200,0).
func newButtonScene() (*Scene, *Node, *Node) {
	s := NewScene()
	a := NewPanel("a")
	b := NewPanel("b")
	for _, n := range []*Node{a, b} {
		n.Interactable = true
		n.Size = Vec2{X: 100, Y: 40}
		s.Root().AddChild(n)
	}
	b.SetPosition(200, 0)
	updateWorldTransform(s.Root(), identityTransform, false)
	return s, a, b
}

func TestNodeContainsLocal(t *testing.T) {
	n := NewPanel("n")
	n.Size = Vec2{X: 100, Y: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 25, true},
		{"top-left corner", 0, 0, true},
		{"bottom-right corner", 100, 50, true},
		{"outside left", -1, 25, false},
		{"outside right", 101, 25, false},
		{"outside bottom", 50, 51, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nodeContainsLocal(n, tt.x, tt.y); got != tt.want {
				t.Errorf("nodeContainsLocal(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitTest(t *testing.T) {
	s, a, b := newButtonScene()
	if got := s.hitTest(50, 20); got != a {
		t.Errorf("hitTest(50,20) = %v, want a", got)
	}
	if got := s.hitTest(250, 20); got != b {
		t.Errorf("hitTest(250,20) = %v, want b", got)
	}
	if got := s.hitTest(150, 20); got != nil {
		t.Errorf("hitTest(150,20) = %v, want nil", got)
	}
}

func TestHitTestTopmostWins(t *testing.T) {
	s, a, _ := newButtonScene()
	overlay := NewPanel("overlay")
	overlay.Interactable = true
	overlay.Size = Vec2{X: 10, Y: 10}
	a.AddChild(overlay)
	updateWorldTransform(s.Root(), identityTransform, false)

	if got := s.hitTest(5, 5); got != overlay {
		t.Errorf("hitTest = %v, want overlay", got)
	}
}

func TestHitTestSkips(t *testing.T) {
	s, a, b := newButtonScene()
	a.SetDisabled(true)
	hidden := VisibilityHidden
	b.Visibility = &hidden

	if got := s.hitTest(50, 20); got != nil {
		t.Errorf("disabled node hit: %v", got)
	}
	if got := s.hitTest(250, 20); got != nil {
		t.Errorf("hidden node hit: %v", got)
	}
}

func TestHitTestTransformed(t *testing.T) {
	s, a, _ := newButtonScene()
	a.SetPosition(10, 10)
	a.SetScale(2, 2)
	updateWorldTransform(s.Root(), identityTransform, false)

	if got := s.hitTest(190, 80); got != a {
		t.Errorf("hitTest inside scaled bounds = %v, want a", got)
	}
	if got := s.hitTest(5, 5); got != nil {
		t.Errorf("hitTest before offset = %v, want nil", got)
	}
}

func TestPointerEnterLeave(t *testing.T) {
	s, a, b := newButtonScene()

	s.processPointer(50, 20, false)
	if a.Phase() != PhasePointerEnter || s.HoveredNode() != a {
		t.Fatalf("a phase = %v, hovered = %v", a.Phase(), s.HoveredNode())
	}

	s.processPointer(250, 20, false)
	if a.Phase() != PhasePointerLeave {
		t.Errorf("a phase = %v, want leave", a.Phase())
	}
	if b.Phase() != PhasePointerEnter {
		t.Errorf("b phase = %v, want enter", b.Phase())
	}

	s.processPointer(150, 20, false)
	if b.Phase() != PhasePointerLeave || s.HoveredNode() != nil {
		t.Errorf("b phase = %v, hovered = %v", b.Phase(), s.HoveredNode())
	}
}

func TestPointerPressRelease(t *testing.T) {
	s, a, _ := newButtonScene()

	s.processPointer(50, 20, true)
	if a.Phase() != PhasePressed {
		t.Fatalf("phase after press = %v, want pressed", a.Phase())
	}
	s.processPointer(55, 20, true)
	if a.Phase() != PhasePressed {
		t.Errorf("phase while held = %v, want pressed", a.Phase())
	}
	s.processPointer(55, 20, false)
	if a.Phase() != PhaseReleased {
		t.Errorf("phase after release = %v, want released", a.Phase())
	}
}

func TestPointerPressCanceledOffTarget(t *testing.T) {
	s, a, b := newButtonScene()

	s.processPointer(50, 20, true)
	s.processPointer(250, 20, true)
	if a.Phase() != PhasePressed {
		t.Errorf("pressed node should stay pressed while held, got %v", a.Phase())
	}
	if b.Phase() != PhasePointerEnter {
		t.Errorf("b phase = %v, want enter", b.Phase())
	}

	s.processPointer(250, 20, false)
	if a.Phase() != PhasePressCanceled {
		t.Errorf("a phase = %v, want press canceled", a.Phase())
	}
	if b.Phase() != PhasePointerEnter {
		t.Errorf("b should not receive the release, got %v", b.Phase())
	}
}

func TestPointerPressOnEmptySpace(t *testing.T) {
	s, a, _ := newButtonScene()
	s.processPointer(150, 20, true)
	s.processPointer(50, 20, false)
	if a.Phase() != PhasePointerEnter {
		t.Errorf("phase = %v, want enter only", a.Phase())
	}
}

func TestForgetDisposedNode(t *testing.T) {
	s, a, _ := newButtonScene()
	s.processPointer(50, 20, true)
	a.Dispose()

	s.Update(0)
	if s.HoveredNode() != nil || s.pointer.pressed != nil {
		t.Error("disposed node should be forgotten")
	}
}

func TestPointerInputDisabledByDefault(t *testing.T) {
	s, a, _ := newButtonScene()
	s.Update(0)
	if a.Phase() != PhaseNone {
		t.Errorf("phase = %v, want none without input", a.Phase())
	}
}
