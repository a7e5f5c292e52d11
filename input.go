package petal

import "github.com/hajimehoshi/ebiten/v2"

// pointerState tracks the single pointer the scene follows.
type pointerState struct {
	down    bool
	lastX   float64
	lastY   float64
	hover   *Node // node under the pointer
	pressed *Node // node that received the press, held until release
}

// SetPointerInput enables reading the mouse through ebiten on every Update.
// It is off by default so headless scenes and tests only see injected or
// explicitly handled events.
func (s *Scene) SetPointerInput(enabled bool) {
	s.pointerInput = enabled
}

// HoveredNode returns the interactable node under the pointer, or nil.
func (s *Scene) HoveredNode() *Node {
	return s.pointer.hover
}

// nodeContainsLocal reports whether the local point lies within n's size.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	return lx >= 0 && ly >= 0 && lx <= n.Size.X && ly <= n.Size.Y
}

// collectInteractable appends every node that can receive pointer events, in
// tree (painter) order.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if n.Visibility != nil && *n.Visibility == VisibilityHidden {
		return buf
	}
	if n.Interactable && !n.disabled && n.Size.X > 0 && n.Size.Y > 0 {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest returns the topmost interactable node containing the world point.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// processInput feeds one pointer sample per update: an injected event if any
// is queued, otherwise the live mouse when pointer input is enabled.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if !s.pointerInput {
		return
	}
	cx, cy := ebiten.CursorPosition()
	s.processPointer(float64(cx), float64(cy), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// processPointer turns a pointer sample into phase events. The pressed node
// keeps PhasePressed while the button is held even if the pointer wanders
// off; releasing away from it cancels the press.
func (s *Scene) processPointer(wx, wy float64, pressed bool) {
	ps := &s.pointer
	target := s.hitTest(wx, wy)

	if target != ps.hover {
		if ps.hover != nil && ps.hover != ps.pressed {
			s.HandleEvent(ps.hover, EventPointerLeave)
		}
		if target != nil && target != ps.pressed {
			s.HandleEvent(target, EventPointerEnter)
		}
		ps.hover = target
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.pressed = target
		if target != nil {
			s.HandleEvent(target, EventPointerDown)
		}
	case !pressed && ps.down:
		if ps.pressed != nil {
			if ps.pressed == target {
				s.HandleEvent(target, EventPointerUp)
			} else {
				s.HandleEvent(ps.pressed, EventPressCanceled)
			}
		}
		ps.down = false
		ps.pressed = nil
	}
	ps.lastX = wx
	ps.lastY = wy
}

// forgetNode drops pointer references to n, used when a node leaves the tree.
func (s *Scene) forgetNode(n *Node) {
	if s.pointer.hover == n {
		s.pointer.hover = nil
	}
	if s.pointer.pressed == n {
		s.pointer.pressed = nil
	}
}
