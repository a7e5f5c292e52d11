package petal

// nodeIDCounter is a plain counter; petal is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// PhaseContext carries an interaction phase change.
type PhaseContext struct {
	Node     *Node
	EntityID uint32
	Previous InteractionPhase
	Phase    InteractionPhase
}

// Node is a UI element in the scene graph. A single flat struct is used for
// every kind of node; optional live-state slots are pointers and a nil slot
// means the node does not carry that state (a container has no background,
// a panel has no image).
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Placement, written by the host's layout pass.
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64
	Size     Vec2

	// Computed
	worldTransform [6]float64
	transformDirty bool

	// Live state slots written by style attributes.
	Layout          *Layout
	BackgroundColor *Color
	BorderColor     *Color
	FocusPolicy     *FocusPolicy
	Visibility      *Visibility
	ZIndex          *ZIndex
	Image           *ImageSlot
	Interactable    bool

	// style is the node's declaration set, applied every scene update.
	style *DynamicStyle

	// Locked lists attributes that style declarations must not overwrite.
	Locked LockedAttributes

	// Interaction
	phase    InteractionPhase
	disabled bool

	// Metadata
	UserData any
	EntityID uint32

	// OnPhaseChange fires after the node's interaction phase changes.
	OnPhaseChange func(PhaseContext)

	revision uint64
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.transformDirty = true
}

// NewContainer creates a node with no live-state slots. It groups children
// and carries a transform, but style attributes other than Interactable and
// AbsolutePosition have nothing to write to.
func NewContainer(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// NewPanel creates a node with a layout slot and every paint slot except an
// image.
func NewPanel(name string) *Node {
	n := NewContainer(name)
	layout := DefaultLayout()
	bg := ColorTransparent
	border := ColorTransparent
	focus := FocusPolicyPass
	vis := VisibilityInherited
	n.Layout = &layout
	n.BackgroundColor = &bg
	n.BorderColor = &border
	n.FocusPolicy = &focus
	n.Visibility = &vis
	n.ZIndex = &ZIndex{}
	return n
}

// NewImageNode creates a panel that also displays an image.
func NewImageNode(name string, handle ImageHandle) *Node {
	n := NewPanel(name)
	n.Image = &ImageSlot{Handle: handle}
	return n
}

// Revision counts the attribute writes that changed this node's live state.
// Writes that would store an equal value do not count.
func (n *Node) Revision() uint64 {
	return n.revision
}

func (n *Node) markChanged() {
	n.revision++
}

// --- Interaction ---

// Phase returns the node's current interaction phase.
func (n *Node) Phase() InteractionPhase {
	if n.disabled {
		return PhaseDisabled
	}
	return n.phase
}

// SetPhase sets the interaction phase. It is ignored while the node is
// disabled. Reports whether the visible phase changed.
func (n *Node) SetPhase(p InteractionPhase) bool {
	if n.disabled || n.phase == p {
		return false
	}
	prev := n.phase
	n.phase = p
	n.firePhaseChange(prev, p)
	return true
}

// SetDisabled disables or re-enables the node. A disabled node reports
// PhaseDisabled; re-enabling resets it to PhaseNone.
func (n *Node) SetDisabled(disabled bool) bool {
	if n.disabled == disabled {
		return false
	}
	prev := n.Phase()
	n.disabled = disabled
	if !disabled {
		n.phase = PhaseNone
	}
	n.firePhaseChange(prev, n.Phase())
	return true
}

// Disabled reports whether the node is disabled.
func (n *Node) Disabled() bool {
	return n.disabled
}

func (n *Node) firePhaseChange(prev, cur InteractionPhase) {
	if n.OnPhaseChange != nil {
		n.OnPhaseChange(PhaseContext{Node: n, EntityID: n.EntityID, Previous: prev, Phase: cur})
	}
	if globalStore != nil {
		globalStore.EmitPhaseEvent(PhaseEvent{
			NodeID:   n.ID,
			NodeName: n.Name,
			EntityID: n.EntityID,
			Previous: prev,
			Phase:    cur,
		})
	}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("petal: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("petal: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("petal: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Find returns the first node named name in this subtree (depth-first,
// including n itself), or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.style = nil
	n.Image = nil
	n.UserData = nil
	n.OnPhaseChange = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
