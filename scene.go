package petal

import "time"

// EntityStore is the interface for optional ECS integration. When set on a
// Scene, skipped style writes and interaction phase changes are forwarded
// to it.
type EntityStore interface {
	EmitStyleEvent(event StyleEvent)
	EmitPhaseEvent(event PhaseEvent)
}

// PhaseEvent carries an interaction phase change for the ECS bridge.
type PhaseEvent struct {
	NodeID   uint32
	NodeName string
	EntityID uint32
	Previous InteractionPhase
	Phase    InteractionPhase
}

// globalStore mirrors the entity store of the most recently created Scene so
// nodes can report without a Scene pointer. Only valid with a single Scene.
var globalStore EntityStore

// Scene owns the node tree and the asset server and drives style
// resolution once per tick.
type Scene struct {
	root   *Node
	store  EntityStore
	assets *AssetServer
	debug  bool

	script       *Script
	injectQueue  []syntheticPointerEvent
	pointerInput bool
	pointer      pointerState
	hitBuf       []*Node
}

// NewScene creates a new scene with a pre-created root container. It
// detaches the entity store and asset server of any earlier Scene.
func NewScene() *Scene {
	globalStore = nil
	globalAssets = nil
	return &Scene{root: NewContainer("root")}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetEntityStore sets the optional ECS bridge. Passing nil removes it.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
	globalStore = store
}

// SetAssetServer installs the server that Image attributes resolve through.
func (s *Scene) SetAssetServer(a *AssetServer) {
	s.assets = a
	globalAssets = a
}

// Assets returns the scene's asset server, or nil.
func (s *Scene) Assets() *AssetServer {
	return s.assets
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth warnings are logged, and per-update timing stats
// are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// HandleEvent delivers a pointer event to n, moving it to the matching
// interaction phase. Events other than the pointer events a phase exists
// for are ignored. Reports whether n's phase changed.
func (s *Scene) HandleEvent(n *Node, e EventType) bool {
	if n == nil || n.disposed || !n.Interactable {
		return false
	}
	phase, ok := phaseForEvent(e)
	if !ok {
		return false
	}
	return n.SetPhase(phase)
}

// Update advances the scene by dt seconds: world transforms are refreshed,
// scripted and pointer input is processed, pending images are decoded, and
// every node's style is advanced and applied.
func (s *Scene) Update(dt float32) {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	updateWorldTransform(s.root, identityTransform, false)
	if s.debug {
		stats.transformTime = time.Since(t0)
		t0 = time.Now()
	}

	if s.pointer.hover != nil && s.pointer.hover.disposed {
		s.forgetNode(s.pointer.hover)
	}
	if s.pointer.pressed != nil && s.pointer.pressed.disposed {
		s.forgetNode(s.pointer.pressed)
	}
	if s.script != nil {
		s.script.step(s)
	}
	s.processInput()
	if s.assets != nil {
		s.assets.Poll()
	}

	s.updateStyles(s.root, dt, &stats)

	if s.debug {
		stats.styleTime = time.Since(t0)
		s.debugLog(stats)
	}
}

// updateStyles advances and applies styles depth-first, parents before
// children so AbsolutePosition sees the parent's transform.
func (s *Scene) updateStyles(n *Node, dt float32, stats *debugStats) {
	stats.nodeCount++
	if st := n.style; st != nil {
		st.Update(dt, n.Phase())
		stats.declCount += st.Len()
		stats.writeCount += uint64(st.Apply(n))
	}
	for _, child := range n.children {
		s.updateStyles(child, dt, stats)
	}
}
