package petal

import "github.com/samber/lo"

// DynamicStyle is the declaration set owned by a node. It holds at most one
// declaration per attribute (custom declarations excepted) in the order they
// were first declared.
//
// Create one with StyleBuilder.Build and attach it with Node.SetStyle.
type DynamicStyle struct {
	decls []Declaration
	index map[AttributeKind]int
}

func newDynamicStyle() *DynamicStyle {
	return &DynamicStyle{index: make(map[AttributeKind]int)}
}

// Len returns the number of declarations.
func (s *DynamicStyle) Len() int {
	return len(s.decls)
}

// Declarations returns the declarations in order. The returned slice MUST NOT
// be mutated by the caller.
func (s *DynamicStyle) Declarations() []Declaration {
	return s.decls
}

// Get returns the declaration for kind.
func (s *DynamicStyle) Get(kind AttributeKind) (Declaration, bool) {
	i, ok := s.index[kind]
	if !ok {
		return nil, false
	}
	return s.decls[i], true
}

// Kinds lists the attributes with a declaration, in order. Custom
// declarations are reported as AttrCustom.
func (s *DynamicStyle) Kinds() []AttributeKind {
	return lo.Map(s.decls, func(d Declaration, _ int) AttributeKind {
		return d.Attribute()
	})
}

// put inserts d, replacing any declaration for the same attribute in place.
// Reports whether a declaration was replaced.
func (s *DynamicStyle) put(d Declaration) bool {
	kind := d.Attribute()
	if kind == AttrCustom {
		s.decls = append(s.decls, d)
		return false
	}
	if i, ok := s.index[kind]; ok {
		s.decls[i] = d
		return true
	}
	s.index[kind] = len(s.decls)
	s.decls = append(s.decls, d)
	return false
}

// Merge returns a new style holding s's declarations overridden by other's.
// Neither input is modified.
func (s *DynamicStyle) Merge(other *DynamicStyle) *DynamicStyle {
	out := s.clone()
	if other == nil {
		return out
	}
	for _, d := range other.decls {
		out.put(d.instantiate())
	}
	return out
}

// clone copies s. Animated declarations get fresh controllers so two nodes
// never share an animation clock.
func (s *DynamicStyle) clone() *DynamicStyle {
	out := newDynamicStyle()
	if s == nil {
		return out
	}
	for _, d := range s.decls {
		out.put(d.instantiate())
	}
	return out
}

// Update advances every animation clock by dt seconds toward phase.
func (s *DynamicStyle) Update(dt float32, phase InteractionPhase) {
	for _, d := range s.decls {
		d.advance(dt, phase)
	}
}

// Apply resolves every declaration for n's phase and writes it to n,
// honoring n's lock set. Returns the number of attributes that changed.
func (s *DynamicStyle) Apply(n *Node) int {
	return s.apply(n, true)
}

func (s *DynamicStyle) apply(n *Node, checkLock bool) int {
	phase := n.Phase()
	changed := 0
	for _, d := range s.decls {
		if d.apply(n, phase, checkLock) {
			changed++
		}
	}
	return changed
}

// --- Node attachment ---

// SetStyle attaches a copy of s to n, replacing any previous style. Each node
// owns its copy so animation clocks are never shared. Passing nil detaches
// the style.
func (n *Node) SetStyle(s *DynamicStyle) {
	if s == nil {
		n.style = nil
		return
	}
	n.style = s.clone()
}

// Style returns n's attached style, or nil.
func (n *Node) Style() *DynamicStyle {
	return n.style
}
