package petal

import "github.com/samber/lo"

// LockedAttributes is the set of attributes a node protects from style
// declarations. The zero value locks nothing. Values can be combined with
// bitwise OR via Insert.
//
// Locks exist so hand-authored state (a width computed by game code, a
// background chosen at runtime) is not clobbered by a generic theme. Only
// writes made with checkLock set honor them.
type LockedAttributes uint64

// Lock returns a set holding kinds.
func Lock(kinds ...AttributeKind) LockedAttributes {
	var s LockedAttributes
	for _, k := range kinds {
		s = s.Insert(k)
	}
	return s
}

// Contains reports whether kind is locked.
func (s LockedAttributes) Contains(kind AttributeKind) bool {
	if kind >= attrCount {
		return false
	}
	return s&(1<<kind) != 0
}

// Insert returns s with kind added. AttrCustom cannot be locked.
func (s LockedAttributes) Insert(kind AttributeKind) LockedAttributes {
	if kind >= attrCount {
		return s
	}
	return s | 1<<kind
}

// Remove returns s without kind.
func (s LockedAttributes) Remove(kind AttributeKind) LockedAttributes {
	if kind >= attrCount {
		return s
	}
	return s &^ (1 << kind)
}

// Kinds lists the locked attributes in declaration order.
func (s LockedAttributes) Kinds() []AttributeKind {
	return lo.Filter(AllAttributes(), func(k AttributeKind, _ int) bool {
		return s.Contains(k)
	})
}

// LockAttribute protects kinds on n from checked style writes.
func (n *Node) LockAttribute(kinds ...AttributeKind) {
	for _, k := range kinds {
		n.Locked = n.Locked.Insert(k)
	}
}

// UnlockAttribute removes kinds from n's lock set.
func (n *Node) UnlockAttribute(kinds ...AttributeKind) {
	for _, k := range kinds {
		n.Locked = n.Locked.Remove(k)
	}
}

// IsLocked reports whether kind is locked on n.
func (n *Node) IsLocked(kind AttributeKind) bool {
	return n.Locked.Contains(kind)
}
