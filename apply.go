package petal

// applyAttribute writes v into the slot a maps to on n.
//
// The write is skipped (with a warning) when checkLock is set and n locks
// the attribute, or when n has no slot for it. Otherwise v is compared with
// the slot's current value and stored only if it differs, so reapplying an
// unchanged style every frame produces no change notifications. Reports
// whether the live state changed.
func applyAttribute[T any](n *Node, a attribute[T], v T, checkLock bool) bool {
	if n == nil || n.disposed {
		return false
	}
	if !a.bound() {
		reportSkip(n, a.kind, SkipMissingTarget, "declaration is not bound to an attribute")
		return false
	}
	if checkLock && n.Locked.Contains(a.kind) {
		reportSkip(n, a.kind, SkipLocked, "attribute is locked")
		return false
	}

	if a.write != nil {
		changed, reason := a.write(n, v)
		if reason != SkipNone {
			reportSkip(n, a.kind, reason, skipDetail(reason))
			return false
		}
		if changed {
			recordWrite(n, a.kind)
		}
		return changed
	}

	slot, ok := a.slot(n)
	if !ok {
		reportSkip(n, a.kind, SkipMissingTarget, skipDetail(SkipMissingTarget))
		return false
	}
	if a.equal(*slot, v) {
		return false
	}
	if a.clone != nil {
		v = a.clone(v)
	}
	*slot = v
	recordWrite(n, a.kind)
	return true
}

func skipDetail(reason SkipReason) string {
	switch reason {
	case SkipMissingTarget:
		return "node has no slot for attribute"
	case SkipMissingPrerequisite:
		return "attribute prerequisite is unavailable"
	default:
		return reason.String()
	}
}

func recordWrite(n *Node, kind AttributeKind) {
	n.markChanged()
	if globalMetrics != nil {
		globalMetrics.writes.WithLabelValues(kind.String()).Inc()
	}
}

// writeImage resolves path through the scene's asset server and stores the
// resulting handle. The image itself loads later; only the handle is
// written here.
func writeImage(n *Node, path string) (bool, SkipReason) {
	if n.Image == nil {
		return false, SkipMissingTarget
	}
	if globalAssets == nil {
		return false, SkipMissingPrerequisite
	}
	h := globalAssets.Load(path)
	if n.Image.Handle == h {
		return false, SkipNone
	}
	n.Image.Handle = h
	return true, SkipNone
}

// writeAbsolutePosition converts a world-space point into the parent's local
// space and stores it as an absolutely positioned Left/Top offset.
func writeAbsolutePosition(n *Node, pos Vec2) (bool, SkipReason) {
	if n.Layout == nil {
		return false, SkipMissingTarget
	}
	if n.Parent == nil {
		return false, SkipMissingPrerequisite
	}
	lx, ly := n.Parent.WorldToLocal(pos.X, pos.Y)
	left, top := Px(lx), Px(ly)
	l := n.Layout
	if l.PositionType == PositionAbsolute && l.Left == left && l.Top == top {
		return false, SkipNone
	}
	l.PositionType = PositionAbsolute
	l.Left = left
	l.Top = top
	return true, SkipNone
}
