package petal

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// SkipReason says why an attribute write was skipped. Skips are never
// returned as errors: they are logged, counted and forwarded to the scene's
// EntityStore, and the next update retries from fresh inputs.
type SkipReason uint8

const (
	SkipNone                SkipReason = iota
	SkipLocked                         // the attribute is in the node's lock set
	SkipMissingTarget                  // the node has no slot for the attribute
	SkipMissingPrerequisite            // an external lookup (parent, asset server) is unavailable
)

func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "none"
	case SkipLocked:
		return "locked"
	case SkipMissingTarget:
		return "missing_target"
	case SkipMissingPrerequisite:
		return "missing_prerequisite"
	default:
		return fmt.Sprintf("SkipReason(%d)", uint8(r))
	}
}

// StyleEvent describes a skipped attribute write.
type StyleEvent struct {
	Reason    SkipReason
	Attribute AttributeKind
	NodeID    uint32
	NodeName  string
	EntityID  uint32
}

// --- Logger ---

var logger logrus.FieldLogger = newDefaultLogger()

func newDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetLogger replaces the logger used for style diagnostics. Passing nil
// restores the default stderr logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = newDefaultLogger()
	}
	logger = l
}

// Logger returns the logger used for style diagnostics.
func Logger() logrus.FieldLogger {
	return logger
}

func nodeFields(n *Node, kind AttributeKind) logrus.Fields {
	return logrus.Fields{
		"attribute": kind.String(),
		"node":      n.Name,
		"node_id":   n.ID,
	}
}

// reportSkip logs, counts and forwards a skipped write.
func reportSkip(n *Node, kind AttributeKind, reason SkipReason, detail string) {
	fields := nodeFields(n, kind)
	fields["reason"] = reason.String()
	logger.WithFields(fields).Warnf("[petal] %s: write skipped", detail)
	if globalMetrics != nil {
		globalMetrics.skips.WithLabelValues(kind.String(), reason.String()).Inc()
	}
	if globalStore != nil {
		globalStore.EmitStyleEvent(StyleEvent{
			Reason:    reason,
			Attribute: kind,
			NodeID:    n.ID,
			NodeName:  n.Name,
			EntityID:  n.EntityID,
		})
	}
}

// --- Debug mode ---

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene.
var globalDebug bool

// debugStats holds per-update timing and write metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	transformTime time.Duration
	styleTime     time.Duration
	nodeCount     int
	declCount     int
	writeCount    uint64
}

// debugLog logs timing and write stats at debug level.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	logger.WithFields(logrus.Fields{
		"transform": stats.transformTime,
		"style":     stats.styleTime,
		"total":     stats.transformTime + stats.styleTime,
		"nodes":     stats.nodeCount,
		"decls":     stats.declCount,
		"writes":    stats.writeCount,
	}).Debug("[petal] update")
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("petal debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warnf("[petal] tree depth %d exceeds %d (node %q)", depth, debugMaxTreeDepth, n.Name)
	}
}
