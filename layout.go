package petal

import (
	"fmt"

	"github.com/samber/mo"
)

// ValUnit selects how a Val is measured.
type ValUnit uint8

const (
	UnitAuto    ValUnit = iota // sized by the layout engine
	UnitPx                     // logical pixels
	UnitPercent                // percent of the parent's size on the same axis
	UnitVw                     // percent of the viewport width
	UnitVh                     // percent of the viewport height
	UnitVMin                   // percent of the smaller viewport axis
	UnitVMax                   // percent of the larger viewport axis
)

// Val is a length used by layout attributes.
type Val struct {
	Unit  ValUnit
	Value float64
}

// Auto is the Val that defers sizing to the layout engine.
var Auto = Val{Unit: UnitAuto}

// Px returns a Val measured in logical pixels.
func Px(v float64) Val { return Val{Unit: UnitPx, Value: v} }

// Percent returns a Val measured in percent of the parent.
func Percent(v float64) Val { return Val{Unit: UnitPercent, Value: v} }

// Vw returns a Val measured in percent of the viewport width.
func Vw(v float64) Val { return Val{Unit: UnitVw, Value: v} }

// Vh returns a Val measured in percent of the viewport height.
func Vh(v float64) Val { return Val{Unit: UnitVh, Value: v} }

func (v Val) String() string {
	switch v.Unit {
	case UnitAuto:
		return "auto"
	case UnitPx:
		return fmt.Sprintf("%gpx", v.Value)
	case UnitPercent:
		return fmt.Sprintf("%g%%", v.Value)
	case UnitVw:
		return fmt.Sprintf("%gvw", v.Value)
	case UnitVh:
		return fmt.Sprintf("%gvh", v.Value)
	case UnitVMin:
		return fmt.Sprintf("%gvmin", v.Value)
	case UnitVMax:
		return fmt.Sprintf("%gvmax", v.Value)
	default:
		return fmt.Sprintf("Val(%d, %g)", v.Unit, v.Value)
	}
}

// Edges holds one Val per side. Used for margin, padding and border widths.
type Edges struct {
	Left, Right, Top, Bottom Val
}

// EdgesAll returns Edges with the same value on every side.
func EdgesAll(v Val) Edges {
	return Edges{Left: v, Right: v, Top: v, Bottom: v}
}

// EdgesAxes returns Edges with horizontal on left/right and vertical on
// top/bottom.
func EdgesAxes(horizontal, vertical Val) Edges {
	return Edges{Left: horizontal, Right: horizontal, Top: vertical, Bottom: vertical}
}

// Display controls whether a node takes part in layout.
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayGrid
	DisplayBlock
	DisplayNone
)

// PositionType selects relative or absolute placement.
type PositionType uint8

const (
	PositionRelative PositionType = iota
	PositionAbsolute
)

// OverflowAxis controls clipping on one axis.
type OverflowAxis uint8

const (
	OverflowVisible OverflowAxis = iota
	OverflowClip
	OverflowHidden
	OverflowScroll
)

// Overflow controls clipping on both axes.
type Overflow struct {
	X, Y OverflowAxis
}

// Direction is the inline text direction.
type Direction uint8

const (
	DirectionInherit Direction = iota
	DirectionLeftToRight
	DirectionRightToLeft
)

// AlignItems aligns children on the cross axis.
type AlignItems uint8

const (
	AlignItemsDefault AlignItems = iota
	AlignItemsStart
	AlignItemsEnd
	AlignItemsFlexStart
	AlignItemsFlexEnd
	AlignItemsCenter
	AlignItemsBaseline
	AlignItemsStretch
)

// JustifyItems aligns grid children in their cells on the inline axis.
type JustifyItems uint8

const (
	JustifyItemsDefault JustifyItems = iota
	JustifyItemsStart
	JustifyItemsEnd
	JustifyItemsCenter
	JustifyItemsBaseline
	JustifyItemsStretch
)

// AlignSelf overrides the parent's AlignItems for one node.
type AlignSelf uint8

const (
	AlignSelfAuto AlignSelf = iota
	AlignSelfStart
	AlignSelfEnd
	AlignSelfFlexStart
	AlignSelfFlexEnd
	AlignSelfCenter
	AlignSelfBaseline
	AlignSelfStretch
)

// JustifySelf overrides the parent's JustifyItems for one node.
type JustifySelf uint8

const (
	JustifySelfAuto JustifySelf = iota
	JustifySelfStart
	JustifySelfEnd
	JustifySelfCenter
	JustifySelfBaseline
	JustifySelfStretch
)

// AlignContent distributes lines on the cross axis.
type AlignContent uint8

const (
	AlignContentDefault AlignContent = iota
	AlignContentStart
	AlignContentEnd
	AlignContentFlexStart
	AlignContentFlexEnd
	AlignContentCenter
	AlignContentStretch
	AlignContentSpaceBetween
	AlignContentSpaceEvenly
	AlignContentSpaceAround
)

// JustifyContent distributes children on the main axis.
type JustifyContent uint8

const (
	JustifyContentDefault JustifyContent = iota
	JustifyContentStart
	JustifyContentEnd
	JustifyContentFlexStart
	JustifyContentFlexEnd
	JustifyContentCenter
	JustifyContentStretch
	JustifyContentSpaceBetween
	JustifyContentSpaceEvenly
	JustifyContentSpaceAround
)

// FlexDirection is the main axis of a flex container.
type FlexDirection uint8

const (
	FlexRow FlexDirection = iota
	FlexColumn
	FlexRowReverse
	FlexColumnReverse
)

// FlexWrap controls line wrapping in a flex container.
type FlexWrap uint8

const (
	FlexNoWrap FlexWrap = iota
	FlexWrapLines
	FlexWrapReverse
)

// GridAutoFlow controls auto-placement of grid items.
type GridAutoFlow uint8

const (
	GridAutoFlowRow GridAutoFlow = iota
	GridAutoFlowColumn
	GridAutoFlowRowDense
	GridAutoFlowColumnDense
)

// TrackSizing selects how a grid track is sized.
type TrackSizing uint8

const (
	TrackAuto TrackSizing = iota
	TrackPx
	TrackPercent
	TrackFraction
	TrackMinContent
	TrackMaxContent
)

// GridTrack sizes one grid row or column.
type GridTrack struct {
	Sizing TrackSizing
	Value  float64
}

// GridPlacement positions an item on one grid axis. Zero Start/End mean
// auto; Span defaults to 1 when zero.
type GridPlacement struct {
	Start int16
	Span  uint16
	End   int16
}

// FocusPolicy controls whether a node blocks pointer interaction for nodes
// below it.
type FocusPolicy uint8

const (
	FocusPolicyPass FocusPolicy = iota
	FocusPolicyBlock
)

// Visibility controls whether a node and its subtree are drawn.
type Visibility uint8

const (
	VisibilityInherited Visibility = iota
	VisibilityVisible
	VisibilityHidden
)

// ZIndex orders a node relative to its siblings, or globally when Global is
// set.
type ZIndex struct {
	Global bool
	Value  int32
}

// ImageScaleMode controls how an image fills its node.
type ImageScaleMode uint8

const (
	ImageStretch ImageScaleMode = iota
	ImageFit
	ImageSliced
	ImageTiled
)

// Layout is the layout slot of a node: everything the external layout engine
// reads to size and place it.
type Layout struct {
	Display        Display
	PositionType   PositionType
	Overflow       Overflow
	Direction      Direction
	Left           Val
	Right          Val
	Top            Val
	Bottom         Val
	Width          Val
	Height         Val
	MinWidth       Val
	MinHeight      Val
	MaxWidth       Val
	MaxHeight      Val
	AspectRatio    mo.Option[float64]
	AlignItems     AlignItems
	JustifyItems   JustifyItems
	AlignSelf      AlignSelf
	JustifySelf    JustifySelf
	AlignContent   AlignContent
	JustifyContent JustifyContent
	Margin         Edges
	Padding        Edges
	Border         Edges
	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	FlexGrow       float64
	FlexShrink     float64
	FlexBasis      Val

	RowGap              Val
	ColumnGap           Val
	GridAutoFlow        GridAutoFlow
	GridTemplateRows    []GridTrack
	GridTemplateColumns []GridTrack
	GridAutoRows        []GridTrack
	GridAutoColumns     []GridTrack
	GridRow             GridPlacement
	GridColumn          GridPlacement
}

// DefaultLayout returns the layout a freshly created UI node starts with.
func DefaultLayout() Layout {
	return Layout{
		Left:       Auto,
		Right:      Auto,
		Top:        Auto,
		Bottom:     Auto,
		Width:      Auto,
		Height:     Auto,
		MinWidth:   Auto,
		MinHeight:  Auto,
		MaxWidth:   Auto,
		MaxHeight:  Auto,
		FlexShrink: 1,
		FlexBasis:  Auto,
		Margin:     EdgesAll(Px(0)),
		Padding:    EdgesAll(Px(0)),
		Border:     EdgesAll(Px(0)),
		RowGap:     Px(0),
		ColumnGap:  Px(0),
	}
}

// ImageSlot is the image slot of a node.
type ImageSlot struct {
	Handle    ImageHandle
	ScaleMode ImageScaleMode
}
