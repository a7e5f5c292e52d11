package petal

import (
	"fmt"
	"slices"

	"github.com/samber/mo"
)

// AttributeKind identifies a stylable attribute. It carries no value and is
// used as a set and map key.
type AttributeKind uint8

const (
	AttrDisplay AttributeKind = iota
	AttrPositionType
	AttrOverflow
	AttrDirection
	AttrLeft
	AttrRight
	AttrTop
	AttrBottom
	AttrWidth
	AttrHeight
	AttrMinWidth
	AttrMinHeight
	AttrMaxWidth
	AttrMaxHeight
	AttrAspectRatio
	AttrAlignItems
	AttrJustifyItems
	AttrAlignSelf
	AttrJustifySelf
	AttrAlignContent
	AttrJustifyContent
	AttrMargin
	AttrPadding
	AttrBorder
	AttrFlexDirection
	AttrFlexWrap
	AttrFlexGrow
	AttrFlexShrink
	AttrFlexBasis
	AttrRowGap
	AttrColumnGap
	AttrGridAutoFlow
	AttrGridTemplateRows
	AttrGridTemplateColumns
	AttrGridAutoRows
	AttrGridAutoColumns
	AttrGridRow
	AttrGridColumn
	AttrBackgroundColor
	AttrBorderColor
	AttrFocusPolicy
	AttrVisibility
	AttrZIndex
	AttrImage
	AttrImageScaleMode
	AttrInteractable
	AttrAbsolutePosition

	attrCount

	// AttrCustom tags custom declarations. It is not lockable and custom
	// declarations are never deduplicated.
	AttrCustom AttributeKind = 255
)

var attrNames = [attrCount]string{
	AttrDisplay:             "display",
	AttrPositionType:        "position_type",
	AttrOverflow:            "overflow",
	AttrDirection:           "direction",
	AttrLeft:                "left",
	AttrRight:               "right",
	AttrTop:                 "top",
	AttrBottom:              "bottom",
	AttrWidth:               "width",
	AttrHeight:              "height",
	AttrMinWidth:            "min_width",
	AttrMinHeight:           "min_height",
	AttrMaxWidth:            "max_width",
	AttrMaxHeight:           "max_height",
	AttrAspectRatio:         "aspect_ratio",
	AttrAlignItems:          "align_items",
	AttrJustifyItems:        "justify_items",
	AttrAlignSelf:           "align_self",
	AttrJustifySelf:         "justify_self",
	AttrAlignContent:        "align_content",
	AttrJustifyContent:      "justify_content",
	AttrMargin:              "margin",
	AttrPadding:             "padding",
	AttrBorder:              "border",
	AttrFlexDirection:       "flex_direction",
	AttrFlexWrap:            "flex_wrap",
	AttrFlexGrow:            "flex_grow",
	AttrFlexShrink:          "flex_shrink",
	AttrFlexBasis:           "flex_basis",
	AttrRowGap:              "row_gap",
	AttrColumnGap:           "column_gap",
	AttrGridAutoFlow:        "grid_auto_flow",
	AttrGridTemplateRows:    "grid_template_rows",
	AttrGridTemplateColumns: "grid_template_columns",
	AttrGridAutoRows:        "grid_auto_rows",
	AttrGridAutoColumns:     "grid_auto_columns",
	AttrGridRow:             "grid_row",
	AttrGridColumn:          "grid_column",
	AttrBackgroundColor:     "background_color",
	AttrBorderColor:         "border_color",
	AttrFocusPolicy:         "focus_policy",
	AttrVisibility:          "visibility",
	AttrZIndex:              "z_index",
	AttrImage:               "image",
	AttrImageScaleMode:      "image_scale_mode",
	AttrInteractable:        "interactable",
	AttrAbsolutePosition:    "absolute_position",
}

func (k AttributeKind) String() string {
	if k == AttrCustom {
		return "custom"
	}
	if k < attrCount {
		return attrNames[k]
	}
	return fmt.Sprintf("AttributeKind(%d)", uint8(k))
}

// AllAttributes returns every lockable attribute kind in declaration order.
func AllAttributes() []AttributeKind {
	kinds := make([]AttributeKind, attrCount)
	for i := range kinds {
		kinds[i] = AttributeKind(i)
	}
	return kinds
}

// --- Attribute table ---

// attribute binds an AttributeKind to its value type, the live-state slot it
// writes and, for animatable attributes, its interpolator. Every setter and
// every Apply goes through one of the entries below.
type attribute[T any] struct {
	kind  AttributeKind
	slot  func(n *Node) (*T, bool)
	equal func(a, b T) bool
	lerp  LerpFunc[T]
	// clone copies values that share backing storage before they are stored.
	clone func(v T) T
	// write overrides the default compare-and-store step for attributes that
	// need an external lookup first (image, absolute position).
	write func(n *Node, v T) (changed bool, reason SkipReason)
}

func eq[T comparable](a, b T) bool { return a == b }

// layoutSlot addresses a field of the node's Layout. Nodes without a Layout
// report the slot as missing.
func layoutSlot[T any](field func(l *Layout) *T) func(n *Node) (*T, bool) {
	return func(n *Node) (*T, bool) {
		if n.Layout == nil {
			return nil, false
		}
		return field(n.Layout), true
	}
}

func layoutAttr[T comparable](kind AttributeKind, field func(l *Layout) *T) attribute[T] {
	return attribute[T]{kind: kind, slot: layoutSlot(field), equal: eq[T]}
}

func layoutVal(kind AttributeKind, field func(l *Layout) *Val) attribute[Val] {
	a := layoutAttr(kind, field)
	a.lerp = LerpVal
	return a
}

func layoutTracks(kind AttributeKind, field func(l *Layout) *[]GridTrack) attribute[[]GridTrack] {
	return attribute[[]GridTrack]{
		kind:  kind,
		slot:  layoutSlot(field),
		equal: func(a, b []GridTrack) bool { return slices.Equal(a, b) },
		clone: func(v []GridTrack) []GridTrack { return slices.Clone(v) },
	}
}

var (
	attrDisplay        = layoutAttr(AttrDisplay, func(l *Layout) *Display { return &l.Display })
	attrPositionType   = layoutAttr(AttrPositionType, func(l *Layout) *PositionType { return &l.PositionType })
	attrOverflow       = layoutAttr(AttrOverflow, func(l *Layout) *Overflow { return &l.Overflow })
	attrDirection      = layoutAttr(AttrDirection, func(l *Layout) *Direction { return &l.Direction })
	attrLeft           = layoutVal(AttrLeft, func(l *Layout) *Val { return &l.Left })
	attrRight          = layoutVal(AttrRight, func(l *Layout) *Val { return &l.Right })
	attrTop            = layoutVal(AttrTop, func(l *Layout) *Val { return &l.Top })
	attrBottom         = layoutVal(AttrBottom, func(l *Layout) *Val { return &l.Bottom })
	attrWidth          = layoutVal(AttrWidth, func(l *Layout) *Val { return &l.Width })
	attrHeight         = layoutVal(AttrHeight, func(l *Layout) *Val { return &l.Height })
	attrMinWidth       = layoutVal(AttrMinWidth, func(l *Layout) *Val { return &l.MinWidth })
	attrMinHeight      = layoutVal(AttrMinHeight, func(l *Layout) *Val { return &l.MinHeight })
	attrMaxWidth       = layoutVal(AttrMaxWidth, func(l *Layout) *Val { return &l.MaxWidth })
	attrMaxHeight      = layoutVal(AttrMaxHeight, func(l *Layout) *Val { return &l.MaxHeight })
	attrAspectRatio    = layoutAttr(AttrAspectRatio, func(l *Layout) *mo.Option[float64] { return &l.AspectRatio })
	attrAlignItems     = layoutAttr(AttrAlignItems, func(l *Layout) *AlignItems { return &l.AlignItems })
	attrJustifyItems   = layoutAttr(AttrJustifyItems, func(l *Layout) *JustifyItems { return &l.JustifyItems })
	attrAlignSelf      = layoutAttr(AttrAlignSelf, func(l *Layout) *AlignSelf { return &l.AlignSelf })
	attrJustifySelf    = layoutAttr(AttrJustifySelf, func(l *Layout) *JustifySelf { return &l.JustifySelf })
	attrAlignContent   = layoutAttr(AttrAlignContent, func(l *Layout) *AlignContent { return &l.AlignContent })
	attrJustifyContent = layoutAttr(AttrJustifyContent, func(l *Layout) *JustifyContent { return &l.JustifyContent })
	attrMargin         = layoutEdges(AttrMargin, func(l *Layout) *Edges { return &l.Margin })
	attrPadding        = layoutEdges(AttrPadding, func(l *Layout) *Edges { return &l.Padding })
	attrBorder         = layoutEdges(AttrBorder, func(l *Layout) *Edges { return &l.Border })
	attrFlexDirection  = layoutAttr(AttrFlexDirection, func(l *Layout) *FlexDirection { return &l.FlexDirection })
	attrFlexWrap       = layoutAttr(AttrFlexWrap, func(l *Layout) *FlexWrap { return &l.FlexWrap })
	attrFlexGrow       = layoutFloat(AttrFlexGrow, func(l *Layout) *float64 { return &l.FlexGrow })
	attrFlexShrink     = layoutFloat(AttrFlexShrink, func(l *Layout) *float64 { return &l.FlexShrink })
	attrFlexBasis      = layoutVal(AttrFlexBasis, func(l *Layout) *Val { return &l.FlexBasis })
	attrRowGap         = layoutVal(AttrRowGap, func(l *Layout) *Val { return &l.RowGap })
	attrColumnGap      = layoutVal(AttrColumnGap, func(l *Layout) *Val { return &l.ColumnGap })
	attrGridAutoFlow   = layoutAttr(AttrGridAutoFlow, func(l *Layout) *GridAutoFlow { return &l.GridAutoFlow })

	attrGridTemplateRows    = layoutTracks(AttrGridTemplateRows, func(l *Layout) *[]GridTrack { return &l.GridTemplateRows })
	attrGridTemplateColumns = layoutTracks(AttrGridTemplateColumns, func(l *Layout) *[]GridTrack { return &l.GridTemplateColumns })
	attrGridAutoRows        = layoutTracks(AttrGridAutoRows, func(l *Layout) *[]GridTrack { return &l.GridAutoRows })
	attrGridAutoColumns     = layoutTracks(AttrGridAutoColumns, func(l *Layout) *[]GridTrack { return &l.GridAutoColumns })

	attrGridRow    = layoutAttr(AttrGridRow, func(l *Layout) *GridPlacement { return &l.GridRow })
	attrGridColumn = layoutAttr(AttrGridColumn, func(l *Layout) *GridPlacement { return &l.GridColumn })

	attrBackgroundColor = attribute[Color]{
		kind:  AttrBackgroundColor,
		slot:  func(n *Node) (*Color, bool) { return n.BackgroundColor, n.BackgroundColor != nil },
		equal: eq[Color],
		lerp:  LerpColor,
	}
	attrBorderColor = attribute[Color]{
		kind:  AttrBorderColor,
		slot:  func(n *Node) (*Color, bool) { return n.BorderColor, n.BorderColor != nil },
		equal: eq[Color],
		lerp:  LerpColor,
	}
	attrFocusPolicy = attribute[FocusPolicy]{
		kind:  AttrFocusPolicy,
		slot:  func(n *Node) (*FocusPolicy, bool) { return n.FocusPolicy, n.FocusPolicy != nil },
		equal: eq[FocusPolicy],
	}
	attrVisibility = attribute[Visibility]{
		kind:  AttrVisibility,
		slot:  func(n *Node) (*Visibility, bool) { return n.Visibility, n.Visibility != nil },
		equal: eq[Visibility],
	}
	attrZIndex = attribute[ZIndex]{
		kind:  AttrZIndex,
		slot:  func(n *Node) (*ZIndex, bool) { return n.ZIndex, n.ZIndex != nil },
		equal: eq[ZIndex],
	}
	attrImage = attribute[string]{
		kind:  AttrImage,
		equal: eq[string],
		write: writeImage,
	}
	attrImageScaleMode = attribute[ImageScaleMode]{
		kind: AttrImageScaleMode,
		slot: func(n *Node) (*ImageScaleMode, bool) {
			if n.Image == nil {
				return nil, false
			}
			return &n.Image.ScaleMode, true
		},
		equal: eq[ImageScaleMode],
	}
	attrInteractable = attribute[bool]{
		kind:  AttrInteractable,
		slot:  func(n *Node) (*bool, bool) { return &n.Interactable, true },
		equal: eq[bool],
	}
	attrAbsolutePosition = attribute[Vec2]{
		kind:  AttrAbsolutePosition,
		equal: eq[Vec2],
		lerp:  LerpVec2,
		write: writeAbsolutePosition,
	}
)

func layoutEdges(kind AttributeKind, field func(l *Layout) *Edges) attribute[Edges] {
	a := layoutAttr(kind, field)
	a.lerp = LerpEdges
	return a
}

func layoutFloat(kind AttributeKind, field func(l *Layout) *float64) attribute[float64] {
	a := layoutAttr(kind, field)
	a.lerp = LerpFloat64
	return a
}

// attributeTable indexes every attribute[T] by kind for the exported
// declaration constructors.
var attributeTable = [attrCount]any{
	AttrDisplay:             attrDisplay,
	AttrPositionType:        attrPositionType,
	AttrOverflow:            attrOverflow,
	AttrDirection:           attrDirection,
	AttrLeft:                attrLeft,
	AttrRight:               attrRight,
	AttrTop:                 attrTop,
	AttrBottom:              attrBottom,
	AttrWidth:               attrWidth,
	AttrHeight:              attrHeight,
	AttrMinWidth:            attrMinWidth,
	AttrMinHeight:           attrMinHeight,
	AttrMaxWidth:            attrMaxWidth,
	AttrMaxHeight:           attrMaxHeight,
	AttrAspectRatio:         attrAspectRatio,
	AttrAlignItems:          attrAlignItems,
	AttrJustifyItems:        attrJustifyItems,
	AttrAlignSelf:           attrAlignSelf,
	AttrJustifySelf:         attrJustifySelf,
	AttrAlignContent:        attrAlignContent,
	AttrJustifyContent:      attrJustifyContent,
	AttrMargin:              attrMargin,
	AttrPadding:             attrPadding,
	AttrBorder:              attrBorder,
	AttrFlexDirection:       attrFlexDirection,
	AttrFlexWrap:            attrFlexWrap,
	AttrFlexGrow:            attrFlexGrow,
	AttrFlexShrink:          attrFlexShrink,
	AttrFlexBasis:           attrFlexBasis,
	AttrRowGap:              attrRowGap,
	AttrColumnGap:           attrColumnGap,
	AttrGridAutoFlow:        attrGridAutoFlow,
	AttrGridTemplateRows:    attrGridTemplateRows,
	AttrGridTemplateColumns: attrGridTemplateColumns,
	AttrGridAutoRows:        attrGridAutoRows,
	AttrGridAutoColumns:     attrGridAutoColumns,
	AttrGridRow:             attrGridRow,
	AttrGridColumn:          attrGridColumn,
	AttrBackgroundColor:     attrBackgroundColor,
	AttrBorderColor:         attrBorderColor,
	AttrFocusPolicy:         attrFocusPolicy,
	AttrVisibility:          attrVisibility,
	AttrZIndex:              attrZIndex,
	AttrImage:               attrImage,
	AttrImageScaleMode:      attrImageScaleMode,
	AttrInteractable:        attrInteractable,
	AttrAbsolutePosition:    attrAbsolutePosition,
}

// lookupAttribute returns the table entry for kind. An unknown kind or a T
// that is not kind's value type yields an entry with no slot, which
// applyAttribute reports as a missing target.
func lookupAttribute[T any](kind AttributeKind) attribute[T] {
	if kind < attrCount {
		if a, ok := attributeTable[kind].(attribute[T]); ok {
			return a
		}
	}
	return attribute[T]{kind: kind}
}

// bound reports whether a can write to a node.
func (a attribute[T]) bound() bool {
	return a.write != nil || (a.slot != nil && a.equal != nil)
}

// cloneValue copies v if a's values share backing storage.
func (a attribute[T]) cloneValue(v T) T {
	if a.clone == nil {
		return v
	}
	return a.clone(v)
}

// cloneBundle copies every value of b that is set.
func (a attribute[T]) cloneBundle(b ValueBundle[T]) ValueBundle[T] {
	if a.clone == nil {
		return b
	}
	b.Base = a.clone(b.Base)
	b.Hover = b.Hover.MapValue(a.clone)
	b.Press = b.Press.MapValue(a.clone)
	b.Cancel = b.Cancel.MapValue(a.clone)
	return b
}
