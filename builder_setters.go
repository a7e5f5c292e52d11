package petal

import "github.com/samber/mo"

// --- Plain setters ---

// Display declares a fixed value for Display.
func (b *StyleBuilder) Display(v Display) *StyleBuilder { return addStatic(b, attrDisplay, v) }

// PositionType declares a fixed value for PositionType.
func (b *StyleBuilder) PositionType(v PositionType) *StyleBuilder { return addStatic(b, attrPositionType, v) }

// Overflow declares a fixed value for Overflow.
func (b *StyleBuilder) Overflow(v Overflow) *StyleBuilder { return addStatic(b, attrOverflow, v) }

// Direction declares a fixed value for Direction.
func (b *StyleBuilder) Direction(v Direction) *StyleBuilder { return addStatic(b, attrDirection, v) }

// Left declares a fixed value for Left.
func (b *StyleBuilder) Left(v Val) *StyleBuilder { return addStatic(b, attrLeft, v) }

// Right declares a fixed value for Right.
func (b *StyleBuilder) Right(v Val) *StyleBuilder { return addStatic(b, attrRight, v) }

// Top declares a fixed value for Top.
func (b *StyleBuilder) Top(v Val) *StyleBuilder { return addStatic(b, attrTop, v) }

// Bottom declares a fixed value for Bottom.
func (b *StyleBuilder) Bottom(v Val) *StyleBuilder { return addStatic(b, attrBottom, v) }

// Width declares a fixed value for Width.
func (b *StyleBuilder) Width(v Val) *StyleBuilder { return addStatic(b, attrWidth, v) }

// Height declares a fixed value for Height.
func (b *StyleBuilder) Height(v Val) *StyleBuilder { return addStatic(b, attrHeight, v) }

// MinWidth declares a fixed value for MinWidth.
func (b *StyleBuilder) MinWidth(v Val) *StyleBuilder { return addStatic(b, attrMinWidth, v) }

// MinHeight declares a fixed value for MinHeight.
func (b *StyleBuilder) MinHeight(v Val) *StyleBuilder { return addStatic(b, attrMinHeight, v) }

// MaxWidth declares a fixed value for MaxWidth.
func (b *StyleBuilder) MaxWidth(v Val) *StyleBuilder { return addStatic(b, attrMaxWidth, v) }

// MaxHeight declares a fixed value for MaxHeight.
func (b *StyleBuilder) MaxHeight(v Val) *StyleBuilder { return addStatic(b, attrMaxHeight, v) }

// AspectRatio declares a fixed value for AspectRatio.
func (b *StyleBuilder) AspectRatio(v mo.Option[float64]) *StyleBuilder { return addStatic(b, attrAspectRatio, v) }

// AlignItems declares a fixed value for AlignItems.
func (b *StyleBuilder) AlignItems(v AlignItems) *StyleBuilder { return addStatic(b, attrAlignItems, v) }

// JustifyItems declares a fixed value for JustifyItems.
func (b *StyleBuilder) JustifyItems(v JustifyItems) *StyleBuilder { return addStatic(b, attrJustifyItems, v) }

// AlignSelf declares a fixed value for AlignSelf.
func (b *StyleBuilder) AlignSelf(v AlignSelf) *StyleBuilder { return addStatic(b, attrAlignSelf, v) }

// JustifySelf declares a fixed value for JustifySelf.
func (b *StyleBuilder) JustifySelf(v JustifySelf) *StyleBuilder { return addStatic(b, attrJustifySelf, v) }

// AlignContent declares a fixed value for AlignContent.
func (b *StyleBuilder) AlignContent(v AlignContent) *StyleBuilder { return addStatic(b, attrAlignContent, v) }

// JustifyContent declares a fixed value for JustifyContent.
func (b *StyleBuilder) JustifyContent(v JustifyContent) *StyleBuilder { return addStatic(b, attrJustifyContent, v) }

// Margin declares a fixed value for Margin.
func (b *StyleBuilder) Margin(v Edges) *StyleBuilder { return addStatic(b, attrMargin, v) }

// Padding declares a fixed value for Padding.
func (b *StyleBuilder) Padding(v Edges) *StyleBuilder { return addStatic(b, attrPadding, v) }

// Border declares a fixed value for Border.
func (b *StyleBuilder) Border(v Edges) *StyleBuilder { return addStatic(b, attrBorder, v) }

// FlexDirection declares a fixed value for FlexDirection.
func (b *StyleBuilder) FlexDirection(v FlexDirection) *StyleBuilder { return addStatic(b, attrFlexDirection, v) }

// FlexWrap declares a fixed value for FlexWrap.
func (b *StyleBuilder) FlexWrap(v FlexWrap) *StyleBuilder { return addStatic(b, attrFlexWrap, v) }

// FlexGrow declares a fixed value for FlexGrow.
func (b *StyleBuilder) FlexGrow(v float64) *StyleBuilder { return addStatic(b, attrFlexGrow, v) }

// FlexShrink declares a fixed value for FlexShrink.
func (b *StyleBuilder) FlexShrink(v float64) *StyleBuilder { return addStatic(b, attrFlexShrink, v) }

// FlexBasis declares a fixed value for FlexBasis.
func (b *StyleBuilder) FlexBasis(v Val) *StyleBuilder { return addStatic(b, attrFlexBasis, v) }

// RowGap declares a fixed value for RowGap.
func (b *StyleBuilder) RowGap(v Val) *StyleBuilder { return addStatic(b, attrRowGap, v) }

// ColumnGap declares a fixed value for ColumnGap.
func (b *StyleBuilder) ColumnGap(v Val) *StyleBuilder { return addStatic(b, attrColumnGap, v) }

// GridAutoFlow declares a fixed value for GridAutoFlow.
func (b *StyleBuilder) GridAutoFlow(v GridAutoFlow) *StyleBuilder { return addStatic(b, attrGridAutoFlow, v) }

// GridTemplateRows declares a fixed value for GridTemplateRows.
func (b *StyleBuilder) GridTemplateRows(v []GridTrack) *StyleBuilder { return addStatic(b, attrGridTemplateRows, v) }

// GridTemplateColumns declares a fixed value for GridTemplateColumns.
func (b *StyleBuilder) GridTemplateColumns(v []GridTrack) *StyleBuilder { return addStatic(b, attrGridTemplateColumns, v) }

// GridAutoRows declares a fixed value for GridAutoRows.
func (b *StyleBuilder) GridAutoRows(v []GridTrack) *StyleBuilder { return addStatic(b, attrGridAutoRows, v) }

// GridAutoColumns declares a fixed value for GridAutoColumns.
func (b *StyleBuilder) GridAutoColumns(v []GridTrack) *StyleBuilder { return addStatic(b, attrGridAutoColumns, v) }

// GridRow declares a fixed value for GridRow.
func (b *StyleBuilder) GridRow(v GridPlacement) *StyleBuilder { return addStatic(b, attrGridRow, v) }

// GridColumn declares a fixed value for GridColumn.
func (b *StyleBuilder) GridColumn(v GridPlacement) *StyleBuilder { return addStatic(b, attrGridColumn, v) }

// BackgroundColor declares a fixed value for BackgroundColor.
func (b *StyleBuilder) BackgroundColor(v Color) *StyleBuilder { return addStatic(b, attrBackgroundColor, v) }

// BorderColor declares a fixed value for BorderColor.
func (b *StyleBuilder) BorderColor(v Color) *StyleBuilder { return addStatic(b, attrBorderColor, v) }

// FocusPolicy declares a fixed value for FocusPolicy.
func (b *StyleBuilder) FocusPolicy(v FocusPolicy) *StyleBuilder { return addStatic(b, attrFocusPolicy, v) }

// Visibility declares a fixed value for Visibility.
func (b *StyleBuilder) Visibility(v Visibility) *StyleBuilder { return addStatic(b, attrVisibility, v) }

// ZIndex declares a fixed value for ZIndex.
func (b *StyleBuilder) ZIndex(v ZIndex) *StyleBuilder { return addStatic(b, attrZIndex, v) }

// Image declares a fixed value for Image.
func (b *StyleBuilder) Image(v string) *StyleBuilder { return addStatic(b, attrImage, v) }

// ImageScaleMode declares a fixed value for ImageScaleMode.
func (b *StyleBuilder) ImageScaleMode(v ImageScaleMode) *StyleBuilder { return addStatic(b, attrImageScaleMode, v) }

// Interactable declares a fixed value for Interactable.
func (b *StyleBuilder) Interactable(v bool) *StyleBuilder { return addStatic(b, attrInteractable, v) }

// AbsolutePosition declares a fixed value for AbsolutePosition.
func (b *StyleBuilder) AbsolutePosition(v Vec2) *StyleBuilder { return addStatic(b, attrAbsolutePosition, v) }

// --- Interactive setters ---
//
// Each takes the per-phase values of one attribute; see ResolveInteractive.

// Display declares per-phase values for Display.
func (b InteractiveBuilder) Display(v ValueBundle[Display]) InteractiveBuilder { return addInteractive(b, attrDisplay, v) }

// PositionType declares per-phase values for PositionType.
func (b InteractiveBuilder) PositionType(v ValueBundle[PositionType]) InteractiveBuilder { return addInteractive(b, attrPositionType, v) }

// Overflow declares per-phase values for Overflow.
func (b InteractiveBuilder) Overflow(v ValueBundle[Overflow]) InteractiveBuilder { return addInteractive(b, attrOverflow, v) }

// Direction declares per-phase values for Direction.
func (b InteractiveBuilder) Direction(v ValueBundle[Direction]) InteractiveBuilder { return addInteractive(b, attrDirection, v) }

// Left declares per-phase values for Left.
func (b InteractiveBuilder) Left(v ValueBundle[Val]) InteractiveBuilder { return addInteractive(b, attrLeft, v) }

// Right declares per-phase values for Right.
func (b InteractiveBuilder) Right(v ValueBundle[Val]) InteractiveBuilder { return addInteractive(b, attrRight, v) }

// Top declares per-phase values for Top.
func (b InteractiveBuilder) Top(v ValueBundle[Val]) InteractiveBuilder { return addInteractive(b, attrTop, v) }

// Bottom declares per-phase values for Bottom.
func (b InteractiveBuilder) Bottom(v ValueBundle[Val]) InteractiveBuilder { return addInteractive(b, attrBottom, v) }

// Width declares per-phase values for Width.
func (b InteractiveBuilder) Width(v ValueBundle[Val]) InteractiveBuilder { return addInteractive(b, attrWidth, v) }

// Height declares per-phase values for Height.
func (b InteractiveBuilder) Height(v ValueBundle[Val]) InteractiveBuilder { return addInteractive(b, attrHeight, v) }

// MinWidth declares per-phase values for MinWidth.
func (b InteractiveBuilder) MinWidth(v ValueBundle[Val]) InteractiveBuilder { return addInteractive(b, attrMinWidth, v) }

// MinHeight declares per-phase values for MinHeight.
func (b InteractiveBuilder) MinHeight(v ValueBundle[Val]) InteractiveBuilder { return addInteractive(b, attrMinHeight, v) }

// MaxWidth declares per-phase values for MaxWidth.
func (b InteractiveBuilder) MaxWidth(v ValueBundle[Val]) InteractiveBuilder { return addInteractive(b, attrMaxWidth, v) }

// MaxHeight declares per-phase values for MaxHeight.
func (b InteractiveBuilder) MaxHeight(v ValueBundle[Val]) InteractiveBuilder { return addInteractive(b, attrMaxHeight, v) }

// AspectRatio declares per-phase values for AspectRatio.
func (b InteractiveBuilder) AspectRatio(v ValueBundle[mo.Option[float64]]) InteractiveBuilder { return addInteractive(b, attrAspectRatio, v) }

// AlignItems declares per-phase values for AlignItems.
func (b InteractiveBuilder) AlignItems(v ValueBundle[AlignItems]) InteractiveBuilder { return addInteractive(b, attrAlignItems, v) }

// JustifyItems declares per-phase values for JustifyItems.
func (b InteractiveBuilder) JustifyItems(v ValueBundle[JustifyItems]) InteractiveBuilder { return addInteractive(b, attrJustifyItems, v) }

// AlignSelf declares per-phase values for AlignSelf.
func (b InteractiveBuilder) AlignSelf(v ValueBundle[AlignSelf]) InteractiveBuilder { return addInteractive(b, attrAlignSelf, v) }

// JustifySelf declares per-phase values for JustifySelf.
func (b InteractiveBuilder) JustifySelf(v ValueBundle[JustifySelf]) InteractiveBuilder { return addInteractive(b, attrJustifySelf, v) }

// AlignContent declares per-phase values for AlignContent.
func (b InteractiveBuilder) AlignContent(v ValueBundle[AlignContent]) InteractiveBuilder { return addInteractive(b, attrAlignContent, v) }

// JustifyContent declares per-phase values for JustifyContent.
func (b InteractiveBuilder) JustifyContent(v ValueBundle[JustifyContent]) InteractiveBuilder { return addInteractive(b, attrJustifyContent, v) }

// Margin declares per-phase values for Margin.
func (b InteractiveBuilder) Margin(v ValueBundle[Edges]) InteractiveBuilder { return addInteractive(b, attrMargin, v) }

// Padding declares per-phase values for Padding.
func (b InteractiveBuilder) Padding(v ValueBundle[Edges]) InteractiveBuilder { return addInteractive(b, attrPadding, v) }

// Border declares per-phase values for Border.
func (b InteractiveBuilder) Border(v ValueBundle[Edges]) InteractiveBuilder { return addInteractive(b, attrBorder, v) }

// FlexDirection declares per-phase values for FlexDirection.
func (b InteractiveBuilder) FlexDirection(v ValueBundle[FlexDirection]) InteractiveBuilder { return addInteractive(b, attrFlexDirection, v) }

// FlexWrap declares per-phase values for FlexWrap.
func (b InteractiveBuilder) FlexWrap(v ValueBundle[FlexWrap]) InteractiveBuilder { return addInteractive(b, attrFlexWrap, v) }

// FlexGrow declares per-phase values for FlexGrow.
func (b InteractiveBuilder) FlexGrow(v ValueBundle[float64]) InteractiveBuilder { return addInteractive(b, attrFlexGrow, v) }

// FlexShrink declares per-phase values for FlexShrink.
func (b InteractiveBuilder) FlexShrink(v ValueBundle[float64]) InteractiveBuilder { return addInteractive(b, attrFlexShrink, v) }

// FlexBasis declares per-phase values for FlexBasis.
func (b InteractiveBuilder) FlexBasis(v ValueBundle[Val]) InteractiveBuilder { return addInteractive(b, attrFlexBasis, v) }

// RowGap declares per-phase values for RowGap.
func (b InteractiveBuilder) RowGap(v ValueBundle[Val]) InteractiveBuilder { return addInteractive(b, attrRowGap, v) }

// ColumnGap declares per-phase values for ColumnGap.
func (b InteractiveBuilder) ColumnGap(v ValueBundle[Val]) InteractiveBuilder { return addInteractive(b, attrColumnGap, v) }

// GridAutoFlow declares per-phase values for GridAutoFlow.
func (b InteractiveBuilder) GridAutoFlow(v ValueBundle[GridAutoFlow]) InteractiveBuilder { return addInteractive(b, attrGridAutoFlow, v) }

// GridTemplateRows declares per-phase values for GridTemplateRows.
func (b InteractiveBuilder) GridTemplateRows(v ValueBundle[[]GridTrack]) InteractiveBuilder { return addInteractive(b, attrGridTemplateRows, v) }

// GridTemplateColumns declares per-phase values for GridTemplateColumns.
func (b InteractiveBuilder) GridTemplateColumns(v ValueBundle[[]GridTrack]) InteractiveBuilder { return addInteractive(b, attrGridTemplateColumns, v) }

// GridAutoRows declares per-phase values for GridAutoRows.
func (b InteractiveBuilder) GridAutoRows(v ValueBundle[[]GridTrack]) InteractiveBuilder { return addInteractive(b, attrGridAutoRows, v) }

// GridAutoColumns declares per-phase values for GridAutoColumns.
func (b InteractiveBuilder) GridAutoColumns(v ValueBundle[[]GridTrack]) InteractiveBuilder { return addInteractive(b, attrGridAutoColumns, v) }

// GridRow declares per-phase values for GridRow.
func (b InteractiveBuilder) GridRow(v ValueBundle[GridPlacement]) InteractiveBuilder { return addInteractive(b, attrGridRow, v) }

// GridColumn declares per-phase values for GridColumn.
func (b InteractiveBuilder) GridColumn(v ValueBundle[GridPlacement]) InteractiveBuilder { return addInteractive(b, attrGridColumn, v) }

// BackgroundColor declares per-phase values for BackgroundColor.
func (b InteractiveBuilder) BackgroundColor(v ValueBundle[Color]) InteractiveBuilder { return addInteractive(b, attrBackgroundColor, v) }

// BorderColor declares per-phase values for BorderColor.
func (b InteractiveBuilder) BorderColor(v ValueBundle[Color]) InteractiveBuilder { return addInteractive(b, attrBorderColor, v) }

// FocusPolicy declares per-phase values for FocusPolicy.
func (b InteractiveBuilder) FocusPolicy(v ValueBundle[FocusPolicy]) InteractiveBuilder { return addInteractive(b, attrFocusPolicy, v) }

// Visibility declares per-phase values for Visibility.
func (b InteractiveBuilder) Visibility(v ValueBundle[Visibility]) InteractiveBuilder { return addInteractive(b, attrVisibility, v) }

// ZIndex declares per-phase values for ZIndex.
func (b InteractiveBuilder) ZIndex(v ValueBundle[ZIndex]) InteractiveBuilder { return addInteractive(b, attrZIndex, v) }

// Image declares per-phase values for Image.
func (b InteractiveBuilder) Image(v ValueBundle[string]) InteractiveBuilder { return addInteractive(b, attrImage, v) }

// ImageScaleMode declares per-phase values for ImageScaleMode.
func (b InteractiveBuilder) ImageScaleMode(v ValueBundle[ImageScaleMode]) InteractiveBuilder { return addInteractive(b, attrImageScaleMode, v) }

// Interactable declares per-phase values for Interactable.
func (b InteractiveBuilder) Interactable(v ValueBundle[bool]) InteractiveBuilder { return addInteractive(b, attrInteractable, v) }

// AbsolutePosition declares per-phase values for AbsolutePosition.
func (b InteractiveBuilder) AbsolutePosition(v ValueBundle[Vec2]) InteractiveBuilder { return addInteractive(b, attrAbsolutePosition, v) }

// --- Animated setters ---
//
// Only attributes with an interpolator can be animated.

// Left declares animated per-phase values for Left.
func (b AnimatedBuilder) Left(v ValueBundle[Val]) AnimatedBuilder { return addAnimated(b, attrLeft, v) }

// Right declares animated per-phase values for Right.
func (b AnimatedBuilder) Right(v ValueBundle[Val]) AnimatedBuilder { return addAnimated(b, attrRight, v) }

// Top declares animated per-phase values for Top.
func (b AnimatedBuilder) Top(v ValueBundle[Val]) AnimatedBuilder { return addAnimated(b, attrTop, v) }

// Bottom declares animated per-phase values for Bottom.
func (b AnimatedBuilder) Bottom(v ValueBundle[Val]) AnimatedBuilder { return addAnimated(b, attrBottom, v) }

// Width declares animated per-phase values for Width.
func (b AnimatedBuilder) Width(v ValueBundle[Val]) AnimatedBuilder { return addAnimated(b, attrWidth, v) }

// Height declares animated per-phase values for Height.
func (b AnimatedBuilder) Height(v ValueBundle[Val]) AnimatedBuilder { return addAnimated(b, attrHeight, v) }

// MinWidth declares animated per-phase values for MinWidth.
func (b AnimatedBuilder) MinWidth(v ValueBundle[Val]) AnimatedBuilder { return addAnimated(b, attrMinWidth, v) }

// MinHeight declares animated per-phase values for MinHeight.
func (b AnimatedBuilder) MinHeight(v ValueBundle[Val]) AnimatedBuilder { return addAnimated(b, attrMinHeight, v) }

// MaxWidth declares animated per-phase values for MaxWidth.
func (b AnimatedBuilder) MaxWidth(v ValueBundle[Val]) AnimatedBuilder { return addAnimated(b, attrMaxWidth, v) }

// MaxHeight declares animated per-phase values for MaxHeight.
func (b AnimatedBuilder) MaxHeight(v ValueBundle[Val]) AnimatedBuilder { return addAnimated(b, attrMaxHeight, v) }

// Margin declares animated per-phase values for Margin.
func (b AnimatedBuilder) Margin(v ValueBundle[Edges]) AnimatedBuilder { return addAnimated(b, attrMargin, v) }

// Padding declares animated per-phase values for Padding.
func (b AnimatedBuilder) Padding(v ValueBundle[Edges]) AnimatedBuilder { return addAnimated(b, attrPadding, v) }

// Border declares animated per-phase values for Border.
func (b AnimatedBuilder) Border(v ValueBundle[Edges]) AnimatedBuilder { return addAnimated(b, attrBorder, v) }

// FlexGrow declares animated per-phase values for FlexGrow.
func (b AnimatedBuilder) FlexGrow(v ValueBundle[float64]) AnimatedBuilder { return addAnimated(b, attrFlexGrow, v) }

// FlexShrink declares animated per-phase values for FlexShrink.
func (b AnimatedBuilder) FlexShrink(v ValueBundle[float64]) AnimatedBuilder { return addAnimated(b, attrFlexShrink, v) }

// FlexBasis declares animated per-phase values for FlexBasis.
func (b AnimatedBuilder) FlexBasis(v ValueBundle[Val]) AnimatedBuilder { return addAnimated(b, attrFlexBasis, v) }

// RowGap declares animated per-phase values for RowGap.
func (b AnimatedBuilder) RowGap(v ValueBundle[Val]) AnimatedBuilder { return addAnimated(b, attrRowGap, v) }

// ColumnGap declares animated per-phase values for ColumnGap.
func (b AnimatedBuilder) ColumnGap(v ValueBundle[Val]) AnimatedBuilder { return addAnimated(b, attrColumnGap, v) }

// BackgroundColor declares animated per-phase values for BackgroundColor.
func (b AnimatedBuilder) BackgroundColor(v ValueBundle[Color]) AnimatedBuilder { return addAnimated(b, attrBackgroundColor, v) }

// BorderColor declares animated per-phase values for BorderColor.
func (b AnimatedBuilder) BorderColor(v ValueBundle[Color]) AnimatedBuilder { return addAnimated(b, attrBorderColor, v) }

// AbsolutePosition declares animated per-phase values for AbsolutePosition.
func (b AnimatedBuilder) AbsolutePosition(v ValueBundle[Vec2]) AnimatedBuilder { return addAnimated(b, attrAbsolutePosition, v) }
