// Package petal resolves and applies interaction-aware styles for a
// retained-mode [Ebitengine] node tree.
//
// A style is a set of attribute declarations (width, background color,
// padding, grid tracks and so on) built with a [StyleBuilder]. Each
// declaration takes one of three forms:
//
//   - static: a constant written once and kept in place
//   - interactive: a [ValueBundle] holding a base value plus optional
//     hover, press and cancel values, picked by the node's current
//     [InteractionPhase]
//   - animated: the same bundle blended with a Lerp while an
//     [AnimationController] tweens from the previous phase to the new one
//
// # Quick start
//
//	scene := petal.NewScene()
//	btn := petal.NewPanel("play")
//	btn.Interactable = true
//	scene.Root().AddChild(btn)
//
//	b := petal.NewStyleBuilder().Width(petal.Px(120)).Height(petal.Px(32))
//	b.Animated(petal.Animate(0.15, ease.OutQuad)).
//		BackgroundColor(petal.Vals(idle).WithHover(hover).WithPress(pressed))
//	btn.SetStyle(b.Build())
//
// Call [Scene.Update] once per tick. Phase changes come from
// [Scene.HandleEvent], from injected pointer samples ([Scene.InjectClick]),
// or from the live mouse when [Scene.SetPointerInput] is enabled.
//
// # Writes
//
// Applying a declaration is idempotent: a value equal to the node's live
// state is not written and does not bump [Node.Revision]. Attributes in the
// node's lock set are left untouched. A write that cannot happen because
// the node lacks the slot or a prerequisite (a parent for AbsolutePosition,
// an [AssetServer] for Image) is skipped with a warning on the logger set
// by [SetLogger], counted by [Metrics], and forwarded to the scene's
// [EntityStore]. Skips never surface as errors.
//
// # Configuration
//
// [LoadConfig] reads YAML through viper from any afero file system, with
// PETAL_* environment overrides. [Config.Apply] installs the log level and
// format, the duplicate-declaration warning, and the default animation.
//
// ECS integration lives in petal/ecs, which forwards style and phase events
// to a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package petal
