// Package ecs provides ECS adapters for petal's style diagnostics and
// interaction phases.
//
// The primary adapter is [NewDonburiStore], which forwards skipped style
// writes and phase changes into a [Donburi] world as typed events.
// Subscribe to [StyleEventType] or [PhaseEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
