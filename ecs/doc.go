// Package ecs provides ECS adapters for splat.
//
// [NewDonburiStore] bridges splat window events (quit, key down) into a
// [Donburi] world as typed events; subscribe to [WindowEventType] in your
// systems to receive them:
//
//	store := ecs.NewDonburiStore(world)
//	window.SetEventStore(store)
//
// [SyncInstances] is a system that copies [Transform] components onto the
// splat instances referenced by [Sprite] components, so game logic can
// move entities and leave instance bookkeeping to the adapter.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
