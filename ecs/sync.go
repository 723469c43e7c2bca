package ecs

import (
	"github.com/phanxgames/splat"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// TransformData is the entity-side copy of an instance transform.
type TransformData struct {
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64
	Flags          splat.Flags
}

// SpriteData links an entity to a splat instance.
type SpriteData struct {
	Instance *splat.Instance
}

var (
	// Transform holds the position, scale, rotation, and flags to apply.
	Transform = donburi.NewComponentType[TransformData]()
	// Sprite references the instance that Transform is applied to.
	Sprite = donburi.NewComponentType[SpriteData]()
)

var spriteQuery = donburi.NewQuery(filter.Contains(Transform, Sprite))

// NewSpriteEntity creates an entity for inst, seeding Transform from the
// instance's current state.
func NewSpriteEntity(world donburi.World, inst *splat.Instance) donburi.Entity {
	e := world.Create(Transform, Sprite)
	entry := world.Entry(e)
	x, y := inst.Position()
	sx, sy := inst.Scale()
	Transform.SetValue(entry, TransformData{
		X: x, Y: y,
		ScaleX: sx, ScaleY: sy,
		Rotation: inst.Rotation(),
		Flags:    inst.Flags(),
	})
	Sprite.SetValue(entry, SpriteData{Instance: inst})
	return e
}

// SyncInstances copies every entity's Transform onto its instance. Entities
// whose instance has been destroyed are removed from the world. Run it once
// per frame before Render.
func SyncInstances(world donburi.World) {
	var dead []donburi.Entity
	spriteQuery.Each(world, func(entry *donburi.Entry) {
		inst := Sprite.Get(entry).Instance
		if inst == nil || inst.IsDestroyed() {
			dead = append(dead, entry.Entity())
			return
		}
		t := Transform.Get(entry)
		inst.SetPosition(t.X, t.Y)
		inst.SetScale(t.ScaleX, t.ScaleY)
		inst.SetRotation(t.Rotation)
		inst.SetFlags(t.Flags)
	})
	for _, e := range dead {
		world.Remove(e)
	}
}
