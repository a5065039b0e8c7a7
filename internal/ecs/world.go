package ecs

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/kraemahz/ninja-force/internal/domain/entity"
	"github.com/kraemahz/ninja-force/internal/domain/geometry"
)

// World is a dense arena of entities held in per-kind slices. Slice order is
// insertion order and is the iteration order every stage uses. Handles are
// never recycled.
type World struct {
	nextID entity.EntityID

	Statics []entity.StaticBox
	Players []entity.Player
	Items   []entity.Item
	Enemies []entity.Enemy

	// Arena keeps bodies inside its bounds when set.
	Arena *geometry.InverseBox

	// Stage is the tile grid the world was built from, if any.
	Stage *entity.Stage

	// Singleton reference to the first player created
	PlayerID entity.EntityID

	statics map[entity.EntityID]int
	players map[entity.EntityID]int
	items   map[entity.EntityID]int
	enemies map[entity.EntityID]int
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:  1, // 0 is "nil"
		statics: make(map[entity.EntityID]int),
		players: make(map[entity.EntityID]int),
		items:   make(map[entity.EntityID]int),
		enemies: make(map[entity.EntityID]int),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() entity.EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// AddStatic places an immovable collider. Colliders are never removed.
func (w *World) AddStatic(shape geometry.Corners, pos mgl32.Vec2) entity.EntityID {
	id := w.NewEntity()
	w.statics[id] = len(w.Statics)
	w.Statics = append(w.Statics, entity.StaticBox{ID: id, Shape: shape, Position: pos})
	return id
}

// AddPlayer spawns a player. The first player becomes PlayerID.
func (w *World) AddPlayer(spawn mgl32.Vec2, shapes entity.ShapeSet) entity.EntityID {
	id := w.NewEntity()
	w.players[id] = len(w.Players)
	w.Players = append(w.Players, *entity.NewPlayer(id, spawn, shapes))
	if w.PlayerID == 0 {
		w.PlayerID = id
	}
	return id
}

// AddItem places an item volume in world space.
func (w *World) AddItem(kind entity.ItemKind, pu entity.PowerUp, box geometry.Corners) entity.EntityID {
	id := w.NewEntity()
	w.items[id] = len(w.Items)
	w.Items = append(w.Items, entity.Item{ID: id, Kind: kind, PowerUp: pu, Box: box})
	return id
}

// AddEnemy spawns e under a fresh handle and returns it.
func (w *World) AddEnemy(e entity.Enemy) entity.EntityID {
	e.ID = w.NewEntity()
	w.enemies[e.ID] = len(w.Enemies)
	w.Enemies = append(w.Enemies, e)
	return e.ID
}

// SetArena bounds every body to the given box.
func (w *World) SetArena(bounds geometry.Corners) {
	arena := geometry.NewInverseBox(bounds)
	w.Arena = &arena
}

// Static returns the collider for id, or nil.
func (w *World) Static(id entity.EntityID) *entity.StaticBox {
	i, ok := w.statics[id]
	if !ok {
		return nil
	}
	return &w.Statics[i]
}

// Player returns the player for id, or nil. The pointer is valid until the
// next AddPlayer.
func (w *World) Player(id entity.EntityID) *entity.Player {
	i, ok := w.players[id]
	if !ok {
		return nil
	}
	return &w.Players[i]
}

// Item returns the item for id, or nil.
func (w *World) Item(id entity.EntityID) *entity.Item {
	i, ok := w.items[id]
	if !ok {
		return nil
	}
	return &w.Items[i]
}

// Enemy returns the enemy for id, or nil.
func (w *World) Enemy(id entity.EntityID) *entity.Enemy {
	i, ok := w.enemies[id]
	if !ok {
		return nil
	}
	return &w.Enemies[i]
}

// MainPlayer returns the singleton player, or nil if none was spawned.
func (w *World) MainPlayer() *entity.Player {
	return w.Player(w.PlayerID)
}

// RemoveItem deletes an item, keeping the remaining items in order.
func (w *World) RemoveItem(id entity.EntityID) bool {
	i, ok := w.items[id]
	if !ok {
		return false
	}
	w.Items = slices.Delete(w.Items, i, i+1)
	delete(w.items, id)
	for j := i; j < len(w.Items); j++ {
		w.items[w.Items[j].ID] = j
	}
	return true
}

// RemoveEnemy deletes an enemy, keeping the remaining enemies in order.
func (w *World) RemoveEnemy(id entity.EntityID) bool {
	i, ok := w.enemies[id]
	if !ok {
		return false
	}
	w.Enemies = slices.Delete(w.Enemies, i, i+1)
	delete(w.enemies, id)
	for j := i; j < len(w.Enemies); j++ {
		w.enemies[w.Enemies[j].ID] = j
	}
	return true
}

// Exists checks whether id refers to a live entity of any kind
func (w *World) Exists(id entity.EntityID) bool {
	if _, ok := w.statics[id]; ok {
		return true
	}
	if _, ok := w.players[id]; ok {
		return true
	}
	if _, ok := w.items[id]; ok {
		return true
	}
	_, ok := w.enemies[id]
	return ok
}
