package entity

import "github.com/kraemahz/ninja-force/internal/domain/geometry"

// ItemKind says how an actor interacts with an item volume.
type ItemKind int

const (
	ItemBackground ItemKind = iota
	ItemClimbable
	ItemCollectable
	ItemHazard
)

func (k ItemKind) String() string {
	switch k {
	case ItemBackground:
		return "background"
	case ItemClimbable:
		return "climbable"
	case ItemCollectable:
		return "collectable"
	case ItemHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// PowerUp is the single ki technique a player can hold.
type PowerUp int

const (
	PowerUpNone PowerUp = iota
	KiArmor
	KiStar
	KiBlade
	KiClaws
	KiFan
)

func (p PowerUp) String() string {
	switch p {
	case PowerUpNone:
		return "none"
	case KiArmor:
		return "kiArmor"
	case KiStar:
		return "kiStar"
	case KiBlade:
		return "kiBlade"
	case KiClaws:
		return "kiClaws"
	case KiFan:
		return "kiFan"
	default:
		return "unknown"
	}
}

// ParsePowerUp maps a config name to a PowerUp.
func ParsePowerUp(name string) (PowerUp, bool) {
	for p := KiArmor; p <= KiFan; p++ {
		if p.String() == name {
			return p, true
		}
	}
	return PowerUpNone, false
}

// Item is a non-solid volume an actor can overlap. Box is in world space.
type Item struct {
	ID      EntityID
	Kind    ItemKind
	PowerUp PowerUp
	Box     geometry.Corners
}

// Collect picks up a power-up. Armor only fills an empty slot; anything else
// replaces what is held. Reports whether the held power-up changed.
func (p *Player) Collect(pu PowerUp) bool {
	if pu == PowerUpNone {
		return false
	}
	if pu == KiArmor && p.PowerUp != PowerUpNone {
		return false
	}
	changed := p.PowerUp != pu
	p.PowerUp = pu
	return changed
}

// Damage applies one hit. Armor is consumed, any other technique downgrades
// to armor, and a player holding nothing dies. Returns false on death.
func (p *Player) Damage() bool {
	switch p.PowerUp {
	case PowerUpNone:
		return false
	case KiArmor:
		p.PowerUp = PowerUpNone
	default:
		p.PowerUp = KiArmor
	}
	return true
}
