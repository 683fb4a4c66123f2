package domain

import (
	"errors"
	"fmt"
	"time"
)

// ItemKind is the closed set of tradeable good kinds.
type ItemKind string

const (
	KindArmor  ItemKind = "armor"
	KindWeapon ItemKind = "weapon"
	KindPotion ItemKind = "potion"
)

func (k ItemKind) IsValid() bool {
	return k == KindArmor || k == KindWeapon || k == KindPotion
}

// Material names what an item is made of. Each kind accepts its own subset.
type Material string

var armorMaterials = []Material{
	"Leather",
	"Hardened Leather",
	"Steel Mesh",
	"Silver Mesh",
	"Dragon Scales",
	"Adamantite Plates",
	"Mithril",
	"Enchanted Fabric",
	"Monster Bone",
	"Insectoid Chitin",
}

var weaponMaterials = []Material{
	"Steel",
	"Elven Steel",
	"Meteoric Steel",
	"Silver",
	"Reinforced Silver",
	"Ebony Wood",
	"Monster Bone",
	"Volcanic Glass",
	"Mithril",
	"Adamantite",
}

var potionMaterials = []Material{
	"Celandine Flower",
	"Mandrake",
	"Vervain",
	"Bryonia Root",
	"Crushed Kikimora Skull",
	"Nekker Gland",
	"Wraith Essence",
	"Griffin Marrow",
	"Endrega Mucus",
	"Ghoul Blood",
}

// MaterialsFor returns the materials an item of the given kind may carry.
func MaterialsFor(kind ItemKind) []Material {
	switch kind {
	case KindArmor:
		return armorMaterials
	case KindWeapon:
		return weaponMaterials
	case KindPotion:
		return potionMaterials
	default:
		return nil
	}
}

func (m Material) IsValidFor(kind ItemKind) bool {
	for _, material := range MaterialsFor(kind) {
		if m == material {
			return true
		}
	}

	return false
}

// Effect is the closed set of potion effects.
type Effect string

var Effects = []Effect{
	"Vitality Regeneration",
	"Night Vision",
	"Poison Resistance",
	"Strength Boost",
	"Speed Boost",
	"Increased Sign Damage",
	"Toxicity Reduction",
	"Invisible Creature Detection",
	"Temporary Enemy Paralysis",
	"Life Absorption",
	"Unknown Effect",
	"None",
}

func (e Effect) IsValid() bool {
	for _, effect := range Effects {
		if e == effect {
			return true
		}
	}

	return false
}

var (
	ErrInvalidMaterial = errors.New("material is not valid for the item kind")
	ErrInvalidWeight   = errors.New("weight must be greater than 0")
	ErrInvalidPrice    = errors.New("price must be greater than 0")
	ErrInvalidEffect   = errors.New("invalid potion effect")
)

// Item is a tradeable good. Identity (ID, Kind) is immutable; descriptive
// fields change only through explicit update operations outside the ledger.
// Effect is only meaningful for potions.
type Item struct {
	ID          string    `json:"id"`
	Kind        ItemKind  `json:"kind"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Material    Material  `json:"material"`
	Weight      float64   `json:"weight"`
	Price       int       `json:"price"`
	Effect      Effect    `json:"effect,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewArmor builds an armor item with an "A-" prefixed id.
func NewArmor(seq int, name, description string, material Material, weight float64, price int) (Item, error) {
	item := Item{
		ID:          fmt.Sprintf("A-%d", seq),
		Kind:        KindArmor,
		Name:        name,
		Description: description,
		Material:    material,
		Weight:      weight,
		Price:       price,
	}

	return item, item.validate()
}

// NewWeapon builds a weapon item with a "W-" prefixed id.
func NewWeapon(seq int, name, description string, material Material, weight float64, price int) (Item, error) {
	item := Item{
		ID:          fmt.Sprintf("W-%d", seq),
		Kind:        KindWeapon,
		Name:        name,
		Description: description,
		Material:    material,
		Weight:      weight,
		Price:       price,
	}

	return item, item.validate()
}

// NewPotion builds a potion item with a "P-" prefixed id.
func NewPotion(seq int, name, description string, material Material, weight float64, price int, effect Effect) (Item, error) {
	item := Item{
		ID:          fmt.Sprintf("P-%d", seq),
		Kind:        KindPotion,
		Name:        name,
		Description: description,
		Material:    material,
		Weight:      weight,
		Price:       price,
		Effect:      effect,
	}

	return item, item.validate()
}

func (i Item) validate() error {
	if !i.Material.IsValidFor(i.Kind) {
		return fmt.Errorf("%w: %v (%v)", ErrInvalidMaterial, i.Material, i.Kind)
	}
	if i.Weight <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, i.Weight)
	}
	if i.Price <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidPrice, i.Price)
	}
	if i.Kind == KindPotion && !i.Effect.IsValid() {
		return fmt.Errorf("%w: %v", ErrInvalidEffect, i.Effect)
	}

	return nil
}
