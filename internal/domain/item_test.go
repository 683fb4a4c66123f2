package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArmor(t *testing.T) {
	item, err := NewArmor(7, "Raven's Armor", "reinforced chest piece", "Dragon Scales", 6.5, 800)
	require.NoError(t, err)

	assert.Equal(t, "A-7", item.ID)
	assert.Equal(t, KindArmor, item.Kind)
	assert.Empty(t, item.Effect)
}

func TestNewArmor_WrongKindMaterial(t *testing.T) {
	// Steel is a weapon material, not an armor material.
	_, err := NewArmor(7, "Raven's Armor", "", "Steel", 6.5, 800)
	assert.ErrorIs(t, err, ErrInvalidMaterial)
}

func TestNewWeapon(t *testing.T) {
	item, err := NewWeapon(12, "Silver Sword", "etched fuller", "Meteoric Steel", 3.2, 650)
	require.NoError(t, err)

	assert.Equal(t, "W-12", item.ID)
	assert.Equal(t, KindWeapon, item.Kind)
}

func TestNewWeapon_InvalidWeight(t *testing.T) {
	_, err := NewWeapon(12, "Silver Sword", "", "Steel", 0, 650)
	assert.ErrorIs(t, err, ErrInvalidWeight)

	_, err = NewWeapon(12, "Silver Sword", "", "Steel", -1.5, 650)
	assert.ErrorIs(t, err, ErrInvalidWeight)
}

func TestNewWeapon_InvalidPrice(t *testing.T) {
	_, err := NewWeapon(12, "Silver Sword", "", "Steel", 3.2, 0)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestNewPotion(t *testing.T) {
	item, err := NewPotion(3, "Cat", "see in the dark", "Nekker Gland", 0.2, 90, "Night Vision")
	require.NoError(t, err)

	assert.Equal(t, "P-3", item.ID)
	assert.Equal(t, KindPotion, item.Kind)
	assert.Equal(t, Effect("Night Vision"), item.Effect)
}

func TestNewPotion_InvalidEffect(t *testing.T) {
	_, err := NewPotion(3, "Cat", "", "Nekker Gland", 0.2, 90, "Flight")
	assert.ErrorIs(t, err, ErrInvalidEffect)
}

func TestMaterialsFor(t *testing.T) {
	assert.Len(t, MaterialsFor(KindArmor), 10)
	assert.Len(t, MaterialsFor(KindWeapon), 10)
	assert.Len(t, MaterialsFor(KindPotion), 10)
	assert.Nil(t, MaterialsFor("scroll"))
}

func TestMaterial_SharedAcrossKinds(t *testing.T) {
	// Monster Bone is valid for both armor and weapons.
	assert.True(t, Material("Monster Bone").IsValidFor(KindArmor))
	assert.True(t, Material("Monster Bone").IsValidFor(KindWeapon))
	assert.False(t, Material("Monster Bone").IsValidFor(KindPotion))
}

func TestNewHunter(t *testing.T) {
	hunter, err := NewHunter("geralt", "Geralt", RaceHuman, "Kaer Morhen")
	require.NoError(t, err)
	assert.Equal(t, "geralt", hunter.ID)

	_, err = NewHunter("puck", "Puck", "Pixie", "Brokilon")
	assert.Error(t, err)
}

func TestTransaction_References(t *testing.T) {
	sword, err := NewWeapon(1, "Silver Sword", "", "Silver", 3.2, 120)
	require.NoError(t, err)

	transaction := Transaction{Items: []Item{sword}}
	assert.True(t, transaction.References("W-1"))
	assert.False(t, transaction.References("W-2"))
}

func TestCounterparty_Accessors(t *testing.T) {
	hunter := Hunter{ID: "geralt", Name: "Geralt"}
	party := HunterParty(hunter)
	assert.Equal(t, CounterpartyHunter, party.Kind)
	assert.Equal(t, "geralt", party.ID())
	assert.Equal(t, "Geralt", party.Name())

	merchant := Merchant{ID: "hattori", Name: "Hattori"}
	party = MerchantParty(merchant)
	assert.Equal(t, CounterpartyMerchant, party.Kind)
	assert.Equal(t, "hattori", party.ID())
	assert.Equal(t, "Hattori", party.Name())

	var none Counterparty
	assert.Empty(t, none.ID())
	assert.Empty(t, none.Name())
}
