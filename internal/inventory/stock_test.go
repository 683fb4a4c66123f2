package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockLedger_Add(t *testing.T) {
	sword := testWeapon(t, 1, 120)
	ledger := NewStockLedger()

	require.NoError(t, ledger.Add(sword, 3))
	assert.Equal(t, 3, ledger.Level(sword))

	require.NoError(t, ledger.Add(sword, 2))
	assert.Equal(t, 5, ledger.Level(sword))
}

func TestStockLedger_Add_InvalidQuantity(t *testing.T) {
	sword := testWeapon(t, 1, 120)
	ledger := NewStockLedger()

	err := ledger.Add(sword, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	err = ledger.Add(sword, -4)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	assert.Equal(t, 0, ledger.Level(sword))
}

func TestStockLedger_Remove(t *testing.T) {
	sword := testWeapon(t, 1, 120)
	ledger := NewStockLedger()
	require.NoError(t, ledger.Add(sword, 5))

	require.NoError(t, ledger.Remove(sword, 2))
	assert.Equal(t, 3, ledger.Level(sword))
}

func TestStockLedger_Remove_DeletesRecordAtZero(t *testing.T) {
	sword := testWeapon(t, 1, 120)
	ledger := NewStockLedger()
	require.NoError(t, ledger.Add(sword, 2))

	require.NoError(t, ledger.Remove(sword, 2))

	assert.Equal(t, 0, ledger.Level(sword))
	assert.Empty(t, ledger.Records())
}

func TestStockLedger_Remove_Insufficient(t *testing.T) {
	sword := testWeapon(t, 1, 120)
	ledger := NewStockLedger()
	require.NoError(t, ledger.Add(sword, 1))

	err := ledger.Remove(sword, 2)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// A failed remove leaves the level untouched.
	assert.Equal(t, 1, ledger.Level(sword))
}

func TestStockLedger_Remove_UnknownItem(t *testing.T) {
	sword := testWeapon(t, 1, 120)
	ledger := NewStockLedger()

	err := ledger.Remove(sword, 1)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestStockLedger_Records_SortedByItemID(t *testing.T) {
	armor := testArmor(t, 7, 300)
	sword := testWeapon(t, 2, 120)
	potion := testPotion(t, 5, 40)

	ledger := NewStockLedger()
	require.NoError(t, ledger.Add(sword, 1))
	require.NoError(t, ledger.Add(potion, 4))
	require.NoError(t, ledger.Add(armor, 2))

	records := ledger.Records()
	require.Len(t, records, 3)
	assert.Equal(t, armor.ID, records[0].Item.ID)
	assert.Equal(t, potion.ID, records[1].Item.ID)
	assert.Equal(t, sword.ID, records[2].Item.ID)
}

func TestStockLedger_Records_Snapshot(t *testing.T) {
	sword := testWeapon(t, 1, 120)
	ledger := NewStockLedger()
	require.NoError(t, ledger.Add(sword, 3))

	records := ledger.Records()
	records[0].Quantity = 99

	assert.Equal(t, 3, ledger.Level(sword))
}
