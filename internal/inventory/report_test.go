package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huntersguild/trading-post-api/internal/domain"
)

func TestEngine_CrownTotals(t *testing.T) {
	hunter := testHunter()
	merchant := testMerchant()
	sword := testWeapon(t, 1, 120)
	potion := testPotion(t, 2, 40)
	engine := newTestEngine([]domain.Hunter{hunter}, []domain.Merchant{merchant}, []domain.Item{sword, potion})

	// Buy two swords and a potion, sell a sword and a potion, then the
	// hunter returns the potion.
	_, err := engine.RecordPurchase(context.Background(), merchant, []domain.Item{sword, sword, potion})
	require.NoError(t, err)
	_, err = engine.RecordSale(context.Background(), hunter, []domain.Item{sword, potion})
	require.NoError(t, err)
	_, err = engine.RecordReturn(context.Background(), domain.HunterParty(hunter), []domain.Item{potion}, "unused")
	require.NoError(t, err)

	assert.Equal(t, 160, engine.EarnedCrownsBySales())
	assert.Equal(t, 280, engine.SpentCrownsByPurchases())
	assert.Equal(t, 40, engine.ReturnedCrowns())
	assert.Equal(t, 160-280+40, engine.NetCrowns())
}

func TestEngine_NetCrowns_EmptyLedger(t *testing.T) {
	engine := newTestEngine(nil, nil, nil)

	assert.Zero(t, engine.EarnedCrownsBySales())
	assert.Zero(t, engine.SpentCrownsByPurchases())
	assert.Zero(t, engine.ReturnedCrowns())
	assert.Zero(t, engine.NetCrowns())
}

func TestEngine_NetCrowns_MerchantReturnsStillAdd(t *testing.T) {
	merchant := testMerchant()
	sword := testWeapon(t, 1, 120)
	engine := newTestEngine(nil, []domain.Merchant{merchant}, []domain.Item{sword})

	_, err := engine.RecordPurchase(context.Background(), merchant, []domain.Item{sword})
	require.NoError(t, err)
	_, err = engine.RecordReturn(context.Background(), domain.MerchantParty(merchant), []domain.Item{sword}, "defective")
	require.NoError(t, err)

	// Merchant returns add to the net rather than subtract, so the two
	// movements cancel out.
	assert.Equal(t, 0, engine.NetCrowns())
	assert.Equal(t, 120, engine.ReturnedCrowns())
}

func TestEngine_MostSoldItem(t *testing.T) {
	hunter := testHunter()
	merchant := testMerchant()
	sword := testWeapon(t, 1, 120)
	potion := testPotion(t, 2, 40)
	engine := newTestEngine([]domain.Hunter{hunter}, []domain.Merchant{merchant}, []domain.Item{sword, potion})

	_, err := engine.RecordPurchase(context.Background(), merchant, []domain.Item{sword, potion})
	require.NoError(t, err)
	_, err = engine.RecordPurchase(context.Background(), merchant, []domain.Item{potion})
	require.NoError(t, err)
	_, err = engine.RecordSale(context.Background(), hunter, []domain.Item{potion})
	require.NoError(t, err)

	item, ok, err := engine.MostSoldItem(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, potion.ID, item.ID)
}

func TestEngine_MostSoldItem_EmptyRegistry(t *testing.T) {
	engine := newTestEngine(nil, nil, nil)

	_, ok, err := engine.MostSoldItem(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEngine_MostSoldItem_NoTransactions(t *testing.T) {
	sword := testWeapon(t, 1, 120)
	potion := testPotion(t, 2, 40)
	engine := newTestEngine(nil, nil, []domain.Item{potion, sword})

	// With no transactions every candidate counts zero; the first item in
	// registry order wins.
	item, ok, err := engine.MostSoldItem(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, potion.ID, item.ID)
}

func TestEngine_MostSoldItem_CountsTransactionsNotUnits(t *testing.T) {
	merchant := testMerchant()
	sword := testWeapon(t, 1, 120)
	potion := testPotion(t, 2, 40)
	engine := newTestEngine(nil, []domain.Merchant{merchant}, []domain.Item{sword, potion})

	// One transaction with five swords versus two transactions with one
	// potion each: the potion wins on transaction count.
	_, err := engine.RecordPurchase(context.Background(), merchant, []domain.Item{sword, sword, sword, sword, sword})
	require.NoError(t, err)
	_, err = engine.RecordPurchase(context.Background(), merchant, []domain.Item{potion})
	require.NoError(t, err)
	_, err = engine.RecordPurchase(context.Background(), merchant, []domain.Item{potion})
	require.NoError(t, err)

	item, ok, err := engine.MostSoldItem(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, potion.ID, item.ID)
}
