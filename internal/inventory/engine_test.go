package inventory

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huntersguild/trading-post-api/internal/domain"
)

func testWeapon(t *testing.T, seq, price int) domain.Item {
	t.Helper()

	item, err := domain.NewWeapon(seq, "Silver Sword", "etched fuller", "Silver", 3.2, price)
	require.NoError(t, err)

	return item
}

func testArmor(t *testing.T, seq, price int) domain.Item {
	t.Helper()

	item, err := domain.NewArmor(seq, "Raven's Armor", "reinforced chest piece", "Hardened Leather", 6.5, price)
	require.NoError(t, err)

	return item
}

func testPotion(t *testing.T, seq, price int) domain.Item {
	t.Helper()

	item, err := domain.NewPotion(seq, "Cat", "see in the dark", "Nekker Gland", 0.2, price, "Night Vision")
	require.NoError(t, err)

	return item
}

func testHunter() domain.Hunter {
	return domain.Hunter{ID: "geralt", Name: "Geralt", Race: "Human", Location: "Kaer Morhen"}
}

func testMerchant() domain.Merchant {
	return domain.Merchant{ID: "hattori", Name: "Hattori", Profession: "Blacksmith", Location: "Novigrad"}
}

// memHunterRegistry and friends back the engine in tests with plain maps.
type memHunterRegistry struct {
	hunters map[string]domain.Hunter
}

func (r *memHunterRegistry) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.hunters[id]
	return ok, nil
}

func (r *memHunterRegistry) ListAll(_ context.Context) ([]domain.Hunter, error) {
	out := make([]domain.Hunter, 0, len(r.hunters))
	for _, h := range r.hunters {
		out = append(out, h)
	}

	return out, nil
}

type memMerchantRegistry struct {
	merchants map[string]domain.Merchant
}

func (r *memMerchantRegistry) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.merchants[id]
	return ok, nil
}

func (r *memMerchantRegistry) ListAll(_ context.Context) ([]domain.Merchant, error) {
	out := make([]domain.Merchant, 0, len(r.merchants))
	for _, m := range r.merchants {
		out = append(out, m)
	}

	return out, nil
}

type memItemRegistry struct {
	items map[string]domain.Item
}

func (r *memItemRegistry) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.items[id]
	return ok, nil
}

func (r *memItemRegistry) ListAll(_ context.Context) ([]domain.Item, error) {
	out := make([]domain.Item, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func newTestEngine(hunters []domain.Hunter, merchants []domain.Merchant, items []domain.Item) *Engine {
	hr := &memHunterRegistry{hunters: make(map[string]domain.Hunter)}
	for _, h := range hunters {
		hr.hunters[h.ID] = h
	}

	mr := &memMerchantRegistry{merchants: make(map[string]domain.Merchant)}
	for _, m := range merchants {
		mr.merchants[m.ID] = m
	}

	ir := &memItemRegistry{items: make(map[string]domain.Item)}
	for _, item := range items {
		ir.items[item.ID] = item
	}

	return NewEngine(hr, mr, ir)
}

func TestEngine_RecordSale(t *testing.T) {
	hunter := testHunter()
	sword := testWeapon(t, 1, 120)
	engine := newTestEngine([]domain.Hunter{hunter}, nil, []domain.Item{sword})
	require.NoError(t, engine.AddItemToStock(sword, 3))

	transaction, err := engine.RecordSale(context.Background(), hunter, []domain.Item{sword})
	require.NoError(t, err)

	assert.NotEmpty(t, transaction.ID)
	assert.Equal(t, domain.TransactionSale, transaction.Kind)
	assert.Equal(t, domain.CounterpartyHunter, transaction.Counterparty.Kind)
	assert.Equal(t, hunter.ID, transaction.Counterparty.ID())
	assert.Equal(t, 120, transaction.TotalCrowns)
	assert.Equal(t, 2, engine.StockLevel(sword))
	assert.Len(t, engine.Sales(), 1)
}

func TestEngine_RecordSale_DuplicateItems(t *testing.T) {
	hunter := testHunter()
	potion := testPotion(t, 9, 40)
	engine := newTestEngine([]domain.Hunter{hunter}, nil, []domain.Item{potion})
	require.NoError(t, engine.AddItemToStock(potion, 5))

	// Three occurrences of the same potion in a single sale.
	transaction, err := engine.RecordSale(context.Background(), hunter, []domain.Item{potion, potion, potion})
	require.NoError(t, err)

	assert.Equal(t, 120, transaction.TotalCrowns)
	assert.Len(t, transaction.Items, 3)
	assert.Equal(t, 2, engine.StockLevel(potion))
}

func TestEngine_RecordSale_InsufficientStockForDuplicates(t *testing.T) {
	hunter := testHunter()
	potion := testPotion(t, 9, 40)
	engine := newTestEngine([]domain.Hunter{hunter}, nil, []domain.Item{potion})
	require.NoError(t, engine.AddItemToStock(potion, 2))

	// Two units on hand cannot cover three occurrences, even though a
	// single occurrence is coverable.
	_, err := engine.RecordSale(context.Background(), hunter, []domain.Item{potion, potion, potion})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// Nothing moved and nothing was logged.
	assert.Equal(t, 2, engine.StockLevel(potion))
	assert.Empty(t, engine.Transactions())
}

func TestEngine_RecordSale_UnknownHunter(t *testing.T) {
	sword := testWeapon(t, 1, 120)
	engine := newTestEngine(nil, nil, []domain.Item{sword})
	require.NoError(t, engine.AddItemToStock(sword, 1))

	_, err := engine.RecordSale(context.Background(), testHunter(), []domain.Item{sword})
	assert.ErrorIs(t, err, ErrUnknownParty)
	assert.Empty(t, engine.Transactions())
	assert.Equal(t, 1, engine.StockLevel(sword))
}

func TestEngine_RecordSale_UnknownItem(t *testing.T) {
	hunter := testHunter()
	sword := testWeapon(t, 1, 120)
	engine := newTestEngine([]domain.Hunter{hunter}, nil, nil)

	_, err := engine.RecordSale(context.Background(), hunter, []domain.Item{sword})
	assert.ErrorIs(t, err, ErrUnknownItem)
	assert.Empty(t, engine.Transactions())
}

func TestEngine_RecordSale_PartialStockLeavesLedgerUntouched(t *testing.T) {
	hunter := testHunter()
	sword := testWeapon(t, 1, 120)
	armor := testArmor(t, 2, 300)
	engine := newTestEngine([]domain.Hunter{hunter}, nil, []domain.Item{sword, armor})
	require.NoError(t, engine.AddItemToStock(sword, 1))

	// The armor is registered but out of stock, so the whole sale fails.
	_, err := engine.RecordSale(context.Background(), hunter, []domain.Item{sword, armor})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	assert.Equal(t, 1, engine.StockLevel(sword))
	assert.Equal(t, 0, engine.StockLevel(armor))
	assert.Empty(t, engine.Transactions())
}

func TestEngine_RecordPurchase(t *testing.T) {
	merchant := testMerchant()
	sword := testWeapon(t, 1, 120)
	armor := testArmor(t, 2, 300)
	engine := newTestEngine(nil, []domain.Merchant{merchant}, []domain.Item{sword, armor})

	transaction, err := engine.RecordPurchase(context.Background(), merchant, []domain.Item{sword, armor})
	require.NoError(t, err)

	assert.Equal(t, domain.TransactionPurchase, transaction.Kind)
	assert.Equal(t, domain.CounterpartyMerchant, transaction.Counterparty.Kind)
	assert.Equal(t, 420, transaction.TotalCrowns)
	assert.Equal(t, 1, engine.StockLevel(sword))
	assert.Equal(t, 1, engine.StockLevel(armor))
}

func TestEngine_RecordPurchase_DuplicatesAddOneUnitEach(t *testing.T) {
	merchant := testMerchant()
	potion := testPotion(t, 9, 40)
	engine := newTestEngine(nil, []domain.Merchant{merchant}, []domain.Item{potion})

	_, err := engine.RecordPurchase(context.Background(), merchant, []domain.Item{potion, potion, potion})
	require.NoError(t, err)

	assert.Equal(t, 3, engine.StockLevel(potion))
}

func TestEngine_RecordPurchase_UnknownMerchant(t *testing.T) {
	sword := testWeapon(t, 1, 120)
	engine := newTestEngine(nil, nil, []domain.Item{sword})

	_, err := engine.RecordPurchase(context.Background(), testMerchant(), []domain.Item{sword})
	assert.ErrorIs(t, err, ErrUnknownParty)
	assert.Empty(t, engine.Transactions())
}

func TestEngine_RecordPurchase_UnknownItem(t *testing.T) {
	merchant := testMerchant()
	sword := testWeapon(t, 1, 120)
	engine := newTestEngine(nil, []domain.Merchant{merchant}, nil)

	_, err := engine.RecordPurchase(context.Background(), merchant, []domain.Item{sword})
	assert.ErrorIs(t, err, ErrUnknownItem)
	assert.Empty(t, engine.Transactions())
}

func TestEngine_RecordReturn_Hunter(t *testing.T) {
	hunter := testHunter()
	sword := testWeapon(t, 1, 120)
	engine := newTestEngine([]domain.Hunter{hunter}, nil, []domain.Item{sword})

	transaction, err := engine.RecordReturn(context.Background(), domain.HunterParty(hunter), []domain.Item{sword}, "blade notched")
	require.NoError(t, err)

	assert.Equal(t, domain.TransactionReturn, transaction.Kind)
	assert.Equal(t, "blade notched", transaction.Reason)
	assert.Equal(t, 120, transaction.TotalCrowns)
	// A hunter return puts the unit back into stock.
	assert.Equal(t, 1, engine.StockLevel(sword))
	assert.Len(t, engine.ClientReturns(), 1)
	assert.Empty(t, engine.MerchantReturns())
}

func TestEngine_RecordReturn_Merchant(t *testing.T) {
	merchant := testMerchant()
	sword := testWeapon(t, 1, 120)
	engine := newTestEngine(nil, []domain.Merchant{merchant}, []domain.Item{sword})
	require.NoError(t, engine.AddItemToStock(sword, 2))

	transaction, err := engine.RecordReturn(context.Background(), domain.MerchantParty(merchant), []domain.Item{sword}, "defective batch")
	require.NoError(t, err)

	assert.Equal(t, domain.TransactionReturn, transaction.Kind)
	// A merchant return hands the unit back, leaving stock.
	assert.Equal(t, 1, engine.StockLevel(sword))
	assert.Len(t, engine.MerchantReturns(), 1)
	assert.Empty(t, engine.ClientReturns())
}

func TestEngine_RecordReturn_MerchantWithoutStock(t *testing.T) {
	merchant := testMerchant()
	sword := testWeapon(t, 1, 120)
	engine := newTestEngine(nil, []domain.Merchant{merchant}, []domain.Item{sword})

	_, err := engine.RecordReturn(context.Background(), domain.MerchantParty(merchant), []domain.Item{sword}, "defective batch")
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Empty(t, engine.Transactions())
}

func TestEngine_RecordReturn_MerchantDuplicatesNeedFullCover(t *testing.T) {
	merchant := testMerchant()
	sword := testWeapon(t, 1, 120)
	engine := newTestEngine(nil, []domain.Merchant{merchant}, []domain.Item{sword})
	require.NoError(t, engine.AddItemToStock(sword, 1))

	_, err := engine.RecordReturn(context.Background(), domain.MerchantParty(merchant), []domain.Item{sword, sword}, "defective batch")
	assert.ErrorIs(t, err, ErrInsufficientStock)

	assert.Equal(t, 1, engine.StockLevel(sword))
	assert.Empty(t, engine.Transactions())
}

func TestEngine_RecordReturn_UnknownParty(t *testing.T) {
	sword := testWeapon(t, 1, 120)
	engine := newTestEngine(nil, nil, []domain.Item{sword})

	_, err := engine.RecordReturn(context.Background(), domain.HunterParty(testHunter()), []domain.Item{sword}, "")
	assert.ErrorIs(t, err, ErrUnknownParty)

	_, err = engine.RecordReturn(context.Background(), domain.Counterparty{Kind: "gnome"}, []domain.Item{sword}, "")
	assert.ErrorIs(t, err, ErrUnknownParty)
}

func TestEngine_QueriesAreReadOnly(t *testing.T) {
	hunter := testHunter()
	merchant := testMerchant()
	sword := testWeapon(t, 1, 120)
	engine := newTestEngine([]domain.Hunter{hunter}, []domain.Merchant{merchant}, []domain.Item{sword})

	_, err := engine.RecordPurchase(context.Background(), merchant, []domain.Item{sword})
	require.NoError(t, err)
	_, err = engine.RecordSale(context.Background(), hunter, []domain.Item{sword})
	require.NoError(t, err)

	// Run each query twice: same answers, no state drift.
	for i := 0; i < 2; i++ {
		assert.Len(t, engine.Transactions(), 2)
		assert.Len(t, engine.Sales(), 1)
		assert.Len(t, engine.Purchases(), 1)
		assert.Empty(t, engine.Returns())
		assert.Len(t, engine.TransactionsByItem(sword), 2)
		assert.Equal(t, 0, engine.StockLevel(sword))
	}
}

func TestEngine_TransactionsKeepInsertionOrder(t *testing.T) {
	hunter := testHunter()
	merchant := testMerchant()
	sword := testWeapon(t, 1, 120)
	engine := newTestEngine([]domain.Hunter{hunter}, []domain.Merchant{merchant}, []domain.Item{sword})

	first, err := engine.RecordPurchase(context.Background(), merchant, []domain.Item{sword})
	require.NoError(t, err)
	second, err := engine.RecordSale(context.Background(), hunter, []domain.Item{sword})
	require.NoError(t, err)

	transactions := engine.Transactions()
	require.Len(t, transactions, 2)
	assert.Equal(t, first.ID, transactions[0].ID)
	assert.Equal(t, second.ID, transactions[1].ID)
}
