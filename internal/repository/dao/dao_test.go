package dao

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var testDB *gorm.DB

// TestMain starts a throwaway Postgres container for the DAO tests. With
// -short the container is skipped and every test here skips itself.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not construct docker pool: %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		log.Fatalf("could not connect to docker: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=trading_post_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}
	_ = resource.Expire(120)

	dsn := fmt.Sprintf(
		"host=localhost port=%v user=test password=test dbname=trading_post_test sslmode=disable",
		resource.GetPort("5432/tcp"),
	)

	pool.MaxWait = 60 * time.Second
	if err = pool.Retry(func() error {
		testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return err
		}

		sqlDB, err := testDB.DB()
		if err != nil {
			return err
		}

		return sqlDB.Ping()
	}); err != nil {
		log.Fatalf("could not connect to postgres container: %v", err)
	}

	if err = InitTables(testDB); err != nil {
		log.Fatalf("could not migrate tables: %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Fatalf("could not purge postgres container: %v", err)
	}

	os.Exit(code)
}

func requireDB(t *testing.T) {
	t.Helper()

	if testDB == nil {
		t.Skip("skipping integration test: no database")
	}
}

func TestHunterDAO(t *testing.T) {
	requireDB(t)

	d := NewHunterDAO(testDB)
	ctx := context.Background()

	inserted, err := d.Insert(ctx, Hunter{ID: "geralt", Name: "Geralt", Race: "Human", Location: "Kaer Morhen"})
	require.NoError(t, err)
	assert.False(t, inserted.CreatedAt.IsZero())

	_, err = d.Insert(ctx, Hunter{ID: "geralt", Name: "Geralt", Race: "Human", Location: "Kaer Morhen"})
	assert.ErrorIs(t, err, ErrHunterIDExists)

	found, err := d.FindByID(ctx, "geralt")
	require.NoError(t, err)
	assert.Equal(t, "Geralt", found.Name)

	exists, err := d.ExistsByID(ctx, "geralt")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = d.ExistsByID(ctx, "yennefer")
	require.NoError(t, err)
	assert.False(t, exists)

	updated, err := d.Update(ctx, Hunter{ID: "geralt", Name: "Geralt of Rivia", Race: "Human", Location: "Toussaint"})
	require.NoError(t, err)
	assert.Equal(t, "Geralt of Rivia", updated.Name)
	assert.Equal(t, "Toussaint", updated.Location)

	_, err = d.Update(ctx, Hunter{ID: "yennefer", Name: "Yennefer", Race: "Human", Location: "Vengerberg"})
	assert.ErrorIs(t, err, ErrHunterNotFound)

	all, err := d.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, d.Delete(ctx, "geralt"))
	assert.ErrorIs(t, d.Delete(ctx, "geralt"), ErrHunterNotFound)

	_, err = d.FindByID(ctx, "geralt")
	assert.ErrorIs(t, err, ErrHunterNotFound)
}

func TestMerchantDAO(t *testing.T) {
	requireDB(t)

	d := NewMerchantDAO(testDB)
	ctx := context.Background()

	_, err := d.Insert(ctx, Merchant{ID: "hattori", Name: "Hattori", Profession: "Blacksmith", Location: "Novigrad"})
	require.NoError(t, err)

	_, err = d.Insert(ctx, Merchant{ID: "hattori", Name: "Hattori", Profession: "Blacksmith", Location: "Novigrad"})
	assert.ErrorIs(t, err, ErrMerchantIDExists)

	found, err := d.FindByID(ctx, "hattori")
	require.NoError(t, err)
	assert.Equal(t, "Blacksmith", found.Profession)

	updated, err := d.Update(ctx, Merchant{ID: "hattori", Name: "Hattori", Profession: "General Merchant", Location: "Novigrad"})
	require.NoError(t, err)
	assert.Equal(t, "General Merchant", updated.Profession)

	require.NoError(t, d.Delete(ctx, "hattori"))
	_, err = d.FindByID(ctx, "hattori")
	assert.ErrorIs(t, err, ErrMerchantNotFound)
}

func TestItemDAO(t *testing.T) {
	requireDB(t)

	d := NewItemDAO(testDB)
	ctx := context.Background()

	_, err := d.Insert(ctx, Item{ID: "W-1", Kind: "weapon", Name: "Silver Sword", Material: "Silver", Weight: 3.2, Price: 120})
	require.NoError(t, err)
	_, err = d.Insert(ctx, Item{ID: "P-1", Kind: "potion", Name: "Cat", Material: "Nekker Gland", Weight: 0.2, Price: 40, Effect: "Night Vision"})
	require.NoError(t, err)

	_, err = d.Insert(ctx, Item{ID: "W-1", Kind: "weapon", Name: "Silver Sword", Material: "Silver", Weight: 3.2, Price: 120})
	assert.ErrorIs(t, err, ErrItemIDExists)

	all, err := d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "P-1", all[0].ID)
	assert.Equal(t, "W-1", all[1].ID)

	updated, err := d.Update(ctx, Item{ID: "W-1", Name: "Silver Sword", Description: "etched fuller", Material: "Meteoric Steel", Weight: 3.4, Price: 650})
	require.NoError(t, err)
	assert.Equal(t, "Meteoric Steel", updated.Material)
	assert.Equal(t, 650, updated.Price)

	require.NoError(t, d.Delete(ctx, "W-1"))
	require.NoError(t, d.Delete(ctx, "P-1"))
}

func TestTransactionDAO(t *testing.T) {
	requireDB(t)

	d := NewTransactionDAO(testDB)
	ctx := context.Background()

	later := Transaction{
		ID:               "t2",
		Kind:             "sale",
		Date:             time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
		CounterpartyKind: "hunter",
		CounterpartyID:   "geralt",
		ItemIDs:          []string{"W-1"},
		TotalCrowns:      120,
	}
	earlier := Transaction{
		ID:               "t1",
		Kind:             "purchase",
		Date:             time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		CounterpartyKind: "merchant",
		CounterpartyID:   "hattori",
		ItemIDs:          []string{"W-1", "W-1"},
		TotalCrowns:      240,
	}

	_, err := d.Insert(ctx, later)
	require.NoError(t, err)
	_, err = d.Insert(ctx, earlier)
	require.NoError(t, err)

	all, err := d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	// FindAll orders by date, not by insertion.
	assert.Equal(t, "t1", all[0].ID)
	assert.Equal(t, "t2", all[1].ID)
	assert.Equal(t, []string{"W-1", "W-1"}, all[0].ItemIDs)
}

func TestUserDAO(t *testing.T) {
	requireDB(t)

	d := NewUserDAO(testDB)
	ctx := context.Background()

	inserted, err := d.Insert(ctx, User{Email: "dandelion@example.com", Password: "hashed", Name: "Dandelion"})
	require.NoError(t, err)
	assert.NotZero(t, inserted.ID)

	_, err = d.Insert(ctx, User{Email: "dandelion@example.com", Password: "hashed", Name: "Dandelion"})
	assert.ErrorIs(t, err, ErrUserEmailExists)

	byEmail, err := d.FindByEmail(ctx, "dandelion@example.com")
	require.NoError(t, err)
	assert.Equal(t, inserted.ID, byEmail.ID)

	byID, err := d.FindByID(ctx, inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dandelion", byID.Name)

	_, err = d.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
