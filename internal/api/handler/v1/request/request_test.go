package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     SignupRequest
		wantErr bool
	}{
		{
			name: "valid",
			req: SignupRequest{
				Email:           "dandelion@example.com",
				Password:        "lute4ever",
				ConfirmPassword: "lute4ever",
				Name:            "Dandelion",
			},
			wantErr: false,
		},
		{
			name: "invalid email",
			req: SignupRequest{
				Email:           "not-an-email",
				Password:        "lute4ever",
				ConfirmPassword: "lute4ever",
				Name:            "Dandelion",
			},
			wantErr: true,
		},
		{
			name: "password too short",
			req: SignupRequest{
				Email:           "dandelion@example.com",
				Password:        "ab1",
				ConfirmPassword: "ab1",
				Name:            "Dandelion",
			},
			wantErr: true,
		},
		{
			name: "password without digit",
			req: SignupRequest{
				Email:           "dandelion@example.com",
				Password:        "luteforever",
				ConfirmPassword: "luteforever",
				Name:            "Dandelion",
			},
			wantErr: true,
		},
		{
			name: "confirm mismatch",
			req: SignupRequest{
				Email:           "dandelion@example.com",
				Password:        "lute4ever",
				ConfirmPassword: "lute4never",
				Name:            "Dandelion",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStockAdjustmentRequest_Validate(t *testing.T) {
	valid := StockAdjustmentRequest{ItemID: "W-1", Quantity: 3}
	assert.NoError(t, valid.Validate())

	missingItem := StockAdjustmentRequest{Quantity: 3}
	assert.Error(t, missingItem.Validate())

	zeroQuantity := StockAdjustmentRequest{ItemID: "W-1"}
	assert.Error(t, zeroQuantity.Validate())
}

func TestRecordSaleRequest_Validate(t *testing.T) {
	valid := RecordSaleRequest{HunterID: "geralt", ItemIDs: []string{"W-1", "W-1"}}
	assert.NoError(t, valid.Validate())

	empty := RecordSaleRequest{HunterID: "geralt", ItemIDs: []string{}}
	assert.Error(t, empty.Validate())

	noHunter := RecordSaleRequest{ItemIDs: []string{"W-1"}}
	assert.Error(t, noHunter.Validate())
}

func TestRecordReturnRequest_Validate(t *testing.T) {
	valid := RecordReturnRequest{
		PartyKind: "hunter",
		PartyID:   "geralt",
		ItemIDs:   []string{"W-1"},
		Reason:    "blade notched",
	}
	assert.NoError(t, valid.Validate())

	badKind := valid
	badKind.PartyKind = "gnome"
	assert.Error(t, badKind.Validate())

	noReason := valid
	noReason.Reason = ""
	assert.Error(t, noReason.Validate())
}

func TestCreateItemRequest_Validate(t *testing.T) {
	valid := CreateItemRequest{
		Seq:      12,
		Kind:     "weapon",
		Name:     "Silver Sword",
		Material: "Silver",
		Weight:   3.2,
		Price:    120,
	}
	assert.NoError(t, valid.Validate())

	wrongMaterial := valid
	wrongMaterial.Material = "Nekker Gland"
	assert.Error(t, wrongMaterial.Validate())

	potion := CreateItemRequest{
		Seq:      3,
		Kind:     "potion",
		Name:     "Cat",
		Material: "Nekker Gland",
		Weight:   0.2,
		Price:    90,
		Effect:   "Night Vision",
	}
	assert.NoError(t, potion.Validate())

	badEffect := potion
	badEffect.Effect = "Flight"
	assert.Error(t, badEffect.Validate())

	badKind := valid
	badKind.Kind = "scroll"
	assert.Error(t, badKind.Validate())
}
