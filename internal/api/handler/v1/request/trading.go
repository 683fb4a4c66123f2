package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/huntersguild/trading-post-api/internal/domain"
)

type StockAdjustmentRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

func (req *StockAdjustmentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ItemID, validation.Required),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
}

type RecordSaleRequest struct {
	HunterID string   `json:"hunter_id"`
	ItemIDs  []string `json:"item_ids"`
}

func (req *RecordSaleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.HunterID, validation.Required),
		validation.Field(&req.ItemIDs, validation.Required, validation.Length(1, 0)),
	)
}

type RecordPurchaseRequest struct {
	MerchantID string   `json:"merchant_id"`
	ItemIDs    []string `json:"item_ids"`
}

func (req *RecordPurchaseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.MerchantID, validation.Required),
		validation.Field(&req.ItemIDs, validation.Required, validation.Length(1, 0)),
	)
}

type RecordReturnRequest struct {
	PartyKind string   `json:"party_kind"`
	PartyID   string   `json:"party_id"`
	ItemIDs   []string `json:"item_ids"`
	Reason    string   `json:"reason"`
}

func (req *RecordReturnRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PartyKind, validation.Required, validation.In(
			string(domain.CounterpartyHunter), string(domain.CounterpartyMerchant),
		)),
		validation.Field(&req.PartyID, validation.Required),
		validation.Field(&req.ItemIDs, validation.Required, validation.Length(1, 0)),
		validation.Field(&req.Reason, validation.Required, validation.Length(1, 200)),
	)
}
