package response

import "github.com/huntersguild/trading-post-api/internal/domain"

type TokenResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type StockLevelResponse struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type MostSoldItemResponse struct {
	Item  *domain.Item `json:"item"`
	Found bool         `json:"found"`
}
