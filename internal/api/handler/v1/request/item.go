package request

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/huntersguild/trading-post-api/internal/domain"
)

type CreateItemRequest struct {
	Seq         int     `json:"seq"`
	Kind        string  `json:"kind"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Material    string  `json:"material"`
	Weight      float64 `json:"weight"`
	Price       int     `json:"price"`
	Effect      string  `json:"effect"`
}

func (req *CreateItemRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Seq, validation.Required, validation.Min(1)),
		validation.Field(&req.Kind, validation.Required, validation.In(
			string(domain.KindArmor), string(domain.KindWeapon), string(domain.KindPotion),
		)),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Description, validation.Length(0, 200)),
		validation.Field(&req.Material, validation.Required),
		validation.Field(&req.Weight, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&req.Price, validation.Required, validation.Min(1)),
	)
	if err != nil {
		return err
	}

	kind := domain.ItemKind(req.Kind)
	if !domain.Material(req.Material).IsValidFor(kind) {
		return fmt.Errorf("material %q is not valid for kind %q", req.Material, req.Kind)
	}
	if kind == domain.KindPotion && !domain.Effect(req.Effect).IsValid() {
		return fmt.Errorf("invalid potion effect %q", req.Effect)
	}

	return nil
}

type UpdateItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Material    string  `json:"material"`
	Weight      float64 `json:"weight"`
	Price       int     `json:"price"`
	Effect      string  `json:"effect"`
}

func (req *UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Description, validation.Length(0, 200)),
		validation.Field(&req.Material, validation.Required),
		validation.Field(&req.Weight, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&req.Price, validation.Required, validation.Min(1)),
	)
}
