package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/huntersguild/trading-post-api/internal/domain"
)

func professionsAsValues() []interface{} {
	values := make([]interface{}, 0, len(domain.Professions))
	for _, profession := range domain.Professions {
		values = append(values, string(profession))
	}

	return values
}

type CreateMerchantRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Profession string `json:"profession"`
	Location   string `json:"location"`
}

func (req *CreateMerchantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ID, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Profession, validation.Required, validation.In(professionsAsValues()...)),
		validation.Field(&req.Location, validation.Required, validation.Length(1, 100)),
	)
}

type UpdateMerchantRequest struct {
	Name       string `json:"name"`
	Profession string `json:"profession"`
	Location   string `json:"location"`
}

func (req *UpdateMerchantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Profession, validation.Required, validation.In(professionsAsValues()...)),
		validation.Field(&req.Location, validation.Required, validation.Length(1, 100)),
	)
}
