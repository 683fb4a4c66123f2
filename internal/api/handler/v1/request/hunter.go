package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/huntersguild/trading-post-api/internal/domain"
)

func racesAsValues() []interface{} {
	values := make([]interface{}, 0, len(domain.Races))
	for _, race := range domain.Races {
		values = append(values, string(race))
	}

	return values
}

type CreateHunterRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Race     string `json:"race"`
	Location string `json:"location"`
}

func (req *CreateHunterRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ID, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Race, validation.Required, validation.In(racesAsValues()...)),
		validation.Field(&req.Location, validation.Required, validation.Length(1, 100)),
	)
}

type UpdateHunterRequest struct {
	Name     string `json:"name"`
	Race     string `json:"race"`
	Location string `json:"location"`
}

func (req *UpdateHunterRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Race, validation.Required, validation.In(racesAsValues()...)),
		validation.Field(&req.Location, validation.Required, validation.Length(1, 100)),
	)
}
