// internal/app/features/churches/types.go
package churches

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// churchPayload is the create/update request body. Church listings are
// validated full-field on both create and update: every core field must be
// present each time.
type churchPayload struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Email    string `json:"email"`
	Website  string `json:"website"`
	ImageURL string `json:"imageUrl"`

	Phone       string `json:"phone"`
	Description string `json:"description"`
}

func (p churchPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&p.Address, validation.Required, validation.Length(1, 300)),
		validation.Field(&p.City, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.State, validation.Required, validation.Length(2, 100)),
		validation.Field(&p.Email, validation.Required, is.EmailFormat),
		validation.Field(&p.Website, validation.Required, is.URL),
		validation.Field(&p.ImageURL, validation.Required, is.URL),
		validation.Field(&p.Phone, validation.Length(0, 30)),
	)
}
