// internal/app/features/users/types.go
package users

import (
	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// signupPayload is the account-creation request body. Which profile fields
// are required depends on the role: churchgoers need a personal name and
// username, representatives need their church's name.
type signupPayload struct {
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`

	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Username   string `json:"username"`
	ChurchName string `json:"churchName"`
}

func (p signupPayload) Validate() error {
	goer := p.Role == models.RoleChurchgoer
	rep := p.Role == models.RoleChurchRep
	return validation.ValidateStruct(&p,
		validation.Field(&p.Role, validation.Required,
			validation.In(models.RoleChurchgoer, models.RoleChurchRep)),
		validation.Field(&p.Email, validation.Required, is.EmailFormat),
		// bcrypt truncates beyond 72 bytes.
		validation.Field(&p.Password, validation.Required, validation.Length(8, 72)),
		validation.Field(&p.FirstName, validation.Required.When(goer), validation.Length(0, 100)),
		validation.Field(&p.LastName, validation.Required.When(goer), validation.Length(0, 100)),
		validation.Field(&p.Username, validation.Required.When(goer), validation.Length(0, 50)),
		validation.Field(&p.ChurchName, validation.Required.When(rep), validation.Length(0, 200)),
	)
}

// updatePayload is the self-service profile update body. All fields are
// optional; only the supplied ones change. Role is immutable, and each
// profile field is writable only by the role it belongs to, same as at
// signup.
type updatePayload struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`

	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Username   *string `json:"username"`
	ChurchName *string `json:"churchName"`
}

func (p updatePayload) Validate(role string) error {
	goer := role == models.RoleChurchgoer
	rep := role == models.RoleChurchRep
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email, is.EmailFormat),
		validation.Field(&p.Password, validation.Length(8, 72)),
		validation.Field(&p.FirstName, validation.Nil.When(rep), validation.Length(1, 100)),
		validation.Field(&p.LastName, validation.Nil.When(rep), validation.Length(1, 100)),
		validation.Field(&p.Username, validation.Nil.When(rep), validation.Length(1, 50)),
		validation.Field(&p.ChurchName, validation.Nil.When(goer), validation.Length(1, 200)),
	)
}
