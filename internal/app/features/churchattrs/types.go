// internal/app/features/churchattrs/types.go
package churchattrs

import (
	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson"
)

// attrPayload is the create/update request body. Every field is optional;
// the bucketed fields must use one of the enumerated values when present.
type attrPayload struct {
	Size          *string `json:"size"`
	AgeGroup      *string `json:"ageGroup"`
	Ethnicity     *string `json:"ethnicity"`
	Language      *string `json:"language"`
	Denomination  *string `json:"denomination"`
	ServiceDay    *string `json:"serviceDay"`
	ServiceTime   *string `json:"serviceTime"`
	Volunteering  *bool   `json:"volunteering"`
	Participatory *bool   `json:"participatory"`
}

func (p attrPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Size, validation.In(asAny(models.SizeOptions)...)),
		validation.Field(&p.AgeGroup, validation.In(asAny(models.AgeGroupOptions)...)),
		validation.Field(&p.ServiceDay, validation.In(asAny(models.ServiceDayOptions)...)),
		validation.Field(&p.Ethnicity, validation.Length(0, 100)),
		validation.Field(&p.Language, validation.Length(0, 100)),
		validation.Field(&p.Denomination, validation.Length(0, 100)),
		validation.Field(&p.ServiceTime, validation.Length(0, 100)),
	)
}

// set builds the partial $set document from the fields present in the
// payload. Absent fields are left untouched.
func (p attrPayload) set() bson.M {
	set := bson.M{}
	put := func(key string, v any) {
		switch x := v.(type) {
		case *string:
			if x != nil {
				set[key] = *x
			}
		case *bool:
			if x != nil {
				set[key] = *x
			}
		}
	}
	put("size", p.Size)
	put("age_group", p.AgeGroup)
	put("ethnicity", p.Ethnicity)
	put("language", p.Language)
	put("denomination", p.Denomination)
	put("service_day", p.ServiceDay)
	put("service_time", p.ServiceTime)
	put("volunteering", p.Volunteering)
	put("participatory", p.Participatory)
	return set
}

func asAny(opts []string) []any {
	out := make([]any, len(opts))
	for i, o := range opts {
		out[i] = o
	}
	return out
}
