package users

import (
	"testing"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
)

func TestSignupPayloadValidate_Churchgoer(t *testing.T) {
	valid := signupPayload{
		Role:      models.RoleChurchgoer,
		Email:     "goer@test.com",
		Password:  "hunter2hunter2",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid churchgoer rejected: %v", err)
	}

	missingName := valid
	missingName.FirstName = ""
	if err := missingName.Validate(); err == nil {
		t.Error("churchgoer without first name accepted")
	}

	missingUsername := valid
	missingUsername.Username = ""
	if err := missingUsername.Validate(); err == nil {
		t.Error("churchgoer without username accepted")
	}

	// ChurchName is a representative field; churchgoers may omit it.
	if valid.ChurchName != "" {
		t.Fatal("test setup: churchgoer fixture should not carry a church name")
	}
}

func TestSignupPayloadValidate_ChurchRep(t *testing.T) {
	valid := signupPayload{
		Role:       models.RoleChurchRep,
		Email:      "rep@test.com",
		Password:   "hunter2hunter2",
		ChurchName: "First Baptist",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid churchRep rejected: %v", err)
	}

	missingChurch := valid
	missingChurch.ChurchName = ""
	if err := missingChurch.Validate(); err == nil {
		t.Error("churchRep without church name accepted")
	}

	// A representative does not need the churchgoer profile fields.
	if valid.FirstName != "" || valid.Username != "" {
		t.Fatal("test setup: churchRep fixture should not carry goer fields")
	}
}

func TestSignupPayloadValidate_Common(t *testing.T) {
	base := signupPayload{
		Role:       models.RoleChurchRep,
		Email:      "rep@test.com",
		Password:   "hunter2hunter2",
		ChurchName: "First Baptist",
	}

	badRole := base
	badRole.Role = "admin"
	if err := badRole.Validate(); err == nil {
		t.Error("unknown role accepted")
	}

	badEmail := base
	badEmail.Email = "not-an-email"
	if err := badEmail.Validate(); err == nil {
		t.Error("bad email accepted")
	}

	shortPassword := base
	shortPassword.Password = "short"
	if err := shortPassword.Validate(); err == nil {
		t.Error("short password accepted")
	}
}

func TestUpdatePayloadValidate(t *testing.T) {
	s := func(v string) *string { return &v }

	if err := (updatePayload{}).Validate(models.RoleChurchgoer); err != nil {
		t.Errorf("empty update rejected: %v", err)
	}
	if err := (updatePayload{Email: s("new@test.com")}).Validate(models.RoleChurchgoer); err != nil {
		t.Errorf("valid email rejected: %v", err)
	}
	if err := (updatePayload{Email: s("nope")}).Validate(models.RoleChurchgoer); err == nil {
		t.Error("bad email accepted")
	}
	if err := (updatePayload{Password: s("short")}).Validate(models.RoleChurchgoer); err == nil {
		t.Error("short password accepted")
	}
}

func TestUpdatePayloadValidate_RoleFields(t *testing.T) {
	s := func(v string) *string { return &v }

	if err := (updatePayload{FirstName: s("Ada")}).Validate(models.RoleChurchgoer); err != nil {
		t.Errorf("churchgoer first name rejected: %v", err)
	}
	if err := (updatePayload{ChurchName: s("Grace Chapel")}).Validate(models.RoleChurchRep); err != nil {
		t.Errorf("rep church name rejected: %v", err)
	}

	// A field belonging to the other role is rejected, same as at signup.
	if err := (updatePayload{ChurchName: s("Grace Chapel")}).Validate(models.RoleChurchgoer); err == nil {
		t.Error("churchgoer allowed to set churchName")
	}
	if err := (updatePayload{FirstName: s("Ada")}).Validate(models.RoleChurchRep); err == nil {
		t.Error("rep allowed to set firstName")
	}
	if err := (updatePayload{Username: s("ada")}).Validate(models.RoleChurchRep); err == nil {
		t.Error("rep allowed to set username")
	}
}
