package apierr_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"
)

func TestValidation_FieldMap(t *testing.T) {
	verrs := validation.Errors{
		"name":  errors.New("cannot be blank"),
		"email": errors.New("must be a valid email address"),
	}

	e := apierr.Validation(verrs)
	if e.Status != 400 {
		t.Errorf("status: got %d, want 400", e.Status)
	}
	if e.Message != "Validation error" {
		t.Errorf("message: got %q", e.Message)
	}
	if e.Fields["name"] != "cannot be blank" {
		t.Errorf("fields[name]: got %q", e.Fields["name"])
	}
	if e.Fields["email"] != "must be a valid email address" {
		t.Errorf("fields[email]: got %q", e.Fields["email"])
	}
}

func TestValidation_PlainError(t *testing.T) {
	e := apierr.Validation(errors.New("something is off"))
	if e.Status != 400 || e.Message != "something is off" || e.Fields != nil {
		t.Errorf("unexpected error: %+v", e)
	}
}

func TestWrite_CoercesUnknownErrorTo500(t *testing.T) {
	wr := apierr.NewWriter(zap.NewNop(), false)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/x", nil)

	wr.Write(rec, req, errors.New("db exploded"))

	if rec.Code != 500 {
		t.Fatalf("status: got %d, want 500", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("parsing body: %v", err)
	}
	// The internal detail must not leak with exposeInternal off.
	if body["message"] != "Internal server error" {
		t.Errorf("message: got %q", body["message"])
	}
}

func TestWrite_ExposesCauseOutsideProduction(t *testing.T) {
	wr := apierr.NewWriter(zap.NewNop(), true)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/x", nil)

	wr.Write(rec, req, apierr.Internal(errors.New("db exploded")))

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("parsing body: %v", err)
	}
	if body["message"] != "db exploded" {
		t.Errorf("message: got %q, want cause text", body["message"])
	}
}

func TestWrite_APIError(t *testing.T) {
	wr := apierr.NewWriter(zap.NewNop(), false)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/x", nil)

	wr.Write(rec, req, apierr.NotFound("Church couldn't be found"))

	if rec.Code != 404 {
		t.Fatalf("status: got %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q", ct)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("parsing body: %v", err)
	}
	if body["message"] != "Church couldn't be found" {
		t.Errorf("message: got %q", body["message"])
	}
	if body["status"] != float64(404) {
		t.Errorf("status field: got %v", body["status"])
	}
}
