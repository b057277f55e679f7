package httpjson_test

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/httpjson"
)

type payload struct {
	Name string `json:"name"`
}

func TestDecode(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"First Baptist"}`))

	var p payload
	if err := httpjson.Decode(req, &p); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if p.Name != "First Baptist" {
		t.Errorf("name: got %q", p.Name)
	}
}

func TestDecode_EmptyBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", nil)

	var p payload
	err := httpjson.Decode(req, &p)
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) || apiErr.Status != 400 {
		t.Fatalf("expected 400 apierr, got %v", err)
	}
	if apiErr.Message != "Request body is required" {
		t.Errorf("message: got %q", apiErr.Message)
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":`))

	var p payload
	err := httpjson.Decode(req, &p)
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) || apiErr.Status != 400 {
		t.Fatalf("expected 400 apierr, got %v", err)
	}
	if apiErr.Message != "Invalid JSON body" {
		t.Errorf("message: got %q", apiErr.Message)
	}
}
