package authz_test

import (
	"net/http/httptest"
	"testing"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/auth"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/authz"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserCtx_Anonymous(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	role, uid, ok := authz.UserCtx(req)
	if ok {
		t.Fatal("expected ok=false for anonymous request")
	}
	if role != "visitor" {
		t.Errorf("role: got %q, want visitor", role)
	}
	if uid != primitive.NilObjectID {
		t.Errorf("uid: got %s, want zero", uid.Hex())
	}
}

func TestUserCtx_MalformedIDFailsClosed(t *testing.T) {
	req := auth.WithTestUser(httptest.NewRequest("GET", "/", nil), &auth.SessionUser{
		ID:   "not-a-hex-id",
		Role: models.RoleChurchgoer,
	})

	_, _, ok := authz.UserCtx(req)
	if ok {
		t.Fatal("expected ok=false for malformed session user ID")
	}
}

func TestUserCtx_CanonicalizesRole(t *testing.T) {
	id := primitive.NewObjectID()
	req := auth.WithTestUser(httptest.NewRequest("GET", "/", nil), &auth.SessionUser{
		ID:   id.Hex(),
		Role: "CHURCHREP",
	})

	role, uid, ok := authz.UserCtx(req)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if role != models.RoleChurchRep {
		t.Errorf("role: got %q, want %q", role, models.RoleChurchRep)
	}
	if uid != id {
		t.Errorf("uid: got %s, want %s", uid.Hex(), id.Hex())
	}
}

func TestRolePredicates(t *testing.T) {
	goer := testutil.WithUser(httptest.NewRequest("GET", "/", nil), testutil.ChurchgoerUser())
	rep := testutil.WithUser(httptest.NewRequest("GET", "/", nil), testutil.ChurchRepUser())

	if !authz.IsChurchgoer(goer) || authz.IsChurchRep(goer) {
		t.Error("churchgoer predicates wrong")
	}
	if !authz.IsChurchRep(rep) || authz.IsChurchgoer(rep) {
		t.Error("churchRep predicates wrong")
	}
}
