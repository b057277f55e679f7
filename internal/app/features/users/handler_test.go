package users

import (
	"net/http"
	"testing"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(nil, apierr.NewWriter(zap.NewNop(), false), nil, zap.NewNop())
}

func TestHandleUpdate_Anonymous(t *testing.T) {
	h := newTestHandler(t)
	rec := testutil.NewRecorder()
	req := testutil.WithChiURLParam(
		testutil.NewJSONRequest("PUT", "/api/users/x", `{}`), "userID", primitive.NewObjectID().Hex())

	h.HandleUpdate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusUnauthorized)
}

func TestHandleUpdate_OtherAccountForbidden(t *testing.T) {
	h := newTestHandler(t)
	rec := testutil.NewRecorder()
	req := testutil.WithChiURLParam(
		testutil.NewAuthenticatedRequest("PUT", "/api/users/x", `{}`, testutil.ChurchgoerUser()),
		"userID", primitive.NewObjectID().Hex())

	h.HandleUpdate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusForbidden)
	rec.AssertContains(t, "your own account")
}

func TestHandleUpdate_SelfEmptyBody(t *testing.T) {
	h := newTestHandler(t)
	user := testutil.ChurchgoerUser()
	rec := testutil.NewRecorder()
	req := testutil.WithChiURLParam(
		testutil.NewAuthenticatedRequest("PUT", "/api/users/x", "", user),
		"userID", user.ID)

	h.HandleUpdate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Request body is required")
}

func TestHandleUpdate_ChurchgoerCannotSetChurchName(t *testing.T) {
	h := newTestHandler(t)
	user := testutil.ChurchgoerUser()
	rec := testutil.NewRecorder()
	req := testutil.WithChiURLParam(
		testutil.NewAuthenticatedRequest("PUT", "/api/users/x", `{"churchName":"Grace Chapel"}`, user),
		"userID", user.ID)

	h.HandleUpdate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "churchName")
}

func TestHandleUpdate_RepCannotSetUsername(t *testing.T) {
	h := newTestHandler(t)
	user := testutil.ChurchRepUser()
	rec := testutil.NewRecorder()
	req := testutil.WithChiURLParam(
		testutil.NewAuthenticatedRequest("PUT", "/api/users/x", `{"username":"gracechapel"}`, user),
		"userID", user.ID)

	h.HandleUpdate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "username")
}

func TestHandleGet_MalformedID(t *testing.T) {
	h := newTestHandler(t)
	rec := testutil.NewRecorder()
	req := testutil.WithChiURLParam(
		testutil.NewJSONRequest("GET", "/api/users/bad", ""), "userID", "bad")

	h.HandleGet(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "User couldn't be found")
}

func TestHandleSignup_InvalidPayload(t *testing.T) {
	h := newTestHandler(t)
	rec := testutil.NewRecorder()
	req := testutil.NewJSONRequest("POST", "/api/users",
		`{"role":"churchgoer","email":"goer@test.com","password":"hunter2hunter2"}`)

	h.HandleSignup(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "firstName")
}
