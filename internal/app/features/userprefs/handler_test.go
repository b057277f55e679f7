package userprefs

import (
	"net/http"
	"testing"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(nil, apierr.NewWriter(zap.NewNop(), false), zap.NewNop())
}

func TestHandleCreate_RepDenied(t *testing.T) {
	h := newTestHandler(t)
	rec := testutil.NewRecorder()
	req := testutil.NewAuthenticatedRequest("POST", "/api/preferences", `{}`, testutil.ChurchRepUser())

	h.HandleCreate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusForbidden)
	rec.AssertContains(t, "Only churchgoers")
}

func TestHandleCreate_BadBucketValue(t *testing.T) {
	h := newTestHandler(t)
	rec := testutil.NewRecorder()
	req := testutil.NewAuthenticatedRequest("POST", "/api/preferences",
		`{"size":"gigantic"}`, testutil.ChurchgoerUser())

	h.HandleCreate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "size")
}

func TestHandleGet_MalformedID(t *testing.T) {
	h := newTestHandler(t)
	rec := testutil.NewRecorder()
	req := testutil.WithChiURLParam(testutil.NewAuthenticatedRequest(
		"GET", "/api/preferences/bad", "", testutil.ChurchgoerUser()), "preferenceID", "bad")

	h.HandleGet(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Preference set couldn't be found")
}
