package churches

import (
	"net/http"
	"testing"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/geocode"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	// No database: these tests exercise the paths that must reject the
	// request before any store access.
	return NewHandler(nil, apierr.NewWriter(zap.NewNop(), false), geocode.New("", ""), zap.NewNop())
}

func TestHandleCreate_Anonymous(t *testing.T) {
	h := newTestHandler(t)
	rec := testutil.NewRecorder()

	h.HandleCreate(rec.ResponseRecorder, testutil.NewJSONRequest("POST", "/api/churches", `{}`))

	rec.AssertStatus(t, http.StatusUnauthorized)
}

func TestHandleCreate_ChurchgoerDenied(t *testing.T) {
	h := newTestHandler(t)
	rec := testutil.NewRecorder()
	req := testutil.NewAuthenticatedRequest("POST", "/api/churches", `{}`, testutil.ChurchgoerUser())

	h.HandleCreate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusForbidden)
	rec.AssertContains(t, "Only church representatives")
}

func TestHandleCreate_ValidationError(t *testing.T) {
	h := newTestHandler(t)
	rec := testutil.NewRecorder()
	req := testutil.NewAuthenticatedRequest("POST", "/api/churches",
		`{"name":"First Baptist"}`, testutil.ChurchRepUser())

	h.HandleCreate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "errors")
	rec.AssertContains(t, "address")
}

func TestHandleCreate_EmptyBody(t *testing.T) {
	h := newTestHandler(t)
	rec := testutil.NewRecorder()
	req := testutil.NewAuthenticatedRequest("POST", "/api/churches", "", testutil.ChurchRepUser())

	h.HandleCreate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Request body is required")
}

func TestHandleGet_MalformedID(t *testing.T) {
	h := newTestHandler(t)
	rec := testutil.NewRecorder()
	req := testutil.WithChiURLParam(
		testutil.NewJSONRequest("GET", "/api/churches/not-hex", ""), "churchID", "not-hex")

	h.HandleGet(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Church couldn't be found")
}

func TestHandleList_BadBoolFilter(t *testing.T) {
	h := newTestHandler(t)
	rec := testutil.NewRecorder()
	req := testutil.NewJSONRequest("GET", "/api/churches?volunteering=maybe", "")

	h.HandleList(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandleUpdate_MalformedIDBeforeAuth(t *testing.T) {
	h := newTestHandler(t)
	rec := testutil.NewRecorder()
	req := testutil.WithChiURLParam(
		testutil.NewJSONRequest("PUT", "/api/churches/zzz", `{}`), "churchID", "zzz")

	h.HandleUpdate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusNotFound)
}

func TestChurchPayloadValidate(t *testing.T) {
	valid := churchPayload{
		Name:     "First Baptist",
		Address:  "123 Main St",
		City:     "Columbia",
		State:    "MO",
		Email:    "office@firstbaptist.org",
		Website:  "https://firstbaptist.org",
		ImageURL: "https://firstbaptist.org/photo.jpg",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}

	bad := valid
	bad.Email = "not-an-email"
	if err := bad.Validate(); err == nil {
		t.Error("bad email accepted")
	}

	bad = valid
	bad.Website = "not a url"
	if err := bad.Validate(); err == nil {
		t.Error("bad website accepted")
	}
}
