package session_test

import (
	"encoding/json"
	"net/http"
	"testing"

	sessionfeature "github.com/Six5pAdes/ConGreG8-sub000/internal/app/features/session"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/auth"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *sessionfeature.Handler {
	t.Helper()
	sm, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", "test-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return sessionfeature.NewHandler(nil, apierr.NewWriter(zap.NewNop(), false), sm, zap.NewNop())
}

func TestHandleLogin_MissingFields(t *testing.T) {
	h := newTestHandler(t)
	rec := testutil.NewRecorder()

	h.HandleLogin(rec.ResponseRecorder, testutil.NewJSONRequest("POST", "/api/session", `{"email":"goer@test.com"}`))

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "password")
}

func TestHandleCurrent_Anonymous(t *testing.T) {
	h := newTestHandler(t)
	rec := testutil.NewRecorder()

	h.HandleCurrent(rec.ResponseRecorder, testutil.NewJSONRequest("GET", "/api/session", ""))

	rec.AssertStatus(t, http.StatusOK)
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("parsing body: %v", err)
	}
	if body["user"] != nil {
		t.Errorf("user: got %v, want null", body["user"])
	}
}

func TestHandleCurrent_SignedIn(t *testing.T) {
	h := newTestHandler(t)
	user := testutil.ChurchgoerUser()
	rec := testutil.NewRecorder()

	h.HandleCurrent(rec.ResponseRecorder, testutil.NewAuthenticatedRequest("GET", "/api/session", "", user))

	rec.AssertStatus(t, http.StatusOK)
	var body struct {
		User *auth.SessionUser `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("parsing body: %v", err)
	}
	if body.User == nil || body.User.ID != user.ID {
		t.Errorf("user: got %+v, want ID %s", body.User, user.ID)
	}
}

func TestHandleLogout(t *testing.T) {
	h := newTestHandler(t)
	rec := testutil.NewRecorder()

	h.HandleLogout(rec.ResponseRecorder, testutil.NewJSONRequest("DELETE", "/api/session", ""))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Successfully logged out")
}
