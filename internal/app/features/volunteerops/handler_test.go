package volunteerops

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

func TestHandleCreate_GoerDenied(t *testing.T) {
	h := newTestHandler(t)
	rec := testutil.NewRecorder()
	req := testutil.WithChiURLParam(testutil.NewAuthenticatedRequest(
		"POST", "/api/churches/x/volunteer-ops", `{}`, testutil.ChurchgoerUser()),
		"churchID", "507f1f77bcf86cd799439011")

	h.HandleCreate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusForbidden)
}

func TestHandleGet_MalformedID(t *testing.T) {
	h := newTestHandler(t)
	rec := testutil.NewRecorder()
	req := testutil.WithChiURLParam(
		testutil.NewJSONRequest("GET", "/api/volunteer-ops/abc", ""), "opportunityID", "abc")

	h.HandleGet(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Volunteer opportunity couldn't be found")
}

func TestOpPayloadValidate(t *testing.T) {
	b := func(v bool) *bool { return &v }

	valid := opPayload{Title: "Food drive", Description: "Help sort donations.", Active: b(true), MembersOnly: b(false)}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}

	// false is a legal explicit value for both flags.
	allFalse := opPayload{Title: "Food drive", Description: "Help sort donations.", Active: b(false), MembersOnly: b(false)}
	if err := allFalse.Validate(); err != nil {
		t.Errorf("explicit false flags rejected: %v", err)
	}

	missingActive := opPayload{Title: "Food drive", Description: "Help sort donations.", MembersOnly: b(true)}
	if err := missingActive.Validate(); err == nil {
		t.Error("absent active flag accepted")
	}

	missingMembersOnly := opPayload{Title: "Food drive", Description: "Help sort donations.", Active: b(true)}
	if err := missingMembersOnly.Validate(); err == nil {
		t.Error("absent membersOnly flag accepted")
	}

	noTitle := opPayload{Description: "Help sort donations.", Active: b(true), MembersOnly: b(true)}
	if err := noTitle.Validate(); err == nil {
		t.Error("missing title accepted")
	}
}
