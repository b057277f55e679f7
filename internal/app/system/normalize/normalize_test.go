package normalize_test

import (
	"testing"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/normalize"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
)

func TestEmail(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  User@Example.COM  ", "user@example.com"},
		{"plain@test.org", "plain@test.org"},
	}
	for _, c := range cases {
		if got := normalize.Email(c.in); got != c.want {
			t.Errorf("Email(%q): got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  First   Baptist \t Church ", "First Baptist Church"},
		{"One", "One"},
		{"", ""},
	}
	for _, c := range cases {
		if got := normalize.Name(c.in); got != c.want {
			t.Errorf("Name(%q): got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRole(t *testing.T) {
	cases := []struct{ in, want string }{
		{"ChurchGoer", models.RoleChurchgoer},
		{"CHURCHREP", models.RoleChurchRep},
		{" churchRep ", models.RoleChurchRep},
		{"admin", "admin"},
	}
	for _, c := range cases {
		if got := normalize.Role(c.in); got != c.want {
			t.Errorf("Role(%q): got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestState(t *testing.T) {
	cases := []struct{ in, want string }{
		{"mo", "MO"},
		{" ca ", "CA"},
		{"Missouri", "Missouri"},
	}
	for _, c := range cases {
		if got := normalize.State(c.in); got != c.want {
			t.Errorf("State(%q): got %q, want %q", c.in, got, c.want)
		}
	}
}
