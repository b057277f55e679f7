package indexes

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsDuplicateKey(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"write exception 11000", mongo.WriteException{
			WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
		}, true},
		{"write exception other code", mongo.WriteException{
			WriteErrors: mongo.WriteErrors{{Code: 121, Message: "document failed validation"}},
		}, false},
		{"command error 11000", mongo.CommandError{Code: 11000, Message: "duplicate key"}, true},
		{"wrapped write exception", fmt.Errorf("insert: %w", mongo.WriteException{
			WriteErrors: mongo.WriteErrors{{Code: 11000}},
		}), true},
		{"string fallback", errors.New("E11000 duplicate key error collection: congreg8.users"), true},
		{"unrelated", errors.New("connection reset"), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsDuplicateKey(c.err); got != c.want {
				t.Errorf("IsDuplicateKey(%v): got %v, want %v", c.err, got, c.want)
			}
		})
	}
}

func TestKeySig(t *testing.T) {
	sig := keySig(bson.D{{Key: "user_id", Value: 1}, {Key: "church_id", Value: 1}})
	if sig != "user_id:1, church_id:1" {
		t.Errorf("keySig: got %q", sig)
	}
	if keySig(bson.D{{Key: "email", Value: 1}}) == sig {
		t.Error("different key sets must not collide")
	}
}

func TestSameBoolPtr(t *testing.T) {
	tr := true
	fa := false
	if !sameBoolPtr(nil, nil) || !sameBoolPtr(nil, &fa) || !sameBoolPtr(&fa, nil) {
		t.Error("nil and false must compare equal")
	}
	if sameBoolPtr(&tr, nil) || sameBoolPtr(nil, &tr) {
		t.Error("true and absent must differ")
	}
	if !sameBoolPtr(&tr, &tr) {
		t.Error("true and true must compare equal")
	}
}
