package txn

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"
)

func TestIsNotSupported(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "duplicate key during cascade",
			err:  errors.New("E11000 duplicate key error collection: congreg8.savedchurches"),
			want: false,
		},
		{
			name: "standalone refuses transaction numbers",
			err:  mongo.CommandError{Code: 20, Message: "Transaction numbers are only allowed on a replica set member or mongos"},
			want: true,
		},
		{
			name: "illegal operation code",
			err:  mongo.CommandError{Code: 51, Message: "Illegal operation"},
			want: true,
		},
		{
			name: "operation not supported in transaction",
			err:  mongo.CommandError{Code: 263, Message: "Operation not supported in transaction"},
			want: true,
		},
		{
			name: "unrelated command error code",
			err:  mongo.CommandError{Code: 112, Message: "WriteConflict"},
			want: false,
		},
		{
			name: "wrapped command error keeps its message",
			err:  fmt.Errorf("deleting church dependents: %w", mongo.CommandError{Code: 20, Message: "Transaction numbers are only allowed on a replica set member or mongos"}),
			want: true,
		},
		{
			name: "transaction plus replica set keywords",
			err:  errors.New("transaction failed: server is not part of a replica set"),
			want: true,
		},
		{
			name: "sessions not supported",
			err:  errors.New("sessions are not supported by this server version"),
			want: true,
		},
		{
			name: "transaction plus session keywords",
			err:  errors.New("cannot continue transaction in current session state"),
			want: true,
		},
		{
			name: "transaction plus illegal operation keywords",
			err:  errors.New("illegal operation: transaction not permitted"),
			want: true,
		},
		{
			name: "single keyword only",
			err:  errors.New("transaction aborted"),
			want: false,
		},
		{
			name: "keyword match is case-insensitive",
			err:  errors.New("TRANSACTION numbers require a REPLICA SET member"),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotSupported(tt.err); got != tt.want {
				t.Errorf("IsNotSupported(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestRun(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("commits when the deployment supports transactions", func(mt *mtest.T) {
		// One response for the delete inside the transaction, one for the
		// commit.
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(3)}),
			mtest.CreateSuccessResponse(),
		)

		calls := 0
		err := Run(context.Background(), mt.DB, zap.NewNop(), func(ctx context.Context) error {
			calls++
			_, err := mt.DB.Collection("reviews").DeleteMany(ctx, bson.M{"church_id": "x"})
			return err
		})
		if err != nil {
			mt.Fatalf("Run returned %v", err)
		}
		if calls != 1 {
			mt.Errorf("fn ran %d times, want 1", calls)
		}
	})

	mt.Run("falls back to plain execution on a standalone", func(mt *mtest.T) {
		// The transactional attempt fails with the standalone server's
		// refusal; the retry outside a transaction succeeds.
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{
				Code:    20,
				Name:    "IllegalOperation",
				Message: "Transaction numbers are only allowed on a replica set member or mongos",
			}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(3)}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(3)}),
		)

		calls := 0
		err := Run(context.Background(), mt.DB, zap.NewNop(), func(ctx context.Context) error {
			calls++
			_, err := mt.DB.Collection("reviews").DeleteMany(ctx, bson.M{"church_id": "x"})
			return err
		})
		if err != nil {
			mt.Fatalf("Run returned %v", err)
		}
		if calls != 2 {
			mt.Errorf("fn ran %d times, want 2 (transactional attempt plus fallback)", calls)
		}
	})

	mt.Run("propagates the callback's own error", func(mt *mtest.T) {
		boom := errors.New("cascade step failed")
		err := Run(context.Background(), mt.DB, zap.NewNop(), func(ctx context.Context) error {
			return boom
		})
		if !errors.Is(err, boom) {
			mt.Errorf("Run returned %v, want %v", err, boom)
		}
	})
}
