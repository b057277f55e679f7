// Package txn wraps multi-document writes in a MongoDB transaction when the
// deployment supports one (replica set / mongos), and degrades to plain
// sequential execution on standalone servers.
//
// Cascade deletes span several collections; with a transaction an
// interrupted cascade rolls back, without one the behavior matches running
// the steps directly (a mid-cascade failure can leave orphaned dependents,
// reported as a 500).
package txn

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Run executes fn transactionally when possible. On servers where sessions
// or transactions are unsupported it logs once and runs fn directly.
func Run(ctx context.Context, db *mongo.Database, log *zap.Logger, fn func(ctx context.Context) error) error {
	sess, err := db.Client().StartSession()
	if err != nil {
		if IsNotSupported(err) {
			log.Debug("sessions unsupported; running without transaction", zap.Error(err))
			return fn(ctx)
		}
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})
	if err != nil && IsNotSupported(err) {
		log.Debug("transactions unsupported; running without transaction", zap.Error(err))
		return fn(ctx)
	}
	return err
}

// IsNotSupported reports whether err indicates the server cannot run
// multi-document transactions (standalone mongod, old server, DocumentDB).
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	if ce, ok := err.(mongo.CommandError); ok {
		switch ce.Code {
		case 20, 51, 263:
			// IllegalOperation variants raised for transactions outside a
			// replica set.
			return true
		}
	}

	s := strings.ToLower(err.Error())
	hasTxn := strings.Contains(s, "transaction")
	hasSession := strings.Contains(s, "session")
	switch {
	case hasTxn && strings.Contains(s, "replica set"):
		return true
	case hasSession && strings.Contains(s, "not supported"):
		return true
	case hasTxn && hasSession:
		return true
	case hasTxn && strings.Contains(s, "illegal operation"):
		return true
	}
	return false
}
