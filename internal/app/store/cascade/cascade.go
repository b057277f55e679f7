// Package cascade orchestrates the multi-collection deletes triggered by
// removing a church or a user. Callers wrap these in txn.Run so the steps
// commit together where the deployment supports transactions.
//
// Step order within a cascade is not significant: dependents never reference
// each other, only the entity being deleted.
package cascade

import (
	"context"

	attrstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/churchattrs"
	churchstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/churches"
	reviewstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/reviews"
	savedstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/savedchurches"
	prefstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/userprefs"
	userstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/users"
	volopstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/volunteerops"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Church removes a church and everything keyed by it: attributes, volunteer
// opportunities, reviews, and saved-church entries, then the church itself,
// and finally pulls the church out of the owner's back-reference list.
func Church(ctx context.Context, db *mongo.Database, churchID, ownerID primitive.ObjectID) error {
	if _, err := attrstore.New(db).DeleteByChurch(ctx, churchID); err != nil {
		return err
	}
	if _, err := volopstore.New(db).DeleteByChurch(ctx, churchID); err != nil {
		return err
	}
	if _, err := reviewstore.New(db).DeleteByChurch(ctx, churchID); err != nil {
		return err
	}
	if _, err := savedstore.New(db).DeleteByChurch(ctx, churchID); err != nil {
		return err
	}
	if _, err := churchstore.New(db).Delete(ctx, churchID); err != nil {
		return err
	}
	return userstore.New(db).PullChurch(ctx, ownerID, churchID)
}

// Churchgoer removes a churchgoer and exactly their own records: preference
// sets, reviews, and saved churches.
func Churchgoer(ctx context.Context, db *mongo.Database, userID primitive.ObjectID) error {
	if _, err := prefstore.New(db).DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if _, err := reviewstore.New(db).DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if _, err := savedstore.New(db).DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if _, err := userstore.New(db).Delete(ctx, userID); err != nil {
		return err
	}
	return nil
}

// ChurchRep removes a representative and, transitively, every church they
// own with each church's full dependent cascade.
func ChurchRep(ctx context.Context, db *mongo.Database, userID primitive.ObjectID) error {
	owned, err := churchstore.New(db).ListByOwner(ctx, userID)
	if err != nil {
		return err
	}
	for _, ch := range owned {
		if err := Church(ctx, db, ch.ID, userID); err != nil {
			return err
		}
	}
	if _, err := userstore.New(db).Delete(ctx, userID); err != nil {
		return err
	}
	return nil
}
