// Package ownerpolicy is the single authorization component every mutating
// resource handler goes through. It implements the role gate and the
// ownership check as one parameterized unit instead of per-resource copies.
//
// Order is fixed: the role gate runs strictly before any owner resolution,
// so categorically unauthorized callers are denied without the store being
// read — existence of a resource never leaks through a 403/404 difference.
//
// Ownership is either direct (the document's user_id) or transitive through
// a parent church (the parent's user_id); the resolver funcs below cover
// both shapes. A document with a missing or zero owner field fails closed.
package ownerpolicy

import (
	"context"
	"errors"
	"net/http"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/authz"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OwnerResolver returns the owning user's ID for the target resource.
// Implementations report a missing resource (or missing parent) with an
// apierr 404 and surface store failures unwrapped.
type OwnerResolver func(ctx context.Context) (primitive.ObjectID, error)

// Policy describes the authorization rules for one resource family.
type Policy struct {
	// RequiredRole is the only role permitted to create or mutate
	// resources of this family (canonical form, see models.Role*).
	RequiredRole string

	// RoleDeniedMsg is the 403 message for callers whose role is
	// categorically excluded.
	RoleDeniedMsg string

	// NotOwnerMsg is the 403 message for same-role callers that do not own
	// the target resource.
	NotOwnerMsg string
}

// Allow runs only the role gate, for create operations that have no target
// resource yet. It returns the caller's user ID on success.
func (p Policy) Allow(r *http.Request) (primitive.ObjectID, error) {
	role, uid, ok := authz.UserCtx(r)
	if !ok {
		return primitive.NilObjectID, apierr.Unauthorized("Authentication required")
	}
	if role != p.RequiredRole {
		return primitive.NilObjectID, apierr.Forbidden(p.RoleDeniedMsg)
	}
	return uid, nil
}

// AllowOwner runs the role gate, resolves the resource's owner, and checks
// ownership by ObjectID value equality. The resolver is never invoked for a
// caller that fails the role gate.
func (p Policy) AllowOwner(ctx context.Context, r *http.Request, resolve OwnerResolver) (primitive.ObjectID, error) {
	uid, err := p.Allow(r)
	if err != nil {
		return primitive.NilObjectID, err
	}
	owner, err := resolve(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}
	// A zero owner means a malformed or legacy record; fail closed.
	if owner == primitive.NilObjectID || owner != uid {
		return primitive.NilObjectID, apierr.Forbidden(p.NotOwnerMsg)
	}
	return uid, nil
}

// ownerDoc captures the two reference fields any owned document may carry.
type ownerDoc struct {
	UserID   primitive.ObjectID `bson:"user_id"`
	ChurchID primitive.ObjectID `bson:"church_id"`
}

// ChurchOwner resolves the owner of a church document.
func ChurchOwner(db *mongo.Database, churchID primitive.ObjectID) OwnerResolver {
	return DirectOwner(db, "churches", churchID, "Church couldn't be found")
}

// DirectOwner resolves the owner recorded on the document itself
// (reviews, saved churches, user preferences, churches).
func DirectOwner(db *mongo.Database, collection string, id primitive.ObjectID, notFoundMsg string) OwnerResolver {
	return func(ctx context.Context) (primitive.ObjectID, error) {
		var doc ownerDoc
		err := db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return primitive.NilObjectID, apierr.NotFound(notFoundMsg)
		}
		if err != nil {
			return primitive.NilObjectID, err
		}
		return doc.UserID, nil
	}
}

// ParentChurchOwner resolves ownership transitively: it reads the document's
// church_id, then returns the parent church's owner. The effective owner of
// a church attribute or volunteer opportunity is always the parent church's
// owner, regardless of who authored the record.
func ParentChurchOwner(db *mongo.Database, collection string, id primitive.ObjectID, notFoundMsg string) OwnerResolver {
	return func(ctx context.Context) (primitive.ObjectID, error) {
		var doc ownerDoc
		err := db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return primitive.NilObjectID, apierr.NotFound(notFoundMsg)
		}
		if err != nil {
			return primitive.NilObjectID, err
		}

		var church ownerDoc
		err = db.Collection("churches").FindOne(ctx, bson.M{"_id": doc.ChurchID}).Decode(&church)
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Distinct message, same status: the entity exists but its
			// parent is gone.
			return primitive.NilObjectID, apierr.NotFound("Associated church couldn't be found")
		}
		if err != nil {
			return primitive.NilObjectID, err
		}
		return church.UserID, nil
	}
}

// StaticOwner wraps a known owner ID as a resolver. Used where the owning
// document has already been loaded by the handler.
func StaticOwner(owner primitive.ObjectID) OwnerResolver {
	return func(context.Context) (primitive.ObjectID, error) {
		return owner, nil
	}
}
