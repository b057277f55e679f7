package churches

import (
	"net/http"
	"testing"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/geocode"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"
)

const listingBody = `{
	"name": "Grace Chapel",
	"address": "1 Main St",
	"city": "Springfield",
	"state": "IL",
	"email": "hello@grace.test",
	"website": "https://grace.test",
	"imageUrl": "https://grace.test/logo.png"
}`

func TestHandleCreate_DuplicateListing(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("pre-check catches an existing name and address", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "congreg8.churches", mtest.FirstBatch,
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}}),
		)

		h := NewHandler(mt.DB, apierr.NewWriter(zap.NewNop(), false), geocode.New("", ""), zap.NewNop())
		rec := testutil.NewRecorder()
		h.HandleCreate(rec.ResponseRecorder,
			testutil.NewAuthenticatedRequest("POST", "/api/churches", listingBody, testutil.ChurchRepUser()))

		rec.AssertStatus(mt.T, http.StatusBadRequest)
		rec.AssertContains(mt.T, "already exists")
	})

	mt.Run("unique index backstops a concurrent create", func(mt *mtest.T) {
		mt.AddMockResponses(
			// Pre-check sees nothing...
			mtest.CreateCursorResponse(0, "congreg8.churches", mtest.FirstBatch),
			// ...but the insert loses the race to the unique index.
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "E11000 duplicate key error collection: congreg8.churches index: uniq_name_address",
			}),
		)

		h := NewHandler(mt.DB, apierr.NewWriter(zap.NewNop(), false), geocode.New("", ""), zap.NewNop())
		rec := testutil.NewRecorder()
		h.HandleCreate(rec.ResponseRecorder,
			testutil.NewAuthenticatedRequest("POST", "/api/churches", listingBody, testutil.ChurchRepUser()))

		rec.AssertStatus(mt.T, http.StatusBadRequest)
		rec.AssertContains(mt.T, "already exists")
	})
}
