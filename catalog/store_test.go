package catalog

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestFetchAllReturnsProperties(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes the collection", func(mt *mtest.T) {
		docs := []bson.D{
			{
				{Key: "_id", Value: "lagos-land-001"},
				{Key: "title", Value: "Prime Land"},
				{Key: "type", Value: "land"},
				{Key: "price", Value: int64(50000000)},
			},
			{
				{Key: "_id", Value: "lekki-villa-003"},
				{Key: "title", Value: "Luxury Villa"},
				{Key: "type", Value: "villa"},
				{Key: "price", Value: int64(350000000)},
			},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "nexusrealty.properties", mtest.FirstBatch, docs...))

		store := NewStore(mt.Coll)
		got := store.FetchAll(context.Background())

		if len(got) != 2 {
			mt.Fatalf("expected 2 properties, got %d", len(got))
		}
		if got[0].ID != "lagos-land-001" || got[1].ID != "lekki-villa-003" {
			mt.Errorf("store order not preserved: %s, %s", got[0].ID, got[1].ID)
		}
	})
}

func TestFetchAllDegradesToEmptyOnStoreFailure(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find failure yields empty slice", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Message: "interrupted at shutdown",
			Name:    "InterruptedAtShutdown",
		}))

		store := NewStore(mt.Coll)
		got := store.FetchAll(context.Background())

		if got == nil {
			mt.Fatal("expected an empty slice, got nil")
		}
		if len(got) != 0 {
			mt.Errorf("expected no properties on store failure, got %d", len(got))
		}
	})
}

func TestListAllSurfacesStoreFailure(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find failure returns the error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Message: "not authorized",
			Name:    "Unauthorized",
		}))

		store := NewStore(mt.Coll)
		if _, err := store.ListAll(context.Background()); err == nil {
			mt.Error("expected store error to surface")
		}
	})
}

func TestDeleteIdempotent(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("second delete reports the record absent", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		store := NewStore(mt.Coll)

		if err := store.Delete(context.Background(), "lagos-land-001"); err != nil {
			mt.Fatalf("first delete failed: %v", err)
		}

		err := store.Delete(context.Background(), "lagos-land-001")
		if err != mongo.ErrNoDocuments {
			mt.Errorf("second delete: expected mongo.ErrNoDocuments, got %v", err)
		}
	})
}
