package catalog

import (
	"context"
	"log"
	"time"

	"NexusRealty/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store wraps the properties collection. All reads and writes for the catalog
// go through it; there is no cross-document transaction scope anywhere.
type Store struct {
	collection *mongo.Collection
}

func NewStore(collection *mongo.Collection) *Store {
	return &Store{collection: collection}
}

// ListAll returns every property in the collection, surfacing store errors.
func (s *Store) ListAll(ctx context.Context) ([]models.Property, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	for cursor.Next(ctx) {
		var property models.Property
		if err := cursor.Decode(&property); err != nil {
			continue
		}
		properties = append(properties, property)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return properties, nil
}

// FetchAll is the public catalog read: on store failure it logs and degrades
// to an empty slice so the catalog view is never blocked on a backend hiccup.
// Callers that need to distinguish "no data" from "store down" use ListAll.
func (s *Store) FetchAll(ctx context.Context) []models.Property {
	properties, err := s.ListAll(ctx)
	if err != nil {
		log.Printf("catalog: fetch all failed: %v", err)
		return []models.Property{}
	}
	if properties == nil {
		return []models.Property{}
	}
	return properties
}

func (s *Store) GetByID(ctx context.Context, id string) (*models.Property, error) {
	var property models.Property
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// Create inserts a new property with a store-assigned id, fresh timestamps
// and a zero view counter.
func (s *Store) Create(ctx context.Context, property models.Property) (models.Property, error) {
	property.ID = primitive.NewObjectID().Hex()
	property.Views = 0
	property.CreatedAt = time.Now()
	property.UpdatedAt = time.Now()

	if _, err := s.collection.InsertOne(ctx, property); err != nil {
		return models.Property{}, err
	}
	return property, nil
}

// Upsert replaces the mutable fields of an existing property. The id,
// createdAt and view counter are preserved; updatedAt is refreshed.
func (s *Store) Upsert(ctx context.Context, id string, property models.Property) (*models.Property, error) {
	updateDoc := bson.M{
		"title":          property.Title,
		"description":    property.Description,
		"price":          property.Price,
		"pricePerPlot":   property.PricePerPlot,
		"type":           property.Type,
		"city":           property.City,
		"area":           property.Area,
		"size":           property.Size,
		"plots":          property.Plots,
		"titleStatus":    property.TitleStatus,
		"bedrooms":       property.Bedrooms,
		"bathrooms":      property.Bathrooms,
		"squareFeet":     property.SquareFeet,
		"estateFeatures": property.EstateFeatures,
		"status":         property.Status,
		"featured":       property.Featured,
		"paymentPlan":    property.PaymentPlan,
		"paymentTerms":   property.PaymentTerms,
		"images":         property.Images,
		"amenities":      property.Amenities,
		"yearBuilt":      property.YearBuilt,
		"updatedAt":      time.Now(),
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return s.GetByID(ctx, id)
}

// Delete hard-deletes a property. Deleting an absent id reports
// mongo.ErrNoDocuments rather than failing silently.
func (s *Store) Delete(ctx context.Context, id string) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// IncrementViews bumps the view counter for a detail read. Callers treat a
// failure as best-effort and only log it.
func (s *Store) IncrementViews(ctx context.Context, id string) error {
	_, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	return err
}
