package config

import (
	"context"
	"log"
	"os"
	"time"

	"NexusRealty/models"
	"NexusRealty/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// EnsureSeedData populates empty collections on first run: a few sample
// listings, the city directory and a default CMS operator. Collections that
// already hold documents are left untouched.
func EnsureSeedData() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seedProperties(ctx); err != nil {
		return err
	}
	if err := seedCities(ctx); err != nil {
		return err
	}
	return seedCMSUser(ctx)
}

func seedProperties(ctx context.Context) error {
	collectionName := os.Getenv("MONGODB_COLLECTION_PROPERTIES")
	if collectionName == "" {
		collectionName = "properties"
	}
	collection := GetCollection(collectionName)

	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding sample properties...")
	now := time.Now()
	samples := []interface{}{
		models.Property{
			ID:           "lagos-land-001",
			Title:        "Prime Land in Lekki Phase 1",
			Description:  "Premium residential land in the heart of Lekki Phase 1. Perfect for building your dream home or investment property. Clear title with C of O available.",
			Price:        50000000,
			PricePerPlot: 50000000,
			Type:         models.TypeLand,
			City:         "Lagos",
			Area:         "Lekki Phase 1",
			Size:         "500 sqm",
			Plots:        1,
			TitleStatus:  "C of O",
			Status:       models.StatusAvailable,
			Featured:     true,
			PaymentPlan:  "Installment Plan",
			PaymentTerms: "30% downpayment, balance in 12 months",
			Images: []string{
				"https://images.unsplash.com/photo-1560518883-ce09059eeffa?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			},
			Amenities: []string{"24/7 Security", "Power Supply", "Water Supply"},
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.Property{
			ID:           "abuja-estate-002",
			Title:        "Royal Gardens Estate - Abuja",
			Description:  "Luxury gated estate development in Maitama. Phase 1 completely sold out. Phase 2 now available with premium plots and modern infrastructure.",
			Price:        250000000,
			PricePerPlot: 50000000,
			Type:         models.TypeEstate,
			City:         "Abuja",
			Area:         "Maitama",
			Plots:        5,
			Status:       models.StatusDeveloping,
			Featured:     true,
			PaymentPlan:  "Flexible Payment",
			PaymentTerms: "20% booking fee, installment options available",
			Images: []string{
				"https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			},
			EstateFeatures: []string{
				"Gated Community", "24/7 Security", "Internal Roads", "Street Lights",
				"Drainage System", "Shopping Mall", "Recreation Center",
			},
			Amenities: []string{"Swimming Pool", "Gym", "Children Playground", "Parking Space"},
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.Property{
			ID:          "lekki-villa-003",
			Title:       "Luxury 5-Bedroom Villa in Victoria Island",
			Description: "Stunning contemporary villa with panoramic ocean views. Modern architecture with premium finishes. Smart home features and private pool.",
			Price:       350000000,
			Type:        models.TypeVilla,
			City:        "Lagos",
			Area:        "Victoria Island",
			Bedrooms:    5,
			Bathrooms:   6,
			SquareFeet:  6500,
			YearBuilt:   2022,
			Status:      models.StatusAvailable,
			Featured:    true,
			PaymentPlan: "Outright Purchase",
			Images: []string{
				"https://images.unsplash.com/photo-1613977257363-707ba9348227?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1613977257592-4871e5fcd7c4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			},
			Amenities: []string{"Swimming Pool", "Gym", "Security", "Parking", "Generator", "Smart Home"},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	_, err = collection.InsertMany(ctx, samples)
	return err
}

func seedCities(ctx context.Context) error {
	collectionName := os.Getenv("MONGODB_COLLECTION_CITIES")
	if collectionName == "" {
		collectionName = "cities"
	}
	collection := GetCollection(collectionName)

	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding city directory...")
	cities := []interface{}{
		models.City{ID: "lagos", Name: "Lagos", Description: "Commercial capital of Nigeria with diverse neighborhoods", Featured: true},
		models.City{ID: "abuja", Name: "Abuja", Description: "Federal capital territory with modern infrastructure", Featured: true},
		models.City{ID: "port-harcourt", Name: "Port Harcourt", Description: "Oil-rich city in the Niger Delta region"},
		models.City{ID: "ibadan", Name: "Ibadan", Description: "Largest city in West Africa by geographical area"},
		models.City{ID: "kano", Name: "Kano", Description: "Major commercial and industrial center in Northern Nigeria"},
	}

	_, err = collection.InsertMany(ctx, cities)
	return err
}

func seedCMSUser(ctx context.Context) error {
	collectionName := os.Getenv("MONGODB_COLLECTION_CMS_USERS")
	if collectionName == "" {
		collectionName = "cms_users"
	}
	collection := GetCollection(collectionName)

	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("CMS_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Println("CMS_ADMIN_PASSWORD not set, seeding default admin credentials; change them before going live")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.CMSUser{
		Username:  "admin",
		Password:  hashed,
		Email:     "admin@nexusrealty.com",
		Role:      "admin",
		CreatedAt: time.Now(),
	}

	log.Println("Seeding default CMS operator (username: admin)")
	_, err = collection.InsertOne(ctx, user)
	return err
}
