package models

import "time"

// Property type values. Exactly one attribute group (land, residential-family,
// estate) is primary per type; records may carry unused attributes from other
// groups without being invalid.
const (
	TypeLand        = "land"
	TypeResidential = "residential"
	TypeCommercial  = "commercial"
	TypeEstate      = "estate"
	TypeVilla       = "villa"
	TypeDuplex      = "duplex"
)

const (
	StatusAvailable  = "available"
	StatusSold       = "sold"
	StatusReserved   = "reserved"
	StatusDeveloping = "developing"
)

type Property struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Price       int64  `bson:"price" json:"price"`
	// Derived from price and plots for land/estate listings, never settable
	// independently.
	PricePerPlot int64  `bson:"pricePerPlot,omitempty" json:"pricePerPlot,omitempty"`
	Type         string `bson:"type" json:"type"`
	City         string `bson:"city" json:"city"`
	Area         string `bson:"area" json:"area"`

	// Land attributes.
	Size        string `bson:"size,omitempty" json:"size,omitempty"`
	Plots       int    `bson:"plots,omitempty" json:"plots,omitempty"`
	TitleStatus string `bson:"titleStatus,omitempty" json:"titleStatus,omitempty"`

	// Residential-family attributes (residential, commercial, villa, duplex).
	Bedrooms   int     `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms  int     `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	SquareFeet float64 `bson:"squareFeet,omitempty" json:"squareFeet,omitempty"`

	// Estate attributes.
	EstateFeatures []string `bson:"estateFeatures,omitempty" json:"estateFeatures,omitempty"`

	Status       string    `bson:"status" json:"status"`
	Featured     bool      `bson:"featured" json:"featured"`
	PaymentPlan  string    `bson:"paymentPlan,omitempty" json:"paymentPlan,omitempty"`
	PaymentTerms string    `bson:"paymentTerms,omitempty" json:"paymentTerms,omitempty"`
	Images       []string  `bson:"images" json:"images"`
	Amenities    []string  `bson:"amenities,omitempty" json:"amenities,omitempty"`
	YearBuilt    int       `bson:"yearBuilt,omitempty" json:"yearBuilt,omitempty"`
	Views        int64     `bson:"views" json:"views"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsResidentialFamily reports whether the type uses the bedrooms/bathrooms/
// squareFeet attribute group.
func IsResidentialFamily(propertyType string) bool {
	switch propertyType {
	case TypeResidential, TypeCommercial, TypeVilla, TypeDuplex:
		return true
	}
	return false
}
