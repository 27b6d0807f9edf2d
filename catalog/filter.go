package catalog

import (
	"sort"

	"NexusRealty/models"
)

// FeaturedCap is the maximum number of properties in the homepage highlight set.
const FeaturedCap = 6

// Filter holds the catalog filter dimensions. A zero or "all" value skips that
// dimension; all active predicates are ANDed, so the order filters are applied
// in never changes the result set.
type Filter struct {
	Type     string
	City     string
	MinPrice *int64
	MaxPrice *int64
	Bedrooms int
}

func (f Filter) matches(p models.Property) bool {
	if f.Type != "" && f.Type != "all" && p.Type != f.Type {
		return false
	}
	if f.City != "" && f.City != "all" && p.City != f.City {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Bedrooms > 0 && p.Bedrooms < f.Bedrooms {
		return false
	}
	return true
}

// ApplyFilters returns the properties matching every active predicate in the
// filter. The input slice is not modified.
func ApplyFilters(properties []models.Property, filter Filter) []models.Property {
	filtered := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if filter.matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Sort keys accepted by ApplySort.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortNewest    = "newest"
)

// ApplySort returns a sorted copy of the properties. Sorting is stable and an
// unknown key leaves the original order. Records with a missing createdAt sort
// as earliest under "newest".
func ApplySort(properties []models.Property, key string) []models.Property {
	sorted := make([]models.Property, len(properties))
	copy(sorted, properties)

	switch key {
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	}
	return sorted
}

// SelectFeatured returns at most cap featured properties in their original
// order.
func SelectFeatured(properties []models.Property, cap int) []models.Property {
	if cap <= 0 {
		return []models.Property{}
	}
	featured := make([]models.Property, 0, cap)
	for _, p := range properties {
		if !p.Featured {
			continue
		}
		featured = append(featured, p)
		if len(featured) == cap {
			break
		}
	}
	return featured
}
