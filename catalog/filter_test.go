package catalog

import (
	"testing"
	"time"

	"NexusRealty/models"
)

func sampleProperties() []models.Property {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.Property{
		{ID: "a", Type: models.TypeLand, City: "Lagos", Price: 50000000, CreatedAt: base.AddDate(0, 2, 0)},
		{ID: "b", Type: models.TypeVilla, City: "Lagos", Price: 350000000, Bedrooms: 5, Featured: true, CreatedAt: base.AddDate(0, 1, 0)},
		{ID: "c", Type: models.TypeEstate, City: "Abuja", Price: 250000000, Featured: true, CreatedAt: base},
		{ID: "d", Type: models.TypeDuplex, City: "Abuja", Price: 120000000, Bedrooms: 4, CreatedAt: base.AddDate(0, 3, 0)},
		{ID: "e", Type: models.TypeLand, City: "Ibadan", Price: 15000000},
	}
}

func ids(properties []models.Property) []string {
	out := make([]string, 0, len(properties))
	for _, p := range properties {
		out = append(out, p.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyFiltersType(t *testing.T) {
	got := ApplyFilters(sampleProperties(), Filter{Type: models.TypeLand})
	if !equalIDs(ids(got), []string{"a", "e"}) {
		t.Errorf("expected [a e], got %v", ids(got))
	}
}

func TestApplyFiltersAllSkipsDimension(t *testing.T) {
	props := sampleProperties()
	got := ApplyFilters(props, Filter{Type: "all", City: "all"})
	if len(got) != len(props) {
		t.Errorf("expected all %d properties, got %d", len(props), len(got))
	}
}

func TestApplyFiltersPriceBoundsInclusive(t *testing.T) {
	min := int64(50000000)
	max := int64(250000000)
	got := ApplyFilters(sampleProperties(), Filter{MinPrice: &min, MaxPrice: &max})
	if !equalIDs(ids(got), []string{"a", "c", "d"}) {
		t.Errorf("expected [a c d], got %v", ids(got))
	}
}

func TestApplyFiltersBedroomsMinimum(t *testing.T) {
	got := ApplyFilters(sampleProperties(), Filter{Bedrooms: 4})
	if !equalIDs(ids(got), []string{"b", "d"}) {
		t.Errorf("expected [b d], got %v", ids(got))
	}
}

func TestApplyFiltersCommutative(t *testing.T) {
	min := int64(100000000)
	f1 := Filter{City: "Abuja"}
	f2 := Filter{MinPrice: &min}

	props := sampleProperties()
	first := ApplyFilters(ApplyFilters(props, f1), f2)
	second := ApplyFilters(ApplyFilters(props, f2), f1)

	if !equalIDs(ids(first), ids(second)) {
		t.Errorf("filter order changed result: %v vs %v", ids(first), ids(second))
	}

	combined := ApplyFilters(props, Filter{City: "Abuja", MinPrice: &min})
	if !equalIDs(ids(first), ids(combined)) {
		t.Errorf("sequential filters disagree with combined filter: %v vs %v", ids(first), ids(combined))
	}
}

func TestApplySortPriceLowStable(t *testing.T) {
	props := []models.Property{
		{ID: "x", Price: 100},
		{ID: "y", Price: 100},
		{ID: "z", Price: 50},
	}
	got := ApplySort(props, SortPriceLow)
	if !equalIDs(ids(got), []string{"z", "x", "y"}) {
		t.Errorf("expected stable [z x y], got %v", ids(got))
	}
}

func TestApplySortPriceHigh(t *testing.T) {
	got := ApplySort(sampleProperties(), SortPriceHigh)
	if ids(got)[0] != "b" {
		t.Errorf("expected most expensive first, got %v", ids(got))
	}
}

func TestApplySortNewestMissingCreatedAtSortsEarliest(t *testing.T) {
	got := ApplySort(sampleProperties(), SortNewest)
	want := []string{"d", "a", "b", "c", "e"}
	if !equalIDs(ids(got), want) {
		t.Errorf("expected %v, got %v", want, ids(got))
	}
}

func TestApplySortDoesNotMutateInput(t *testing.T) {
	props := sampleProperties()
	before := ids(props)
	ApplySort(props, SortPriceLow)
	if !equalIDs(ids(props), before) {
		t.Errorf("input order changed: %v", ids(props))
	}
}

func TestApplySortUnknownKeyKeepsOrder(t *testing.T) {
	props := sampleProperties()
	got := ApplySort(props, "rating")
	if !equalIDs(ids(got), ids(props)) {
		t.Errorf("unknown sort key reordered: %v", ids(got))
	}
}

func TestSelectFeaturedCapAndOrder(t *testing.T) {
	props := []models.Property{
		{ID: "1", Featured: true},
		{ID: "2"},
		{ID: "3", Featured: true},
		{ID: "4", Featured: true},
	}

	got := SelectFeatured(props, 2)
	if !equalIDs(ids(got), []string{"1", "3"}) {
		t.Errorf("expected [1 3], got %v", ids(got))
	}

	all := SelectFeatured(props, FeaturedCap)
	if len(all) != 3 {
		t.Errorf("expected 3 featured, got %d", len(all))
	}
	for _, p := range all {
		if !p.Featured {
			t.Errorf("non-featured property %s selected", p.ID)
		}
	}
}
