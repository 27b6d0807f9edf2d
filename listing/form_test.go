package listing

import (
	"testing"
	"time"

	"NexusRealty/config"
	"NexusRealty/models"
)

func validInput() PropertyInput {
	return PropertyInput{
		Title:       "Test Plot",
		Description: "d",
		Price:       "1000000",
		Area:        "Ikeja",
		City:        "Lagos",
		Type:        "land",
		Plots:       "2",
	}
}

func TestValidateMissingTitle(t *testing.T) {
	in := PropertyInput{Title: "", Description: "x", Price: "100", Area: "Lekki"}
	if err := in.Validate(); err == nil || err.Code != "MissingTitle" {
		t.Errorf("expected MissingTitle, got %v", err)
	}
}

func TestValidateWhitespaceTitle(t *testing.T) {
	in := PropertyInput{Title: "   ", Description: "x", Price: "100", Area: "Lekki"}
	if err := in.Validate(); err == nil || err.Code != "MissingTitle" {
		t.Errorf("expected MissingTitle, got %v", err)
	}
}

func TestValidateMissingDescription(t *testing.T) {
	in := PropertyInput{Title: "Land", Description: " ", Price: "100", Area: "Lekki"}
	if err := in.Validate(); err == nil || err.Code != "MissingDescription" {
		t.Errorf("expected MissingDescription, got %v", err)
	}
}

func TestValidateInvalidPrice(t *testing.T) {
	cases := []string{"-5", "0", "", "abc"}
	for _, price := range cases {
		in := PropertyInput{Title: "Land", Description: "x", Price: price, Area: "Lekki"}
		if err := in.Validate(); err == nil || err.Code != "InvalidPrice" {
			t.Errorf("price %q: expected InvalidPrice, got %v", price, err)
		}
	}
}

func TestValidateMissingArea(t *testing.T) {
	in := PropertyInput{Title: "Land", Description: "x", Price: "100", Area: ""}
	if err := in.Validate(); err == nil || err.Code != "MissingArea" {
		t.Errorf("expected MissingArea, got %v", err)
	}
}

func TestValidateAccepts(t *testing.T) {
	if err := validInput().Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestNormalizePricePerPlot(t *testing.T) {
	in := validInput()
	in.Price = "10000000"
	in.Plots = "2"

	p := in.Normalize()

	if p.PricePerPlot != 5000000 {
		t.Errorf("pricePerPlot = %d, want 5000000", p.PricePerPlot)
	}
}

func TestNormalizePricePerPlotRounds(t *testing.T) {
	got := ComputePricePerPlot(models.TypeLand, 10000001, 2)
	if got != 5000001 {
		t.Errorf("pricePerPlot = %d, want 5000001", got)
	}
}

func TestNormalizePricePerPlotOnlyForLandAndEstate(t *testing.T) {
	if got := ComputePricePerPlot(models.TypeVilla, 10000000, 2); got != 0 {
		t.Errorf("villa pricePerPlot = %d, want 0", got)
	}
	if got := ComputePricePerPlot(models.TypeEstate, 250000000, 5); got != 50000000 {
		t.Errorf("estate pricePerPlot = %d, want 50000000", got)
	}
	if got := ComputePricePerPlot(models.TypeLand, 10000000, 0); got != 0 {
		t.Errorf("zero plots pricePerPlot = %d, want 0", got)
	}
}

func TestNormalizeTrimsStrings(t *testing.T) {
	in := validInput()
	in.Title = "  Test Plot  "
	in.Area = " Ikeja "

	p := in.Normalize()

	if p.Title != "Test Plot" || p.Area != "Ikeja" {
		t.Errorf("strings not trimmed: %q / %q", p.Title, p.Area)
	}
}

func TestNormalizeImageList(t *testing.T) {
	in := validInput()
	in.Images = " https://a.jpg , ,https://b.jpg,  "

	p := in.Normalize()

	if len(p.Images) != 2 || p.Images[0] != "https://a.jpg" || p.Images[1] != "https://b.jpg" {
		t.Errorf("image list = %v", p.Images)
	}
}

func TestNormalizeEmptyImagesFallsBackToPlaceholder(t *testing.T) {
	in := validInput()
	in.Images = " , ,"

	p := in.Normalize()

	if len(p.Images) != 1 || p.Images[0] != config.PlaceholderImage {
		t.Errorf("expected single placeholder, got %v", p.Images)
	}
}

func TestNormalizeCoercesSelectionsToSets(t *testing.T) {
	in := validInput()
	in.Amenities = []string{"Gym", "Gym", " Pool ", ""}

	p := in.Normalize()

	if len(p.Amenities) != 2 || p.Amenities[0] != "Gym" || p.Amenities[1] != "Pool" {
		t.Errorf("amenities = %v", p.Amenities)
	}
}

func TestNormalizeNumericDefaults(t *testing.T) {
	in := validInput()
	in.Bedrooms = ""
	in.Bathrooms = "not-a-number"
	in.SquareFeet = "-10"

	p := in.Normalize()

	if p.Bedrooms != 0 || p.Bathrooms != 0 || p.SquareFeet != 0 {
		t.Errorf("numeric defaults not applied: %d/%d/%v", p.Bedrooms, p.Bathrooms, p.SquareFeet)
	}
}

func TestNormalizeDefaultsYearBuilt(t *testing.T) {
	p := validInput().Normalize()
	if p.YearBuilt != time.Now().Year() {
		t.Errorf("yearBuilt = %d", p.YearBuilt)
	}
}

func TestNormalizeDefaultsStatusAndPlan(t *testing.T) {
	p := validInput().Normalize()
	if p.Status != models.StatusAvailable {
		t.Errorf("status = %q", p.Status)
	}
	if p.PaymentPlan != "Outright Purchase" {
		t.Errorf("paymentPlan = %q", p.PaymentPlan)
	}
}
