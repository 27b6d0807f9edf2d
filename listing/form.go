package listing

import (
	"math"
	"strconv"
	"strings"
	"time"

	"NexusRealty/config"
	"NexusRealty/models"
)

// PropertyInput is the admin form payload. Fields arrive as strings the way
// the form submits them; only title, description, price and area are
// required, everything else is defaulted during normalization.
type PropertyInput struct {
	Title          string   `json:"title" form:"title"`
	Description    string   `json:"description" form:"description"`
	Price          string   `json:"price" form:"price"`
	Type           string   `json:"type" form:"type"`
	City           string   `json:"city" form:"city"`
	Area           string   `json:"area" form:"area"`
	Bedrooms       string   `json:"bedrooms" form:"bedrooms"`
	Bathrooms      string   `json:"bathrooms" form:"bathrooms"`
	SquareFeet     string   `json:"squareFeet" form:"squareFeet"`
	Size           string   `json:"size" form:"size"`
	Plots          string   `json:"plots" form:"plots"`
	TitleStatus    string   `json:"titleStatus" form:"titleStatus"`
	YearBuilt      string   `json:"yearBuilt" form:"yearBuilt"`
	Status         string   `json:"status" form:"status"`
	Featured       bool     `json:"featured" form:"featured"`
	PaymentPlan    string   `json:"paymentPlan" form:"paymentPlan"`
	PaymentTerms   string   `json:"paymentTerms" form:"paymentTerms"`
	Images         string   `json:"images" form:"images"`
	Amenities      []string `json:"amenities" form:"amenities"`
	EstateFeatures []string `json:"estateFeatures" form:"estateFeatures"`
}

// ValidationError is an operator-input defect. It is recovered locally by
// re-prompting the operator and is never persisted.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrMissingTitle       = &ValidationError{Code: "MissingTitle", Message: "Title is required"}
	ErrMissingDescription = &ValidationError{Code: "MissingDescription", Message: "Description is required"}
	ErrInvalidPrice       = &ValidationError{Code: "InvalidPrice", Message: "Please enter a valid price"}
	ErrMissingArea        = &ValidationError{Code: "MissingArea", Message: "Area/Location is required"}
)

// Validate checks the four required fields. The form is deliberately
// permissive beyond these: every other field is defaulted, not rejected.
func (in PropertyInput) Validate() *ValidationError {
	if strings.TrimSpace(in.Title) == "" {
		return ErrMissingTitle
	}
	if strings.TrimSpace(in.Description) == "" {
		return ErrMissingDescription
	}
	price, err := strconv.ParseInt(strings.TrimSpace(in.Price), 10, 64)
	if err != nil || price <= 0 {
		return ErrInvalidPrice
	}
	if strings.TrimSpace(in.Area) == "" {
		return ErrMissingArea
	}
	return nil
}

// Normalize converts a validated input into a property record: strings
// trimmed, numeric fields defaulted to zero, the image list parsed with a
// placeholder fallback, checkbox selections coerced to sets and pricePerPlot
// recomputed. The id, timestamps and view counter are store-assigned.
func (in PropertyInput) Normalize() models.Property {
	price, _ := strconv.ParseInt(strings.TrimSpace(in.Price), 10, 64)

	propertyType := strings.TrimSpace(in.Type)
	if propertyType == "" {
		propertyType = models.TypeLand
	}
	city := strings.TrimSpace(in.City)
	if city == "" {
		city = "Lagos"
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = models.StatusAvailable
	}
	paymentPlan := strings.TrimSpace(in.PaymentPlan)
	if paymentPlan == "" {
		paymentPlan = "Outright Purchase"
	}
	yearBuilt := parseInt(in.YearBuilt)
	if yearBuilt == 0 {
		yearBuilt = time.Now().Year()
	}
	plots := parseInt(in.Plots)

	return models.Property{
		Title:          strings.TrimSpace(in.Title),
		Description:    strings.TrimSpace(in.Description),
		Price:          price,
		PricePerPlot:   ComputePricePerPlot(propertyType, price, plots),
		Type:           propertyType,
		City:           city,
		Area:           strings.TrimSpace(in.Area),
		Size:           strings.TrimSpace(in.Size),
		Plots:          plots,
		TitleStatus:    strings.TrimSpace(in.TitleStatus),
		Bedrooms:       parseInt(in.Bedrooms),
		Bathrooms:      parseInt(in.Bathrooms),
		SquareFeet:     parseFloat(in.SquareFeet),
		EstateFeatures: toSet(in.EstateFeatures),
		Status:         status,
		Featured:       in.Featured,
		PaymentPlan:    paymentPlan,
		PaymentTerms:   strings.TrimSpace(in.PaymentTerms),
		Images:         ParseImageList(in.Images),
		Amenities:      toSet(in.Amenities),
		YearBuilt:      yearBuilt,
	}
}

// ComputePricePerPlot derives the per-plot price for land and estate
// listings with at least one plot; other listings carry no per-plot price.
func ComputePricePerPlot(propertyType string, price int64, plots int) int64 {
	if propertyType != models.TypeLand && propertyType != models.TypeEstate {
		return 0
	}
	if plots <= 0 {
		return 0
	}
	return int64(math.Round(float64(price) / float64(plots)))
}

// ParseImageList splits a comma-separated URL list into trimmed non-empty
// entries, substituting the placeholder when nothing remains.
func ParseImageList(raw string) []string {
	images := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		url := strings.TrimSpace(part)
		if url != "" {
			images = append(images, url)
		}
	}
	if len(images) == 0 {
		images = append(images, config.PlaceholderImage)
	}
	return images
}

func parseInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseFloat(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

func toSet(values []string) []string {
	seen := make(map[string]bool, len(values))
	set := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		set = append(set, v)
	}
	return set
}
