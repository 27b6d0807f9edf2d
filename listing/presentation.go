package listing

import (
	"time"

	"NexusRealty/config"
	"NexusRealty/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var nairaPrinter = message.NewPrinter(language.MustParse("en-NG"))

// FormatPrice renders a whole-naira amount with locale grouping and no
// decimals, e.g. 50000000 -> "₦50,000,000".
func FormatPrice(price int64) string {
	return nairaPrinter.Sprintf("₦%d", price)
}

// Summary is the property card view: the type-dependent attribute subset plus
// formatted pricing and display lookups.
type Summary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Price        string `json:"price"`
	PricePerPlot string `json:"pricePerPlot,omitempty"`
	Type         string `json:"type"`
	TypeIcon     string `json:"typeIcon"`
	TypeLabel    string `json:"typeLabel"`
	City         string `json:"city"`
	Area         string `json:"area"`
	Status       string `json:"status"`
	StatusLabel  string `json:"statusLabel"`
	StatusColor  string `json:"statusColor"`
	Featured     bool   `json:"featured"`
	PaymentPlan  string `json:"paymentPlan,omitempty"`
	Image        string `json:"image"`

	// Land subset.
	Size  string `json:"size,omitempty"`
	Plots int    `json:"plots,omitempty"`

	// Residential-family subset.
	Bedrooms   int     `json:"bedrooms,omitempty"`
	Bathrooms  int     `json:"bathrooms,omitempty"`
	SquareFeet float64 `json:"squareFeet,omitempty"`

	// Estate subset: the first three features plus an overflow count.
	EstateFeatures []string `json:"estateFeatures,omitempty"`
	MoreFeatures   int      `json:"moreFeatures,omitempty"`
}

// Summarize maps a property record to its card view.
func Summarize(p models.Property) Summary {
	s := Summary{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       FormatPrice(p.Price),
		Type:        p.Type,
		TypeIcon:    config.TypeIcon(p.Type),
		TypeLabel:   config.TypeLabel(p.Type),
		City:        p.City,
		Area:        p.Area,
		Status:      p.Status,
		StatusLabel: statusLabel(p.Status),
		StatusColor: statusColor(p.Status),
		Featured:    p.Featured,
		PaymentPlan: p.PaymentPlan,
		Image:       firstImage(p.Images),
	}

	if (p.Type == models.TypeLand || p.Type == models.TypeEstate) && p.PricePerPlot > 0 {
		s.PricePerPlot = FormatPrice(p.PricePerPlot)
	}

	switch {
	case p.Type == models.TypeLand:
		s.Size = p.Size
		s.Plots = p.Plots
	case p.Type == models.TypeEstate:
		if len(p.EstateFeatures) > 3 {
			s.EstateFeatures = p.EstateFeatures[:3]
			s.MoreFeatures = len(p.EstateFeatures) - 3
		} else {
			s.EstateFeatures = p.EstateFeatures
		}
	case models.IsResidentialFamily(p.Type):
		s.Bedrooms = p.Bedrooms
		s.Bathrooms = p.Bathrooms
		s.SquareFeet = p.SquareFeet
	}
	return s
}

// DetailView is the unabridged property page: every attribute, the full image
// gallery with the active index starting at 0, and the raw view counter.
type DetailView struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Price        string `json:"price"`
	PricePerPlot string `json:"pricePerPlot,omitempty"`
	Type         string `json:"type"`
	TypeIcon     string `json:"typeIcon"`
	TypeLabel    string `json:"typeLabel"`
	City         string `json:"city"`
	Area         string `json:"area"`
	Status       string `json:"status"`
	StatusLabel  string `json:"statusLabel"`
	StatusColor  string `json:"statusColor"`
	Featured     bool   `json:"featured"`
	PaymentPlan  string `json:"paymentPlan,omitempty"`
	PaymentTerms string `json:"paymentTerms,omitempty"`

	Size        string `json:"size,omitempty"`
	Plots       int    `json:"plots,omitempty"`
	TitleStatus string `json:"titleStatus,omitempty"`

	Bedrooms   int     `json:"bedrooms,omitempty"`
	Bathrooms  int     `json:"bathrooms,omitempty"`
	SquareFeet float64 `json:"squareFeet,omitempty"`
	YearBuilt  int     `json:"yearBuilt,omitempty"`

	EstateFeatures []string `json:"estateFeatures,omitempty"`
	Amenities      []string `json:"amenities,omitempty"`

	Images      []string  `json:"images"`
	ActiveImage int       `json:"activeImage"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Detail maps a property record to its full page view. The view-count
// increment is a store concern handled by the caller on the detail read.
func Detail(p models.Property) DetailView {
	images := p.Images
	if len(images) == 0 {
		images = []string{config.PlaceholderImage}
	}

	d := DetailView{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Price:          FormatPrice(p.Price),
		Type:           p.Type,
		TypeIcon:       config.TypeIcon(p.Type),
		TypeLabel:      config.TypeLabel(p.Type),
		City:           p.City,
		Area:           p.Area,
		Status:         p.Status,
		StatusLabel:    detailStatusLabel(p.Status),
		StatusColor:    statusColor(p.Status),
		Featured:       p.Featured,
		PaymentPlan:    p.PaymentPlan,
		PaymentTerms:   p.PaymentTerms,
		EstateFeatures: p.EstateFeatures,
		Amenities:      p.Amenities,
		Images:         images,
		ActiveImage:    0,
		Views:          p.Views,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}

	if (p.Type == models.TypeLand || p.Type == models.TypeEstate) && p.PricePerPlot > 0 {
		d.PricePerPlot = FormatPrice(p.PricePerPlot)
	}

	switch {
	case p.Type == models.TypeLand:
		d.Size = p.Size
		d.Plots = p.Plots
		d.TitleStatus = p.TitleStatus
	case p.Type == models.TypeEstate:
		d.Plots = p.Plots
	case models.IsResidentialFamily(p.Type):
		d.Bedrooms = p.Bedrooms
		d.Bathrooms = p.Bathrooms
		d.SquareFeet = p.SquareFeet
		d.YearBuilt = p.YearBuilt
	}
	return d
}

func firstImage(images []string) string {
	if len(images) == 0 {
		return config.PlaceholderImage
	}
	return images[0]
}

func statusLabel(status string) string {
	switch status {
	case models.StatusAvailable:
		return "Available"
	case models.StatusSold:
		return "Sold"
	case models.StatusReserved:
		return "Reserved"
	case models.StatusDeveloping:
		return "Under Development"
	}
	return status
}

func detailStatusLabel(status string) string {
	switch status {
	case models.StatusAvailable:
		return "Available for Purchase"
	case models.StatusSold:
		return "Sold Out"
	case models.StatusReserved:
		return "Reserved"
	case models.StatusDeveloping:
		return "Under Development"
	}
	return status
}

func statusColor(status string) string {
	switch status {
	case models.StatusAvailable:
		return "green"
	case models.StatusSold:
		return "red"
	case models.StatusReserved:
		return "yellow"
	case models.StatusDeveloping:
		return "blue"
	}
	return "gray"
}
