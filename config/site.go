package config

// Fixed site vocabulary. These lists drive the admin form options and the
// presentation lookups; they are not enforced as hard constraints on write.

const PlaceholderImage = "https://images.unsplash.com/photo-1560518883-ce09059eeffa?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"

type PropertyType struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

var PropertyTypes = []PropertyType{
	{Value: "land", Label: "Land", Icon: "🌱"},
	{Value: "residential", Label: "Residential", Icon: "🏠"},
	{Value: "commercial", Label: "Commercial", Icon: "🏢"},
	{Value: "estate", Label: "Estate Development", Icon: "🏘️"},
	{Value: "villa", Label: "Luxury Villa", Icon: "🏡"},
	{Value: "duplex", Label: "Duplex", Icon: "🏘️"},
}

var Cities = []string{
	"Lagos", "Abuja", "Port Harcourt", "Ibadan", "Kano",
	"Enugu", "Benin City", "Calabar", "Asaba", "Uyo",
}

var PaymentPlans = []string{
	"Outright Purchase", "Installment Plan", "Mortgage Option",
	"Rent-to-Own", "Flexible Payment",
}

var TitleStatusOptions = []string{
	"C of O", "Governor's Consent", "Excision", "Gazette",
	"Global Acquisition", "Freehold", "Leasehold",
}

var AmenitiesList = []string{
	"24/7 Security", "Swimming Pool", "Gym", "Children Playground",
	"Parking Space", "Power Supply", "Water Supply", "Internet",
}

var EstateFeaturesList = []string{
	"Gated Community", "Security House", "Internal Roads", "Street Lights",
	"Drainage System", "Green Areas", "Shopping Mall", "School",
	"Hospital", "Recreation Center", "Water Treatment Plant",
}

// TypeIcon resolves the display icon for a property type, falling back to a
// generic house icon for unmapped types.
func TypeIcon(value string) string {
	for _, t := range PropertyTypes {
		if t.Value == value {
			return t.Icon
		}
	}
	return "🏠"
}

// TypeLabel resolves the display label for a property type, falling back to
// the raw value.
func TypeLabel(value string) string {
	for _, t := range PropertyTypes {
		if t.Value == value {
			return t.Label
		}
	}
	return value
}
