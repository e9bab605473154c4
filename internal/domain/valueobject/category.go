// Package valueobject contains value objects that represent concepts without identity.
package valueobject

// Category represents a clinical weight category derived from a BMI value.
type Category string

// Weight categories following the WHO classification.
const (
	CategoryUnderweight Category = "Underweight"   // BMI below the underweight threshold
	CategoryNormal      Category = "Normal weight" // BMI inside the healthy range
	CategoryOverweight  Category = "Overweight"    // BMI above the healthy range
	CategoryObese       Category = "Obese"         // BMI at or above the obesity threshold
)

// categoryMeta holds the presentation attributes of a category.
// The colors match the gauge bands rendered by the client.
type categoryMeta struct {
	color       string
	emoji       string
	description string
	tipKey      string
}

var categoryMetadata = map[Category]categoryMeta{
	CategoryUnderweight: {
		color:       "#FFC300",
		emoji:       "⚠️",
		description: "Below normal weight range",
		tipKey:      "underweight",
	},
	CategoryNormal: {
		color:       "#2ECC71",
		emoji:       "✅",
		description: "Healthy weight range",
		tipKey:      "normal",
	},
	CategoryOverweight: {
		color:       "#FF5733",
		emoji:       "⚠️",
		description: "Above normal weight range",
		tipKey:      "overweight",
	},
	CategoryObese: {
		color:       "#C70039",
		emoji:       "🚨",
		description: "Significantly above normal weight range",
		tipKey:      "obese",
	},
}

// Categories returns all weight categories in ascending BMI order.
//
// Returns:
//   - []Category: ordered slice of the four categories
func Categories() []Category {
	return []Category{
		CategoryUnderweight,
		CategoryNormal,
		CategoryOverweight,
		CategoryObese,
	}
}

// IsValid checks if the category is one of the four known values.
//
// Returns:
//   - bool: true if the category is recognized
func (c Category) IsValid() bool {
	_, ok := categoryMetadata[c]
	return ok
}

// Color returns the hex color associated with the category.
// Used for the result badge and the matching gauge band.
//
// Returns:
//   - string: hex color code (e.g., "#2ECC71")
func (c Category) Color() string {
	return categoryMetadata[c].color
}

// Emoji returns the severity indicator for the category.
//
// Returns:
//   - string: emoji indicator
func (c Category) Emoji() string {
	return categoryMetadata[c].emoji
}

// Description returns a short human-readable description of the category.
//
// Returns:
//   - string: category description
func (c Category) Description() string {
	return categoryMetadata[c].description
}

// TipKey returns the lookup key for the guidance text catalog.
// The core is agnostic to the wording behind the key; translation and
// tip content are presentation-layer concerns.
//
// Returns:
//   - string: catalog key (e.g., "normal")
func (c Category) TipKey() string {
	return categoryMetadata[c].tipKey
}

// String returns the category name.
//
// Returns:
//   - string: the category display name
func (c Category) String() string {
	return string(c)
}
