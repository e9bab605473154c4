package handler

// TipCatalog is the built-in English guidance text, keyed by the
// category tip keys. It lives in the presentation layer so the domain
// core stays agnostic to wording; swapping it for a translated catalog
// does not touch the core.
type TipCatalog struct {
	tips map[string]string
}

// NewTipCatalog creates the default English catalog.
//
// Returns:
//   - *TipCatalog: the catalog
func NewTipCatalog() *TipCatalog {
	return &TipCatalog{
		tips: map[string]string{
			"underweight": "Eat more frequently, choose nutrient-rich foods, add healthy snacks between meals, and consider strength training.",
			"normal":      "Keep up your balanced diet, stay physically active, get adequate sleep, and monitor your weight regularly.",
			"overweight":  "Increase physical activity, control portion sizes, choose whole foods over processed foods, and consider consulting a nutritionist.",
			"obese":       "Consult with healthcare professionals, start with moderate exercise, focus on portion control, and set realistic goals.",
		},
	}
}

// Tip returns the guidance text for a tip key, or an empty string for
// an unknown key.
func (c *TipCatalog) Tip(key string) string {
	return c.tips[key]
}

// Disclaimer returns the medical disclaimer attached to every result.
func (c *TipCatalog) Disclaimer() string {
	return "BMI is just one measure of health. Always consult with healthcare professionals for medical advice."
}
