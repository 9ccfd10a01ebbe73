package model

// Categories available in the entry form, in display order. Free-text
// categories are accepted everywhere; this set just drives defaults and
// chart colors.
var Categories = []string{
	CategoryFood,
	CategoryTransport,
	CategoryHousing,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryShopping,
	CategoryHealth,
	CategorySalary,
	CategoryFreelance,
	CategoryInvestment,
	CategoryOther,
}

// Named categories.
const (
	CategoryFood          = "Food & Dining"
	CategoryTransport     = "Transportation"
	CategoryHousing       = "Housing"
	CategoryUtilities     = "Utilities"
	CategoryEntertainment = "Entertainment"
	CategoryShopping      = "Shopping"
	CategoryHealth        = "Health & Fitness"
	CategorySalary        = "Salary"
	CategoryFreelance     = "Freelance"
	CategoryInvestment    = "Investment"
	CategoryOther         = "Other"
)

// categoryColors maps each named category to its chart color.
var categoryColors = map[string]string{
	CategoryFood:          "#f59e0b", // amber
	CategoryTransport:     "#3b82f6", // blue
	CategoryHousing:       "#6366f1", // indigo
	CategoryUtilities:     "#06b6d4", // cyan
	CategoryEntertainment: "#ec4899", // pink
	CategoryShopping:      "#8b5cf6", // violet
	CategoryHealth:        "#10b981", // emerald
	CategorySalary:        "#22c55e", // green
	CategoryFreelance:     "#84cc16", // lime
	CategoryInvestment:    "#14b8a6", // teal
	CategoryOther:         "#94a3b8", // slate
}

// CategoryColor returns the display color for a category, falling back to
// the Other color for free-text categories.
func CategoryColor(name string) string {
	if c, ok := categoryColors[name]; ok {
		return c
	}
	return categoryColors[CategoryOther]
}
