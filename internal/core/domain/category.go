package domain

import "github.com/shopspring/decimal"

// ExpenseCategories is the fixed list of 16 renovation expense categories.
var ExpenseCategories = []string{
	"Civil/Masonry",
	"Electrical",
	"Plumbing",
	"HVAC/AC",
	"False Ceiling",
	"Flooring",
	"Painting",
	"Carpentry/Woodwork",
	"Kitchen",
	"Bathroom Fittings",
	"Furniture",
	"Curtains/Blinds",
	"Appliances",
	"Decor/Accessories",
	"Deep Cleaning",
	"Miscellaneous",
}

// DefaultBudgetAllocations is the default per-category budget in INR,
// used when a project carries no allocations of its own. Totals to roughly
// the 15L midpoint of a typical 3BHK renovation.
var DefaultBudgetAllocations = map[string]decimal.Decimal{
	"Civil/Masonry":      decimal.NewFromInt(50000),
	"Electrical":         decimal.NewFromInt(100000),
	"Plumbing":           decimal.NewFromInt(75000),
	"HVAC/AC":            decimal.NewFromInt(150000),
	"False Ceiling":      decimal.NewFromInt(100000),
	"Flooring":           decimal.NewFromInt(100000),
	"Painting":           decimal.NewFromInt(100000),
	"Carpentry/Woodwork": decimal.NewFromInt(200000),
	"Kitchen":            decimal.NewFromInt(500000),
	"Bathroom Fittings":  decimal.NewFromInt(100000),
	"Furniture":          decimal.NewFromInt(200000),
	"Curtains/Blinds":    decimal.NewFromInt(50000),
	"Appliances":         decimal.NewFromInt(150000),
	"Decor/Accessories":  decimal.NewFromInt(50000),
	"Deep Cleaning":      decimal.NewFromInt(15000),
	"Miscellaneous":      decimal.NewFromInt(60000),
}

// IsValidCategory reports whether name is one of the fixed categories.
func IsValidCategory(name string) bool {
	for _, c := range ExpenseCategories {
		if c == name {
			return true
		}
	}
	return false
}
