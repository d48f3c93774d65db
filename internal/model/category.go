package model

// Display defaults applied when a category or transaction carries no explicit value.
const (
	DefaultColor = "#E5E7EB"
	DefaultIcon  = "💰"
)

// Category represents a user-visible spending category.
// Name is the canonical identifier for matching and is compared case-insensitively.
type Category struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Label returns the composite "<icon> <name>" label stored on transactions.
func (c Category) Label() string {
	if c.Icon == "" {
		return c.Name
	}
	return c.Icon + " " + c.Name
}

// DefaultCategories returns the fixed set seeded on first run and on reset.
// A fresh slice is returned on every call.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Courses", Icon: "🛒", Color: "#A5D8A2"},
		{Name: "Loyer", Icon: "🏠", Color: "#A2C8F0"},
		{Name: "Essence", Icon: "⛽", Color: "#F9E79F"},
		{Name: "Loisirs", Icon: "🎮", Color: "#D7BDE2"},
		{Name: "Shopping", Icon: "🛍️", Color: "#F5B7B1"},
		{Name: "Autres", Icon: "💰", Color: "#D5DBDB"},
	}
}
