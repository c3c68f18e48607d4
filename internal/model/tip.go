package model

import "fmt"

// Category classifies a tip. Topic categories come from the static catalog;
// consumption categories come from the threshold buckets.
type Category int

const (
	CategoryGeneral Category = iota
	CategoryShower
	CategoryWashing
	CategoryGarden
	CategoryKitchen
	CategoryHighAlert
	CategoryModerateAlert
	CategoryAcceptable
	CategoryEfficient
)

var categoryNames = [...]string{
	CategoryGeneral:       "general",
	CategoryShower:        "shower",
	CategoryWashing:       "washing",
	CategoryGarden:        "garden",
	CategoryKitchen:       "kitchen",
	CategoryHighAlert:     "high-alert",
	CategoryModerateAlert: "moderate-alert",
	CategoryAcceptable:    "acceptable",
	CategoryEfficient:     "efficient",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// IsAlert reports whether the category signals above-normal consumption.
func (c Category) IsAlert() bool {
	return c == CategoryHighAlert || c == CategoryModerateAlert
}

// ParseCategory maps a slug produced by String back to its Category.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tip category %q", s)
}

// Categories lists every category in declaration order.
func Categories() []Category {
	out := make([]Category, len(categoryNames))
	for i := range categoryNames {
		out[i] = Category(i)
	}
	return out
}

// Tip is a piece of advisory text.
type Tip struct {
	Title    string
	Message  string
	Category Category
}
