package reserve

import (
	"fmt"
	"strings"
)

// Category is the closed set of reserve-study component groupings.
type Category int

const (
	CategorySitework Category = iota
	CategoryBuildingExterior
	CategoryBuildingInterior
	CategoryMechanical
	CategoryElectrical
	CategoryAmenities
	// CategoryMaintenance holds recurring maintenance items that are not
	// capital replacements.
	CategoryMaintenance
	// CategoryOther collects components whose category was not recognized.
	CategoryOther

	categoryCount
)

var categoryNames = [categoryCount]string{
	CategorySitework:         "Sitework",
	CategoryBuildingExterior: "Building Exterior",
	CategoryBuildingInterior: "Building Interior",
	CategoryMechanical:       "Mechanical",
	CategoryElectrical:       "Electrical",
	CategoryAmenities:        "Amenities",
	CategoryMaintenance:      "Maintenance",
	CategoryOther:            "Other",
}

var categoryAliases = map[string]Category{
	"site":              CategorySitework,
	"sitework":          CategorySitework,
	"site work":         CategorySitework,
	"grounds":           CategorySitework,
	"exterior":          CategoryBuildingExterior,
	"building exterior": CategoryBuildingExterior,
	"interior":          CategoryBuildingInterior,
	"building interior": CategoryBuildingInterior,
	"mechanical":        CategoryMechanical,
	"plumbing":          CategoryMechanical,
	"hvac":              CategoryMechanical,
	"electrical":        CategoryElectrical,
	"amenities":         CategoryAmenities,
	"amenity":           CategoryAmenities,
	"recreation":        CategoryAmenities,
	"maintenance":       CategoryMaintenance,
	"maintenance only":  CategoryMaintenance,
	"other":             CategoryOther,
}

// Categories returns every category in reporting order.
func Categories() []Category {
	all := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		all = append(all, c)
	}
	return all
}

// ParseCategory maps free-form input to a Category. The second return value
// is false when the input was not recognized and Other was chosen.
func ParseCategory(value string) (Category, bool) {
	key := strings.Join(strings.FieldsFunc(strings.ToLower(value), func(r rune) bool {
		return r == ' ' || r == '_' || r == '-' || r == '\t'
	}), " ")
	if c, ok := categoryAliases[key]; ok {
		return c, true
	}
	return CategoryOther, false
}

func (c Category) valid() bool {
	return c >= 0 && c < categoryCount
}

func (c Category) String() string {
	if !c.valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// MarshalText renders the category name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts any alias understood by ParseCategory.
func (c *Category) UnmarshalText(text []byte) error {
	*c, _ = ParseCategory(string(text))
	return nil
}
