// Package catalog lists the spreadsheet tabs that make up each data category.
package catalog

import "fmt"

type Category string

const (
	Items     Category = "items"
	Creatures Category = "creatures"
	NookMiles Category = "nookMiles"
	Recipes   Category = "recipes"
)

var itemTabs = []string{
	"Housewares",
	"Miscellaneous",
	"Wall-mounted",
	"Wallpapers",
	"Floors",
	"Rugs",
	"Fencing",
	"Photos",
	"Posters",
	"Tools",
	"Tops",
	"Bottoms",
	"Dresses",
	"Headwear",
	"Accessories",
	"Socks",
	"Shoes",
	"Bags",
	"Umbrellas",
	"Music",
	"Fossils",
	"Other",
}

var creatureTabs = []string{
	"Bugs - North",
	"Bugs - South",
	"Fish - North",
	"Fish - South",
}

var tabsByCategory = map[Category][]string{
	Items:     itemTabs,
	Creatures: creatureTabs,
	NookMiles: {"Nook Miles"},
	Recipes:   {"Recipes"},
}

// ignoredTabs never contribute rows, whatever category lists them.
var ignoredTabs = map[string]struct{}{
	"Construction": {},
	"Achievements": {},
	"Villagers":    {},
}

// All returns every category in processing order.
func All() []Category {
	return []Category{Items, Creatures, NookMiles, Recipes}
}

// Parse validates a category name.
func Parse(name string) (Category, error) {
	c := Category(name)
	if _, ok := tabsByCategory[c]; !ok {
		return "", fmt.Errorf("unknown category %q", name)
	}
	return c, nil
}

// Tabs returns the tab names aggregated into c, in fetch order, with ignored
// tabs removed.
func (c Category) Tabs() []string {
	var tabs []string
	for _, tab := range tabsByCategory[c] {
		if IsIgnored(tab) {
			continue
		}
		tabs = append(tabs, tab)
	}
	return tabs
}

func IsIgnored(tab string) bool {
	_, ok := ignoredTabs[tab]
	return ok
}

func (c Category) String() string { return string(c) }
