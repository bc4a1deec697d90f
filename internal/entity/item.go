package entity

import "fmt"

// Category an item is returned to when unequipped from a clothing slot.
const CategoryEquipment = "装备"

// Defaults applied by the inventory normalizer.
const (
	DefaultDescription = "暂无描述"
	DefaultQuality     = "普通"
)

// Item is one normalized inventory entry. Category doubles as the display
// type, exactly as the raw document groups items.
type Item struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Quality     string `json:"quality"`
}

func NewItemID(category, key string) string {
	return fmt.Sprintf("%s_%s", category, key)
}

// DiffFields returns the ordered semantic fields the change detector
// compares. Quality and key are identity or cosmetic and excluded.
func (i Item) DiffFields() []string {
	return []string{i.Name, i.Category, i.Description, fmt.Sprintf("%d", i.Quantity)}
}
