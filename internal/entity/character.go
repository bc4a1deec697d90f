package entity

import (
	"fmt"
	"strings"
)

// Clothing slots of a character sheet, in display order. The slot names are
// the host's wire keys.
var EquipmentSlots = []string{"头部", "耳朵", "上衣", "下装", "内衣", "内裤", "袜子", "鞋子"}

// IsEquipmentSlot reports whether name is one of the fixed clothing slots.
func IsEquipmentSlot(name string) bool {
	for _, s := range EquipmentSlots {
		if s == name {
			return true
		}
	}
	return false
}

// Defaults applied by the status normalizer.
const (
	UnknownValue = "未知"
)

// CharacterSheet is the normalized player sheet from the 用户 section.
type CharacterSheet struct {
	Name        string            `json:"name"`
	Currency    float64           `json:"currency"`
	Gender      string            `json:"gender"`
	Age         float64           `json:"age"`
	Height      string            `json:"height"`
	Weight      string            `json:"weight"`
	Personality string            `json:"personality"`
	Appearance  string            `json:"appearance"`
	Equipment   map[string]string `json:"equipment"`
}

// equipmentLine renders the slot map in fixed slot order so two sheets with
// equal wardrobes always compare equal.
func equipmentLine(eq map[string]string) string {
	parts := make([]string, 0, len(EquipmentSlots))
	for _, slot := range EquipmentSlots {
		parts = append(parts, slot+"="+eq[slot])
	}
	return strings.Join(parts, ";")
}

func (c CharacterSheet) DiffFields() []string {
	return []string{
		c.Name,
		fmt.Sprintf("%g", c.Currency),
		c.Gender,
		fmt.Sprintf("%g", c.Age),
		c.Height,
		c.Weight,
		c.Personality,
		c.Appearance,
		equipmentLine(c.Equipment),
	}
}

// NPCSheet is one normalized non-player sheet from the NPC section.
type NPCSheet struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	FriendID      string            `json:"friendId"`
	Gender        string            `json:"gender"`
	Age           float64           `json:"age"`
	Favor         float64           `json:"favor"`
	Height        string            `json:"height"`
	Weight        string            `json:"weight"`
	Personality   string            `json:"personality"`
	Appearance    string            `json:"appearance"`
	InnerThoughts string            `json:"innerThoughts"`
	Equipment     map[string]string `json:"equipment"`
	Memories      []string          `json:"memories"`
}

func (n NPCSheet) DiffFields() []string {
	return []string{
		n.Name,
		fmt.Sprintf("%g", n.Favor),
		n.InnerThoughts,
		equipmentLine(n.Equipment),
		strings.Join(n.Memories, "\n"),
	}
}
