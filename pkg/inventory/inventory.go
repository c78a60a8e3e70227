package inventory

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jwebster45206/albert/pkg/item"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Inventory holds the player's items in the order they were picked up.
type Inventory struct {
	items []item.Item
}

// New creates an empty inventory.
func New() *Inventory {
	return &Inventory{
		items: make([]item.Item, 0),
	}
}

// Insert adds an item. It always succeeds.
func (inv *Inventory) Insert(it item.Item) {
	inv.items = append(inv.items, it)
}

// Contains reports whether an item with the given name is held.
func (inv *Inventory) Contains(name string) bool {
	for _, it := range inv.items {
		if strings.EqualFold(it.Name, name) {
			return true
		}
	}
	return false
}

// Remove takes out the first item with the given name.
func (inv *Inventory) Remove(name string) (item.Item, bool) {
	for i, it := range inv.items {
		if strings.EqualFold(it.Name, name) {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return it, true
		}
	}
	return item.Item{}, false
}

// Items returns a copy of the held items.
func (inv *Inventory) Items() []item.Item {
	out := make([]item.Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Clone returns an independent copy.
func (inv *Inventory) Clone() *Inventory {
	return &Inventory{items: inv.Items()}
}

func (inv *Inventory) Names() []string {
	names := make([]string, 0, len(inv.items))
	for _, it := range inv.items {
		names = append(names, it.Name)
	}
	return names
}

func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Describe renders the inventory for the player.
func (inv *Inventory) Describe() string {
	if len(inv.items) == 0 {
		return "Your inventory is empty."
	}
	titleCaser := cases.Title(language.English)
	var b strings.Builder
	b.WriteString("You have:")
	for _, it := range inv.items {
		b.WriteString("\n- ")
		b.WriteString(titleCaser.String(it.Name))
	}
	return b.String()
}

// MarshalJSON writes the inventory as a plain array of items.
func (inv *Inventory) MarshalJSON() ([]byte, error) {
	if inv == nil || inv.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(inv.items)
}

// UnmarshalJSON accepts an array of items or null.
func (inv *Inventory) UnmarshalJSON(data []byte) error {
	var items []item.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("inventory: not an array of items: %w", err)
	}
	if items == nil {
		items = make([]item.Item, 0)
	}
	inv.items = items
	return nil
}
