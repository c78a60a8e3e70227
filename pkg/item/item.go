package item

// Item is something the player can carry.
type Item struct {
	Name        string `json:"name"`
	Usable      bool   `json:"usable"`                // whether the player can use or eat it
	Description string `json:"description,omitempty"` // empty for shop goods
}

// New creates an item value.
func New(name string, usable bool, description string) Item {
	return Item{
		Name:        name,
		Usable:      usable,
		Description: description,
	}
}
