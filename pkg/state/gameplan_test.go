package state

import (
	"encoding/json"
	"maps"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/jwebster45206/albert/pkg/item"
)

func TestNewGamePlan(t *testing.T) {
	gp := NewGamePlan()

	if gp.ID == uuid.Nil {
		t.Error("Expected a game ID")
	}
	if gp.Inventory == nil || gp.Inventory.Len() != 0 {
		t.Errorf("Expected an empty inventory, got %v", gp.Inventory)
	}
	if gp.InDialogue() || gp.IsEnded {
		t.Error("New game should not be in dialogue or ended")
	}
	if gp.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
	if other := NewGamePlan(); other.ID == gp.ID {
		t.Error("Expected unique game IDs")
	}
}

func TestGamePlan_SetCurrentSpeaker(t *testing.T) {
	gp := NewGamePlan()

	gp.SetCurrentSpeaker("cashier")
	if !gp.InDialogue() || gp.CurrentSpeaker() != "cashier" {
		t.Errorf("Expected dialogue with cashier, got %q", gp.CurrentSpeaker())
	}

	gp.SetCurrentSpeaker("")
	if gp.InDialogue() || gp.CurrentSpeaker() != "" {
		t.Errorf("Expected no dialogue, got %q", gp.CurrentSpeaker())
	}
}

func TestGamePlan_Clone(t *testing.T) {
	gp := NewGamePlan()
	gp.SetCurrentSpeaker("cashier")
	gp.Inventory.Insert(item.New("ham", true, ""))
	gp.Offers = map[string]map[string]string{"cashier": {"a": "Buy sausage"}}

	clone := gp.Clone()
	clone.SetCurrentSpeaker("")
	clone.Inventory.Insert(item.New("cutlet", true, ""))
	clone.Offers["cashier"]["z"] = "Buy zeppelin"
	clone.Offers["baker"] = map[string]string{}

	if clone.ID != gp.ID {
		t.Errorf("clone ID = %v, want %v", clone.ID, gp.ID)
	}
	if gp.CurrentSpeaker() != "cashier" {
		t.Errorf("original speaker changed to %q", gp.CurrentSpeaker())
	}
	if got := gp.Inventory.Names(); !slices.Equal(got, []string{"ham"}) {
		t.Errorf("original inventory changed to %v", got)
	}
	if len(gp.Offers) != 1 || !maps.Equal(gp.Offers["cashier"], map[string]string{"a": "Buy sausage"}) {
		t.Errorf("original offers changed to %v", gp.Offers)
	}
}

func TestGamePlan_JSON(t *testing.T) {
	gp := NewGamePlan()
	gp.SetCurrentSpeaker("cashier")
	gp.Inventory.Insert(item.New("ham", true, ""))
	gp.Offers = map[string]map[string]string{
		"cashier": {"a": "Buy sausage"},
	}

	data, err := json.Marshal(gp)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var loaded GamePlan
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if loaded.ID != gp.ID || loaded.CurrentSpeaker() != "cashier" {
		t.Errorf("loaded id %v speaker %q", loaded.ID, loaded.CurrentSpeaker())
	}
	if got := loaded.Inventory.Names(); !slices.Equal(got, []string{"ham"}) {
		t.Errorf("loaded inventory %v", got)
	}
	if !maps.Equal(loaded.Offers["cashier"], gp.Offers["cashier"]) {
		t.Errorf("loaded offers %v", loaded.Offers)
	}
}
