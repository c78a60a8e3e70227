package inventory

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/jwebster45206/albert/pkg/item"
)

func TestInventory_InsertKeepsOrder(t *testing.T) {
	inv := New()
	inv.Insert(item.New("sausage", true, ""))
	inv.Insert(item.New("ham", true, ""))
	inv.Insert(item.New("ham", true, "a second ham"))

	want := []string{"sausage", "ham", "ham"}
	if got := inv.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if !inv.Contains("HAM") {
		t.Error("Contains should ignore case")
	}
	if inv.Contains("cutlet") {
		t.Error("Contains(cutlet) should be false")
	}
}

func TestInventory_Remove(t *testing.T) {
	inv := New()
	inv.Insert(item.New("ham", true, "first"))
	inv.Insert(item.New("cutlet", true, ""))
	inv.Insert(item.New("ham", true, "second"))

	it, ok := inv.Remove("ham")
	if !ok || it.Description != "first" {
		t.Fatalf("Remove(ham) = %+v, %v, want the first ham", it, ok)
	}
	if got := inv.Names(); !slices.Equal(got, []string{"cutlet", "ham"}) {
		t.Errorf("Names() after remove = %v", got)
	}

	if _, ok := inv.Remove("sausage"); ok {
		t.Error("Remove(sausage) should fail")
	}
	if inv.Len() != 2 {
		t.Errorf("Len() = %d, want 2", inv.Len())
	}
}

func TestInventory_CopiesAreIndependent(t *testing.T) {
	inv := New()
	inv.Insert(item.New("ham", true, ""))

	items := inv.Items()
	items[0].Name = "spam"

	clone := inv.Clone()
	clone.Insert(item.New("cutlet", true, ""))
	inv.Insert(item.New("sausage", true, ""))

	if got := inv.Names(); !slices.Equal(got, []string{"ham", "sausage"}) {
		t.Errorf("original Names() = %v", got)
	}
	if got := clone.Names(); !slices.Equal(got, []string{"ham", "cutlet"}) {
		t.Errorf("clone Names() = %v", got)
	}
}

func TestInventory_Describe(t *testing.T) {
	inv := New()
	if got := inv.Describe(); got != "Your inventory is empty." {
		t.Errorf("Describe() = %q", got)
	}

	inv.Insert(item.New("sausage", true, ""))
	inv.Insert(item.New("pork cutlet", true, ""))
	want := "You have:\n- Sausage\n- Pork Cutlet"
	if got := inv.Describe(); got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}

func TestInventory_JSON(t *testing.T) {
	inv := New()
	data, err := json.Marshal(inv)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("empty inventory = %s, want []", data)
	}

	inv.Insert(item.New("ham", true, ""))
	data, err = json.Marshal(inv)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if want := `[{"name":"ham","usable":true}]`; string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var loaded Inventory
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if !slices.Equal(loaded.Items(), inv.Items()) {
		t.Errorf("loaded %v, want %v", loaded.Items(), inv.Items())
	}

	if err := json.Unmarshal([]byte(`{"ham":1}`), &loaded); err == nil {
		t.Error("Expected error for a JSON object")
	}
}
