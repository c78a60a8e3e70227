package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/albert/internal/config"
	"github.com/jwebster45206/albert/internal/storage"
	"github.com/jwebster45206/albert/pkg/game"
	"github.com/jwebster45206/albert/pkg/item"
	"github.com/jwebster45206/albert/pkg/state"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <savegame.json | game-id>\n", os.Args[0])
		os.Exit(1)
	}

	arg := os.Args[1]
	validator := &SaveValidator{}

	var err error
	if id, parseErr := uuid.Parse(arg); parseErr == nil {
		err = validator.validateStored(config.Load(), id)
	} else {
		err = validator.validateFile(arg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Saved game is valid!")
}

// SaveValidator checks that a saved game plan can be resumed.
type SaveValidator struct {
	errors []string
}

func (v *SaveValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	if !strings.HasSuffix(filename, ".json") {
		return fmt.Errorf("saved game file must have .json extension: %s", filename)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return v.validateData(filename, data)
}

func (v *SaveValidator) validateStored(cfg *config.Config, id uuid.UUID) error {
	if cfg.RedisURL == "" {
		return fmt.Errorf("REDIS_URL must be set to validate a stored game")
	}
	fmt.Printf("Validating stored game %s...\n", id)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sto, err := storage.NewRedisStorage(cfg.RedisURL, cfg.SessionTTL, logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = sto.Close() // Ignore error in defer
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	gp, err := sto.LoadGamePlan(ctx, id)
	if err != nil {
		return err
	}
	if gp == nil {
		return fmt.Errorf("no saved game with id %s", id)
	}

	data, err := json.Marshal(gp)
	if err != nil {
		return fmt.Errorf("failed to marshal game %s: %w", id, err)
	}
	return v.validateData(id.String(), data)
}

func (v *SaveValidator) validateData(source string, data []byte) error {
	v.errors = nil

	if !json.Valid(data) {
		return fmt.Errorf("%s contains invalid JSON", source)
	}

	var gp state.GamePlan
	if err := decodeStrict(data, &gp); err != nil {
		return fmt.Errorf("%s failed strict JSON unmarshaling: %w", source, err)
	}

	// The inventory decodes itself, so its items are checked separately.
	var raw struct {
		Inventory json.RawMessage `json:"inventory"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%s failed to read inventory: %w", source, err)
	}
	if len(raw.Inventory) > 0 && string(raw.Inventory) != "null" {
		var items []item.Item
		if err := decodeStrict(raw.Inventory, &items); err != nil {
			return fmt.Errorf("%s inventory failed strict JSON unmarshaling: %w", source, err)
		}
	}

	v.validatePlan(&gp)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", source, strings.Join(v.errors, "\n"))
	}
	return nil
}

func decodeStrict(data []byte, dst any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// seller is a character whose offers hand out items.
type seller interface {
	Sells(command string) (string, bool)
}

func (v *SaveValidator) validatePlan(gp *state.GamePlan) {
	if gp.ID == uuid.Nil {
		v.addError("game id is missing")
	}

	if gp.Inventory != nil {
		for i, it := range gp.Inventory.Items() {
			if strings.TrimSpace(it.Name) == "" {
				v.addError(fmt.Sprintf("inventory item %d has no name", i))
			}
		}
	}

	// A fresh game shows what every character starts with. Saved offers may
	// only be a subset of that.
	fresh := game.New(state.NewGamePlan(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	if gp.Speaker != "" {
		if _, ok := fresh.Character(gp.Speaker); !ok {
			v.addError(fmt.Sprintf("current speaker '%s' is not a character", gp.Speaker))
		}
	}

	for name, offers := range gp.Offers {
		ch, ok := fresh.Character(name)
		if !ok {
			v.addError(fmt.Sprintf("offers saved for unknown character '%s'", name))
			continue
		}
		full := ch.Offers()
		for key, label := range offers {
			want, known := full[key]
			switch {
			case !known:
				v.addError(fmt.Sprintf("%s offer '%s' does not exist", name, key))
			case want != label:
				v.addError(fmt.Sprintf("%s offer '%s' is labelled '%s', expected '%s'", name, key, label, want))
			}
		}
	}

	// Goods still on offer must not already be in the inventory, or the
	// resumed game would sell them twice. Characters without saved offers
	// resume with their full stock.
	if gp.Inventory == nil {
		return
	}
	for _, ch := range fresh.Characters() {
		s, ok := ch.(seller)
		if !ok {
			continue
		}
		remaining, saved := gp.Offers[ch.Name()]
		if !saved {
			remaining = ch.Offers()
		}
		for _, key := range slices.Sorted(maps.Keys(remaining)) {
			itemName, sells := s.Sells(key)
			if sells && gp.Inventory.Contains(itemName) {
				v.addError(fmt.Sprintf("%s still offers '%s' but the inventory already holds %s", ch.Name(), key, itemName))
			}
		}
	}
}

func (v *SaveValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}
