package state

import (
	"maps"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/albert/pkg/inventory"
)

// GamePlan is the state of one play session.
type GamePlan struct {
	ID uuid.UUID `json:"id"` // Unique ID per session

	// Speaker is the name of the character the player is talking to.
	// Empty when no conversation is active.
	Speaker   string               `json:"current_speaker,omitempty"`
	Inventory *inventory.Inventory `json:"inventory"`

	// Offers holds each character's remaining offers, keyed by character name.
	// It is only written when the session is saved.
	Offers map[string]map[string]string `json:"offers,omitempty"`

	IsEnded   bool      `json:"is_ended"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewGamePlan() *GamePlan {
	now := time.Now()
	return &GamePlan{
		ID:        uuid.New(),
		Inventory: inventory.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetCurrentSpeaker starts a conversation with name, or ends it when name is empty.
func (gp *GamePlan) SetCurrentSpeaker(name string) {
	gp.Speaker = name
}

func (gp *GamePlan) CurrentSpeaker() string {
	return gp.Speaker
}

// InDialogue reports whether the player is talking to someone.
func (gp *GamePlan) InDialogue() bool {
	return gp.Speaker != ""
}

// Clone returns a deep copy that shares nothing with gp.
func (gp *GamePlan) Clone() *GamePlan {
	out := *gp
	if gp.Inventory != nil {
		out.Inventory = gp.Inventory.Clone()
	}
	if gp.Offers != nil {
		out.Offers = make(map[string]map[string]string, len(gp.Offers))
		for name, offers := range gp.Offers {
			out.Offers[name] = maps.Clone(offers)
		}
	}
	return &out
}
