package character

import (
	"sort"
	"strings"

	"github.com/jwebster45206/albert/pkg/item"
)

// DialogueEnded is appended to every reply that closes a conversation.
const DialogueEnded = "The dialogue was ended."

// Character is anyone the player can talk to.
type Character interface {
	// Respond answers one line of player input during a conversation.
	Respond(line string) string
	// Greeting is shown when the player starts talking to the character.
	Greeting() string
	Name() string
	Description() string
	// Offers returns the response options currently available to the player,
	// keyed by the command that selects them.
	Offers() map[string]string
}

// ItemInserter receives items handed to the player.
type ItemInserter interface {
	Insert(it item.Item)
}

// SpeakerSetter tracks who the player is talking to. An empty name means nobody.
type SpeakerSetter interface {
	SetCurrentSpeaker(name string)
}

// endDialogue appends the closing line to a reply.
func endDialogue(reply string) string {
	return reply + "\n" + DialogueEnded
}

// renderOffers lists offers one per line as "<key>. <label>", ordered by key.
func renderOffers(offers map[string]string) string {
	keys := make([]string, 0, len(offers))
	for k := range offers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k + ". " + offers[k] + "\n")
	}
	return b.String()
}
