package game

import (
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/jwebster45206/albert/internal/logger"
	"github.com/jwebster45206/albert/pkg/character"
	"github.com/jwebster45206/albert/pkg/inventory"
	"github.com/jwebster45206/albert/pkg/state"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	sceneDescription = "You are standing in the Albert supermarket."
	notUnderstood    = `I don't understand that. Type "help" for commands.`
	gameOver         = "The game has ended."
)

// offerRetainer is implemented by characters whose offers can be restored
// from a saved game.
type offerRetainer interface {
	RetainOffers(keys []string)
}

// Game routes player input to commands or to the character being talked to.
type Game struct {
	plan       *state.GamePlan
	characters map[string]character.Character
	logger     *slog.Logger
}

// New builds the cast around plan. Offers saved in plan are applied to the
// matching characters.
func New(plan *state.GamePlan, log *slog.Logger) *Game {
	if plan.Inventory == nil {
		plan.Inventory = inventory.New()
	}
	if log == nil {
		log = slog.Default()
	}

	g := &Game{
		plan:       plan,
		characters: make(map[string]character.Character),
		logger:     logger.WithGameID(log, plan.ID),
	}
	g.add(character.NewCashier(plan.Inventory, plan))

	for name, offers := range plan.Offers {
		ch, ok := g.characters[name]
		if !ok {
			g.logger.Warn("Saved offers for unknown character", "character", name)
			continue
		}
		if r, ok := ch.(offerRetainer); ok {
			r.RetainOffers(slices.Collect(maps.Keys(offers)))
		}
	}

	if _, ok := g.characters[plan.Speaker]; plan.Speaker != "" && !ok {
		g.logger.Warn("Saved speaker is not in the game", "speaker", plan.Speaker)
		plan.SetCurrentSpeaker("")
	}
	return g
}

func (g *Game) add(ch character.Character) {
	g.characters[ch.Name()] = ch
}

// Character returns the character with the given name.
func (g *Game) Character(name string) (character.Character, bool) {
	ch, ok := g.characters[strings.ToLower(name)]
	return ch, ok
}

// Characters returns the cast ordered by name.
func (g *Game) Characters() []character.Character {
	out := make([]character.Character, 0, len(g.characters))
	for _, name := range slices.Sorted(maps.Keys(g.characters)) {
		out = append(out, g.characters[name])
	}
	return out
}

// Process handles one line of player input and returns the text to show.
func (g *Game) Process(line string) string {
	line = strings.TrimSpace(line)

	if g.plan.IsEnded {
		return gameOver
	}

	if g.plan.InDialogue() {
		speaker := g.plan.CurrentSpeaker()
		ch, ok := g.characters[speaker]
		if ok {
			g.logger.Debug("Routing input to speaker", "speaker", speaker, "input", line)
			return ch.Respond(line)
		}
		g.plan.SetCurrentSpeaker("")
	}

	cmd, arg := parseCommand(line)
	g.logger.Debug("Handling command", "command", cmd, "arg", arg)

	switch cmd {
	case CmdLook:
		return g.describeScene()
	case CmdInventory:
		return g.plan.Inventory.Describe()
	case CmdTalk:
		return g.talk(arg)
	case CmdHelp:
		return helpText
	case CmdQuit:
		g.plan.IsEnded = true
		return gameOver
	default:
		return notUnderstood
	}
}

func (g *Game) talk(name string) string {
	if name == "" {
		return "Talk to whom?"
	}
	ch, ok := g.Character(name)
	if !ok {
		return "There is no " + name + " here."
	}
	g.plan.SetCurrentSpeaker(ch.Name())
	return ch.Greeting()
}

func (g *Game) describeScene() string {
	titleCaser := cases.Title(language.English)
	var b strings.Builder
	b.WriteString(sceneDescription)
	for _, ch := range g.Characters() {
		b.WriteString("\n" + titleCaser.String(ch.Name()) + ": " + ch.Description())
	}
	return b.String()
}

// Snapshot returns a copy of the game plan with every character's remaining
// offers recorded, ready to be saved. The live plan is not modified.
func (g *Game) Snapshot() *state.GamePlan {
	snap := g.plan.Clone()
	snap.Offers = make(map[string]map[string]string, len(g.characters))
	for name, ch := range g.characters {
		snap.Offers[name] = ch.Offers()
	}
	return snap
}

func (g *Game) ID() uuid.UUID {
	return g.plan.ID
}

func (g *Game) CurrentSpeaker() string {
	return g.plan.CurrentSpeaker()
}

func (g *Game) InventoryNames() []string {
	return g.plan.Inventory.Names()
}

func (g *Game) IsEnded() bool {
	return g.plan.IsEnded
}
