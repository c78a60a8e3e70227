package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/albert/internal/logger"
	"github.com/jwebster45206/albert/internal/storage"
	"github.com/jwebster45206/albert/pkg/game"
	"github.com/muesli/reflow/wordwrap"
)

const (
	NarratorName    = "Narrator"
	PlaceHolderText = "Type a command, or a letter to answer..."
	saveTimeout     = 10 * time.Second
)

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	game    *game.Game
	storage storage.Storage
	logger  *slog.Logger

	chatViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int

	transcript []entry
	lastReply  string
	status     string
}

type entry struct {
	player bool
	text   string
}

type savedMsg struct {
	err error
}

var (
	chatPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	speakerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

func NewConsoleUI(g *game.Game, sto storage.Storage, log *slog.Logger) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	chatVp := viewport.New(50, 20)
	chatVp.MouseWheelEnabled = true

	return ConsoleUI{
		game:         g,
		storage:      sto,
		logger:       log,
		textarea:     ta,
		chatViewport: chatVp,
		metaViewport: viewport.New(20, 20),
		transcript: []entry{
			{text: "Welcome to the Albert supermarket. Type \"help\" for commands."},
		},
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		chatWidth := int(float64(m.width)*0.7) - 4
		metaWidth := m.width - chatWidth - 6

		m.chatViewport.Width = chatWidth - 2
		m.chatViewport.Height = m.height - 5
		m.metaViewport.Width = metaWidth
		m.metaViewport.Height = m.height - 2
		m.textarea.SetWidth(chatWidth - 4)
		m.ready = true
		m.refresh()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlY:
			m.copyLastReply()
			m.refresh()
			return m, nil
		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if input == "" {
				return m, nil
			}
			cmd := m.submit(input)
			m.refresh()
			return m, cmd
		}

	case savedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render("Save failed: " + msg.err.Error())
		} else {
			m.status = "Game saved. Resume with RESUME_GAME_ID=" + m.game.ID().String()
		}
		m.refresh()
		return m, nil
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.chatViewport, vpCmd = m.chatViewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

// submit handles one line from the player and returns any follow-up command.
func (m *ConsoleUI) submit(input string) tea.Cmd {
	m.status = ""
	if strings.HasPrefix(input, "/") {
		return m.handleCommand(input)
	}

	m.transcript = append(m.transcript, entry{player: true, text: input})
	reply := m.game.Process(input)
	m.transcript = append(m.transcript, entry{text: reply})
	m.lastReply = reply

	if m.game.IsEnded() {
		m.status = "Press Esc to leave, or /save first."
	}
	return nil
}

func (m *ConsoleUI) handleCommand(input string) tea.Cmd {
	switch strings.ToLower(input) {
	case "/save":
		return m.saveGame()
	case "/help":
		m.transcript = append(m.transcript, entry{text: "/save - Save the game\n/help - Show this help\nCtrl+Y - Copy the last reply\nEsc - Quit"})
	default:
		m.status = errorStyle.Render("Unknown command: " + input)
	}
	return nil
}

// saveGame snapshots the plan now, on the UI goroutine. The returned command
// only touches the snapshot.
func (m ConsoleUI) saveGame() tea.Cmd {
	plan := m.game.Snapshot()
	sto := m.storage
	log := logger.WithGameID(m.logger, plan.ID)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		err := sto.SaveGamePlan(ctx, plan.ID, plan)
		if err != nil {
			logger.WithError(log, err).Error("Failed to save game")
		}
		return savedMsg{err: err}
	}
}

func (m *ConsoleUI) copyLastReply() {
	if m.lastReply == "" {
		m.status = "Nothing to copy yet."
		return
	}
	if err := clipboard.WriteAll(m.lastReply); err != nil {
		logger.WithError(m.logger, err).Warn("Clipboard unavailable")
		m.status = errorStyle.Render("Clipboard unavailable")
		return
	}
	m.status = "Copied last reply."
}

// refresh rebuilds both panels for the current width.
func (m *ConsoleUI) refresh() {
	m.chatViewport.SetContent(m.renderTranscript())
	m.chatViewport.GotoBottom()
	m.metaViewport.SetContent(m.renderMetadata())
}

func (m ConsoleUI) renderTranscript() string {
	width := m.chatViewport.Width - 4
	if width < 20 {
		width = 20
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("ALBERT") + "\n\n")
	for _, e := range m.transcript {
		if e.player {
			content.WriteString(userStyle.Render("You: ") + wordwrap.String(e.text, width) + "\n\n")
			continue
		}
		content.WriteString(formatReply(e.text, width) + "\n\n")
	}
	return content.String()
}

func (m ConsoleUI) renderMetadata() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("GAME") + "\n\n")
	content.WriteString("Game ID:\n")
	content.WriteString(m.game.ID().String()[:8] + "...\n\n")

	content.WriteString("Talking to:\n")
	if speaker := m.game.CurrentSpeaker(); speaker != "" {
		content.WriteString(speaker + "\n\n")
	} else {
		content.WriteString("nobody\n\n")
	}

	content.WriteString("Inventory:\n")
	names := m.game.InventoryNames()
	if len(names) == 0 {
		content.WriteString("empty\n")
	}
	for _, name := range names {
		content.WriteString(fmt.Sprintf("• %s\n", name))
	}
	return content.String()
}

// formatReply wraps a reply and highlights "Speaker:" prefixes. Replies
// without a speaker are attributed to the narrator.
func formatReply(reply string, width int) string {
	wrapped := wordwrap.String(reply, width)
	lines := strings.Split(wrapped, "\n")
	hasSpeaker := false

	for i, line := range lines {
		if idx := strings.Index(line, ":"); idx > 0 && idx <= 20 {
			speaker := line[:idx]
			if len(strings.Fields(speaker)) == 1 && strings.TrimSpace(speaker) == speaker {
				lines[i] = speakerStyle.Render(speaker+":") + line[idx+1:]
				if i == 0 {
					hasSpeaker = true
				}
			}
		}
	}

	result := strings.Join(lines, "\n")
	if !hasSpeaker {
		result = narratorStyle.Render(NarratorName+": ") + result
	}
	return result
}

func (m ConsoleUI) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	chatWidth := int(float64(m.width)*0.7) - 4
	metaWidth := m.width - chatWidth - 6

	chatPanel := chatPanelStyle.Width(chatWidth).Height(m.height - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.chatViewport.View(),
			separatorStyle.Render(strings.Repeat("─", max(chatWidth-4, 1))),
			m.textarea.View(),
			m.status,
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, chatPanel, metaPanel)
}
