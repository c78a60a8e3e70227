package game

import (
	"strings"
)

type CommandType string

const (
	CmdLook      CommandType = "look"
	CmdInventory CommandType = "inventory"
	CmdTalk      CommandType = "talk"
	CmdHelp      CommandType = "help"
	CmdQuit      CommandType = "quit"
	CmdNone      CommandType = "" // No command, used for fallback
)

var knownCommands = map[string]CommandType{
	"look":      CmdLook,
	"l":         CmdLook,
	"inventory": CmdInventory,
	"i":         CmdInventory,
	"talk":      CmdTalk,
	"speak":     CmdTalk,
	"t":         CmdTalk,
	"help":      CmdHelp,
	"h":         CmdHelp,
	"quit":      CmdQuit,
	"q":         CmdQuit,
}

// parseCommand splits input into a command and its argument.
// Unrecognized input returns CmdNone.
func parseCommand(input string) (CommandType, string) {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return CmdNone, ""
	}
	cmd, ok := knownCommands[fields[0]]
	if !ok {
		return CmdNone, ""
	}
	return cmd, strings.Join(fields[1:], " ")
}

const helpText = `Commands:
- look (l): look around
- inventory (i): show what you carry
- talk <name> (t): start a conversation
- help (h): show this help
- quit (q): end the game`
