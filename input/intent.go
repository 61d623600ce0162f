package input

import "github.com/lixenwraith/term-snake/core"

// CommandKind discriminates the actions a key can request
type CommandKind uint8

const (
	CommandNone    CommandKind = iota // No key buffered
	CommandHeading                    // Steer the snake
	CommandQuit                       // End the round, or leave from a menu
	CommandRestart                    // Start a fresh round from the game-over screen
	CommandOther                      // A key with no gameplay meaning
)

// Command is the decoded form of one keypress
// Heading is set only for CommandHeading
type Command struct {
	Kind    CommandKind
	Heading core.Heading

	// Abort marks an interrupt (Ctrl+C) that leaves the program from any state
	Abort bool
}

// Predefined commands
var (
	None    = Command{Kind: CommandNone}
	Quit    = Command{Kind: CommandQuit}
	Abort   = Command{Kind: CommandQuit, Abort: true}
	Restart = Command{Kind: CommandRestart}
	Other   = Command{Kind: CommandOther}
)

// Steer returns a heading command
func Steer(h core.Heading) Command {
	return Command{Kind: CommandHeading, Heading: h}
}

// IsKey reports whether a key was pressed at all
func (c Command) IsKey() bool {
	return c.Kind != CommandNone
}
