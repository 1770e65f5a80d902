// Where: internal/app/interaction.go
// What: TTY detection and interactive prompts using the huh library.
// Why: Keep command handlers focused on orchestration.
package app

import (
	"os"

	"github.com/charmbracelet/huh"
)

// Prompter defines the interactive inputs commands may ask for.
type Prompter interface {
	Input(title, placeholder string) (string, error)
	Confirm(title string) (bool, error)
}

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title, placeholder string) (string, error) {
	var input string
	err := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&input).
		Run()
	if err != nil {
		return "", err
	}
	return input, nil
}

func (p HuhPrompter) Confirm(title string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}

var isTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
