package commands

import (
	"fmt"

	"git.home.luguber.info/inful/staticbridge/internal/attach"
	"git.home.luguber.info/inful/staticbridge/internal/errors"
)

// AttachCmd implements the 'attach' command.
type AttachCmd struct {
	Theme   string          `arg:"" help:"Active theme name."`
	Enabled map[string]bool `help:"Theme allow-list as theme=true pairs; omit entirely for no policy." mapsep:","`
}

func (a *AttachCmd) Run(_ *Global, _ *CLI) error {
	result := attach.ShouldAttach(a.Theme, a.Enabled)
	fmt.Println(result)

	if result == attach.NoPolicyConfigured {
		// Recoverable: surfaced to the user, nothing attached, exit zero.
		fmt.Println(errors.NoThemePolicy().Message)
	}
	return nil
}
