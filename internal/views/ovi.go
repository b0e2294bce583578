package views

import (
	"context"
	"fmt"
	"io"
)

const (
	ovechkinPlayerID = 8471214
	gretzkyGoals     = 894
)

// Ovi reports how many goals Ovechkin needs to pass Gretzky's career
// record.
type Ovi struct {
	Provider PlayerProvider
	Out      io.Writer
}

// Render fetches Ovechkin's landing page and prints the chase line.
func (v *Ovi) Render(ctx context.Context) error {
	out := resolveOut(v.Out)

	profile, err := v.Provider.PlayerLanding(ctx, ovechkinPlayerID)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("Ovi has %d goals and needs %d more to beat Gretzky's record of %d.",
		profile.CareerGoals, gretzkyGoals-profile.CareerGoals, gretzkyGoals)
	fmt.Fprintf(out, "\n%s\n\n", winnerStyle.Sprint(msg))
	return nil
}
