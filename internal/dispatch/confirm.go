package dispatch

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
)

// DialogConfirmer asks the operator through desktop dialogs.
type DialogConfirmer struct{}

var _ Confirmer = DialogConfirmer{}

// Confirm shows a yes/no question dialog.
func (DialogConfirmer) Confirm(title, question string) bool {
	err := zenity.Question(question,
		zenity.Title(title),
		zenity.OKLabel("Yes"),
		zenity.CancelLabel("Cancel"),
		zenity.QuestionIcon,
	)
	return err == nil
}

// ConfirmStop shows the three-way stop dialog: graceful shutdown, forced
// power-off, or cancel.
func (DialogConfirmer) ConfirmStop(vm string) StopChoice {
	err := zenity.Question(
		fmt.Sprintf("Stop '%s'?", vm),
		zenity.Title("Stop VM"),
		zenity.OKLabel("Shut down"),
		zenity.ExtraButton("Power off"),
		zenity.CancelLabel("Cancel"),
		zenity.QuestionIcon,
	)
	switch {
	case err == nil:
		return StopGraceful
	case errors.Is(err, zenity.ErrExtraButton):
		return StopForce
	default:
		return StopCancel
	}
}
