package dispatch

import (
	"github.com/gen2brain/beeep"

	"github.com/virtray/virtray/internal/logger"
)

// DesktopNotifier surfaces outcomes as desktop notifications.
type DesktopNotifier struct{}

var _ Notifier = DesktopNotifier{}

// Notify sends a notification; failures only get logged — the outcome is
// already in the dispatch result.
func (DesktopNotifier) Notify(title, message string) {
	if err := beeep.Notify("virtray: "+title, message, ""); err != nil {
		logger.WithError(err).Debugf("desktop notification failed")
	}
}
