// Package tray implements the system tray icon and menu.
package tray

import "github.com/virtray/virtray/internal/dispatch"

// AppState is what the tray needs from the application: action dispatch
// and a handful of top-level operations. All methods may be called from
// tray click handlers.
type AppState interface {
	// RefreshNow queues an immediate out-of-cycle poll.
	RefreshNow()
	// RequestAction dispatches a control action against a named VM.
	RequestAction(vm string, action dispatch.Action)
	// InstallAutostart registers the app to start with the session.
	InstallAutostart() error
	// UninstallAutostart removes the autostart registration.
	UninstallAutostart() error
	// OpenManager launches the host's management GUI.
	OpenManager() error
	// RequestShutdown exits the application.
	RequestShutdown()
}
