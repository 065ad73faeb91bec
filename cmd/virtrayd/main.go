// Package main is the entry point for the virtrayd tray daemon.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/virtray/virtray/internal/app"
	"github.com/virtray/virtray/internal/autostart"
	"github.com/virtray/virtray/internal/buildinfo"
	"github.com/virtray/virtray/internal/config"
	"github.com/virtray/virtray/internal/dispatch"
	"github.com/virtray/virtray/internal/host"
	"github.com/virtray/virtray/internal/logger"
	"github.com/virtray/virtray/internal/models"
	"github.com/virtray/virtray/internal/snapshot"
	"github.com/virtray/virtray/internal/tray"
	"github.com/virtray/virtray/internal/updater"
)

// autostartEntry is the XDG autostart entry name shared with the CLI.
const autostartEntry = "virtrayd"

func main() {
	// Parse flags
	foreground := flag.Bool("foreground", false, "Run without the system tray (for development)")
	interval := flag.Int("interval", 0, "Poll interval in seconds (overrides settings)")
	filter := flag.String("filter", "", "VM name glob (overrides settings)")
	socket := flag.String("socket", "", "Libvirt socket path (overrides settings)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Print version and exit")
	installAS := flag.Bool("install-autostart", false, "Install the session autostart entry and exit")
	uninstallAS := flag.Bool("uninstall-autostart", false, "Remove the session autostart entry and exit")
	flag.Parse()

	logger.Init(*debug)

	if *showVersion {
		fmt.Printf("virtrayd %s (%s, %s)\n", buildinfo.Version, buildinfo.CommitHash, buildinfo.BuildDate)
		return
	}

	// One-shot autostart management
	if *installAS {
		exec, err := os.Executable()
		if err != nil {
			logger.Fatalf("Failed to resolve executable path: %v", err)
		}
		if err := autostart.Install(autostartEntry, exec); err != nil {
			logger.Fatalf("Failed to install autostart entry: %v", err)
		}
		fmt.Println("Autostart entry installed.")
		return
	}
	if *uninstallAS {
		if err := autostart.Uninstall(autostartEntry); err != nil {
			logger.Fatalf("Failed to remove autostart entry: %v", err)
		}
		fmt.Println("Autostart entry removed.")
		return
	}

	// Ensure global directory exists
	if err := config.EnsureGlobalDir(); err != nil {
		logger.Fatalf("Failed to create global directory: %v", err)
	}

	// Refuse to run twice
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		logger.Fatalf("Failed to check daemon status: %v", err)
	}
	if running {
		logger.Fatalf("virtrayd already running (PID %d)", info.PID)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		logger.Fatalf("Failed to load settings: %v", err)
	}
	if *interval > 0 {
		settings.PollIntervalSeconds = *interval
	}
	if *filter != "" {
		settings.VMFilter = *filter
	}
	if *socket != "" {
		settings.LibvirtSocket = *socket
	}

	builder, err := snapshot.NewBuilder(settings.VMFilter)
	if err != nil {
		logger.Fatalf("Invalid VM filter: %v", err)
	}

	client, err := host.Connect(settings.LibvirtSocket, 0)
	if err != nil {
		logger.Fatalf("Failed to connect to libvirt: %v", err)
	}

	loop := app.New(client, builder, time.Duration(settings.PollIntervalSeconds)*time.Second)
	dispatcher := dispatch.New(
		client,
		dispatch.DialogConfirmer{},
		dispatch.DesktopNotifier{},
		func() bool { return host.Elevated(client.SocketPath()) },
		host.LaunchViewer,
		config.ScreenshotsDir(),
	)

	state := &appState{loop: loop, dispatcher: dispatcher}

	if err := config.SaveDaemonInfo(models.NewDaemonInfo(os.Getpid(), buildinfo.Version)); err != nil {
		logger.Fatalf("Failed to write daemon info: %v", err)
	}

	logger.WithField("filter", settings.VMFilter).
		Infof("virtrayd %s starting, polling every %ds", buildinfo.Version, settings.PollIntervalSeconds)

	go notifyOnUpdate()

	if *foreground {
		runForeground(loop, client)
	} else {
		runWithTray(state, loop, client)
	}
}

// runForeground runs the poll loop without a system tray, blocking on
// signals. Snapshots go to the log instead of a menu.
func runForeground(loop *app.Loop, client *host.Client) {
	loop.OnSnapshot(func(snap *snapshot.Snapshot) {
		if snap.Failed() {
			logger.Errorf("poll failed: %s", snap.Err)
			return
		}
		logger.Infof("%d VMs, %d running", len(snap.VMs), snap.Running())
	})

	go loop.Run()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Infof("Received signal %v, shutting down...", sig)

	shutdown(loop, client)
}

// runWithTray runs the poll loop behind a system tray icon on the main
// goroutine. systray.Run must occupy the main goroutine on macOS (Cocoa
// requirement).
func runWithTray(state *appState, loop *app.Loop, client *host.Client) {
	// Registered before Run; invoked on the loop goroutine. The systray
	// setters are safe to call from there.
	loop.OnSnapshot(tray.Apply)

	onStart := func() {
		go loop.Run()

		// Handle OS signals — quit tray on SIGINT/SIGTERM
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			logger.Infof("Received signal %v, shutting down...", sig)
			tray.Quit()
		}()
	}

	onExit := func() {
		shutdown(loop, client)
	}

	// This blocks the main goroutine until the tray exits.
	tray.Run(state, onStart, onExit)
}

// shutdown stops polling, disconnects from libvirt, and clears the
// running-instance record.
func shutdown(loop *app.Loop, client *host.Client) {
	loop.Stop()
	if err := client.Close(); err != nil {
		logger.WithError(err).Warnf("libvirt disconnect failed")
	}
	if err := config.RemoveDaemonInfo(); err != nil {
		logger.WithError(err).Warnf("failed to remove daemon info")
	}
	fmt.Println("Daemon stopped")
}

// notifyOnUpdate checks GitHub Releases once at startup and surfaces a
// notification when a newer version exists. Failures are only logged; the
// check is best effort.
func notifyOnUpdate() {
	result, err := updater.CheckForUpdate()
	if err != nil {
		logger.WithError(err).Debugf("update check failed")
		return
	}
	if result.Available {
		dispatch.DesktopNotifier{}.Notify("Update available",
			fmt.Sprintf("virtray %s is available (running %s). Run 'virtray update'.",
				result.LatestVersion, result.CurrentVersion))
	}
}

// appState connects tray clicks to the poll loop and the dispatcher.
type appState struct {
	loop       *app.Loop
	dispatcher *dispatch.Dispatcher
}

func (s *appState) RefreshNow() {
	s.loop.RefreshNow()
}

// RequestAction runs the dispatch off the click handler goroutine: the
// confirmation dialog can stay open for a while and must not stall other
// menu clicks.
func (s *appState) RequestAction(vm string, action dispatch.Action) {
	go func() {
		res := s.dispatcher.Dispatch(dispatch.Request{VM: vm, Action: action})
		if res.NeedsRefresh() {
			s.loop.RefreshNow()
		}
	}()
}

func (s *appState) InstallAutostart() error {
	exec, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve executable path: %w", err)
	}
	if err := autostart.Install(autostartEntry, exec); err != nil {
		logger.WithError(err).Errorf("autostart install failed")
		return err
	}
	logger.Infof("autostart entry installed")
	return nil
}

func (s *appState) UninstallAutostart() error {
	if err := autostart.Uninstall(autostartEntry); err != nil {
		logger.WithError(err).Errorf("autostart removal failed")
		return err
	}
	logger.Infof("autostart entry removed")
	return nil
}

func (s *appState) OpenManager() error {
	if err := host.LaunchManager(); err != nil {
		logger.WithError(err).Errorf("failed to open manager")
		return err
	}
	return nil
}

func (s *appState) RequestShutdown() {
	tray.Quit()
}
