// Package dispatch executes operator-requested control actions against a
// single VM, applying privilege checks and confirmation gates.
package dispatch

import (
	"fmt"

	"github.com/virtray/virtray/internal/logger"
)

// Action is one of the eight control actions an operator can request.
type Action int

const (
	ActionStart Action = iota
	ActionStop
	ActionRestart
	ActionSave
	ActionPause
	ActionResume
	ActionConnect
	ActionScreenshot
)

// String returns the operator-facing action name.
func (a Action) String() string {
	switch a {
	case ActionStart:
		return "Start"
	case ActionStop:
		return "Stop"
	case ActionRestart:
		return "Restart"
	case ActionSave:
		return "Save"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	case ActionConnect:
		return "Connect"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// Request is one user gesture: an action aimed at a named VM.
type Request struct {
	VM     string
	Action Action
}

// Outcome is the terminal state of a dispatch.
type Outcome int

const (
	// OutcomeDone means the host call was issued and succeeded.
	OutcomeDone Outcome = iota
	// OutcomeBlocked means the privilege check failed; no host call was made.
	OutcomeBlocked
	// OutcomeCancelled means the operator declined the confirmation.
	OutcomeCancelled
	// OutcomeFailed means the host call was issued and faulted.
	OutcomeFailed
)

// Result reports how a dispatch ended.
type Result struct {
	Request Request
	Outcome Outcome
	Message string
}

// NeedsRefresh reports whether a fresh poll should follow this result.
// Blocked and cancelled dispatches made no host call, so the displayed
// state is still accurate.
func (r Result) NeedsRefresh() bool {
	return r.Outcome == OutcomeDone || r.Outcome == OutcomeFailed
}

// StopChoice is the three-way answer to the stop confirmation.
type StopChoice int

const (
	StopCancel StopChoice = iota
	StopGraceful
	StopForce
)

// HostActions is the control surface the dispatcher drives.
// Satisfied by *host.Client.
type HostActions interface {
	Start(name string) error
	Shutdown(name string) error
	PowerOff(name string) error
	Restart(name string) error
	Save(name string) error
	Pause(name string) error
	Resume(name string) error
	Screenshot(name string) ([]byte, string, error)
}

// Confirmer asks the operator before destructive actions.
type Confirmer interface {
	// Confirm asks a yes/no question; true means proceed.
	Confirm(title, question string) bool
	// ConfirmStop asks the three-way stop question for the named VM.
	ConfirmStop(vm string) StopChoice
}

// Notifier surfaces dispatch outcomes to the operator.
type Notifier interface {
	Notify(title, message string)
}

// Dispatcher runs the Requested → PrivilegeCheck → Confirm → Execute →
// Reported pipeline. All host faults are caught and reported; a dispatch
// never propagates a failure to its caller.
type Dispatcher struct {
	host     HostActions
	confirm  Confirmer
	notify   Notifier
	elevated func() bool
	connect  func(name string) error
	shotDir  string
}

// New creates a dispatcher. elevated reports whether control calls are
// permitted; connect launches the console viewer; shotDir is where
// screenshots are written.
func New(host HostActions, confirm Confirmer, notify Notifier, elevated func() bool, connect func(string) error, shotDir string) *Dispatcher {
	return &Dispatcher{
		host:     host,
		confirm:  confirm,
		notify:   notify,
		elevated: elevated,
		connect:  connect,
		shotDir:  shotDir,
	}
}

// Dispatch executes one request end to end and returns the reported result.
func (d *Dispatcher) Dispatch(req Request) Result {
	logger.WithField("vm", req.VM).Debugf("dispatching %s", req.Action)

	if d.requiresElevation(req.Action) && !d.elevated() {
		return d.report(Result{
			Request: req,
			Outcome: OutcomeBlocked,
			Message: fmt.Sprintf("%s requires administrator privileges. Restart virtray elevated.", req.Action),
		})
	}

	switch req.Action {
	case ActionStop:
		return d.report(d.executeStop(req))
	case ActionRestart:
		if !d.confirm.Confirm("Restart VM", fmt.Sprintf("Restart '%s'? The VM will be forcibly reset.", req.VM)) {
			return d.report(cancelled(req))
		}
	case ActionSave:
		if !d.confirm.Confirm("Save VM", fmt.Sprintf("Save '%s' and stop it?", req.VM)) {
			return d.report(cancelled(req))
		}
	}

	return d.report(d.execute(req))
}

// requiresElevation: every control call against the hypervisor needs
// elevation, screenshots included. Connect only spawns a viewer process.
func (d *Dispatcher) requiresElevation(a Action) bool {
	return a != ActionConnect
}

// execute issues exactly one host call for the action kind.
func (d *Dispatcher) execute(req Request) Result {
	var err error
	var message string

	switch req.Action {
	case ActionStart:
		err = d.host.Start(req.VM)
	case ActionRestart:
		err = d.host.Restart(req.VM)
	case ActionSave:
		err = d.host.Save(req.VM)
	case ActionPause:
		err = d.host.Pause(req.VM)
	case ActionResume:
		err = d.host.Resume(req.VM)
	case ActionConnect:
		err = d.connect(req.VM)
	case ActionScreenshot:
		message, err = d.capture(req.VM)
	default:
		err = fmt.Errorf("unknown action %d", req.Action)
	}

	if err != nil {
		return Result{Request: req, Outcome: OutcomeFailed, Message: err.Error()}
	}
	if message == "" {
		message = fmt.Sprintf("%s '%s' succeeded", req.Action, req.VM)
	}
	return Result{Request: req, Outcome: OutcomeDone, Message: message}
}

// executeStop runs the three-way stop flow: graceful shutdown with forced
// power-off as fallback, forced power-off directly, or cancel.
func (d *Dispatcher) executeStop(req Request) Result {
	switch d.confirm.ConfirmStop(req.VM) {
	case StopCancel:
		return cancelled(req)

	case StopGraceful:
		if err := d.host.Shutdown(req.VM); err != nil {
			logger.WithError(err).Warnf("graceful shutdown of %s failed, forcing power off", req.VM)
			if ferr := d.host.PowerOff(req.VM); ferr != nil {
				return Result{
					Request: req,
					Outcome: OutcomeFailed,
					Message: fmt.Sprintf("shutdown failed (%v); forced power off also failed (%v)", err, ferr),
				}
			}
			return Result{
				Request: req,
				Outcome: OutcomeDone,
				Message: fmt.Sprintf("'%s' did not shut down gracefully and was powered off", req.VM),
			}
		}
		return Result{Request: req, Outcome: OutcomeDone, Message: fmt.Sprintf("Shutdown of '%s' requested", req.VM)}

	default: // StopForce
		if err := d.host.PowerOff(req.VM); err != nil {
			return Result{Request: req, Outcome: OutcomeFailed, Message: err.Error()}
		}
		return Result{Request: req, Outcome: OutcomeDone, Message: fmt.Sprintf("'%s' powered off", req.VM)}
	}
}

// report surfaces the outcome to the operator and returns it unchanged.
func (d *Dispatcher) report(res Result) Result {
	switch res.Outcome {
	case OutcomeBlocked:
		d.notify.Notify("Action blocked", res.Message)
	case OutcomeFailed:
		d.notify.Notify(fmt.Sprintf("%s failed", res.Request.Action), res.Message)
	case OutcomeDone:
		d.notify.Notify(res.Request.Action.String(), res.Message)
	}
	// Cancelled is not an error and not worth a notification.
	return res
}

func cancelled(req Request) Result {
	return Result{Request: req, Outcome: OutcomeCancelled, Message: "cancelled by operator"}
}
