package models

import "time"

// DaemonInfo records the running virtrayd instance, stored in
// ~/.virtray/daemon.yaml. Its presence (with a live PID) means a tray
// daemon is already running.
type DaemonInfo struct {
	PID       int       `yaml:"pid"`
	Version   string    `yaml:"version"`
	StartedAt time.Time `yaml:"started_at"`
}

// NewDaemonInfo creates daemon info for the current process.
func NewDaemonInfo(pid int, version string) *DaemonInfo {
	return &DaemonInfo{
		PID:       pid,
		Version:   version,
		StartedAt: time.Now().UTC(),
	}
}
