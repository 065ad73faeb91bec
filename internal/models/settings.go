package models

// Default values for settings not present in settings.yaml.
const (
	DefaultPollIntervalSeconds = 30
	DefaultVMFilter            = "*"
)

// Settings represents the user configuration stored in ~/.virtray/settings.yaml.
type Settings struct {
	Version int `yaml:"version"`

	// PollIntervalSeconds is how often the host is queried for VM state.
	PollIntervalSeconds int `yaml:"poll_interval_seconds"`

	// VMFilter is a name glob selecting which VMs are shown ("*" = all).
	VMFilter string `yaml:"vm_filter"`

	// LibvirtSocket overrides the libvirt socket path (empty = default).
	LibvirtSocket string `yaml:"libvirt_socket,omitempty"`
}

// NewSettings returns settings populated with defaults.
func NewSettings() *Settings {
	return &Settings{
		Version:             1,
		PollIntervalSeconds: DefaultPollIntervalSeconds,
		VMFilter:            DefaultVMFilter,
	}
}

// Normalize fills zero values with defaults so a sparse settings file
// still yields a usable configuration.
func (s *Settings) Normalize() {
	if s.PollIntervalSeconds <= 0 {
		s.PollIntervalSeconds = DefaultPollIntervalSeconds
	}
	if s.VMFilter == "" {
		s.VMFilter = DefaultVMFilter
	}
}
