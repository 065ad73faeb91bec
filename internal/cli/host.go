package cli

import (
	"fmt"
	"time"

	"github.com/virtray/virtray/internal/config"
	"github.com/virtray/virtray/internal/host"
	"github.com/virtray/virtray/internal/models"
	"github.com/virtray/virtray/internal/snapshot"
)

// connectTimeout bounds the initial socket dial for one-shot commands.
const connectTimeout = 5 * time.Second

// openHost loads settings, applies the optional filter override, and
// connects to the local libvirt daemon. The caller closes the client.
func openHost(filterOverride string) (*host.Client, *snapshot.Builder, *models.Settings, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load settings: %w", err)
	}

	filter := settings.VMFilter
	if filterOverride != "" {
		filter = filterOverride
	}
	builder, err := snapshot.NewBuilder(filter)
	if err != nil {
		return nil, nil, nil, err
	}

	client, err := host.Connect(settings.LibvirtSocket, connectTimeout)
	if err != nil {
		return nil, nil, nil, err
	}
	return client, builder, settings, nil
}
