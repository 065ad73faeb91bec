package host

import (
	"bytes"
	"fmt"
)

// Screenshot retrieves a console image of the named VM through the
// management stream API. It returns the raw image bytes and a file
// extension derived from the reported MIME type. The VM must have been
// started at least once; libvirt has no console to render otherwise.
func (c *Client) Screenshot(name string) ([]byte, string, error) {
	return screenshotWithDeps(c.libvirt, name)
}

func screenshotWithDeps(lv screenshotAPI, name string) ([]byte, string, error) {
	domain, err := lv.DomainLookupByName(name)
	if err != nil {
		return nil, "", fmt.Errorf("VM '%s' not found: %w", name, err)
	}

	var buf bytes.Buffer
	mimeOpt, err := lv.DomainScreenshot(domain, &buf, 0, 0)
	if err != nil {
		return nil, "", fmt.Errorf("failed to capture screenshot of VM '%s': %w", name, err)
	}
	if buf.Len() == 0 {
		return nil, "", fmt.Errorf("no image data returned for VM '%s'", name)
	}

	// The MIME type is optional on the wire.
	var mime string
	if len(mimeOpt) > 0 {
		mime = mimeOpt[0]
	}
	return buf.Bytes(), extForMime(mime), nil
}

// extForMime maps the MIME types libvirt reports to file extensions.
// QEMU screendumps are PPM unless converted by the driver.
func extForMime(mime string) string {
	switch mime {
	case "image/png":
		return "png"
	case "image/jpeg":
		return "jpg"
	case "image/x-portable-pixmap":
		return "ppm"
	default:
		return "img"
	}
}
