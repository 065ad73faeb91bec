package tray

// iconData is a 16x16 PNG used as the tray icon.
var iconData = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x10,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0xf3, 0xff, 0x61, 0x00, 0x00, 0x00,
	0x27, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x60, 0xa0, 0x06, 0xb0,
	0xb1, 0xb1, 0xf9, 0x4f, 0x0e, 0x46, 0x31, 0x40, 0xaf, 0x3b, 0x9c, 0x24,
	0x3c, 0x6a, 0xc0, 0xa8, 0x01, 0x58, 0x0d, 0xa0, 0x38, 0x25, 0x0e, 0x71,
	0x03, 0x28, 0x01, 0x00, 0x72, 0x61, 0x73, 0xec, 0x91, 0x40, 0x85, 0x5e,
	0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}
