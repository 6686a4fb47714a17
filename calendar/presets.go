package calendar

// Device is a wallpaper target resolution
type Device struct {
	ID            string
	Width, Height int
}

// Device identifiers with special handling
const (
	DefaultDevice = "1179x2556"
	CustomDevice  = "custom"
)

// Devices lists the phone presets in menu order
var Devices = []Device{
	{ID: "1080x2340", Width: 1080, Height: 2340},
	{ID: "1170x2532", Width: 1170, Height: 2532},
	{ID: "1284x2778", Width: 1284, Height: 2778},
	{ID: "1179x2556", Width: 1179, Height: 2556},
	{ID: "1290x2796", Width: 1290, Height: 2796},
	{ID: "1206x2622", Width: 1206, Height: 2622},
	{ID: "1320x2868", Width: 1320, Height: 2868},
}

// LookupDevice returns the preset for id, falling back to DefaultDevice
func LookupDevice(id string) Device {
	for _, d := range Devices {
		if d.ID == id {
			return d
		}
	}
	for _, d := range Devices {
		if d.ID == DefaultDevice {
			return d
		}
	}
	return Devices[0]
}

// ResolveDevice returns the preset for id; CustomDevice takes the given size, clamped
func ResolveDevice(id string, width, height int) Device {
	if id != CustomDevice {
		return LookupDevice(id)
	}
	return Device{
		ID:     CustomDevice,
		Width:  clampInt(width, MinSize, MaxSize),
		Height: clampInt(height, MinSize, MaxSize),
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
