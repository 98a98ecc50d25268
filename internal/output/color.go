package output

import (
	"io"
	"os"
	"slices"
)

// Values accepted by the --color flag.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// EnvNoColor disables color in auto mode when set to any non-empty value.
// See https://no-color.org.
const EnvNoColor = "NO_COLOR"

var colorModes = []string{ColorAuto, ColorAlways, ColorNever}

// ValidateColorMode returns a user error for anything other than
// auto, always or never. The empty string is treated as auto.
func ValidateColorMode(colorMode string) error {
	if colorMode == "" || slices.Contains(colorModes, colorMode) {
		return nil
	}
	return NewUserError("invalid --color value " + `"` + colorMode + `"` + ": must be auto, always or never")
}

// ResolveColorMode decides whether styled output is used.
// "never" and "always" are absolute. Anything else falls back to TTY
// detection, unless NO_COLOR is set.
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		if os.Getenv(EnvNoColor) != "" {
			return false
		}
		return isTTY
	}
}

// IsTTY reports whether writer is a character device.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
