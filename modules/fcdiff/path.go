package fcdiff

import (
	"fmt"
	"path/filepath"
	"strings"
)

// reservedDeviceNames is the DOS reserved-device-name table. It is
// immutable, module-scoped data: the same table applies on every
// invocation and on every platform, because the engine refuses to open
// a file whose name collides with a device namespace even where the
// host OS would happily create a perfectly ordinary regular file with
// that name.
var reservedDeviceNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// deviceNamespacePrefixes rejects paths that target the local-device,
// root-local-device, raw-device, or named-pipe namespaces instead of an
// ordinary file path.
var deviceNamespacePrefixes = []string{
	`\\.\`, `\\?\`, `\Device\`, `\\.\pipe\`, `\??\`,
}

// canonicalizePath implements C1: classify, resolve, and reject unsafe
// paths. It returns ErrInvalidParam for anything that is not an
// ordinary, resolvable file path.
func canonicalizePath(path string) (string, error) {
	if len(path) == 0 {
		return "", fmt.Errorf("%w: empty path", ErrInvalidParam)
	}
	for _, prefix := range deviceNamespacePrefixes {
		if strings.HasPrefix(path, prefix) {
			return "", fmt.Errorf("%w: device or pipe namespace path %q", ErrInvalidParam, path)
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidParam, err)
	}
	abs = filepath.Clean(abs)
	for _, prefix := range deviceNamespacePrefixes {
		if strings.HasPrefix(abs, prefix) {
			return "", fmt.Errorf("%w: device or pipe namespace path %q", ErrInvalidParam, abs)
		}
	}
	if isReservedDeviceName(filepath.Base(abs)) {
		return "", fmt.Errorf("%w: reserved device name %q", ErrInvalidParam, filepath.Base(abs))
	}
	return abs, nil
}

func isReservedDeviceName(base string) bool {
	name := base
	if ext := filepath.Ext(base); ext != "" {
		name = base[:len(base)-len(ext)]
	}
	_, reserved := reservedDeviceNames[strings.ToUpper(name)]
	return reserved
}
