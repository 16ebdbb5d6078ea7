package softkeys

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/softkeys/pkg/softkeys/internal"
)

// InputMapping translates terminal keys and evdev codes into virtual buttons.
type InputMapping = internal.InputMapping

// InputEvent is a virtual button press or release.
type InputEvent = internal.Event

// EvdevReader reads virtual button events from a Linux input device.
type EvdevReader = internal.EvdevReader

// Options configures logging for hosts. Init is optional; the library works
// with its defaults.
type Options struct {
	LogFilename string
	LogLevel    string
	// Debug raises the library's own logger to debug.
	Debug bool
}

// Init applies logging options. Call it before creating any Controller.
func Init(options Options) {
	if options.LogFilename != "" {
		internal.SetLogFilename(options.LogFilename)
	}

	if options.Debug || os.Getenv("SOFTKEYS_DEBUG") != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}

func SetLogFilename(filename string) {
	internal.SetLogFilename(filename)
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

func SetInputMappingBytes(data []byte) {
	internal.SetInputMappingBytes(data)
}

// GetInputMapping resolves the input mapping: embedded bytes, then the file
// named by SOFTKEYS_INPUT_MAPPING_PATH, then the defaults.
func GetInputMapping() *InputMapping {
	return internal.GetInputMapping()
}

// OpenEvdev opens a Linux input device such as /dev/input/event3.
func OpenEvdev(path string, mapping *InputMapping) (*EvdevReader, error) {
	return internal.OpenEvdev(path, mapping)
}
