package internal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BrandonKowalski/softkeys/pkg/softkeys/constants"
)

const MappingPathEnvVar = "SOFTKEYS_INPUT_MAPPING_PATH"

var inputMappingBytes []byte

func SetInputMappingBytes(data []byte) {
	inputMappingBytes = data
}

type Source int

const (
	SourceTerminal Source = iota
	SourceEvdev
)

type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Source  Source
	RawCode int
}

// InputMapping translates raw input into virtual buttons. Terminal keys are
// identified by their key name ("up", "enter", "ctrl+s"), evdev keys by their
// Linux input event code.
type InputMapping struct {
	TerminalMap map[string]constants.VirtualButton

	EvdevMap map[uint16]constants.VirtualButton
}

type Mapping struct {
	TerminalMap map[string]int `json:"terminal_map"`

	EvdevMap map[int]int `json:"evdev_map"`
}

// Linux input event codes, see linux/input-event-codes.h.
const (
	codeKeyBackspace = 14
	codeKeyEnter     = 28
	codeKeySpace     = 57
	codeKeyUp        = 103
	codeKeyLeft      = 105
	codeKeyRight     = 106
	codeKeyDown      = 108
	codeBtnSouth     = 304
	codeBtnEast      = 305
	codeBtnNorth     = 307
	codeBtnWest      = 308
	codeBtnTL        = 310
	codeBtnTR        = 311
	codeBtnSelect    = 314
	codeBtnStart     = 315
	codeBtnMode      = 316
	codeBtnDpadUp    = 544
	codeBtnDpadDown  = 545
	codeBtnDpadLeft  = 546
	codeBtnDpadRight = 547
)

func DefaultInputMapping() *InputMapping {
	return &InputMapping{
		TerminalMap: map[string]constants.VirtualButton{
			"up":        constants.VirtualButtonUp,
			"down":      constants.VirtualButtonDown,
			"left":      constants.VirtualButtonLeft,
			"right":     constants.VirtualButtonRight,
			"k":         constants.VirtualButtonUp,
			"j":         constants.VirtualButtonDown,
			"h":         constants.VirtualButtonLeft,
			"l":         constants.VirtualButtonRight,
			"enter":     constants.VirtualButtonA,
			"backspace": constants.VirtualButtonB,
			" ":         constants.VirtualButtonX,
			"esc":       constants.VirtualButtonY,
			"tab":       constants.VirtualButtonSelect,
			"ctrl+s":    constants.VirtualButtonStart,
			"[":         constants.VirtualButtonL1,
			"]":         constants.VirtualButtonR1,
			"?":         constants.VirtualButtonMenu,
		},
		EvdevMap: map[uint16]constants.VirtualButton{
			codeKeyUp:        constants.VirtualButtonUp,
			codeKeyDown:      constants.VirtualButtonDown,
			codeKeyLeft:      constants.VirtualButtonLeft,
			codeKeyRight:     constants.VirtualButtonRight,
			codeKeyEnter:     constants.VirtualButtonA,
			codeKeyBackspace: constants.VirtualButtonB,
			codeKeySpace:     constants.VirtualButtonX,
			codeBtnDpadUp:    constants.VirtualButtonUp,
			codeBtnDpadDown:  constants.VirtualButtonDown,
			codeBtnDpadLeft:  constants.VirtualButtonLeft,
			codeBtnDpadRight: constants.VirtualButtonRight,
			codeBtnSouth:     constants.VirtualButtonA,
			codeBtnEast:      constants.VirtualButtonB,
			codeBtnNorth:     constants.VirtualButtonX,
			codeBtnWest:      constants.VirtualButtonY,
			codeBtnTL:        constants.VirtualButtonL1,
			codeBtnTR:        constants.VirtualButtonR1,
			codeBtnSelect:    constants.VirtualButtonSelect,
			codeBtnStart:     constants.VirtualButtonStart,
			codeBtnMode:      constants.VirtualButtonMenu,
		},
	}
}

// GetInputMapping returns the input mapping from embedded bytes if set,
// from the environment variable if set, otherwise returns the default mapping
func GetInputMapping() *InputMapping {
	logger := GetInternalLogger()

	if len(inputMappingBytes) > 0 {
		mapping, err := LoadInputMappingFromBytes(inputMappingBytes)
		if err == nil {
			logger.Info("Loaded custom input mapping from embedded bytes")
			return mapping
		}
		logger.Warn("Failed to load custom input mapping from bytes, trying file path", "error", err)
	}

	mappingPath := os.Getenv(MappingPathEnvVar)
	if mappingPath != "" {
		mapping, err := LoadInputMappingFromJSON(mappingPath)
		if err == nil {
			logger.Info("Loaded custom input mapping from environment variable", "path", mappingPath)
			return mapping
		}
		logger.Warn("Failed to load custom input mapping, using default", "path", mappingPath, "error", err)
	}
	return DefaultInputMapping()
}

func LoadInputMappingFromJSON(filePath string) (*InputMapping, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}
	return LoadInputMappingFromBytes(data)
}

func LoadInputMappingFromBytes(data []byte) (*InputMapping, error) {
	var serializableMapping Mapping
	err := json.Unmarshal(data, &serializableMapping)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	mapping := &InputMapping{
		TerminalMap: make(map[string]constants.VirtualButton),
		EvdevMap:    make(map[uint16]constants.VirtualButton),
	}

	for name, button := range serializableMapping.TerminalMap {
		mapping.TerminalMap[name] = constants.VirtualButton(button)
	}

	for code, button := range serializableMapping.EvdevMap {
		if code < 0 || code > 0xffff {
			return nil, fmt.Errorf("evdev code %d out of range", code)
		}
		mapping.EvdevMap[uint16(code)] = constants.VirtualButton(button)
	}

	return mapping, nil
}

// Terminal resolves a terminal key name.
func (im *InputMapping) Terminal(name string) (constants.VirtualButton, bool) {
	button, ok := im.TerminalMap[name]
	return button, ok
}

// Evdev resolves an evdev key event into an Event. Value 1 is a press, 0 a
// release; autorepeat (2) is not reported.
func (im *InputMapping) Evdev(code uint16, value int32) (*Event, bool) {
	button, ok := im.EvdevMap[code]
	if !ok || value > 1 || value < 0 {
		return nil, false
	}
	return &Event{Button: button, Pressed: value == 1, Source: SourceEvdev, RawCode: int(code)}, true
}

// ToJSON converts the InputMapping to JSON bytes in the export format.
// Values are VirtualButton iota values.
func (im *InputMapping) ToJSON() ([]byte, error) {
	serializableMapping := &Mapping{
		TerminalMap: make(map[string]int),
		EvdevMap:    make(map[int]int),
	}

	for name, button := range im.TerminalMap {
		serializableMapping.TerminalMap[name] = int(button)
	}

	for code, button := range im.EvdevMap {
		serializableMapping.EvdevMap[int(code)] = int(button)
	}

	return json.MarshalIndent(serializableMapping, "", "  ")
}

func (im *InputMapping) SaveToJSON(filePath string) error {
	data, err := im.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal mapping to JSON: %w", err)
	}

	err = os.WriteFile(filePath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	return nil
}
