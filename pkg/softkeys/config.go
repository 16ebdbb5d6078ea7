package softkeys

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BrandonKowalski/softkeys/pkg/softkeys/internal"
	"github.com/BurntSushi/toml"
	"golang.org/x/text/unicode/norm"
)

// LayoutPathEnvVar points at a TOML layout file used by GetConfig.
const LayoutPathEnvVar = "SOFTKEYS_LAYOUT_PATH"

var layoutBytes []byte

// SetLayoutBytes registers an embedded TOML layout for GetConfig. It takes
// precedence over LayoutPathEnvVar.
func SetLayoutBytes(data []byte) {
	layoutBytes = data
}

// LayerConfig is the character set and row template of one layer.
type LayerConfig struct {
	Characters string
	Rows       RowTemplate
}

// Config describes a keyboard at construction time.
type Config struct {
	InputType InputType
	// SpecialCharacters overrides DefaultSpecialCharacters in the preset
	// layers. Ignored when Layers is set.
	SpecialCharacters string
	// AutoReleaseShift turns shift off after one character, like a phone
	// keyboard. When false shift behaves as caps lock.
	AutoReleaseShift bool
	// Layers replaces the presets of InputType when not empty.
	Layers map[Layer]LayerConfig
}

// DefaultConfig is the keyboard used when no layout is configured.
func DefaultConfig() Config {
	return Config{InputType: InputAlphaNumericSpecial}
}

func (c Config) layers() map[Layer]LayerConfig {
	if len(c.Layers) > 0 {
		return c.Layers
	}
	return PresetLayers(c.InputType, c.SpecialCharacters)
}

// Validate checks the configuration the way NewController does.
func (c Config) Validate() error {
	if _, ok := inputTypeNames[c.InputType]; !ok {
		return fmt.Errorf("%w: unknown input type %d", ErrInvalidConfig, int(c.InputType))
	}

	layers := c.layers()
	if len(layers) == 0 {
		return fmt.Errorf("%w: no layers configured", ErrInvalidConfig)
	}

	for _, layer := range sortedLayers(layers) {
		lc := layers[layer]
		if _, ok := layerNames[layer]; !ok {
			return fmt.Errorf("%w: unknown layer %d", ErrInvalidConfig, int(layer))
		}
		if err := lc.Rows.Validate(); err != nil {
			return fmt.Errorf("layer %s: %w", layer, err)
		}
		for _, row := range lc.Rows {
			for _, tok := range append(append([]KeyToken{}, row.Leading...), row.Trailing...) {
				if tok.Action != ActionLayerToggle {
					continue
				}
				if _, ok := layers[tok.Target]; !ok {
					return fmt.Errorf("%w: layer %s toggles to unconfigured layer %s", ErrInvalidConfig, layer, tok.Target)
				}
			}
		}
	}
	return nil
}

func sortedLayers(layers map[Layer]LayerConfig) []Layer {
	out := make([]Layer, 0, len(layers))
	for l := range layers {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// characterSet normalizes configured characters to NFC so a precomposed glyph
// takes a single slot.
func characterSet(s string) []rune {
	return []rune(norm.NFC.String(s))
}

type fileConfig struct {
	InputType         string               `toml:"input_type"`
	SpecialCharacters string               `toml:"special_characters"`
	AutoReleaseShift  bool                 `toml:"auto_release_shift"`
	Layers            map[string]fileLayer `toml:"layers"`
}

type fileLayer struct {
	Characters string    `toml:"characters"`
	Rows       []fileRow `toml:"rows"`
}

type fileRow struct {
	CharSlots int      `toml:"char_slots"`
	Leading   []string `toml:"leading"`
	Trailing  []string `toml:"trailing"`
}

var actionsByName = map[string]KeyToken{
	"backspace":          Backspace,
	"shift":              Shift,
	"page_next":          PageNext,
	"space":              Space,
	"enter":              Enter,
	"to_letters":         LayerToggle(LayerLetters),
	"to_numeric_special": LayerToggle(LayerNumericSpecial),
}

// ParseAction resolves an action name as used in layout files.
func ParseAction(name string) (KeyToken, error) {
	tok, ok := actionsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return KeyToken{}, fmt.Errorf("%w: unknown action %q", ErrInvalidTemplate, name)
	}
	return tok, nil
}

func parseActions(names []string) ([]KeyToken, error) {
	if len(names) == 0 {
		return nil, nil
	}
	tokens := make([]KeyToken, 0, len(names))
	for _, name := range names {
		tok, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// LoadConfigFromBytes decodes and validates a TOML layout.
func LoadConfigFromBytes(data []byte) (Config, error) {
	var fc fileConfig
	md, err := toml.Decode(string(data), &fc)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode layout: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}

	cfg := DefaultConfig()
	if fc.InputType != "" {
		cfg.InputType, err = ParseInputType(fc.InputType)
		if err != nil {
			return Config{}, err
		}
	}
	cfg.SpecialCharacters = fc.SpecialCharacters
	cfg.AutoReleaseShift = fc.AutoReleaseShift

	if len(fc.Layers) > 0 {
		cfg.Layers = make(map[Layer]LayerConfig, len(fc.Layers))
		for name, fl := range fc.Layers {
			layer, err := ParseLayer(name)
			if err != nil {
				return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
			}

			rows := make(RowTemplate, 0, len(fl.Rows))
			for i, fr := range fl.Rows {
				leading, err := parseActions(fr.Leading)
				if err != nil {
					return Config{}, fmt.Errorf("layer %s row %d: %w", name, i, err)
				}
				trailing, err := parseActions(fr.Trailing)
				if err != nil {
					return Config{}, fmt.Errorf("layer %s row %d: %w", name, i, err)
				}
				rows = append(rows, RowSpec{CharSlots: fr.CharSlots, Leading: leading, Trailing: trailing})
			}
			cfg.Layers[layer] = LayerConfig{Characters: fl.Characters, Rows: rows}
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFromFile reads a TOML layout file.
func LoadConfigFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read layout file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// GetConfig returns the layout registered with SetLayoutBytes if it loads,
// then the file named by LayoutPathEnvVar, otherwise DefaultConfig.
func GetConfig() Config {
	logger := internal.GetInternalLogger()

	if len(layoutBytes) > 0 {
		cfg, err := LoadConfigFromBytes(layoutBytes)
		if err == nil {
			logger.Info("Loaded keyboard layout from embedded bytes")
			return cfg
		}
		logger.Warn("Failed to load keyboard layout from bytes, trying file path", "error", err)
	}

	layoutPath := os.Getenv(LayoutPathEnvVar)
	if layoutPath != "" {
		cfg, err := LoadConfigFromFile(layoutPath)
		if err == nil {
			logger.Info("Loaded keyboard layout from environment variable", "path", layoutPath)
			return cfg
		}
		logger.Warn("Failed to load keyboard layout, using default", "path", layoutPath, "error", err)
	}
	return DefaultConfig()
}
