package internal

import (
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/softkeys/pkg/softkeys/constants"
)

func TestDefaultInputMappingTerminal(t *testing.T) {
	m := DefaultInputMapping()

	tests := []struct {
		key  string
		want constants.VirtualButton
	}{
		{"up", constants.VirtualButtonUp},
		{"l", constants.VirtualButtonRight},
		{"enter", constants.VirtualButtonA},
		{"backspace", constants.VirtualButtonB},
		{" ", constants.VirtualButtonX},
		{"ctrl+s", constants.VirtualButtonStart},
	}
	for _, tt := range tests {
		got, ok := m.Terminal(tt.key)
		if !ok || got != tt.want {
			t.Errorf("Terminal(%q) = %v, %v; want %v", tt.key, got, ok, tt.want)
		}
	}

	if _, ok := m.Terminal("f12"); ok {
		t.Error("Terminal(f12) mapped, want unmapped")
	}
}

func TestEvdevValues(t *testing.T) {
	m := DefaultInputMapping()

	ev, ok := m.Evdev(codeBtnSouth, 1)
	if !ok || ev.Button != constants.VirtualButtonA || !ev.Pressed || ev.Source != SourceEvdev {
		t.Errorf("Evdev(south, 1) = %+v, %v", ev, ok)
	}
	if ev.RawCode != codeBtnSouth {
		t.Errorf("RawCode = %d, want %d", ev.RawCode, codeBtnSouth)
	}

	ev, ok = m.Evdev(codeBtnSouth, 0)
	if !ok || ev.Pressed {
		t.Errorf("Evdev(south, 0) = %+v, %v; want a release", ev, ok)
	}

	if _, ok := m.Evdev(codeBtnSouth, 2); ok {
		t.Error("autorepeat should not be reported")
	}
	if _, ok := m.Evdev(1, 1); ok {
		t.Error("unmapped code should not be reported")
	}
}

func TestInputMappingJSONRoundTrip(t *testing.T) {
	m := DefaultInputMapping()
	data, err := m.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	loaded, err := LoadInputMappingFromBytes(data)
	if err != nil {
		t.Fatalf("LoadInputMappingFromBytes: %v", err)
	}
	if len(loaded.TerminalMap) != len(m.TerminalMap) || len(loaded.EvdevMap) != len(m.EvdevMap) {
		t.Fatalf("loaded %d/%d entries, want %d/%d",
			len(loaded.TerminalMap), len(loaded.EvdevMap), len(m.TerminalMap), len(m.EvdevMap))
	}
	for k, v := range m.TerminalMap {
		if loaded.TerminalMap[k] != v {
			t.Errorf("TerminalMap[%q] = %v, want %v", k, loaded.TerminalMap[k], v)
		}
	}
	for k, v := range m.EvdevMap {
		if loaded.EvdevMap[k] != v {
			t.Errorf("EvdevMap[%d] = %v, want %v", k, loaded.EvdevMap[k], v)
		}
	}
}

func TestLoadInputMappingFromBytesErrors(t *testing.T) {
	if _, err := LoadInputMappingFromBytes([]byte(`{"terminal_map":`)); err == nil {
		t.Error("truncated JSON: err = nil")
	}
	if _, err := LoadInputMappingFromBytes([]byte(`{"evdev_map":{"70000":5}}`)); err == nil {
		t.Error("out of range code: err = nil")
	}
}

func TestGetInputMappingPrecedence(t *testing.T) {
	t.Cleanup(func() { SetInputMappingBytes(nil) })

	path := filepath.Join(t.TempDir(), "mapping.json")
	custom := &InputMapping{
		TerminalMap: map[string]constants.VirtualButton{"w": constants.VirtualButtonUp},
		EvdevMap:    map[uint16]constants.VirtualButton{},
	}
	if err := custom.SaveToJSON(path); err != nil {
		t.Fatalf("SaveToJSON: %v", err)
	}

	t.Setenv(MappingPathEnvVar, path)
	m := GetInputMapping()
	if b, ok := m.Terminal("w"); !ok || b != constants.VirtualButtonUp {
		t.Errorf("env mapping: Terminal(w) = %v, %v", b, ok)
	}
	if _, ok := m.Terminal("up"); ok {
		t.Error("env mapping should replace the defaults")
	}

	SetInputMappingBytes([]byte(`{"terminal_map":{"s":2}}`))
	if b, ok := GetInputMapping().Terminal("s"); !ok || b != constants.VirtualButtonDown {
		t.Errorf("embedded mapping: Terminal(s) = %v, %v", b, ok)
	}

	t.Setenv(MappingPathEnvVar, filepath.Join(t.TempDir(), "missing.json"))
	SetInputMappingBytes(nil)
	if _, ok := GetInputMapping().Terminal("up"); !ok {
		t.Error("missing mapping file should fall back to defaults")
	}
}
