//go:build linux

package internal

import (
	"context"
	"fmt"

	"github.com/holoplot/go-evdev"
)

// EvdevReader turns key events of a Linux input device into virtual button
// events.
type EvdevReader struct {
	device  *evdev.InputDevice
	mapping *InputMapping
	name    string
}

func OpenEvdev(path string, mapping *InputMapping) (*EvdevReader, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input device %s: %w", path, err)
	}

	name, err := device.Name()
	if err != nil {
		name = path
	}

	GetInternalLogger().Debug("Opened input device", "path", path, "name", name)
	return &EvdevReader{device: device, mapping: mapping, name: name}, nil
}

func (r *EvdevReader) Name() string {
	return r.name
}

// Run reads the device until ctx is cancelled or the device fails, sending
// mapped events to out.
func (r *EvdevReader) Run(ctx context.Context, out chan<- Event) error {
	logger := GetInternalLogger()

	go func() {
		<-ctx.Done()
		r.device.Close()
	}()

	for {
		ev, err := r.device.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to read input device %s: %w", r.name, err)
		}

		if ev.Type != evdev.EV_KEY {
			continue
		}

		event, ok := r.mapping.Evdev(uint16(ev.Code), ev.Value)
		if !ok {
			logger.Debug("Unmapped evdev key", "code", int(ev.Code), "value", ev.Value)
			continue
		}

		select {
		case out <- *event:
		case <-ctx.Done():
			return nil
		}
	}
}
