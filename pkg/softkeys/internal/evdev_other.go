//go:build !linux

package internal

import (
	"context"
	"errors"
)

var errEvdevUnsupported = errors.New("evdev input is only available on Linux")

type EvdevReader struct{}

func OpenEvdev(path string, mapping *InputMapping) (*EvdevReader, error) {
	return nil, errEvdevUnsupported
}

func (r *EvdevReader) Name() string {
	return ""
}

func (r *EvdevReader) Run(ctx context.Context, out chan<- Event) error {
	return errEvdevUnsupported
}
