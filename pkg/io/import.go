package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/dominauta/padring/pkg/circuit"
	"github.com/dominauta/padring/pkg/errors"
)

// ImportDevice reads and validates a device description from a JSON file.
//
// The input must be a JSON object with "name", "outline", and "ports"
// fields; see [circuit.Device] for the full shape. Beyond decoding,
// ImportDevice checks the contracts the placement core relies on: a
// non-degenerate outline and a port map whose keys match the port names.
//
// Errors carry machine-readable codes: FILE_NOT_FOUND when the path does
// not exist, INVALID_FORMAT for malformed JSON, and INVALID_DEVICE for
// contract violations.
func ImportDevice(path string) (*circuit.Device, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "device file %s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	return ReadDevice(f)
}

// ReadDevice decodes and validates a device description from r. Decoding
// is deliberately lax so that every contract violation surfaces with an
// INVALID_DEVICE code instead of a decode failure.
func ReadDevice(r io.Reader) (*circuit.Device, error) {
	var dev circuit.Device
	if err := json.NewDecoder(r).Decode(&dev); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode device")
	}
	if err := validateDevice(&dev); err != nil {
		return nil, err
	}
	return &dev, nil
}

func validateDevice(dev *circuit.Device) error {
	var verrs errors.ValidationErrors

	if dev.Name == "" {
		verrs.Addf(errors.ErrCodeInvalidDevice, "device name must not be empty")
	}
	if dev.Outline.Width() <= 0 || dev.Outline.Height() <= 0 {
		verrs.Addf(errors.ErrCodeInvalidDevice, "device outline must have positive extent, got %.1fx%.1f",
			dev.Outline.Width(), dev.Outline.Height())
	}
	for key, p := range dev.Ports {
		if key == "" {
			verrs.Addf(errors.ErrCodeInvalidDevice, "port with empty name")
			continue
		}
		if p == nil {
			verrs.Addf(errors.ErrCodeInvalidDevice, "port %q has no body", key)
			continue
		}
		if p.Name != "" && p.Name != key {
			verrs.Addf(errors.ErrCodeInvalidDevice, "port key %q does not match port name %q", key, p.Name)
		}
		// Unnamed ports inherit their map key; missing classes default
		// to electrical, matching [circuit.ReadDevice].
		if p.Name == "" {
			p.Name = key
		}
		if p.Class == "" {
			p.Class = circuit.ClassElectrical
		}
	}

	return verrs.Err()
}
