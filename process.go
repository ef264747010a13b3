// SPDX-License-Identifier: MIT
// Copyright (c) 2026 neogeographica
// Source: github.com/neogeographica/expak

package expak

import (
	"errors"
	"fmt"
)

// Transform handles one selected resource. It receives the raw payload and
// the resolved output name and may have arbitrary side effects. The boolean
// result reports whether the resource was fully handled and governs only
// selection acknowledgment; a non-nil error is a fault and marks the whole
// archive as failed without stopping its remaining resources.
type Transform func(data []byte, name string) (bool, error)

// Process runs transform over every selected resource of every source pak,
// in order. All sources are attempted even after failures; the result is nil
// only when every archive was a readable pak and no transform faulted.
// Per-archive failures are joined into the returned error.
//
// The selection is shared across all sources: names handled by an earlier
// pak are no longer looked for in later ones. Inspect a NameSet or RenameMap
// after the call to learn which resources were never satisfied.
func Process(sources []string, transform Transform, sel Selection) error {
	if sel == nil {
		sel = All
	}

	var errs []error
	for _, path := range sources {
		if err := processOne(path, transform, sel); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// ProcessPak is the single-archive form of Process.
func ProcessPak(source string, transform Transform, sel Selection) error {
	return Process([]string{source}, transform, sel)
}

// processOne handles one pak path against the shared selection.
func processOne(path string, transform Transform, sel Selection) error {
	if transform == nil {
		return ErrNilTransform
	}

	f, size, err := openFileWithSize(path)
	if err != nil {
		diagf("reading pak %s: %v", path, err)
		return err
	}
	defer func() { _ = f.Close() }()

	matches, err := selectResources(f, size, sel)
	if err != nil {
		if errors.Is(err, ErrNotPak) {
			diagf("%s is not a pak file", path)
			return fmt.Errorf("%s: %w", path, err)
		}

		diagf("reading pak %s: %v", path, err)
		return fmt.Errorf("read pak %s: %w", path, err)
	}

	var faults []error
	for _, m := range matches {
		data, err := readEntryData(f, m.entry)
		if err != nil {
			// Payload truncation is an archive-level fault: the rest of this
			// archive's resources are abandoned, sibling archives are not.
			diagf("reading pak %s: %v", path, err)
			faults = append(faults, fmt.Errorf("read pak %s: %w", path, err))
			break
		}

		handled, err := transform(data, m.name)
		if err != nil {
			diagf("processing resource %s: %v", m.name, err)
			faults = append(faults, fmt.Errorf("%w for resource %s: %w", ErrTransform, m.entry.Name, err))
			continue
		}

		if handled {
			sel.Ack(m.entry.Name)
		}
	}

	return errors.Join(faults...)
}

// Names returns the union of resource names across the given pak files,
// duplicates collapsed. Enumeration is all-or-nothing: if any source is not
// a pak or fails to read, the whole result is withheld.
func Names(sources ...string) (map[string]struct{}, error) {
	all := make(map[string]struct{})
	for _, path := range sources {
		names, err := namesOne(path)
		if err != nil {
			return nil, err
		}

		for name := range names {
			all[name] = struct{}{}
		}
	}

	return all, nil
}

// namesOne enumerates resource names of a single pak path.
func namesOne(path string) (map[string]struct{}, error) {
	f, size, err := openFileWithSize(path)
	if err != nil {
		diagf("reading pak %s: %v", path, err)
		return nil, err
	}
	defer func() { _ = f.Close() }()

	matches, err := selectResources(f, size, All)
	if err != nil {
		if errors.Is(err, ErrNotPak) {
			diagf("%s is not a pak file", path)
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		diagf("reading pak %s: %v", path, err)
		return nil, fmt.Errorf("read pak %s: %w", path, err)
	}

	names := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		names[m.entry.Name] = struct{}{}
	}

	return names, nil
}
