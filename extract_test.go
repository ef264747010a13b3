package expak

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestExtractTo_RoundTrip(t *testing.T) {
	t.Parallel()

	payloads := map[string][]byte{
		"flat.txt":               []byte("top level"),
		"sound/misc/basekey.wav": []byte("nested wav bytes"),
		"maps/e1m1.bsp":          {0x00, 0x01, 0xff, 0xfe},
	}

	entries := make([]manualEntry, 0, len(payloads))
	for name, data := range payloads {
		entries = append(entries, manualEntry{name: name, data: data})
	}
	path := createManualPak(t, entries)

	out := t.TempDir()
	if err := ExtractTo(out, []string{path}, All); err != nil {
		t.Fatalf("ExtractTo: %v", err)
	}

	for name, want := range payloads {
		got, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(name)))
		if err != nil {
			t.Fatalf("read extracted %s: %v", name, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("extracted %s = %q, want %q", name, got, want)
		}
	}
}

func TestExtractTo_RenameMapMaterializesMappedNames(t *testing.T) {
	t.Parallel()

	path := createManualPak(t, []manualEntry{
		{name: "sound/misc/basekey.wav", data: []byte("wav")},
	})

	sel := RenameMap{"sound/misc/basekey.wav": "keys/base_key.wav"}
	out := t.TempDir()
	if err := ExtractTo(out, []string{path}, sel); err != nil {
		t.Fatalf("ExtractTo: %v", err)
	}

	if _, err := os.Stat(filepath.Join(out, "sound", "misc", "basekey.wav")); !os.IsNotExist(err) {
		t.Error("resource must not materialize under its stored name")
	}

	got, err := os.ReadFile(filepath.Join(out, "keys", "base_key.wav"))
	if err != nil {
		t.Fatalf("read renamed output: %v", err)
	}
	if !bytes.Equal(got, []byte("wav")) {
		t.Fatalf("renamed output=%q, want wav", got)
	}

	if !sel.Empty() {
		t.Fatalf("rename map after call = %v, want empty", sel.Names())
	}
}

func TestExtractTo_SharedNameSetAcrossPaks(t *testing.T) {
	t.Parallel()

	pakA := createManualPak(t, []manualEntry{{name: "a.txt", data: []byte("a")}})
	pakB := createManualPak(t, []manualEntry{{name: "b.txt", data: []byte("b")}})

	sel := NewNameSet("a.txt", "b.txt", "missing.txt")
	out := t.TempDir()
	if err := ExtractTo(out, []string{pakA, pakB}, sel); err != nil {
		t.Fatalf("ExtractTo: %v", err)
	}

	for _, name := range []string{"a.txt", "b.txt"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("expected %s extracted: %v", name, err)
		}
	}

	left := sel.Names()
	if len(left) != 1 || left[0] != "missing.txt" {
		t.Fatalf("selection after call = %v, want [missing.txt]", left)
	}
}

func TestWriteTransform_RejectsUnsafeNames(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	transform := WriteTransform(out)

	for _, name := range []string{"../escape.txt", "/abs.txt", `..\win.txt`, "", "c:/drive.txt"} {
		handled, err := transform([]byte("x"), name)
		if handled || !errors.Is(err, ErrInvalidExtractPath) {
			t.Errorf("name %q: handled=%v err=%v, want rejection", name, handled, err)
		}
	}

	if _, err := os.Stat(filepath.Join(filepath.Dir(out), "escape.txt")); !os.IsNotExist(err) {
		t.Error("traversal name must not create a file outside the root")
	}
}

func TestExtractTo_UnsafeNameIsPerResourceFault(t *testing.T) {
	t.Parallel()

	path := createManualPak(t, []manualEntry{
		{name: "../evil.txt", data: []byte("x")},
		{name: "good.txt", data: []byte("y")},
	})

	sel := NewNameSet("../evil.txt", "good.txt")
	out := t.TempDir()
	err := ExtractTo(out, []string{path}, sel)
	if err == nil {
		t.Fatal("expected failure for unsafe resource name")
	}
	if !errors.Is(err, ErrInvalidExtractPath) {
		t.Errorf("expected ErrInvalidExtractPath, got %v", err)
	}

	// The unsafe entry faults; the remaining entry still extracts.
	got, readErr := os.ReadFile(filepath.Join(out, "good.txt"))
	if readErr != nil {
		t.Fatalf("read good.txt: %v", readErr)
	}
	if !bytes.Equal(got, []byte("y")) {
		t.Fatalf("good.txt=%q, want y", got)
	}

	left := sel.Names()
	if len(left) != 1 || left[0] != "../evil.txt" {
		t.Fatalf("selection after call = %v, want the faulted name kept", left)
	}
}
