package driver

import (
	"errors"
	"testing"

	"github.com/ushitora-anqou/rasteriser/colour"
	"github.com/ushitora-anqou/rasteriser/window"
)

func TestCreateText(t *testing.T) {
	d, err := Create(Text)
	if !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("Create(Text): expected ErrNotImplemented, got %v", err)
	}
	if d != nil {
		t.Fatalf("Create(Text) returned a driver")
	}
}

func TestCreateUnknownKind(t *testing.T) {
	if _, err := Create(Kind(42)); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("Create(Kind(42)): expected ErrUnknownKind, got %v", err)
	}
}

func TestParseKind(t *testing.T) {
	table := []struct {
		name string
		kind Kind
	}{
		{"gl", GL},
		{"GL", GL},
		{"text", Text},
		{"headless", Headless},
	}

	for _, entry := range table {
		kind, err := ParseKind(entry.name)
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", entry.name, err)
		}
		if kind != entry.kind {
			t.Fatalf("ParseKind(%q): (got: %v) (expected: %v)", entry.name, kind, entry.kind)
		}
		if kind.String() != kindNames[entry.kind] {
			t.Fatalf("String(): got %q", kind.String())
		}
	}

	if _, err := ParseKind("vulkan"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("ParseKind(vulkan): expected ErrUnknownKind, got %v", err)
	}
	if got := Kind(7).String(); got != "Kind(7)" {
		t.Fatalf("Kind(7).String(): got %q", got)
	}
}

func TestHeadlessCreateWindow(t *testing.T) {
	d, err := Create(Headless, WithHeadlessCloseAfter(2))
	if err != nil {
		t.Fatal(err)
	}
	if d.Kind() != Headless {
		t.Fatalf("Kind(): got %v", d.Kind())
	}

	wind, err := d.CreateWindow(8, 6, "test")
	if err != nil {
		t.Fatal(err)
	}
	defer wind.Close()

	if w, h := wind.Size(); w != 8 || h != 6 {
		t.Fatalf("Size(): got %dx%d", w, h)
	}

	var frames int
	for {
		wind.DrawPixel(frames, 0, colour.Hex(0x00ff00))
		running, err := wind.Update(true)
		if err != nil {
			t.Fatal(err)
		}
		frames++
		if !running {
			break
		}
	}
	if frames != 2 {
		t.Fatalf("expected close after 2 frames, got %d", frames)
	}
}

func TestCreateWindowRejectsInvalidSize(t *testing.T) {
	d, err := Create(Headless)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.CreateWindow(0, 10, "bad"); !errors.Is(err, window.ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
}
