package speech

import (
	"errors"
	"testing"
)

func TestUnsupportedReportsNotice(t *testing.T) {
	var rec Recognizer = Unsupported{}
	var syn Synthesizer = Unsupported{}
	if err := rec.Start(func(string) {}); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if err := syn.Speak("report", func() {}); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	// Stop and Cancel are safe no-ops without a capability.
	rec.Stop()
	syn.Cancel()
}
