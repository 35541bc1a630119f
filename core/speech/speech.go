// Package speech abstracts the optional dictation and read-aloud
// capabilities of a host front end. The core never depends on speech;
// hosts that lack it report the Unsupported notice to the user and the
// pipeline is unaffected.
package speech

import "errors"

// ErrUnsupported is returned by hosts without a speech capability.
var ErrUnsupported = errors.New("speech capability not supported in this environment")

// Recognizer captures dictated field notes. Implementations deliver final
// transcripts through the callback passed to Start; interim results are
// not surfaced.
type Recognizer interface {
	// Start begins capture and invokes onFinal for every finalized
	// transcript segment until Stop is called.
	Start(onFinal func(text string)) error
	Stop()
}

// Synthesizer reads an assembled report aloud.
type Synthesizer interface {
	// Speak starts reading text and invokes onDone when playback ends or
	// is cancelled.
	Speak(text string, onDone func()) error
	Cancel()
}

// Unsupported is the no-capability implementation used when the host
// environment offers no speech services.
type Unsupported struct{}

func (Unsupported) Start(func(string)) error   { return ErrUnsupported }
func (Unsupported) Stop()                      {}
func (Unsupported) Speak(string, func()) error { return ErrUnsupported }
func (Unsupported) Cancel()                    {}
