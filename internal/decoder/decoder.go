// Package decoder turns raw authored-message payloads into structured
// events. The engine consults a Decoder for every payload emitted while
// the target program is executing; everything else about the payload's
// layout is the decoder's business.
package decoder

import "github.com/crimson-sun/anchorlog/internal/model"

// Decoder is the decode capability. Implementations must be stateless and
// re-entrant: one Decoder may serve concurrent scans.
//
// Returning ok=false means "not an event of interest". The engine does not
// distinguish unknown payloads from decode failures.
type Decoder interface {
	Decode(payload []byte) (model.Event, bool)
}

// Func adapts a plain function to the Decoder interface.
type Func func(payload []byte) (model.Event, bool)

func (f Func) Decode(payload []byte) (model.Event, bool) {
	return f(payload)
}
