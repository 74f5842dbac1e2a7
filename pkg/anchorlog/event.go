package anchorlog

import (
	"github.com/crimson-sun/anchorlog/internal/decoder"
	"github.com/crimson-sun/anchorlog/internal/model"
)

// Event is a decoded program event. This is the stable public type;
// internal representations may evolve independently without breaking
// consumers.
type Event = model.Event

// Decoder is the decode capability consulted for each authored-message
// payload the target program emits. Implementations must be stateless and
// re-entrant.
type Decoder = decoder.Decoder

// DecodeFunc adapts a plain function to the Decoder interface.
type DecodeFunc = decoder.Func
