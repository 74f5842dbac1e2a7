package decoder

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/near/borsh-go"

	"github.com/crimson-sun/anchorlog/internal/model"
)

// discriminatorLen is the length of the event discriminator that prefixes
// every Anchor event payload.
const discriminatorLen = 8

// Discriminator returns the 8-byte discriminator for an event name: the
// first 8 bytes of sha256("event:<name>").
func Discriminator(name string) [discriminatorLen]byte {
	sum := sha256.Sum256([]byte("event:" + name))
	var d [discriminatorLen]byte
	copy(d[:], sum[:discriminatorLen])
	return d
}

// Registry decodes Anchor-convention event payloads: an 8-byte
// discriminator followed by a Borsh-encoded body. Register every event of
// interest before scanning; a Registry is read-only afterwards and safe
// for concurrent use.
type Registry struct {
	events map[[discriminatorLen]byte]registration
}

type registration struct {
	name  string
	proto func() any
}

// NewRegistry creates an empty event registry.
func NewRegistry() *Registry {
	return &Registry{events: make(map[[discriminatorLen]byte]registration)}
}

// Register maps an event name to a prototype constructor. proto must
// return a pointer to a fresh zero value of the event's body type; a new
// body is constructed per decoded event.
func (r *Registry) Register(name string, proto func() any) {
	r.events[Discriminator(name)] = registration{name: name, proto: proto}
}

// Decode implements Decoder. Payloads that are too short, carry an
// unregistered discriminator, or whose body does not deserialize are not
// events of interest.
func (r *Registry) Decode(payload []byte) (model.Event, bool) {
	if len(payload) < discriminatorLen {
		return model.Event{}, false
	}
	var disc [discriminatorLen]byte
	copy(disc[:], payload[:discriminatorLen])
	reg, ok := r.events[disc]
	if !ok {
		return model.Event{}, false
	}
	body := reg.proto()
	if err := borsh.Deserialize(body, payload[discriminatorLen:]); err != nil {
		return model.Event{}, false
	}
	return model.Event{Name: reg.name, Data: body, Payload: payload}, true
}

// Raw returns a Decoder that accepts any payload long enough to carry a
// discriminator and emits it undecoded, named by the discriminator's hex
// form. Useful for inspecting a program's event traffic without a schema.
func Raw() Decoder {
	return Func(func(payload []byte) (model.Event, bool) {
		if len(payload) < discriminatorLen {
			return model.Event{}, false
		}
		return model.Event{
			Name:    hex.EncodeToString(payload[:discriminatorLen]),
			Payload: payload,
		}, true
	})
}
