package model

// Event is anchorlog's output type: a structured event decoded from a
// program's authored log line.
type Event struct {
	Name    string `json:"name"`              // event name as registered with the decoder
	Program string `json:"program,omitempty"` // identifier of the emitting program
	Data    any    `json:"data,omitempty"`    // decoded body; shape is decoder-defined
	Payload []byte `json:"payload,omitempty"` // raw payload bytes (retained at full verbosity)
}
