package anchorlog

type eventRegistration struct {
	name  string
	proto func() any
}

type options struct {
	strict  bool
	decoder Decoder
	events  []eventRegistration
}

// Option configures a Parser.
type Option func(*options)

// WithEvent registers an Anchor event by name with the built-in decoder.
// proto must return a pointer to a fresh zero value of the event's Borsh
// body type; one is constructed per decoded event.
func WithEvent(name string, proto func() any) Option {
	return func(o *options) {
		o.events = append(o.events, eventRegistration{name: name, proto: proto})
	}
}

// WithDecoder replaces the built-in Anchor registry with a custom decode
// capability. WithEvent registrations are ignored when set.
func WithDecoder(d Decoder) Option {
	return func(o *options) {
		o.decoder = d
	}
}

// WithStrict makes mid-stream lines that fall outside the log grammar
// fatal instead of silently unrelated. The lenient default tolerates
// free-form text from other programs.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

func defaultOptions() options {
	return options{}
}
