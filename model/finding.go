package model

// Finding is the outcome of validating one address-bearing header value
// from a scanned message.
type Finding struct {
	MessageID string
	Header    string // canonical header name, e.g. "From"
	Raw       string // the value as found in the message, trimmed
	Domain    string // parsed domain, empty when parsing failed
	Err       error  // nil when the value parsed cleanly
}

// Valid reports whether the value parsed cleanly.
func (f Finding) Valid() bool {
	return f.Err == nil
}
