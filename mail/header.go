package mail

// Header is a named, renderable message header field. The set of
// implementations is closed: adding a header means adding a type here with
// its name and body mapping.
type Header interface {
	// Name returns the canonical field name, e.g. "Return-Path".
	Name() string
	// Body returns the rendered field body.
	Body() string

	header()
}

// FormatHeader renders a header as a single "Name: body" line, without a
// trailing newline.
func FormatHeader(h Header) string {
	return h.Name() + ": " + h.Body()
}

// ReturnPath is the Return-Path header. It conveys the MAIL FROM envelope
// address at final delivery, when the message leaves the SMTP environment.
type ReturnPath struct {
	Mailbox Mailbox
}

func (ReturnPath) Name() string { return "Return-Path" }

// Body renders the angle-bracketed address. A display name on the payload
// mailbox is not part of a return path.
func (h ReturnPath) Body() string {
	return "<" + h.Mailbox.Address().String() + ">"
}

func (h ReturnPath) String() string { return FormatHeader(h) }

func (ReturnPath) header() {}
