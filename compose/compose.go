// Package compose renders a validated message into RFC 822 text.
package compose

import (
	"fmt"
	"io"
	"time"

	gomail "github.com/emersion/go-message/mail"

	"github.com/mheijink/brief/mail"
)

// Options describe the rendered message around the validated from/to pair.
type Options struct {
	Subject string
	Body    string
	Date    time.Time // defaults to time.Now()
}

// Write renders msg as a plain-text RFC 822 message to w.
func Write(w io.Writer, msg mail.Message, opts Options) error {
	if opts.Date.IsZero() {
		opts.Date = time.Now()
	}

	var h gomail.Header
	h.SetDate(opts.Date)
	h.SetSubject(opts.Subject)
	h.SetAddressList("From", []*gomail.Address{{Address: msg.From().String()}})
	h.SetAddressList("To", []*gomail.Address{{Address: msg.To().String()}})

	mw, err := gomail.CreateSingleInlineWriter(w, h)
	if err != nil {
		return fmt.Errorf("create message writer: %w", err)
	}

	if _, err := io.WriteString(mw, opts.Body); err != nil {
		mw.Close()
		return fmt.Errorf("write body: %w", err)
	}

	if err := mw.Close(); err != nil {
		return fmt.Errorf("close message writer: %w", err)
	}
	return nil
}
