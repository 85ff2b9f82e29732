// Package mbox streams messages out of an mbox archive and validates
// their address-bearing headers.
package mbox

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	mboxlib "github.com/emersion/go-mbox"
	gomessage "github.com/emersion/go-message"

	"github.com/mheijink/brief/mail"
	"github.com/mheijink/brief/model"
)

// Result holds the findings for one scanned message.
type Result struct {
	MessageID string
	Findings  []model.Finding
}

var (
	mbox_test_data_using = false
	mbox_test_data       []byte
)

func newReader(path string) (*mboxlib.Reader, func(), error) {
	if mbox_test_data_using {
		return mboxlib.NewReader(bytes.NewReader(mbox_test_data)), func() {}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open mbox: %w", err)
	}
	return mboxlib.NewReader(file), func() { _ = file.Close() }, nil
}

// Scan opens an mbox file, validates the given header fields of every
// message with the brief grammar, and calls the callback with the findings
// per message. Messages whose headers cannot be decoded at all are
// skipped.
func Scan(path string, headers []string, callback func(r Result) error) error {
	reader, cleanup, err := newReader(path)
	if err != nil {
		return err
	}
	defer cleanup()

	for {
		msgReader, err := reader.NextMessage()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		entity, err := gomessage.Read(msgReader)
		if err != nil && !gomessage.IsUnknownCharset(err) {
			// try to continue
			continue
		}

		id := strings.TrimSpace(entity.Header.Get("Message-Id"))
		if id == "" {
			id = strings.TrimSpace(entity.Header.Get("Message-ID"))
		}
		id = strings.Trim(id, " <>")

		result := Result{MessageID: id}
		for _, header := range headers {
			value := headerText(entity.Header, header)
			if value == "" {
				continue
			}
			for _, raw := range splitList(value) {
				result.Findings = append(result.Findings, check(id, header, raw))
			}
		}

		if err := callback(result); err != nil {
			return err
		}
	}
}

// CountMessages counts the total number of messages in an mbox file.
func CountMessages(path string) (int, error) {
	reader, cleanup, err := newReader(path)
	if err != nil {
		return 0, err
	}
	defer cleanup()

	count := 0
	for {
		msgReader, err := reader.NextMessage()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return count, nil
			}
			return 0, err
		}

		// Just consume the message without parsing
		if _, err := io.Copy(io.Discard, msgReader); err != nil {
			count++
			continue
		}
		count++
	}
}

// headerText returns the decoded header value, falling back to the raw
// value when encoded words use an unknown charset.
func headerText(h gomessage.Header, key string) string {
	text, err := h.Text(key)
	if err != nil {
		text = h.Get(key)
	}
	return strings.TrimSpace(text)
}

// splitList splits a comma-separated list of mailboxes. Commas are
// forbidden inside parts, so a comma always separates list members.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// check validates one header value: first as a mailbox, then as a bare
// address when no brackets are present at all.
func check(messageID, header, raw string) model.Finding {
	finding := model.Finding{
		MessageID: messageID,
		Header:    header,
		Raw:       raw,
	}

	mb, err := mail.ParseMailbox(raw)
	if err == nil {
		finding.Domain = mb.Address().Domain()
		return finding
	}

	if errors.Is(err, mail.ErrMissingAngleBrackets) {
		addr, aerr := mail.ParseAddress(raw)
		if aerr == nil {
			finding.Domain = addr.Domain()
			return finding
		}
		err = aerr
	}

	finding.Err = err
	return finding
}
