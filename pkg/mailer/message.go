package mailer

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is one outbound email. To accepts a comma separated address list.
type Message struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body,omitempty"`
	TextBody string `json:"text_body,omitempty"`
	Tag      string `json:"tag,omitempty"`
}

// Validate checks recipients, subject and that at least one body is set.
func (m Message) Validate() error {
	if strings.TrimSpace(m.To) == "" {
		return fmt.Errorf("%w: recipient is required", ErrInvalidMessage)
	}
	if _, err := mail.ParseAddressList(m.To); err != nil {
		return fmt.Errorf("%w: invalid recipient %q", ErrInvalidMessage, m.To)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidMessage)
	}
	if m.HTMLBody == "" && m.TextBody == "" {
		return fmt.Errorf("%w: html or text body is required", ErrInvalidMessage)
	}
	return nil
}

// maskAddress keeps the first character of the local part and the domain.
func maskAddress(list string) string {
	addrs, err := mail.ParseAddressList(list)
	if err != nil {
		return "***"
	}
	masked := make([]string, len(addrs))
	for i, a := range addrs {
		local, domain, ok := strings.Cut(a.Address, "@")
		if !ok || local == "" {
			masked[i] = "***"
			continue
		}
		first, _ := utf8.DecodeRuneInString(local)
		masked[i] = string(first) + "***@" + domain
	}
	return strings.Join(masked, ", ")
}
