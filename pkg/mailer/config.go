package mailer

import (
	"fmt"
	"net/mail"
	"strings"
)

// Transport names accepted by Config.Transport.
const (
	TransportPostmark = "postmark"
	TransportFile     = "file"
)

// Config describes the sender identity and the transport to deliver with.
// Postmark tokens are only required for the postmark transport.
type Config struct {
	Transport            string `env:"MAILER_TRANSPORT" envDefault:"file"`
	FromEmail            string `env:"MAILER_FROM_EMAIL,required"`
	FromName             string `env:"MAILER_FROM_NAME"`
	ReplyTo              string `env:"MAILER_REPLY_TO"`
	DefaultTag           string `env:"MAILER_DEFAULT_TAG"`
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	FileDir              string `env:"MAILER_FILE_DIR" envDefault:"storage/mail"`
}

// Validate checks the sender identity and transport specific settings.
func (c Config) Validate() error {
	if c.FromEmail == "" {
		return fmt.Errorf("%w: FromEmail is required", ErrInvalidConfig)
	}
	if _, err := mail.ParseAddress(c.FromEmail); err != nil {
		return fmt.Errorf("%w: FromEmail must be a valid email address", ErrInvalidConfig)
	}
	if c.ReplyTo != "" {
		if _, err := mail.ParseAddress(c.ReplyTo); err != nil {
			return fmt.Errorf("%w: ReplyTo must be a valid email address", ErrInvalidConfig)
		}
	}

	switch c.transport() {
	case TransportPostmark:
		if c.PostmarkServerToken == "" {
			return fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
		}
	case TransportFile:
		if c.FileDir == "" {
			return fmt.Errorf("%w: FileDir is required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidConfig, c.Transport)
	}
	return nil
}

// FromHeader returns the From header value, `"Name" <addr>` when a name is set.
func (c Config) FromHeader() string {
	addr := mail.Address{Name: c.FromName, Address: c.FromEmail}
	return addr.String()
}

func (c Config) transport() string {
	if c.Transport == "" {
		return TransportFile
	}
	return strings.ToLower(c.Transport)
}
