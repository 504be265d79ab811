package mailer

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/cmskit/pkg/logger"
)

// Option configures New.
type Option func(*options)

type options struct {
	logger          *slog.Logger
	httpClient      *http.Client
	postmarkBaseURL string
	now             func() time.Time
}

// WithLogger sets the logger used for delivery events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithHTTPClient sets the HTTP client used by API transports.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.httpClient = c
		}
	}
}

// WithPostmarkBaseURL overrides the Postmark API endpoint.
func WithPostmarkBaseURL(url string) Option {
	return func(o *options) {
		o.postmarkBaseURL = url
	}
}

// WithClock sets the time source used for file names and timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

type transport interface {
	name() string
	send(ctx context.Context, msg Message) error
}

type sender struct {
	transport  transport
	defaultTag string
	logger     *slog.Logger
}

// New validates cfg and assembles the configured transport.
func New(cfg Config, opts ...Option) (Sender, error) {
	o := &options{
		logger: logger.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var t transport
	switch cfg.transport() {
	case TransportPostmark:
		t = newPostmarkTransport(cfg, o)
	default:
		t = newFileTransport(cfg, o)
	}

	return &sender{
		transport:  t,
		defaultTag: cfg.DefaultTag,
		logger:     o.logger.With(logger.Component("mailer"), logger.Transport(t.name())),
	}, nil
}

// MustNew is like New but panics on invalid configuration.
func MustNew(cfg Config, opts ...Option) Sender {
	s, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *sender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if msg.Tag == "" {
		msg.Tag = s.defaultTag
	}

	start := time.Now()
	if err := s.transport.send(ctx, msg); err != nil {
		s.logger.ErrorContext(ctx, "mail delivery failed",
			slog.String("to", maskAddress(msg.To)),
			logger.Error(err),
		)
		return err
	}

	s.logger.InfoContext(ctx, "mail sent",
		slog.String("to", maskAddress(msg.To)),
		slog.String("tag", msg.Tag),
		logger.Duration(time.Since(start)),
	)
	return nil
}
