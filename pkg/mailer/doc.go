// Package mailer assembles an outbound mail sender from configuration.
//
// Config is read from the environment (see pkg/config) and selects one of the
// transports:
//
//   - "postmark" delivers through the Postmark API (github.com/mrz1836/postmark).
//   - "file" writes each message as an .html file plus a .json metadata file
//     into a directory, for development and tests.
//
// New validates the sender identity (From, optional Reply-To) with net/mail,
// builds the transport and returns a Sender that validates every message,
// applies the default tag and logs delivery with recipient addresses redacted.
//
//	var cfg mailer.Config
//	config.MustLoad(&cfg)
//	sender, err := mailer.New(cfg, mailer.WithLogger(log))
//	if err != nil {
//	    return err // errors.Is(err, mailer.ErrInvalidConfig)
//	}
//	err = sender.Send(ctx, mailer.Message{
//	    To:       "editor@example.com",
//	    Subject:  "Entry approved",
//	    HTMLBody: "<p>Your entry is live.</p>",
//	})
package mailer
