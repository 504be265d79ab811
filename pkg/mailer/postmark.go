package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

type postmarkTransport struct {
	client *postmark.Client
	from   string
	reply  string
}

func newPostmarkTransport(cfg Config, o *options) *postmarkTransport {
	client := postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken)
	if o.postmarkBaseURL != "" {
		client.BaseURL = o.postmarkBaseURL
	}
	if o.httpClient != nil {
		client.HTTPClient = o.httpClient
	}
	return &postmarkTransport{
		client: client,
		from:   cfg.FromHeader(),
		reply:  cfg.ReplyTo,
	}
}

func (t *postmarkTransport) name() string { return TransportPostmark }

// send tracks opens and HTML link clicks only.
func (t *postmarkTransport) send(ctx context.Context, msg Message) error {
	resp, err := t.client.SendEmail(ctx, postmark.Email{
		From:       t.from,
		ReplyTo:    t.reply,
		To:         msg.To,
		Subject:    msg.Subject,
		Tag:        msg.Tag,
		HTMLBody:   msg.HTMLBody,
		TextBody:   msg.TextBody,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return errors.Join(ErrFailedToSend, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSend,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}

