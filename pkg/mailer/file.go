package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrymomot/cmskit/pkg/pathutil"
)

// fileTransport writes messages to disk instead of delivering them.
type fileTransport struct {
	dir   string
	from  string
	reply string
	now   func() time.Time
}

type fileMetadata struct {
	Timestamp string `json:"timestamp"`
	From      string `json:"from"`
	ReplyTo   string `json:"reply_to,omitempty"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Tag       string `json:"tag,omitempty"`
	TextBody  string `json:"text_body,omitempty"`
}

func newFileTransport(cfg Config, o *options) *fileTransport {
	return &fileTransport{
		dir:   cfg.FileDir,
		from:  cfg.FromHeader(),
		reply: cfg.ReplyTo,
		now:   o.now,
	}
}

func (t *fileTransport) name() string { return TransportFile }

func (t *fileTransport) send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(t.dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSend, err)
	}

	now := t.now()
	identifier := msg.Tag
	if identifier == "" {
		identifier = msg.Subject
	}
	base := now.Format("2006_01_02_150405.000000000") + "_" +
		pathutil.SanitizeFilename(identifier, pathutil.WithSeparator("_"), pathutil.WithMaxLength(100))

	if msg.HTMLBody != "" {
		htmlPath := filepath.Join(t.dir, base+".html")
		if err := os.WriteFile(htmlPath, []byte(msg.HTMLBody), 0o644); err != nil {
			return fmt.Errorf("%w: failed to write HTML file: %v", ErrFailedToSend, err)
		}
	}

	meta, err := json.MarshalIndent(fileMetadata{
		Timestamp: now.Format(time.RFC3339),
		From:      t.from,
		ReplyTo:   t.reply,
		To:        msg.To,
		Subject:   msg.Subject,
		Tag:       msg.Tag,
		TextBody:  msg.TextBody,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSend, err)
	}
	if err := os.WriteFile(filepath.Join(t.dir, base+".json"), meta, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSend, err)
	}
	return nil
}
