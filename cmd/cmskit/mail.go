package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/cmskit/pkg/config"
	"github.com/dmitrymomot/cmskit/pkg/mailer"
)

func newMailCmd(a *app) *cobra.Command {
	var msg mailer.Message

	cmd := &cobra.Command{
		Use:   "mail <to> <subject>",
		Short: "Send a message through the configured mail transport",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg mailer.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}

			sender, err := mailer.New(cfg, mailer.WithLogger(a.logger))
			if err != nil {
				return err
			}

			msg.To = args[0]
			msg.Subject = args[1]
			return sender.Send(cmd.Context(), msg)
		},
	}

	cmd.Flags().StringVar(&msg.TextBody, "text", "", "plain text body")
	cmd.Flags().StringVar(&msg.HTMLBody, "html", "", "HTML body")
	cmd.Flags().StringVar(&msg.Tag, "tag", "", "message tag")
	return cmd
}
