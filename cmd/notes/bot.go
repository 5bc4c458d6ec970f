package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xaenox/memo-notes/internal/bot"
)

var errNoTelegramToken = errors.New("telegram token is required (telegram.token or TELEGRAM_TOKEN)")

func newBotCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot, one notebook per user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token := a.cfg.Telegram.Token
			if token == "" {
				return errNoTelegramToken
			}

			clf := a.cfg.NewClassifier(a.logger)
			if clf == nil {
				a.logger.Info("Category suggestions disabled")
			}

			b, err := bot.New(token, a.store, clf, a.logger)
			if err != nil {
				a.logger.Error("Failed to create bot", zap.Error(err))
				return err
			}
			if err := b.Start(cmd.Context()); err != nil {
				a.logger.Error("Bot error", zap.Error(err))
				return err
			}
			a.logger.Info("Bot stopped")
			return nil
		},
	}
}
