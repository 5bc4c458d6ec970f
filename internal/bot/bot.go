package bot

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/xaenox/memo-notes/internal/classifier"
	"github.com/xaenox/memo-notes/internal/notebook"
	"github.com/xaenox/memo-notes/internal/storage"
)

// Sender is the part of the Telegram API the bot writes to.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Bot struct {
	api        *tgbotapi.BotAPI
	sender     Sender
	storage    storage.Storage
	classifier classifier.Classifier
	logger     *zap.Logger

	mu        sync.Mutex
	notebooks map[int64]*notebook.Notebook
}

// New connects to Telegram. clf may be nil to disable automatic categories.
func New(token string, store storage.Storage, clf classifier.Classifier, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	b := newBot(api, store, clf, logger)
	b.api = api
	b.logger.Info("Authorized on Telegram", zap.String("username", api.Self.UserName))
	return b, nil
}

func newBot(sender Sender, store storage.Storage, clf classifier.Classifier, logger *zap.Logger) *Bot {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bot{
		sender:     sender,
		storage:    store,
		classifier: clf,
		logger:     logger,
		notebooks:  make(map[int64]*notebook.Notebook),
	}
}

// Start polls for updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			go b.handleMessage(ctx, update.Message)
		}
	}
}

// notebookFor returns the notebook of a Telegram user, keyed under its own prefix.
func (b *Bot) notebookFor(userID int64) *notebook.Notebook {
	b.mu.Lock()
	defer b.mu.Unlock()

	nb, ok := b.notebooks[userID]
	if !ok {
		scoped := storage.Prefixed(b.storage, "user:"+strconv.FormatInt(userID, 10)+":")
		nb = notebook.New(scoped, notebook.WithLogger(b.logger.With(zap.Int64("user_id", userID))))
		b.notebooks[userID] = nb
	}
	return nb
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		return
	}

	// Handle commands
	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}

	// Get content from message
	content := message.Text
	if message.Caption != "" {
		content = message.Caption
	}
	if content == "" {
		return
	}

	b.handleNewNote(ctx, message, content)
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.sender.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}

func (b *Bot) sendMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "MarkdownV2"
	if _, err := b.sender.Send(msg); err != nil {
		b.logger.Error("Failed to send markdown message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}

func (b *Bot) sendErrorMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, "⚠️ "+text)
	if _, err := b.sender.Send(msg); err != nil {
		b.logger.Error("Failed to send error message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}
