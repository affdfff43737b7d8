package infrastructure

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/media-relay-go/internal/domain"
	"go.uber.org/zap"
)

// MessageHandler receives messages pulled off the chat surface. Implemented
// by the application layer; HandleMessage must not block the update loop.
type MessageHandler interface {
	// HandleCommand handles a slash command (without the slash).
	HandleCommand(ctx context.Context, chatID int64, command string)

	// HandleMessage handles arbitrary message text.
	HandleMessage(ctx context.Context, chatID int64, text string)
}

// TelegramBot wraps the Telegram Bot API: the long-poll update loop on one
// side and the delivery interface (domain.MediaSender) on the other.
type TelegramBot struct {
	api           *tgbotapi.BotAPI
	updateTimeout int
	logger        *zap.Logger
}

// NewTelegramBot authorizes against the Bot API with the given token
func NewTelegramBot(config *domain.TelegramConfig, logger *zap.Logger) (*TelegramBot, error) {
	api, err := tgbotapi.NewBotAPI(config.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize telegram bot: %w", err)
	}

	logger.Info("Authorized on Telegram",
		zap.String("username", api.Self.UserName))

	return &TelegramBot{
		api:           api,
		updateTimeout: config.UpdateTimeout,
		logger:        logger,
	}, nil
}

// Username returns the bot account's username
func (b *TelegramBot) Username() string {
	return b.api.Self.UserName
}

// Listen pulls updates until ctx is cancelled, passing each text message to
// the handler. Commands are routed separately so the pipeline only ever sees
// plain text.
func (b *TelegramBot) Listen(ctx context.Context, handler MessageHandler) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.updateTimeout

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			msg := update.Message
			if msg == nil || msg.Text == "" {
				continue
			}
			if msg.IsCommand() {
				handler.HandleCommand(ctx, msg.Chat.ID, msg.Command())
				continue
			}
			handler.HandleMessage(ctx, msg.Chat.ID, msg.Text)
		}
	}
}

// SendMedia transmits a classified media file to the chat. The file is read
// from path at send time, so the caller must keep its workspace alive until
// this returns.
func (b *TelegramBot) SendMedia(chatID int64, kind domain.MediaKind, path, caption string) error {
	switch kind {
	case domain.MediaVideo:
		video := tgbotapi.NewVideo(chatID, tgbotapi.FilePath(path))
		video.Caption = caption
		if _, err := b.api.Send(video); err != nil {
			return fmt.Errorf("failed to send video: %w", err)
		}
	case domain.MediaImage:
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(path))
		photo.Caption = caption
		if _, err := b.api.Send(photo); err != nil {
			return fmt.Errorf("failed to send photo: %w", err)
		}
	default:
		if err := b.SendText(chatID, "No supported media found"); err != nil {
			b.logger.Warn("Failed to send fallback notice", zap.Error(err))
		}
		return domain.ErrUnknownMediaKind
	}
	return nil
}

// SendText sends a plain text message to the chat
func (b *TelegramBot) SendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}
