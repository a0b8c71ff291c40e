package bot

import (
	"context"
	"fmt"

	tg "github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"
	"github.com/iolobot/iolo/internal/log"
)

// Telegram owns the long-lived connection to the Telegram Bot API. It feeds
// inbound text messages to a Dispatcher and implements the Replier and
// Presence ports on the way out.
type Telegram struct {
	api    *tg.Bot
	logger log.Logger

	// dispatcher is set once in Run before polling starts; updates only
	// arrive after Start, so no synchronization is needed.
	dispatcher *Dispatcher
}

// NewTelegram creates the Telegram session. It does not start polling;
// call Run.
func NewTelegram(token string, logger log.Logger) (*Telegram, error) {
	t := &Telegram{logger: logger}

	api, err := tg.New(token, tg.WithDefaultHandler(t.handleUpdate))
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}
	t.api = api

	return t, nil
}

// Run polls for updates until ctx is cancelled, then drains in-flight
// message units before returning.
func (t *Telegram) Run(ctx context.Context, d *Dispatcher) {
	t.dispatcher = d

	t.logger.Info("bot session starting")
	t.api.Start(ctx)
	t.logger.Info("bot session stopped, draining in-flight messages")

	d.Wait()
}

// handleUpdate reduces one Telegram update to a Message and hands it to the
// dispatcher. Non-text updates (joins, stickers, edits, ...) are dropped.
func (t *Telegram) handleUpdate(ctx context.Context, _ *tg.Bot, update *tgmodels.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	t.dispatcher.HandleMessage(ctx, Message{
		ChatID: update.Message.Chat.ID,
		Text:   update.Message.Text,
	})
}

// SendReply delivers one outbound message.
func (t *Telegram) SendReply(ctx context.Context, chatID int64, text string) error {
	_, err := t.api.SendMessage(ctx, &tg.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// SendTyping shows the "composing" chat action once.
func (t *Telegram) SendTyping(ctx context.Context, chatID int64) error {
	_, err := t.api.SendChatAction(ctx, &tg.SendChatActionParams{
		ChatID: chatID,
		Action: tgmodels.ChatActionTyping,
	})
	if err != nil {
		return fmt.Errorf("send chat action: %w", err)
	}
	return nil
}
