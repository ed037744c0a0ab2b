package botservice

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

const pollTimeout = 30 // seconds

// Bot is the Telegram frontend. It owns the long-polling loop and hands
// every non-command text to the pipeline.
type Bot struct {
	api      *tgbotapi.BotAPI
	pipeline *Pipeline
}

// NewBot authorizes against the Telegram API and wires in the pipeline
func NewBot(token string, pipeline *Pipeline) (b *Bot, err error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return b, fmt.Errorf("Telegram authorization - %v", err)
	}

	log.WithField("account", api.Self.UserName).Println("Bot authorized")

	return &Bot{
		api:      api,
		pipeline: pipeline,
	}, nil
}

// Run polls for updates until the context is cancelled. Each update is
// handled in its own goroutine; one slow upstream call must not block the
// next user.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, open := <-updates:
			if !open {
				return nil
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			go b.handleMessage(update.Message)
		}
	}
}

// handleMessage serves one incoming message. The recover keeps a defect in
// a single update from killing the poller.
func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("chat", msg.Chat.ID).Errorf("Handler panic - %v", r)
		}
	}()

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.reply(msg.Chat.ID, welcomeText, false)
		case "help":
			b.reply(msg.Chat.ID, helpText, false)
		}
		return
	}

	progress, err := b.send(tgbotapi.NewMessage(msg.Chat.ID, processingText))
	if err != nil {
		log.Warnf("Progress message failed - %v", err)
	}

	chunks := b.pipeline.HandleText(msg.Text)

	// a single chunk edits the progress message in place; multiple
	// chunks replace it with a fresh sequence
	if len(chunks) == 1 && progress.MessageID != 0 {
		edit := tgbotapi.NewEditMessageText(msg.Chat.ID, progress.MessageID, chunks[0])
		edit.ParseMode = tgbotapi.ModeMarkdown
		if _, err = b.api.Send(edit); err != nil {
			log.Warnf("Edit failed - %v", err)
		}
		return
	}

	if progress.MessageID != 0 {
		if _, err = b.api.Request(tgbotapi.NewDeleteMessage(msg.Chat.ID, progress.MessageID)); err != nil {
			log.Warnf("Delete failed - %v", err)
		}
	}
	for i := range chunks {
		// only the first chunk keeps its link preview
		b.reply(msg.Chat.ID, chunks[i], i > 0)
	}
}

func (b *Bot) reply(chatID int64, text string, disablePreview bool) {
	m := tgbotapi.NewMessage(chatID, text)
	m.ParseMode = tgbotapi.ModeMarkdown
	m.DisableWebPagePreview = disablePreview
	if _, err := b.send(m); err != nil {
		log.WithField("chat", chatID).Warnf("Reply failed - %v", err)
	}
}

func (b *Bot) send(c tgbotapi.MessageConfig) (tgbotapi.Message, error) {
	c.ParseMode = tgbotapi.ModeMarkdown
	return b.api.Send(c)
}
