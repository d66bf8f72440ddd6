package telegram

import (
	"bytes"
	"context"

	"github.com/rs/zerolog/log"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"AccelMailBot/internal/domain/schema"
)

func (c *Controller) start(ctx context.Context, b *tgbot.Bot, upd *models.Update) {
	if upd.Message == nil || upd.Message.From == nil {
		return
	}
	userID := upd.Message.From.ID
	chatID := upd.Message.Chat.ID
	_ = c.wizard.Cancel(ctx, userID)

	_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: chatID,
		Text: "Welcome to AccelMail!\n\n" +
			"Precision direct mail built around your actual target segments. " +
			"Pick a path below to start a campaign.",
		ReplyMarkup: c.mainMenu(userID),
	})
}

func (c *Controller) menu(ctx context.Context, b *tgbot.Bot, upd *models.Update) {
	if upd.Message == nil || upd.Message.From == nil {
		return
	}
	chatID := upd.Message.Chat.ID
	userID := upd.Message.From.ID
	_ = c.wizard.Cancel(ctx, userID)

	_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Main menu",
		ReplyMarkup: c.mainMenu(userID),
	})
}

func (c *Controller) template(ctx context.Context, b *tgbot.Bot, upd *models.Update) {
	if upd.Message == nil {
		return
	}
	c.sendListTemplate(ctx, upd.Message.Chat.ID)
}

// sendListTemplate delivers the CSV upload template as a document.
func (c *Controller) sendListTemplate(ctx context.Context, chatID int64) {
	_, err := c.bot.SendDocument(ctx, &tgbot.SendDocumentParams{
		ChatID: chatID,
		Document: &models.InputFileUpload{
			Filename: schema.ListTemplateFileName,
			Data:     bytes.NewReader(schema.ListTemplateCSV()),
		},
		Caption: "Fill this template with your addresses, then send it back here on the upload step.",
	})
	if err != nil {
		log.Error().Err(err).Msg("send list template")
	}
}
