package telegram

import (
	"context"

	"github.com/go-telegram/bot/models"

	"AccelMailBot/internal/domain/schema"
	wizardsvc "AccelMailBot/internal/domain/service/wizard"
)

// handleDocument attaches a mailing list file to the draft when the
// session sits on the upload step. The payload itself is fetched later,
// at submission time, by the file ID.
func (c *Controller) handleDocument(ctx context.Context, upd *models.Update) {
	msg := upd.Message
	if msg == nil || msg.From == nil || msg.Document == nil {
		return
	}
	userID := msg.From.ID
	chatID := msg.Chat.ID

	sess, found, err := c.wizard.Get(ctx, userID)
	if err != nil {
		c.sendError(ctx, chatID, err)
		return
	}
	if !found {
		c.reply(ctx, chatID, "Nothing in progress. Use /menu to start a campaign.")
		return
	}
	if wizardsvc.CurrentStep(sess).ID != schema.StepUpload {
		c.reply(ctx, chatID, "I wasn't expecting a file here. Go to the upload step first.")
		return
	}

	doc := msg.Document
	list := &schema.UploadedListRef{
		Name:        doc.FileName,
		FileID:      doc.FileID,
		ContentType: doc.MimeType,
		Size:        doc.FileSize,
	}
	c.patchAndRender(ctx, chatID, userID, schema.DraftPatch{UploadedList: list})
}
