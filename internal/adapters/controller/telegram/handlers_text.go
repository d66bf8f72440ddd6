package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"AccelMailBot/internal/domain/errorz"
	"AccelMailBot/internal/domain/schema"
	"AccelMailBot/internal/domain/service/schedule"
	wizardsvc "AccelMailBot/internal/domain/service/wizard"
)

// handleText routes free-form input to whatever the session is waiting
// for: a profile field, a quantity, a start date, a map location or an
// admin price edit.
func (c *Controller) handleText(ctx context.Context, upd *models.Update) {
	msg := upd.Message
	if msg == nil || msg.From == nil {
		return
	}
	userID := msg.From.ID
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)
	if text == "" || strings.HasPrefix(text, "/") {
		return
	}

	sess, found, err := c.wizard.Get(ctx, userID)
	if err != nil {
		c.sendError(ctx, chatID, err)
		return
	}
	if !found {
		c.reply(ctx, chatID, "Nothing in progress. Use /menu to start a campaign.")
		return
	}

	if sess.AdminEdit != nil && c.access.IsAdmin(userID) {
		c.applyRateEdit(ctx, chatID, userID, sess, text)
		return
	}

	switch wizardsvc.CurrentStep(sess).ID {
	case schema.StepProfile:
		c.applyProfileInput(ctx, chatID, userID, sess, text)
	case schema.StepCreative:
		c.applyQuantityInput(ctx, chatID, userID, text)
	case schema.StepCadence:
		c.applyDateInput(ctx, chatID, userID, text)
	case schema.StepMap:
		c.applyLocationInput(ctx, chatID, userID, text)
	case schema.StepUpload:
		c.reply(ctx, chatID, "Attach your CSV as a document (use the paperclip), don't paste it as text.")
	default:
		c.reply(ctx, chatID, "Use the buttons to continue, or /menu to start over.")
	}
}

func (c *Controller) applyProfileInput(ctx context.Context, chatID, userID int64, sess schema.Session, text string) {
	field := sess.ProfileField
	if field >= len(profileFields) {
		c.reply(ctx, chatID, "Profile complete. Hit Next to continue.")
		return
	}

	patch := schema.DraftPatch{}
	switch field {
	case 0:
		patch.BusinessName = &text
	case 1:
		patch.FirstName = &text
	case 2:
		patch.LastName = &text
	case 3:
		if !strings.Contains(text, "@") {
			c.reply(ctx, chatID, "That doesn't look like an email address. Try again.")
			return
		}
		patch.Email = &text
	}

	sess, err := c.wizard.UpdateDraft(ctx, userID, patch)
	if err != nil {
		c.sendError(ctx, chatID, err)
		return
	}
	sess.ProfileField = field + 1
	if err := c.wizard.Save(ctx, userID, sess); err != nil {
		c.sendError(ctx, chatID, err)
		return
	}
	c.renderStep(ctx, chatID, userID, sess)
}

func (c *Controller) applyQuantityInput(ctx context.Context, chatID, userID int64, text string) {
	quantity, err := strconv.Atoi(strings.ReplaceAll(text, ",", ""))
	if err != nil {
		c.reply(ctx, chatID, "Send the quantity as a plain number, e.g. 1000.")
		return
	}
	if quantity < schema.MinOrderQuantity {
		c.reply(ctx, chatID, fmt.Sprintf("Minimum order is %d pieces.", schema.MinOrderQuantity))
		return
	}
	c.patchAndRender(ctx, chatID, userID, schema.DraftPatch{Quantity: &quantity})
}

func (c *Controller) applyDateInput(ctx context.Context, chatID, userID int64, text string) {
	catalog := c.remoteCatalog(ctx)
	if err := schedule.ValidateStartDate(text, catalog.BlackoutDates, time.Now()); err != nil {
		if v, ok := errorz.AsValidation(err); ok {
			c.reply(ctx, chatID, v.Message)
			return
		}
		c.sendError(ctx, chatID, err)
		return
	}
	c.patchAndRender(ctx, chatID, userID, schema.DraftPatch{StartDate: &text})
}

func (c *Controller) applyLocationInput(ctx context.Context, chatID, userID int64, text string) {
	lat, lng, err := c.geo.Search(ctx, text)
	if err != nil {
		c.reply(ctx, chatID, "Couldn't find that place. Try a zip code or \"city, state\".")
		return
	}
	c.patchAndRender(ctx, chatID, userID, schema.DraftPatch{MapLat: &lat, MapLng: &lng})
}

func (c *Controller) applyRateEdit(ctx context.Context, chatID, userID int64, sess schema.Session, text string) {
	price, err := strconv.ParseFloat(strings.TrimPrefix(text, "$"), 64)
	if err != nil {
		c.reply(ctx, chatID, "Send the price as a number, e.g. 0.55")
		return
	}

	edit := *sess.AdminEdit
	rate, err := c.rates.SetPrice(ctx, edit.Format, edit.Tier, price)
	if err != nil {
		if v, ok := errorz.AsValidation(err); ok {
			c.reply(ctx, chatID, v.Message)
			return
		}
		c.sendError(ctx, chatID, err)
		return
	}

	sess.AdminEdit = nil
	if err := c.wizard.Save(ctx, userID, sess); err != nil {
		c.sendError(ctx, chatID, err)
		return
	}

	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   fmt.Sprintf("Updated: %s, %s → $%.2f / piece", rate.Format, rate.Tier, rate.PricePerPiece),
	})
	c.sendAdminRates(ctx, chatID)
}

func (c *Controller) reply(ctx context.Context, chatID int64, text string) {
	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{ChatID: chatID, Text: text})
}
