package telegram

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"AccelMailBot/internal/domain/errorz"
	"AccelMailBot/internal/domain/schema"
	"AccelMailBot/internal/domain/service/pricing"
	wizardsvc "AccelMailBot/internal/domain/service/wizard"
)

func (c *Controller) handleCallback(ctx context.Context, upd *models.Update) {
	cb := upd.CallbackQuery
	if cb == nil {
		return
	}
	userID := cb.From.ID
	chatID := cb.Message.Message.Chat.ID
	data := cb.Data

	switch {
	case data == "noop":
		c.answerCallback(ctx, cb.ID, "")

	case data == "menu":
		c.answerCallback(ctx, cb.ID, "")
		c.sendMenu(ctx, chatID, userID)

	case data == "tpl":
		c.answerCallback(ctx, cb.ID, "")
		c.sendListTemplate(ctx, chatID)

	case data == "price":
		c.answerCallback(ctx, cb.ID, "")
		c.sendPricing(ctx, chatID)

	case data == "wiz:new":
		c.answerCallback(ctx, cb.ID, "")
		sess, err := c.wizard.Start(ctx, userID, wizardsvc.StartOptions{Reset: true})
		if err != nil {
			c.sendError(ctx, chatID, err)
			return
		}
		c.renderStep(ctx, chatID, userID, sess)

	case strings.HasPrefix(data, "wiz:go:"):
		c.answerCallback(ctx, cb.ID, "")
		c.startFromTile(ctx, chatID, userID, strings.TrimPrefix(data, "wiz:go:"))

	case data == "wiz:next":
		c.onNext(ctx, cb, chatID, userID)

	case data == "wiz:back":
		c.answerCallback(ctx, cb.ID, "")
		sess, exited, err := c.wizard.Back(ctx, userID)
		if err != nil {
			c.sendError(ctx, chatID, err)
			return
		}
		if exited {
			c.sendMenu(ctx, chatID, userID)
			return
		}
		c.renderStep(ctx, chatID, userID, sess)

	case strings.HasPrefix(data, "src:"):
		c.answerCallback(ctx, cb.ID, "")
		source := schema.SourceKind(strings.TrimPrefix(data, "src:"))
		c.patchAndRender(ctx, chatID, userID, schema.DraftPatch{Source: &source})

	case strings.HasPrefix(data, "srv:mode:"):
		c.answerCallback(ctx, cb.ID, "")
		mode := schema.SurveyMode(strings.TrimPrefix(data, "srv:mode:"))
		c.patchAndRender(ctx, chatID, userID, schema.DraftPatch{SurveyMode: &mode})

	case strings.HasPrefix(data, "srv:t:"):
		c.onSurveyToggle(ctx, cb, chatID, userID, data)

	case strings.HasPrefix(data, "map:rad:"):
		c.answerCallback(ctx, cb.ID, "")
		radius, err := strconv.ParseFloat(strings.TrimPrefix(data, "map:rad:"), 64)
		if err != nil {
			return
		}
		c.patchAndRender(ctx, chatID, userID, schema.DraftPatch{MapRadius: &radius})

	case strings.HasPrefix(data, "cre:t:"):
		c.answerCallback(ctx, cb.ID, "")
		creative := schema.CreativeType(strings.TrimPrefix(data, "cre:t:"))
		c.patchAndRender(ctx, chatID, userID, schema.DraftPatch{CreativeType: &creative})

	case strings.HasPrefix(data, "cre:f:"):
		c.answerCallback(ctx, cb.ID, "")
		idx, ok := parseIntPart(data, 2)
		if !ok || idx < 0 || idx >= len(schema.MailerFormats) {
			return
		}
		format := schema.MailerFormats[idx]
		c.patchAndRender(ctx, chatID, userID, schema.DraftPatch{MailerFormat: &format})

	case strings.HasPrefix(data, "cad:"):
		c.answerCallback(ctx, cb.ID, "")
		cadence := schema.Cadence(strings.TrimPrefix(data, "cad:"))
		c.patchAndRender(ctx, chatID, userID, schema.DraftPatch{Cadence: &cadence})

	case strings.HasPrefix(data, "adm:"):
		c.onAdminCallback(ctx, cb, chatID, userID, data)
	}
}

func (c *Controller) startFromTile(ctx context.Context, chatID, userID int64, tile string) {
	var opts wizardsvc.StartOptions
	switch tile {
	case "upload":
		opts = wizardsvc.StartOptions{Reset: true, Source: schema.SourceUpload, JumpTo: schema.StepUpload}
	case "survey":
		opts = wizardsvc.StartOptions{Reset: true, Source: schema.SourceSurvey, JumpTo: schema.StepSegments}
	case "eddm":
		opts = wizardsvc.StartOptions{Reset: true, Source: schema.SourceEDDM, JumpTo: schema.StepMap}
	default:
		return
	}

	sess, err := c.wizard.Start(ctx, userID, opts)
	if err != nil {
		c.sendError(ctx, chatID, err)
		return
	}
	c.renderStep(ctx, chatID, userID, sess)
}

func (c *Controller) onNext(ctx context.Context, cb *models.CallbackQuery, chatID, userID int64) {
	sess, err := c.wizard.Next(ctx, userID)
	if err != nil {
		if v, ok := errorz.AsValidation(err); ok {
			_, _ = c.bot.AnswerCallbackQuery(ctx, &tgbot.AnswerCallbackQueryParams{
				CallbackQueryID: cb.ID,
				Text:            v.Message,
				ShowAlert:       true,
			})
			return
		}
		c.answerCallback(ctx, cb.ID, "")
		log.Error().Err(err).Int64("user_id", userID).Msg("submit campaign")
		_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
			ChatID: chatID,
			Text:   "Something went wrong. Please try again.",
		})
		c.renderStep(ctx, chatID, userID, sess)
		return
	}
	c.answerCallback(ctx, cb.ID, "")
	c.renderStep(ctx, chatID, userID, sess)
}

func (c *Controller) onSurveyToggle(ctx context.Context, cb *models.CallbackQuery, chatID, userID int64, data string) {
	catIdx, ok := parseIntPart(data, 2)
	if !ok {
		return
	}
	itemIdx, ok := parseIntPart(data, 3)
	if !ok {
		return
	}

	sess, found, err := c.wizard.Get(ctx, userID)
	if err != nil || !found {
		c.answerCallback(ctx, cb.ID, "Session expired, start again from the menu.")
		return
	}

	categories := schema.SurveyCategories(sess.Draft.SurveyMode)
	if catIdx < 0 || catIdx >= len(categories) {
		return
	}
	category := categories[catIdx]
	options := schema.SurveyOptions(sess.Draft.SurveyMode, category)
	if itemIdx < 0 || itemIdx >= len(options) {
		return
	}

	c.answerCallback(ctx, cb.ID, "")
	sess, err = c.wizard.ToggleSurvey(ctx, userID, category, options[itemIdx])
	if err != nil {
		c.sendError(ctx, chatID, err)
		return
	}
	c.renderStep(ctx, chatID, userID, sess)
}

func (c *Controller) onAdminCallback(ctx context.Context, cb *models.CallbackQuery, chatID, userID int64, data string) {
	if err := c.access.Require(userID); err != nil {
		c.answerCallback(ctx, cb.ID, "Admins only.")
		return
	}
	c.answerCallback(ctx, cb.ID, "")

	switch {
	case data == "adm:menu":
		c.sendAdminMenu(ctx, chatID)

	case data == "adm:rates":
		c.sendAdminRates(ctx, chatID)

	case data == "adm:overview":
		c.sendAdminOverview(ctx, chatID)

	case strings.HasPrefix(data, "adm:fmt:"):
		idx, ok := parseIntPart(data, 2)
		if !ok {
			return
		}
		c.sendAdminFormat(ctx, chatID, idx)

	case strings.HasPrefix(data, "adm:edit:"):
		fmtIdx, ok := parseIntPart(data, 2)
		if !ok {
			return
		}
		tierIdx, ok := parseIntPart(data, 3)
		if !ok || tierIdx < 0 || tierIdx >= len(pricing.Tiers) {
			return
		}
		formats, err := c.rateFormats(ctx)
		if err != nil || fmtIdx < 0 || fmtIdx >= len(formats) {
			return
		}

		sess, found, err := c.wizard.Get(ctx, userID)
		if err != nil {
			c.sendError(ctx, chatID, err)
			return
		}
		if !found {
			sess = schema.NewSession()
		}
		sess.AdminEdit = &schema.AdminRateEdit{
			Format: formats[fmtIdx],
			Tier:   pricing.Tiers[tierIdx].Label,
		}
		if err := c.wizard.Save(ctx, userID, sess); err != nil {
			c.sendError(ctx, chatID, err)
			return
		}

		_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
			ChatID: chatID,
			Text: "Editing " + formats[fmtIdx] + ", tier " + pricing.Tiers[tierIdx].Label +
				".\nSend the new per-piece price, e.g. 0.55",
		})
	}
}

func (c *Controller) patchAndRender(ctx context.Context, chatID, userID int64, patch schema.DraftPatch) {
	sess, err := c.wizard.UpdateDraft(ctx, userID, patch)
	if err != nil {
		c.sendError(ctx, chatID, err)
		return
	}
	c.renderStep(ctx, chatID, userID, sess)
}

func (c *Controller) sendError(ctx context.Context, chatID int64, err error) {
	log.Error().Err(err).Msg("handle update")
	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   "Something went wrong. Please try again.",
	})
}
