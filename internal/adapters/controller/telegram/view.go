package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"AccelMailBot/internal/domain/schema"
	"AccelMailBot/internal/domain/service/pricing"
	"AccelMailBot/internal/domain/service/schedule"
	wizardsvc "AccelMailBot/internal/domain/service/wizard"
)

func (c *Controller) mainMenu(userID int64) *models.InlineKeyboardMarkup {
	rows := [][]models.InlineKeyboardButton{
		{{Text: "🚀 Start a Campaign", CallbackData: "wiz:new"}},
		{{Text: "📤 I have a list", CallbackData: "wiz:go:upload"}},
		{{Text: "🎯 Help me define segments", CallbackData: "wiz:go:survey"}},
		{{Text: "🗺 EDDM Route Coverage", CallbackData: "wiz:go:eddm"}},
		{{Text: "💲 Pricing", CallbackData: "price"}},
		{{Text: "📄 CSV Template", CallbackData: "tpl"}},
	}
	if c.access.IsAdmin(userID) {
		rows = append(rows, []models.InlineKeyboardButton{{Text: "🛠 Admin panel", CallbackData: "adm:menu"}})
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func (c *Controller) sendMenu(ctx context.Context, chatID, userID int64) {
	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Main menu",
		ReplyMarkup: c.mainMenu(userID),
	})
}

// renderStep shows the session's current step with a progress header.
func (c *Controller) renderStep(ctx context.Context, chatID, userID int64, sess schema.Session) {
	if sess.Status == schema.SessionSubmitted {
		c.renderSuccess(ctx, chatID, userID, sess)
		return
	}

	steps := wizardsvc.ActiveSteps(sess)
	step := wizardsvc.CurrentStep(sess)
	header := fmt.Sprintf("Step %d of %d — %s\n\n", sess.StepIndex+1, len(steps), step.Title)

	switch step.ID {
	case schema.StepProfile:
		c.renderProfile(ctx, chatID, header, sess)
	case schema.StepSource:
		c.renderSource(ctx, chatID, header, sess)
	case schema.StepSegments:
		c.renderSegments(ctx, chatID, header, sess)
	case schema.StepMap:
		c.renderMap(ctx, chatID, header, sess)
	case schema.StepUpload:
		c.renderUpload(ctx, chatID, header, sess)
	case schema.StepCreative:
		c.renderCreative(ctx, chatID, header, sess)
	case schema.StepCadence:
		c.renderCadence(ctx, chatID, header, sess)
	case schema.StepReview:
		c.renderReview(ctx, chatID, header, sess)
	}
}

func navRow(isReview bool) []models.InlineKeyboardButton {
	if isReview {
		return []models.InlineKeyboardButton{
			{Text: "⬅ Back", CallbackData: "wiz:back"},
			{Text: "🚀 Submit Campaign Request", CallbackData: "wiz:next"},
		}
	}
	return []models.InlineKeyboardButton{
		{Text: "⬅ Back", CallbackData: "wiz:back"},
		{Text: "Next ➡", CallbackData: "wiz:next"},
	}
}

var profileFields = []struct {
	Label  string
	Prompt string
}{
	{Label: "Business Name", Prompt: "What's your business name?"},
	{Label: "First Name", Prompt: "Your first name?"},
	{Label: "Last Name", Prompt: "Your last name?"},
	{Label: "Email", Prompt: "What email should we use for proofs and invoices?"},
}

func profileValues(d schema.CampaignDraft) []string {
	return []string{d.BusinessName, d.FirstName, d.LastName, d.Email}
}

func (c *Controller) renderProfile(ctx context.Context, chatID int64, header string, sess schema.Session) {
	values := profileValues(sess.Draft)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("Let's get started — tell us a bit about your business.\n\n")
	for i, f := range profileFields {
		v := values[i]
		if v == "" {
			v = "—"
		}
		fmt.Fprintf(&b, "%s: %s\n", f.Label, v)
	}
	if sess.ProfileField < len(profileFields) {
		b.WriteString("\n" + profileFields[sess.ProfileField].Prompt)
	} else {
		b.WriteString("\nProfile complete. Hit Next to choose your audience.")
	}

	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        b.String(),
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{navRow(false)}},
	})
}

var sourceOptions = []struct {
	Kind  schema.SourceKind
	Title string
	Desc  string
}{
	{schema.SourceSurvey, "Build from Segment", "I need help defining my ideal customer profile."},
	{schema.SourceUpload, "Upload List", "I have a CSV list of addresses ready to go."},
	{schema.SourceEDDM, "Route Coverage (EDDM)", "I want to saturate specific neighborhoods."},
}

func (c *Controller) renderSource(ctx context.Context, chatID int64, header string, sess schema.Session) {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("How would you like to target your prospects?\n\n")
	for _, opt := range sourceOptions {
		fmt.Fprintf(&b, "• %s — %s\n", opt.Title, opt.Desc)
	}

	rows := make([][]models.InlineKeyboardButton, 0, len(sourceOptions)+1)
	for _, opt := range sourceOptions {
		text := opt.Title
		if sess.Draft.Source == opt.Kind {
			text = "✅ " + text
		}
		rows = append(rows, []models.InlineKeyboardButton{{Text: text, CallbackData: "src:" + string(opt.Kind)}})
	}
	rows = append(rows, navRow(false))

	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        b.String(),
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: rows},
	})
}

func (c *Controller) renderSegments(ctx context.Context, chatID int64, header string, sess schema.Session) {
	mode := sess.Draft.SurveyMode

	modeRow := []models.InlineKeyboardButton{
		{Text: markIf(mode == schema.SurveyModeB2B, "Business (B2B)"), CallbackData: "srv:mode:B2B"},
		{Text: markIf(mode == schema.SurveyModeB2C, "Consumer (B2C)"), CallbackData: "srv:mode:B2C"},
	}

	rows := [][]models.InlineKeyboardButton{modeRow}
	for catIdx, category := range schema.SurveyCategories(mode) {
		rows = append(rows, []models.InlineKeyboardButton{{Text: "— " + categoryTitle(category) + " —", CallbackData: "noop"}})
		selected := sess.Draft.SurveySelections[category]
		var row []models.InlineKeyboardButton
		for itemIdx, item := range schema.SurveyOptions(mode, category) {
			row = append(row, models.InlineKeyboardButton{
				Text:         markIf(containsString(selected, item), shortText(item, 28)),
				CallbackData: fmt.Sprintf("srv:t:%d:%d", catIdx, itemIdx),
			})
			if len(row) == 2 {
				rows = append(rows, row)
				row = nil
			}
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	rows = append(rows, navRow(false))

	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        header + "Who is your perfect customer? Toggle the segments that fit.",
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: rows},
	})
}

var radiusOptions = []float64{0.5, 1, 2, 5, 10, 20}

func (c *Controller) renderMap(ctx context.Context, chatID int64, header string, sess schema.Session) {
	d := sess.Draft
	text := header + fmt.Sprintf(
		"Pinpoint your target area.\n\nCenter: %.4f, %.4f\nTarget radius: %.1f mi\n\nSend a zip code or city name to move the pin.",
		d.MapLat, d.MapLng, d.MapRadius,
	)

	var radiusRow []models.InlineKeyboardButton
	for _, r := range radiusOptions {
		radiusRow = append(radiusRow, models.InlineKeyboardButton{
			Text:         markIf(d.MapRadius == r, fmt.Sprintf("%g mi", r)),
			CallbackData: fmt.Sprintf("map:rad:%g", r),
		})
	}

	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
			radiusRow,
			navRow(false),
		}},
	})
}

func (c *Controller) renderUpload(ctx context.Context, chatID int64, header string, sess schema.Session) {
	var b strings.Builder
	b.WriteString(header)
	if sess.Draft.UploadedList != nil {
		fmt.Fprintf(&b, "File selected: %s\n\nSend another file to replace it, or hit Next.", sess.Draft.UploadedList.Name)
	} else {
		b.WriteString("Send your CSV file with customer addresses as a document.\n\n")
		b.WriteString("Required headers: " + strings.Join(schema.ListTemplateHeaders, ", ") + "\n\n")
		b.WriteString("We'll verify addresses and remove duplicates before mailing.")
	}

	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   b.String(),
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "📄 Download CSV Template", CallbackData: "tpl"}},
			navRow(false),
		}},
	})
}

func (c *Controller) renderCreative(ctx context.Context, chatID int64, header string, sess schema.Session) {
	d := sess.Draft
	catalog := c.remoteCatalog(ctx)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("Customize your mailer design and select volume.\n\n")
	if d.CreativeType == schema.CreativeCustom {
		fmt.Fprintf(&b, "Professional design adds a one-time fee of $%.0f.\n", catalog.DesignFee)
	}
	quantity := "—"
	if d.Quantity > 0 {
		quantity = fmt.Sprintf("%d pieces", d.Quantity)
	}
	fmt.Fprintf(&b, "Quantity: %s\n\nSend a number to set the quantity (minimum %d).", quantity, schema.MinOrderQuantity)

	typeRow := []models.InlineKeyboardButton{
		{Text: markIf(d.CreativeType == schema.CreativeUpload, "Upload Design"), CallbackData: "cre:t:upload"},
		{Text: markIf(d.CreativeType == schema.CreativeCustom, "Professional Design"), CallbackData: "cre:t:custom"},
	}
	var formatRows [][]models.InlineKeyboardButton
	for i, f := range schema.MailerFormats {
		formatRows = append(formatRows, []models.InlineKeyboardButton{{
			Text:         markIf(d.MailerFormat == f, f),
			CallbackData: fmt.Sprintf("cre:f:%d", i),
		}})
	}

	rows := [][]models.InlineKeyboardButton{typeRow}
	rows = append(rows, formatRows...)
	rows = append(rows, navRow(false))

	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        b.String(),
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: rows},
	})
}

func (c *Controller) renderCadence(ctx context.Context, chatID int64, header string, sess schema.Session) {
	d := sess.Draft
	catalog := c.remoteCatalog(ctx)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("When should we send your campaign?\n\n")
	b.WriteString("• One-Time Blast — a single mailer on a specific date.\n")
	b.WriteString("• Multi-Touch Sequence — automatic follow-ups, e.g. a second mailer two weeks later.\n\n")
	startDate := d.StartDate
	if startDate == "" {
		startDate = "—"
	}
	fmt.Fprintf(&b, "Target start date: %s\n", startDate)
	if next := schedule.NextMailDate(catalog.BlackoutDates, time.Now()); next != "" {
		fmt.Fprintf(&b, "\nMailings go out on Tuesdays. Next available date: %s.\nSend a date as YYYY-MM-DD.", next)
	}

	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   b.String(),
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: markIf(d.Cadence == schema.CadenceSingle, "One-Time Blast"), CallbackData: "cad:single"},
				{Text: markIf(d.Cadence == schema.CadenceMulti, "Multi-Touch"), CallbackData: "cad:multi"},
			},
			navRow(false),
		}},
	})
}

func (c *Controller) renderReview(ctx context.Context, chatID int64, header string, sess schema.Session) {
	d := sess.Draft
	quote := pricing.Estimate(d.MailerFormat, d.Quantity)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("Campaign Summary\n\n")
	fmt.Fprintf(&b, "Targeting Source: %s\n", sourceTitle(d.Source))
	fmt.Fprintf(&b, "Audience: %s\n", audienceSummary(d))
	fmt.Fprintf(&b, "Format: %s\n", formatOrDefault(d.MailerFormat))
	fmt.Fprintf(&b, "Creative: %s\n", creativeTitle(d.CreativeType))
	fmt.Fprintf(&b, "Cadence: %s\n", cadenceTitle(d.Cadence))
	fmt.Fprintf(&b, "Quantity: %d pieces\n", quote.Quantity)
	if d.StartDate != "" {
		fmt.Fprintf(&b, "Start date: %s\n", d.StartDate)
	}
	b.WriteString("\nEstimated Total\n")
	fmt.Fprintf(&b, "Unit price (includes postage): $%.2f / piece\n", quote.RatePerPiece)
	fmt.Fprintf(&b, "Total: $%.2f\n", quote.Total)
	b.WriteString("\n*This is an estimate. Final pricing will be confirmed after design review and address validation. You will not be charged today.")

	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        b.String(),
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{navRow(true)}},
	})
}

func (c *Controller) renderSuccess(ctx context.Context, chatID, userID int64, sess schema.Session) {
	text := "✅ Campaign Request Received!\n\n" +
		"We've saved your campaign profile. An AccelMail strategist will review your segments and contact you within 24 hours with a final proof and invoice.\n\n" +
		"What happens next?\n" +
		"1. Our design team reviews your assets (or starts designing).\n" +
		"2. We run your list through NCOA verification.\n" +
		"3. You receive a final digital proof and invoice.\n" +
		"4. Production starts immediately upon approval."
	if sess.CampaignID != "" {
		text += "\n\nReference: " + sess.CampaignID
	}

	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "⬅ Return to menu", CallbackData: "menu"}},
		}},
	})
}

// sendPricing shows the tiered rate table from the admin-editable store.
func (c *Controller) sendPricing(ctx context.Context, chatID int64) {
	allRates, err := c.rates.All(ctx)
	if err != nil {
		log.Error().Err(err).Msg("list rates")
		_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{ChatID: chatID, Text: "Pricing is unavailable right now. Please try again."})
		return
	}

	var b strings.Builder
	b.WriteString("Per-piece pricing by volume\n")
	lastFormat := ""
	for _, r := range allRates {
		if r.Format != lastFormat {
			fmt.Fprintf(&b, "\n%s\n", r.Format)
			lastFormat = r.Format
		}
		fmt.Fprintf(&b, "  %s: $%.2f\n", r.Tier, r.PricePerPiece)
	}
	if len(allRates) > 0 {
		if price, ok := pricing.TableRate(allRates, allRates[0].Format, 1000); ok {
			fmt.Fprintf(&b, "\nExample: 1000 pieces of %s run $%.2f each, $%.2f total.\n", allRates[0].Format, price, price*1000)
		}
	}
	b.WriteString("\nEstimates are shown on the review step. Final pricing is confirmed after design review and address validation.")

	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{ChatID: chatID, Text: b.String()})
}

func (c *Controller) sendAdminMenu(ctx context.Context, chatID int64) {
	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   "Admin panel",
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "💲 Rate table", CallbackData: "adm:rates"}},
			{{Text: "📊 Overview", CallbackData: "adm:overview"}},
			{{Text: "⬅ Back", CallbackData: "menu"}},
		}},
	})
}

func (c *Controller) sendAdminRates(ctx context.Context, chatID int64) {
	formats, err := c.rateFormats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("list rate formats")
		return
	}

	rows := make([][]models.InlineKeyboardButton, 0, len(formats)+1)
	for i, f := range formats {
		rows = append(rows, []models.InlineKeyboardButton{{Text: f, CallbackData: fmt.Sprintf("adm:fmt:%d", i)}})
	}
	rows = append(rows, []models.InlineKeyboardButton{{Text: "⬅ Back", CallbackData: "adm:menu"}})

	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Rate table — pick a format",
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: rows},
	})
}

func (c *Controller) sendAdminFormat(ctx context.Context, chatID int64, formatIdx int) {
	formats, err := c.rateFormats(ctx)
	if err != nil || formatIdx < 0 || formatIdx >= len(formats) {
		return
	}
	format := formats[formatIdx]

	formatRates, err := c.rates.ByFormat(ctx, format)
	if err != nil {
		log.Error().Err(err).Msg("list rates by format")
		return
	}
	priceByTier := make(map[string]float64, len(formatRates))
	for _, r := range formatRates {
		priceByTier[r.Tier] = r.PricePerPiece
	}

	rows := make([][]models.InlineKeyboardButton, 0, len(pricing.Tiers)+1)
	for tierIdx, t := range pricing.Tiers {
		rows = append(rows, []models.InlineKeyboardButton{{
			Text:         fmt.Sprintf("%s — $%.2f ✏️", t.Label, priceByTier[t.Label]),
			CallbackData: fmt.Sprintf("adm:edit:%d:%d", formatIdx, tierIdx),
		}})
	}
	rows = append(rows, []models.InlineKeyboardButton{{Text: "⬅ Back", CallbackData: "adm:rates"}})

	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        format + "\n\nTap a tier to change its per-piece price.",
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: rows},
	})
}

func (c *Controller) sendAdminOverview(ctx context.Context, chatID int64) {
	catalog := c.remoteCatalog(ctx)

	var b strings.Builder
	b.WriteString("Overview\n\n")
	fmt.Fprintf(&b, "Design fee: $%.0f (one-time)\n", catalog.DesignFee)
	b.WriteString("Mailer sizes:\n")
	for _, s := range catalog.MailerSizes {
		fmt.Fprintf(&b, "  • %s\n", s.Name)
	}
	if len(catalog.BlackoutDates) == 0 {
		b.WriteString("Blackout dates: none")
	} else {
		b.WriteString("Blackout dates: " + strings.Join(catalog.BlackoutDates, ", "))
	}

	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   b.String(),
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "⬅ Back", CallbackData: "adm:menu"}},
		}},
	})
}

// rateFormats lists the distinct formats of the rate table in stable order.
func (c *Controller) rateFormats(ctx context.Context) ([]string, error) {
	allRates, err := c.rates.All(ctx)
	if err != nil {
		return nil, err
	}
	var formats []string
	seen := map[string]struct{}{}
	for _, r := range allRates {
		if _, ok := seen[r.Format]; ok {
			continue
		}
		seen[r.Format] = struct{}{}
		formats = append(formats, r.Format)
	}
	return formats, nil
}
