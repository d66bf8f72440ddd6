package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbot "github.com/go-telegram/bot"

	"AccelMailBot/internal/domain/schema"
)

func shortText(s string, max int) string {
	s = strings.TrimSpace(s)
	if len([]rune(s)) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-1]) + "…"
}

func parseIntPart(data string, idx int) (int, bool) {
	parts := strings.Split(data, ":")
	if len(parts) <= idx {
		return 0, false
	}
	v, err := strconv.Atoi(parts[idx])
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseInt64Part(data string, idx int) (int64, bool) {
	parts := strings.Split(data, ":")
	if len(parts) <= idx {
		return 0, false
	}
	v, err := strconv.ParseInt(parts[idx], 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func markIf(selected bool, text string) string {
	if selected {
		return "✅ " + text
	}
	return text
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

func categoryTitle(category schema.SurveyCategory) string {
	s := strings.ReplaceAll(string(category), "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func sourceTitle(source schema.SourceKind) string {
	switch source {
	case schema.SourceSurvey:
		return "Build from Segment"
	case schema.SourceUpload:
		return "Upload List"
	case schema.SourceEDDM:
		return "Route Coverage (EDDM)"
	default:
		return "Not selected"
	}
}

func audienceSummary(d schema.CampaignDraft) string {
	switch d.Source {
	case schema.SourceSurvey:
		return string(d.SurveyMode) + " Segments"
	case schema.SourceUpload:
		if d.UploadedList != nil {
			return d.UploadedList.Name
		}
		return "No file attached"
	case schema.SourceEDDM:
		return fmt.Sprintf("%.1f mi radius around %.4f, %.4f", d.MapRadius, d.MapLat, d.MapLng)
	default:
		return "—"
	}
}

func formatOrDefault(format string) string {
	if format == "" {
		return schema.MailerFormats[0]
	}
	return format
}

func creativeTitle(t schema.CreativeType) string {
	if t == schema.CreativeCustom {
		return "Professional Design"
	}
	return "Upload Own Design"
}

func cadenceTitle(cadence schema.Cadence) string {
	if cadence == schema.CadenceMulti {
		return "Multi-Touch Sequence"
	}
	return "One-Time Blast"
}

func (c *Controller) answerCallback(ctx context.Context, callbackID, text string) {
	_, _ = c.bot.AnswerCallbackQuery(ctx, &tgbot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}
