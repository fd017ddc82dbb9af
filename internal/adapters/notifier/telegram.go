// Package notifier pushes a highlights digest to a Telegram chat after each
// feed refresh. It is optional; an unconfigured notifier is a no-op.
package notifier

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"portfolio-pulse/internal/domain"
)

const messageLimit = 4096

// Telegram sends highlight digests through the bot API.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    zerolog.Logger
}

var _ domain.Notifier = (*Telegram)(nil)

// NewTelegram creates the notifier.
func NewTelegram(bot *tgbotapi.BotAPI, chatID int64, logger zerolog.Logger) *Telegram {
	return &Telegram{bot: bot, chatID: chatID, log: logger}
}

// NotifyHighlights formats and sends the highlight items. Nothing is sent
// when the list is empty.
func (t *Telegram) NotifyHighlights(ctx context.Context, items []domain.FeedItem) error {
	if len(items) == 0 {
		return nil
	}
	for _, chunk := range splitMessage(formatHighlights(items)) {
		if err := ctx.Err(); err != nil {
			return err
		}
		msg := tgbotapi.NewMessage(t.chatID, chunk)
		msg.DisableWebPagePreview = true
		if _, err := t.bot.Send(msg); err != nil {
			return fmt.Errorf("send highlights: %w", err)
		}
	}
	t.log.Info().Int("items", len(items)).Msg("notifier: highlights sent")
	return nil
}

func formatHighlights(items []domain.FeedItem) string {
	var b strings.Builder
	b.WriteString("Today's portfolio highlights\n")
	for i, item := range items {
		fmt.Fprintf(&b, "\n%d. %s — %s (score %d)\n%s\n", i+1, item.Company.Name, item.Title, item.EngagementScore, item.OriginalURL)
	}
	return b.String()
}

// splitMessage breaks the text into chunks that respect Telegram's message
// size limit, preferring newline boundaries so entries stay intact.
func splitMessage(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	runes := []rune(trimmed)
	if len(runes) <= messageLimit {
		return []string{trimmed}
	}

	var parts []string
	for start := 0; start < len(runes); {
		end := start + messageLimit
		if end >= len(runes) {
			chunk := strings.Trim(string(runes[start:]), "\n")
			if chunk != "" {
				parts = append(parts, chunk)
			}
			break
		}

		split := -1
		for i := end; i > start; i-- {
			if runes[i-1] == '\n' {
				split = i
				break
			}
		}
		if split == -1 {
			split = end
		}

		chunk := strings.Trim(string(runes[start:split]), "\n")
		if chunk != "" {
			parts = append(parts, chunk)
		}

		start = split
		for start < len(runes) && runes[start] == '\n' {
			start++
		}
	}

	if len(parts) == 0 {
		return []string{trimmed}
	}
	return parts
}
