package notifier

import (
	"strings"
	"testing"

	"portfolio-pulse/internal/domain"
)

func TestSplitMessageShortText(t *testing.T) {
	parts := splitMessage("hello")
	if len(parts) != 1 || parts[0] != "hello" {
		t.Fatalf("unexpected parts: %v", parts)
	}
}

func TestSplitMessageEmptyText(t *testing.T) {
	if parts := splitMessage("   \n  "); parts != nil {
		t.Fatalf("expected no parts, got %v", parts)
	}
}

func TestSplitMessagePrefersNewlineBoundaries(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 600; i++ {
		b.WriteString("portfolio highlight entry\n")
	}
	parts := splitMessage(b.String())
	if len(parts) < 2 {
		t.Fatalf("expected the text to be split, got %d part(s)", len(parts))
	}
	for i, part := range parts {
		if len([]rune(part)) > messageLimit {
			t.Fatalf("part %d exceeds the message limit", i)
		}
		if strings.HasPrefix(part, "\n") || strings.HasSuffix(part, "\n") {
			t.Fatalf("part %d has dangling newlines", i)
		}
	}
	joined := strings.Join(parts, "\n") + "\n"
	if strings.Count(joined, "portfolio highlight entry") != 600 {
		t.Fatalf("expected every entry to survive the split")
	}
}

func TestFormatHighlightsListsEveryItem(t *testing.T) {
	items := []domain.FeedItem{
		{Company: domain.Company{Name: "Arc"}, Title: "Arc raises funding", EngagementScore: 92, OriginalURL: "https://example.com/1"},
		{Company: domain.Company{Name: "Relief"}, Title: "Relief expands", EngagementScore: 75, OriginalURL: "https://example.com/2"},
	}
	text := formatHighlights(items)
	if !strings.Contains(text, "1. Arc — Arc raises funding (score 92)") {
		t.Fatalf("unexpected format: %q", text)
	}
	if !strings.Contains(text, "https://example.com/2") {
		t.Fatalf("expected every url to be listed: %q", text)
	}
}
