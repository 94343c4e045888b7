package conversation

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/hammamikhairi/bistro/internal/domain"
	"github.com/hammamikhairi/bistro/internal/logger"
)

func TestKeywordParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)
	ctx := context.Background()

	tests := []struct {
		input       string
		wantType    domain.IntentType
		wantPayload string
	}{
		// Menu
		{"menu", domain.IntentShowMenu, ""},
		{"LIST", domain.IntentShowMenu, ""},
		{"m", domain.IntentShowMenu, ""},

		// Report / stats
		{"report", domain.IntentReport, ""},
		{"summary", domain.IntentReport, ""},
		{"stats", domain.IntentStats, ""},

		// Tally
		{"tally italian", domain.IntentTally, "ITALIAN"},
		{"count KLINGON", domain.IntentTally, "KLINGON"},

		// Release
		{"release below 60", domain.IntentReleaseBelow, "60"},
		{"serve   under 15", domain.IntentReleaseBelow, "15"},
		{"release cuisine french", domain.IntentReleaseCuisine, "FRENCH"},
		{"release MEXICAN", domain.IntentReleaseCuisine, "MEXICAN"},

		// Adjust
		{"adjust vegan", domain.IntentAdjust, "vegan"},
		{"diet vegetarian, gluten_free", domain.IntentAdjust, "vegetarian, gluten_free"},

		// Profiles / help / quit
		{"profiles", domain.IntentProfiles, ""},
		{"help", domain.IntentHelp, ""},
		{"?", domain.IntentHelp, ""},
		{"quit", domain.IntentQuit, ""},
		{"q", domain.IntentQuit, ""},

		// Unknown
		{"flambé the cat", domain.IntentUnknown, "flambé the cat"},
		{"tally", domain.IntentUnknown, "tally"},
		{"", domain.IntentUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			intent, err := parser.Parse(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if intent.Type != tt.wantType {
				t.Errorf("input=%q: got type %s, want %s", tt.input, intent.Type, tt.wantType)
			}
			if intent.Payload != tt.wantPayload {
				t.Errorf("input=%q: got payload %q, want %q", tt.input, intent.Payload, tt.wantPayload)
			}
		})
	}
}

func TestCLINotifier(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	var lines []string
	n := NewCLINotifier(log, func(format string, a ...interface{}) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintf(format, a...)))
	})

	ctx := context.Background()
	if err := n.Notify(ctx, "loaded 6 dishes"); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if err := n.NotifyUrgent(ctx, "menu file missing"); err != nil {
		t.Fatalf("notify urgent: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "loaded 6 dishes") || !strings.Contains(lines[1], "menu file missing") {
		t.Fatalf("unexpected output: %q", lines)
	}
}
