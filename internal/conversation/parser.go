// Package conversation provides command parsing and operator notification
// for the interactive kitchen console.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/bistro/internal/domain"
	"github.com/hammamikhairi/bistro/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser matches console input to intents using keywords and
// simple patterns. The first capture group, if any, becomes the payload.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}

// NewKeywordParser creates a keyword-based command parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(menu|list|show|dishes|m)$`), domain.IntentShowMenu},
		{regexp.MustCompile(`(?i)^(report|summary|r)$`), domain.IntentReport},
		{regexp.MustCompile(`(?i)^(stats|totals|s)$`), domain.IntentStats},
		{regexp.MustCompile(`(?i)^(?:tally|count)\s+(\S+)$`), domain.IntentTally},
		{regexp.MustCompile(`(?i)^(?:release|serve)\s+(?:below|under)\s+(-?\d+)$`), domain.IntentReleaseBelow},
		{regexp.MustCompile(`(?i)^(?:release|serve)\s+(?:cuisine\s+)?([A-Za-z_]+)$`), domain.IntentReleaseCuisine},
		{regexp.MustCompile(`(?i)^(?:adjust|diet|accommodate)\s+(.+)$`), domain.IntentAdjust},
		{regexp.MustCompile(`(?i)^(profiles|diets)$`), domain.IntentProfiles},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.IntentHelp},
		{regexp.MustCompile(`(?i)^(quit|exit|q|close)$`), domain.IntentQuit},
	}
	return p
}

// Parse converts console input into an intent.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.Join(strings.Fields(input), " ")
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	for _, rule := range p.patterns {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		p.log.Debug("matched intent: %s", rule.intent)
		intent := &domain.Intent{Type: rule.intent}
		if needsPayload(rule.intent) {
			intent.Payload = m[1]
		}
		// Cuisine literals are uppercase in menu files.
		if rule.intent == domain.IntentTally || rule.intent == domain.IntentReleaseCuisine {
			intent.Payload = strings.ToUpper(intent.Payload)
		}
		return intent, nil
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}

func needsPayload(t domain.IntentType) bool {
	switch t {
	case domain.IntentTally, domain.IntentReleaseBelow, domain.IntentReleaseCuisine, domain.IntentAdjust:
		return true
	}
	return false
}
