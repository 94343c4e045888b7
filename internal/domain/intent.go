package domain

// IntentType classifies what the operator wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentShowMenu
	IntentReport
	IntentStats
	IntentTally          // payload: cuisine literal
	IntentReleaseBelow   // payload: prep time threshold
	IntentReleaseCuisine // payload: cuisine literal
	IntentAdjust         // payload: flag list or profile name
	IntentProfiles
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentShowMenu:
		return "show_menu"
	case IntentReport:
		return "report"
	case IntentStats:
		return "stats"
	case IntentTally:
		return "tally"
	case IntentReleaseBelow:
		return "release_below"
	case IntentReleaseCuisine:
		return "release_cuisine"
	case IntentAdjust:
		return "adjust"
	case IntentProfiles:
		return "profiles"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent represents a parsed operator command.
type Intent struct {
	Type    IntentType
	Payload string
}
