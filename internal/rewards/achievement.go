package rewards

import "slices"

// Icon identifies the glyph shown next to an achievement.
type Icon int

const (
	IconFlag Icon = iota
	IconBookOpen
	IconBrainCircuit
	IconCoins
	IconFlame
	IconZap
	IconTarget
)

// Glyph returns the terminal glyph for the icon.
func (i Icon) Glyph() string {
	switch i {
	case IconFlag:
		return "⚑"
	case IconBookOpen:
		return "📖"
	case IconBrainCircuit:
		return "🧠"
	case IconCoins:
		return "🪙"
	case IconFlame:
		return "🔥"
	case IconZap:
		return "⚡"
	case IconTarget:
		return "🎯"
	default:
		return "★"
	}
}

// Achievement ids.
const (
	FirstSteps = "first_steps"
	Dedicated  = "dedicated"
	Expert     = "expert"
	Rich       = "rich"
	Streak3    = "streak_3"
	Streak7    = "streak_7"
	Sniper     = "sniper"
)

// Achievement is a static catalog entry.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        Icon
	Threshold   int
}

var catalog = []Achievement{
	{FirstSteps, "First Steps", "Complete your first practice session.", IconFlag, 1},
	{Dedicated, "Dedicated", "Answer 50 questions total.", IconBookOpen, 50},
	{Expert, "Subject Expert", "Answer 200 questions total.", IconBrainCircuit, 200},
	{Rich, "Coin Collector", "Accumulate 500 coins.", IconCoins, 500},
	{Streak3, "Consistency", "Reach a 3-day streak.", IconFlame, 3},
	{Streak7, "Unstoppable", "Reach a 7-day streak.", IconZap, 7},
	{Sniper, "Sniper", "Achieve 100% accuracy in a session.", IconTarget, 0},
}

// Catalog returns the achievements in display order.
func Catalog() []Achievement {
	return slices.Clone(catalog)
}

// Lookup returns the catalog entry for id.
func Lookup(id string) (Achievement, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// Progress is the cumulative state achievements are judged on, taken after
// the current session has been applied.
type Progress struct {
	TotalSessions          int
	TotalQuestionsAnswered int
	Coins                  int
	CurrentStreak          int

	// SessionAccuracy is the accuracy of the session just finished.
	SessionAccuracy int
}

func (a Achievement) earned(p Progress) bool {
	switch a.ID {
	case FirstSteps:
		return p.TotalSessions >= a.Threshold
	case Dedicated, Expert:
		return p.TotalQuestionsAnswered >= a.Threshold
	case Rich:
		return p.Coins >= a.Threshold
	case Streak3, Streak7:
		return p.CurrentStreak >= a.Threshold
	case Sniper:
		return p.SessionAccuracy == 100
	}
	return false
}

// Evaluate returns unlocked extended with every catalog achievement p
// earns. Existing ids (including unknown ones) are kept in place and new
// ids follow in catalog order, so the result is always a superset.
func Evaluate(unlocked []string, p Progress) []string {
	out := slices.Clone(unlocked)
	for _, a := range catalog {
		if slices.Contains(out, a.ID) {
			continue
		}
		if a.earned(p) {
			out = append(out, a.ID)
		}
	}
	return out
}

// Newly returns the ids in after that are not in before.
func Newly(before, after []string) []string {
	var out []string
	for _, id := range after {
		if !slices.Contains(before, id) {
			out = append(out, id)
		}
	}
	return out
}
