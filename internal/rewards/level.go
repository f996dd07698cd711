package rewards

// LevelThresholds is the XP needed to reach each level, starting at level 1.
var LevelThresholds = []int{0, 200, 500, 1000, 2000, 4000, 8000, 15000, 30000, 50000}

// LevelInfo describes where an XP total sits on the level ladder.
type LevelInfo struct {
	Level            int
	CurrentThreshold int
	NextThreshold    int

	// Progress is the percentage from CurrentThreshold to NextThreshold,
	// clamped to [0, 100].
	Progress float64
}

// XPToNext returns the XP still needed for the next level.
func (l LevelInfo) XPToNext(xp int) int {
	return max(0, l.NextThreshold-xp)
}

// LevelFor returns the level for xp using LevelThresholds.
func LevelFor(xp int) int {
	return LevelInfoFor(xp).Level
}

// LevelInfoFor computes level and progress for xp using LevelThresholds.
func LevelInfoFor(xp int) LevelInfo {
	return levelInfo(xp, LevelThresholds)
}

// levelInfo walks ascending thresholds. Past the last threshold the next
// one is twice the current.
func levelInfo(xp int, thresholds []int) LevelInfo {
	xp = max(xp, 0)

	level := 1
	for i, t := range thresholds {
		if xp < t {
			break
		}
		level = i + 1
	}

	current := 0
	if len(thresholds) > 0 {
		current = thresholds[level-1]
	}
	next := current * 2
	if level < len(thresholds) {
		next = thresholds[level]
	}

	info := LevelInfo{Level: level, CurrentThreshold: current, NextThreshold: next}
	if span := next - current; span > 0 {
		info.Progress = min(100, max(0, float64(xp-current)/float64(span)*100))
	}
	return info
}
