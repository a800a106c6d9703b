package document

// XPPerLevel is the flat XP width of every level.
const XPPerLevel = 1000

// LevelForXP returns the level for a total XP amount: floor(xp/1000)+1.
// Negative XP is treated as zero.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// XPRequiredForLevel returns the total XP at which the given level starts.
// Level 1 (and anything below it) starts at 0.
func XPRequiredForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * XPPerLevel
}

// Level is the derived level of the document. It never reads Stats.Level.
func (d Document) Level() int {
	return LevelForXP(d.Stats.XP)
}
