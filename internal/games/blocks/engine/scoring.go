package engine

import "time"

// Gravity curve.
const (
	GravityStart = 800 * time.Millisecond
	GravityMin   = 80 * time.Millisecond
	GravityStep  = 60 * time.Millisecond
)

// LinesPerLevel is the number of cleared lines per level increase.
const LinesPerLevel = 10

// lineScores is indexed by the number of rows cleared by one lock.
var lineScores = [...]int{0, 40, 100, 300, 1200}

// ScoreFor returns the points for clearing n rows at the given level.
func ScoreFor(n, level int) int {
	if n <= 0 {
		return 0
	}
	n = min(n, len(lineScores)-1)
	return lineScores[n] * max(1, level)
}

// LevelFor returns the level reached after clearing the given total of lines.
func LevelFor(lines int) int {
	return 1 + max(0, lines)/LinesPerLevel
}

// DropInterval returns the gravity period at a level. It shrinks by
// GravityStep per level and never falls below GravityMin.
func DropInterval(level int) time.Duration {
	d := GravityStart - time.Duration(max(1, level)-1)*GravityStep
	if d < GravityMin {
		return GravityMin
	}
	return d
}
