package customer

// PointsPerRupee is the loyalty accrual rate applied to order totals.
const PointsPerRupee = 10

// LoyaltyLevel is a tier on the loyalty ladder, derived from lifetime points.
type LoyaltyLevel int

const (
	LevelBronze LoyaltyLevel = iota
	LevelSilver
	LevelGold
	LevelPlatinum
	LevelDiamond
)

// levelThresholds lists the ladder in ascending order of required points.
var levelThresholds = []struct {
	level  LoyaltyLevel
	points int
}{
	{LevelBronze, 0},
	{LevelSilver, 500},
	{LevelGold, 1500},
	{LevelPlatinum, 3000},
	{LevelDiamond, 5000},
}

// LevelForPoints returns the highest level whose threshold the balance meets.
func LevelForPoints(points int) LoyaltyLevel {
	level := LevelBronze
	for _, t := range levelThresholds {
		if points >= t.points {
			level = t.level
		}
	}
	return level
}

// PointsToNextLevel returns how many points are missing to the next level,
// or 0 when the balance already reached the top of the ladder.
func PointsToNextLevel(points int) int {
	for _, t := range levelThresholds {
		if points < t.points {
			return t.points - points
		}
	}
	return 0
}

// String returns the display name of the level.
func (l LoyaltyLevel) String() string {
	switch l {
	case LevelSilver:
		return "silver"
	case LevelGold:
		return "gold"
	case LevelPlatinum:
		return "platinum"
	case LevelDiamond:
		return "diamond"
	default:
		return "bronze"
	}
}
