package parameter

// Container
const (
	// WorldWidth is the container width in px
	WorldWidth = 480.0

	// WorldHeight is the logical viewport height in px
	WorldHeight = 800.0

	// FloorY is the floor line; balls rest with bottom edge on it
	FloorY = 800.0

	// LifelineY is the threshold line measured from the top
	LifelineY = 240.0

	// LeftMargin and RightMargin inset the walls from the viewport edges
	LeftMargin  = 20.0
	RightMargin = 20.0

	// MaxBalls is the population cap
	MaxBalls = 200
)

// Levels and scoring
const (
	MaxLevel = 10

	// WinLevel is the level whose creation wins the game
	WinLevel = MaxLevel

	// MergeScorePerLevel multiplies the new level for the merge bonus
	MergeScorePerLevel = 50

	// MergeLift raises a merge product above the pair midpoint (px)
	MergeLift = 4.0

	// PreviewMaxLevel is the highest level the preview roll may produce
	PreviewMaxLevel = 3

	// PreviewTopUnlockScore is the score needed before PreviewMaxLevel can be rolled
	PreviewTopUnlockScore = 1000
)

// Lifeline
const (
	// DwellSeconds is continuous time above the lifeline that ends the game
	DwellSeconds = 1.5
)

// Player spawn kick, randomized per drop
const (
	SpawnKickUp         = 90.0
	SpawnKickJitter     = 40
	SpawnKickHorizontal = 0.4
)
