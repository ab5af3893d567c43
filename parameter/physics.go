package parameter

// Ball geometry
const (
	// BallBaseRadius is the radius offset shared by all levels (px)
	BallBaseRadius = 18.0

	// BallRadiusPerLevel is the radius growth per level (px)
	BallRadiusPerLevel = 8.0

	// BallMassPerRadiusSq scales mass with disc area
	BallMassPerRadiusSq = 0.001

	// BallMassMin floors mass so tiny discs never divide the pair total by ~0
	BallMassMin = 0.1
)

// Kinematics
const (
	// GravityFloat is vertical acceleration in px/s²
	GravityFloat = 980.0

	// RestitutionFloat is the floor bounce coefficient, strictly < 1
	RestitutionFloat = 0.15

	// FrictionFloat is linear horizontal deceleration while on ground (px/s²)
	FrictionFloat = 4.0

	// SettleSpeedFloat is the post-bounce vertical speed below which a ball rests
	SettleSpeedFloat = 30.0

	// DriftEpsilonFloat snaps tiny horizontal speeds to zero
	DriftEpsilonFloat = 0.01
)

// Separation
const (
	// SeparationPasses is the fixed number of pairwise overlap passes per tick
	SeparationPasses = 4

	// SeparationSlop scales positional correction past exact tangency
	SeparationSlop = 1.02

	// SeparationNormalDamping is the fraction of normal velocity removed on contact
	SeparationNormalDamping = 0.6

	// SeparationJitter is the symmetric nudge applied to coincident centers (px)
	SeparationJitter = 0.5

	// SeparationCoincidentDist is the center distance treated as coincident (px)
	SeparationCoincidentDist = 0.0001

	// WallRestitutionFloat is the horizontal bounce coefficient at the walls
	WallRestitutionFloat = 0.2
)

// Support chain
const (
	// SupportEpsilon is the contact and floor tolerance for support queries (px)
	SupportEpsilon = 2.0

	// SupportBelowTolerance admits neighbors up to this far above as "below" (px)
	SupportBelowTolerance = 0.5
)
