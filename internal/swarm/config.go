package swarm

// Generation timing (seconds).
const (
	DefaultTransition = 4.0
	DefaultHold       = 2.0
	RandomTransition  = 6.0
	ImageTransition   = 6.0
	ImageHold         = 6.0
)

// Generator shaping.
const (
	// AccentPicks is the default number of particles per frame that may
	// spawn accents.
	// Picks can collide, so fewer may end up flagged.
	AccentPicks = 20
	// CurveJitter scales the random control point offset by curve length.
	CurveJitter = 0.25

	RandomLineGroupsMin = 1
	RandomLineGroupsMax = 8
	RandomLinePointsMin = 10
	RandomLinePointsMax = 50

	// Image brightness maps target alpha into this band.
	ImageAlphaMin = 0.6
	ImageAlphaMax = 1.0
)

// Animation.
const (
	// AccentSpawnTicks: accents spawn on every Nth update.
	AccentSpawnTicks = 5
	// AccentAlphaScale is applied to the parent's alpha at spawn.
	AccentAlphaScale = 0.25
	// DepthAlphaNear/Far bound the depth falloff multiplier.
	DepthAlphaFar  = 0.1
	DepthAlphaNear = 1.0
)

// InstanceStride is the float count per particle in instance data: x, y, z, alpha.
const InstanceStride = 4
