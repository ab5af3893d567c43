package parameter

// Spawn placement search
const (
	// PlacementEdgeInset keeps the clamped target x away from the walls (px)
	PlacementEdgeInset = 8.0

	// PlacementOverlapTolerance allows packing tighter than tangency (fraction of radius sum)
	PlacementOverlapTolerance = 0.82

	// PlacementOffsetSteps is the number of alternating left/right candidates per row
	PlacementOffsetSteps = 24

	// PlacementOffsetRadiusFactor and PlacementOffsetPad size one horizontal step
	PlacementOffsetRadiusFactor = 0.85
	PlacementOffsetPad          = 6.0

	// PlacementRowAttempts bounds the number of rows tried above the target
	PlacementRowAttempts = 30

	// PlacementRowRadiusFactor and PlacementRowPad size one vertical step
	PlacementRowRadiusFactor = 0.9
	PlacementRowPad          = 4.0

	// PlacementTopPad is the minimum clearance between a row and the viewport top
	PlacementTopPad = 8.0

	// PlacementFallbackPad is the fallback clearance below the viewport top
	PlacementFallbackPad = 12.0
)
