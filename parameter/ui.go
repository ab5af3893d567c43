package parameter

// Terminal rendering
const (
	// HUDRows is reserved at the top of the screen for score and preview
	HUDRows = 1

	// LifelineDash and LifelineGap give the dashed lifeline pattern in cells
	LifelineDash = 3
	LifelineGap  = 2

	// AgainButtonLabel is shown on terminal overlays
	AgainButtonLabel = "[ Again ]"

	LoseText = "You lose"
	WinText  = "You merged the top level!"
)

// Keyboard aiming
const (
	// KeyboardDropY is the world y used when dropping with the keyboard
	KeyboardDropY = 80.0

	// AimStepCols is how far one arrow press moves the aim, in columns
	AimStepCols = 1
)
