package parameter

import "time"

const (
	AudioSampleRate   = 44100
	AudioMasterVolume = 0.5
	AudioBufferTime   = 100 * time.Millisecond
)

// Drop blip
const (
	DropSoundDuration = 60 * time.Millisecond
	DropSoundAttack   = 5 * time.Millisecond
	DropSoundRelease  = 40 * time.Millisecond
	DropSoundFreq     = 660.0
)

// Merge chime, pitch rises with level
const (
	MergeSoundDuration     = 140 * time.Millisecond
	MergeSoundAttack       = 5 * time.Millisecond
	MergeSoundRelease      = 110 * time.Millisecond
	MergeSoundBaseFreq     = 392.0 // G4
	MergeSoundSemitonesPer = 2
)

// Win jingle and lose buzz
const (
	WinNoteDuration   = 120 * time.Millisecond
	WinNoteAttack     = 5 * time.Millisecond
	WinNoteRelease    = 80 * time.Millisecond
	LoseSoundDuration = 400 * time.Millisecond
	LoseSoundAttack   = 10 * time.Millisecond
	LoseSoundRelease  = 300 * time.Millisecond
	LoseSoundFreq     = 110.0
)
