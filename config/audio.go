package config

import "github.com/automoto/pong-royale/assets"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Play sounds
	SoundPaddleHit
	SoundLunge
	SoundWallBounce
	SoundLaunch
	// Scoring sounds
	SoundLifeLost
	SoundEliminated
	SoundMatchOver
	// Fever sounds
	SoundFeverOrb
	SoundFeverStart
	SoundFeverEnd
	// Countdown sounds
	SoundCountdownTick
	SoundCountdownGo
	// UI sounds
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to their tones
type SoundConfig struct {
	Tones map[SoundID]assets.Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]assets.Tone{
			SoundPaddleHit:     {Freq: 440, EndFreq: 440, Duration: 0.05, Square: true, Volume: 0.5},
			SoundLunge:         {Freq: 660, EndFreq: 880, Duration: 0.08, Square: true, Volume: 0.5},
			SoundWallBounce:    {Freq: 220, EndFreq: 220, Duration: 0.05, Square: true, Volume: 0.4},
			SoundLaunch:        {Freq: 330, EndFreq: 500, Duration: 0.10, Volume: 0.4},
			SoundLifeLost:      {Freq: 400, EndFreq: 120, Duration: 0.35, Square: true, Volume: 0.6},
			SoundEliminated:    {Freq: 300, EndFreq: 60, Duration: 0.70, Square: true, Volume: 0.7},
			SoundMatchOver:     {Freq: 520, EndFreq: 1040, Duration: 0.80, Volume: 0.6},
			SoundFeverOrb:      {Freq: 900, EndFreq: 1200, Duration: 0.12, Volume: 0.4},
			SoundFeverStart:    {Freq: 600, EndFreq: 1600, Duration: 0.30, Volume: 0.6},
			SoundFeverEnd:      {Freq: 1200, EndFreq: 500, Duration: 0.25, Volume: 0.4},
			SoundCountdownTick: {Freq: 523, EndFreq: 523, Duration: 0.10, Volume: 0.5},
			SoundCountdownGo:   {Freq: 1046, EndFreq: 1046, Duration: 0.25, Volume: 0.6},
			SoundMenuSelect:    {Freq: 700, EndFreq: 700, Duration: 0.05, Square: true, Volume: 0.3},
		},
	}
}
