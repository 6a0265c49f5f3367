// Package sound plays synthesized effects for match events.
package sound

import (
	"sync"

	"github.com/automoto/pong-royale/assets"
	cfg "github.com/automoto/pong-royale/config"
	"github.com/automoto/pong-royale/engine"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once

	mu       sync.Mutex
	sfxCache = map[cfg.SoundID][]byte{}
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// PreloadAllSFX synthesizes every effect up front so the first play does
// not stall a frame.
func PreloadAllSFX() {
	initGlobalAudio()
	for id := range cfg.Sound.Tones {
		pcm(id)
	}
}

func pcm(id cfg.SoundID) []byte {
	mu.Lock()
	defer mu.Unlock()
	if data, ok := sfxCache[id]; ok {
		return data
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return nil
	}
	data := assets.Synthesize(tone, cfg.Audio.SampleRate)
	sfxCache[id] = data
	return data
}

// PlaySFX plays a sound effect once.
func PlaySFX(id cfg.SoundID) {
	initGlobalAudio()
	if globalSFXVolume <= 0 {
		return
	}
	data := pcm(id)
	if data == nil {
		return
	}
	player := globalAudioContext.NewPlayerFromBytes(data)
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// PlayEvents plays at most one sound per event kind in a tick.
func PlayEvents(events []engine.Event) {
	var played [cfg.SoundMenuSelect + 1]bool
	for _, ev := range events {
		id := ForEvent(ev)
		if id == cfg.SoundNone || played[id] {
			continue
		}
		played[id] = true
		PlaySFX(id)
	}
}

// ForEvent maps a match event to its effect.
func ForEvent(ev engine.Event) cfg.SoundID {
	switch ev.Kind {
	case engine.EventPaddleHit:
		return cfg.SoundPaddleHit
	case engine.EventPaddleLunge:
		return cfg.SoundLunge
	case engine.EventWallBounce:
		return cfg.SoundWallBounce
	case engine.EventBallLaunched:
		return cfg.SoundLaunch
	case engine.EventLifeLost:
		return cfg.SoundLifeLost
	case engine.EventEliminated:
		return cfg.SoundEliminated
	case engine.EventMatchOver:
		return cfg.SoundMatchOver
	case engine.EventFeverOrbSpawned:
		return cfg.SoundFeverOrb
	case engine.EventFeverStarted:
		return cfg.SoundFeverStart
	case engine.EventFeverEnded:
		return cfg.SoundFeverEnd
	case engine.EventCountdown:
		if ev.Edge > 0 {
			return cfg.SoundCountdownTick
		}
	case engine.EventMatchStarted:
		return cfg.SoundCountdownGo
	}
	return cfg.SoundNone
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}
