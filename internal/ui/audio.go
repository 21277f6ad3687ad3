package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
	SoundInvalid
	SoundMark
)

const sampleRate = 44100

// AudioManager plays short procedurally generated effects.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates a new audio manager.
func NewAudioManager() *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  make(map[SoundType][]byte),
		enabled: true,
		volume:  0.5,
	}
	am.sounds[SoundMove] = generateClick(440, 0.08, 0.3)
	am.sounds[SoundCapture] = generateClick(330, 0.12, 0.5)
	am.sounds[SoundInvalid] = generateBuzz(150, 0.1, 0.3)
	am.sounds[SoundMark] = generateTone(1200, 0.04, 0.15)
	return am
}

// generateClick is a decaying sine with a little noise, like wood on wood.
func generateClick(freq, duration, amplitude float64) []byte {
	return synth(duration, func(i int, t, _ float64) float64 {
		envelope := math.Exp(-t * 30)
		noise := (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
		return (math.Sin(2*math.Pi*freq*t) + noise) * envelope * amplitude
	})
}

// generateTone is a sine with a short attack and linear decay.
func generateTone(freq, duration, amplitude float64) []byte {
	return synth(duration, func(_ int, t, progress float64) float64 {
		var envelope float64
		if progress < 0.1 {
			envelope = progress / 0.1
		} else {
			envelope = 1.0 - (progress-0.1)/0.9
		}
		return math.Sin(2*math.Pi*freq*t) * envelope * amplitude
	})
}

// generateBuzz is a low error buzz.
func generateBuzz(freq, duration, amplitude float64) []byte {
	return synth(duration, func(_ int, t, progress float64) float64 {
		wave := math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t)
		return wave * (1.0 - progress) * amplitude * 0.5
	})
}

// synth renders stereo 16-bit little-endian PCM from a sample function.
func synth(duration float64, sample func(i int, t, progress float64) float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		v := sample(i, t, t/duration)
		v = math.Max(-1, math.Min(1, v))
		val := int16(v * 32767)
		data[i*4] = byte(val)
		data[i*4+1] = byte(val >> 8)
		data[i*4+2] = byte(val)
		data[i*4+3] = byte(val >> 8)
	}
	return data
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled {
		return
	}
	data, ok := am.sounds[sound]
	if !ok {
		return
	}
	// A fresh player per call lets effects overlap.
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}
