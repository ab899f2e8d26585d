package assets

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"
)

// SampleRate of the audio context shared by all effects.
const SampleRate = 44100

// Effect names understood by AudioManager.Play.
const (
	SoundSelect  = "select_piece"
	SoundCancel  = "cancel_select_piece"
	SoundMove    = "move"
	SoundIllegal = "illegal"
	SoundGameEnd = "game_over"
)

// tone is a short sine burst; several tones play back to back.
type tone struct {
	freq float64 // Hz
	ms   int
}

var effects = map[string][]tone{
	SoundSelect:  {{880, 60}},
	SoundCancel:  {{440, 60}},
	SoundMove:    {{660, 50}, {990, 70}},
	SoundIllegal: {{220, 140}},
	SoundGameEnd: {{523, 120}, {659, 120}, {784, 240}},
}

type AudioManager struct {
	ctx     *audio.Context
	buffers map[string][]byte

	mu      sync.Mutex
	players []*audio.Player // keep references until playback ends
}

// NewAudioManager renders every effect to PCM up front.
func NewAudioManager(ctx *audio.Context) *AudioManager {
	buf := make(map[string][]byte, len(effects))
	for name, tones := range effects {
		buf[name] = synth(tones)
	}
	return &AudioManager{ctx: ctx, buffers: buf}
}

// Play starts the effect named key.
func (m *AudioManager) Play(key string) {
	if m == nil {
		return
	}
	data, ok := m.buffers[key]
	if !ok {
		log.Warn().Str("sound", key).Msg("unknown sound effect")
		return
	}
	p := m.ctx.NewPlayerFromBytes(data)
	p.Play()

	m.mu.Lock()
	m.players = append(m.players, p)
	m.mu.Unlock()
}

// Update should be called once per tick to drop finished players.
func (m *AudioManager) Update() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	alive := m.players[:0]
	for _, p := range m.players {
		if p.IsPlaying() {
			alive = append(alive, p)
		} else {
			_ = p.Close()
		}
	}
	m.players = alive
}

// synth renders tones as 16-bit little-endian stereo PCM with a short fade
// at both ends of every tone to avoid clicks.
func synth(tones []tone) []byte {
	total := 0
	for _, t := range tones {
		total += SampleRate * t.ms / 1000
	}
	out := make([]byte, 0, total*4)
	var frame [4]byte
	for _, t := range tones {
		n := SampleRate * t.ms / 1000
		fade := n / 10
		for i := 0; i < n; i++ {
			amp := 0.3
			if i < fade {
				amp *= float64(i) / float64(fade)
			} else if i > n-fade {
				amp *= float64(n-i) / float64(fade)
			}
			v := int16(amp * math.MaxInt16 * math.Sin(2*math.Pi*t.freq*float64(i)/SampleRate))
			binary.LittleEndian.PutUint16(frame[0:], uint16(v))
			binary.LittleEndian.PutUint16(frame[2:], uint16(v))
			out = append(out, frame[:]...)
		}
	}
	return out
}
