package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundFire SoundKind = iota
	SoundSwap
	SoundInsert
	SoundMatch
	SoundCombo
	SoundLevelUp
	SoundGameOver
	SoundMenuSelect
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx         *oto.Context
	ready       chan struct{}
	musicPlayer oto.Player
}

var globalAudio *AudioSystem

// activeMatches limits simultaneous match bursts to avoid speaker clipping.
var activeMatches int32
var matchVariantCounter uint64

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated sound effect.
func PlaySound(kind SoundKind) {
	playSoundWithGain(kind, 1.0)
}

func PlaySoundWithGain(kind SoundKind, gain float64) {
	playSoundWithGain(kind, gain)
}

func playSoundWithGain(kind SoundKind, gain float64) {
	if globalAudio == nil {
		return
	}
	if gain <= 0 {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume * clampF(gain, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// PlayMatchSound plays a match burst whose timbre scales with run length.
// Longer runs get deeper, longer, more celebratory bursts.
func PlayMatchSound(runLen int) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	// Limit simultaneous match bursts to 3, more causes speaker clipping.
	if atomic.LoadInt32(&activeMatches) >= 3 {
		return
	}
	atomic.AddInt32(&activeMatches, 1)
	samples := genMatchScaled(runLen)
	if len(samples) == 0 {
		atomic.AddInt32(&activeMatches, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&activeMatches, -1)
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

// softSat applies gentle tanh-like saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundFire:
		return genFire()
	case SoundSwap:
		return genSwap()
	case SoundInsert:
		return genInsert()
	case SoundMatch:
		return genMatchScaled(MatchMinRun)
	case SoundCombo:
		return genCombo()
	case SoundLevelUp:
		return genLevelUp()
	case SoundGameOver:
		return genGameOver()
	case SoundMenuSelect:
		return genMenuSelect()
	}
	return nil
}

// genFire: short breathy "thwip", a noise burst with a descending FM body.
func genFire() []byte {
	n := int(0.10 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(33333)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.05, 0.2)
		lp = lp*0.6 + lcg(&seed)*0.4
		body := fm(t, 520-300*p, 1.5, 1.8*(1-p)) * env * 0.34
		puff := lp * math.Exp(-p*14) * 0.22
		putStereoF32(buf, i, softSat(body+puff))
	}
	return buf
}

// genSwap: quick two-tone flip.
func genSwap() []byte {
	n := int(0.07 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.15)
		freq := 640.0
		if p > 0.5 {
			freq = 820.0
		}
		s := fm(t, freq, 1.0, 0.8) * env * 0.32
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genInsert: snappy FM pop as a shot clicks into the chain.
func genInsert() []byte {
	n := int(0.09 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 420 + 520*p
		s := fm(t, freq, 2.0, 3.0*env) * env * 0.48
		// Thin harmonic layer for clarity.
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.06
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genMatchScaled adapts the match burst to run length: longer runs get a
// deeper pop, longer shimmer tail, and an extra bell layer.
func genMatchScaled(runLen int) []byte {
	norm := clampF(float64(runLen-MatchMinRun)/5.0, 0, 1)
	dur := 0.20 + 0.30*norm
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	seed := atomic.AddUint64(&matchVariantCounter, 1) ^
		uint64(time.Now().UnixNano()) ^
		uint64(runLen*4096)
	lp := 0.0
	popPhase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)

		// Pop body: deeper for longer runs.
		popStart := 340.0 - 120.0*norm
		popEnd := 110.0 - 40.0*norm
		popFreq := popStart * math.Pow(popEnd/popStart, p*1.4)
		popPhase += 2 * math.Pi * popFreq / SampleRate
		pop := math.Sin(popPhase) * math.Exp(-p*(10.0-4.0*norm)) * (0.42 + 0.2*norm)

		// Glassy shimmer tail.
		lp = lp*0.55 + lcg(&seed)*0.45
		shimmer := lp * math.Exp(-p*(12.0-5.0*norm)) * 0.16

		// Bell layer grows with run length.
		bell := fm(t, 880+220*norm, 2.756, 3.2*(1-p)) *
			math.Exp(-p*6) * (0.10 + 0.22*norm)

		s := pop + shimmer + bell
		putStereoF32(buf, i, softSat(s*0.9))
	}
	return buf
}

// genCombo: ascending FM bell arpeggio.
func genCombo() []byte {
	freqs := []float64{523.25, 659.25, 783.99, 1046.5} // C5 E5 G5 C6
	noteLen := SampleRate * 70 / 1000
	tail := int(0.16 * SampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.55, 0.05, 0.35)
			s := fm(t, freq, 2.756, 5.0*env) * env * 0.36
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genLevelUp: ascending FM bell staircase, each note rings over the next.
func genLevelUp() []byte {
	notes := []float64{440, 554.37, 659.25, 880, 1108.73}
	noteStep := int(0.09 * SampleRate)
	total := len(notes)*noteStep + int(0.25*SampleRate)
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.65, 0.04, 0.28)
			s := fm(t, freq, 3.5, 5.5*env) * env * 0.28
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: slow descending minor chord, staggered.
func genGameOver() []byte {
	dur := 0.75
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025) // slight pitch drop
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1 // sub
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genMenuSelect: crisp click + brief high tone.
func genMenuSelect() []byte {
	n := SampleRate * 65 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.38
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
