package game

import (
	"math"
	"time"
)

// musicReader streams endless procedural music, one style per level.
type musicReader struct {
	t        float64
	measure  int
	chordIdx int
	seed     uint64
	menuMode bool
	level    int
	section  int
}

var musicVolume float64 = 0.10
var sfxVolume float64 = 0.58
var currentMusicLevel int = 1

func StartMenuMusic() { startMusic(true, 1, 0.20) }
func StartLevelMusic(level int) {
	currentMusicLevel = level
	startMusic(false, level, 0.13)
}

func StopMusic() {
	if globalAudio != nil && globalAudio.musicPlayer != nil {
		globalAudio.musicPlayer.Close()
		globalAudio.musicPlayer = nil
	}
}

func SetMusicVolume(vol float64) {
	musicVolume = vol
	if globalAudio != nil && globalAudio.musicPlayer != nil {
		globalAudio.musicPlayer.SetVolume(vol)
	}
}

func SetSFXVolume(vol float64) {
	sfxVolume = clampF(vol, 0, 1)
}

func startMusic(menuMode bool, level int, volume float64) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	if globalAudio.musicPlayer != nil {
		globalAudio.musicPlayer.Close()
	}
	musicVolume = volume
	reader := &musicReader{
		seed:     uint64(time.Now().UnixNano()),
		menuMode: menuMode,
		level:    level,
	}
	player := globalAudio.ctx.NewPlayer(reader)
	player.SetVolume(volume)
	globalAudio.musicPlayer = player
	player.Play()
}

func (m *musicReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	if samples == 0 {
		return 0, nil
	}
	if m.menuMode {
		return m.readMenuMusic(p, samples)
	}
	return m.readGameMusic(p, samples)
}

// ---- Music instruments (stateless per-sample, driven by m.t) ------------

// kick returns a kick drum sample given time-since-trigger (trig) in seconds.
func kick(trig float64) float64 {
	if trig > 0.25 {
		return 0
	}
	phase := 2 * math.Pi * 185 / 12.5 * (1 - math.Exp(-trig*12.5))
	body := math.Sin(phase) * math.Exp(-trig*18.0) * 0.80
	click := math.Sin(2*math.Pi*2100*trig) * math.Exp(-trig*250.0) * 0.24
	return softSat(body + click)
}

// snare returns a snare sample given time-since-trigger.
func snare(trig float64, seed *uint64) float64 {
	if trig > 0.2 {
		return 0
	}
	env := math.Exp(-trig * 26.0)
	body := (math.Sin(2*math.Pi*188*trig)*0.24 + math.Sin(2*math.Pi*356*trig)*0.10) * env
	n1 := lcg(seed)
	n2 := lcg(seed)
	bandNoise := (n1 - n2*0.55) * env * (0.55 + 0.25*math.Exp(-trig*8.0))
	return softSat(body + bandNoise)
}

// hihat returns a closed hi-hat sample. open=true for longer decay.
func hihat(trig float64, open bool, seed *uint64) float64 {
	decay := 42.0
	limit := 0.06
	if open {
		decay = 15.0
		limit = 0.18
	}
	if trig > limit {
		return 0
	}
	n := lcg(seed)
	metal := math.Sin(2*math.Pi*7300*trig) + math.Sin(2*math.Pi*9200*trig)*0.6
	s := (n*0.8 + metal*0.2) * math.Exp(-trig*decay) * 0.07
	return softSat(s)
}

// fmBass returns a warm FM bass sample. Low modRatio gives a smooth tone.
func fmBass(t, freq, env float64) float64 {
	b := fm(t, freq, 0.5, 1.25*env) * env * 0.48
	b += math.Sin(2*math.Pi*freq*t) * env * 0.26
	return softSat(b)
}

// fmPad returns a soft pad sample from a chord, detuned FM oscillators per note.
func fmPad(t float64, chord []float64, env float64) float64 {
	s := 0.0
	detunes := [3]float64{-0.003, 0.001, 0.004}
	for _, freq := range chord {
		for _, d := range detunes {
			f := freq * (1 + d)
			s += fm(t, f, 1.45, 0.75*env) * 0.055
		}
	}
	return softSat(s)
}

// fmArp returns an FM arpeggio sample for one note.
func fmArp(t, freq, env float64) float64 {
	s := fm(t, freq, 2.0, 3.2*env) * env * 0.20
	s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
	return softSat(s)
}

// ---- Menu music ---------------------------------------------------------

func (m *musicReader) readMenuMusic(p []byte, samples int) (int, error) {
	chords := [][]float64{
		{261.6, 329.6, 392.0, 493.9}, // Cmaj7
		{220.0, 261.6, 329.6, 392.0}, // Am7
		{174.6, 220.0, 261.6, 349.2}, // Fmaj7
		{196.0, 246.9, 293.7, 392.0}, // G
	}
	const tempo = 1.6 // 96 BPM
	const beatsPerChord = 4
	arpOrder := [8]int{0, 1, 2, 3, 2, 3, 1, 2}

	for i := 0; i < samples && i*8+7 < len(p); i++ {
		m.t += 1.0 / SampleRate
		beatLen := 1.0 / tempo
		beatTrig := math.Mod(m.t, beatLen)
		currentBeat := int(m.t * tempo)
		step8 := int(m.t*tempo*2) % 8

		chordStep := (currentBeat / beatsPerChord) % len(chords)
		chord := chords[chordStep]

		s := fmPad(m.t, chord, 0.7) * 0.8

		// Slow arpeggio floats above the pad.
		arpEnv := adsr(math.Mod(m.t*tempo*2, 1.0), 0.02, 0.4, 0.12, 0.25)
		s += fmArp(m.t, chord[arpOrder[step8]]*2, arpEnv) * 0.6

		// Gentle bass on the downbeat.
		if currentBeat%2 == 0 {
			s += fmBass(m.t, chord[0]/2, math.Exp(-beatTrig*6)) * 0.5
		}

		duck := 1.0 - 0.06*math.Exp(-beatTrig*10.0)
		s = softSat(s * duck * 0.9)
		pan := 0.08 * math.Sin(2*math.Pi*0.11*m.t)
		putStereoF32LR(p, i, softSat(s*(1-pan)), softSat(s*(1+pan)))
	}
	return len(p), nil
}

// ---- Game music ---------------------------------------------------------

func (m *musicReader) readGameMusic(p []byte, samples int) (int, error) {
	const gameMusicStyles = 3
	style := (m.level - 1) % gameMusicStyles
	if style < 0 {
		style += gameMusicStyles
	}
	chords, tempo := m.getLevelSong(style)

	for i := 0; i < samples && i*8+7 < len(p); i++ {
		m.t += 1.0 / SampleRate

		beatLen := 1.0 / tempo
		trig := math.Mod(m.t, beatLen)
		beatPos := trig / beatLen
		currentBeat := int(m.t * tempo)

		if currentBeat/2 != m.measure {
			m.measure = currentBeat / 2
			m.chordIdx = (m.chordIdx + 1) % len(chords)
		}
		m.section = (currentBeat / 32) % 4 // 8-bar macro sections
		chord := chords[m.chordIdx]

		var s float64
		switch style {
		case 0:
			s = m.mixRollingGroove(chord, tempo, trig, beatPos, currentBeat)
		case 1:
			s = m.mixBrightArcade(chord, tempo, trig, beatPos, currentBeat)
		default:
			s = m.mixDeepDrive(chord, tempo, trig, beatPos, currentBeat)
		}

		energy := [4]float64{0.80, 0.92, 1.00, 0.88}[m.section]
		duck := 1.0 - 0.14*math.Exp(-trig*20.0)
		s = softSat(s * energy * duck)
		pan := 0.08 * math.Sin(2*math.Pi*0.09*m.t+float64(style)*0.6)
		putStereoF32LR(p, i, softSat(s*(1-pan)), softSat(s*(1+pan)))
	}
	return len(p), nil
}

func (m *musicReader) getLevelSong(style int) ([][]float64, float64) {
	switch style {
	case 0: // Rolling groove, 112 BPM, Dm family
		return [][]float64{
			{146.8, 174.6, 220.0}, // Dm7
			{130.8, 164.8, 196.0}, // Cmaj7
			{116.5, 146.8, 174.6}, // Bbmaj7
			{110.0, 138.6, 164.8}, // Am7
		}, 1.87

	case 1: // Bright arcade, 140 BPM
		return [][]float64{
			{261.6, 329.6, 392.0},
			{220.0, 277.2, 329.6},
			{196.0, 246.9, 293.7},
			{174.6, 220.0, 261.6},
		}, 2.33

	default: // Deep drive, 124 BPM, minor
		return [][]float64{
			{110.0, 130.8, 164.8},
			{98.0, 123.5, 155.6},
			{92.5, 110.0, 138.6},
			{82.4, 98.0, 123.5},
		}, 2.07
	}
}

func (m *musicReader) mixRollingGroove(chord []float64, tempo, trig, beatPos float64, beat int) float64 {
	s := fmPad(m.t, chord, 0.6) * 0.7

	// Syncopated sub bass.
	if beat%4 == 0 || beat%4 == 3 || (beat%4 == 1 && beatPos > 0.5) {
		s += fmBass(m.t, chord[0]/2, math.Exp(-trig*14))
	}

	// Arp on 8ths.
	arpIdx := int(m.t*tempo*2) % len(chord)
	arpEnv := adsr(math.Mod(m.t*tempo*2, 1.0), 0.01, 0.4, 0.1, 0.2)
	s += fmArp(m.t, chord[arpIdx]*2, arpEnv) * 0.5

	if beat%2 == 0 {
		s += kick(trig) * 0.85
	} else {
		s += snare(trig, &m.seed) * 0.7
	}
	s += hihat(math.Mod(m.t*tempo*2, 1.0)/(tempo*2), false, &m.seed)
	return s
}

func (m *musicReader) mixBrightArcade(chord []float64, tempo, trig, beatPos float64, beat int) float64 {
	s := fmPad(m.t, chord, 0.5) * 0.5

	// Driving bass every beat.
	s += fmBass(m.t, chord[0]/2, math.Exp(-trig*10)) * 0.9

	// Fast 16th arp, octave-hopping.
	arp16 := int(m.t * tempo * 4)
	arpFreq := chord[arp16%len(chord)]
	if arp16%2 == 1 {
		arpFreq *= 2
	}
	arpEnv := adsr(math.Mod(m.t*tempo*4, 1.0), 0.005, 0.35, 0.05, 0.15)
	s += fmArp(m.t, arpFreq, arpEnv) * 0.7

	s += kick(trig) * 0.8
	if beat%2 == 1 {
		s += snare(trig, &m.seed) * 0.6
	}
	open := int(m.t*tempo*2)%4 == 3
	s += hihat(math.Mod(m.t*tempo*2, 1.0)/(tempo*2), open, &m.seed)
	return s
}

func (m *musicReader) mixDeepDrive(chord []float64, tempo, trig, beatPos float64, beat int) float64 {
	s := fmPad(m.t, chord, 0.75) * 0.85

	// Offbeat bass pulse.
	if beatPos > 0.5 {
		s += fmBass(m.t, chord[0]/2, math.Exp(-(beatPos-0.5)*8)) * 0.8
	}

	// Sparse arp, only in lifted sections.
	if m.section >= 2 {
		arpIdx := int(m.t*tempo) % len(chord)
		arpEnv := adsr(math.Mod(m.t*tempo, 1.0), 0.02, 0.5, 0.1, 0.3)
		s += fmArp(m.t, chord[arpIdx]*2, arpEnv) * 0.45
	}

	s += kick(trig) * 0.9
	if beat%4 == 2 {
		s += snare(trig, &m.seed) * 0.55
	}
	return s
}
