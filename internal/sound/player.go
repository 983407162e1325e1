package sound

import (
	"errors"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ayoisaiah/pomobar/internal/logger"
)

// SampleRate is the rate every sound is resampled to before mixing.
const SampleRate beep.SampleRate = 44100

// ambientGain scales the configured volume for looping ambient sounds.
const ambientGain = 0.6

// Extensions lists the supported audio formats in lookup order.
var Extensions = []string{".ogg", ".mp3", ".wav", ".flac"}

// Output is the audio device.
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (speakerOutput) Play(s ...beep.Streamer) {
	speaker.Play(s...)
}

func (speakerOutput) Clear() {
	speaker.Clear()
}

func (speakerOutput) Lock() {
	speaker.Lock()
}

func (speakerOutput) Unlock() {
	speaker.Unlock()
}

// Player loops one ambient sound at a time. Audio files are looked up in a
// directory by the lower-cased choice name, e.g. rain.ogg.
type Player struct {
	out     Output
	logger  *slog.Logger
	buffers map[Choice]*beep.Buffer
	current *effects.Volume
	choice  Choice
	dir     string
	volume  float64
	mu      sync.Mutex
	initErr error
	once    sync.Once
}

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithOutput replaces the system speaker.
func WithOutput(out Output) PlayerOption {
	return func(p *Player) {
		p.out = out
	}
}

// WithLogger sets the logger used to report missing or broken assets.
func WithLogger(l *slog.Logger) PlayerOption {
	return func(p *Player) {
		p.logger = l
	}
}

// NewPlayer creates a player that reads assets from dir.
func NewPlayer(dir string, opts ...PlayerOption) *Player {
	p := &Player{
		dir:     dir,
		out:     speakerOutput{},
		logger:  logger.Discard(),
		buffers: make(map[Choice]*beep.Buffer),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Play replaces the current sound with a loop of c. A missing or unreadable
// asset is logged and leaves the player silent.
func (p *Player) Play(c Choice, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	p.once.Do(func() {
		err := p.out.Init(SampleRate, SampleRate.N(time.Second/10))
		if err != nil {
			p.initErr = errSpeakerInit.Wrap(err)
		}
	})

	if p.initErr != nil {
		p.logger.Warn("sound disabled", slog.Any("error", p.initErr))
		return
	}

	buf, err := p.load(c)
	if err != nil {
		p.logger.Warn(
			"ambient sound unavailable",
			slog.String("sound", string(c)),
			slog.Any("error", err),
		)

		return
	}

	p.volume = volume
	p.choice = c
	p.current = &effects.Volume{
		Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len())),
		Base:     2,
	}
	applyVolume(p.current, level(c, volume))

	p.out.Play(p.current)

	p.logger.Debug(
		"playing ambient sound",
		slog.String("sound", string(c)),
		slog.Float64("volume", volume),
	)
}

// Stop silences the current sound.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.current == nil {
		return
	}

	p.out.Clear()
	p.current = nil
}

// SetVolume changes the volume of the playing sound.
func (p *Player) SetVolume(volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.volume = volume

	if p.current == nil {
		return
	}

	p.out.Lock()
	applyVolume(p.current, level(p.choice, volume))
	p.out.Unlock()
}

// Playing reports whether a sound is currently looping.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.current != nil
}

// level is the playback level of c. Ticking plays at the configured volume;
// the looping ambiences are scaled down by ambientGain.
func level(c Choice, volume float64) float64 {
	if c == Ticking {
		return volume
	}

	return volume * ambientGain
}

func applyVolume(v *effects.Volume, level float64) {
	if level <= 0 {
		v.Silent = true
		v.Volume = 0

		return
	}

	v.Silent = false
	v.Volume = math.Log2(level)
}

// load decodes and caches the asset of c. The ticking sound is padded with
// silence to exactly one second so that the loop ticks once per second.
func (p *Player) load(c Choice) (*beep.Buffer, error) {
	if buf, ok := p.buffers[c]; ok {
		return buf, nil
	}

	path, err := FindAsset(p.dir, c)
	if err != nil {
		return nil, err
	}

	stream, format, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	defer stream.Close()

	var s beep.Streamer = stream
	if format.SampleRate != SampleRate {
		s = beep.Resample(4, format.SampleRate, SampleRate, stream)
	}

	target := beep.Format{
		SampleRate:  SampleRate,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	}

	buf := beep.NewBuffer(target)
	buf.Append(s)

	if c == Ticking {
		buf = padToSecond(buf)
	}

	p.buffers[c] = buf

	return buf, nil
}

func padToSecond(buf *beep.Buffer) *beep.Buffer {
	second := SampleRate.N(time.Second)

	out := beep.NewBuffer(buf.Format())

	n := min(buf.Len(), second)

	out.Append(beep.Seq(buf.Streamer(0, n), beep.Silence(second-n)))

	return out
}

// FindAsset returns the first file in dir named after c with a supported
// extension.
func FindAsset(dir string, c Choice) (string, error) {
	for _, ext := range Extensions {
		path := filepath.Join(dir, c.FileStem()+ext)

		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}

		if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}

	return "", errAssetNotFound.Fmt(c, dir)
}

func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		_ = f.Close()
		return nil, beep.Format{}, errInvalidSoundFormat
	}

	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, errDecode.Fmt(filepath.Base(path)).Wrap(err)
	}

	return stream, format, nil
}
