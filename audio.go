package warp

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

// VolumeSetter receives the portal's ambience gain each time it changes.
// *audio.Player satisfies it.
type VolumeSetter interface {
	SetVolume(volume float64)
}

// LoadLoop decodes an MP3 or Ogg Vorbis file and returns a player that
// loops it forever, resampled to the context's rate. The format is chosen
// from name's extension. The player is created paused; call Play to start it.
func LoadLoop(ctx *audio.Context, name string, data []byte) (*audio.Player, error) {
	reader := bytes.NewReader(data)

	var stream interface {
		io.ReadSeeker
		Length() int64
	}

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("decode mp3 %s: %w", name, err)
		}
		stream = s
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("decode ogg %s: %w", name, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("load %s: unsupported audio format %q (supported: .mp3, .ogg)", name, ext)
	}

	loop := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("create player for %s: %w", name, err)
	}
	return player, nil
}
