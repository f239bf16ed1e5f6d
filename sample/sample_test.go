package sample

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/jsphweid/triadex/chord"
	"github.com/jsphweid/triadex/fretboard"
	tmidi "github.com/jsphweid/triadex/midi"
	"github.com/jsphweid/triadex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func progression(t *testing.T) []model.Voicing {
	chords, err := chord.CircleOfFifths(chord.Clockwise, []model.Quality{model.Major})
	require.NoError(t, err)

	var res []model.Voicing
	for _, c := range chords[:4] {
		v, err := fretboard.Solve(c.Root, c.Quality, model.ShapeD, model.SetII, fretboard.DefaultPolicy())
		require.NoError(t, err)
		res = append(res, v)
	}
	return res
}

func TestCreateRoundTrip(t *testing.T) {
	voicings := progression(t)
	s, err := Create(voicings, 80)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = s.WriteTo(&buf)
	require.NoError(t, err)

	parsed, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Len(t, parsed.Tracks, 3)

	chords := tmidi.Chords(parsed, ChordChannel)
	require.Len(t, chords, len(voicings))
	for i, v := range voicings {
		assert.ElementsMatch(t, tmidi.SoundingKeys(v), chords[i])
	}
}

func TestCreateClicksEveryBeat(t *testing.T) {
	voicings := progression(t)
	s, err := Create(voicings, 120)
	require.NoError(t, err)

	var clicks, accents int
	for _, evt := range s.Tracks[2] {
		var ch, key, vel uint8
		if evt.Message.Is(midi.NoteOnMsg) && evt.Message.GetNoteOn(&ch, &key, &vel) {
			clicks++
			if key == accentClick {
				accents++
			}
		}
	}
	assert.Equal(t, 4*len(voicings), clicks)
	assert.Equal(t, len(voicings), accents)
}

func TestCreateWritesReadableFile(t *testing.T) {
	s, err := Create(progression(t), 60)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.mid")
	require.NoError(t, s.WriteFile(path))

	parsed, err := tmidi.ReadMidiFile(path)
	require.NoError(t, err)
	assert.Len(t, tmidi.Chords(parsed, ChordChannel), 4)
}

func TestCreateRejectsBadTempo(t *testing.T) {
	_, err := Create(nil, 0)
	assert.Error(t, err)
}
