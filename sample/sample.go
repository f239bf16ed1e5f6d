package sample

import (
	"fmt"

	"github.com/jsphweid/triadex/constants"
	tmidi "github.com/jsphweid/triadex/midi"
	"github.com/jsphweid/triadex/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	ChordChannel = 0
	ClickChannel = 9

	accentClick = 76
	click       = 77

	chordVelocity = 90
	clickVelocity = 70
)

var ticks = smf.MetricTicks(480)

// Create renders one 4/4 bar per voicing: the chord held for the bar on
// ChordChannel and a metronome click on every beat, accented on beat 1.
func Create(voicings []model.Voicing, bpm float64) (*smf.SMF, error) {
	if bpm <= 0 {
		return nil, fmt.Errorf("%w: bpm %v", model.ErrInvalidInput, bpm)
	}

	s := smf.New()
	s.TimeFormat = ticks
	beat := ticks.Ticks4th()

	var meta smf.Track
	meta.Add(0, smf.MetaMeter(constants.BeatsPerBar, 4))
	meta.Add(0, smf.MetaTempo(bpm))
	meta.Close(0)

	var chords smf.Track
	chords.Add(0, smf.MetaTrackSequenceName("triads"))
	for _, v := range voicings {
		keys := tmidi.SoundingKeys(v)
		for _, key := range keys {
			chords.Add(0, midi.NoteOn(ChordChannel, key, chordVelocity))
		}
		for i, key := range keys {
			var delta uint32
			if i == 0 {
				delta = beat * constants.BeatsPerBar
			}
			chords.Add(delta, midi.NoteOff(ChordChannel, key))
		}
	}
	chords.Close(0)

	var clicks smf.Track
	clicks.Add(0, smf.MetaTrackSequenceName("metronome"))
	for range voicings {
		for b := 0; b < constants.BeatsPerBar; b++ {
			key := uint8(click)
			if b == 0 {
				key = accentClick
			}
			clicks.Add(0, midi.NoteOn(ClickChannel, key, clickVelocity))
			clicks.Add(beat, midi.NoteOff(ClickChannel, key))
		}
	}
	clicks.Close(0)

	for _, tr := range []smf.Track{meta, chords, clicks} {
		if err := s.Add(tr); err != nil {
			return nil, fmt.Errorf("adding track: %w", err)
		}
	}
	return s, nil
}
