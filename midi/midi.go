package midi

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/jsphweid/triadex/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

// E2 A2 D3 G3 B3 E4, indexed by string number
var openKeys = [model.NumStrings + 1]uint8{0, 64, 59, 55, 50, 45, 40}

func OpenKey(s model.StringIndex) uint8 {
	return openKeys[s]
}

// SoundingKeys returns the MIDI key of each position in the voicing's order.
func SoundingKeys(v model.Voicing) []uint8 {
	res := make([]uint8, 0, len(v.Positions))
	for _, p := range v.Positions {
		res = append(res, OpenKey(p.String)+uint8(p.Fret))
	}
	return res
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}
	return parse(func() (*smf.SMF, error) {
		return smf.ReadFrom(bytes.NewReader(dat))
	})
}

// parse turns any panic from the reader into an error.
// https://github.com/gomidi/midi/issues/20
func parse(read func() (*smf.SMF, error)) (s *smf.SMF, e error) {
	defer func() {
		if r := recover(); r != nil {
			s, e = nil, fmt.Errorf("parsing midi file: %v", r)
		}
	}()

	res, err := read()
	if err != nil {
		return nil, fmt.Errorf("parsing midi file: %w", err)
	}
	return res, nil
}

// Chords groups note-on keys on the given channel by absolute tick.
func Chords(s *smf.SMF, channel uint8) [][]uint8 {
	byTick := make(map[int64][]uint8)
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var ch, key, velocity uint8
			if event.Message.GetNoteOn(&ch, &key, &velocity) && ch == channel {
				byTick[absTicks] = append(byTick[absTicks], key)
			}
		}
	}

	ticks := make([]int64, 0, len(byTick))
	for tick := range byTick {
		ticks = append(ticks, tick)
	}
	sort.Slice(ticks, func(i, j int) bool {
		return ticks[i] < ticks[j]
	})

	res := make([][]uint8, 0, len(ticks))
	for _, tick := range ticks {
		res = append(res, byTick[tick])
	}
	return res
}
