package model

import "fmt"

type Quality uint8

const (
	Major Quality = iota + 1
	Minor
	Diminished
)

var qualityNames = map[Quality]string{
	Major:      "Major",
	Minor:      "Minor",
	Diminished: "Dim",
}

func (q Quality) Valid() bool {
	_, ok := qualityNames[q]
	return ok
}

func (q Quality) String() string {
	if name, ok := qualityNames[q]; ok {
		return name
	}
	return fmt.Sprintf("Quality(%d)", uint8(q))
}

func (q Quality) MarshalText() ([]byte, error) {
	if !q.Valid() {
		return nil, fmt.Errorf("%w: quality %d", ErrInvalidInput, uint8(q))
	}
	return []byte(q.String()), nil
}

type Chord struct {
	Root    Note    `json:"root"`
	Quality Quality `json:"quality"`
}
