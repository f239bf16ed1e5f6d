package model

type Note struct {
	PitchClass int `json:"pitch_class"`
	// NOTE: cosmetic only, two notes with different spellings can be Equal
	Spelling string `json:"spelling"`
}

func (n Note) Equal(o Note) bool {
	return n.PitchClass == o.PitchClass
}

func (n Note) String() string {
	return n.Spelling
}
