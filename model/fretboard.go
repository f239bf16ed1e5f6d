package model

import "fmt"

// StringIndex is 1 for the highest-pitched string through 6 for the lowest.
type StringIndex int

const NumStrings = 6

func (s StringIndex) Valid() bool {
	return s >= 1 && s <= NumStrings
}

type StringSet uint8

const (
	SetI StringSet = iota + 1
	SetII
	SetIII
	SetIV
)

var stringSetNames = map[StringSet]string{
	SetI:   "I",
	SetII:  "II",
	SetIII: "III",
	SetIV:  "IV",
}

func (s StringSet) Valid() bool {
	_, ok := stringSetNames[s]
	return ok
}

func (s StringSet) String() string {
	if name, ok := stringSetNames[s]; ok {
		return name
	}
	return fmt.Sprintf("StringSet(%d)", uint8(s))
}

func (s StringSet) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: string set %d", ErrInvalidInput, uint8(s))
	}
	return []byte(s.String()), nil
}

type ShapeName uint8

const (
	ShapeD ShapeName = iota + 1
	ShapeA
	ShapeE
)

var shapeNames = map[ShapeName]string{
	ShapeD: "D",
	ShapeA: "A",
	ShapeE: "E",
}

func (s ShapeName) Valid() bool {
	_, ok := shapeNames[s]
	return ok
}

func (s ShapeName) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ShapeName(%d)", uint8(s))
}

func (s ShapeName) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: shape %d", ErrInvalidInput, uint8(s))
	}
	return []byte(s.String()), nil
}

// Role is the chord tone a string carries, independent of quality.
type Role uint8

const (
	Root Role = iota
	Third
	Fifth
)

var roleNames = [...]string{"root", "third", "fifth"}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Interval is a role resolved against a quality.
type Interval uint8

const (
	PerfectUnison Interval = iota
	MinorThird
	MajorThird
	DiminishedFifth
	PerfectFifth
)

var intervalNames = [...]string{"1P", "3m", "3M", "5d", "5P"}

func (i Interval) String() string {
	if int(i) < len(intervalNames) {
		return intervalNames[i]
	}
	return fmt.Sprintf("Interval(%d)", uint8(i))
}

func (i Interval) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

type FretPosition struct {
	String   StringIndex `json:"string"`
	Fret     int         `json:"fret"`
	Role     Role        `json:"role"`
	Interval Interval    `json:"interval"`
}

// Voicing holds one position per string of Set, lowest-pitched string first.
type Voicing struct {
	Root      Note            `json:"root"`
	Quality   Quality         `json:"quality"`
	Shape     ShapeName       `json:"shape"`
	Set       StringSet       `json:"set"`
	Positions [3]FretPosition `json:"positions"`
}

func (v Voicing) Frets() [3]int {
	return [3]int{v.Positions[0].Fret, v.Positions[1].Fret, v.Positions[2].Fret}
}

func (v Voicing) MinFret() int {
	res := v.Positions[0].Fret
	for _, p := range v.Positions[1:] {
		if p.Fret < res {
			res = p.Fret
		}
	}
	return res
}

func (v Voicing) MaxFret() int {
	res := v.Positions[0].Fret
	for _, p := range v.Positions[1:] {
		if p.Fret > res {
			res = p.Fret
		}
	}
	return res
}

func (v Voicing) Span() int {
	return v.MaxFret() - v.MinFret()
}

func (v Voicing) Key() string {
	return VoicingKey(v.Root, v.Quality, v.Shape, v.Set)
}

// VoicingKey identifies a voicing by its inputs, e.g. "01-Major-D-II".
// Roots are keyed by pitch class so enharmonic spellings collide.
func VoicingKey(root Note, q Quality, shape ShapeName, set StringSet) string {
	return fmt.Sprintf("%02d-%v-%v-%v", root.PitchClass, q, shape, set)
}
