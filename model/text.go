package model

import "fmt"

func lookupName[A comparable](names map[A]string, kind string, text []byte) (A, error) {
	for v, name := range names {
		if name == string(text) {
			return v, nil
		}
	}
	var zero A
	return zero, fmt.Errorf("%w: %v %q", ErrInvalidInput, kind, text)
}

func indexName(names []string, kind string, text []byte) (int, error) {
	for i, name := range names {
		if name == string(text) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %v %q", ErrInvalidInput, kind, text)
}

func (q *Quality) UnmarshalText(text []byte) error {
	v, err := lookupName(qualityNames, "quality", text)
	*q = v
	return err
}

func (s *StringSet) UnmarshalText(text []byte) error {
	v, err := lookupName(stringSetNames, "string set", text)
	*s = v
	return err
}

func (s *ShapeName) UnmarshalText(text []byte) error {
	v, err := lookupName(shapeNames, "shape", text)
	*s = v
	return err
}

func (r *Role) UnmarshalText(text []byte) error {
	i, err := indexName(roleNames[:], "role", text)
	*r = Role(i)
	return err
}

func (i *Interval) UnmarshalText(text []byte) error {
	idx, err := indexName(intervalNames[:], "interval", text)
	*i = Interval(idx)
	return err
}
