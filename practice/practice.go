package practice

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/jsphweid/triadex/chord"
	"github.com/jsphweid/triadex/fretboard"
	"github.com/jsphweid/triadex/model"
	"github.com/jsphweid/triadex/theory"
)

type Mode string

const (
	Random Mode = "random"
	Circle Mode = "circle"
)

type Options struct {
	Roots     []model.Note
	Qualities []model.Quality
	Sets      []model.StringSet
	Mode      Mode
	Direction chord.Direction
	Policy    fretboard.Policy
	Seed      int64
}

// Session hands out voicings one at a time. It is not safe for concurrent use.
type Session struct {
	ID        string
	StartedAt time.Time
	History   []model.Voicing

	opts        Options
	rng         *rand.Rand
	progression []model.Chord
	previous    *model.Chord
	prevShape   *model.ShapeName
}

func NewSession(opts Options) (*Session, error) {
	if len(opts.Roots) == 0 {
		opts.Roots = theory.PitchClasses()
	}
	if len(opts.Qualities) == 0 {
		opts.Qualities = theory.Qualities()
	}
	if len(opts.Sets) == 0 {
		opts.Sets = theory.StringSets()
	}
	if opts.Mode == "" {
		opts.Mode = Random
	}

	s := &Session{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
		opts:      opts,
		rng:       rand.New(rand.NewSource(opts.Seed)),
	}

	switch opts.Mode {
	case Random:
	case Circle:
		if s.opts.Direction == "" {
			s.opts.Direction = chord.Clockwise
		}
		progression, err := chord.CircleOfFifths(s.opts.Direction, s.opts.Qualities)
		if err != nil {
			return nil, err
		}
		s.progression = progression
	default:
		return nil, fmt.Errorf("%w: mode %q", model.ErrInvalidInput, opts.Mode)
	}
	return s, nil
}

func (s *Session) nextChord() (model.Chord, error) {
	if s.opts.Mode == Circle {
		c, _ := chord.Next(s.previous, s.progression)
		return c, nil
	}
	return chord.GenerateRandom(s.rng, s.opts.Roots, s.previous, s.opts.Qualities)
}

// Next picks the next chord, shape and string set. When the picked shape
// cannot be voiced on the picked set under the session policy the other
// shapes and sets are tried in order.
func (s *Session) Next() (model.Voicing, error) {
	c, err := s.nextChord()
	if err != nil {
		return model.Voicing{}, err
	}

	sh := chord.PickShape(s.rng, s.prevShape)
	set := s.opts.Sets[s.rng.Intn(len(s.opts.Sets))]

	v, err := s.solve(c, sh, set)
	if err != nil {
		return v, err
	}

	s.previous = &c
	s.prevShape = &v.Shape
	s.History = append(s.History, v)
	return v, nil
}

func (s *Session) solve(c model.Chord, sh model.ShapeName, set model.StringSet) (model.Voicing, error) {
	if fretboard.Solvable(c.Quality, sh, set, s.opts.Policy) {
		return fretboard.Solve(c.Root, c.Quality, sh, set, s.opts.Policy)
	}
	for _, other := range theory.Shapes() {
		if other != sh && (s.prevShape == nil || other != *s.prevShape) && fretboard.Solvable(c.Quality, other, set, s.opts.Policy) {
			return fretboard.Solve(c.Root, c.Quality, other, set, s.opts.Policy)
		}
	}
	for _, otherSet := range s.opts.Sets {
		if fretboard.Solvable(c.Quality, sh, otherSet, s.opts.Policy) {
			return fretboard.Solve(c.Root, c.Quality, sh, otherSet, s.opts.Policy)
		}
	}
	return fretboard.Solve(c.Root, c.Quality, sh, set, s.opts.Policy)
}

func (s *Session) Record() model.SessionRecord {
	rec := model.SessionRecord{ID: s.ID, StartedAt: s.StartedAt}
	for _, v := range s.History {
		rec.Keys = append(rec.Keys, v.Key())
	}
	return rec
}

// Driver advances a session from bursty triggers, such as key presses,
// producing one voicing per burst.
type Driver struct {
	mu        sync.Mutex
	session   *Session
	debounce  func(func())
	onNext    func(model.Voicing, error)
	requested int
	handled   int
}

func NewDriver(session *Session, wait time.Duration, onNext func(model.Voicing, error)) *Driver {
	return &Driver{
		session:  session,
		debounce: debounce.New(wait),
		onNext:   onNext,
	}
}

func (d *Driver) Trigger() {
	d.mu.Lock()
	d.requested++
	d.mu.Unlock()
	d.debounce(d.advance)
}

func (d *Driver) advance() {
	d.mu.Lock()
	defer d.mu.Unlock()
	// an earlier call already covered every trigger that scheduled this one
	if d.handled == d.requested {
		return
	}
	v, err := d.session.Next()
	d.onNext(v, err)
	d.handled = d.requested
}

// Settle blocks until every trigger so far has been handled.
func (d *Driver) Settle() {
	for {
		d.mu.Lock()
		done := d.handled == d.requested
		d.mu.Unlock()
		if done {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
}
