package gauge

import "iter"

// Bars is an insertion-ordered collection of bars keyed by title.
// At most one bar exists per title; FindOrCreate never duplicates.
//
// The zero value is not usable; create collections with NewBars.
type Bars struct {
	theme Theme
	order []*Bar
	index map[string]int
}

// NewBars creates an empty collection whose new bars inherit theme colors.
func NewBars(theme Theme) *Bars {
	return &Bars{
		theme: theme,
		index: make(map[string]int),
	}
}

// Find returns the bar with the given title, or nil.
func (s *Bars) Find(title string) *Bar {
	if i, ok := s.index[title]; ok {
		return s.order[i]
	}
	return nil
}

// FindOrCreate returns the bar with the given title, appending a new
// default bar when none exists yet. The second result reports creation.
func (s *Bars) FindOrCreate(title string) (*Bar, bool) {
	if b := s.Find(title); b != nil {
		return b, false
	}
	b := newBar(title, s.theme)
	s.index[title] = len(s.order)
	s.order = append(s.order, b)
	return b, true
}

// Len returns the number of bars.
func (s *Bars) Len() int { return len(s.order) }

// All iterates bars in insertion order. The sequence reads the live
// collection, so mutations of a yielded bar are visible to later reads.
func (s *Bars) All() iter.Seq[*Bar] {
	return func(yield func(*Bar) bool) {
		for _, b := range s.order {
			if !yield(b) {
				return
			}
		}
	}
}

// Clear releases every bar.
func (s *Bars) Clear() {
	clear(s.order)
	s.order = s.order[:0]
	clear(s.index)
}
