package daterange

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// Layout is the wire format for dates, shared with the APOD API.
const Layout = "2006-01-02"

// ErrInverted is returned when a range would end before it starts.
var ErrInverted = errors.New("daterange: start is after end")

// Date is a calendar date with no time-of-day or zone component.
type Date struct {
	t time.Time
}

// Parse parses a YYYY-MM-DD string into a Date.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// MustParse is Parse that panics on error. For tests and constants.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Today returns the current date in local time.
func Today() Date {
	y, m, d := time.Now().Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.t.Format(Layout)
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// AddDays returns the date n calendar days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns the number of calendar days from d to other.
// Negative when other is earlier than d.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t) / (24 * time.Hour))
}

// Range is an inclusive pair of dates with Start <= End.
type Range struct {
	Start Date
	End   Date
}

// New builds a Range, rejecting inverted bounds.
func New(start, end Date) (Range, error) {
	if start.After(end) {
		return Range{}, fmt.Errorf("%w: %s > %s", ErrInverted, start, end)
	}
	return Range{Start: start, End: end}, nil
}

// Single returns the one-day range covering d.
func Single(d Date) Range {
	return Range{Start: d, End: d}
}

// LastDays returns the range covering the n days ending today (n >= 1).
func LastDays(n int) Range {
	end := Today()
	if n < 1 {
		n = 1
	}
	return Range{Start: end.AddDays(-(n - 1)), End: end}
}

// Days returns the number of calendar days the range covers, inclusive.
func (r Range) Days() int {
	return r.Start.DaysUntil(r.End) + 1
}

// String formats the range as "start..end".
func (r Range) String() string {
	return r.Start.String() + ".." + r.End.String()
}

// Chunk splits the range into consecutive sub-ranges whose start-to-end
// spans are at most maxSpanDays. The sub-ranges are gap-free,
// non-overlapping, ascending, and cover the range exactly.
//
// A range already within the limit is returned as a single element.
func (r Range) Chunk(maxSpanDays int) []Range {
	if maxSpanDays < 1 {
		maxSpanDays = 1
	}
	if r.Start.DaysUntil(r.End) <= maxSpanDays {
		return []Range{r}
	}

	var chunks []Range
	cur := r.Start
	for !cur.After(r.End) {
		end := cur.AddDays(maxSpanDays - 1)
		if end.After(r.End) {
			end = r.End
		}
		chunks = append(chunks, Range{Start: cur, End: end})
		cur = end.AddDays(1)
	}
	return chunks
}

// RandomBetween returns a uniformly random date in [start, end].
func RandomBetween(start, end Date) Date {
	span := start.DaysUntil(end)
	if span <= 0 {
		return start
	}
	return start.AddDays(rand.IntN(span + 1))
}
