package booking

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidStayRange = errors.New("stay range end must be after start")

const DateLayout = "2006-01-02"

// StayRange is a half-open calendar-day interval [start, end).
// Check-out day is not occupied, so back-to-back stays on the same
// room do not overlap.
type StayRange struct {
	start time.Time
	end   time.Time
}

func NewStayRange(start, end time.Time) (StayRange, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if !end.After(start) {
		return StayRange{}, ErrInvalidStayRange
	}
	return StayRange{start: start, end: end}, nil
}

func (s StayRange) Start() time.Time {
	return s.start
}

func (s StayRange) End() time.Time {
	return s.end
}

func (s StayRange) Nights() int {
	return int(s.end.Sub(s.start).Hours() / 24)
}

// Overlaps reports whether two half-open intervals intersect:
// s1 < e2 AND s2 < e1.
func (s StayRange) Overlaps(other StayRange) bool {
	return s.start.Before(other.end) && other.start.Before(s.end)
}

func (s StayRange) String() string {
	return fmt.Sprintf("[%s,%s)", s.start.Format(DateLayout), s.end.Format(DateLayout))
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromInt(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) MulNights(nights int) Money {
	return Money{cents: m.cents * int64(nights)}
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}
