// Package timeframe provides inclusive calendar date ranges and the
// record filters built on them.
package timeframe

import (
	"fmt"
	"time"

	"github.com/theirongolddev/cwrapped/internal/model"
)

const dayFormat = "2006-01-02"

// Range is an inclusive [From, To] window. To is extended to the last
// millisecond of its calendar day. A Range with From after To matches
// nothing; that is documented behavior, not an error.
type Range struct {
	From time.Time
	To   time.Time

	FromDate string // YYYY-MM-DD as given
	ToDate   string
}

// New builds a Range from two YYYY-MM-DD strings.
func New(from, to string) (Range, error) {
	f, err := time.ParseInLocation(dayFormat, from, time.UTC)
	if err != nil {
		return Range{}, fmt.Errorf("parsing from date %q: %w", from, err)
	}
	t, err := time.ParseInLocation(dayFormat, to, time.UTC)
	if err != nil {
		return Range{}, fmt.Errorf("parsing to date %q: %w", to, err)
	}
	return Range{
		From:     f,
		To:       endOfDay(t),
		FromDate: from,
		ToDate:   to,
	}, nil
}

// Span describes the CLI date selection: explicit from/to, a month,
// a year, or a trailing day count.
type Span struct {
	From  string
	To    string
	Month string // YYYY-MM
	Year  string // YYYY
	Days  int    // trailing window, used when nothing else is set
}

// Resolve turns a Span into a concrete Range. Precedence matches the
// flag semantics: from+to, then month, then year, then trailing days
// ending at now.
func (s Span) Resolve(now time.Time) (Range, error) {
	if s.From != "" && s.To != "" {
		return New(s.From, s.To)
	}
	if s.Month != "" {
		first, err := time.ParseInLocation("2006-01", s.Month, time.UTC)
		if err != nil {
			return Range{}, fmt.Errorf("parsing month %q: %w", s.Month, err)
		}
		last := first.AddDate(0, 1, -1)
		return New(first.Format(dayFormat), last.Format(dayFormat))
	}
	if s.Year != "" {
		first, err := time.ParseInLocation("2006", s.Year, time.UTC)
		if err != nil {
			return Range{}, fmt.Errorf("parsing year %q: %w", s.Year, err)
		}
		return New(first.Format(dayFormat), first.AddDate(1, 0, -1).Format(dayFormat))
	}

	days := s.Days
	if days <= 0 {
		days = 30
	}
	to := now.UTC()
	from := to.AddDate(0, 0, -days)
	return New(from.Format(dayFormat), to.Format(dayFormat))
}

// ContainsDate reports whether a YYYY-MM-DD date string falls inside
// the range. Unparseable dates never match.
func (r Range) ContainsDate(date string) bool {
	d, err := time.ParseInLocation(dayFormat, date, time.UTC)
	if err != nil {
		return false
	}
	return !d.Before(r.From) && !d.After(r.To)
}

// ContainsMillis reports whether an epoch-millisecond timestamp falls
// inside the range.
func (r Range) ContainsMillis(ms int64) bool {
	return ms >= r.From.UnixMilli() && ms <= r.To.UnixMilli()
}

// ContainsTime reports whether a wall-clock instant falls inside the range.
func (r Range) ContainsTime(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// DayCount returns the number of calendar days the range spans, 0 for
// an inverted range.
func (r Range) DayCount() int {
	if r.To.Before(r.From) {
		return 0
	}
	return int(r.To.Sub(r.From).Hours()/24) + 1
}

// FilterActivity returns the activity records whose date falls in range,
// preserving order.
func FilterActivity(records []model.DailyActivity, r Range) []model.DailyActivity {
	var out []model.DailyActivity
	for _, rec := range records {
		if r.ContainsDate(rec.Date) {
			out = append(out, rec)
		}
	}
	return out
}

// FilterTokens returns the token records whose date falls in range,
// preserving order.
func FilterTokens(records []model.DailyModelTokens, r Range) []model.DailyModelTokens {
	var out []model.DailyModelTokens
	for _, rec := range records {
		if r.ContainsDate(rec.Date) {
			out = append(out, rec)
		}
	}
	return out
}

// FilterPrompts returns the prompt records whose epoch-millis timestamp
// falls in range, preserving order.
func FilterPrompts(records []model.PromptRecord, r Range) []model.PromptRecord {
	var out []model.PromptRecord
	for _, rec := range records {
		if r.ContainsMillis(rec.Timestamp) {
			out = append(out, rec)
		}
	}
	return out
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}
