// Package mood derives the browsing mood from the wall clock or an explicit
// selection.
package mood

import (
	"time"

	"moodbite/domain"
)

type Classifier struct {
	now func() time.Time
	loc *time.Location
}

// NewClassifier builds a classifier reading hours in loc. A nil now uses
// time.Now and a nil loc uses time.Local.
func NewClassifier(now func() time.Time, loc *time.Location) *Classifier {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &Classifier{now: now, loc: loc}
}

// CurrentMood resolves auto to the time-of-day mood and returns any other
// selection unchanged.
func (c *Classifier) CurrentMood(selection domain.Mood) domain.Mood {
	if selection != domain.MoodAuto {
		return selection
	}
	return MoodForHour(c.now().In(c.loc).Hour())
}

// MoodForHour maps a 24h clock hour onto the mood table. Hours outside
// [0,24) are neutral.
func MoodForHour(hour int) domain.Mood {
	switch {
	case hour >= 22 && hour < 24, hour >= 0 && hour < 6:
		return domain.MoodTired
	case hour >= 6 && hour < 10:
		return domain.MoodLazy
	case hour >= 10 && hour < 16:
		return domain.MoodAdventurous
	case hour >= 16 && hour < 22:
		return domain.MoodHappy
	default:
		return domain.MoodNeutral
	}
}
