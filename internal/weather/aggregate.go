package weather

import "time"

// DefaultHorizonDays is the maximum number of distinct calendar days retained
// by DailySummaries when no explicit horizon is given.
const DefaultHorizonDays = 5

// ForecastDay is the representative entry for one calendar day: the first
// chronological sample observed for that day, passed through unmodified.
type ForecastDay struct {
	Timestamp time.Time      `json:"timestamp"`
	Sample    ForecastSample `json:"sample"`
}

// DailySummaries reduces a chronologically ordered series of fine-grained
// forecast samples to one entry per distinct calendar day, keeping the first
// sample encountered for each day and stopping after horizon distinct days.
// Calendar dates are derived in loc (time.Local when nil). The input series
// is never mutated and the output preserves input order.
func DailySummaries(series []ForecastSample, horizon int, loc *time.Location) []ForecastDay {
	if horizon <= 0 {
		horizon = DefaultHorizonDays
	}
	if loc == nil {
		loc = time.Local
	}

	days := make([]ForecastDay, 0, horizon)
	seen := make(map[string]struct{}, horizon)

	for _, s := range series {
		ts := time.Unix(s.Dt, 0).In(loc)
		key := ts.Format("2006-01-02")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		days = append(days, ForecastDay{Timestamp: ts, Sample: s})
		if len(days) >= horizon {
			break
		}
	}
	return days
}

// DayLabel names a forecast date relative to now: "Today", "Tomorrow", or a
// weekday/month/day string such as "Friday, Mar 15".
func DayLabel(date, now time.Time) string {
	if sameDate(date, now) {
		return "Today"
	}
	if sameDate(date, now.AddDate(0, 0, 1)) {
		return "Tomorrow"
	}
	return date.Format("Monday, Jan 2")
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
