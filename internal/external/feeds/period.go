package feeds

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidPeriod is returned for an unknown time-period selector
	ErrInvalidPeriod = errors.New("period must be one of day, week, month")

	// ErrInvalidIndustry is returned for an unknown industry selector
	ErrInvalidIndustry = errors.New("industry must be one of fnb, tech, all")
)

// Period is a scan time window
type Period string

const (
	Day   Period = "day"
	Week  Period = "week"
	Month Period = "month"
)

// ParsePeriod validates a period selector; empty means day
func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return Day, nil
	case Day, Week, Month:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
}

// Lookback returns how far back the window reaches
func (p Period) Lookback() time.Duration {
	switch p {
	case Week:
		return 7 * 24 * time.Hour
	case Month:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// Industry selects a feed set and keyword filter
type Industry string

const (
	FnB  Industry = "fnb"
	Tech Industry = "tech"
	All  Industry = "all"
)

// ParseIndustry validates an industry selector; empty means all
func ParseIndustry(s string) (Industry, error) {
	switch i := Industry(strings.ToLower(strings.TrimSpace(s))); i {
	case "":
		return All, nil
	case FnB, Tech, All:
		return i, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidIndustry, s)
	}
}
