package utils

import (
	"fmt"
	"strings"
	"time"

	"galeana-pepper/domain"
)

// FormatFolio renders a folio zero-padded to domain.FolioDisplayDigits.
func FormatFolio(folio uint) string {
	return fmt.Sprintf("%0*d", domain.FolioDisplayDigits, folio)
}

// FormatHHMMSS renders a duration in seconds as HH:MM:SS. Hours are not wrapped.
func FormatHHMMSS(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatEspera renders a queue wait as "Xd HHh MMm", dropping the day part when zero.
func FormatEspera(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Minute)
	days := total / (24 * 60)
	hours := (total % (24 * 60)) / 60
	minutes := total % 60
	if days > 0 {
		return fmt.Sprintf("%dd %02dh %02dm", days, hours, minutes)
	}
	return fmt.Sprintf("%02dh %02dm", hours, minutes)
}

// FormatCronometro renders a running timer as "Hh MMm SSs" from one hour on, else "MM:SS".
func FormatCronometro(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// SecondsBetween returns whole seconds from start to end, never negative.
func SecondsBetween(start, end time.Time) int64 {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}
	return int64(d / time.Second)
}

// JoinNonEmpty joins the trimmed parts that are not blank.
func JoinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
