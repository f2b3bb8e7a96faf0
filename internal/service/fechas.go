package service

import (
	"strings"
	"time"
)

const formatoFecha = "2006-01-02"

// parseFechaOpcional turns "YYYY-MM-DD" form input into a date. The three
// outcomes stay distinguishable for callers:
//
//	nil / blank input      → (nil, false)  nothing supplied
//	parsable input         → (&t, true)
//	unparsable input       → (nil, true)   supplied but invalid → field cleared
func parseFechaOpcional(s *string) (*time.Time, bool) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, false
	}
	t, err := time.Parse(formatoFecha, strings.TrimSpace(*s))
	if err != nil {
		return nil, true
	}
	return &t, true
}

// formatFecha renders a nullable date back to "YYYY-MM-DD" for responses.
func formatFecha(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(formatoFecha)
	return &s
}
