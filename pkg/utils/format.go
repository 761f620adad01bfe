package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date layout used by the bills API
const DateLayout = "2006-01-02"

var frenchMonths = [...]string{
	"Jan", "Fév", "Mar", "Avr", "Mai", "Jui",
	"Jui", "Aoû", "Sep", "Oct", "Nov", "Déc",
}

// FormatDate turns "2004-04-04" into "4 Avr. 04"
func FormatDate(date string) (string, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return "", fmt.Errorf("invalid bill date %q: %w", date, err)
	}
	return fmt.Sprintf("%d %s. %02d", t.Day(), frenchMonths[t.Month()-1], t.Year()%100), nil
}

// FormatStatus returns the label shown to employees for a bill status.
// Unknown statuses are returned unchanged.
func FormatStatus(status string) string {
	switch status {
	case "pending":
		return "En attente"
	case "accepted":
		return "Accepté"
	case "refused":
		return "Refusé"
	default:
		return status
	}
}
