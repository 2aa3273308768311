package departure

import (
	"fmt"
	"time"

	"github.com/blackbird-voyages/ops-engine/internal/domain/timeline"
)

// Band is the urgency classification of a deadline, from least to most
// specific: normal, warning, urgent, today, overdue, done, none.
type Band string

const (
	BandNone    Band = "none"
	BandDone    Band = "done"
	BandOverdue Band = "overdue"
	BandToday   Band = "today"
	BandUrgent  Band = "urgent"
	BandWarning Band = "warning"
	BandNormal  Band = "normal"
)

// Urgency windows, in days before the deadline.
const (
	urgentWindowDays  = 7
	warningWindowDays = 30
)

// Deadline is the input to Classify: a date plus what kind of obligation it
// tracks. Payment deadlines label their done state "paid". Critical deadlines
// (the departure date itself) are urgent no matter how far out they are.
type Deadline struct {
	At        time.Time
	Payment   bool
	Completed bool
	Critical  bool
}

// Classification is the result of classifying one deadline. Days is only
// meaningful when HasDeadline is true. Label is the operator-facing countdown
// text in the J-notation the dispatch board uses ("J-7", "J+3").
type Classification struct {
	Band        Band
	Label       string
	Days        int
	HasDeadline bool
}

// Classify buckets a deadline relative to the reference date. Rules apply in
// priority order: no deadline, completed, overdue, due today, urgent (within
// 7 days, or any critical deadline), warning (within 30 days), normal.
func Classify(d Deadline, ref time.Time) Classification {
	if d.At.IsZero() {
		return Classification{Band: BandNone, Label: "—"}
	}

	days := timeline.DaysRemaining(d.At, ref)

	if d.Completed {
		label := "done"
		if d.Payment {
			label = "paid"
		}
		return Classification{Band: BandDone, Label: label, Days: days, HasDeadline: true}
	}

	switch {
	case days < 0:
		return Classification{Band: BandOverdue, Label: fmt.Sprintf("J+%d", -days), Days: days, HasDeadline: true}
	case days == 0:
		return Classification{Band: BandToday, Label: "today", Days: days, HasDeadline: true}
	case days <= urgentWindowDays || (!d.Payment && d.Critical):
		return Classification{Band: BandUrgent, Label: fmt.Sprintf("J-%d", days), Days: days, HasDeadline: true}
	case days <= warningWindowDays:
		return Classification{Band: BandWarning, Label: fmt.Sprintf("J-%d", days), Days: days, HasDeadline: true}
	default:
		return Classification{Band: BandNormal, Label: fmt.Sprintf("J-%d", days), Days: days, HasDeadline: true}
	}
}
