package departure

import (
	"fmt"
	"time"

	"github.com/blackbird-voyages/ops-engine/internal/domain"
)

// MilestoneKey identifies one of the four payment milestones every departure
// group carries: a deposit and a balance for each of the air and land legs.
type MilestoneKey string

const (
	KeyAirDeposit  MilestoneKey = "air_deposit"
	KeyAirBalance  MilestoneKey = "air_balance"
	KeyLandDeposit MilestoneKey = "land_deposit"
	KeyLandBalance MilestoneKey = "land_balance"
)

// MilestoneKeys returns all milestone keys in display order.
func MilestoneKeys() []MilestoneKey {
	return []MilestoneKey{KeyAirDeposit, KeyAirBalance, KeyLandDeposit, KeyLandBalance}
}

// IsValid reports whether k is a known milestone key.
func (k MilestoneKey) IsValid() bool {
	switch k {
	case KeyAirDeposit, KeyAirBalance, KeyLandDeposit, KeyLandBalance:
		return true
	}
	return false
}

// String returns the key as a string.
func (k MilestoneKey) String() string {
	return string(k)
}

// AmountSource records how a milestone's AmountToPay was produced, so a later
// patch can tell a derived figure from one an operator typed in.
type AmountSource string

const (
	// AmountDerived means AmountToPay was computed as Total x Percentage / 100.
	AmountDerived AmountSource = "derived"
	// AmountManual means AmountToPay was set explicitly by an operator.
	AmountManual AmountSource = "manual"
)

// Milestone is one payment obligation of a departure group. Percentage is nil
// when no percentage has been agreed; AmountToPay then only changes when set
// explicitly. A zero Deadline means no deadline has been fixed yet.
type Milestone struct {
	Deadline    time.Time
	TotalAmount float64
	Percentage  *float64
	AmountToPay float64
	Source      AmountSource
	Status      PaymentStatus
	ReceiptURL  string
}

// NewMilestone returns an empty milestone as seeded on group creation:
// no deadline, zero amounts, pending payment.
func NewMilestone() Milestone {
	return Milestone{Status: PaymentPending, Source: AmountManual}
}

// MilestonePatch is a partial update to a milestone. Nil fields are left
// unchanged. Setting Deadline to the zero time clears the deadline.
type MilestonePatch struct {
	Deadline    *time.Time
	TotalAmount *float64
	Percentage  *float64
	AmountToPay *float64
	Status      *PaymentStatus
	ReceiptURL  *string
}

// Validate checks the patch before any of it is applied.
func (p MilestonePatch) Validate() error {
	if p.TotalAmount != nil && *p.TotalAmount < 0 {
		return fmt.Errorf("%w: total amount %v is negative", domain.ErrInvalidAmount, *p.TotalAmount)
	}
	if p.AmountToPay != nil && *p.AmountToPay < 0 {
		return fmt.Errorf("%w: amount to pay %v is negative", domain.ErrInvalidAmount, *p.AmountToPay)
	}
	if p.Percentage != nil && (*p.Percentage < 0 || *p.Percentage > 100) {
		return fmt.Errorf("%w: percentage %v outside [0,100]", domain.ErrInvalidAmount, *p.Percentage)
	}
	if p.Status != nil && !p.Status.IsValid() {
		return &domain.ValidationError{Fields: map[string]string{
			"status": fmt.Sprintf("invalid: %q", *p.Status),
		}}
	}
	return nil
}

// Apply merges a patch into the milestone and returns the result; the
// receiver is never mutated. An invalid patch is rejected whole.
//
// AmountToPay follows two rules, in order:
//  1. An explicit amount in the patch always wins and marks the milestone
//     manual.
//  2. Otherwise, when the patch touches TotalAmount or Percentage and the
//     percentage is known, AmountToPay is recomputed as
//     Total x Percentage / 100 and marked derived.
//
// A patch that touches neither amount field leaves AmountToPay alone, so
// reapplying the same patch is idempotent.
func (m Milestone) Apply(p MilestonePatch) (Milestone, error) {
	if err := p.Validate(); err != nil {
		return Milestone{}, err
	}

	out := m
	if p.Deadline != nil {
		out.Deadline = *p.Deadline
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.ReceiptURL != nil {
		out.ReceiptURL = *p.ReceiptURL
	}

	touched := p.TotalAmount != nil || p.Percentage != nil
	if p.TotalAmount != nil {
		out.TotalAmount = *p.TotalAmount
	}
	if p.Percentage != nil {
		pct := *p.Percentage
		out.Percentage = &pct
	}

	switch {
	case p.AmountToPay != nil:
		out.AmountToPay = *p.AmountToPay
		out.Source = AmountManual
	case touched && out.Percentage != nil:
		out.AmountToPay = out.TotalAmount * *out.Percentage / 100
		out.Source = AmountDerived
	}

	return out, nil
}

// Clone returns a deep copy of the milestone.
func (m Milestone) Clone() Milestone {
	out := m
	if m.Percentage != nil {
		pct := *m.Percentage
		out.Percentage = &pct
	}
	return out
}
