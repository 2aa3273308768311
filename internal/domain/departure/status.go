package departure

// Status is the validation state of a departure group. The lifecycle is
// one-way: pending_validation -> validated. There is no transition back.
type Status string

const (
	StatusPendingValidation Status = "pending_validation"
	StatusValidated         Status = "validated"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	return s == StatusPendingValidation || s == StatusValidated
}

// String returns the status as a string.
func (s Status) String() string {
	return string(s)
}

// PaymentStatus is the settlement state of a payment milestone.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// IsValid reports whether s is a known payment status.
func (s PaymentStatus) IsValid() bool {
	return s == PaymentPending || s == PaymentPaid
}

// String returns the payment status as a string.
func (s PaymentStatus) String() string {
	return string(s)
}
