package shared

import "github.com/shopspring/decimal"

// SettlementStatus is the tri-state payment status shared by sales invoices,
// supplier invoices and project invoices, and by the orders that own them.
type SettlementStatus string

const (
	SettlementStatusUnpaid  SettlementStatus = "unpaid"
	SettlementStatusPartial SettlementStatus = "partial"
	SettlementStatusPaid    SettlementStatus = "paid"
)

// IsValid checks if the status is a valid SettlementStatus
func (s SettlementStatus) IsValid() bool {
	switch s {
	case SettlementStatusUnpaid, SettlementStatusPartial, SettlementStatusPaid:
		return true
	}
	return false
}

// String returns the string representation of SettlementStatus
func (s SettlementStatus) String() string {
	return string(s)
}

// DeriveSettlementStatus derives the settlement status of a document from the
// amount due and the sum already paid against it:
//
//	paid    when totalPaid >= target
//	partial when 0 < totalPaid < target
//	unpaid  otherwise
func DeriveSettlementStatus(target, totalPaid decimal.Decimal) SettlementStatus {
	if totalPaid.GreaterThanOrEqual(target) {
		return SettlementStatusPaid
	}
	if totalPaid.GreaterThan(decimal.Zero) {
		return SettlementStatusPartial
	}
	return SettlementStatusUnpaid
}

// SumPayments adds up a list of payment amounts
func SumPayments(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// DeriveOrderSettlementStatus rolls child invoice statuses up to the owning
// order: paid iff every invoice is paid (and there is at least one), partial
// if any invoice is paid or partial, unpaid otherwise. An order with no
// invoices is always unpaid.
func DeriveOrderSettlementStatus(invoiceStatuses []SettlementStatus) SettlementStatus {
	if len(invoiceStatuses) == 0 {
		return SettlementStatusUnpaid
	}
	allPaid := true
	anyProgress := false
	for _, s := range invoiceStatuses {
		if s != SettlementStatusPaid {
			allPaid = false
		}
		if s == SettlementStatusPaid || s == SettlementStatusPartial {
			anyProgress = true
		}
	}
	if allPaid {
		return SettlementStatusPaid
	}
	if anyProgress {
		return SettlementStatusPartial
	}
	return SettlementStatusUnpaid
}
