package shared

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestSettlementStatus_IsValid(t *testing.T) {
	tests := []struct {
		status  SettlementStatus
		isValid bool
	}{
		{SettlementStatusUnpaid, true},
		{SettlementStatusPartial, true},
		{SettlementStatusPaid, true},
		{SettlementStatus("overdue"), false},
		{SettlementStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
		})
	}
}

func TestDeriveSettlementStatus(t *testing.T) {
	tests := []struct {
		name   string
		target string
		paid   string
		want   SettlementStatus
	}{
		{"no payments", "1100.00", "0", SettlementStatusUnpaid},
		{"partial payment", "1100.00", "500.00", SettlementStatusPartial},
		{"exact payment", "1100.00", "1100.00", SettlementStatusPaid},
		{"overpayment", "1100.00", "1200.00", SettlementStatusPaid},
		{"one cent short", "1100.00", "1099.99", SettlementStatusPartial},
		{"zero target", "0", "0", SettlementStatusPaid},
		{"negative paid", "100.00", "-10.00", SettlementStatusUnpaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveSettlementStatus(d(tt.target), d(tt.paid)))
		})
	}
}

func TestSumPayments(t *testing.T) {
	total := SumPayments([]decimal.Decimal{d("500.00"), d("600.00")})
	assert.True(t, total.Equal(d("1100.00")))

	assert.True(t, SumPayments(nil).IsZero())
}

func TestDeriveOrderSettlementStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []SettlementStatus
		want     SettlementStatus
	}{
		{"no invoices", nil, SettlementStatusUnpaid},
		{"all paid", []SettlementStatus{SettlementStatusPaid, SettlementStatusPaid}, SettlementStatusPaid},
		{"one partial", []SettlementStatus{SettlementStatusPaid, SettlementStatusPartial}, SettlementStatusPartial},
		{"one paid among unpaid", []SettlementStatus{SettlementStatusPaid, SettlementStatusUnpaid}, SettlementStatusPartial},
		{"all unpaid", []SettlementStatus{SettlementStatusUnpaid, SettlementStatusUnpaid}, SettlementStatusUnpaid},
		{"single paid invoice", []SettlementStatus{SettlementStatusPaid}, SettlementStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveOrderSettlementStatus(tt.statuses))
		})
	}
}
