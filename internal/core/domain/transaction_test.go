package domain

import "testing"

func TestTransactionType_Valid(t *testing.T) {
	if !TypeTopup.Valid() || !TypeSpend.Valid() {
		t.Error("known types must validate")
	}
	for _, bad := range []TransactionType{"", "topup", "REFUND"} {
		if bad.Valid() {
			t.Errorf("%q must not validate", bad)
		}
	}
}

func TestTransactionType_Apply(t *testing.T) {
	if got := TypeTopup.Apply(50, 100); got != 150 {
		t.Errorf("TOPUP 100 on 50: want 150, got %v", got)
	}
	if got := TypeSpend.Apply(150, 30); got != 120 {
		t.Errorf("SPEND 30 on 150: want 120, got %v", got)
	}
	// Overdrafts are allowed; the balance simply goes negative.
	if got := TypeSpend.Apply(10, 25); got != -15 {
		t.Errorf("SPEND 25 on 10: want -15, got %v", got)
	}
}
