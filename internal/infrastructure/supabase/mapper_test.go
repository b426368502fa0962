package supabase

import (
	"encoding/json"
	"testing"

	"github.com/autofixpro/workshop-system/internal/core/domain"
)

func TestLooseFloat_DecodesNumbersAndStrings(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `12.5`, 12.5},
		{"integer", `42`, 42},
		{"quoted string", `"99.9"`, 99.9},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"negative", `-3.25`, -3.25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f looseFloat
			if err := json.Unmarshal([]byte(tc.in), &f); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if float64(f) != tc.want {
				t.Errorf("want %v, got %v", tc.want, float64(f))
			}
		})
	}
}

func TestLooseFloat_RejectsGarbage(t *testing.T) {
	var f looseFloat
	if err := json.Unmarshal([]byte(`"not a number"`), &f); err == nil {
		t.Error("expected an error for a non-numeric string")
	}
}

func TestCustomerMapping_RoundTripsExactly(t *testing.T) {
	c := domain.Customer{
		ID:        "c1",
		Name:      "Wang Fang",
		Phone:     "555-0102",
		Email:     "wang@example.com",
		Balance:   123.45,
		CreatedAt: "2024-05-01",
	}
	if got := customerToRow(c).toDomain(); got != c {
		t.Errorf("round trip changed the customer:\n got %+v\nwant %+v", got, c)
	}
}

func TestVehicleMapping_RoundTripsExactly(t *testing.T) {
	v := domain.Vehicle{
		ID:          "v1",
		CustomerID:  "c1",
		PlateNumber: "京A12345",
		Brand:       "Toyota",
		Model:       "Corolla",
		Year:        "2021",
		VIN:         "JT2BG22K0W0123456",
		LastService: "2024-04-15",
	}
	if got := vehicleToRow(v).toDomain(); got != v {
		t.Errorf("round trip changed the vehicle:\n got %+v\nwant %+v", got, v)
	}
}

func TestTransactionMapping_RoundTripsExactly(t *testing.T) {
	tx := domain.Transaction{
		ID:          "t1",
		CustomerID:  "c1",
		Type:        domain.TypeSpend,
		Amount:      30,
		Description: "oil change",
		Date:        "2024-05-02",
	}
	if got := transactionToRow(tx).toDomain(); got != tx {
		t.Errorf("round trip changed the transaction:\n got %+v\nwant %+v", got, tx)
	}
}

func TestRowShapes_UseRemoteFieldNames(t *testing.T) {
	raw, err := json.Marshal(vehicleToRow(domain.Vehicle{ID: "v1", CustomerID: "c1", PlateNumber: "p"}))
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"customer_id", "plate_number", "last_service"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("wire shape missing %q: %s", key, raw)
		}
	}
	if _, ok := decoded["customerId"]; ok {
		t.Error("wire shape must not carry domain field names")
	}
}
