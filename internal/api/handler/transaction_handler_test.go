package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/autofixpro/workshop-system/internal/core/domain"
	"github.com/autofixpro/workshop-system/internal/core/ports"
)

func TestAddTransaction_ReturnsRecordAndNewBalance(t *testing.T) {
	sync := &stubSyncService{
		addTransactionFunc: func(_ context.Context, input ports.AddTransactionInput) (domain.Transaction, error) {
			return domain.Transaction{
				ID: "t1", CustomerID: input.CustomerID, Type: input.Type,
				Amount: input.Amount, Date: "2024-05-01",
			}, nil
		},
		lookupCustomerFunc: func(id string) (domain.Customer, bool) {
			return domain.Customer{ID: id, Balance: 150}, true
		},
	}
	h := NewTransactionHandler(sync)

	c, rec := newJSONContext(http.MethodPost, "/v1/transactions",
		`{"customerId":"c1","type":"TOPUP","amount":100,"description":"card"}`)
	if err := h.Add(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d", rec.Code)
	}
	var resp struct {
		Transaction domain.Transaction `json:"transaction"`
		Balance     float64            `json:"balance"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Transaction.ID != "t1" || resp.Transaction.Type != domain.TypeTopup {
		t.Errorf("transaction wrong: %+v", resp.Transaction)
	}
	if resp.Balance != 150 {
		t.Errorf("want post-movement balance 150, got %v", resp.Balance)
	}
}

func TestAddTransaction_ValidationFailures(t *testing.T) {
	h := NewTransactionHandler(&stubSyncService{
		addTransactionFunc: func(context.Context, ports.AddTransactionInput) (domain.Transaction, error) {
			t.Fatal("service must not be reached")
			return domain.Transaction{}, nil
		},
	})

	cases := []struct {
		name string
		body string
	}{
		{"missing customer", `{"type":"TOPUP","amount":5}`},
		{"unknown type", `{"customerId":"c1","type":"REFUND","amount":5}`},
		{"zero amount", `{"customerId":"c1","type":"SPEND","amount":0}`},
		{"negative amount", `{"customerId":"c1","type":"SPEND","amount":-5}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newJSONContext(http.MethodPost, "/v1/transactions", tc.body)
			err := h.Add(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Errorf("want 400, got %v", err)
			}
		})
	}
}

func TestAddTransaction_UnknownCustomerPassesThrough(t *testing.T) {
	h := NewTransactionHandler(&stubSyncService{
		addTransactionFunc: func(context.Context, ports.AddTransactionInput) (domain.Transaction, error) {
			return domain.Transaction{}, domain.ErrCustomerNotFound
		},
	})

	c, _ := newJSONContext(http.MethodPost, "/v1/transactions",
		`{"customerId":"ghost","type":"TOPUP","amount":5}`)
	if err := h.Add(c); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Errorf("domain errors must pass through for the error handler, got %v", err)
	}
}
