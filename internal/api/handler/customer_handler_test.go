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

func TestSaveCustomer_ForwardsFullRecord(t *testing.T) {
	var got ports.SaveCustomerInput
	sync := &stubSyncService{
		saveCustomerFunc: func(_ context.Context, input ports.SaveCustomerInput) (domain.Customer, error) {
			got = input
			return domain.Customer{ID: "c1", Name: input.Name, Phone: input.Phone, Balance: input.Balance}, nil
		},
	}
	h := NewCustomerHandler(sync)

	c, rec := newJSONContext(http.MethodPost, "/v1/customers",
		`{"name":"Sun Qian","phone":"555-0104","email":"sun@example.com","balance":25,"createdAt":"2024-05-01"}`)
	if err := h.Save(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}
	if got.Name != "Sun Qian" || got.Phone != "555-0104" || got.Balance != 25 || got.CreatedAt != "2024-05-01" {
		t.Errorf("input not forwarded: %+v", got)
	}

	var resp domain.Customer
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "c1" {
		t.Errorf("response must carry the saved record, got %+v", resp)
	}
}

func TestSaveCustomer_ValidationFailures(t *testing.T) {
	h := NewCustomerHandler(&stubSyncService{
		saveCustomerFunc: func(context.Context, ports.SaveCustomerInput) (domain.Customer, error) {
			t.Fatal("service must not be reached")
			return domain.Customer{}, nil
		},
	})

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"phone":"555"}`},
		{"missing phone", `{"name":"x"}`},
		{"bad email", `{"name":"x","phone":"555","email":"not-an-email"}`},
		{"bad date", `{"name":"x","phone":"555","createdAt":"05/01/2024"}`},
		{"not json", `{{{`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newJSONContext(http.MethodPost, "/v1/customers", tc.body)
			err := h.Save(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Errorf("want 400, got %v", err)
			}
		})
	}
}

func TestGetCustomer_FoundAndMissing(t *testing.T) {
	sync := &stubSyncService{
		lookupCustomerFunc: func(id string) (domain.Customer, bool) {
			if id == "c1" {
				return domain.Customer{ID: "c1", Name: "Zhou Min"}, true
			}
			return domain.Customer{}, false
		},
	}
	h := NewCustomerHandler(sync)

	c, rec := newJSONContext(http.MethodGet, "/", "")
	c.SetPath("/v1/customers/:id")
	c.SetParamNames("id")
	c.SetParamValues("c1")
	if err := h.Get(c); err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("want 200, got %d", rec.Code)
	}

	c, rec = newJSONContext(http.MethodGet, "/", "")
	c.SetPath("/v1/customers/:id")
	c.SetParamNames("id")
	c.SetParamValues("ghost")
	if err := h.Get(c); err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("dangling reference must read as 404, got %d", rec.Code)
	}
}

func TestDeleteCustomer_Returns204(t *testing.T) {
	var deleted string
	sync := &stubSyncService{
		deleteCustomerFunc: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	h := NewCustomerHandler(sync)

	c, rec := newJSONContext(http.MethodDelete, "/", "")
	c.SetPath("/v1/customers/:id")
	c.SetParamNames("id")
	c.SetParamValues("c1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("want 204, got %d", rec.Code)
	}
	if deleted != "c1" {
		t.Errorf("want delete of c1, got %q", deleted)
	}
}
