package supabase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/autofixpro/workshop-system/internal/core/domain"
)

// looseFloat decodes a numeric that the remote store may deliver either as a
// JSON number or as a quoted string. Empty and null decode to zero.
type looseFloat float64

func (f *looseFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse numeric %q: %w", s, err)
	}
	*f = looseFloat(v)
	return nil
}

// Row shapes mirror the remote tables. Field names differ from the domain
// shapes by a fixed bidirectional mapping (customer_id ↔ CustomerID etc.)
// which must round-trip exactly in both directions.

type customerRow struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	Balance   looseFloat `json:"balance"`
	CreatedAt string     `json:"created_at"`
}

func customerToRow(c domain.Customer) customerRow {
	return customerRow{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Balance:   looseFloat(c.Balance),
		CreatedAt: c.CreatedAt,
	}
}

func (r customerRow) toDomain() domain.Customer {
	return domain.Customer{
		ID:        r.ID,
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Balance:   float64(r.Balance),
		CreatedAt: r.CreatedAt,
	}
}

type vehicleRow struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	PlateNumber string `json:"plate_number"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Year        string `json:"year"`
	VIN         string `json:"vin,omitempty"`
	LastService string `json:"last_service"`
}

func vehicleToRow(v domain.Vehicle) vehicleRow {
	return vehicleRow{
		ID:          v.ID,
		CustomerID:  v.CustomerID,
		PlateNumber: v.PlateNumber,
		Brand:       v.Brand,
		Model:       v.Model,
		Year:        v.Year,
		VIN:         v.VIN,
		LastService: v.LastService,
	}
}

func (r vehicleRow) toDomain() domain.Vehicle {
	return domain.Vehicle{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		PlateNumber: r.PlateNumber,
		Brand:       r.Brand,
		Model:       r.Model,
		Year:        r.Year,
		VIN:         r.VIN,
		LastService: r.LastService,
	}
}

type transactionRow struct {
	ID          string     `json:"id"`
	CustomerID  string     `json:"customer_id"`
	Type        string     `json:"type"`
	Amount      looseFloat `json:"amount"`
	Description string     `json:"description"`
	Date        string     `json:"date"`
}

func transactionToRow(t domain.Transaction) transactionRow {
	return transactionRow{
		ID:          t.ID,
		CustomerID:  t.CustomerID,
		Type:        string(t.Type),
		Amount:      looseFloat(t.Amount),
		Description: t.Description,
		Date:        t.Date,
	}
}

func (r transactionRow) toDomain() domain.Transaction {
	return domain.Transaction{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		Type:        domain.TransactionType(r.Type),
		Amount:      float64(r.Amount),
		Description: r.Description,
		Date:        r.Date,
	}
}

// balanceRow is the projection used by the read-modify-write balance update.
type balanceRow struct {
	Balance looseFloat `json:"balance"`
}
