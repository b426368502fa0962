package supabase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/autofixpro/workshop-system/internal/api/metrics"
	"github.com/autofixpro/workshop-system/internal/core/domain"
)

// FetchAll reads the three collections in parallel. All three reads must
// succeed; a partial success is reported as total failure so the caller
// never merges a half-fetched world.
func (c *Client) FetchAll(ctx context.Context) (*domain.Snapshot, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("%w: remote store disabled", domain.ErrRemoteUnavailable)
	}

	var (
		custRows []customerRow
		vehRows  []vehicleRow
		txRows   []transactionRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.getJSON(gctx, "/customers?select=*&order=created_at.desc", &custRows)
	})
	g.Go(func() error {
		return c.getJSON(gctx, "/vehicles?select=*", &vehRows)
	})
	g.Go(func() error {
		return c.getJSON(gctx, "/transactions?select=*&order=date.desc", &txRows)
	})
	if err := g.Wait(); err != nil {
		metrics.RemoteFetchesTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("%w: %w", domain.ErrRemoteUnavailable, err)
	}

	snap := domain.EmptySnapshot()
	for _, r := range custRows {
		snap.Customers = append(snap.Customers, r.toDomain())
	}
	for _, r := range vehRows {
		snap.Vehicles = append(snap.Vehicles, r.toDomain())
	}
	for _, r := range txRows {
		snap.Transactions = append(snap.Transactions, r.toDomain())
	}

	metrics.RemoteFetchesTotal.WithLabelValues("ok").Inc()
	return &snap, nil
}

// UpsertCustomer write-or-replaces the customer row, merging on duplicate id.
func (c *Client) UpsertCustomer(ctx context.Context, cust domain.Customer) error {
	if !c.Enabled() {
		return nil
	}
	_, err := c.do(ctx, http.MethodPost, "/customers", preferMerge, customerToRow(cust))
	return c.countWrite("customers", err)
}

// UpsertVehicle write-or-replaces the vehicle row, merging on duplicate id.
func (c *Client) UpsertVehicle(ctx context.Context, v domain.Vehicle) error {
	if !c.Enabled() {
		return nil
	}
	_, err := c.do(ctx, http.MethodPost, "/vehicles", preferMerge, vehicleToRow(v))
	return c.countWrite("vehicles", err)
}

// DeleteCustomer deletes by id; deleting a missing row is a success.
func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	if !c.Enabled() {
		return nil
	}
	_, err := c.do(ctx, http.MethodDelete, "/customers?id=eq."+url.QueryEscape(id), "", nil)
	return c.countWrite("customers", err)
}

// DeleteVehicle deletes by id; deleting a missing row is a success.
func (c *Client) DeleteVehicle(ctx context.Context, id string) error {
	if !c.Enabled() {
		return nil
	}
	_, err := c.do(ctx, http.MethodDelete, "/vehicles?id=eq."+url.QueryEscape(id), "", nil)
	return c.countWrite("vehicles", err)
}

// RecordTransaction inserts the transaction row, then reads the customer's
// current remote balance and patches the adjusted value back. Two sequential
// round-trips, not one atomic operation: when the patch fails after the
// insert succeeded, the remote balance lags the transaction history until
// the next successful write for that customer.
func (c *Client) RecordTransaction(ctx context.Context, t domain.Transaction) error {
	if !c.Enabled() {
		return nil
	}

	if _, err := c.do(ctx, http.MethodPost, "/transactions", preferRepresentation, transactionToRow(t)); err != nil {
		return c.countWrite("transactions", err)
	}

	custPath := "/customers?id=eq." + url.QueryEscape(t.CustomerID)
	var rows []balanceRow
	if err := c.getJSON(ctx, custPath+"&select=balance", &rows); err != nil {
		return c.countWrite("transactions", err)
	}
	if len(rows) == 0 {
		// Customer row missing remotely; the transaction stands on its own.
		c.log.Warn().Str("customer_id", t.CustomerID).Msg("remote balance row missing, patch skipped")
		return c.countWrite("transactions", nil)
	}

	newBalance := t.Type.Apply(float64(rows[0].Balance), t.Amount)
	_, err := c.do(ctx, http.MethodPatch, custPath, "", map[string]float64{"balance": newBalance})
	return c.countWrite("transactions", err)
}

// countWrite records the write outcome metric and passes the error through.
func (c *Client) countWrite(collection string, err error) error {
	outcome := "confirmed"
	if err != nil {
		outcome = domain.FailureReason(err)
	}
	metrics.RemoteWritesTotal.WithLabelValues(collection, outcome).Inc()
	return err
}
