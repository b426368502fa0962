package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/autofixpro/workshop-system/internal/core/domain"
	"github.com/autofixpro/workshop-system/internal/core/ports"
)

// stubSyncService implements ports.SyncService with overridable behavior per
// test. Unset functions return zero values.
type stubSyncService struct {
	loadFunc           func(ctx context.Context) (domain.AppState, error)
	stateFunc          func() domain.AppState
	saveCustomerFunc   func(ctx context.Context, input ports.SaveCustomerInput) (domain.Customer, error)
	deleteCustomerFunc func(ctx context.Context, id string) error
	saveVehicleFunc    func(ctx context.Context, input ports.SaveVehicleInput) (domain.Vehicle, error)
	deleteVehicleFunc  func(ctx context.Context, id string) error
	addTransactionFunc func(ctx context.Context, input ports.AddTransactionInput) (domain.Transaction, error)
	resetFunc          func(ctx context.Context) error
	exportFunc         func() ([]byte, error)
	lookupCustomerFunc func(id string) (domain.Customer, bool)
	statsFunc          func() ports.StatsResult

	currentUser *domain.User
}

func (s *stubSyncService) Load(ctx context.Context) (domain.AppState, error) {
	if s.loadFunc != nil {
		return s.loadFunc(ctx)
	}
	return domain.AppState{Snapshot: domain.EmptySnapshot()}, nil
}

func (s *stubSyncService) State() domain.AppState {
	if s.stateFunc != nil {
		return s.stateFunc()
	}
	return domain.AppState{Snapshot: domain.EmptySnapshot()}
}

func (s *stubSyncService) SaveCustomer(ctx context.Context, input ports.SaveCustomerInput) (domain.Customer, error) {
	if s.saveCustomerFunc != nil {
		return s.saveCustomerFunc(ctx, input)
	}
	return domain.Customer{}, nil
}

func (s *stubSyncService) DeleteCustomer(ctx context.Context, id string) error {
	if s.deleteCustomerFunc != nil {
		return s.deleteCustomerFunc(ctx, id)
	}
	return nil
}

func (s *stubSyncService) SaveVehicle(ctx context.Context, input ports.SaveVehicleInput) (domain.Vehicle, error) {
	if s.saveVehicleFunc != nil {
		return s.saveVehicleFunc(ctx, input)
	}
	return domain.Vehicle{}, nil
}

func (s *stubSyncService) DeleteVehicle(ctx context.Context, id string) error {
	if s.deleteVehicleFunc != nil {
		return s.deleteVehicleFunc(ctx, id)
	}
	return nil
}

func (s *stubSyncService) AddTransaction(ctx context.Context, input ports.AddTransactionInput) (domain.Transaction, error) {
	if s.addTransactionFunc != nil {
		return s.addTransactionFunc(ctx, input)
	}
	return domain.Transaction{}, nil
}

func (s *stubSyncService) Reset(ctx context.Context) error {
	if s.resetFunc != nil {
		return s.resetFunc(ctx)
	}
	return nil
}

func (s *stubSyncService) Export() ([]byte, error) {
	if s.exportFunc != nil {
		return s.exportFunc()
	}
	return []byte(`{}`), nil
}

func (s *stubSyncService) LookupCustomer(id string) (domain.Customer, bool) {
	if s.lookupCustomerFunc != nil {
		return s.lookupCustomerFunc(id)
	}
	return domain.Customer{}, false
}

func (s *stubSyncService) Stats() ports.StatsResult {
	if s.statsFunc != nil {
		return s.statsFunc()
	}
	return ports.StatsResult{}
}

func (s *stubSyncService) SetCurrentUser(u *domain.User) {
	s.currentUser = u
}

// stubAuthService implements ports.AuthService.
type stubAuthService struct {
	loginFunc func(ctx context.Context, username, password string) (*ports.LoginResult, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	return s.loginFunc(ctx, username, password)
}

// newJSONContext builds an echo context with a JSON body and the real
// request validator installed, plus the recorder to inspect afterwards.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
