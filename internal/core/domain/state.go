package domain

// Snapshot holds the three entity collections. It is the unit persisted to
// the local mirror and fetched from the remote store; it never carries the
// session identity.
type Snapshot struct {
	Customers    []Customer    `json:"customers"`
	Vehicles     []Vehicle     `json:"vehicles"`
	Transactions []Transaction `json:"transactions"`
}

// EmptySnapshot returns a snapshot with empty (non-nil) collections.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Customers:    []Customer{},
		Vehicles:     []Vehicle{},
		Transactions: []Transaction{},
	}
}

// Clone returns a deep copy. Callers receive copies of the live state so the
// reconciler stays the only writer.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Customers:    make([]Customer, len(s.Customers)),
		Vehicles:     make([]Vehicle, len(s.Vehicles)),
		Transactions: make([]Transaction, len(s.Transactions)),
	}
	copy(out.Customers, s.Customers)
	copy(out.Vehicles, s.Vehicles)
	copy(out.Transactions, s.Transactions)
	return out
}

// FindCustomer looks a customer up by id. The second return value is false
// when the customer is absent, which is a normal outcome for dangling
// vehicle/transaction references, not an error.
func (s Snapshot) FindCustomer(id string) (Customer, bool) {
	for _, c := range s.Customers {
		if c.ID == id {
			return c, true
		}
	}
	return Customer{}, false
}

// FindVehicle looks a vehicle up by id.
func (s Snapshot) FindVehicle(id string) (Vehicle, bool) {
	for _, v := range s.Vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return Vehicle{}, false
}

// AppState is the aggregate root: the entity snapshot plus the session
// identity. CurrentUser is session-only and survives reloads because it is
// never part of either the remote or the mirror payload.
type AppState struct {
	CurrentUser *User `json:"currentUser"`
	Snapshot
}
