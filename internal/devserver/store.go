// Package devserver is an in-memory implementation of the backoffice REST
// API. It backs cmd/devapi and the end-to-end tests.
package devserver

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/odyssey-erp/backoffice/internal/masterdata/clients"
	"github.com/odyssey-erp/backoffice/internal/masterdata/suppliers"
	"github.com/odyssey-erp/backoffice/internal/masterdata/supplies"
	"github.com/odyssey-erp/backoffice/internal/platform/httpx"
	"github.com/odyssey-erp/backoffice/internal/procurement/purchases"
)

// Store keeps every collection in memory. Purchases reference suppliers and
// supplies; referenced records cannot be deleted.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	clients   map[int64]clients.Client
	suppliers map[int64]suppliers.Supplier
	supplies  map[int64]supplies.Supply
	purchases map[int64]purchases.Purchase

	nextID map[string]int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		now:       time.Now,
		clients:   make(map[int64]clients.Client),
		suppliers: make(map[int64]suppliers.Supplier),
		supplies:  make(map[int64]supplies.Supply),
		purchases: make(map[int64]purchases.Purchase),
		nextID:    make(map[string]int64),
	}
}

func (s *Store) next(collection string) int64 {
	s.nextID[collection]++
	return s.nextID[collection]
}

func (s *Store) stamp() time.Time { return s.now().UTC().Truncate(time.Millisecond) }

func requireName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: nombre is required", httpx.ErrValidation)
	}
	return nil
}

func sortedValues[T any](m map[int64]T, id func(T) int64) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return id(out[i]) < id(out[j]) })
	return out
}

// Clients

func (s *Store) ListClients() []clients.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.clients, func(c clients.Client) int64 { return c.ID })
}

func (s *Store) CreateClient(in clients.Form) (clients.Client, error) {
	if err := requireName(in.Name); err != nil {
		return clients.Client{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.stamp()
	c := clients.Client{ID: s.next("clientes"), Name: in.Name, Contact: in.Contact, CreatedAt: now, UpdatedAt: now}
	s.clients[c.ID] = c
	return c, nil
}

func (s *Store) UpdateClient(id int64, in clients.Form) (clients.Client, error) {
	if err := requireName(in.Name); err != nil {
		return clients.Client{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.clients[id]
	if !ok {
		return clients.Client{}, fmt.Errorf("%w: cliente %d", httpx.ErrNotFound, id)
	}
	c.Name, c.Contact, c.UpdatedAt = in.Name, in.Contact, s.stamp()
	s.clients[id] = c
	return c, nil
}

func (s *Store) DeleteClient(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[id]; !ok {
		return fmt.Errorf("%w: cliente %d", httpx.ErrNotFound, id)
	}
	delete(s.clients, id)
	return nil
}

// Suppliers

func (s *Store) ListSuppliers() []suppliers.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.suppliers, func(v suppliers.Supplier) int64 { return v.ID })
}

func (s *Store) CreateSupplier(in suppliers.Form) (suppliers.Supplier, error) {
	if err := requireName(in.Name); err != nil {
		return suppliers.Supplier{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.stamp()
	v := suppliers.Supplier{ID: s.next("proveedores"), Name: in.Name, Contact: in.Contact, CreatedAt: now, UpdatedAt: now}
	s.suppliers[v.ID] = v
	return v, nil
}

func (s *Store) UpdateSupplier(id int64, in suppliers.Form) (suppliers.Supplier, error) {
	if err := requireName(in.Name); err != nil {
		return suppliers.Supplier{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.suppliers[id]
	if !ok {
		return suppliers.Supplier{}, fmt.Errorf("%w: proveedor %d", httpx.ErrNotFound, id)
	}
	v.Name, v.Contact, v.UpdatedAt = in.Name, in.Contact, s.stamp()
	s.suppliers[id] = v
	return v, nil
}

// DeleteSupplier fails with ErrInUse while a purchase references the supplier.
func (s *Store) DeleteSupplier(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.suppliers[id]; !ok {
		return fmt.Errorf("%w: proveedor %d", httpx.ErrNotFound, id)
	}
	for _, p := range s.purchases {
		if p.SupplierID == id {
			return fmt.Errorf("%w: proveedor %d is used by compra %d", httpx.ErrInUse, id, p.ID)
		}
	}
	delete(s.suppliers, id)
	return nil
}

// Supplies

func (s *Store) ListSupplies() []supplies.Supply {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.supplies, func(v supplies.Supply) int64 { return v.ID })
}

func (s *Store) CreateSupply(in supplies.Input) (supplies.Supply, error) {
	if err := requireName(in.Name); err != nil {
		return supplies.Supply{}, err
	}
	if in.Stock < 0 {
		return supplies.Supply{}, fmt.Errorf("%w: stock_actual must not be negative", httpx.ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.stamp()
	v := supplies.Supply{ID: s.next("insumos"), Name: in.Name, Stock: in.Stock, CreatedAt: now, UpdatedAt: now}
	s.supplies[v.ID] = v
	return v, nil
}

func (s *Store) UpdateSupply(id int64, in supplies.Input) (supplies.Supply, error) {
	if err := requireName(in.Name); err != nil {
		return supplies.Supply{}, err
	}
	if in.Stock < 0 {
		return supplies.Supply{}, fmt.Errorf("%w: stock_actual must not be negative", httpx.ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.supplies[id]
	if !ok {
		return supplies.Supply{}, fmt.Errorf("%w: insumo %d", httpx.ErrNotFound, id)
	}
	v.Name, v.Stock, v.UpdatedAt = in.Name, in.Stock, s.stamp()
	s.supplies[id] = v
	return v, nil
}

// DeleteSupply fails with ErrInUse while a purchase line references the supply.
func (s *Store) DeleteSupply(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.supplies[id]; !ok {
		return fmt.Errorf("%w: insumo %d", httpx.ErrNotFound, id)
	}
	for _, p := range s.purchases {
		for _, l := range p.Lines {
			if l.SupplyID == id {
				return fmt.Errorf("%w: insumo %d is used by compra %d", httpx.ErrInUse, id, p.ID)
			}
		}
	}
	delete(s.supplies, id)
	return nil
}

// Purchases

// ListPurchases returns purchases with the current supplier record embedded.
func (s *Store) ListPurchases() []purchases.Purchase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := sortedValues(s.purchases, func(p purchases.Purchase) int64 { return p.ID })
	for i := range out {
		out[i] = s.denormalize(out[i])
	}
	return out
}

// denormalize must be called with mu held.
func (s *Store) denormalize(p purchases.Purchase) purchases.Purchase {
	if sup, ok := s.suppliers[p.SupplierID]; ok {
		p.Supplier = &purchases.SupplierRef{
			ID:        sup.ID,
			Name:      sup.Name,
			Contact:   sup.Contact,
			CreatedAt: sup.CreatedAt,
			UpdatedAt: sup.UpdatedAt,
		}
	}
	p.Lines = append([]purchases.LineItem{}, p.Lines...)
	return p
}

// checkPurchase must be called with mu held.
func (s *Store) checkPurchase(in purchases.Input) ([]purchases.LineItem, error) {
	if _, ok := s.suppliers[in.SupplierID]; !ok {
		return nil, fmt.Errorf("%w: proveedor %d does not exist", httpx.ErrValidation, in.SupplierID)
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, fmt.Errorf("%w: fecha_compra %q is not a date", httpx.ErrValidation, in.Date)
	}
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: detalleCompras is empty", httpx.ErrValidation)
	}
	lines := make([]purchases.LineItem, 0, len(in.Lines))
	for i, l := range in.Lines {
		if _, ok := s.supplies[l.SupplyID]; !ok {
			return nil, fmt.Errorf("%w: detalleCompras[%d]: insumo %d does not exist", httpx.ErrValidation, i, l.SupplyID)
		}
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("%w: detalleCompras[%d]: cantidad must be positive", httpx.ErrValidation, i)
		}
		price, err := decimal.NewFromString(l.UnitPrice.String())
		if err != nil || price.IsNegative() {
			return nil, fmt.Errorf("%w: detalleCompras[%d]: precio_unitario %q", httpx.ErrValidation, i, l.UnitPrice)
		}
		lines = append(lines, purchases.LineItem{
			ID:        s.next("detalle_compras"),
			SupplyID:  l.SupplyID,
			Quantity:  l.Quantity,
			UnitPrice: price,
		})
	}
	return lines, nil
}

func (s *Store) CreatePurchase(in purchases.Input) (purchases.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines, err := s.checkPurchase(in)
	if err != nil {
		return purchases.Purchase{}, err
	}
	status := purchases.Status(in.Status)
	if status == "" {
		status = purchases.StatusPending
	}
	now := s.stamp()
	p := purchases.Purchase{
		ID:         s.next("compras"),
		SupplierID: in.SupplierID,
		Date:       in.Date,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
		Lines:      lines,
	}
	s.purchases[p.ID] = p
	return s.denormalize(p), nil
}

// UpdatePurchase replaces the header and all lines of a purchase.
func (s *Store) UpdatePurchase(id int64, in purchases.Input) (purchases.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.purchases[id]
	if !ok {
		return purchases.Purchase{}, fmt.Errorf("%w: compra %d", httpx.ErrNotFound, id)
	}
	lines, err := s.checkPurchase(in)
	if err != nil {
		return purchases.Purchase{}, err
	}
	p.SupplierID, p.Date, p.Lines, p.UpdatedAt = in.SupplierID, in.Date, lines, s.stamp()
	if in.Status != "" {
		p.Status = purchases.Status(in.Status)
	}
	s.purchases[id] = p
	return s.denormalize(p), nil
}

func (s *Store) DeletePurchase(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.purchases[id]; !ok {
		return fmt.Errorf("%w: compra %d", httpx.ErrNotFound, id)
	}
	delete(s.purchases, id)
	return nil
}

// Counts reports the size of each collection keyed by resource name.
func (s *Store) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		clients.Resource:   len(s.clients),
		suppliers.Resource: len(s.suppliers),
		supplies.Resource:  len(s.supplies),
		purchases.Resource: len(s.purchases),
	}
}
