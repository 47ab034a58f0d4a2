package repository

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/naturalsuds/soapshop/internal/model"
)

const ordersFile = "orders.json"

// OrderRepository persists orders as a single JSON array file. Every write
// is a whole-file read-modify-write; concurrent writers across sessions race
// with last-writer-wins semantics.
type OrderRepository interface {
	// Load returns every stored order. It never fails: missing, corrupt or
	// non-array files yield an empty slice.
	Load() []model.Order
	Append(order model.Order) error
	// UpdateStatus overwrites the status of the first order with the given
	// id. Unknown ids are a silent no-op.
	UpdateStatus(id, status string) error
	// Delete removes every order with the given id.
	Delete(id string) error
	// List returns the stored orders, newest first when sortByDateDesc is
	// set. Orders without an order_date sort as the empty string (last).
	List(sortByDateDesc bool) []model.Order
}

type fileOrderRepo struct {
	path       string
	legacyPath string
	log        *slog.Logger
}

func NewOrderRepository(dataDir string, log *slog.Logger) OrderRepository {
	return &fileOrderRepo{
		path:       filepath.Join(dataDir, ordersFile),
		legacyPath: ordersFile, // working directory, where older deployments wrote
		log:        log,
	}
}

func (r *fileOrderRepo) Load() []model.Order {
	orders := readJSONArray[model.Order](r.log, r.path)
	if len(orders) > 0 {
		return orders
	}
	if r.legacyPath == r.path {
		return orders
	}
	legacy := readJSONArray[model.Order](r.log, r.legacyPath)
	if len(legacy) == 0 {
		return orders
	}
	// Adopt the legacy data and migrate it into the primary location.
	// Migration is best effort: a failed copy must not fail the read.
	if err := writeJSONArray(r.path, legacy); err != nil {
		r.log.Warn("migrate legacy orders file", "from", r.legacyPath, "to", r.path, "error", err)
	} else {
		r.log.Info("adopted legacy orders file", "from", r.legacyPath, "count", len(legacy))
	}
	return legacy
}

func (r *fileOrderRepo) Append(order model.Order) error {
	orders := append(r.Load(), order)
	if err := writeJSONArray(r.path, orders); err != nil {
		return fmt.Errorf("append order: %w", err)
	}
	return nil
}

func (r *fileOrderRepo) UpdateStatus(id, status string) error {
	orders := r.Load()
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			break
		}
	}
	if err := writeJSONArray(r.path, orders); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

func (r *fileOrderRepo) Delete(id string) error {
	orders := r.Load()
	kept := orders[:0]
	for _, o := range orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	if err := writeJSONArray(r.path, kept); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (r *fileOrderRepo) List(sortByDateDesc bool) []model.Order {
	orders := r.Load()
	if sortByDateDesc {
		sort.SliceStable(orders, func(i, j int) bool {
			return orders[i].OrderDate > orders[j].OrderDate
		})
	}
	return orders
}
