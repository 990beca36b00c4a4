package devserver

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/backoffice/internal/masterdata/clients"
	"github.com/odyssey-erp/backoffice/internal/masterdata/suppliers"
	"github.com/odyssey-erp/backoffice/internal/masterdata/supplies"
	"github.com/odyssey-erp/backoffice/internal/platform/httpx"
	"github.com/odyssey-erp/backoffice/internal/procurement/purchases"
)

// Handler exposes a Store over HTTP.
type Handler struct {
	store  *Store
	logger *slog.Logger
}

// NewHandler builds the API handler.
func NewHandler(store *Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{store: store, logger: logger}
}

// MountRoutes registers /<resource> collections on r.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/"+clients.Resource, collection(h,
		h.store.ListClients, h.store.CreateClient, h.store.UpdateClient, h.store.DeleteClient))
	r.Route("/"+suppliers.Resource, collection(h,
		h.store.ListSuppliers, h.store.CreateSupplier, h.store.UpdateSupplier, h.store.DeleteSupplier))
	r.Route("/"+supplies.Resource, collection(h,
		h.store.ListSupplies, h.store.CreateSupply, h.store.UpdateSupply, h.store.DeleteSupply))
	r.Route("/"+purchases.Resource, collection(h,
		h.store.ListPurchases, h.store.CreatePurchase, h.store.UpdatePurchase, h.store.DeletePurchase))
}

func collection[In, Out any](
	h *Handler,
	list func() []Out,
	create func(In) (Out, error),
	update func(int64, In) (Out, error),
	remove func(int64) error,
) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			httpx.JSON(w, http.StatusOK, list())
		})
		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var in In
			if err := httpx.DecodeJSON(r, &in); err != nil {
				h.fail(w, r, fmt.Errorf("%w: %v", httpx.ErrValidation, err))
				return
			}
			out, err := create(in)
			if err != nil {
				h.fail(w, r, err)
				return
			}
			httpx.JSON(w, http.StatusCreated, out)
		})
		r.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {
			id, err := pathID(r)
			if err != nil {
				h.fail(w, r, err)
				return
			}
			var in In
			if err := httpx.DecodeJSON(r, &in); err != nil {
				h.fail(w, r, fmt.Errorf("%w: %v", httpx.ErrValidation, err))
				return
			}
			out, err := update(id, in)
			if err != nil {
				h.fail(w, r, err)
				return
			}
			httpx.JSON(w, http.StatusOK, out)
		})
		r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
			id, err := pathID(r)
			if err != nil {
				h.fail(w, r, err)
				return
			}
			if err := remove(id); err != nil {
				h.fail(w, r, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", httpx.ErrValidation, chi.URLParam(r, "id"))
	}
	return id, nil
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Warn("api request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err))
	httpx.RespondError(w, err)
}
