package console

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/backoffice/internal/i18n"
	"github.com/odyssey-erp/backoffice/internal/listview"
	"github.com/odyssey-erp/backoffice/internal/masterdata/suppliers"
	"github.com/odyssey-erp/backoffice/internal/notify"
	"github.com/odyssey-erp/backoffice/internal/procurement/purchases"
	"github.com/odyssey-erp/backoffice/internal/validation"
)

type supplierStore struct {
	items []suppliers.Supplier
	next  int64
}

func (s *supplierStore) List(context.Context) ([]suppliers.Supplier, error) {
	return append([]suppliers.Supplier(nil), s.items...), nil
}

func (s *supplierStore) Create(_ context.Context, payload any) (suppliers.Supplier, error) {
	f := payload.(suppliers.Form)
	s.next++
	item := suppliers.Supplier{ID: s.next, Name: f.Name, Contact: f.Contact}
	s.items = append(s.items, item)
	return item, nil
}

func (s *supplierStore) Update(_ context.Context, id int64, payload any) (suppliers.Supplier, error) {
	f := payload.(suppliers.Form)
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Name, s.items[i].Contact = f.Name, f.Contact
			return s.items[i], nil
		}
	}
	return suppliers.Supplier{}, nil
}

func (s *supplierStore) Delete(_ context.Context, id int64) error {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return nil
}

type purchaseStore struct {
	items   []purchases.Purchase
	created []any
}

func (s *purchaseStore) List(context.Context) ([]purchases.Purchase, error) { return s.items, nil }
func (s *purchaseStore) Create(_ context.Context, payload any) (purchases.Purchase, error) {
	s.created = append(s.created, payload)
	return purchases.Purchase{}, nil
}
func (s *purchaseStore) Update(context.Context, int64, any) (purchases.Purchase, error) {
	return purchases.Purchase{}, nil
}
func (s *purchaseStore) Delete(context.Context, int64) error { return nil }

type harness struct {
	session   *Session
	out       *bytes.Buffer
	suppliers *supplierStore
	purchases *purchaseStore
}

func newHarness(script string) *harness {
	in := bufio.NewReader(strings.NewReader(script))
	out := &bytes.Buffer{}
	p := i18n.Printer("es")
	v := validation.New()
	n := notify.NewConsole(in, out)

	ss := &supplierStore{}
	ps := &purchaseStore{items: []purchases.Purchase{{
		ID:         1,
		SupplierID: 1,
		Date:       "2024-02-10",
		Status:     purchases.StatusPending,
		Supplier:   &purchases.SupplierRef{ID: 1, Name: "Molinos del Sur", Contact: "5551234"},
		Lines: []purchases.LineItem{
			{ID: 1, SupplyID: 2, Quantity: 3, UnitPrice: decimal.RequireFromString("1.50")},
		},
	}}}
	screens := []Screen{
		Suppliers(suppliers.NewPage(ss, n, p, v, nil), p),
		Purchases(purchases.NewPage(ps, n, p, v, nil), p),
	}
	return &harness{
		session:   NewSession(in, out, nil, screens...),
		out:       out,
		suppliers: ss,
		purchases: ps,
	}
}

func TestSupplierWorkflow(t *testing.T) {
	h := newHarness(strings.Join([]string{
		"new",
		"set nombre José 123",
		"set contacto 1234567",
		"save",
		"set nombre José Pérez",
		"save",
		"search pérez",
		"rm 1",
		"s",
		"quit",
	}, "\n") + "\n")

	require.NoError(t, h.session.Run(context.Background()))
	out := h.out.String()

	require.Contains(t, out, "== Proveedores ==")
	require.Contains(t, out, "! El nombre del proveedor solo puede contener letras y espacios")
	require.Contains(t, out, "✔ Proveedor creado exitosamente")
	require.Contains(t, out, "Buscar: pérez")
	require.Contains(t, out, "¿Estás seguro de que deseas eliminar al proveedor José Pérez? [s/N]: ")
	require.Contains(t, out, "✔ El proveedor ha sido eliminado.")
	require.Empty(t, h.suppliers.items)
}

func TestPurchaseLineItems(t *testing.T) {
	h := newHarness("")
	ctx := context.Background()
	s := h.session
	require.NoError(t, s.Use("compras"))

	for _, line := range []string{
		"list",
		"new",
		"set id_proveedor 1",
		"set fecha_compra 2024-03-01",
		"item add",
		"item add",
		"item set 0 id_insumo 9",
		"item set 1 id_insumo 2",
		"item set 1 cantidad 5x",
		"item set 1 precio_unitario 2.5.1",
		"item rm 0",
	} {
		_, err := s.Exec(ctx, line)
		require.NoError(t, err, line)
	}

	var buf bytes.Buffer
	s.Current().Render(&buf)
	require.Regexp(t, `#0 ID del insumo \(detalleCompras\[0\]\.id_insumo\):\s+2\n`, buf.String())
	require.Regexp(t, `#0 Precio unitario \(detalleCompras\[0\]\.precio_unitario\):\s+2\.51\n`, buf.String())
	require.NotContains(t, buf.String(), "detalleCompras[1]")

	_, err := s.Exec(ctx, "save")
	require.NoError(t, err)
	require.Len(t, h.purchases.created, 1)
	in := h.purchases.created[0].(purchases.Input)
	require.Equal(t, int64(5), in.Lines[0].Quantity)
}

func TestPurchaseDetails(t *testing.T) {
	h := newHarness("")
	ctx := context.Background()
	require.NoError(t, h.session.Use("compras"))
	_, err := h.session.Exec(ctx, "reload")
	require.NoError(t, err)
	_, err = h.session.Exec(ctx, "show 1")
	require.NoError(t, err)

	var buf bytes.Buffer
	h.session.Current().Render(&buf)
	out := buf.String()
	require.Contains(t, out, "Molinos del Sur")
	require.Contains(t, out, "Detalles de compra:")
	require.Contains(t, out, "Total: 4.50")
}

func TestCommandErrors(t *testing.T) {
	h := newHarness("")
	ctx := context.Background()
	s := h.session

	cases := []struct {
		line string
		want error
	}{
		{"frobnicate", ErrUsage},
		{"page x", ErrUsage},
		{"page 0", listview.ErrInvalidPage},
		{"edit 42", ErrNoRecord},
		{"set nombre x", listview.ErrDialogClosed},
		{"save", listview.ErrDialogClosed},
		{"item add", ErrNoLineItems},
		{"use ventas", ErrUsage},
		{"toasts", ErrNoHistory},
	}
	for _, tc := range cases {
		_, err := s.Exec(ctx, tc.line)
		require.ErrorIs(t, err, tc.want, tc.line)
	}

	quit, err := s.Exec(ctx, "quit")
	require.NoError(t, err)
	require.True(t, quit)
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	h := newHarness("help\n")
	require.NoError(t, h.session.Run(context.Background()))
	require.Contains(t, h.out.String(), "use <page>")
	require.Contains(t, h.out.String(), "proveedores, compras")
}

func TestToastsListsFeedHistory(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	feed := notify.NewFeed(client, nil, "", time.Minute, nil)

	h := newHarness("")
	s := h.session.WithHistory(feed)
	ctx := context.Background()

	_, err := s.Exec(ctx, "toasts")
	require.NoError(t, err)
	require.Contains(t, h.out.String(), "(no recent notifications)")

	at := time.Date(2024, 3, 1, 10, 15, 0, 0, time.UTC)
	require.NoError(t, feed.Push(ctx, notify.Toast{ID: "a", Kind: notify.KindSuccess, Message: "Insumo creado exitosamente", CreatedAt: at}))
	require.NoError(t, feed.Push(ctx, notify.Toast{ID: "b", Kind: notify.KindError, Message: "Error al cargar compras", CreatedAt: at.Add(time.Second)}))

	h.out.Reset()
	_, err = s.Exec(ctx, "toasts")
	require.NoError(t, err)
	require.Equal(t, "10:15:00 ✔ Insumo creado exitosamente\n10:15:01 ✖ Error al cargar compras\n", h.out.String())
}
