package clients

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/backoffice/internal/i18n"
	"github.com/odyssey-erp/backoffice/internal/listview"
	"github.com/odyssey-erp/backoffice/internal/validation"
)

type memStore struct {
	items   []Client
	nextID  int64
	created []Form
	updated map[int64]Form
}

func (m *memStore) List(context.Context) ([]Client, error) {
	return append([]Client(nil), m.items...), nil
}

func (m *memStore) Create(_ context.Context, payload any) (Client, error) {
	f := payload.(Form)
	m.nextID++
	c := Client{ID: m.nextID, Name: f.Name, Contact: f.Contact}
	m.items = append(m.items, c)
	m.created = append(m.created, f)
	return c, nil
}

func (m *memStore) Update(_ context.Context, id int64, payload any) (Client, error) {
	f := payload.(Form)
	if m.updated == nil {
		m.updated = map[int64]Form{}
	}
	m.updated[id] = f
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Name, m.items[i].Contact = f.Name, f.Contact
			return m.items[i], nil
		}
	}
	return Client{}, nil
}

func (m *memStore) Delete(_ context.Context, id int64) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	return nil
}

type toasts struct{ ok, bad []string }

func (t *toasts) Success(_ context.Context, msg string) { t.ok = append(t.ok, msg) }
func (t *toasts) Error(_ context.Context, msg string) { t.bad = append(t.bad, msg) }
func (t *toasts) Confirm(context.Context, string, string) (bool, error) {
	return true, nil
}

func newPage(store *memStore, n *toasts) *Page {
	return NewPage(store, n, i18n.Printer("es"), validation.New(), nil)
}

func TestNameRules(t *testing.T) {
	schema := NewSchema(i18n.Printer("es"), validation.New())

	errs := schema.Validate(Form{Name: "Al", Contact: "1234567"})
	require.Equal(t, "El nombre debe contener al menos 3 letras.", errs["nombre"])

	errs = schema.Validate(Form{Name: "Ana María", Contact: "12a4567"})
	require.NotContains(t, errs, "nombre")
	require.Equal(t, "El número de teléfono debe contener al menos 7 dígitos.", errs["contacto"])

	require.Empty(t, schema.Validate(Form{Name: "Ñandú", Contact: "5551234"}))
}

func TestCreateSearchEditDelete(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	n := &toasts{}
	page := newPage(store, n)
	require.NoError(t, page.Load(ctx))

	page.OpenCreate()
	require.NoError(t, page.SetField(FieldName, "Lucía Gómez"))
	require.NoError(t, page.SetField(FieldContact, "5551234"))
	require.NoError(t, page.Submit(ctx))
	require.Equal(t, []Form{{Name: "Lucía Gómez", Contact: "5551234"}}, store.created)

	_, open := page.Draft()
	require.False(t, open)
	require.Equal(t, []string{"¡Creado! El cliente ha sido creado correctamente."}, n.ok)

	page.SetSearch("LUCÍA")
	require.Len(t, page.Filtered(), 1)

	client, ok := page.Find(1)
	require.True(t, ok)
	page.OpenEdit(client)
	require.NoError(t, page.SetField(FieldContact, "5559999"))
	require.NoError(t, page.Submit(ctx))
	require.Equal(t, Form{ID: 1, Name: "Lucía Gómez", Contact: "5559999"}, store.updated[1])
	require.Equal(t, "5559999", page.All()[0].Contact)

	removed, err := page.Remove(ctx, page.All()[0])
	require.NoError(t, err)
	require.True(t, removed)
	require.Empty(t, page.All())
	require.Empty(t, n.bad)
}

func TestInvalidDraftStaysOpen(t *testing.T) {
	store := &memStore{}
	page := newPage(store, &toasts{})
	page.OpenCreate()
	require.NoError(t, page.SetField(FieldName, "José 123"))

	err := page.Submit(context.Background())
	var verr *listview.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"contacto", "nombre"}, verr.Fields.Fields())
	require.Empty(t, store.created)

	_, open := page.Draft()
	require.True(t, open)
}
