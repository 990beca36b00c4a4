package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type contactForm struct {
	Name    string `json:"nombre" validate:"nonblank,personname"`
	Contact string `json:"contacto" validate:"nonblank,digits,min=7"`
}

type line struct {
	Qty   string `json:"cantidad" validate:"nonblank,digits,positive"`
	Price string `json:"precio_unitario" validate:"nonblank,decimal"`
}

type orderForm struct {
	Lines []line `json:"detalleCompras" validate:"min=1,dive"`
}

func TestPersonNameRule(t *testing.T) {
	v := New()

	require.Empty(t, v.Check(contactForm{Name: "José Pérez", Contact: "1234567"}))
	require.Empty(t, v.Check(contactForm{Name: "Ñandú Güemes", Contact: "1234567"}))

	got := v.Check(contactForm{Name: "José 123", Contact: "1234567"})
	require.Equal(t, []Violation{{Path: "nombre", Field: "nombre", Tag: "personname"}}, got)

	got = v.Check(contactForm{Name: "   ", Contact: "1234567"})
	require.Equal(t, "nonblank", got[0].Tag)
}

func TestContactRule(t *testing.T) {
	v := New()

	got := v.Check(contactForm{Name: "Ana", Contact: "12345"})
	require.Len(t, got, 1)
	require.Equal(t, "contacto", got[0].Path)
	require.Equal(t, "min", got[0].Tag)
	require.Equal(t, "7", got[0].Param)

	got = v.Check(contactForm{Name: "Ana", Contact: "555-1234"})
	require.Equal(t, "digits", got[0].Tag)

	require.Empty(t, v.Check(contactForm{Name: "Ana", Contact: "1234567"}))
}

func TestAllFieldsReported(t *testing.T) {
	got := New().Check(contactForm{})
	require.Len(t, got, 2)
	require.Equal(t, "nombre", got[0].Path)
	require.Equal(t, "contacto", got[1].Path)
}

func TestNestedPaths(t *testing.T) {
	v := New()

	got := v.Check(orderForm{})
	require.Equal(t, []Violation{{Path: "detalleCompras", Field: "detalleCompras", Tag: "min", Param: "1"}}, got)

	got = v.Check(orderForm{Lines: []line{
		{Qty: "2", Price: "10.50"},
		{Qty: "0", Price: "1.2.3"},
	}})
	require.Len(t, got, 2)
	require.Equal(t, "detalleCompras[1].cantidad", got[0].Path)
	require.Equal(t, "positive", got[0].Tag)
	require.Equal(t, "detalleCompras[1].precio_unitario", got[1].Path)
	require.Equal(t, "decimal", got[1].Tag)
}

func TestKeepFilters(t *testing.T) {
	require.Equal(t, "123", KeepDigits("1a2-3"))
	require.Equal(t, "", KeepDigits("abc"))
	require.Equal(t, "12.50", KeepDecimal("12.50"))
	require.Equal(t, "12.505", KeepDecimal("1x2.5.05"))
	require.Equal(t, ".5", KeepDecimal(".5"))
}

func TestHelpers(t *testing.T) {
	require.True(t, IsDigits("0012"))
	require.False(t, IsDigits(""))
	require.False(t, IsDigits("１２")) // full-width digits are not ASCII
	require.True(t, IsPersonName("María José"))
	require.False(t, IsPersonName("R2D2"))
	require.False(t, IsPersonName(""))
}

func TestTranslate(t *testing.T) {
	p := message.NewPrinter(language.English)
	violations := []Violation{
		{Path: "nombre", Field: "nombre", Tag: "personname"},
		{Path: "detalleCompras[0].cantidad", Field: "cantidad", Tag: "positive"},
		{Path: "contacto", Field: "contacto", Tag: "weird"},
	}
	got := Translate(p, violations, map[string]string{
		"nombre.personname": "letters only",
		"positive":          "must be positive",
	})
	require.Equal(t, map[string]string{
		"nombre":                     "letters only",
		"detalleCompras[0].cantidad": "must be positive",
		"contacto":                   "weird",
	}, got)
}

type counted struct {
	Stock string `json:"stock_actual" validate:"omitempty,digits,int64"`
}

func TestInt64Rule(t *testing.T) {
	v := New()

	require.Empty(t, v.Check(counted{Stock: "9223372036854775807"}))
	require.Empty(t, v.Check(counted{}))

	got := v.Check(counted{Stock: "9223372036854775808"})
	require.Equal(t, []Violation{{Path: "stock_actual", Field: "stock_actual", Tag: "int64"}}, got)

	got = v.Check(counted{Stock: "12a"})
	require.Equal(t, "digits", got[0].Tag)
}
