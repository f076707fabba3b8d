package export

import (
	"net/url"
	"testing"
	"time"

	"estimador/internal/catalog"
	"estimador/internal/quote"
	"estimador/internal/rules"
	"estimador/internal/selection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuote(t *testing.T) quote.Quote {
	t.Helper()
	cat := catalog.New([]catalog.Task{
		{ID: "setup", Name: "Setup", Price: 100000, Hours: 8, Category: catalog.CategoryEssential, Mode: catalog.ModeSummaryOnly},
		{ID: "page", Name: "Página", Price: 80000, Hours: 8, Category: catalog.CategoryMain, Mode: catalog.ModeQuantity, DefaultQuantity: 1},
		{ID: "mail", Name: "Mail", Price: 60000, Hours: 8, Category: catalog.CategoryMain, Mode: catalog.ModeToggle},
		{ID: "favicon", Name: "Favicon", Hours: 1, Category: catalog.CategoryFreeIncluded, Mode: catalog.ModeSummaryOnly},
	})
	s := selection.Defaults(cat)
	s = selection.SetQuantity(cat, s, "page", 3)
	s = selection.Toggle(cat, s, "mail")

	q := quote.Build(rules.New(cat, rules.PolicyHide), s, time.Date(2026, time.October, 21, 0, 0, 0, 0, time.UTC))
	require.Equal(t, int64(400000), q.Totals.Price)
	return q
}

func TestDocument(t *testing.T) {
	q := sampleQuote(t)
	generated := time.Date(2026, time.October, 19, 10, 30, 0, 0, time.UTC)

	want := `PRESUPUESTO - ESTIMADOR DE TIEMPO Y COSTO
==========================================

Fecha de generación: Lun. 19 oct. 2026

SERVICIOS ESENCIALES
--------------------
• Setup: $100.000

SERVICIOS SELECCIONADOS
-----------------------
• Página (x3): $240.000
• Mail: $60.000

INCLUIDO GRATIS
---------------
• Favicon

==========================================
TOTAL: $400.000
TIEMPO ESTIMADO: 1 semana y 1 día

Fecha de inicio: Mié. 21 oct. 2026
Fecha de finalización: Jue. 29 oct. 2026
==========================================
`
	assert.Equal(t, want, Document(q, generated))
}

func TestDocument_NoFreeSection(t *testing.T) {
	q := sampleQuote(t)
	q.Breakdown.FreeIncluded = nil
	assert.NotContains(t, Document(q, time.Now()), "INCLUIDO GRATIS")
}

func TestDocument_DoesNotTouchQuote(t *testing.T) {
	q := sampleQuote(t)
	before := q.State.Clone()
	_ = Document(q, time.Now())
	_ = ShareMessage(q, "https://example.com/")
	assert.True(t, selection.Equal(before, q.State))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "presupuesto-2026-10-19.txt", Filename(time.Date(2026, time.October, 19, 23, 0, 0, 0, time.UTC)))
}

func TestShareMessage(t *testing.T) {
	q := sampleQuote(t)
	got := ShareMessage(q, "https://presupuesto.example.com/?s=x")

	want := "Hola, te escribo desde el estimador de presupuesto para consultar por mi proyecto web\n" +
		"------------------------------------------------------------\n" +
		"Total estimado: $400.000\n" +
		"Tiempo estimado: 1 semana y 1 día\n" +
		"------------------------------------------------------------\n" +
		"Ver detalle: https://presupuesto.example.com/?s=x"
	assert.Equal(t, want, got)
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("+54 9 11 1234-5678", "hola\nmundo")
	assert.Equal(t, "https://wa.me/5491112345678?text=hola%0Amundo", link)

	u, err := url.Parse(WhatsAppLink("", "Total: $1"))
	require.NoError(t, err)
	assert.Equal(t, "/", u.Path)
	assert.Equal(t, "Total: $1", u.Query().Get("text"))
}

func TestShareURL(t *testing.T) {
	assert.Equal(t,
		"https://presupuesto.example.com/?d=2026-10-21&s=a%3A1%3A1",
		ShareURL("https://presupuesto.example.com", "a:1:1", "2026-10-21"))
	assert.Equal(t, "/?d=2026-10-21", ShareURL("", "", "2026-10-21"))
}
