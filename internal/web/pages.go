package web

import (
	"context"
	"embed"
	"html/template"
	"io"

	"estimador/internal/catalog"
	"estimador/internal/quote"
	"estimador/internal/selection"
	"estimador/internal/urlstate"

	"github.com/a-h/templ"
)

//go:embed templates/pages.html
var pagesFS embed.FS

var pagesTmpl = template.Must(
	template.New("pages.html").
		Funcs(template.FuncMap{
			"pageURL":      pageURL,
			"price":        quote.FormatPrice,
			"taskClass":    taskClass,
			"showQuantity": showQuantity,
			"maxQuantity":  func() int { return selection.MaxQuantity },
		}).
		ParseFS(pagesFS, "templates/pages.html"),
)

// SelectorPage lists the editable categories with a control per task.
func SelectorPage(v QuoteView) templ.Component {
	return page("selector", v)
}

// SummaryPage shows the billed lines, the totals and the export actions.
func SummaryPage(v QuoteView) templ.Component {
	return page("summary", v)
}

func page(name string, v QuoteView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return pagesTmpl.ExecuteTemplate(w, name, v)
	})
}

func taskClass(it ItemView) string {
	class := "task"
	if it.Dependent {
		class += " dependent"
	}
	if it.Disabled {
		class += " disabled"
	}
	return class
}

func showQuantity(l quote.Line) bool {
	return l.Task.Mode == catalog.ModeQuantity && l.Quantity > 1
}

// pageURL links to path carrying the current estimate.
func pageURL(path string, v QuoteView) string {
	q := urlstate.ToQuery(v.S, v.D)
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
