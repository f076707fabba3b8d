package web

import (
	"time"

	"estimador/internal/catalog"
	"estimador/internal/export"
	"estimador/internal/quote"
	"estimador/internal/rules"
	"estimador/internal/selection"
	"estimador/internal/urlstate"
)

// QuoteView is everything a page or an API client needs to draw one estimate.
type QuoteView struct {
	S            string          `json:"s"`
	D            string          `json:"d"`
	Policy       rules.Policy    `json:"policy"`
	Sections     []SectionView   `json:"sections"`
	Totals       quote.Totals    `json:"totals"`
	BusinessDays int             `json:"business_days"`
	Price        string          `json:"price"`
	Duration     string          `json:"duration"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	Start        string          `json:"start"`
	End          string          `json:"end"`
	Breakdown    quote.Breakdown `json:"breakdown"`
	ShareURL     string          `json:"share_url"`
	WhatsAppURL  string          `json:"whatsapp_url"`
}

type SectionView struct {
	Category catalog.Category `json:"category"`
	Items    []ItemView       `json:"items"`
}

type ItemView struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       string       `json:"price"`
	Hours       float64      `json:"hours"`
	Mode        catalog.Mode `json:"mode"`
	Dependent   bool         `json:"dependent"`
	Disabled    bool         `json:"disabled"`
	Enabled     bool         `json:"enabled"`
	Quantity    int          `json:"quantity"`
}

func buildView(e rules.Engine, state selection.State, start time.Time, baseURL, phone string) QuoteView {
	q := quote.Build(e, state, start)
	s, d := urlstate.Encode(e.Catalog, state, start)
	shareURL := export.ShareURL(baseURL, s, d)

	v := QuoteView{
		S:            s,
		D:            d,
		Policy:       e.Policy,
		Totals:       q.Totals,
		BusinessDays: q.Days,
		Price:        q.Price(),
		Duration:     q.Duration(),
		StartDate:    urlstate.EncodeDate(q.Range.Start),
		EndDate:      urlstate.EncodeDate(q.Range.End),
		Start:        quote.FormatDate(q.Range.Start),
		End:          quote.FormatDate(q.Range.End),
		Breakdown:    q.Breakdown,
		ShareURL:     shareURL,
		WhatsAppURL:  export.WhatsAppLink(phone, export.ShareMessage(q, shareURL)),
	}
	for _, sec := range e.Sections(state) {
		sv := SectionView{Category: sec.Category}
		for _, it := range sec.Items {
			sel := state[it.Task.ID]
			sv.Items = append(sv.Items, ItemView{
				ID:          it.Task.ID,
				Name:        it.Task.Name,
				Description: it.Task.Description,
				Price:       quote.FormatPrice(it.Task.Price),
				Hours:       it.Task.Hours,
				Mode:        it.Task.Mode,
				Dependent:   len(it.Task.VisibleWhen) > 0,
				Disabled:    it.Disabled,
				Enabled:     selection.IsActive(it.Task, state),
				Quantity:    sel.Quantity,
			})
		}
		v.Sections = append(v.Sections, sv)
	}
	return v
}
