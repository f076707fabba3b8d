// Package urlstate is the only serialization boundary of an estimate: the selection
// and start date travel as the query parameters s and d.
package urlstate

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"estimador/internal/catalog"
	"estimador/internal/quote"
	"estimador/internal/selection"
)

const (
	ParamSelection = "s"
	ParamDate      = "d"

	DateLayout = "2006-01-02"

	fragmentSep = ","
	fieldSep    = ":"
)

// EncodeSelection writes every entry that is not at rest as "id:enabled:quantity",
// catalog tasks first in catalog order, then ids the catalog does not know, sorted.
func EncodeSelection(cat *catalog.Catalog, state selection.State) string {
	var parts []string
	seen := make(map[string]bool, len(state))

	for _, t := range cat.Tasks() {
		seen[t.ID] = true
		if sel, ok := state[t.ID]; ok && !sel.AtRest() {
			parts = append(parts, fragment(t.ID, sel))
		}
	}

	var extra []string
	for id, sel := range state {
		if !seen[id] && !sel.AtRest() {
			extra = append(extra, id)
		}
	}
	slices.Sort(extra)
	for _, id := range extra {
		parts = append(parts, fragment(id, state[id]))
	}
	return strings.Join(parts, fragmentSep)
}

func fragment(id string, sel selection.Selection) string {
	enabled := "0"
	if sel.Enabled {
		enabled = "1"
	}
	return id + fieldSep + enabled + fieldSep + strconv.Itoa(sel.Quantity)
}

// DecodeSelection rebuilds a state from s. Omitted tasks come back at rest, malformed
// fragments are skipped and a non-numeric quantity reads as 0. ok is false when s is
// empty, in which case the caller should start from the defaults.
func DecodeSelection(cat *catalog.Catalog, s string) (selection.State, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}

	state := selection.Resting(cat)
	for _, frag := range strings.Split(s, fragmentSep) {
		fields := strings.Split(frag, fieldSep)
		if len(fields) < 3 {
			continue
		}
		id := strings.TrimSpace(fields[0])
		if id == "" {
			continue
		}
		qty, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			qty = 0
		}
		state[id] = selection.Selection{
			Enabled:  strings.TrimSpace(fields[1]) == "1",
			Quantity: qty,
		}
	}
	return selection.Normalize(cat, state), true
}

func EncodeDate(d time.Time) string {
	return d.Format(DateLayout)
}

// DecodeDate parses an ISO calendar date, returning fallback when s is not one.
func DecodeDate(s string, fallback time.Time) time.Time {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return fallback
	}
	return d
}

// Decode restores the estimate carried by s and d. A missing selection yields the
// catalog defaults and a missing or broken date the default start computed from now.
func Decode(cat *catalog.Catalog, s, d string, now time.Time) (selection.State, time.Time) {
	state, ok := DecodeSelection(cat, s)
	if !ok {
		state = selection.Defaults(cat)
	}
	return state, DecodeDate(d, DefaultStart(now))
}

func Encode(cat *catalog.Catalog, state selection.State, start time.Time) (s, d string) {
	return EncodeSelection(cat, state), EncodeDate(start)
}

// DefaultStart is quote.DefaultStartDate taken on the civil date of now.
func DefaultStart(now time.Time) time.Time {
	y, m, day := now.Date()
	return quote.DefaultStartDate(time.Date(y, m, day, 0, 0, 0, 0, time.UTC))
}

func FromQuery(q url.Values) (s, d string) {
	return q.Get(ParamSelection), q.Get(ParamDate)
}

func ToQuery(s, d string) url.Values {
	q := url.Values{}
	if s != "" {
		q.Set(ParamSelection, s)
	}
	if d != "" {
		q.Set(ParamDate, d)
	}
	return q
}
