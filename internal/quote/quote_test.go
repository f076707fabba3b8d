package quote

import (
	"math"
	"testing"
	"time"

	"estimador/internal/catalog"
	"estimador/internal/rules"
	"estimador/internal/selection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func defaultEngine() (rules.Engine, selection.State) {
	cat := catalog.Default()
	return rules.New(cat, rules.PolicyHide), selection.Defaults(cat)
}

func TestComputeTotals_Defaults(t *testing.T) {
	e, s := defaultEngine()

	got := ComputeTotals(e, s)
	assert.Equal(t, int64(332000), got.Price)
	assert.InDelta(t, 57.0, got.Hours, 1e-9)
}

func TestComputeTotals_QuantityDependent(t *testing.T) {
	e, s := defaultEngine()
	cat := e.Catalog

	s = selection.Toggle(cat, s, "mail-config")
	s = selection.SetQuantity(cat, s, "additional-mailbox", 2)

	got := ComputeTotals(e, s)
	assert.Equal(t, int64(332000+60000+12000), got.Price)
	assert.InDelta(t, 57.0+8+2, got.Hours, 1e-9)
}

func TestComputeTotals_IneligibleEntryDoesNotCount(t *testing.T) {
	e, s := defaultEngine()

	// A hand-built state can carry a quantity for a task whose prerequisite is off.
	s = s.Clone()
	s["additional-mailbox"] = selection.Selection{Enabled: true, Quantity: 5}

	assert.Equal(t, int64(332000), ComputeTotals(e, s).Price)
}

func TestComputeTotals_Stores(t *testing.T) {
	e, s := defaultEngine()
	cat := e.Catalog

	s = selection.Toggle(cat, s, "basic-store")
	s = selection.SetQuantity(cat, s, "product-load", 40)
	got := ComputeTotals(e, s)
	assert.Equal(t, int64(332000+234000+120000), got.Price)

	s = selection.Toggle(cat, s, "complete-store")
	got = ComputeTotals(e, s)
	assert.Equal(t, int64(332000+698000+120000), got.Price)
	assert.InDelta(t, 57.0+96+8, got.Hours, 1e-9)
}

func TestComputeTotals_EmptyStateIsZero(t *testing.T) {
	e, _ := defaultEngine()
	assert.Equal(t, Totals{}, ComputeTotals(e, selection.State{}))
}

func TestBusinessDaysFor(t *testing.T) {
	cases := []struct {
		hours float64
		want  int
	}{
		{0, 0},
		{-3, 0},
		{0.5, 1},
		{8, 1},
		{9, 2},
		{57, 8},
		{0.2 * 40, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, BusinessDaysFor(tc.hours), "hours=%v", tc.hours)
	}
}

func TestBusinessDaysFor_AccumulatedFractions(t *testing.T) {
	var h float64
	for range 40 {
		h += 0.2
	}
	assert.Equal(t, 1, BusinessDaysFor(h))
}

func TestAddBusinessDays(t *testing.T) {
	fri := day(2026, time.October, 16)

	assert.Equal(t, fri, AddBusinessDays(fri, 0))
	assert.Equal(t, day(2026, time.October, 19), AddBusinessDays(fri, 1))
	assert.Equal(t, day(2026, time.October, 23), AddBusinessDays(fri, 5))

	sat := day(2026, time.October, 17)
	assert.Equal(t, day(2026, time.October, 19), AddBusinessDays(sat, 1))
}

func TestAddBusinessDays_MatchesDayByDayWalk(t *testing.T) {
	walk := func(d time.Time, n int) time.Time {
		for added := 0; added < n; {
			d = d.AddDate(0, 0, 1)
			if IsBusinessDay(d) {
				added++
			}
		}
		return d
	}

	for offset := 0; offset < 7; offset++ {
		start := day(2026, time.October, 19+offset)
		for n := 0; n <= 40; n++ {
			require.Equal(t, walk(start, n), AddBusinessDays(start, n), "start=%s n=%d", start.Weekday(), n)
		}
	}
}

func TestAddBusinessDays_LargeOffset(t *testing.T) {
	mon := day(2026, time.October, 19)
	got := AddBusinessDays(mon, 1_000_000_000)
	assert.Equal(t, mon.AddDate(0, 0, 1_000_000_000/5*7), got)
}

func TestComputeTotals_OversizedURLQuantityStaysBounded(t *testing.T) {
	e, s := defaultEngine()
	s = selection.Normalize(e.Catalog, selection.SetQuantity(e.Catalog, s, "additional-section", 1<<62))
	base := ComputeTotals(e, selection.Defaults(e.Catalog))

	section, ok := e.Catalog.Task("additional-section")
	require.True(t, ok)
	got := ComputeTotals(e, s)
	assert.Equal(t, base.Price+section.Price*selection.MaxQuantity, got.Price)

	q := Build(e, s, day(2026, time.October, 21))
	assert.Equal(t, BusinessDaysFor(got.Hours), q.Days)
}

func TestBusinessDaysFor_Capped(t *testing.T) {
	assert.Equal(t, maxHours/HoursPerDay, BusinessDaysFor(math.MaxFloat64))
}

func TestAddBusinessDays_DropsClock(t *testing.T) {
	at := time.Date(2026, time.October, 19, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, day(2026, time.October, 20), AddBusinessDays(at, 1))
}

func TestDefaultStartDate(t *testing.T) {
	assert.Equal(t, day(2026, time.October, 21), DefaultStartDate(day(2026, time.October, 19)))
	assert.Equal(t, day(2026, time.October, 20), DefaultStartDate(day(2026, time.October, 16)))
}

func TestRangeFor(t *testing.T) {
	start := day(2026, time.October, 21)

	r := RangeFor(start, 57)
	assert.Equal(t, start, r.Start)
	assert.Equal(t, day(2026, time.November, 2), r.End)

	assert.Equal(t, start, RangeFor(start, 0).End)
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{0, "0 días"},
		{8, "1 día"},
		{9, "2 días"},
		{40, "1 semana"},
		{48, "1 semana y 1 día"},
		{57, "1 semana y 3 días"},
		{80, "2 semanas"},
		{160, "20 días"},
		{168, "21 días"},
		{176, "1 mes"},
		{200, "1 mes y 3 días"},
		{360, "2 meses y 1 día"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatDuration(tc.hours), "hours=%v", tc.hours)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$332.000", FormatPrice(332000))
	assert.Equal(t, "$1.150.000", FormatPrice(1150000))
	assert.Equal(t, "$0", FormatPrice(0))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Mar. 20 oct. 2026", FormatDate(day(2026, time.October, 20)))
	assert.Equal(t, "Dom. 3 ene. 2027", FormatDate(day(2027, time.January, 3)))
	assert.Equal(t, "Mié. 2 dic. 2026", FormatDate(day(2026, time.December, 2)))
}

func TestSelected_GroupsInCatalogOrder(t *testing.T) {
	e, s := defaultEngine()
	cat := e.Catalog
	s = selection.Toggle(cat, s, "mail-config")
	s = selection.SetQuantity(cat, s, "additional-mailbox", 3)

	b := Selected(e, s)

	ids := func(lines []Line) []string {
		var out []string
		for _, l := range lines {
			out = append(out, l.Task.ID)
		}
		return out
	}
	assert.Equal(t, []string{"hosting-setup", "design-customization", "testing"}, ids(b.Essential))
	assert.Equal(t, []string{"three-section-page", "mail-config", "additional-mailbox"}, ids(b.UserSelected))
	assert.Equal(t, []string{"essential-plugins", "responsive", "favicon", "social-integration", "support"}, ids(b.FreeIncluded))

	mailbox := b.UserSelected[2]
	assert.Equal(t, 3, mailbox.Quantity)
	assert.Equal(t, int64(18000), mailbox.Amount)

	assert.Len(t, b.Lines(), 11)
}

func TestSelected_MatchesTotals(t *testing.T) {
	e, s := defaultEngine()
	cat := e.Catalog
	s = selection.Toggle(cat, s, "payment-system")
	s = selection.Toggle(cat, s, "discount-system")
	s = selection.SetQuantity(cat, s, "blog", 2)

	var sum int64
	for _, l := range Selected(e, s).Lines() {
		sum += l.Amount
	}
	assert.Equal(t, ComputeTotals(e, s).Price, sum)
}

func TestBuild(t *testing.T) {
	e, s := defaultEngine()
	start := day(2026, time.October, 21)

	q := Build(e, s, start)
	require.Equal(t, int64(332000), q.Totals.Price)
	assert.Equal(t, 8, q.Days)
	assert.Equal(t, day(2026, time.November, 2), q.Range.End)
	assert.Equal(t, "$332.000", q.Price())
	assert.Equal(t, "1 semana y 3 días", q.Duration())
	assert.True(t, selection.Equal(s, q.State))
}
