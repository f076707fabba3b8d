// Package export renders a finished quote for people: the downloadable text document
// and the WhatsApp share message. It only reads the quote it is given.
package export

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"estimador/internal/quote"
	"estimador/internal/urlstate"
)

const (
	title     = "PRESUPUESTO - ESTIMADOR DE TIEMPO Y COSTO"
	heavyRule = "=========================================="
	lightRule = "------------------------------------------------------------"

	shareGreeting = "Hola, te escribo desde el estimador de presupuesto para consultar por mi proyecto web"
	whatsAppBase  = "https://wa.me/"
)

// Document is the plain-text budget offered as a download.
func Document(q quote.Quote, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString(title + "\n")
	b.WriteString(heavyRule + "\n\n")
	fmt.Fprintf(&b, "Fecha de generación: %s\n\n", quote.FormatDate(generatedAt))

	section(&b, "SERVICIOS ESENCIALES")
	for _, l := range q.Breakdown.Essential {
		fmt.Fprintf(&b, "• %s: %s\n", l.Task.Name, quote.FormatPrice(l.Amount))
	}

	b.WriteString("\n")
	section(&b, "SERVICIOS SELECCIONADOS")
	for _, l := range q.Breakdown.UserSelected {
		fmt.Fprintf(&b, "• %s%s: %s\n", l.Task.Name, quantitySuffix(l.Quantity), quote.FormatPrice(l.Amount))
	}

	if len(q.Breakdown.FreeIncluded) > 0 {
		b.WriteString("\n")
		section(&b, "INCLUIDO GRATIS")
		for _, l := range q.Breakdown.FreeIncluded {
			fmt.Fprintf(&b, "• %s\n", l.Task.Name)
		}
	}

	b.WriteString("\n" + heavyRule + "\n")
	fmt.Fprintf(&b, "TOTAL: %s\n", q.Price())
	fmt.Fprintf(&b, "TIEMPO ESTIMADO: %s\n", q.Duration())
	fmt.Fprintf(&b, "\nFecha de inicio: %s\n", quote.FormatDate(q.Range.Start))
	fmt.Fprintf(&b, "Fecha de finalización: %s\n", quote.FormatDate(q.Range.End))
	b.WriteString(heavyRule + "\n")

	return b.String()
}

func section(b *strings.Builder, name string) {
	b.WriteString(name + "\n")
	b.WriteString(strings.Repeat("-", len(name)) + "\n")
}

func quantitySuffix(qty int) string {
	if qty > 1 {
		return fmt.Sprintf(" (x%d)", qty)
	}
	return ""
}

// Filename names the download after the day it was generated.
func Filename(generatedAt time.Time) string {
	return "presupuesto-" + generatedAt.Format(urlstate.DateLayout) + ".txt"
}

func ShareMessage(q quote.Quote, shareURL string) string {
	return strings.Join([]string{
		shareGreeting,
		lightRule,
		"Total estimado: " + q.Price(),
		"Tiempo estimado: " + q.Duration(),
		lightRule,
		"Ver detalle: " + shareURL,
	}, "\n")
}

// WhatsAppLink opens a chat prefilled with message. An empty phone lets the user
// pick the recipient.
func WhatsAppLink(phone, message string) string {
	phone = strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return whatsAppBase + phone + "?" + url.Values{"text": {message}}.Encode()
}

// ShareURL is the bookmarkable address of an estimate under base.
func ShareURL(base, s, d string) string {
	u, err := url.Parse(base)
	if err != nil || base == "" {
		u = &url.URL{Path: "/"}
	}
	if u.Path == "" {
		u.Path = "/"
	}
	u.RawQuery = urlstate.ToQuery(s, d).Encode()
	return u.String()
}
