// Package pdf genera el comprobante de suscripción del workspace en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + País      │  N° Comprobante + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Plan / Estado / Periodo                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Licencias | Concepto | Precio | Desc% | Subtotal     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Base / Descuento / TOTAL A PAGAR                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR de verificación + leyenda                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/workspace-api/internal/application/billing"
	"github.com/jhoicas/workspace-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const dateLayout = "02/01/2006"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.ReceiptPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ billing.ReceiptPDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateReceiptPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateReceiptPDF(_ context.Context, r *billing.Receipt) ([]byte, error) {
	if r == nil || r.Company == nil || r.Subscription == nil {
		return nil, fmt.Errorf("pdf: comprobante incompleto")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de suscripción", true).
		WithAuthor(r.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRow(r))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(r.Subscription))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, fr := range footerRows(r) {
		m.AddRows(fr)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(r *billing.Receipt) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(r.Company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("País: "+nonEmpty(r.Company.Country, "N/D"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE SUSCRIPCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(r.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+r.IssuedAt.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: plan, estado y periodo cubierto.
func customerRow(r *billing.Receipt) core.Row {
	s := r.Subscription
	status := "Activa"
	if s.IsTrial {
		status = "Prueba"
		if s.TrialEndsAt != nil {
			status += " hasta " + s.TrialEndsAt.Format(dateLayout)
		}
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PLAN CONTRATADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(planTitle(r), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Estado: %s   |   Periodo: %s – %s   |   Licencias en uso: %d de %d",
				status,
				s.StartsAt.Format(dateLayout),
				s.EndsAt.Format(dateLayout),
				r.SeatsUsed, s.LicenseCount,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Licencias", 2, align.Center),
		h("Concepto", 4, align.Left),
		h("Precio base", 2, align.Right),
		h("Desc%", 1, align.Center),
		h("Subtotal", 3, align.Right),
	)
}

func tableDetailRow(r *billing.Receipt) core.Row {
	s := r.Subscription
	concept := fmt.Sprintf("Plan %s (%s)", s.PlanName, nonEmpty(s.BillingType, "anual"))
	return row.New(7).Add(
		col.New(2).Add(text.New(
			strconv.Itoa(s.LicenseCount),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(4).Add(text.New(
			concept,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			money(s.BasePrice),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(1).Add(text.New(
			s.DiscountPercent.StringFixed(0)+"%",
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(3).Add(text.New(
			money(s.BasePrice-s.DiscountAmount),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

func totalsRow(s *entity.Subscription) core.Row {
	label := func(v string) core.Component {
		return text.New(v, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(v string) core.Component {
		return text.New(v, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := text.New("TOTAL A PAGAR:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 2,
	})
	grandValue := text.New(money(s.FinalPrice), props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 1,
	})

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(label("Precio base:"), label("Descuento:"), grandLabel),
		col.New(3).Add(value(money(s.BasePrice)), value("-"+money(s.DiscountAmount)), grandValue),
		col.New(3),
	)
}

// footerRows: QR con la referencia del comprobante y leyenda.
func footerRows(r *billing.Receipt) []core.Row {
	legend := "Durante el periodo de prueba no se realizan cobros."
	if !r.Subscription.IsTrial {
		legend = "Conserve este documento como soporte de pago de su suscripción anual."
	}
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("VERIFICACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(40).Add(
			col.New(3).Add(code.NewQr(VerificationCode(r), props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(9).Add(
				text.New("Referencia: "+r.Subscription.ID, props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New(legend, props.Text{
					Style: fontstyle.Bold, Size: 9, Top: 16, Left: 3, Color: colorPrimary,
				}),
			),
		),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

// VerificationCode contenido del QR: número|suscripción|empresa|total.
func VerificationCode(r *billing.Receipt) string {
	return strings.Join([]string{
		r.Number,
		r.Subscription.ID,
		r.Company.ID,
		strconv.FormatInt(r.Subscription.FinalPrice, 10),
	}, "|")
}

func planTitle(r *billing.Receipt) string {
	if r.Plan != nil && r.Plan.Description != "" {
		return r.Plan.Name + " · " + r.Plan.Description
	}
	return r.Subscription.PlanName
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func money(v int64) string {
	if v < 0 {
		return "-$" + formatMoney(strconv.FormatInt(-v, 10))
	}
	return "$" + formatMoney(strconv.FormatInt(v, 10))
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
