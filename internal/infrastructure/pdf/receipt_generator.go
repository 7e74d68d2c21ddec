// Package pdf genera el comprobante imprimible de una solicitud de servicio.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Firex + contacto    │  N° Solicitud + Fecha         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Email / Teléfono / Dirección                       │
//	│  EXTINTOR: Tipo + Estado   │  CITA: Fecha + Franja           │
//	│  ESTADO ACTUAL + Observaciones                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Estado | Fecha | Responsable                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el código de seguimiento + leyenda          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/diedev/firex-web/internal/application/ports"
	"github.com/diedev/firex-web/internal/application/validation"
	"github.com/diedev/firex-web/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 196, Green: 30, Blue: 36}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const dateLayout = "02/01/2006 15:04"

// ── Generator ─────────────────────────────────────────────────────────────────

// Issuer datos de la empresa impresos en el encabezado.
type Issuer struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// ReceiptGenerator implementa ports.ReceiptRenderer usando Maroto v2.
type ReceiptGenerator struct {
	issuer Issuer
}

var _ ports.ReceiptRenderer = (*ReceiptGenerator)(nil)

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator(issuer Issuer) *ReceiptGenerator {
	if issuer.Name == "" {
		issuer.Name = "Firex"
	}
	return &ReceiptGenerator{issuer: issuer}
}

// ServiceRequestReceipt genera el PDF y devuelve sus bytes.
func (g *ReceiptGenerator) ServiceRequestReceipt(sr *entity.ServiceRequest) ([]byte, error) {
	if sr == nil {
		return nil, fmt.Errorf("pdf: solicitud nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante "+sr.RequestID, true).
		WithAuthor(g.issuer.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(sr))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(sr))
	m.AddRows(serviceRow(sr))
	m.AddRows(statusRows(sr)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(timelineHeaderRow())
	m.AddRows(timelineRows(sr.Timeline)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(sr))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y código + fecha de creación (der).
func (g *ReceiptGenerator) headerRow(sr *entity.ServiceRequest) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.issuer.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %s   |   %s",
				nonEmpty(g.issuer.Address, "-"),
				nonEmpty(g.issuer.Phone, "-"),
				nonEmpty(g.issuer.Email, "-"),
			), props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE SOLICITUD", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(sr.RequestID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Creada: "+formatTime(sr.CreatedAt), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func customerRow(sr *entity.ServiceRequest) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(sr.UserEmail, "-"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Tel: %s   |   Dirección: %s",
				nonEmpty(validation.FormatPhone(sr.Telefono), "-"),
				nonEmpty(sr.Direccion, "-"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func serviceRow(sr *entity.ServiceRequest) core.Row {
	block := func(title, line1, line2 string) core.Col {
		return col.New(6).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(line1, props.Text{Size: 9, Top: 6}),
			text.New(line2, props.Text{Size: 9, Top: 11}),
		)
	}
	return row.New(17).Add(
		block("EXTINTOR", "Tipo: "+nonEmpty(sr.Tipo, "-"), "Estado: "+nonEmpty(sr.EstadoExtintor, "-")),
		block("CITA DE RECOGIDA", "Fecha: "+nonEmpty(sr.Fecha, "-"), "Franja: "+nonEmpty(sr.Franja, "-")),
	)
}

func statusRows(sr *entity.ServiceRequest) []core.Row {
	rows := []core.Row{
		row.New(9).Add(col.New(12).Add(
			text.New("Estado actual: "+sr.Status.Label(), props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
			}),
		)),
	}
	if sr.Observaciones != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Observaciones: "+sr.Observaciones, props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	return rows
}

// timelineHeaderRow: cabecera del historial.
func timelineHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Estado", 4, align.Left),
		h("Fecha", 4, align.Center),
		h("Responsable", 4, align.Right),
	)
}

// timelineRows: una fila por cambio de estado.
func timelineRows(entries []entity.TimelineEntry) []core.Row {
	if len(entries) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin movimientos registrados", props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray}),
		))}
	}
	out := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		out = append(out, row.New(7).Add(
			col.New(4).Add(text.New(e.Status.Label(), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(formatTime(e.Timestamp), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(nonEmpty(e.By, "-"), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return out
}

// footerRow: QR con el código de seguimiento.
func footerRow(sr *entity.ServiceRequest) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(sr.RequestID, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(9).Add(
			text.New("Código de seguimiento: "+sr.RequestID, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6, Left: 3, Color: colorPrimary,
			}),
			text.New("Presente este comprobante al entregar y recoger su extintor.\n"+
				"Consulte el estado de su solicitud en la sección Mis solicitudes.", props.Text{
				Size: 8, Top: 14, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func formatTime(t entity.Timestamp) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}
