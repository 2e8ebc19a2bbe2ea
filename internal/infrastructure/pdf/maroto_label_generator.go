// Package pdf implementa la generación de la etiqueta de marcado de un
// elemento estructural: código legible + símbolo DataMatrix escaneable en
// planta, almacén y obra, más los atributos técnicos del elemento.
//
// Layout de la etiqueta (A5 horizontal impresa y adherida al elemento):
//
//	┌─────────────────────────────────────────────┐
//	│  CÓDIGO DEL ELEMENTO (grande)   │ DataMatrix │
//	│  tipo / plano / lote / GOST     │            │
//	│  dimensiones / peso             │            │
//	│  ubicación actual (si tiene)    │            │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
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
	"github.com/shopspring/decimal"

	"github.com/jcastro/trazametal-api/internal/application/label"
	"github.com/jcastro/trazametal-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 40, Green: 40, Blue: 40}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ label.LabelGenerator = (*MarotoLabelGenerator)(nil)

// MarotoLabelGenerator implementa label.LabelGenerator usando Maroto v2.
type MarotoLabelGenerator struct{}

// NewMarotoLabelGenerator construye el generador.
func NewMarotoLabelGenerator() *MarotoLabelGenerator { return &MarotoLabelGenerator{} }

// GenerateElementLabel genera el PDF de la etiqueta y devuelve sus bytes.
func (g *MarotoLabelGenerator) GenerateElementLabel(
	_ context.Context,
	element *entity.Element,
	location *entity.ControlPoint,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Etiqueta de marcado "+element.Code, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(element))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(attributesRow(element))
	m.AddRows(dimensionsRow(element))
	if location != nil {
		m.AddRows(locationRow(location))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiqueta: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: código grande a la izquierda + símbolo DataMatrix a la derecha.
func headerRow(element *entity.Element) core.Row {
	return row.New(40).Add(
		col.New(8).Add(
			text.New("ELEMENTO ESTRUCTURAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1,
			}),
			text.New(element.Code, props.Text{
				Style: fontstyle.Bold, Size: 22, Color: colorPrimary, Top: 8,
			}),
			text.New("Tipo: "+elementTypeLabel(element.Type), props.Text{
				Size: 10, Top: 22, Color: colorGray,
			}),
		),
		col.New(4).Add(
			code.NewMatrix(element.Code, props.Rect{
				Center:  true,
				Percent: 90,
			}),
		),
	)
}

// attributesRow: plano, lote y norma.
func attributesRow(element *entity.Element) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Plano: %s   |   Lote: %s   |   GOST: %s",
				nonEmpty(element.DrawingRef, "—"),
				nonEmpty(element.Batch, "—"),
				nonEmpty(element.GOST, "—"),
			), props.Text{Size: 9, Top: 2, Color: colorGray}),
		),
	)
}

// dimensionsRow: dimensiones y peso si están definidos.
func dimensionsRow(element *entity.Element) core.Row {
	dims := fmt.Sprintf("L %s × A %s × H %s mm   |   Peso: %s kg",
		decimalOrDash(element.Length),
		decimalOrDash(element.Width),
		decimalOrDash(element.Height),
		decimalOrDash(element.Weight),
	)
	return row.New(10).Add(
		col.New(12).Add(
			text.New(dims, props.Text{Size: 9, Top: 2, Color: colorGray}),
		),
	)
}

// locationRow: ubicación actual del elemento.
func locationRow(location *entity.ControlPoint) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Ubicación actual: "+location.Name+" ("+location.Type+")", props.Text{
				Size: 9, Top: 2, Align: align.Left,
			}),
		),
	)
}

func elementTypeLabel(t string) string {
	switch t {
	case entity.ElementTypeBeam:
		return "viga"
	case entity.ElementTypeColumn:
		return "columna"
	case entity.ElementTypeTruss:
		return "cercha"
	case entity.ElementTypeConnection:
		return "conexión"
	}
	return t
}

func nonEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func decimalOrDash(d *decimal.Decimal) string {
	if d == nil {
		return "—"
	}
	return d.String()
}
