// Package pdf renders the stock transaction report as a printable A4
// document. A pure projection of already-computed report rows.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/sorawitt/spareparts-api/internal/application/dto"
	"github.com/sorawitt/spareparts-api/internal/application/report"
	"github.com/sorawitt/spareparts-api/internal/domain/entity"
)

var (
	colorHeader = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator renders transaction reports using Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Generate renders the report and returns the PDF bytes.
func (g *MarotoReportGenerator) Generate(_ context.Context, rep *dto.TransactionReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(rep))
	m.AddRows(line.NewRow(2, props.Line{Color: colorHeader, Thickness: 0.5}))
	m.AddRows(headerRow())
	for _, r := range rep.Rows {
		m.AddRows(dataRow(r))
	}
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(rep))
	if len(rep.Orphaned) > 0 {
		m.AddRows(text.NewRow(5, fmt.Sprintf("Excluded %d orphaned transaction(s): part record deleted.", len(rep.Orphaned)),
			props.Text{Size: 7, Color: colorGray}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate report pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow(rep *dto.TransactionReportResponse) core.Row {
	title := "Stock Withdrawal Report"
	if rep.Direction == entity.DirectionIn {
		title = "Stock Receipt Report"
	}
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{Size: 14, Style: fontstyle.Bold, Color: colorHeader}),
			text.New(fmt.Sprintf("Period: %s - %s", rep.StartDate, rep.EndDate),
				props.Text{Top: 7, Size: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%d transactions", len(rep.Rows)),
				props.Text{Size: 9, Align: align.Right, Color: colorGray}),
		),
	)
}

func headerRow() core.Row {
	h := func(size int, label string, a align.Type) core.Col {
		return text.NewCol(size, label, props.Text{Size: 8, Style: fontstyle.Bold, Align: a})
	}
	return row.New(7).Add(
		h(2, "Date", align.Left),
		h(2, "Part Code", align.Left),
		h(3, "Part Name", align.Left),
		h(1, "Qty", align.Right),
		h(1, "Machine", align.Left),
		h(1, "Operator", align.Left),
		h(1, "Unit Price", align.Right),
		h(1, "Total", align.Right),
	)
}

func dataRow(r dto.ReportRow) core.Row {
	c := func(size int, value string, a align.Type) core.Col {
		return text.NewCol(size, value, props.Text{Size: 7, Align: a})
	}
	return row.New(6).Add(
		c(2, r.CreatedAt.Format("2006-01-02 15:04"), align.Left),
		c(2, r.PartCode, align.Left),
		c(3, r.PartName, align.Left),
		c(1, fmt.Sprintf("%d", r.Quantity), align.Right),
		c(1, r.MachineID, align.Left),
		c(1, r.OperatorName, align.Left),
		c(1, r.UnitPrice.StringFixed(2), align.Right),
		c(1, r.LineTotal.StringFixed(2), align.Right),
	)
}

func totalRow(rep *dto.TransactionReportResponse) core.Row {
	return row.New(8).Add(
		text.NewCol(11, "Total Value:", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(1, rep.Total.StringFixed(2), props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
	)
}
