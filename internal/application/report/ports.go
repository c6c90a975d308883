package report

import (
	"context"

	"github.com/sorawitt/spareparts-api/internal/application/dto"
)

// PDFGenerator renders an already-built report; a pure projection, no
// queries of its own.
type PDFGenerator interface {
	Generate(ctx context.Context, report *dto.TransactionReportResponse) ([]byte, error)
}
