package ports

import (
	"io"

	"go.trai.ch/keydiff/internal/core/domain"
)

// ReportRenderer presents a drift report to the user.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type ReportRenderer interface {
	// Render writes report to w in the given format.
	Render(w io.Writer, report *domain.Report, format domain.OutputFormat) error
}
