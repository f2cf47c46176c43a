// Package console renders drift reports for the terminal and for machines.
package console

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/muesli/termenv"
	"go.trai.ch/keydiff/internal/adapters/detector"
	"go.trai.ch/keydiff/internal/core/domain"
	"go.trai.ch/keydiff/internal/core/ports"
	"go.trai.ch/keydiff/internal/ui/output"
	"go.trai.ch/keydiff/internal/ui/style"
	"go.trai.ch/zerr"
)

var _ ports.ReportRenderer = (*Renderer)(nil)

// Renderer implements ports.ReportRenderer.
type Renderer struct {
	profile func(io.Writer) termenv.Profile
}

// NewRenderer creates a Renderer that picks colors from the environment of each writer.
func NewRenderer() *Renderer {
	return &Renderer{profile: detector.ColorProfile}
}

// NewRendererWithProfile creates a Renderer that always uses profile.
func NewRendererWithProfile(profile termenv.Profile) *Renderer {
	return &Renderer{profile: func(io.Writer) termenv.Profile { return profile }}
}

// jsonReport is the machine-readable form of a report.
type jsonReport struct {
	Drift       bool                 `json:"drift"`
	Fingerprint string               `json:"fingerprint"`
	Files       []domain.ReportEntry `json:"files"`
}

// Render writes report to w.
func (r *Renderer) Render(w io.Writer, report *domain.Report, format domain.OutputFormat) error {
	var err error
	switch format {
	case domain.FormatJSON:
		err = renderJSON(w, report)
	case domain.FormatText, "":
		err = r.renderText(w, report)
	default:
		return zerr.With(zerr.Wrap(domain.ErrInvalidOutputFormat, "cannot render report"), "output", string(format))
	}

	if err != nil {
		return zerr.Wrap(domain.ErrReportRenderFailed, err.Error())
	}
	return nil
}

func renderJSON(w io.Writer, report *domain.Report) error {
	doc := jsonReport{
		Drift:       report.HasDrift(),
		Fingerprint: report.Fingerprint(),
		Files:       report.Entries(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func (r *Renderer) renderText(w io.Writer, report *domain.Report) error {
	out := output.NewWithProfile(w, r.profile(w))
	buf := bufio.NewWriter(w)

	if !report.HasDrift() {
		line := out.String(style.Check + " No differences found in files").
			Foreground(termenv.RGBColor(string(style.Clean)))
		_, _ = buf.WriteString(line.String() + "\n")
		return buf.Flush()
	}

	header := out.String(style.Cross + " Differences found in the following files:").
		Foreground(termenv.RGBColor(string(style.Drift)))
	_, _ = buf.WriteString(header.String() + "\n")

	for _, entry := range report.Entries() {
		_, _ = buf.WriteString(out.String(entry.Path).Bold().Foreground(termenv.RGBColor(string(style.FilePath))).String() + "\n")
		for _, key := range entry.MissingKeys {
			bullet := out.String("  - " + key).Foreground(termenv.RGBColor(string(style.MissingKey)))
			_, _ = buf.WriteString(bullet.String() + "\n")
		}
	}

	return buf.Flush()
}
