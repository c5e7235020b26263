// Package report renders sensor histories as downloadable documents.
package report

import (
	"fmt"
	"gmao/pkg/domain"
	"gmao/pkg/metrics"
	"gmao/pkg/serrors"
	"io"
	"time"
)

// Format names a document format accepted by the export endpoint.
type Format string

const (
	FormatExcel Format = "excel"
	FormatPDF   Format = "pdf"
)

const (
	checkedMark   = "✔"
	uncheckedMark = "✘"
	timeLayout    = "2006-01-02 15:04"
)

// Renderer writes a sensor history in a single document format.
type Renderer interface {
	Render(w io.Writer, history *domain.SensorHistory) error
	// ContentType is the MIME type of the rendered document.
	ContentType() string
	// Extension is the file extension without the leading dot.
	Extension() string
}

// ParseFormat maps a query value to a Format. Empty selects FormatExcel.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatExcel:
		return FormatExcel, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", serrors.With(serrors.ErrBadRequest, "unsupported export format %q", s)
	}
}

// New returns the renderer for format.
func New(format Format) (Renderer, error) {
	var r Renderer
	switch format {
	case FormatExcel:
		r = xlsxRenderer{}
	case FormatPDF:
		r = pdfRenderer{}
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unsupported export format %q", format)
	}

	return instrumented{Renderer: r, format: string(format)}, nil
}

// Filename is the attachment name of a rendered history.
func Filename(r Renderer, history *domain.SensorHistory) string {
	return fmt.Sprintf("history_%s.%s", history.SensorID, r.Extension())
}

type instrumented struct {
	Renderer

	format string
}

func (i instrumented) Render(w io.Writer, history *domain.SensorHistory) error {
	start := time.Now()
	err := i.Renderer.Render(w, history)
	metrics.ReportRenderSeconds.WithLabelValues(i.format).Observe(time.Since(start).Seconds())
	if err == nil {
		metrics.HistoryExports.WithLabelValues(i.format).Inc()
	}

	return err //nolint: wrapcheck
}

func mark(checked bool) string {
	if checked {
		return checkedMark
	}

	return uncheckedMark
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(timeLayout)
}
