package artifact

import (
	"fmt"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

// ConvertHTMLToPDF converts a rendered HTML artifact to a paged PDF
// with wkhtmltopdf. binPath overrides the PATH lookup when set. There
// is no fallback renderer: a missing binary or failed conversion is a
// fatal error for the run.
func ConvertHTMLToPDF(htmlPath, pdfPath, binPath string) error {
	if binPath != "" {
		wkhtmltopdf.SetPath(binPath)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return fmt.Errorf("failed to initialize wkhtmltopdf: %w", err)
	}
	pdfg.Orientation.Set(wkhtmltopdf.OrientationLandscape)
	pdfg.AddPage(wkhtmltopdf.NewPage(htmlPath))

	if err := pdfg.Create(); err != nil {
		return fmt.Errorf("failed to convert %s: %w", htmlPath, err)
	}
	if err := pdfg.WriteFile(pdfPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", pdfPath, err)
	}
	return nil
}
