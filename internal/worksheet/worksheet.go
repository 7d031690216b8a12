// Package worksheet assembles printable PDFs from question manifests: exam
// style worksheets with an answer key, and cut-out flashcards. Records come
// straight from manifest files or bank exports; figures referenced by a
// record are embedded when the image directory is supplied.
package worksheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/abhisek/geometriq/internal/geometry"
	"github.com/abhisek/geometriq/internal/manifest"
	"github.com/abhisek/geometriq/internal/quizgen"
)

// Indigo, the accent used by the product's printed material.
const (
	accentR = 75
	accentG = 0
	accentB = 130
)

const (
	lineH   = 5.5 // body line height in mm
	numW    = 9.0 // width of the question number column
	figureW = 32.0
)

// Options configures worksheet assembly.
type Options struct {
	// Title is printed on the cover. Empty falls back to a stock title.
	Title string
	// ImageDir is the directory record image paths resolve against,
	// usually the manifest's directory. Empty omits figures.
	ImageDir string
}

// Write lays records out as an A4 worksheet at path: a cover with a
// contents table, the numbered questions with their options, and an answer
// key on a trailing page.
func Write(path string, records []manifest.Record, opts Options) error {
	if len(records) == 0 {
		return errors.New("worksheet: no questions")
	}
	title := opts.Title
	if title == "" {
		title = "Geometry Practice"
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 18)

	writeCover(pdf, tr, title, records)

	pdf.AddPage()
	heading(pdf, "Questions")
	for i, rec := range records {
		writeQuestion(pdf, tr, i+1, rec, opts.ImageDir)
	}

	writeAnswerKey(pdf, records)
	return save(pdf, path)
}

func writeCover(pdf *fpdf.Fpdf, tr func(string) string, title string, records []manifest.Record) {
	pdf.AddPage()
	left, _, right, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - left - right

	pdf.Ln(28)
	pdf.SetTextColor(accentR, accentG, accentB)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(contentW, 14, tr(title), "", 1, "C", false, 0, "")
	pdf.SetTextColor(90, 90, 90)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 7, "Multiple-choice geometry questions", "", 1, "C", false, 0, "")

	pdf.Ln(6)
	pdf.SetDrawColor(accentR, accentG, accentB)
	pdf.SetLineWidth(0.6)
	y := pdf.GetY()
	pdf.Line(left, y, left+contentW, y)
	pdf.Ln(12)

	pdf.SetTextColor(accentR, accentG, accentB)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 9, "Contents", "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 11)

	stats := manifest.Summarize(records)
	for _, shape := range geometry.AllShapes() {
		n := stats.ByShape[string(shape)]
		if n == 0 {
			continue
		}
		pdf.CellFormat(contentW-30, 7, displayShape(shape), "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, strconv.Itoa(n), "", 1, "R", false, 0, "")
	}
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW-30, 7, "Total questions", "", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, strconv.Itoa(stats.Total), "", 1, "R", false, 0, "")
}

// writeQuestion prints one numbered question with its options on a single
// line, keeping the whole block on one page. The figure, when available,
// sits to the right of the text.
func writeQuestion(pdf *fpdf.Fpdf, tr func(string) string, idx int, rec manifest.Record, imageDir string) {
	left, _, right, bottom := pdf.GetMargins()
	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - left - right

	imgPath := ""
	if imageDir != "" && rec.Image != "" {
		p := filepath.Join(imageDir, filepath.FromSlash(rec.Image))
		if _, err := os.Stat(p); err == nil {
			imgPath = p
		}
	}
	textW := contentW - numW
	if imgPath != "" {
		textW -= figureW + 5
	}

	pdf.SetFont("Helvetica", "", 11)
	lines := pdf.SplitText(tr(rec.Question), textW)
	blockH := float64(len(lines))*lineH + 12
	if imgPath != "" && blockH < figureW {
		blockH = figureW
	}
	if pdf.GetY()+blockH > pageH-bottom {
		pdf.AddPage()
	}
	y0 := pdf.GetY()

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(numW, lineH, fmt.Sprintf("%d.", idx), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(textW, lineH, tr(rec.Question), "", "L", false)

	pdf.SetX(left + numW)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(textW, 6, tr(optionsLine(rec)), "", 1, "L", false, 0, "")

	if imgPath != "" {
		// Figures are square, so the drawn height equals figureW.
		pdf.ImageOptions(imgPath, left+contentW-figureW, y0, figureW, 0, false,
			fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		if pdf.GetY() < y0+figureW {
			pdf.SetY(y0 + figureW)
		}
	}
	pdf.Ln(4)
}

func writeAnswerKey(pdf *fpdf.Fpdf, records []manifest.Record) {
	left, _, right, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - left - right

	pdf.AddPage()
	heading(pdf, "Answer Key")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetDrawColor(180, 180, 180)
	pdf.SetLineWidth(0.2)

	const cols = 5
	cellW := contentW / cols
	for i, rec := range records {
		ln := 0
		if (i+1)%cols == 0 {
			ln = 1
		}
		pdf.CellFormat(cellW, 8, fmt.Sprintf("%d. %s", i+1, rec.Answer), "1", ln, "C", false, 0, "")
	}
}

func heading(pdf *fpdf.Fpdf, text string) {
	pdf.SetTextColor(accentR, accentG, accentB)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, text, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(2)
}

func optionsLine(r manifest.Record) string {
	parts := make([]string, 0, len(quizgen.Labels))
	for _, label := range quizgen.Labels {
		if v, ok := r.Options[label]; ok {
			parts = append(parts, label+". "+v)
		}
	}
	return strings.Join(parts, "    ")
}

func displayShape(s geometry.Shape) string {
	return strings.ReplaceAll(string(s), "_", " ")
}

func save(pdf *fpdf.Fpdf, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("worksheet: create dir: %w", err)
		}
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("worksheet: write %s: %w", path, err)
	}
	return nil
}
