package worksheet

import (
	"errors"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/abhisek/geometriq/internal/manifest"
)

// Card grid geometry on A4. Ten cards per page, two columns by five rows,
// sized so the sheet cuts into playing-card sized pieces.
const (
	cardCols = 2
	cardRows = 5
	cardW    = 88.0
	cardH    = 51.0
	cardGapX = 6.0
	cardGapY = 4.0
)

// cardFills rotate per card: light blue, green, red, yellow, cyan, magenta,
// grey, orange, periwinkle and mint.
var cardFills = [][3]int{
	{230, 230, 255},
	{230, 255, 230},
	{255, 230, 230},
	{255, 255, 204},
	{230, 255, 255},
	{255, 230, 255},
	{242, 242, 242},
	{255, 217, 204},
	{204, 230, 255},
	{217, 255, 217},
}

// WriteFlashcards lays records out as cut-out study cards at path. Question
// fronts fill fixed grid pages; the answers follow on their own pages so
// printed sheets separate cleanly.
func WriteFlashcards(path string, records []manifest.Record, title string) error {
	if len(records) == 0 {
		return errors.New("worksheet: no questions")
	}
	if title == "" {
		title = "Geometry Flashcards"
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.SetAutoPageBreak(false, 0)

	pageW, pageH := pdf.GetPageSize()
	marginX := (pageW - (cardCols*cardW + (cardCols-1)*cardGapX)) / 2
	marginY := (pageH - (cardRows*cardH + (cardRows-1)*cardGapY)) / 2

	perPage := cardCols * cardRows
	for i, rec := range records {
		slot := i % perPage
		if slot == 0 {
			pdf.AddPage()
		}
		col := slot % cardCols
		row := slot / cardCols
		x := marginX + float64(col)*(cardW+cardGapX)
		y := marginY + float64(row)*(cardH+cardGapY)
		drawCard(pdf, tr, i, rec, x, y)
	}

	writeCardAnswers(pdf, tr, records)
	return save(pdf, path)
}

func drawCard(pdf *fpdf.Fpdf, tr func(string) string, idx int, rec manifest.Record, x, y float64) {
	fill := cardFills[idx%len(cardFills)]
	pdf.SetFillColor(fill[0], fill[1], fill[2])
	pdf.SetDrawColor(110, 110, 110)
	pdf.SetLineWidth(0.3)
	pdf.SetDashPattern([]float64{1.2, 1.2}, 0)
	pdf.Rect(x, y, cardW, cardH, "FD")
	pdf.SetDashPattern([]float64{}, 0)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(x, y+3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(cardW, 6, fmt.Sprintf("Q%d", idx+1), "", 1, "C", false, 0, "")

	pdf.SetXY(x+4, y+11)
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(cardW-8, 4.5, tr(rec.Question), "", "C", false)

	pdf.SetXY(x+4, y+cardH-17)
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(cardW-8, 5, tr(optionsLine(rec)), "", 1, "C", false, 0, "")

	pdf.SetXY(x+4, y+cardH-7)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(cardW-8, 4, string(rec.Difficulty), "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func writeCardAnswers(pdf *fpdf.Fpdf, tr func(string) string, records []manifest.Record) {
	left, _, right, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - left - right

	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	heading(pdf, "Answers and Details")

	for i, rec := range records {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(14, 6, fmt.Sprintf("Q%d", i+1), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		answer := rec.Answer
		if v, ok := rec.CorrectValue(); ok {
			answer = rec.Answer + ". " + v
		}
		pdf.CellFormat(contentW-14, 6, tr("Answer: "+answer), "", 1, "L", false, 0, "")

		pdf.SetTextColor(110, 110, 110)
		pdf.SetFont("Helvetica", "", 9)
		detail := fmt.Sprintf("%s, %s, %s", displayShape(rec.Shape), rec.Kind, rec.Difficulty)
		pdf.SetX(left + 14)
		pdf.CellFormat(contentW-14, 5, tr(detail), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)

		pdf.SetDrawColor(200, 200, 200)
		pdf.SetLineWidth(0.2)
		y := pdf.GetY() + 1
		pdf.Line(left, y, left+contentW, y)
		pdf.Ln(4)
	}
}
