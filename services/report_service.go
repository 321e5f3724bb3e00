package services

import (
	"bytes"
	"fmt"

	"gitee.com/gooffice/gooffice/common"
	"gitee.com/gooffice/gooffice/document"
	"gitee.com/gooffice/gooffice/measurement"
	"gitee.com/gooffice/gooffice/schema/soo/wml"
	"github.com/railcoach/SpringShop/WordGenerator"
	"github.com/railcoach/SpringShop/config"
	"github.com/railcoach/SpringShop/methods"
)

// SignatureMeta is the text part of one signer slot
type SignatureMeta struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// ReportRecord aggregates everything the document assembler consumes.
// Built fresh per request, never mutated after assembly.
type ReportRecord struct {
	CoachNumber   string `json:"coach_number"`
	CoachCode     string `json:"coach_code"`
	CoachType     string `json:"coach_type"`
	SecondaryType string `json:"secondary_type"`
	Bogie1Number  string `json:"bogie1_number"`
	Bogie2Number  string `json:"bogie2_number"`
	DateOfReceipt string `json:"date_of_receipt"`
	InspectorID   int64  `json:"inspector_id"`
	InspectorName string `json:"inspector_name"`

	SpringCounts *SpringConfiguration `json:"-"`

	Bogie1Inspections []InspectionRow `json:"bogie1_inspections"`
	Bogie2Inspections []InspectionRow `json:"bogie2_inspections"`
	Bogie1MustDo      []InspectionRow `json:"bogie1_must_do"`
	Bogie2MustDo      []InspectionRow `json:"bogie2_must_do"`

	Bogie1Defects []DefectItem `json:"bogie1_defects"`
	Bogie2Defects []DefectItem `json:"bogie2_defects"`

	SigShop SignatureMeta `json:"sig_shop"`
	SigIns  SignatureMeta `json:"sig_ins"`
}

// page geometry, landscape A4 with 12mm margins
const (
	pageContentWidth = 260 // mm
	activityColWidth = 80  // mm
	remarksColWidth  = 40  // mm
)

// RenderInspectionReport assembles the printable inspection report and returns
// the complete document bytes. Either the whole document is returned or an
// error; there is no partial output. Signature image failures are absorbed
// and only drop the image slot.
func RenderInspectionReport(rec *ReportRecord, codeToName map[string]string, sigShop []byte, sigIns []byte) ([]byte, error) {
	doc := document.New()
	defer doc.Close()

	section := doc.BodySection()
	section.SetPageSizeAndOrientation(297*measurement.Millimeter, 210*measurement.Millimeter, wml.ST_PageOrientationLandscape)
	section.SetPageMargins(
		12*measurement.Millimeter, 12*measurement.Millimeter,
		12*measurement.Millimeter, 12*measurement.Millimeter,
		10*measurement.Millimeter, 10*measurement.Millimeter,
		0)

	WordGenerator.AddTitle(doc, "SPRING INSPECTION REPORT")
	doc.AddParagraph()

	renderCoachInfo(doc, rec)
	doc.AddParagraph()

	if rec.SpringCounts != nil && rec.SpringCounts.Len() > 0 {
		renderSpringConfig(doc, rec.SpringCounts)
		doc.AddParagraph()
	}

	renderDefects(doc, rec, codeToName)
	doc.AddParagraph()

	cfg := rec.SpringCounts
	if cfg == nil {
		cfg = NewSpringConfiguration()
	}
	renderChecklistTable(doc, "Visual Inspection - Bogie 1", rec.Bogie1Inspections, cfg)
	renderChecklistTable(doc, "Visual Inspection - Bogie 2", rec.Bogie2Inspections, cfg)
	renderChecklistTable(doc, "Must Do - Bogie 1", rec.Bogie1MustDo, cfg)
	renderChecklistTable(doc, "Must Do - Bogie 2", rec.Bogie2MustDo, cfg)

	doc.AddParagraph()
	renderSignatures(doc, rec, sigShop, sigIns)

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, fmt.Errorf("save report document: %w", err)
	}
	return buf.Bytes(), nil
}

// coach identity block as a 4-column label/value grid
func renderCoachInfo(doc *document.Document, rec *ReportRecord) {
	receipt := rec.DateOfReceipt
	if len(receipt) > 10 {
		receipt = receipt[:10]
	}

	table := WordGenerator.NewBorderedTable(doc)
	labelW := measurement.Distance(30 * measurement.Millimeter)
	valueW := measurement.Distance(70 * measurement.Millimeter)

	rows := [][4]string{
		{"Coach Number:", rec.CoachNumber, "Coach Code:", rec.CoachCode},
		{"Coach Type:", rec.CoachType, "Secondary Type:", rec.SecondaryType},
		{"Bogie 1 No.:", rec.Bogie1Number, "Bogie 2 No.:", rec.Bogie2Number},
		{"Date of Receipt:", receipt, "Inspector:", rec.InspectorName},
	}
	for _, r := range rows {
		row := table.AddRow()
		WordGenerator.BoldCell(row, r[0], labelW)
		WordGenerator.TextCell(row, WordGenerator.CellText(r[1]), valueW)
		WordGenerator.BoldCell(row, r[2], labelW)
		WordGenerator.TextCell(row, WordGenerator.CellText(r[3]), valueW)
	}
}

func renderSpringConfig(doc *document.Document, cfg *SpringConfiguration) {
	WordGenerator.AddSectionHeading(doc, "Spring Configuration")

	table := WordGenerator.NewBorderedTable(doc)
	nameW := measurement.Distance(110 * measurement.Millimeter)
	qtyW := measurement.Distance(30 * measurement.Millimeter)

	header := table.AddRow()
	WordGenerator.HeaderCell(header, "Spring Type", nameW)
	WordGenerator.HeaderCell(header, "Qty / Bogie", qtyW)

	for _, name := range cfg.Names() {
		count, _ := cfg.Get(name)
		row := table.AddRow()
		WordGenerator.TextCell(row, WordGenerator.CellText(name), nameW)
		WordGenerator.TextCell(row, fmt.Sprintf("%d per bogie", count), qtyW)
	}
}

func defectDisplay(item DefectItem, codeToName map[string]string) string {
	if item.Defect != "" {
		return item.Defect
	}
	if name, ok := codeToName[item.DefectCode]; ok {
		return name
	}
	return item.DefectCode
}

// defects summary: counts, then one combined table (all bogie 1 rows first)
func renderDefects(doc *document.Document, rec *ReportRecord, codeToName map[string]string) {
	b1 := rec.Bogie1Defects
	b2 := rec.Bogie2Defects

	bogie1Label := rec.Bogie1Number
	if bogie1Label == "" {
		bogie1Label = "Bogie 1"
	}
	bogie2Label := rec.Bogie2Number
	if bogie2Label == "" {
		bogie2Label = "Bogie 2"
	}

	WordGenerator.AddSectionHeading(doc, "Defects Summary")
	WordGenerator.AddText(doc, fmt.Sprintf("Bogie1: %d    Bogie2: %d    Total: %d", len(b1), len(b2), len(b1)+len(b2)), false)

	if len(b1)+len(b2) == 0 {
		WordGenerator.AddItalicText(doc, "No defects reported.")
		return
	}

	table := WordGenerator.NewBorderedTable(doc)
	widths := []measurement.Distance{
		25 * measurement.Millimeter,
		50 * measurement.Millimeter,
		25 * measurement.Millimeter,
		60 * measurement.Millimeter,
		40 * measurement.Millimeter,
	}

	header := table.AddRow()
	for i, title := range []string{"Bogie", "Spring Type", "Spring No.", "Defect Type", "Location"} {
		WordGenerator.HeaderCell(header, title, widths[i])
	}

	addRows := func(items []DefectItem, label string) {
		for _, item := range items {
			row := table.AddRow()
			WordGenerator.TextCell(row, WordGenerator.CellText(label), widths[0])
			WordGenerator.TextCell(row, WordGenerator.CellText(item.SpringType), widths[1])
			WordGenerator.TextCell(row, WordGenerator.CellText(item.SpringNumber), widths[2])
			WordGenerator.TextCell(row, WordGenerator.CellText(defectDisplay(item, codeToName)), widths[3])
			WordGenerator.TextCell(row, WordGenerator.CellText(item.Location), widths[4])
		}
	}
	addRows(b1, bogie1Label)
	addRows(b2, bogie2Label)
}

// one checklist table: Activity | one column per spring position | Remarks.
// Activity and remarks widths are fixed, the rest of the page width is split
// evenly over the position columns (at least one column assumed).
func renderChecklistTable(doc *document.Document, title string, rows []InspectionRow, cfg *SpringConfiguration) {
	WordGenerator.AddSectionHeading(doc, title)

	names := cfg.Names()
	springCols := len(names)
	if springCols < 1 {
		springCols = 1
	}
	springW := measurement.Distance(pageContentWidth-activityColWidth-remarksColWidth) * measurement.Millimeter / measurement.Distance(springCols)
	actW := measurement.Distance(activityColWidth * measurement.Millimeter)
	remW := measurement.Distance(remarksColWidth * measurement.Millimeter)

	table := WordGenerator.NewBorderedTable(doc)
	header := table.AddRow()
	WordGenerator.HeaderCell(header, "Activity", actW)
	for _, name := range names {
		WordGenerator.HeaderCell(header, name, springW)
	}
	WordGenerator.HeaderCell(header, "Remarks", remW)

	for _, r := range rows {
		row := table.AddRow()
		WordGenerator.TextCell(row, WordGenerator.CellText(r.Activity), actW)
		for _, name := range names {
			WordGenerator.TextCell(row, WordGenerator.CellText(r.Answers[methods.PositionKey(name)]), springW)
		}
		WordGenerator.TextCell(row, WordGenerator.CellText(r.Remarks), remW)
	}
	doc.AddParagraph()
}

const signaturePlaceholder = "__________________"

func orPlaceholder(s string) string {
	if s == "" {
		return signaturePlaceholder
	}
	return s
}

func renderSignatures(doc *document.Document, rec *ReportRecord, sigShop []byte, sigIns []byte) {
	WordGenerator.AddSectionHeading(doc, "Signatures")

	labelW := measurement.Distance(50 * measurement.Millimeter)
	valueW := measurement.Distance(70 * measurement.Millimeter)

	table := doc.AddTable()
	table.Properties().SetAlignment(wml.ST_JcTableLeft)
	table.Properties().SetWidthPercent(100)

	row := table.AddRow()
	WordGenerator.BoldCell(row, "Prepared By (SSE SPRING SHOP)", labelW)
	WordGenerator.TextCell(row, "", valueW)
	WordGenerator.BoldCell(row, "Checked By (SSE / INSPECTION)", labelW)
	WordGenerator.TextCell(row, "", valueW)

	row = table.AddRow()
	WordGenerator.TextCell(row, "Name & Signature:", labelW)
	WordGenerator.TextCell(row, orPlaceholder(rec.SigShop.Name), valueW)
	WordGenerator.TextCell(row, "Name & Signature:", labelW)
	WordGenerator.TextCell(row, orPlaceholder(rec.SigIns.Name), valueW)

	row = table.AddRow()
	WordGenerator.TextCell(row, "Date:", labelW)
	WordGenerator.TextCell(row, orPlaceholder(rec.SigShop.Date), valueW)
	WordGenerator.TextCell(row, "Date:", labelW)
	WordGenerator.TextCell(row, orPlaceholder(rec.SigIns.Date), valueW)

	if len(sigShop) == 0 && len(sigIns) == 0 {
		return
	}

	doc.AddParagraph()
	imgTable := doc.AddTable()
	imgTable.Properties().SetAlignment(wml.ST_JcTableLeft)
	imgTable.Properties().SetWidthPercent(100)
	imgRow := imgTable.AddRow()
	addSignatureImageCell(doc, imgRow, sigShop, labelW)
	WordGenerator.TextCell(imgRow, "", valueW)
	addSignatureImageCell(doc, imgRow, sigIns, labelW)
	WordGenerator.TextCell(imgRow, "", valueW)
}

// addSignatureImageCell embeds one signature image; on failure the slot is
// left blank and assembly carries on
func addSignatureImageCell(doc *document.Document, row document.Row, data []byte, width measurement.Distance) {
	cell := row.AddCell()
	cell.Properties().SetWidth(width)
	para := cell.AddParagraph()
	if len(data) == 0 {
		return
	}

	img, err := common.ImageFromBytes(data)
	if err != nil {
		config.Log.Warnw("Skipping signature image", "error", err)
		return
	}
	imgRef, err := doc.AddImage(img)
	if err != nil {
		config.Log.Warnw("Skipping signature image", "error", err)
		return
	}
	run := para.AddRun()
	inline, err := run.AddDrawingInline(imgRef)
	if err != nil {
		config.Log.Warnw("Skipping signature image", "error", err)
		return
	}
	inline.SetSize(45*measurement.Millimeter, 20*measurement.Millimeter)
}
