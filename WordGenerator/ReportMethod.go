package WordGenerator

import (
	"encoding/json"
	"fmt"

	"gitee.com/gooffice/gooffice/color"
	"gitee.com/gooffice/gooffice/document"
	"gitee.com/gooffice/gooffice/measurement"
	"gitee.com/gooffice/gooffice/schema/soo/wml"
)

// report title, centered
func AddTitle(doc *document.Document, text string) {
	para := doc.AddParagraph()
	para.Properties().SetAlignment(wml.ST_JcCenter)
	run := para.AddRun()
	run.Properties().SetSize(16)
	run.Properties().SetBold(true)
	run.AddText(text)
}

// section heading
func AddSectionHeading(doc *document.Document, text string) {
	para := doc.AddParagraph()
	run := para.AddRun()
	run.Properties().SetSize(11)
	run.Properties().SetBold(true)
	run.AddText(text)
}

// body text
func AddText(doc *document.Document, text string, iscenter bool) {
	para := doc.AddParagraph()
	if iscenter {
		para.Properties().SetAlignment(wml.ST_JcCenter)
	}
	run := para.AddRun()
	run.Properties().SetSize(9)
	run.AddText(text)
}

func AddItalicText(doc *document.Document, text string) {
	para := doc.AddParagraph()
	run := para.AddRun()
	run.Properties().SetSize(9)
	run.Properties().SetItalic(true)
	run.AddText(text)
}

// NewBorderedTable full-width table with single borders
func NewBorderedTable(doc *document.Document) document.Table {
	table := doc.AddTable()
	table.Properties().SetAlignment(wml.ST_JcTableLeft)
	table.Properties().SetWidthPercent(100)
	borders := table.Properties().Borders()
	borders.SetAll(wml.ST_BorderSingle, color.Auto, 1*measurement.Point)
	return table
}

// HeaderCell bold centered header cell with fixed width
func HeaderCell(row document.Row, text string, width measurement.Distance) {
	cell := row.AddCell()
	cell.Properties().SetWidth(width)
	cell.Properties().SetVerticalAlignment(wml.ST_VerticalJcCenter)
	Paragraph := cell.AddParagraph()
	Paragraph.Properties().SetAlignment(wml.ST_JcCenter)
	run := Paragraph.AddRun()
	run.Properties().SetBold(true)
	run.Properties().SetSize(9)
	run.AddText(text)
}

// TextCell plain cell with fixed width
func TextCell(row document.Row, text string, width measurement.Distance) {
	cell := row.AddCell()
	cell.Properties().SetWidth(width)
	cell.Properties().SetVerticalAlignment(wml.ST_VerticalJcCenter)
	Paragraph := cell.AddParagraph()
	run := Paragraph.AddRun()
	run.Properties().SetSize(9)
	run.AddText(text)
}

// BoldCell bold left-aligned cell, used for label columns
func BoldCell(row document.Row, text string, width measurement.Distance) {
	cell := row.AddCell()
	cell.Properties().SetWidth(width)
	cell.Properties().SetVerticalAlignment(wml.ST_VerticalJcCenter)
	Paragraph := cell.AddParagraph()
	run := Paragraph.AddRun()
	run.Properties().SetBold(true)
	run.Properties().SetSize(9)
	run.AddText(text)
}

// CellText stringifies a value for safe cell insertion; structured values are
// serialized to readable JSON so raw data never leaks into the page markup
func CellText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case map[string]interface{}, []interface{}, map[string]string, []string:
		data, err := json.MarshalIndent(t, "", " ")
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(data)
	default:
		return fmt.Sprintf("%v", t)
	}
}
