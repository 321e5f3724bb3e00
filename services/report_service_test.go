package services

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

func reportFixture() *ReportRecord {
	cfg := NewSpringConfiguration()
	cfg.Set("Primary", 4)
	cfg.Set("Secondary Outer", 2)

	visual := BuildDefaultChecklist(activityFixture(), cfg, StatusSatisfactory)
	mustDo := BuildDefaultChecklist(activityFixture(), cfg, StatusDone)

	return &ReportRecord{
		CoachNumber:   "WR-12345",
		CoachCode:     "VB",
		CoachType:     "VB",
		SecondaryType: "Coil Spring",
		Bogie1Number:  "B-101",
		Bogie2Number:  "B-102",
		DateOfReceipt: "2024-01-15T10:30:00",
		InspectorName: "R. Sharma",

		SpringCounts: cfg,

		Bogie1Inspections: visual,
		Bogie2Inspections: visual,
		Bogie1MustDo:      mustDo,
		Bogie2MustDo:      mustDo,

		Bogie1Defects: []DefectItem{
			{SpringType: "Primary", SpringNumber: "3", DefectCode: "CRK", Defect: "Crack", Location: "Left rear"},
		},
		Bogie2Defects: []DefectItem{
			{SpringType: "Secondary Outer", SpringNumber: "1", DefectCode: "COR"},
		},

		SigShop: SignatureMeta{Name: "S. Kumar", Date: "2024-01-16"},
	}
}

func TestRenderInspectionReport(t *testing.T) {
	out, err := RenderInspectionReport(reportFixture(), map[string]string{"COR": "Corrosion"}, nil, nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected document bytes, got none")
	}
	if !bytes.HasPrefix(out, []byte("PK")) {
		t.Fatalf("expected a zip container, got leading bytes %q", out[:2])
	}
}

func TestRenderInspectionReportNoDefects(t *testing.T) {
	rec := reportFixture()
	rec.Bogie1Defects = nil
	rec.Bogie2Defects = nil

	out, err := RenderInspectionReport(rec, nil, nil, nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected document bytes, got none")
	}
}

func TestRenderInspectionReportEmptyConfiguration(t *testing.T) {
	rec := reportFixture()
	rec.SpringCounts = nil
	rec.Bogie1Inspections = nil
	rec.Bogie2Inspections = nil
	rec.Bogie1MustDo = nil
	rec.Bogie2MustDo = nil

	if _, err := RenderInspectionReport(rec, nil, nil, nil); err != nil {
		t.Fatalf("render must tolerate an empty configuration: %v", err)
	}
}

func documentXML(t *testing.T, docBytes []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(docBytes), int64(len(docBytes)))
	if err != nil {
		t.Fatalf("open document container: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open document.xml: %v", err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read document.xml: %v", err)
		}
		return string(data)
	}
	t.Fatal("word/document.xml not found in container")
	return ""
}

func TestRenderNoDefectsNoticeInDocument(t *testing.T) {
	rec := reportFixture()
	rec.Bogie1Defects = nil
	rec.Bogie2Defects = nil

	out, err := RenderInspectionReport(rec, nil, nil, nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(documentXML(t, out), "No defects reported.") {
		t.Fatal("expected the no-defects notice in the document body")
	}
}

func TestRenderEscapesCellText(t *testing.T) {
	rec := reportFixture()
	rec.Bogie1Defects[0].Location = `<script>&"evil"</script>`

	out, err := RenderInspectionReport(rec, nil, nil, nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	xml := documentXML(t, out)
	if strings.Contains(xml, "<script>") {
		t.Fatal("user text leaked into the document as raw markup")
	}
	if !strings.Contains(xml, "&lt;script&gt;") {
		t.Fatal("expected user text to appear escaped in the document body")
	}
}

func TestRenderOrdersBogie1DefectsFirst(t *testing.T) {
	rec := reportFixture()
	rec.Bogie1Defects[0].Location = "LOC-FRONT"
	rec.Bogie2Defects[0].Location = "LOC-REAR"

	out, err := RenderInspectionReport(rec, nil, nil, nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	xml := documentXML(t, out)
	front := strings.Index(xml, "LOC-FRONT")
	rear := strings.Index(xml, "LOC-REAR")
	if front < 0 || rear < 0 {
		t.Fatalf("defect rows missing from document (front=%d rear=%d)", front, rear)
	}
	if front > rear {
		t.Fatal("bogie 1 defect rows must precede bogie 2 rows")
	}
}

func TestRenderInspectionReportBadSignatureImage(t *testing.T) {
	out, err := RenderInspectionReport(reportFixture(), nil, []byte("not an image"), nil)
	if err != nil {
		t.Fatalf("a broken signature image must not fail the render: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected document bytes, got none")
	}
}
