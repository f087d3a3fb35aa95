package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"dogParentage/pkg/mendel"
)

func setRows(xlsx *excelize.File, sheet string, title []string, lines [][]any) error {
	if _, err := xlsx.NewSheet(sheet); err != nil {
		return err
	}
	if err := xlsx.SetSheetRow(sheet, "A1", &title); err != nil {
		return err
	}
	for i, line := range lines {
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err = xlsx.SetSheetRow(sheet, cellName, &line); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

// Workbook renders the report as Summary, Marker_Details, Exclusions and
// Missing sheets.
func (r *Report) Workbook() (*excelize.File, error) {
	var (
		xlsx = excelize.NewFile()

		markerLines    [][]any
		exclusionLines [][]any
		missingLines   [][]any
	)
	for _, row := range r.Markers {
		markerLines = append(markerLines, row.line())
		switch row.Tag {
		case mendel.Exclusion:
			exclusionLines = append(exclusionLines, []any{row.Marker, row.Mother, row.Father, row.Offspring, row.Issue()})
		case mendel.MarkerMissing:
			missingLines = append(missingLines, []any{row.Marker, row.Mother, row.Father, row.Offspring, strings.Join(row.MissingIn, ",")})
		}
	}

	for _, sheet := range []struct {
		name  string
		title []string
		lines [][]any
	}{
		{SummarySheet, SummaryTitle, r.SummaryLines()},
		{MarkerSheet, MarkerTitle, markerLines},
		{ExclusionSheet, ExclusionTitle, exclusionLines},
		{MissingSheet, MissingTitle, missingLines},
	} {
		if err := setRows(xlsx, sheet.name, sheet.title, sheet.lines); err != nil {
			xlsx.Close()
			return nil, err
		}
	}
	if err := xlsx.DeleteSheet("Sheet1"); err != nil {
		xlsx.Close()
		return nil, err
	}
	return xlsx, nil
}

func (r *Report) SaveXlsx(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	xlsx, err := r.Workbook()
	if err != nil {
		return err
	}
	defer xlsx.Close()

	slog.Info("SaveAs", "path", path)
	return xlsx.SaveAs(path)
}
