package profile

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// LoadXlsx reads one individual's profile from a workbook sheet.
func LoadXlsx(path, name string, opt Options) (*Profile, error) {
	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer xlsx.Close()

	return readXlsx(xlsx, path, name, opt)
}

// ReadXlsx is LoadXlsx over an already open stream.
func ReadXlsx(r io.Reader, source, name string, opt Options) (*Profile, error) {
	xlsx, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", source, err)
	}
	defer xlsx.Close()

	return readXlsx(xlsx, source, name, opt)
}

func readXlsx(xlsx *excelize.File, source, name string, opt Options) (*Profile, error) {
	opt = opt.withDefaults(true)

	rows, err := xlsx.GetRows(opt.Sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: sheet %q of %v: %w", source, opt.Sheet, xlsx.GetSheetList(), err)
	}

	var p = New(name, source)
	if err = p.addRows(rows, opt); err != nil {
		return nil, err
	}
	slog.Info("Loaded", "profile", name, "source", source, "sheet", opt.Sheet, "markers", p.Len(), "noCalls", len(p.NoCalls))
	return p, nil
}
