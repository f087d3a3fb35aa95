package profile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LoadText reads a delimited text profile, one (marker, genotype) per line.
func LoadText(path, name string, opt Options) (*Profile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	return ReadText(file, path, name, opt)
}

func ReadText(r io.Reader, source, name string, opt Options) (*Profile, error) {
	opt = opt.withDefaults(false)

	var reader = csv.NewReader(r)
	reader.Comma = opt.FieldSep
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var p = New(name, source)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var line int
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			return nil, &RowError{p.Name, p.Source, line, "", fmt.Errorf("%w: %w", ErrMalformedRow, err)}
		}
		line, _ := reader.FieldPos(0)
		if err = p.addRow(line, record, opt, true); err != nil {
			return nil, err
		}
	}
	slog.Info("Loaded", "profile", name, "source", source, "markers", p.Len(), "noCalls", len(p.NoCalls))
	return p, nil
}
