package profile

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"dogParentage/pkg/genotype"
)

var (
	ErrMalformedRow    = errors.New("malformed row")
	ErrDuplicateMarker = errors.New("duplicate marker")
)

// RowError locates a bad input row. Row is 1-based, as a spreadsheet shows it.
type RowError struct {
	Profile string
	Source  string
	Row     int
	Marker  string
	Err     error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s[%s] row %d marker %q: %v", e.Profile, e.Source, e.Row, e.Marker, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Profile maps marker identifier to genotype for one individual.
type Profile struct {
	Name   string
	Source string

	Markers map[string]genotype.Genotype
	// marker order as read
	Order []string
	// markers listed without a genotype
	NoCalls []string
}

func New(name, source string) *Profile {
	return &Profile{
		Name:    name,
		Source:  source,
		Markers: make(map[string]genotype.Genotype),
	}
}

func (p *Profile) Len() int {
	return len(p.Markers)
}

func (p *Profile) Get(marker string) (genotype.Genotype, bool) {
	g, ok := p.Markers[marker]
	return g, ok
}

func (p *Profile) seen(marker string) bool {
	if _, ok := p.Markers[marker]; ok {
		return true
	}
	for _, m := range p.NoCalls {
		if m == marker {
			return true
		}
	}
	return false
}

// Options controls how rows are read from a source.
type Options struct {
	// Sheet of an xlsx source
	Sheet string
	// 1-based columns of marker identifier and genotype
	MarkerCol   int
	GenotypeCol int
	// allele delimiter inside a genotype cell
	AlleleSep string
	// field separator of a delimited text source
	FieldSep rune
	// leading header rows to skip
	Skip int
}

// DefaultSheet is the ISAG export page carrying MarkerID, Location, Genotype.
const DefaultSheet = "DNA Page 3"

func XlsxOptions() Options {
	return Options{
		Sheet:       DefaultSheet,
		MarkerCol:   1,
		GenotypeCol: 3,
		AlleleSep:   genotype.Sep,
	}
}

func TextOptions(fieldSep rune) Options {
	return Options{
		MarkerCol:   1,
		GenotypeCol: 2,
		AlleleSep:   genotype.Sep,
		FieldSep:    fieldSep,
	}
}

func (opt Options) withDefaults(xlsx bool) Options {
	if opt.MarkerCol == 0 {
		opt.MarkerCol = 1
	}
	if opt.GenotypeCol == 0 {
		opt.GenotypeCol = 2
		if xlsx {
			opt.GenotypeCol = 3
		}
	}
	if opt.AlleleSep == "" {
		opt.AlleleSep = genotype.Sep
	}
	if xlsx && opt.Sheet == "" {
		opt.Sheet = DefaultSheet
	}
	if !xlsx && opt.FieldSep == 0 {
		opt.FieldSep = '\t'
	}
	return opt
}

func cell(row []string, col int) string {
	if col < 1 || col > len(row) {
		return ""
	}
	return strings.TrimSpace(row[col-1])
}

// addRows fills p from raw rows, aborting at the first bad row.
func (p *Profile) addRows(rows [][]string, opt Options) error {
	for i, row := range rows {
		if err := p.addRow(i+1, row, opt, false); err != nil {
			return err
		}
	}
	return nil
}

// addRow adds one row. With fieldsRequired a row shorter than the marker or
// genotype column is malformed; otherwise missing trailing cells read as
// empty, as excelize trims them.
func (p *Profile) addRow(rowNum int, row []string, opt Options, fieldsRequired bool) error {
	if rowNum <= opt.Skip {
		return nil
	}
	if fieldsRequired && len(row) < max(opt.MarkerCol, opt.GenotypeCol) {
		return &RowError{p.Name, p.Source, rowNum, cell(row, opt.MarkerCol), fmt.Errorf("%w: %d fields, genotype expected in field %d", ErrMalformedRow, len(row), opt.GenotypeCol)}
	}
	var (
		marker = cell(row, opt.MarkerCol)
		geno   = cell(row, opt.GenotypeCol)
	)
	if marker == "" && geno == "" {
		return nil
	}
	if marker == "" {
		return &RowError{p.Name, p.Source, rowNum, marker, fmt.Errorf("%w: empty marker identifier", ErrMalformedRow)}
	}
	if p.seen(marker) {
		return &RowError{p.Name, p.Source, rowNum, marker, ErrDuplicateMarker}
	}
	if geno == "" {
		slog.Debug("no-call", "profile", p.Name, "row", rowNum, "marker", marker)
		p.NoCalls = append(p.NoCalls, marker)
		return nil
	}
	g, err := genotype.Parse(geno, opt.AlleleSep)
	if err != nil {
		return &RowError{p.Name, p.Source, rowNum, marker, fmt.Errorf("%w: %w", ErrMalformedRow, err)}
	}
	p.Markers[marker] = g
	p.Order = append(p.Order, marker)
	return nil
}

// Load reads path as xlsx or delimited text depending on its extension.
// Zero-valued options fall back to the source's defaults; opt.FieldSep of 0
// picks ',' for .csv and '\t' otherwise.
func Load(path, name string, opt Options) (*Profile, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadXlsx(path, name, opt)
	case ".csv":
		if opt.FieldSep == 0 {
			opt.FieldSep = ','
		}
	}
	return LoadText(path, name, opt)
}
