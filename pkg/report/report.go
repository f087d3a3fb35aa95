package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/samber/lo"

	"dogParentage/pkg/confidence"
	"dogParentage/pkg/genotype"
	"dogParentage/pkg/mendel"
	"dogParentage/pkg/profile"
)

type Individual struct {
	Name    string `json:"name"`
	Source  string `json:"source"`
	Markers int    `json:"markers"`
	NoCalls int    `json:"noCalls"`
}

type Row struct {
	Marker    string     `json:"marker"`
	Mother    string     `json:"mother"`
	Father    string     `json:"father"`
	Offspring string     `json:"offspring"`
	Expected  string     `json:"expected,omitempty"`
	Tag       mendel.Tag `json:"tag"`
	MissingIn []string   `json:"missingIn,omitempty"`
}

// Issue describes an exclusion as expected vs observed.
func (r Row) Issue() string {
	return fmt.Sprintf("Expected: %s, Got: %s", r.Expected, r.Offspring)
}

type Report struct {
	Mother    Individual `json:"mother"`
	Father    Individual `json:"father"`
	Offspring Individual `json:"offspring"`

	Summary         mendel.Summary        `json:"summary"`
	ConsistencyRate float64               `json:"consistencyRate"`
	Category        confidence.Category   `json:"category"`
	Conclusion      confidence.Conclusion `json:"conclusion"`
	Explanation     string                `json:"explanation"`
	Tolerance       confidence.Tolerance  `json:"tolerance"`

	Markers []Row `json:"markers"`
}

func individual(p *profile.Profile) Individual {
	return Individual{
		Name:    p.Name,
		Source:  p.Source,
		Markers: p.Len(),
		NoCalls: len(p.NoCalls),
	}
}

func show(g *genotype.Genotype) string {
	if g == nil {
		return "-"
	}
	return g.String()
}

func New(cmp *mendel.Comparison, mother, father, offspring *profile.Profile) *Report {
	var (
		s = cmp.Summary
		r = &Report{
			Mother:    individual(mother),
			Father:    individual(father),
			Offspring: individual(offspring),

			Summary:         s,
			ConsistencyRate: s.ConsistencyRate(),
			Category:        confidence.Classify(s.Exclusions, s.Consistent),
			Conclusion:      confidence.Conclude(s.Exclusions, s.Consistent),
			Explanation:     confidence.Explain(s.Exclusions, s.Consistent, s.Common),
			Tolerance:       confidence.Tolerate(s.Exclusions),
		}
	)
	r.Markers = lo.Map(cmp.Results, func(m mendel.MarkerResult, _ int) Row {
		return Row{
			Marker:    m.Marker,
			Mother:    show(m.Mother),
			Father:    show(m.Father),
			Offspring: show(m.Offspring),
			Expected:  genotype.Join(m.Expected),
			Tag:       m.Tag,
			MissingIn: m.MissingIn,
		}
	})
	return r
}

func (r *Report) Rows(tag mendel.Tag) []Row {
	return lo.Filter(r.Markers, func(row Row, _ int) bool { return row.Tag == tag })
}

// SummaryLines is the Metric/Value table shared by text and xlsx output.
func (r *Report) SummaryLines() [][]any {
	return [][]any{
		{"Mother", fmt.Sprintf("%s (%s)", r.Mother.Name, r.Mother.Source)},
		{"Father", fmt.Sprintf("%s (%s)", r.Father.Name, r.Father.Source)},
		{"Offspring", fmt.Sprintf("%s (%s)", r.Offspring.Name, r.Offspring.Source)},
		{"Considered Markers", r.Summary.Considered},
		{"Common Markers", r.Summary.Common},
		{"Consistent Markers", r.Summary.Consistent},
		{"Exclusions", r.Summary.Exclusions},
		{"Missing Markers", r.Summary.Missing},
		{"Consistency Rate (%)", fmt.Sprintf("%.1f%%", r.ConsistencyRate)},
		{"Confidence Level", r.Category.String()},
		{"Conclusion", r.Conclusion.String()},
		{"Exclusion Tolerance (advisory)", r.Tolerance.String()},
	}
}

func (row Row) line() []any {
	return []any{row.Marker, row.Mother, row.Father, row.Offspring, row.Expected, row.Tag.String()}
}

// WriteText writes a tab-separated report: summary, per-marker table,
// exclusion details.
func (r *Report) WriteText(w io.Writer) {
	fmtUtil.Fprintf(w, "## Summary\n")
	for _, line := range r.SummaryLines() {
		fmtUtil.Fprintf(w, "%s\t%v\n", line...)
	}

	fmtUtil.Fprintf(w, "\n## Markers\n%s\n", strings.Join(MarkerTitle, "\t"))
	for _, row := range r.Markers {
		fmtUtil.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", row.line()...)
	}

	fmtUtil.Fprintf(w, "\n## %s\n%s\n", r.Conclusion, r.Explanation)

	var exclusions = r.Rows(mendel.Exclusion)
	if len(exclusions) == 0 {
		return
	}
	fmtUtil.Fprintf(w, "\n## Exclusion details (%d markers)\n", len(exclusions))
	for i, row := range exclusions {
		if i == ExclusionShow {
			fmtUtil.Fprintf(w, "... and %d more exclusions\n", len(exclusions)-ExclusionShow)
			break
		}
		fmtUtil.Fprintf(w, "%d. %s\tMother:%s\tFather:%s\tOffspring:%s\t%s\n", i+1, row.Marker, row.Mother, row.Father, row.Offspring, row.Issue())
	}
}

func (r *Report) WriteJSON(w io.Writer) error {
	var encoder = json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}
