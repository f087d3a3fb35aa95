package mendel

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/samber/lo"

	"dogParentage/pkg/genotype"
	"dogParentage/pkg/profile"
)

var ErrEmptyIntersection = errors.New("no marker shared by mother, father and offspring")

// LowMarkerWarning is the shared-marker count below which a run is flagged
// as likely using mismatched profile pages.
var LowMarkerWarning = 10

type Tag int

const (
	Consistent Tag = iota
	Exclusion
	MarkerMissing
)

var tagNames = [...]string{
	Consistent:    "CONSISTENT",
	Exclusion:     "EXCLUSION",
	MarkerMissing: "MARKER_MISSING",
}

func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return fmt.Sprintf("Tag(%d)", int(t))
	}
	return tagNames[t]
}

func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// MarkerResult is the verdict for one marker. Genotypes are nil for the
// profiles lacking the marker.
type MarkerResult struct {
	Marker    string
	Tag       Tag
	Mother    *genotype.Genotype
	Father    *genotype.Genotype
	Offspring *genotype.Genotype
	Expected  []genotype.Genotype
	// names of profiles lacking the marker
	MissingIn []string
}

type Summary struct {
	Considered int `json:"considered"`
	Common     int `json:"common"`
	Consistent int `json:"consistent"`
	Exclusions int `json:"exclusions"`
	Missing    int `json:"missing"`
}

// ConsistencyRate is the percentage of shared markers that are consistent.
func (s Summary) ConsistencyRate() float64 {
	if s.Common == 0 {
		return 0
	}
	return float64(s.Consistent) / float64(s.Common) * 100
}

type Comparison struct {
	Results []MarkerResult
	Summary Summary
}

// Exclusions returns the EXCLUSION results in marker order.
func (c *Comparison) Exclusions() []MarkerResult {
	return c.filter(Exclusion)
}

// Missing returns the MARKER_MISSING results in marker order.
func (c *Comparison) Missing() []MarkerResult {
	return c.filter(MarkerMissing)
}

func (c *Comparison) filter(tag Tag) []MarkerResult {
	return lo.Filter(c.Results, func(r MarkerResult, _ int) bool { return r.Tag == tag })
}

func lookup(p *profile.Profile, marker string) *genotype.Genotype {
	g, ok := p.Get(marker)
	if !ok {
		return nil
	}
	return &g
}

// Check tags every marker of the three profiles. Markers absent from any
// profile are MARKER_MISSING and left out of the counts.
func Check(mother, father, offspring *profile.Profile) (*Comparison, error) {
	var markers = lo.Uniq(lo.Flatten([][]string{
		lo.Keys(mother.Markers),
		lo.Keys(father.Markers),
		lo.Keys(offspring.Markers),
		mother.NoCalls,
		father.NoCalls,
		offspring.NoCalls,
	}))
	sort.Strings(markers)

	var cmp = &Comparison{Results: make([]MarkerResult, 0, len(markers))}
	for _, marker := range markers {
		var result = MarkerResult{
			Marker:    marker,
			Mother:    lookup(mother, marker),
			Father:    lookup(father, marker),
			Offspring: lookup(offspring, marker),
		}
		for _, p := range []*profile.Profile{mother, father, offspring} {
			if _, ok := p.Get(marker); !ok {
				result.MissingIn = append(result.MissingIn, p.Name)
			}
		}

		if len(result.MissingIn) > 0 {
			result.Tag = MarkerMissing
			cmp.Summary.Missing++
		} else {
			cmp.Summary.Common++
			result.Expected = genotype.Cross(*result.Mother, *result.Father)
			if genotype.Consistent(*result.Mother, *result.Father, *result.Offspring) {
				result.Tag = Consistent
				cmp.Summary.Consistent++
			} else {
				result.Tag = Exclusion
				cmp.Summary.Exclusions++
				slog.Debug("Exclusion", "marker", marker, "mother", result.Mother, "father", result.Father, "offspring", result.Offspring, "expected", genotype.Join(result.Expected))
			}
		}
		cmp.Results = append(cmp.Results, result)
	}
	cmp.Summary.Considered = len(cmp.Results)

	if cmp.Summary.Common == 0 {
		return nil, fmt.Errorf("%w: %s(%d) %s(%d) %s(%d)", ErrEmptyIntersection,
			mother.Name, mother.Len(), father.Name, father.Len(), offspring.Name, offspring.Len())
	}
	if cmp.Summary.Common < LowMarkerWarning {
		slog.Warn("Very few common markers, profiles may come from different pages", "common", cmp.Summary.Common, "limit", LowMarkerWarning)
	}
	slog.Info("Check", "considered", cmp.Summary.Considered, "common", cmp.Summary.Common, "consistent", cmp.Summary.Consistent, "exclusions", cmp.Summary.Exclusions, "missing", cmp.Summary.Missing)
	return cmp, nil
}
