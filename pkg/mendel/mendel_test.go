package mendel

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dogParentage/pkg/genotype"
	"dogParentage/pkg/profile"
)

func newProfile(name string, markers map[string]string) *profile.Profile {
	var p = profile.New(name, "test")
	for marker, geno := range markers {
		g, err := genotype.Parse(geno, genotype.Sep)
		if err != nil {
			panic(err)
		}
		p.Markers[marker] = g
		p.Order = append(p.Order, marker)
	}
	return p
}

func TestCheck(t *testing.T) {
	var (
		mother    = newProfile("Mother", map[string]string{"M1": "A/G", "M2": "A/G", "M3": "A/A", "M4": "C/T", "M5": "A/G"})
		father    = newProfile("Father", map[string]string{"M1": "T/T", "M2": "T/T", "M3": "A/A", "M4": "C/C"})
		offspring = newProfile("Offspring", map[string]string{"M1": "T/A", "M2": "A/A", "M3": "A/A", "M4": "C/T", "M6": "G/G"})
	)

	cmp, err := Check(mother, father, offspring)
	require.NoError(t, err)

	var tags = make(map[string]Tag)
	for _, r := range cmp.Results {
		tags[r.Marker] = r.Tag
	}
	assert.Equal(t, map[string]Tag{
		"M1": Consistent,
		"M2": Exclusion,
		"M3": Consistent,
		"M4": Consistent,
		"M5": MarkerMissing,
		"M6": MarkerMissing,
	}, tags)

	assert.Equal(t, Summary{Considered: 6, Common: 4, Consistent: 3, Exclusions: 1, Missing: 2}, cmp.Summary)
	assert.InDelta(t, 75.0, cmp.Summary.ConsistencyRate(), 1e-9)

	var markers []string
	for _, r := range cmp.Results {
		markers = append(markers, r.Marker)
	}
	assert.Equal(t, []string{"M1", "M2", "M3", "M4", "M5", "M6"}, markers)

	require.Len(t, cmp.Exclusions(), 1)
	var excl = cmp.Exclusions()[0]
	assert.Equal(t, "M2", excl.Marker)
	assert.Equal(t, []genotype.Genotype{{"A", "T"}, {"G", "T"}}, excl.Expected)

	var missing = cmp.Missing()
	require.Len(t, missing, 2)
	assert.Equal(t, []string{"Father", "Offspring"}, missing[0].MissingIn)
	assert.Nil(t, missing[0].Father)
	assert.Equal(t, []string{"Mother", "Father"}, missing[1].MissingIn)
}

func TestCheckExamples(t *testing.T) {
	var tests = []struct {
		mother, father, offspring string
		want                      Tag
	}{
		{"A/G", "T/T", "A/T", Consistent},
		{"A/G", "T/T", "G/T", Consistent},
		{"A/G", "T/T", "A/A", Exclusion},
		{"A/G", "T/T", "T/T", Exclusion},
		{"A/A", "A/A", "A/A", Consistent},
		{"A/A", "A/A", "A/G", Exclusion},
		{"A/A", "A/A", "G/G", Exclusion},
	}
	for _, tt := range tests {
		cmp, err := Check(
			newProfile("Mother", map[string]string{"M": tt.mother}),
			newProfile("Father", map[string]string{"M": tt.father}),
			newProfile("Offspring", map[string]string{"M": tt.offspring}),
		)
		require.NoError(t, err)
		require.Len(t, cmp.Results, 1)
		assert.Equal(t, tt.want, cmp.Results[0].Tag, "%s x %s -> %s", tt.mother, tt.father, tt.offspring)
	}
}

func TestCheckNoCall(t *testing.T) {
	var (
		mother    = newProfile("Mother", map[string]string{"M1": "A/G"})
		father    = newProfile("Father", map[string]string{"M1": "A/A"})
		offspring = newProfile("Offspring", map[string]string{"M1": "A/A"})
	)
	offspring.NoCalls = []string{"M2"}
	mother.NoCalls = []string{"M2"}

	cmp, err := Check(mother, father, offspring)
	require.NoError(t, err)
	require.Len(t, cmp.Results, 2)
	assert.Equal(t, MarkerMissing, cmp.Results[1].Tag)
	assert.Equal(t, []string{"Mother", "Father", "Offspring"}, cmp.Results[1].MissingIn)
	assert.Equal(t, 1, cmp.Summary.Missing)
}

func TestCheckEmptyIntersection(t *testing.T) {
	_, err := Check(
		newProfile("Mother", map[string]string{"M1": "A/G"}),
		newProfile("Father", map[string]string{"M2": "A/G"}),
		newProfile("Offspring", map[string]string{"M1": "A/G", "M2": "A/A"}),
	)
	require.ErrorIs(t, err, ErrEmptyIntersection)
	assert.Contains(t, err.Error(), "Father(1)")

	_, err = Check(
		newProfile("Mother", nil),
		newProfile("Father", nil),
		newProfile("Offspring", nil),
	)
	assert.ErrorIs(t, err, ErrEmptyIntersection)
}

func TestCheckIdempotent(t *testing.T) {
	var markers = func(genos ...string) map[string]string {
		var m = make(map[string]string)
		for i, g := range genos {
			m[fmt.Sprintf("BICF2G6301%04d", i)] = g
		}
		return m
	}
	var (
		mother    = newProfile("Mother", markers("A/G", "C/C", "T/C", "A/A", "G/G", "A/T"))
		father    = newProfile("Father", markers("T/T", "C/T", "T/T", "A/G", "G/A", "A/T"))
		offspring = newProfile("Offspring", markers("G/T", "C/C", "C/C", "A/A", "A/G", "T/T"))
	)
	first, err := Check(mother, father, offspring)
	require.NoError(t, err)
	second, err := Check(mother, father, offspring)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, Summary{Considered: 6, Common: 6, Consistent: 5, Exclusions: 1}, first.Summary)
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "CONSISTENT", Consistent.String())
	assert.Equal(t, "EXCLUSION", Exclusion.String())
	assert.Equal(t, "MARKER_MISSING", MarkerMissing.String())
	assert.Equal(t, "Tag(7)", Tag(7).String())
}
