package genotype

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Sep is the default allele delimiter of ISAG genotype cells, e.g. "A/G".
// AltSep is also accepted when the default is in use.
const (
	Sep    = "/"
	AltSep = "|"
)

var ErrMalformed = errors.New("malformed genotype")

// Genotype is an unordered allele pair, stored sorted so that A/G == G/A.
type Genotype [2]string

func New(a, b string) Genotype {
	if b < a {
		a, b = b, a
	}
	return Genotype{a, b}
}

// Parse splits s on sep into exactly two non-empty alleles. With the default
// sep, a cell without "/" may use "|" instead.
func Parse(s, sep string) (Genotype, error) {
	if sep == "" {
		sep = Sep
	}
	if sep == Sep && !strings.Contains(s, Sep) && strings.Contains(s, AltSep) {
		sep = AltSep
	}
	var alleles = strings.Split(strings.TrimSpace(s), sep)
	if len(alleles) != 2 {
		return Genotype{}, fmt.Errorf("%w: %q want 2 alleles separated by %q", ErrMalformed, s, sep)
	}
	var a, b = strings.TrimSpace(alleles[0]), strings.TrimSpace(alleles[1])
	if a == "" || b == "" {
		return Genotype{}, fmt.Errorf("%w: %q has empty allele", ErrMalformed, s)
	}
	return New(a, b), nil
}

func (g Genotype) String() string {
	return g[0] + Sep + g[1]
}

// Cross enumerates the offspring genotypes obtainable by taking one allele
// from each parent. Duplicates are collapsed and the result is sorted, so it
// does not depend on allele order within either parent.
func Cross(mother, father Genotype) []Genotype {
	var possible = make([]Genotype, 0, 4)
	for _, m := range mother {
		for _, f := range father {
			possible = append(possible, New(m, f))
		}
	}
	possible = lo.Uniq(possible)
	sort.Slice(possible, func(i, j int) bool {
		if possible[i][0] == possible[j][0] {
			return possible[i][1] < possible[j][1]
		}
		return possible[i][0] < possible[j][0]
	})
	return possible
}

// Consistent reports whether offspring is in Cross(mother, father).
func Consistent(mother, father, offspring Genotype) bool {
	return lo.Contains(Cross(mother, father), offspring)
}

// Join renders a genotype set as "A/T,G/T".
func Join(set []Genotype) string {
	return strings.Join(lo.Map(set, func(g Genotype, _ int) string { return g.String() }), ",")
}
