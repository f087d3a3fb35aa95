package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/version"

	"dogParentage/pkg/genotype"
	"dogParentage/pkg/mendel"
	"dogParentage/pkg/profile"
	"dogParentage/pkg/report"
)

// flag
var (
	dataDir = flag.String(
		"d",
		"data",
		"data dir holding Mother.xlsx, Father.xlsx and Offspring.xlsx",
	)
	mother = flag.String(
		"m",
		"",
		"mother profile, .xlsx/.csv/.tsv, default -d/Mother.xlsx",
	)
	father = flag.String(
		"f",
		"",
		"father profile, default -d/Father.xlsx",
	)
	offspring = flag.String(
		"c",
		"",
		"offspring profile, default -d/Offspring.xlsx",
	)
	sheet = flag.String(
		"sheet",
		profile.DefaultSheet,
		"xlsx sheet of the profile",
	)
	markerCol = flag.Int(
		"mc",
		0,
		"1-based marker column, default 1",
	)
	genotypeCol = flag.Int(
		"gc",
		0,
		"1-based genotype column, default 3 for xlsx and 2 for text",
	)
	alleleSep = flag.String(
		"sep",
		genotype.Sep,
		"allele delimiter inside a genotype cell",
	)
	fieldSep = flag.String(
		"fs",
		"",
		"field separator of text profiles, default ',' for .csv and tab otherwise",
	)
	skip = flag.Int(
		"skip",
		0,
		"leading header rows to skip",
	)
	result = flag.String(
		"o",
		filepath.Join("truth", "parentage_analysis_results.xlsx"),
		"result xlsx",
	)
	jsonOut = flag.String(
		"json",
		"",
		"optional result json",
	)
	verbose = flag.Bool(
		"v",
		false,
		"debug log",
	)
)

func init() {
	flag.Parse()
	if *mother == "" {
		*mother = filepath.Join(*dataDir, "Mother.xlsx")
	}
	if *father == "" {
		*father = filepath.Join(*dataDir, "Father.xlsx")
	}
	if *offspring == "" {
		*offspring = filepath.Join(*dataDir, "Offspring.xlsx")
	}
	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
}

func main() {
	version.LogVersion()

	var opt = profile.Options{
		Sheet:       *sheet,
		MarkerCol:   *markerCol,
		GenotypeCol: *genotypeCol,
		AlleleSep:   *alleleSep,
		Skip:        *skip,
	}
	if *fieldSep != "" {
		opt.FieldSep = []rune(*fieldSep)[0]
	}

	var (
		names   = []string{"Mother", "Father", "Offspring"}
		paths   = []string{*mother, *father, *offspring}
		missing []string
	)
	for _, path := range paths {
		if !osUtil.FileExists(path) {
			missing = append(missing, path)
		}
	}
	if len(missing) > 0 {
		for _, path := range missing {
			log.Printf("missing required file: %s", path)
		}
		flag.Usage()
		log.Fatal("-m/-f/-c or -d with Mother.xlsx, Father.xlsx, Offspring.xlsx required")
	}

	var profiles [3]*profile.Profile
	for i := range paths {
		profiles[i] = simpleUtil.HandleError(profile.Load(paths[i], names[i], opt))
	}

	log.Printf("Analyzing: %s + %s -> %s", names[0], names[1], names[2])
	cmp := simpleUtil.HandleError(mendel.Check(profiles[0], profiles[1], profiles[2]))

	var rpt = report.New(cmp, profiles[0], profiles[1], profiles[2])
	rpt.WriteText(os.Stdout)

	simpleUtil.CheckErr(rpt.SaveXlsx(*result))
	if *jsonOut != "" {
		out := osUtil.Create(*jsonOut)
		defer simpleUtil.DeferClose(out)
		simpleUtil.CheckErr(rpt.WriteJSON(out))
	}

	log.Printf("Summary: %d/%d markers consistent", cmp.Summary.Consistent, cmp.Summary.Common)
	log.Printf("Confidence: %s", rpt.Category)
	log.Printf("Full report: %s", *result)
}
