package report

var (
	SummarySheet   = "Summary"
	MarkerSheet    = "Marker_Details"
	ExclusionSheet = "Exclusions"
	MissingSheet   = "Missing"

	SummaryTitle = []string{
		"Metric",
		"Value",
	}
	MarkerTitle = []string{
		"Marker_ID",
		"Mother_Genotype",
		"Father_Genotype",
		"Offspring_Genotype",
		"Expected",
		"Result",
	}
	ExclusionTitle = []string{
		"Marker_ID",
		"Mother_Genotype",
		"Father_Genotype",
		"Offspring_Genotype",
		"Issue",
	}
	MissingTitle = []string{
		"Marker_ID",
		"Mother_Genotype",
		"Father_Genotype",
		"Offspring_Genotype",
		"Missing_In",
	}

	// exclusion details shown in the text report
	ExclusionShow = 5
)
