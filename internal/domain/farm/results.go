package farm

import "math"

const (
	loseReasonSustainability     = "Sustainability Collapse"
	loseDetailsSustainabilityFmt = "Your sustainability dropped to %.1f%%. Environmental damage from excessive chemical use, water waste, or soil degradation has made your farm unsustainable."
)

// FinalResults is the end-of-season scorecard. Lost is set on a sustainability
// collapse, in which case the grade fields describe the failed season rather
// than a harvest band.
type FinalResults struct {
	Lost         bool    `json:"lost"`
	LoseReason   string  `json:"lose_reason,omitempty"`
	LoseDetails  string  `json:"lose_details,omitempty"`
	FinalYield   int     `json:"final_yield"`
	Grade        string  `json:"grade"`
	GradeMessage string  `json:"grade_message"`
	YieldShare   float64 `json:"yield_share"`
}

func CheckWin(m Metrics) bool {
	return m.Round > SeasonRounds
}

func CheckLose(m Metrics) bool {
	return m.Sustainability <= 0
}

// ComputeResults grades a finished season. Yield is the share of the maximum
// harvest the final productivity and sustainability support; the grade bands
// gate on yield and both meta-metrics together.
func ComputeResults(g GameAggregate) FinalResults {
	m := g.Metrics
	share := (m.ProductivityIndex / 100) * (math.Min(m.Sustainability, 100) / 100)
	finalYield := int(math.Round(MaxYieldKgPerHa * share))

	res := FinalResults{
		FinalYield: finalYield,
		YieldShare: share,
	}

	if g.Phase == PhaseResults && g.LoseReason != "" {
		res.Lost = true
		res.LoseReason = g.LoseReason
		res.LoseDetails = g.LoseDetails
		res.Grade = "F"
		res.GradeMessage = "Season Failed - " + g.LoseReason
		return res
	}

	switch {
	case finalYield > 8500 && m.Sustainability > 90 && m.ProductivityIndex > 95:
		res.Grade = "A"
		res.GradeMessage = "Climate-Smart Master! Perfect data-driven farming"
	case finalYield > 7000 && m.Sustainability > 70 && m.ProductivityIndex > 80:
		res.Grade = "B"
		res.GradeMessage = "Solid Farmer - Good NASA data integration"
	case finalYield > 5000 && m.Sustainability > 50 && m.ProductivityIndex > 60:
		res.Grade = "C"
		res.GradeMessage = "Struggling Farm - Needs better resource management"
	default:
		res.Grade = "D"
		res.GradeMessage = "Farm Crisis - Major losses and environmental damage"
	}
	return res
}
