package fence

// JobAttributes carries the job-level facts the labor roll-up needs beyond
// the materials total.
type JobAttributes struct {
	TotalLength       float64   `json:"totalLength"`
	FenceStyle        string    `json:"fenceStyle"`
	NeedsTearOut      bool      `json:"needsTearOut"`
	NeedsLineClearing bool      `json:"needsLineClearing"`
	HasBaseboard      bool      `json:"hasBaseboard"`
	HasCapAndTrim     bool      `json:"hasCapAndTrim"`
	NumSingleGates    float64   `json:"numSingleGates"`
	NumDoubleGates    float64   `json:"numDoubleGates"`
	SlidingGateWidths []float64 `json:"slidingGateWidths"`
	UseScrews         bool      `json:"useScrews"`
	TravelMiles       float64   `json:"travelMiles"`
}

// JobAttributesFrom derives the labor inputs from a normalized estimate
// input record.
func JobAttributesFrom(in Inputs) JobAttributes {
	return JobAttributes{
		TotalLength:       in.TotalLengthWithGates,
		FenceStyle:        in.FenceStyle,
		NeedsTearOut:      in.NeedsTearOut == "yes",
		NeedsLineClearing: in.NeedsLineClearing == "yes",
		HasBaseboard:      in.AddBaseboard == "yes",
		HasCapAndTrim:     (in.TrimType != "" && in.TrimType != "none") || (in.CapBoardType != "" && in.CapBoardType != "none"),
		NumSingleGates:    in.NumSingleGates,
		NumDoubleGates:    in.NumDoubleGates,
		SlidingGateWidths: in.SlidingGateWidths,
		UseScrews:         in.UseScrews == "Yes",
		TravelMiles:       in.TravelDistance,
	}
}

// FieldLabor is the in-house crew cost breakdown.
type FieldLabor struct {
	LeadCost         float64 `json:"leadCost"`
	CrewCost         float64 `json:"crewCost"`
	TearOutCost      float64 `json:"tearOutCost"`
	LineClearingCost float64 `json:"lineClearingCost"`
	TravelCost       float64 `json:"travelCost"`
	Total            float64 `json:"total"`
}

// SubLabor is the subcontractor cost breakdown.
type SubLabor struct {
	BaseLabor         float64 `json:"baseLabor"`
	StyleAddOn        float64 `json:"styleAddOn"`
	TearOutCost       float64 `json:"tearOutCost"`
	LineClearingCost  float64 `json:"lineClearingCost"`
	BaseboardCost     float64 `json:"baseboardCost"`
	CapTrimCost       float64 `json:"capTrimCost"`
	SingleGateCost    float64 `json:"singleGateCost"`
	DoubleGateCost    float64 `json:"doubleGateCost"`
	SlidingGateCost   float64 `json:"slidingGateCost"`
	ScrewsUpgradeCost float64 `json:"screwsUpgradeCost"`
	TravelCost        float64 `json:"travelCost"`
	Total             float64 `json:"total"`
}

// LaborBreakdown is the full second-stage roll-up: labor, loadings, and the
// three profit scenarios over the common cost base.
type LaborBreakdown struct {
	MaterialsTotal  float64    `json:"materialsTotal"`
	FieldLabor      FieldLabor `json:"fieldLabor"`
	SubLabor        SubLabor   `json:"subLabor"`
	CostBase        float64    `json:"costBase"`
	InsideLabor     float64    `json:"insideLabor"`
	Overhead        float64    `json:"overhead"`
	Sales           float64    `json:"sales"`
	CostSubtotal    float64    `json:"costSubtotal"`
	Profit5         float64    `json:"profit5"`
	Profit12        float64    `json:"profit12"`
	Profit20        float64    `json:"profit20"`
	TotalCost5      float64    `json:"totalCost5"`
	TotalCost12     float64    `json:"totalCost12"`
	TotalCost20     float64    `json:"totalCost20"`
	RecommendedCrew string     `json:"recommendedCrew"`
}

// travelRatePerMile is charged once for the field crew and once for the sub.
const travelRatePerMile = 2.0

// computeFieldLabor applies the in-house banding: the lead and crew day
// rates are step functions of total length, and fences over 300 ft fall out
// of the bands entirely (subcontractor territory, see RecommendedCrew).
func computeFieldLabor(job JobAttributes) FieldLabor {
	var fl FieldLabor

	if job.TotalLength <= 300 {
		if job.TotalLength <= 250 {
			fl.LeadCost = 400
		} else {
			fl.LeadCost = 800
		}
		if job.TotalLength <= 150 {
			fl.CrewCost = 230
		} else {
			fl.CrewCost = 460
		}
	}

	if job.NeedsTearOut {
		fl.TearOutCost = job.TotalLength * 1.24
	}
	if job.NeedsLineClearing {
		fl.LineClearingCost = job.TotalLength * 2.00
	}
	fl.TravelCost = job.TravelMiles * travelRatePerMile

	fl.Total = fl.LeadCost + fl.CrewCost + fl.TearOutCost + fl.LineClearingCost + fl.TravelCost
	return fl
}

func computeSubLabor(job JobAttributes) SubLabor {
	var sl SubLabor

	sl.BaseLabor = job.TotalLength * 5.00
	if job.FenceStyle == "Shadowbox" || job.FenceStyle == "Board on Board" {
		sl.StyleAddOn = job.TotalLength * 2.00
	}
	if job.NeedsTearOut {
		sl.TearOutCost = job.TotalLength * 2.00
	}
	if job.NeedsLineClearing {
		sl.LineClearingCost = job.TotalLength * 2.00
	}
	if job.HasBaseboard {
		sl.BaseboardCost = job.TotalLength * 0.50
	}
	if job.HasCapAndTrim {
		sl.CapTrimCost = job.TotalLength * 2.00
	}

	sl.SingleGateCost = job.NumSingleGates * 75
	sl.DoubleGateCost = job.NumDoubleGates * 150
	for _, width := range job.SlidingGateWidths {
		sl.SlidingGateCost += width * 20
	}

	if job.UseScrews {
		sl.ScrewsUpgradeCost = job.TotalLength * 3.00
	}
	sl.TravelCost = job.TravelMiles * travelRatePerMile

	sl.Total = sl.BaseLabor + sl.StyleAddOn + sl.TearOutCost + sl.LineClearingCost +
		sl.BaseboardCost + sl.CapTrimCost +
		sl.SingleGateCost + sl.DoubleGateCost + sl.SlidingGateCost +
		sl.ScrewsUpgradeCost + sl.TravelCost
	return sl
}

// ComputeLabor produces the labor breakdown and margin scenarios for a job.
// The 0.72 divisor and the 9/7/7 and 5/12/20 percentages are fixed business
// parameters; changing any of them changes customer-facing quotes.
func ComputeLabor(materialsTotal float64, job JobAttributes) LaborBreakdown {
	fl := computeFieldLabor(job)
	sl := computeSubLabor(job)

	base := (materialsTotal + fl.Total + sl.Total) / 0.72
	insideLabor := base * 0.09
	overhead := base * 0.07
	sales := base * 0.07

	subtotal := materialsTotal + fl.Total + sl.Total + insideLabor + overhead + sales

	profit5 := base * 0.05
	profit12 := base * 0.12
	profit20 := base * 0.20

	return LaborBreakdown{
		MaterialsTotal:  materialsTotal,
		FieldLabor:      fl,
		SubLabor:        sl,
		CostBase:        base,
		InsideLabor:     insideLabor,
		Overhead:        overhead,
		Sales:           sales,
		CostSubtotal:    subtotal,
		Profit5:         profit5,
		Profit12:        profit12,
		Profit20:        profit20,
		TotalCost5:      subtotal + profit5,
		TotalCost12:     subtotal + profit12,
		TotalCost20:     subtotal + profit20,
		RecommendedCrew: RecommendedCrew(job.TotalLength),
	}
}

// RecommendedCrew is a step function of total length.
func RecommendedCrew(totalLength float64) string {
	switch {
	case totalLength <= 150:
		return "2 person crew, 1 day"
	case totalLength <= 250:
		return "3 person crew, 1 day"
	case totalLength <= 300:
		return "2 person crew, 2 days"
	default:
		return "Recommend using subcontractor"
	}
}
