package fence

import "testing"

func TestComputeFieldLaborBands(t *testing.T) {
	tests := []struct {
		length   float64
		leadCost float64
		crewCost float64
	}{
		{100, 400, 230},
		{150, 400, 230},
		{151, 400, 460},
		{200, 400, 460},
		{250, 400, 460},
		{251, 800, 460},
		{300, 800, 460},
		{301, 0, 0}, // out of the field-labor bands, subcontractor territory
	}
	for _, tt := range tests {
		fl := computeFieldLabor(JobAttributes{TotalLength: tt.length})
		if fl.LeadCost != tt.leadCost || fl.CrewCost != tt.crewCost {
			t.Errorf("length %v: lead %v crew %v, want %v/%v", tt.length, fl.LeadCost, fl.CrewCost, tt.leadCost, tt.crewCost)
		}
	}
}

func TestComputeFieldLaborExtras(t *testing.T) {
	fl := computeFieldLabor(JobAttributes{
		TotalLength:       200,
		NeedsTearOut:      true,
		NeedsLineClearing: true,
		TravelMiles:       30,
	})

	nearlyEqual(t, "tear-out", fl.TearOutCost, 200*1.24)
	nearlyEqual(t, "line clearing", fl.LineClearingCost, 400)
	nearlyEqual(t, "travel", fl.TravelCost, 60)
	nearlyEqual(t, "field total", fl.Total, 400+460+248+400+60)
}

func TestComputeSubLabor(t *testing.T) {
	sl := computeSubLabor(JobAttributes{
		TotalLength:       200,
		FenceStyle:        "Board on Board",
		NeedsTearOut:      true,
		HasBaseboard:      true,
		HasCapAndTrim:     true,
		NumSingleGates:    2,
		NumDoubleGates:    1,
		SlidingGateWidths: []float64{10, 12},
		UseScrews:         true,
		TravelMiles:       10,
	})

	nearlyEqual(t, "base labor", sl.BaseLabor, 1000)
	nearlyEqual(t, "style add-on", sl.StyleAddOn, 400)
	nearlyEqual(t, "tear-out", sl.TearOutCost, 400)
	nearlyEqual(t, "line clearing", sl.LineClearingCost, 0)
	nearlyEqual(t, "baseboard", sl.BaseboardCost, 100)
	nearlyEqual(t, "cap and trim", sl.CapTrimCost, 400)
	nearlyEqual(t, "single gates", sl.SingleGateCost, 150)
	nearlyEqual(t, "double gates", sl.DoubleGateCost, 150)
	nearlyEqual(t, "sliding gates", sl.SlidingGateCost, 440)
	nearlyEqual(t, "screws upgrade", sl.ScrewsUpgradeCost, 600)
	nearlyEqual(t, "travel", sl.TravelCost, 20)
	nearlyEqual(t, "sub total", sl.Total, 1000+400+400+100+400+150+150+440+600+20)
}

func TestComputeLaborMarginChain(t *testing.T) {
	// 200 ft fence, no extras: field labor 400+460 = 860, sub labor 1000.
	job := JobAttributes{TotalLength: 200}
	breakdown := ComputeLabor(1000, job)

	nearlyEqual(t, "field labor total", breakdown.FieldLabor.Total, 860)
	nearlyEqual(t, "sub labor total", breakdown.SubLabor.Total, 1000)

	base := (1000.0 + 860.0 + 1000.0) / 0.72
	nearlyEqual(t, "cost base", breakdown.CostBase, base)
	nearlyEqual(t, "inside labor", breakdown.InsideLabor, base*0.09)
	nearlyEqual(t, "overhead", breakdown.Overhead, base*0.07)
	nearlyEqual(t, "sales", breakdown.Sales, base*0.07)

	subtotal := 1000 + 860 + 1000 + base*0.09 + base*0.07 + base*0.07
	nearlyEqual(t, "cost subtotal", breakdown.CostSubtotal, subtotal)

	nearlyEqual(t, "profit 5", breakdown.Profit5, base*0.05)
	nearlyEqual(t, "profit 12", breakdown.Profit12, base*0.12)
	nearlyEqual(t, "profit 20", breakdown.Profit20, base*0.20)
	nearlyEqual(t, "total cost 5", breakdown.TotalCost5, subtotal+base*0.05)
	nearlyEqual(t, "total cost 12", breakdown.TotalCost12, subtotal+base*0.12)
	nearlyEqual(t, "total cost 20", breakdown.TotalCost20, subtotal+base*0.20)
}

func TestRecommendedCrew(t *testing.T) {
	tests := []struct {
		length float64
		want   string
	}{
		{100, "2 person crew, 1 day"},
		{150, "2 person crew, 1 day"},
		{200, "3 person crew, 1 day"},
		{300, "2 person crew, 2 days"},
		{301, "Recommend using subcontractor"},
	}
	for _, tt := range tests {
		if got := RecommendedCrew(tt.length); got != tt.want {
			t.Errorf("RecommendedCrew(%v) = %q, want %q", tt.length, got, tt.want)
		}
	}
}

func TestJobAttributesFrom(t *testing.T) {
	in := Inputs{
		TotalLengthWithGates: 120,
		FenceStyle:           "Shadowbox",
		NeedsTearOut:         "yes",
		NeedsLineClearing:    "no",
		AddBaseboard:         "yes",
		TrimType:             "none",
		CapBoardType:         "2x6",
		NumSingleGates:       1,
		NumDoubleGates:       2,
		SlidingGateWidths:    []float64{8},
		UseScrews:            "Yes",
		TravelDistance:       25,
	}

	job := JobAttributesFrom(in)
	if job.TotalLength != 120 || !job.NeedsTearOut || job.NeedsLineClearing {
		t.Errorf("unexpected job attributes: %+v", job)
	}
	if !job.HasBaseboard || !job.HasCapAndTrim || !job.UseScrews {
		t.Errorf("expected baseboard, cap-and-trim, and screws flags set: %+v", job)
	}
	if job.TravelMiles != 25 || len(job.SlidingGateWidths) != 1 {
		t.Errorf("unexpected travel/sliding fields: %+v", job)
	}
}
