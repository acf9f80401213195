package fence

import (
	"fmt"
	"math"
	"strconv"
)

// RawInputs carries the form-shaped values of one calculation request, keyed
// by field name. Indexed fields use the "name_N" convention (pullLength_1,
// singleGateWidth_2, ...). Values are unparsed strings exactly as submitted.
type RawInputs map[string]string

// Inputs is the fully normalized input record consumed by every line-item
// rule. It is assembled once per calculation and never reconstructed
// piecemeal. All numeric fields are guaranteed non-negative and non-NaN.
type Inputs struct {
	NumStretches            float64
	TotalLengthWithGates    float64
	TotalLengthWithoutGates float64
	PullLengths             []float64
	FenceHeight             float64
	FenceOrientation        string
	FenceStyle              string
	PostSpacing             float64
	StandardPostType        string
	HoleDepthInches         float64
	HoleWidthInches         float64
	ConcreteType            string
	NumCorners              float64
	NumFlangedCentered      float64
	NumFlangedOffCentered   float64
	FlangedPostHeight       float64
	PicketType              string
	PicketWidth             float64
	NumRails                float64
	AddBaseboard            string
	BaseboardMaterialSize   string
	TrimType                string
	TrimWoodType            string
	CapBoardType            string
	CapBoardWoodType        string
	NumSingleGates          float64
	NumDoubleGates          float64
	NumSlidingGates         float64
	SingleGateWidths        []float64
	DoubleGateWidths        []float64
	SlidingGateWidths       []float64
	UseMetalGateFrames      string
	IndustrialLatch         string
	UseScrews               string
	NeedsTearOut            string
	NeedsLineClearing       string
	TravelDistance          float64
}

// TotalGateWidth is the sum of all gate opening widths in feet.
func (in Inputs) TotalGateWidth() float64 {
	var total float64
	for _, w := range in.SingleGateWidths {
		total += w
	}
	for _, w := range in.DoubleGateWidths {
		total += w
	}
	for _, w := range in.SlidingGateWidths {
		total += w
	}
	return total
}

// TotalGates is the count of all gates regardless of type.
func (in Inputs) TotalGates() float64 {
	return in.NumSingleGates + in.NumDoubleGates + in.NumSlidingGates
}

type normalizer struct {
	raw      RawInputs
	warnings []string
}

// number parses the named field as a non-negative float. A missing field, an
// unparseable value, or a negative value normalizes to 0 with a warning; the
// calculation itself never fails on bad numeric input.
func (n *normalizer) number(field string) float64 {
	raw, ok := n.raw[field]
	if !ok {
		n.warnings = append(n.warnings, fmt.Sprintf("input %s missing, using 0", field))
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || v < 0 {
		n.warnings = append(n.warnings, fmt.Sprintf("invalid or negative input for %s: %q, using 0", field, raw))
		return 0
	}
	return v
}

func (n *normalizer) text(field string) string {
	return n.raw[field]
}

// indexed fetches count values named "prefix_1" .. "prefix_count".
func (n *normalizer) indexed(prefix string, count float64) []float64 {
	values := make([]float64, 0, int(count))
	for i := 1; i <= int(count); i++ {
		values = append(values, n.number(fmt.Sprintf("%s_%d", prefix, i)))
	}
	return values
}

// Normalize coerces raw form values into an Inputs record. Warnings describe
// every substitution made (missing, non-numeric, or negative fields); they
// are informational and never abort the calculation.
func Normalize(raw RawInputs) (Inputs, []string) {
	n := &normalizer{raw: raw}

	in := Inputs{
		NumStretches:          n.number("numStretches"),
		TotalLengthWithGates:  n.number("totalLength"),
		FenceHeight:           n.number("fenceHeight"),
		FenceOrientation:      n.text("fenceOrientation"),
		FenceStyle:            n.text("fenceStyle"),
		PostSpacing:           n.number("postSpacing"),
		StandardPostType:      n.text("standardPostType"),
		HoleDepthInches:       n.number("holeDepth"),
		HoleWidthInches:       n.number("holeWidth"),
		ConcreteType:          n.text("concreteType"),
		NumCorners:            n.number("numCorners"),
		NumFlangedCentered:    n.number("numFlangedCentered"),
		NumFlangedOffCentered: n.number("numFlangedOffCentered"),
		FlangedPostHeight:     n.number("flangedPostHeight"),
		PicketType:            n.text("picketType"),
		PicketWidth:           n.number("picketWidth"),
		NumRails:              n.number("numRails"),
		AddBaseboard:          n.text("addBaseboard"),
		BaseboardMaterialSize: n.text("baseboardMaterialSize"),
		TrimType:              n.text("trimType"),
		TrimWoodType:          n.text("trimWoodType"),
		CapBoardType:          n.text("capBoardType"),
		CapBoardWoodType:      n.text("capBoardWoodType"),
		NumSingleGates:        n.number("numSingleGates"),
		NumDoubleGates:        n.number("numDoubleGates"),
		NumSlidingGates:       n.number("numSlidingGates"),
		UseMetalGateFrames:    n.text("useMetalGateFrames"),
		IndustrialLatch:       n.text("industrialLatch"),
		UseScrews:             n.text("useScrews"),
		NeedsTearOut:          n.text("needsTearOut"),
		NeedsLineClearing:     n.text("needsLineClearing"),
		TravelDistance:        n.number("travelDistance"),
	}

	in.SingleGateWidths = n.indexed("singleGateWidth", in.NumSingleGates)
	in.DoubleGateWidths = n.indexed("doubleGateWidth", in.NumDoubleGates)
	in.SlidingGateWidths = n.indexed("slidingGateWidth", in.NumSlidingGates)

	// With stretch mode each pull is its own run; otherwise the whole fence
	// is treated as a single pull of the total length.
	if in.NumStretches > 0 {
		for i := 1; i <= int(in.NumStretches); i++ {
			if l := n.number(fmt.Sprintf("pullLength_%d", i)); l > 0 {
				in.PullLengths = append(in.PullLengths, l)
			}
		}
	} else if in.TotalLengthWithGates > 0 {
		in.PullLengths = []float64{in.TotalLengthWithGates}
	}

	// Deliberately not clamped: a negative value means the gate widths exceed
	// the total length and downstream rules must tolerate it.
	in.TotalLengthWithoutGates = in.TotalLengthWithGates - in.TotalGateWidth()

	return in, n.warnings
}
