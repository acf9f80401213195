package catalog

// Category identifies one of the top-level material groups in the price table.
type Category string

const (
	Posts    Category = "posts"
	Pickets  Category = "pickets"
	Boards   Category = "boards"
	Concrete Category = "concrete"
	Misc     Category = "misc"
)

// Catalog is the immutable material price table: category, variant key, and
// (where applicable) a nominal length/size key map to a unit price in dollars.
// It is loaded once at startup and never mutated afterwards.
type Catalog struct {
	posts    map[string]map[string]float64
	pickets  map[string]map[string]float64
	boards   map[string]map[string]float64
	concrete map[string]float64
	misc     map[string]float64
}

// Price looks up a unit price. The boolean reports whether the entry exists;
// callers that want the legacy "missing is free" behavior use PriceOrZero and
// accept the risk of silently under-quoting.
func (c *Catalog) Price(cat Category, variant, size string) (float64, bool) {
	switch cat {
	case Posts:
		return nested(c.posts, variant, size)
	case Pickets:
		return nested(c.pickets, variant, size)
	case Boards:
		return nested(c.boards, variant, size)
	case Concrete:
		p, ok := c.concrete[variant]
		return p, ok
	case Misc:
		p, ok := c.misc[variant]
		return p, ok
	}
	return 0, false
}

// PriceOrZero returns the unit price, or 0 when the entry is missing.
func (c *Catalog) PriceOrZero(cat Category, variant, size string) float64 {
	p, _ := c.Price(cat, variant, size)
	return p
}

func nested(m map[string]map[string]float64, variant, size string) (float64, bool) {
	inner, ok := m[variant]
	if !ok {
		return 0, false
	}
	p, ok := inner[size]
	return p, ok
}

// Default returns the built-in price table. Prices are per unit (per post, per
// picket, per bag, per 100-count box) in dollars with two-decimal precision;
// truck concrete is priced per cubic yard.
func Default() *Catalog {
	return &Catalog{
		posts: map[string]map[string]float64{
			"wood_treated_4x4": {"8": 11.40, "10": 13.84, "12": 16.72},
			"wood_treated_4x6": {"8": 17.55, "10": 27.67, "12": 24.78},
			"wood_treated_6x6": {"8": 28.59, "10": 55.29, "12": 63.97},
			"wood_cedar_4x4":   {"8": 11.40, "10": 15.00, "12": 18.00},
			"wood_cedar_4x6":   {"8": 20.00, "10": 30.00, "12": 35.00},
			"wood_cedar_6x6":   {"8": 30.00, "10": 60.00, "12": 70.00},
			"postMaster":       {"8": 29.72, "10": 72.68, "12": 89.78},
			"schedule20_2_3_8": {"5": 15.00, "6": 18.00, "7": 21.00, "8": 24.00, "9": 27.00, "10.5": 31.50, "12": 36.00},
			"schedule40_2_3_8": {"5": 19.55, "6": 23.46, "7": 27.37, "8": 31.28, "9": 35.19, "10.5": 41.446, "12": 46.92},
			"schedule40_4inch": {"9": 50.00, "12": 65.00},
		},
		pickets: map[string]map[string]float64{
			"pine":  {"4": 1.50, "5": 1.80, "6": 2.10, "8": 3.53},
			"cedar": {"4": 2.00, "5": 2.30, "6": 2.61, "8": 4.17},
		},
		boards: map[string]map[string]float64{
			"pine": {
				"1x4x8": 3.16, "2x4x8": 3.74, "2x6x8": 7.83, "2x8x8": 11.51, "2x12x8": 20.00,
				"1x4x10": 4.00, "2x4x10": 5.01, "2x6x10": 9.80, "2x8x10": 14.50, "2x12x10": 25.00,
				"1x4x12": 4.75, "2x4x12": 7.67, "2x6x12": 11.75, "2x8x12": 17.25, "2x12x12": 30.00,
				"1x4x16": 6.50, "2x4x16": 11.08, "2x6x16": 14.98, "2x8x16": 23.00, "2x12x16": 42.26,
			},
			"cedar": {
				"1x4x8": 4.61, "2x4x8": 9.88, "2x6x8": 16.66, "2x8x8": 16.66, "2x12x8": 35.00,
				"1x4x10": 5.80, "2x4x10": 12.35, "2x6x10": 20.80, "2x8x10": 20.80, "2x12x10": 44.00,
				"1x4x12": 6.90, "2x4x12": 14.80, "2x6x12": 25.00, "2x8x12": 25.00, "2x12x12": 52.00,
				"1x4x16": 9.20, "2x4x16": 19.70, "2x6x16": 33.30, "2x8x16": 33.30, "2x12x16": 70.00,
			},
		},
		concrete: map[string]float64{
			"red":    8.53,
			"yellow": 5.89,
			"truck":  170.00,
		},
		misc: map[string]float64{
			"2x4x8Treated": 3.74, "2x4x10Treated": 5.01, "2x4x12Treated": 7.67, "2x4x16Treated": 11.08,
			"2x6x8Treated": 7.83, "2x6x10Treated": 9.80, "2x6x12Treated": 11.75, "2x6x16Treated": 14.98,
			"2x8x8Treated": 11.51, "2x8x10Treated": 14.50, "2x8x12Treated": 17.25, "2x8x16Treated": 23.00,
			"2x12x8Treated": 28.00, "2x12x10Treated": 35.00, "2x12x12Treated": 40.00, "2x12x16Treated": 42.26,
			"gateHingePostLatchKit":     32.34,
			"hingeSetDoubleGate":        15.00,
			"caneBoltSet":               22.05,
			"starHeadScrews3inchBox":    7.84,
			"starHeadScrews1_5inchBox":  10.00,
			"picketNailsRoll":           11.27,
			"cedarGateRail2x4x8":        9.88,
			"postCap":                   1.28,
			"beveledDeckBoard54x12x8":   8.42,
			"metalGateFrame":            250.00,
			"metalGateFrameBaseboard":   275.00,
			"industrialDropLatch":       51.94,
			"industrialDropLatchGuides": 5.00,
			"emt":                       3.00,
			"flange":                    18.57,
			"pipeTie":                   1.72,
			"lagScrew100pc":             19.60,
			"wedgeAnchor":               1.00,
			"cantileverRoller":          83.30,
			"cantileverLatch":           22.68,
		},
	}
}
