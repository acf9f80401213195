package fence

import (
	"fmt"
	"time"

	"github.com/rangecraft/fenceworks/internal/catalog"
)

const itemCount = 33

// LineItem is one priced row of the bill of materials. All 33 items are
// computed on every calculation; rows with zero quantity keep their slot so
// later rules can read them, and are filtered out only for display.
type LineItem struct {
	Number      int     `json:"number"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitCost    float64 `json:"unitCost"`
	TotalCost   float64 `json:"totalCost"`
}

// Estimate is the full materials bill for one calculation pass.
type Estimate struct {
	Items        []LineItem `json:"items"`
	GrandTotal   float64    `json:"grandTotal"`
	CalculatedAt time.Time  `json:"calculatedAt"`
	// Warnings lists catalog lookups that found no price. A warning here
	// means a line item may be silently under-priced; operators should treat
	// it as a catalog gap, not a free material.
	Warnings []string `json:"warnings,omitempty"`
}

// VisibleItems returns the line items with a positive quantity, in item
// order, which is what the rendered quote table shows.
func (e Estimate) VisibleItems() []LineItem {
	visible := make([]LineItem, 0, len(e.Items))
	for _, item := range e.Items {
		if item.Quantity > 0 {
			visible = append(visible, item)
		}
	}
	return visible
}

var itemNames = [itemCount + 1]string{
	1:  "Post",
	2:  "4x4x8 incense cedar gate posts",
	3:  "Flanged posts centered",
	4:  "Flanged posts off centered",
	5:  "Concrete",
	6:  "Picket",
	7:  "Picket for gate with baseboard",
	8:  "5/4 x 12 beveled deck board",
	9:  "2x4x8 incense cedar gate rail",
	10: "2x4x10 treated",
	11: "2x4x12 treated",
	12: "2x4x16 treated",
	13: "2x6x16 treated",
	14: "2x12x16 treated",
	15: "Cap",
	16: "Trim",
	17: "Pipe tie/ wood to metal connector",
	18: "Post cap",
	19: "Lag screw (100pc)",
	20: "Gate hardware",
	21: "Hinge set for double gate",
	22: "Cane bolt set (Wooden privacy)",
	23: "Industrial drop latch",
	24: "Industrial drop latch guides",
	25: "EMT",
	26: "Metal frames",
	27: "Framing screws",
	28: "Picket nails",
	29: "Star head wood deck screws - 1 5/8\"",
	30: "Wedge anchors",
	31: "Cantilever / sliding gate post",
	32: "Cantilever / sliding gate rollers",
	33: "Cantilever / sliding gate latch",
}

// calc is the working state of one estimate pass. Rules run in a fixed
// dependency order and each rule only reads slots finalized by earlier rules.
type calc struct {
	cat    *catalog.Catalog
	in     Inputs
	items  [itemCount + 1]LineItem // 1-based, slot 0 unused
	misses []string
}

// price resolves a catalog price and records a warning when the entry is
// missing instead of silently treating the material as free.
func (c *calc) price(cat catalog.Category, variant, size string) float64 {
	p, ok := c.cat.Price(cat, variant, size)
	if !ok {
		key := variant
		if size != "" {
			key = variant + "/" + size
		}
		c.misses = append(c.misses, fmt.Sprintf("no catalog price for %s %s", cat, key))
	}
	return p
}

// set finalizes one item slot. TotalCost is always quantity times unit cost.
func (c *calc) set(number int, description string, qty, unitCost float64) {
	c.items[number] = LineItem{
		Number:      number,
		Name:        itemNames[number],
		Description: description,
		Quantity:    qty,
		UnitCost:    unitCost,
		TotalCost:   qty * unitCost,
	}
}

func (c *calc) qty(number int) float64 { return c.items[number].Quantity }

// Calculate runs the full 33-rule materials estimate over normalized inputs.
// It is deterministic and side-effect free: the same inputs and catalog
// always produce the same estimate apart from the timestamp.
func Calculate(in Inputs, cat *catalog.Catalog) Estimate {
	c := &calc{cat: cat, in: in}
	for i := 1; i <= itemCount; i++ {
		c.items[i] = LineItem{Number: i, Name: itemNames[i]}
	}

	// Evaluation order is a fixed topological order: concrete (5) reads the
	// post counts (1-4), the screw items (19, 27, 29) read board and picket
	// quantities, and EMT (25) reads the cane bolt count (22).
	c.itemPosts()
	c.itemCedarGatePosts()
	c.itemFlangedPosts()
	c.itemConcrete()
	c.itemPickets()
	c.itemGatePickets()
	c.itemBeveledDeckBoards()
	c.itemCedarGateRails()
	c.itemRails10()
	c.itemRails11()
	c.itemRails12()
	c.itemBaseboard2x6()
	c.itemBaseboard2x12()
	c.itemCap()
	c.itemTrim()
	c.itemPipeTies()
	c.itemPostCaps()
	c.itemLagScrews()
	c.itemGateHardware()
	c.itemDoubleGateHinges()
	c.itemCaneBolts()
	c.itemDropLatches()
	c.itemDropLatchGuides()
	c.itemEMT()
	c.itemMetalFrames()
	c.itemFramingScrews()
	c.itemPicketNails()
	c.itemPicketScrews()
	c.itemWedgeAnchors()
	c.itemCantileverPosts()
	c.itemCantileverRollers()
	c.itemCantileverLatches()

	est := Estimate{
		Items:        c.items[1:],
		CalculatedAt: time.Now().UTC(),
		Warnings:     c.misses,
	}
	// Only positive totals contribute; a zero or negative row never reduces
	// the grand total.
	for _, item := range est.Items {
		if item.TotalCost > 0 {
			est.GrandTotal += item.TotalCost
		}
	}
	return est
}
