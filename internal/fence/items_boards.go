package fence

import (
	"fmt"
	"math"
	"strings"

	"github.com/rangecraft/fenceworks/internal/catalog"
)

// picketWood maps the picket type to a priced wood; anything that is not
// cedar is priced as pine.
func picketWood(picketType string) string {
	if picketType == "cedar" {
		return "cedar"
	}
	return "pine"
}

// Item 6: pickets. Coverage per picket depends on the fence style; the
// divisor converts picket width into inches of fence covered. Skipped
// entirely for beveled deck board fences (see item 8).
func (c *calc) itemPickets() {
	if c.in.PicketType == "beveled_deck_board" {
		c.set(6, "", 0, 0)
		return
	}

	var divisor float64
	switch c.in.FenceStyle {
	case "Picket Style":
		divisor = 7 * c.in.PicketWidth / 6
	case "Privacy":
		divisor = 5.5 * c.in.PicketWidth / 6
	case "Shadowbox", "Board on Board":
		divisor = 3.5 * c.in.PicketWidth / 6
	default:
		divisor = 5.5 * c.in.PicketWidth / 6
	}

	var qty float64
	if divisor > 0 {
		qty = math.Ceil(c.in.TotalLengthWithGates * 12 / divisor)
	}

	picketHeight := "6"
	if c.in.FenceHeight == 8 {
		picketHeight = "8"
	}
	description := fmt.Sprintf("%s' %s", picketHeight, c.in.PicketType)

	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Pickets, picketWood(c.in.PicketType), picketHeight)
	}
	c.set(6, description, qty, unitCost)
}

// Item 7: extra pickets for gates on baseboard fences. Only applies to 6 ft
// fences with a baseboard; 2.5 pickets per foot of gate opening, fractional
// quantities allowed.
func (c *calc) itemGatePickets() {
	if c.in.AddBaseboard != "yes" || c.in.FenceHeight != 6 {
		c.set(7, "", 0, 0)
		return
	}

	qty := c.in.TotalGateWidth() * 2.5

	// Metal gate frames take the short picket; wood-framed gates need the 8'
	// board to wrap the frame.
	picketHeight := "8"
	if c.in.UseMetalGateFrames == "yes" {
		picketHeight = "6"
	}
	wood := picketWood(c.in.PicketType)
	description := fmt.Sprintf("%s' %s", picketHeight, wood)

	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Pickets, wood, picketHeight)
	}
	c.set(7, description, qty, unitCost)
}

// Item 8: beveled deck boards for horizontal fences. Rows of 5" exposure
// stacked to the fence height, bought as 8 ft boards.
func (c *calc) itemBeveledDeckBoards() {
	var qty float64
	if c.in.FenceOrientation == "Horizontal" && c.in.PicketType == "beveled_deck_board" {
		rowsNeeded := c.in.FenceHeight * 12 / 5
		totalBoardFeet := rowsNeeded * c.in.TotalLengthWithGates
		qty = math.Ceil(totalBoardFeet / 8)
	}
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Misc, "beveledDeckBoard54x12x8", "")
	}
	c.set(8, "5/4 x 12 beveled deck board", qty, unitCost)
}

// Item 9: cedar gate rails for single gates on vertical fences. Gates wider
// than 4 ft get a third rail.
func (c *calc) itemCedarGateRails() {
	var qty float64
	if c.in.FenceOrientation == "Vertical" {
		for _, width := range c.in.SingleGateWidths {
			if width > 4 {
				qty += 3
			} else {
				qty += 2
			}
		}
	}
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Misc, "cedarGateRail2x4x8", "")
	}
	c.set(9, "2x4x8 incense cedar gate rail", qty, unitCost)
}

// Item 10: 2x4x10 treated rails for double gates wider than 8 ft.
func (c *calc) itemRails10() {
	var qty float64
	if c.in.FenceOrientation == "Vertical" {
		for _, width := range c.in.DoubleGateWidths {
			if width > 8 {
				qty += 3
			}
		}
	}
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Misc, "2x4x10Treated", "")
	}
	c.set(10, "2x4x10 treated", qty, unitCost)
}

// countDoubleGatesUpTo8 counts double gates with a width in (0, 8] ft.
func (c *calc) countDoubleGatesUpTo8() float64 {
	var count float64
	for _, width := range c.in.DoubleGateWidths {
		if width > 0 && width <= 8 {
			count++
		}
	}
	return count
}

// Item 11: 2x4x12 treated. Two additive sub-conditions: three rails per
// double gate wider than 10 ft, plus the fence-run rails when posts are on
// 6 ft centers (including three rails per double gate up to 8 ft). The
// combination is a literal business rule; do not generalize it.
func (c *calc) itemRails11() {
	var qty float64
	if c.in.FenceOrientation == "Vertical" {
		var part1 float64
		for _, width := range c.in.DoubleGateWidths {
			if width > 10 {
				part1 += 3
			}
		}

		var part2 float64
		if c.in.PostSpacing == 6 {
			part2 = c.in.TotalLengthWithGates/7*c.in.NumRails + c.countDoubleGatesUpTo8()*3
		}

		qty = math.Ceil(part1 + part2)
	}
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Misc, "2x4x12Treated", "")
	}
	c.set(11, "2x4x12 treated", qty, unitCost)
}

// Item 12: 2x4x16 treated fence rails for 4 ft and 8 ft post spacing, plus
// three rails per double gate up to 8 ft.
func (c *calc) itemRails12() {
	var qty float64
	if c.in.FenceOrientation == "Vertical" {
		gateRails := c.countDoubleGatesUpTo8() * 3
		switch c.in.PostSpacing {
		case 4:
			qty = math.Ceil(c.in.TotalLengthWithGates/3.5*c.in.NumRails + gateRails)
		case 8:
			qty = math.Ceil(c.in.TotalLengthWithGates/7*c.in.NumRails + gateRails)
		}
	}
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Misc, "2x4x16Treated", "")
	}
	c.set(12, "2x4x16 treated", qty, unitCost)
}

// Item 13: 2x6 baseboard stock, 16 ft boards over the gateless run.
func (c *calc) itemBaseboard2x6() {
	var qty float64
	if c.in.AddBaseboard == "yes" && c.in.BaseboardMaterialSize == "2x6" {
		qty = math.Ceil(c.in.TotalLengthWithoutGates / 16)
	}
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Misc, "2x6x16Treated", "")
	}
	c.set(13, "2x6x16 treated", qty, unitCost)
}

// Item 14: 2x12 baseboard stock, 16 ft boards over the gateless run.
func (c *calc) itemBaseboard2x12() {
	var qty float64
	if c.in.AddBaseboard == "yes" && c.in.BaseboardMaterialSize == "2x12" {
		qty = math.Ceil(c.in.TotalLengthWithoutGates / 16)
	}
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Misc, "2x12x16Treated", "")
	}
	c.set(14, "2x12x16 treated", qty, unitCost)
}

// Item 15: cap boards, one 8 ft board per 7 ft of fence.
func (c *calc) itemCap() {
	if c.in.CapBoardType == "none" || c.in.CapBoardType == "" {
		c.set(15, "None", 0, 0)
		return
	}
	qty := math.Ceil(c.in.TotalLengthWithGates / 7)
	description := fmt.Sprintf("%s x 8 %s", c.in.CapBoardType, c.in.CapBoardWoodType)
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Boards, strings.ToLower(c.in.CapBoardWoodType), c.in.CapBoardType+"x8")
	}
	c.set(15, description, qty, unitCost)
}

// Item 16: trim boards, same board math as the cap.
func (c *calc) itemTrim() {
	if c.in.TrimType == "none" || c.in.TrimType == "" {
		c.set(16, "None", 0, 0)
		return
	}
	qty := math.Ceil(c.in.TotalLengthWithGates / 7)
	description := fmt.Sprintf("%s x 8 %s", c.in.TrimType, c.in.TrimWoodType)
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Boards, strings.ToLower(c.in.TrimWoodType), c.in.TrimType+"x8")
	}
	c.set(16, description, qty, unitCost)
}
