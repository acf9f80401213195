package fence

import (
	"math"

	"github.com/rangecraft/fenceworks/internal/catalog"
)

// Item 17: pipe ties connecting wood rails to metal posts. One per rail per
// post, plus one for a 2x6 baseboard or two for a 2x12, over every metal
// post including the flanged ones.
func (c *calc) itemPipeTies() {
	var qty float64
	if ParsePostType(c.in.StandardPostType).IsSchedule() {
		perPost := c.in.NumRails
		if c.in.AddBaseboard == "yes" {
			switch c.in.BaseboardMaterialSize {
			case "2x6":
				perPost++
			case "2x12":
				perPost += 2
			}
		}
		totalPosts := c.qty(1) + c.in.NumFlangedCentered + c.in.NumFlangedOffCentered
		qty = perPost * totalPosts
	}
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Misc, "pipeTie", "")
	}
	c.set(17, "Pipe tie/ wood to metal connector", qty, unitCost)
}

// Item 18: post caps, one per metal post.
func (c *calc) itemPostCaps() {
	var qty float64
	if ParsePostType(c.in.StandardPostType).IsSchedule() {
		qty = c.qty(1) + c.in.NumFlangedCentered + c.in.NumFlangedOffCentered
	}
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Misc, "postCap", "")
	}
	c.set(18, "2 3/8\"", qty, unitCost)
}

// Item 19: lag screws, four per pipe tie, sold in boxes of 100.
func (c *calc) itemLagScrews() {
	var qty float64
	if c.qty(17) > 0 {
		qty = math.Ceil(c.qty(17) * 4 / 100)
	}
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Misc, "lagScrew100pc", "")
	}
	c.set(19, "1/4\" x 1 1/2\"", qty, unitCost)
}

// Item 20: hinge and latch kits for swinging gates.
func (c *calc) itemGateHardware() {
	qty := c.in.NumSingleGates + c.in.NumDoubleGates
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Misc, "gateHingePostLatchKit", "")
	}
	c.set(20, "Hinge post latch kit", qty, unitCost)
}

// Item 21: extra hinge sets, one per double gate.
func (c *calc) itemDoubleGateHinges() {
	qty := c.in.NumDoubleGates
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Misc, "hingeSetDoubleGate", "")
	}
	c.set(21, "Hinge set for double gate", qty, unitCost)
}

// Item 22: cane bolt sets, two per double gate.
func (c *calc) itemCaneBolts() {
	qty := c.in.NumDoubleGates * 2
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Misc, "caneBoltSet", "")
	}
	c.set(22, "18\"", qty, unitCost)
}

// Item 23: industrial drop latches, opt-in, one per double gate.
func (c *calc) itemDropLatches() {
	var qty float64
	if c.in.IndustrialLatch == "yes" {
		qty = c.in.NumDoubleGates
	}
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Misc, "industrialDropLatch", "")
	}
	c.set(23, "Industrial drop latch", qty, unitCost)
}

// Item 24: guides matching the drop latches.
func (c *calc) itemDropLatchGuides() {
	var qty float64
	if c.in.IndustrialLatch == "yes" {
		qty = c.in.NumDoubleGates
	}
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Misc, "industrialDropLatchGuides", "")
	}
	c.set(24, "Industrial drop latch guides", qty, unitCost)
}

// Item 25: EMT sleeves, one per cane bolt.
func (c *calc) itemEMT() {
	qty := c.qty(22)
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Misc, "emt", "")
	}
	c.set(25, "EMT", qty, unitCost)
}

// Item 26: welded metal gate frames, two leaves per double gate. Frames for
// baseboard fences are a taller, pricier build.
func (c *calc) itemMetalFrames() {
	if c.in.UseMetalGateFrames != "yes" {
		c.set(26, "Not selected", 0, 0)
		return
	}
	qty := c.in.NumDoubleGates * 2
	var description string
	var unitCost float64
	if c.in.AddBaseboard == "none" {
		description = "No baseboard"
		if qty > 0 {
			unitCost = c.price(catalog.Misc, "metalGateFrame", "")
		}
	} else {
		description = "With baseboard"
		if qty > 0 {
			unitCost = c.price(catalog.Misc, "metalGateFrameBaseboard", "")
		}
	}
	c.set(26, description, qty, unitCost)
}

// Item 27: framing screws for wooden-post fences. Twelve per 10/12 ft rail
// and baseboard, ten per 16 ft rail, boxed by the hundred.
func (c *calc) itemFramingScrews() {
	var qty float64
	if ParsePostType(c.in.StandardPostType).IsWood() {
		screwCount := (c.qty(10)+c.qty(11)+c.qty(13)+c.qty(14))*12 + c.qty(12)*10
		qty = math.Ceil(screwCount / 100)
	}
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Misc, "starHeadScrews3inchBox", "")
	}
	c.set(27, "Star head wood deck screws - 3\"", qty, unitCost)
}

// Item 28: picket nails, one roll per 22 ft, only when pickets are nailed.
func (c *calc) itemPicketNails() {
	var qty float64
	if c.in.UseScrews == "No" {
		qty = math.Ceil(c.in.TotalLengthWithGates / 22)
	}
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Misc, "picketNailsRoll", "")
	}
	c.set(28, "Picket nails", qty, unitCost)
}

// Item 29: picket screws when the screws upgrade is selected: two per rail
// per picket, priced per screw (box price divided by 100).
func (c *calc) itemPicketScrews() {
	var qty float64
	if c.in.UseScrews == "Yes" {
		totalPickets := c.qty(6) + c.qty(7)
		qty = math.Ceil(totalPickets * c.in.NumRails * 2)
	}
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Misc, "starHeadScrews1_5inchBox", "") / 100
	}
	c.set(29, "Star head wood deck screws - 1 5/8\"", qty, unitCost)
}

// Item 30: wedge anchors, four per flanged post.
func (c *calc) itemWedgeAnchors() {
	qty := (c.in.NumFlangedCentered + c.in.NumFlangedOffCentered) * 4
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Misc, "wedgeAnchor", "")
	}
	c.set(30, "1/2\" x 3 3/4\"", qty, unitCost)
}

// Item 31: cantilever posts, three per sliding gate. 6 ft fences take the
// 9 ft schedule 40 post, everything else the 12 ft.
func (c *calc) itemCantileverPosts() {
	qty := c.in.NumSlidingGates * 3

	length := "12"
	description := "4\" x 12 Sch 40"
	if c.in.FenceHeight == 6 {
		length = "9"
		description = "4\" x 9 Sch 40"
	}
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Posts, "schedule40_4inch", length)
	}
	c.set(31, description, qty, unitCost)
}

// Item 32: cantilever rollers, four per sliding gate.
func (c *calc) itemCantileverRollers() {
	qty := c.in.NumSlidingGates * 4
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Misc, "cantileverRoller", "")
	}
	c.set(32, "Cantilever / sliding gate rollers", qty, unitCost)
}

// Item 33: cantilever latches, one per sliding gate.
func (c *calc) itemCantileverLatches() {
	qty := c.in.NumSlidingGates
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Misc, "cantileverLatch", "")
	}
	c.set(33, "Cantilever / sliding gate latch", qty, unitCost)
}
