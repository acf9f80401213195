package fence

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rangecraft/fenceworks/internal/catalog"
)

// Item 1: line posts. Each pull contributes floor((length-1)/spacing)+2 end
// posts; corners and gate openings each absorb one post.
func (c *calc) itemPosts() {
	var qty float64
	for _, pull := range c.in.PullLengths {
		if pull > 0 && c.in.PostSpacing > 0 {
			qty += math.Floor((pull-1)/c.in.PostSpacing) + 2
		}
	}
	qty -= c.in.NumCorners
	qty -= c.in.TotalGates()

	post := ParsePostType(c.in.StandardPostType)
	length := RequiredPostLength(post, c.in.FenceHeight, c.in.HoleDepthInches/12)

	var description string
	var unitCost float64
	switch {
	case post.IsWood() || post.Material == "postMaster":
		description = fmt.Sprintf("%s x %sft %s", post.Size, length, post.Species())
		unitCost = c.price(catalog.Posts, post.CatalogVariant(), length)
	case post.IsSchedule():
		description = fmt.Sprintf("%s x %sft %s", strings.ReplaceAll(post.Size, ".", "-"), length, post.Material)
		unitCost = c.price(catalog.Posts, post.CatalogVariant(), length)
	}

	c.set(1, description, qty, unitCost)
}

// Item 2: incense cedar gate posts, only for wooden fences up to 6 ft; two
// posts per single gate.
func (c *calc) itemCedarGatePosts() {
	var qty float64
	if ParsePostType(c.in.StandardPostType).IsWood() && c.in.FenceHeight <= 6 {
		qty = c.in.NumSingleGates * 2
	}
	var unitCost float64
	if qty > 0 {
		unitCost = c.price(catalog.Posts, "wood_cedar_4x4", "8")
	}
	c.set(2, "4x4x8 incense cedar", qty, unitCost)
}

// Items 3 and 4: flanged posts, centered and off-centered. Quantity is taken
// directly from the inputs; both use 2 3/8" schedule 20 pipe at the entered
// flange height.
func (c *calc) itemFlangedPosts() {
	sizeKey := strconv.FormatFloat(c.in.FlangedPostHeight, 'f', -1, 64)
	description := fmt.Sprintf("2 3/8\" x %sft Sch 20", sizeKey)

	var unitCost float64
	if c.in.NumFlangedCentered > 0 || c.in.NumFlangedOffCentered > 0 {
		unitCost = c.price(catalog.Posts, "schedule20_2_3_8", sizeKey)
	}

	c.set(3, description, c.in.NumFlangedCentered, unitCost)
	c.set(4, description, c.in.NumFlangedOffCentered, unitCost)
}

// Item 5: concrete. Per-hole volume is the cylinder of the dug hole minus the
// buried post cross-section, converted through the 133/60 weight-to-bag
// constant. Bag counts round up; truck delivery is a cubic-yard equivalent
// (divided by 59) and stays fractional.
func (c *calc) itemConcrete() {
	totalPosts := c.qty(1) + c.qty(2) + c.qty(3) + c.qty(4)
	if totalPosts <= 0 {
		c.set(5, c.in.ConcreteType, 0, 0)
		return
	}

	holeRadiusFt := (c.in.HoleWidthInches / 2) / 12
	holeDepthFt := c.in.HoleDepthInches / 12
	holeVolume := math.Pi * holeRadiusFt * holeRadiusFt * holeDepthFt

	var postVolume float64
	switch post := ParsePostType(c.in.StandardPostType); post.Size {
	case "4x4":
		postVolume = (3.5 * 3.5 / 144) * holeDepthFt // actual 3.5" x 3.5"
	case "4x6":
		postVolume = (3.5 * 5.5 / 144) * holeDepthFt
	case "6x6":
		postVolume = (5.5 * 5.5 / 144) * holeDepthFt
	case "2.3/8", "2-3/8":
		postRadiusFt := (2.375 / 2) / 12
		postVolume = math.Pi * postRadiusFt * postRadiusFt * holeDepthFt
	}

	concretePerHole := (holeVolume - postVolume) * 133 / 60
	needed := concretePerHole * totalPosts * 1.1

	var qty, unitCost float64
	description := c.in.ConcreteType
	switch c.in.ConcreteType {
	case "truck":
		qty = needed / 59
		unitCost = c.price(catalog.Concrete, "truck", "")
		description = "Truck concrete"
	case "red":
		qty = math.Ceil(needed)
		unitCost = c.price(catalog.Concrete, "red", "")
		description = "Red concrete bags"
	case "yellow":
		qty = math.Ceil(needed)
		unitCost = c.price(catalog.Concrete, "yellow", "")
		description = "Yellow concrete bags"
	}

	c.set(5, description, qty, unitCost)
}
