package fence

import "strings"

// PostType is a parsed post-type code.
type PostType struct {
	// Material is the family portion of the code: "wood_treated",
	// "wood_cedar", "postMaster", "schedule20", "schedule40", or "unknown".
	Material string
	// Size is the nominal cross-section ("4x4", "2.3/8", ...); empty for
	// postMaster and unknown codes.
	Size string
}

// IsWood reports whether the post is a wooden species (not postMaster).
func (p PostType) IsWood() bool { return strings.HasPrefix(p.Material, "wood_") }

// IsSchedule reports whether the post is schedule 20 or schedule 40 pipe.
func (p PostType) IsSchedule() bool { return strings.HasPrefix(p.Material, "schedule") }

// Species returns the wood species portion ("treated", "cedar") or
// "Post Master" for postMaster posts.
func (p PostType) Species() string {
	if p.Material == "postMaster" {
		return "Post Master"
	}
	if _, species, ok := strings.Cut(p.Material, "_"); ok {
		return species
	}
	return ""
}

// CatalogVariant is the post-price variant key for this post type, e.g.
// "wood_treated_4x4" or "schedule20_2_3_8".
func (p PostType) CatalogVariant() string {
	switch {
	case p.IsWood():
		return p.Material + "_" + p.Size
	case p.IsSchedule():
		return p.Material + "_" + strings.NewReplacer(".", "_", "/", "_").Replace(p.Size)
	case p.Material == "postMaster":
		return "postMaster"
	}
	return ""
}

// ParsePostType parses a compound post-type code such as "wood_treated_4x4",
// "postMaster", "schedule20_2-3/8" or "schedule40_4inch". Unknown codes
// resolve to material "unknown" and contribute zero cost downstream rather
// than failing the estimate.
func ParsePostType(code string) PostType {
	parts := strings.Split(code, "_")
	switch parts[0] {
	case "wood":
		if len(parts) >= 3 {
			return PostType{Material: "wood_" + parts[1], Size: parts[2]}
		}
	case "postMaster":
		return PostType{Material: "postMaster"}
	case "schedule20", "schedule40":
		if len(parts) >= 2 {
			return PostType{Material: parts[0], Size: strings.ReplaceAll(parts[1], "-", ".")}
		}
	}
	return PostType{Material: "unknown"}
}

// RequiredPostLength selects the stock post length for a given total buried
// height (fence height plus hole depth, both in feet). Band edges are
// inclusive on the lower side, so a total height exactly at a threshold picks
// the shorter stock length. This matches the supplier's cut table and must
// not be "corrected".
func RequiredPostLength(p PostType, fenceHeightFt, holeDepthFt float64) string {
	totalHeight := fenceHeightFt + holeDepthFt

	switch {
	case p.IsWood() || p.Material == "postMaster":
		switch {
		case totalHeight <= 8.5:
			return "8"
		case totalHeight <= 10.5:
			return "10"
		default:
			return "12"
		}
	case p.IsSchedule():
		if p.Size == "4inch" {
			// Cantilever posts come in two stock lengths only.
			if totalHeight <= 9 {
				return "9"
			}
			return "12"
		}
		switch {
		case totalHeight <= 5.5:
			return "5"
		case totalHeight <= 6.5:
			return "6"
		case totalHeight <= 7.5:
			return "7"
		case totalHeight <= 8.5:
			return "8"
		case totalHeight <= 9.5:
			return "9"
		case totalHeight <= 11:
			return "10.5"
		case totalHeight <= 12.5:
			return "12"
		}
		if p.Material == "schedule40" {
			return "12"
		}
		return "8"
	}
	return "8"
}
