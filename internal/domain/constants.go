package domain

const (
	RoleStaff  = "STAFF"
	RoleViewer = "VIEWER"
)

// Member positions.
const (
	PositionSarpanch   = "sarpanch"
	PositionUpsarpanch = "upsarpanch"
	PositionMember     = "member"
	PositionSecretary  = "secretary"
	PositionTreasurer  = "treasurer"
	PositionOther      = "other"
)

// PositionLabels maps a stored position code to its display label.
// Labels are looked up at read time and never stored.
var PositionLabels = map[string]string{
	PositionSarpanch:   "Sarpanch (Village Head)",
	PositionUpsarpanch: "Up-Sarpanch (Deputy Head)",
	PositionMember:     "Ward Member",
	PositionSecretary:  "Secretary",
	PositionTreasurer:  "Treasurer",
	PositionOther:      "Other",
}

// SchemeCategoryLabels maps a scheme category code to its display label.
var SchemeCategoryLabels = map[string]string{
	"health":         "Health & Wellness",
	"education":      "Education",
	"agriculture":    "Agriculture",
	"infrastructure": "Infrastructure",
	"social":         "Social Security",
	"skill":          "Skill Development",
	"other":          "Other",
}

// GalleryCategoryLabels maps a gallery category code to its display label.
var GalleryCategoryLabels = map[string]string{
	"event":          "Events",
	"infrastructure": "Infrastructure",
	"agriculture":    "Agriculture",
	"festival":       "Festivals",
	"ceremony":       "Ceremonies",
	"other":          "Other",
}

func ValidPosition(p string) bool {
	_, ok := PositionLabels[p]
	return ok
}

func ValidSchemeCategory(c string) bool {
	_, ok := SchemeCategoryLabels[c]
	return ok
}

func ValidGalleryCategory(c string) bool {
	_, ok := GalleryCategoryLabels[c]
	return ok
}

func PositionLabel(p string) string {
	if l, ok := PositionLabels[p]; ok {
		return l
	}
	return p
}

func SchemeCategoryLabel(c string) string {
	if l, ok := SchemeCategoryLabels[c]; ok {
		return l
	}
	return c
}

func GalleryCategoryLabel(c string) string {
	if l, ok := GalleryCategoryLabels[c]; ok {
		return l
	}
	return c
}

// Ordered enum listings for form selects and filter bars (map iteration
// order is random).
var (
	Positions = []string{
		PositionSarpanch, PositionUpsarpanch, PositionMember,
		PositionSecretary, PositionTreasurer, PositionOther,
	}
	SchemeCategories = []string{
		"health", "education", "agriculture", "infrastructure",
		"social", "skill", "other",
	}
	GalleryCategories = []string{
		"event", "infrastructure", "agriculture", "festival",
		"ceremony", "other",
	}
)
