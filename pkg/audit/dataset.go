package audit

// Component categories in the source data.
const (
	CategoryBasicSubstrates      = "basic_substrates"
	CategoryAdditionalComponents = "additional_components"
)

// Plant is a single plant record. ID is the record's key in the source
// collection; Name is the display name shown to users.
type Plant struct {
	ID           string
	Name         string
	Soil         SoilSelection
	Watering     Watering
	WickWatering WickWatering
}

// SoilSelection describes which soil mix a plant uses. MixNumber references
// SoilMix.Number; AlternativeMix is free text whose leading token may be a
// mix number.
type SoilSelection struct {
	MixNumber      string
	AlternativeMix string
}

// Watering describes how a plant is watered. Method is a free-text label
// such as "Manual" or "Manual/Wick".
type Watering struct {
	Method string
}

// WickWatering holds the wick-watering recommendation. Recommended is
// tri-state: nil means the field is absent from the source record.
type WickWatering struct {
	Recommended *bool
}

// SoilMix is a soil mix recipe. Number is the identifier plants reference
// via SoilSelection.MixNumber.
type SoilMix struct {
	ID     string
	Number string
}

// Component is a soil component from one of the two catalog categories.
// Name is matched by case-insensitive substring, not exact key.
type Component struct {
	ID       string
	Category string
	Name     string
}

// WaterRequirement is an individual watering requirement. It corresponds to
// a plant by PlantName equality, not by ID. PPMRange and PHRange are text
// fields of the form "<min>-<max>".
type WaterRequirement struct {
	ID        string
	PlantName string
	Group     string
	PPMRange  string
	PHRange   string
}

// WaterGroup is a named watering group. The group letter is the upper-cased
// suffix of ID after the last underscore ("water_group_a" -> "A"). Plants
// lists the display names of the claimed members.
type WaterGroup struct {
	ID     string
	Plants []string
}

// Dataset is the immutable bundle of collections an audit runs against.
// Slices preserve the insertion order of the source mappings; rules must
// not mutate the bundle.
type Dataset struct {
	Plants            []Plant
	SoilMixes         []SoilMix
	Components        []Component
	WaterRequirements []WaterRequirement
	WaterGroups       []WaterGroup
}
