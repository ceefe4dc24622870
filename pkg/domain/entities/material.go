package entities

// MaterialCode is an opaque material identifier. Codes are trimmed of
// surrounding whitespace on entry; comparisons are case-sensitive.
type MaterialCode string

// Classification places a material in the BOM hierarchy.
type Classification int

const (
	Unknown Classification = iota
	Raw
	Manufactured
	Finished
)

// String method for Classification enum
func (c Classification) String() string {
	switch c {
	case Raw:
		return "Raw"
	case Manufactured:
		return "Manufactured"
	case Finished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// UnknownLevel is the level assigned to a material with no parent chain
// reaching any plan top-level code.
const UnknownLevel = 999

// Material holds the metadata accumulated for one material code while
// building relations: description, units, classification, and the level
// in the BOM hierarchy once computed.
type Material struct {
	Code             MaterialCode
	Description      string
	OriginalUnit     string
	StandardizedUnit string
	ControllerTag    string
	Type             Classification
	Level            int
}
