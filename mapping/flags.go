package mapping

// StageFlags enables or disables the three solver stages.
type StageFlags struct {
	Large  bool `json:"solve_large_enabled" yaml:"solve_large_enabled"`
	Medium bool `json:"solve_medium_enabled" yaml:"solve_medium_enabled"`
	Small  bool `json:"solve_small_enabled" yaml:"solve_small_enabled"`
}

// AllStages enables every stage.
var AllStages = StageFlags{Large: true, Medium: true, Small: true}

// FlagsForLocation derives stage flags from a normalized location. Only the
// *Only locations restrict stages; anything else enables all of them.
func FlagsForLocation(loc Location) StageFlags {
	switch loc {
	case LocationFloorOnly:
		return StageFlags{Large: true}
	case LocationWallOnly, LocationCeilingOnly:
		return StageFlags{Medium: true}
	case LocationOnTopOnly:
		return StageFlags{Small: true}
	default:
		return AllStages
	}
}

// LocationStageFlags parses a location phrase and derives its stage flags.
// Unknown phrases enable all stages.
func (t *Tables) LocationStageFlags(location string) StageFlags {
	loc, _ := t.ParseLocation(location)
	return FlagsForLocation(loc)
}

// LocationStageFlags derives stage flags using the default tables.
func LocationStageFlags(location string) StageFlags {
	return Default().LocationStageFlags(location)
}

// StageTypesToFlags converts detailed stage types to stage flags.
//
// When exclusive is false the stage types are descriptive only and every
// stage stays enabled. When exclusive is true a stage is enabled only if one
// of its stage types is explicitly true, with two dependencies enforced: the
// small stage and side_obj both need the large stage to place base objects.
func StageTypesToFlags(types map[StageType]bool, exclusive bool) StageFlags {
	if len(types) == 0 || !exclusive {
		return AllStages
	}

	flags := StageFlags{
		Large:  anyTrue(types, largeStages),
		Medium: anyTrue(types, mediumStages),
		Small:  anyTrue(types, smallStages),
	}
	if flags.Small || types[StageSideObj] {
		flags.Large = true
	}
	return flags
}

func anyTrue(types map[StageType]bool, stages []StageType) bool {
	for _, st := range stages {
		if types[st] {
			return true
		}
	}
	return false
}
