// Package mapping translates natural-language room, object and placement
// phrases (English and Korean) into scene tags and solver stage flags.
//
// The default alias tables are embedded; a Loader merges additional alias
// files over them:
//
//	tables, err := mapping.NewLoader(logger).Load([]string{"aliases/**/*.yaml"}, ".")
//	room, ok := tables.MapRoom("거실") // tags.LivingRoom
package mapping

import (
	_ "embed"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/semtags/tags"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Location is a normalized placement keyword.
type Location string

// Known locations. The *Only variants restrict solving to a subset of stages.
const (
	LocationFloor       Location = "floor"
	LocationFloorOnly   Location = "floor_only"
	LocationWall        Location = "wall"
	LocationWallOnly    Location = "wall_only"
	LocationCeiling     Location = "ceiling"
	LocationCeilingOnly Location = "ceiling_only"
	LocationOnTop       Location = "on_top"
	LocationOnTopOnly   Location = "on_top_only"
)

var locations = []Location{
	LocationFloor, LocationFloorOnly, LocationWall, LocationWallOnly,
	LocationCeiling, LocationCeilingOnly, LocationOnTop, LocationOnTopOnly,
}

// StageType is a detailed placement stage of the solver.
type StageType string

// Stage types grouped by the solver stage they belong to.
const (
	// Large stage.
	StageOnFloorAndWall      StageType = "on_floor_and_wall"
	StageOnFloorFreestanding StageType = "on_floor_freestanding"

	// Medium stage.
	StageOnWall    StageType = "on_wall"
	StageOnCeiling StageType = "on_ceiling"
	StageSideObj   StageType = "side_obj"

	// Small stage.
	StageObjOnTopObj  StageType = "obj_ontop_obj"
	StageObjOnSupport StageType = "obj_on_support"
)

var (
	largeStages  = []StageType{StageOnFloorAndWall, StageOnFloorFreestanding}
	mediumStages = []StageType{StageOnWall, StageOnCeiling, StageSideObj}
	smallStages  = []StageType{StageObjOnTopObj, StageObjOnSupport}
)

// StageTypes returns every stage type in solver order.
func StageTypes() []StageType {
	return slices.Concat(largeStages, mediumStages, smallStages)
}

// file is the on-disk shape of an alias table.
type file struct {
	Rooms      map[string]string `yaml:"rooms"`
	Objects    map[string]string `yaml:"objects"`
	Locations  map[string]string `yaml:"locations"`
	StageTypes map[string]string `yaml:"stage_types"`
}

// Tables holds resolved alias tables. A Tables value is immutable once
// built and safe for concurrent use.
type Tables struct {
	rooms      map[string]tags.Semantics
	objects    map[string]tags.Semantics
	locations  map[string]Location
	stageTypes map[string]StageType
}

func newTables() *Tables {
	return &Tables{
		rooms:      make(map[string]tags.Semantics),
		objects:    make(map[string]tags.Semantics),
		locations:  make(map[string]Location),
		stageTypes: make(map[string]StageType),
	}
}

func (t *Tables) clone() *Tables {
	return &Tables{
		rooms:      maps.Clone(t.rooms),
		objects:    maps.Clone(t.objects),
		locations:  maps.Clone(t.locations),
		stageTypes: maps.Clone(t.stageTypes),
	}
}

// merge validates f and overlays its entries onto t. Later files win; two
// aliases of one file that normalize to the same key must agree.
func (t *Tables) merge(f file) error {
	if err := overlay(t.rooms, f.Rooms, "room", semanticsByName); err != nil {
		return err
	}
	if err := overlay(t.objects, f.Objects, "object", semanticsByName); err != nil {
		return err
	}
	if err := overlay(t.locations, f.Locations, "location", func(v string) (Location, error) {
		loc := Location(v)
		if !slices.Contains(locations, loc) {
			return "", fmt.Errorf("unknown location %q", v)
		}
		return loc, nil
	}); err != nil {
		return err
	}
	return overlay(t.stageTypes, f.StageTypes, "stage type", func(v string) (StageType, error) {
		st := StageType(v)
		if !slices.Contains(StageTypes(), st) {
			return "", fmt.Errorf("unknown stage type %q", v)
		}
		return st, nil
	})
}

// overlay resolves each alias of src in sorted order and stores it in dst
// under its normalized key.
func overlay[V comparable](dst map[string]V, src map[string]string, kind string, resolve func(string) (V, error)) error {
	first := make(map[string]string, len(src))
	resolved := make(map[string]V, len(src))
	for _, alias := range slices.Sorted(maps.Keys(src)) {
		v, err := resolve(src[alias])
		if err != nil {
			return fmt.Errorf("%s alias %q: %w", kind, alias, err)
		}
		key := Normalize(alias)
		if prev, ok := first[key]; ok && resolved[key] != v {
			return fmt.Errorf("%s aliases %q and %q both normalize to %q but map to %v and %v",
				kind, prev, alias, key, resolved[key], v)
		}
		if _, ok := first[key]; !ok {
			first[key] = alias
		}
		resolved[key] = v
	}
	maps.Copy(dst, resolved)
	return nil
}

// semanticsByName resolves a Semantics member name through the tag
// canonicalizer, so aliases such as AccessSit resolve like any other input.
func semanticsByName(name string) (tags.Semantics, error) {
	tag, err := tags.ToTag(name, nil)
	if err != nil {
		return "", err
	}
	s, ok := tag.(tags.Semantics)
	if !ok {
		return "", fmt.Errorf("%s is not a Semantics member", tag.GoString())
	}
	return s, nil
}

func parse(data []byte) (file, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return file{}, fmt.Errorf("failed to parse alias file: %w", err)
	}
	return f, nil
}

var defaultTables = sync.OnceValues(func() (*Tables, error) {
	f, err := parse(defaultsYAML)
	if err != nil {
		return nil, err
	}
	t := newTables()
	if err := t.merge(f); err != nil {
		return nil, err
	}
	return t, nil
})

// Default returns the embedded alias tables.
func Default() *Tables {
	t, err := defaultTables()
	if err != nil {
		panic(fmt.Sprintf("mapping: embedded alias tables: %v", err))
	}
	return t
}

// Normalize canonicalizes a phrase for lookup: NFC normalization, Unicode
// case folding, trimmed and with inner whitespace collapsed.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = cases.Fold().String(s)
	return strings.Join(strings.Fields(s), " ")
}

// MapRoom maps a room name to its room Semantics tag.
func (t *Tables) MapRoom(name string) (tags.Semantics, bool) {
	s, ok := t.rooms[Normalize(name)]
	return s, ok
}

// MapObject maps an object name to its Semantics tag.
func (t *Tables) MapObject(name string) (tags.Semantics, bool) {
	s, ok := t.objects[Normalize(name)]
	return s, ok
}

// ParseLocation maps a placement phrase to its normalized location.
func (t *Tables) ParseLocation(keyword string) (Location, bool) {
	loc, ok := t.locations[Normalize(keyword)]
	return loc, ok
}

// ParseStageType maps a placement phrase to a detailed stage type.
func (t *Tables) ParseStageType(keyword string) (StageType, bool) {
	st, ok := t.stageTypes[Normalize(keyword)]
	return st, ok
}

// RoomTags returns the distinct room tags reachable by some alias, sorted
// by name.
func (t *Tables) RoomTags() []tags.Semantics {
	return distinct(t.rooms)
}

// ObjectTags returns the distinct object tags reachable by some alias,
// sorted by name.
func (t *Tables) ObjectTags() []tags.Semantics {
	return distinct(t.objects)
}

// Aliases returns the number of room, object, location and stage type
// aliases.
func (t *Tables) Aliases() (rooms, objects, locations, stageTypes int) {
	return len(t.rooms), len(t.objects), len(t.locations), len(t.stageTypes)
}

func distinct(m map[string]tags.Semantics) []tags.Semantics {
	out := slices.Collect(maps.Values(m))
	slices.SortFunc(out, func(a, b tags.Semantics) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return slices.Compact(out)
}

// MapRoom maps a room name using the default tables.
func MapRoom(name string) (tags.Semantics, bool) { return Default().MapRoom(name) }

// MapObject maps an object name using the default tables.
func MapObject(name string) (tags.Semantics, bool) { return Default().MapObject(name) }

// ParseLocation parses a location keyword using the default tables.
func ParseLocation(keyword string) (Location, bool) { return Default().ParseLocation(keyword) }

// ParseStageType parses a stage type keyword using the default tables.
func ParseStageType(keyword string) (StageType, bool) { return Default().ParseStageType(keyword) }
