package tags

import "fmt"

// Semantics is a member of the Semantics vocabulary: room kinds, object kinds,
// furniture functions, structural markers, access methods and solver flags.
// The underlying string is the canonical vocabulary value.
type Semantics string

// Mesh types.
const (
	Room   Semantics = "room"
	Object Semantics = "object"
	Cutter Semantics = "cutter"
)

// Room types.
const (
	Kitchen       Semantics = "kitchen"
	Bedroom       Semantics = "bedroom"
	LivingRoom    Semantics = "living-room"
	Closet        Semantics = "closet"
	Hallway       Semantics = "hallway"
	Bathroom      Semantics = "bathroom"
	Garage        Semantics = "garage"
	Balcony       Semantics = "balcony"
	DiningRoom    Semantics = "dining-room"
	Utility       Semantics = "utility"
	StaircaseRoom Semantics = "staircase-room"
	Warehouse     Semantics = "warehouse"
	Office        Semantics = "office"
	MeetingRoom   Semantics = "meeting-room"
	OpenOffice    Semantics = "open-office"
	BreakRoom     Semantics = "break-room"
	Restroom      Semantics = "restroom"
	FactoryOffice Semantics = "factory-office"
)

// Structural and graph markers.
const (
	Root        Semantics = "root"
	NewNode     Semantics = "new"
	RoomNode    Semantics = "room-node"
	GroundFloor Semantics = "ground"
	SecondFloor Semantics = "second-floor"
	ThirdFloor  Semantics = "third-floor"
	Exterior    Semantics = "exterior"
	Staircase   Semantics = "staircase"
	Visited     Semantics = "visited"
	RoomContour Semantics = "room-contour"
)

// Object types.
const (
	Furniture      Semantics = "furniture"
	FloorMat       Semantics = "FloorMat"
	WallDecoration Semantics = "wall-decoration"
	HandheldItem   Semantics = "handheld-item"
)

// Furniture functions.
const (
	Storage          Semantics = "storage"
	Seating          Semantics = "seatng"
	LoungeSeating    Semantics = "lounge-seating"
	Table            Semantics = "table"
	Bathing          Semantics = "bathing"
	SideTable        Semantics = "side-table"
	Watchable        Semantics = "watchable"
	Desk             Semantics = "desk"
	Bed              Semantics = "bed"
	Sink             Semantics = "sink"
	CeilingLight     Semantics = "ceiling-light"
	Lighting         Semantics = "lighting"
	KitchenCounter   Semantics = "kitchen-counter"
	KitchenAppliance Semantics = "kitchen-appliance"
)

// Small object functions.
const (
	TableDisplayItem   Semantics = "table-display-item"
	OfficeShelfItem    Semantics = "office-shelf-item"
	KitchenCounterItem Semantics = "kitchen-counter-item"
	FoodPantryItem     Semantics = "food-pantry"
	BathroomItem       Semantics = "bathroom-item"
	ShelfTrinket       Semantics = "shelf-trinket"
	Dishware           Semantics = "dishware"
	Cookware           Semantics = "cookware"
	Utensils           Semantics = "utensils"
	ClothDrapeItem     Semantics = "cloth-drape"
)

// Object access types.
const (
	AccessTop      Semantics = "access-top"
	AccessFront    Semantics = "access-front"
	AccessAnySide  Semantics = "access-any-side"
	AccessAllSides Semantics = "access-all-sides"
)

// Object access methods. AccessSit shares its value with AccessStandingNear
// and is therefore the same tag.
const (
	AccessStandingNear Semantics = "access-stand-near"
	AccessSit          Semantics = "access-stand-near"
	AccessOpenDoor     Semantics = "access-open-door"
	AccessHand         Semantics = "access-with-hand"
)

// Special case objects.
const (
	Chair    Semantics = "chair"
	Window   Semantics = "window"
	Open     Semantics = "open"
	Entrance Semantics = "entrance"
	Door     Semantics = "door"
)

// Solver feature flags, configuring per-asset solver behavior.
const (
	RealPlaceholder             Semantics = "real-placeholder"
	OversizePlaceholder         Semantics = "oversize-placeholder"
	AssetAsPlaceholder          Semantics = "asset-as-placeholder"
	AssetPlaceholderForChildren Semantics = "asset-placeholder-for-children"
	PlaceholderBBox             Semantics = "placeholder-bbox"
	SingleGenerator             Semantics = "single-generator"
	NoRotation                  Semantics = "no-rotation"
	NoCollision                 Semantics = "no-collision"
	NoChildren                  Semantics = "no-children"
)

var semanticsVocab = newVocabulary(VocabularySemantics, []member[Semantics]{
	{"Room", Room},
	{"Object", Object},
	{"Cutter", Cutter},

	{"Kitchen", Kitchen},
	{"Bedroom", Bedroom},
	{"LivingRoom", LivingRoom},
	{"Closet", Closet},
	{"Hallway", Hallway},
	{"Bathroom", Bathroom},
	{"Garage", Garage},
	{"Balcony", Balcony},
	{"DiningRoom", DiningRoom},
	{"Utility", Utility},
	{"StaircaseRoom", StaircaseRoom},
	{"Warehouse", Warehouse},
	{"Office", Office},
	{"MeetingRoom", MeetingRoom},
	{"OpenOffice", OpenOffice},
	{"BreakRoom", BreakRoom},
	{"Restroom", Restroom},
	{"FactoryOffice", FactoryOffice},

	{"Root", Root},
	{"New", NewNode},
	{"RoomNode", RoomNode},
	{"GroundFloor", GroundFloor},
	{"SecondFloor", SecondFloor},
	{"ThirdFloor", ThirdFloor},
	{"Exterior", Exterior},
	{"Staircase", Staircase},
	{"Visited", Visited},
	{"RoomContour", RoomContour},

	{"Furniture", Furniture},
	{"FloorMat", FloorMat},
	{"WallDecoration", WallDecoration},
	{"HandheldItem", HandheldItem},

	{"Storage", Storage},
	{"Seating", Seating},
	{"LoungeSeating", LoungeSeating},
	{"Table", Table},
	{"Bathing", Bathing},
	{"SideTable", SideTable},
	{"Watchable", Watchable},
	{"Desk", Desk},
	{"Bed", Bed},
	{"Sink", Sink},
	{"CeilingLight", CeilingLight},
	{"Lighting", Lighting},
	{"KitchenCounter", KitchenCounter},
	{"KitchenAppliance", KitchenAppliance},

	{"TableDisplayItem", TableDisplayItem},
	{"OfficeShelfItem", OfficeShelfItem},
	{"KitchenCounterItem", KitchenCounterItem},
	{"FoodPantryItem", FoodPantryItem},
	{"BathroomItem", BathroomItem},
	{"ShelfTrinket", ShelfTrinket},
	{"Dishware", Dishware},
	{"Cookware", Cookware},
	{"Utensils", Utensils},
	{"ClothDrapeItem", ClothDrapeItem},

	{"AccessTop", AccessTop},
	{"AccessFront", AccessFront},
	{"AccessAnySide", AccessAnySide},
	{"AccessAllSides", AccessAllSides},

	{"AccessStandingNear", AccessStandingNear},
	{"AccessSit", AccessSit},
	{"AccessOpenDoor", AccessOpenDoor},
	{"AccessHand", AccessHand},

	{"Chair", Chair},
	{"Window", Window},
	{"Open", Open},
	{"Entrance", Entrance},
	{"Door", Door},

	{"RealPlaceholder", RealPlaceholder},
	{"OversizePlaceholder", OversizePlaceholder},
	{"AssetAsPlaceholder", AssetAsPlaceholder},
	{"AssetPlaceholderForChildren", AssetPlaceholderForChildren},
	{"PlaceholderBBox", PlaceholderBBox},
	{"SingleGenerator", SingleGenerator},
	{"NoRotation", NoRotation},
	{"NoCollision", NoCollision},
	{"NoChildren", NoChildren},
})

var (
	roomTypes = []Semantics{
		Kitchen, Bedroom, LivingRoom, Closet, Hallway, Bathroom, Garage,
		Balcony, DiningRoom, Utility, StaircaseRoom, Warehouse, Office,
		MeetingRoom, OpenOffice, BreakRoom, Restroom, FactoryOffice,
	}

	structuralTypes = []Semantics{
		Root, NewNode, RoomNode, GroundFloor, SecondFloor, ThirdFloor,
		Exterior, Staircase, Visited, RoomContour, Room, Object, Cutter,
	}

	solverFlags = []Semantics{
		RealPlaceholder, OversizePlaceholder, AssetAsPlaceholder,
		AssetPlaceholderForChildren, PlaceholderBBox, SingleGenerator,
		NoRotation, NoCollision, NoChildren,
	}
)

func (Semantics) Kind() Kind { return KindSemantics }
func (s Semantics) Negate() Tag { return Negated{inner: s} }
func (Semantics) Vocabulary() string { return VocabularySemantics }
func (s Semantics) Value() string { return string(s) }
func (Semantics) isTag() {}

// Name returns the canonical member name, or "" if s is not a member.
func (s Semantics) Name() string {
	return semanticsVocab.memberName(s)
}

// Valid reports whether s is a member of the vocabulary.
func (s Semantics) Valid() bool {
	return semanticsVocab.valid(s)
}

// Less orders members by name.
func (s Semantics) Less(other Semantics) bool {
	return s.Name() < other.Name()
}

// String returns Semantics(value).
func (s Semantics) String() string {
	return "Semantics(" + string(s) + ")"
}

// GoString returns Semantics.Name.
func (s Semantics) GoString() string {
	if !s.Valid() {
		return fmt.Sprintf("Semantics(%q)", string(s))
	}
	return "Semantics." + s.Name()
}

// LookupSemantics resolves a member by name. Aliases resolve to their
// canonical member.
func LookupSemantics(name string) (Semantics, bool) {
	return semanticsVocab.lookup(name)
}

// SemanticsValues returns every member once, sorted by name.
func SemanticsValues() []Semantics {
	return semanticsVocab.values()
}

// Floors returns the floor markers from the ground up.
func Floors() []Semantics {
	return []Semantics{GroundFloor, SecondFloor, ThirdFloor}
}

// RoomTypes returns the room-category members sorted by name.
func RoomTypes() []Semantics {
	return sortedByName(semanticsVocab, roomTypes)
}

// ObjectTypes returns the object-category members sorted by name: every
// member that is not a room type, a structural marker or a solver flag.
func ObjectTypes() []Semantics {
	exclude := make(map[Semantics]struct{}, len(roomTypes)+len(structuralTypes)+len(solverFlags))
	for _, group := range [][]Semantics{roomTypes, structuralTypes, solverFlags} {
		for _, s := range group {
			exclude[s] = struct{}{}
		}
	}

	var out []Semantics
	for _, s := range semanticsVocab.values() {
		if _, skip := exclude[s]; !skip {
			out = append(out, s)
		}
	}
	return out
}
