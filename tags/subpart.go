package tags

import "fmt"

// Subpart is a member of the Subpart vocabulary, naming a sub-region of a
// node such as its top surface or interior.
type Subpart string

const (
	SubpartSupportSurface Subpart = "support"
	SubpartInterior       Subpart = "interior"
	SubpartVisible        Subpart = "visible"
	SubpartBottom         Subpart = "bottom"
	SubpartTop            Subpart = "top"
	SubpartSide           Subpart = "side"
	SubpartBack           Subpart = "back"
	SubpartFront          Subpart = "front"
	SubpartCeiling        Subpart = "ceiling"
	SubpartWall           Subpart = "wall"
	SubpartStaircaseWall  Subpart = "staircase-wall"
)

var subpartVocab = newVocabulary(VocabularySubpart, []member[Subpart]{
	{"SupportSurface", SubpartSupportSurface},
	{"Interior", SubpartInterior},
	{"Visible", SubpartVisible},
	{"Bottom", SubpartBottom},
	{"Top", SubpartTop},
	{"Side", SubpartSide},
	{"Back", SubpartBack},
	{"Front", SubpartFront},
	{"Ceiling", SubpartCeiling},
	{"Wall", SubpartWall},
	{"StaircaseWall", SubpartStaircaseWall},
})

func (Subpart) Kind() Kind { return KindSubpart }
func (s Subpart) Negate() Tag { return Negated{inner: s} }
func (Subpart) Vocabulary() string { return VocabularySubpart }
func (s Subpart) Value() string { return string(s) }
func (Subpart) isTag() {}

// Name returns the member name, or "" if s is not a member.
func (s Subpart) Name() string {
	return subpartVocab.memberName(s)
}

// Valid reports whether s is a member of the vocabulary.
func (s Subpart) Valid() bool {
	return subpartVocab.valid(s)
}

// Less orders members by name.
func (s Subpart) Less(other Subpart) bool {
	return s.Name() < other.Name()
}

func (s Subpart) String() string {
	return "Subpart(" + string(s) + ")"
}

func (s Subpart) GoString() string {
	if !s.Valid() {
		return fmt.Sprintf("Subpart(%q)", string(s))
	}
	return "Subpart." + s.Name()
}

// LookupSubpart resolves a member by name.
func LookupSubpart(name string) (Subpart, bool) {
	return subpartVocab.lookup(name)
}

// SubpartValues returns every member sorted by name.
func SubpartValues() []Subpart {
	return subpartVocab.values()
}
