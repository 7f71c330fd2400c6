// Package scene provides vocabulary predicates for tag facts on scene graph
// nodes.
//
// A node's tag set is stored as one triple per tag. Each tag kind has a
// positive predicate (scene.tag.*) and a negated counterpart (scene.not.*),
// so a Negated tag never needs a nested encoding:
//
//	Semantics(kitchen)       scene.tag.semantics    "kitchen"
//	-Semantics(door)         scene.not.semantics    "door"
//	FromGenerator(BedMaker)  scene.tag.generator    "BedMaker"
//	Subpart(top)             scene.tag.subpart      "top"
//
// Import this package to auto-register predicates:
//
//	import _ "github.com/c360studio/semtags/vocabulary/scene"
package scene
