// Package tree provides the normalized representation of a KeyValue document:
// a closed tagged union (Node) whose object variant keeps keys in insertion
// order.
//
// Trees are built once (by the VDF normalizer or FromJSON) and are read-only
// afterwards. Consumers query them through the key-path accessor:
//
//	name := root.Get("common", "name").AsString()
//	langs := root.Get("common", "languages").AsObject()
//
// Lookups are case-insensitive with an exact-case tiebreak, and every
// coercion is nil-safe: an absent node yields the zero value of the
// requested type instead of an error. AsArray and AsObject hand out copies,
// so a published tree cannot be changed through them.
//
// # Duplicate keys
//
// KeyValue documents allow the same key to appear several times inside one
// object. Object.Insert folds repeated keys into an array:
//
//	"a" "1"            "a": "1"
//	"a" "2"     ==>    "a": ["1", "2", "3"]
//	"a" "3"
package tree
