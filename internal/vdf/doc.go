// Package vdf decodes Valve KeyValue (KV1) documents in their binary and text
// encodings and normalizes them into a tree.Node.
//
// Decoding yields the raw document shape: a list of KeyValue entries whose
// names may repeat. Normalize then folds repeated names into arrays (see
// tree.Object.Insert), walking the document breadth-first with an explicit
// queue so deep controller configurations never grow the call stack.
package vdf
