// Package diagnostic collects the recovered conditions met while walking
// a schema: entries that were skipped because their shape was not
// understood, and values that were repaired (such as swapped stat bounds).
//
// Extraction never aborts on these; callers decide whether to print them.
package diagnostic
