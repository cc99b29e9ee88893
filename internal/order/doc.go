// Package order maintains the contiguity of numbered entries inside a directory.
//
// Numbered siblings must carry the prefixes 1..N without gaps or duplicates. Validate checks
// that property, the planners compute the renames that move an entry to a new position
// (shifting later siblings) or close the gap an entry left behind, and Plan.Apply executes
// the renames in a collision-free sequence. Renames already applied are never rolled back.
package order
