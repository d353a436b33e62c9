// Package waypointfile reads oriented waypoints from plain text.
//
// What: parses `x,y,heading` records, one per line, where heading is in
// degrees. Lines starting with '#' and blank lines are skipped, and so
// is any record that is malformed or non-numeric; the reader is the
// forgiving input boundary, not a validator.
//
// Why: waypoint files are hand-edited; a stray comment or a typo on one
// line should not abort a whole planning run.
//
// Units: headings cross this boundary exactly once. Files carry
// degrees, everything downstream works in normalized radians.
//
// Errors: only I/O failures surface; content problems never do.
package waypointfile
