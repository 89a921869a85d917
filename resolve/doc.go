// Package resolve materializes abstract positions onto real participants.
//
// A Resolver answers "who occupies seed 3?" without ever failing hard:
// unresolvable positions (wrong kind, out of range) yield a false second
// return, and callers must check it. This keeps the resolver usable as a
// probe during blueprint inspection as well as during generation.
//
// SeedResolver is the reference implementation: it resolves seed positions
// against a caller-supplied ordered roster, which makes the roster order
// itself the extension point — pre-seed or pre-shuffle the slice before
// constructing the resolver and every downstream component follows.
//
// Standing-based positions are intentionally not resolvable here: standings
// require results, and this core schedules before any result exists.
package resolve
