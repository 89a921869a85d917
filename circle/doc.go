// Package circle generates abstract round-robin pairing structures using the
// classic circle method (also known as Berger tables).
//
// A positional schedule is a tournament blueprint over seed positions —
// "seed 1 meets seed 4 in round 1" — fully independent of any real roster.
// Resolving positions onto participants is the job of package resolve; this
// package is pure combinatorics.
//
// Algorithm (circle method):
//  1. For n participants, append one virtual bye slot when n is odd,
//     giving an even ring size n'.
//  2. Fix slot 0. After each round, rotate slots 1..n'-1 by one position.
//  3. In every round, pair slot[i] with slot[n'-1-i] for i in [0, n'/2);
//     drop any pairing that involves the bye slot.
//  4. Stop after n'-1 rounds.
//
// Guarantees, for all n ≥ 2:
//   - exactly n(n-1)/2 pairings overall, each unordered pair exactly once;
//   - even n: n-1 rounds of n/2 pairings;
//   - odd n: n rounds of (n-1)/2 pairings, each position byes exactly once;
//   - no randomness: identical n always yields the identical structure.
package circle
