// Package amphipod models the 2021 day 23 "Amphipod" burrow as an astar
// state space and solves it for the minimal total energy.
//
// A burrow is an 11-cell hallway above four side rooms of equal depth
// (1 to 4 slots). Rooms open onto hallway cells 2, 4, 6 and 8; nobody ever
// stops on those door cells. Amphipods of kind A, B, C and D spend 1, 10,
// 100 and 1000 energy per step, and each kind belongs in its own room
// (A leftmost, D rightmost).
//
// Legal moves:
//
//   - out of a room into any reachable hallway cell, only while the room
//     still holds an amphipod that does not belong there;
//   - from the hallway (or straight from another room) into the amphipod's
//     own room, only if that room holds no strangers; it goes to the deepest
//     free slot.
//
// Moving home is never worse than any alternative, so when such a move
// exists it is the only successor generated.
//
// Burrow is a comparable value type; every move returns a fresh copy.
package amphipod
