// Package aabb keeps a set of pairwise-disjoint axis-aligned boxes on the
// integer lattice and answers exact volume queries over it.
//
// Boxes are inclusive on both ends: Box{Min: {0,0,0}, Max: {1,1,1}} covers
// eight cells. Subtracting one box from another (Except) yields at most six
// disjoint fragments, which is all a Set needs to stay disjoint under
// Insert and Remove.
//
// Reboot replays the 2021 day 22 "Reactor Reboot" steps and returns how
// many cubes are left on, optionally restricted to a clip region such as
// InitRegion.
package aabb
