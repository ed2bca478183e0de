// Package robot holds the part catalogue of the toy robot and the two pure
// predicates the build loop is driven by: whether one more unit of a part can
// be added to a robot under construction, and whether the robot is complete.
//
// Part types form a dependency DAG:
//
//	Wheel -> Axle -> Torso -> {Plunger, Head, Powercell}
//	Head  -> Antenna
//
// Every rule except Axle's requires its dependency to be fully present. An
// axle only needs one wheel that is not yet paired with an axle, so axles can
// be added while wheels are still arriving.
package robot
