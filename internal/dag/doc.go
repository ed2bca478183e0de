// Package dag models dependencies between named vertices as a directed
// acyclic graph. It is used to check that the part catalogue has no
// dependency cycle, which would make a robot impossible to finish, and to
// derive the order in which part types become buildable.
package dag
