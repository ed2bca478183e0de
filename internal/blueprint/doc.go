// Package blueprint loads an optional HCL file that changes how many units of
// each part a finished robot needs, and the roll budget of a build:
//
//	safety_limit = 2000
//
//	part "powercell" {
//	  quantity = 6
//	}
//
//	quantities = {
//	  antenna = 1
//	}
//
// Parts not mentioned keep their default quantity. Part blocks and the
// quantities map may both be used; naming the same part twice is an error.
package blueprint
