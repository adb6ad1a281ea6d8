// Package parallel runs independent, index-addressed jobs on a fixed set of
// worker goroutines. Animation frames are the unit of work: each job owns
// its output slot, so results need no locking and keep their order.
package parallel
