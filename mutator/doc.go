// Package mutator decorates position iterators with perturbations that
// change values but never the number of positions, their indices or their
// dimension groups.
//
// RandomOffset adds independent Gaussian noise N(0, σ) to every numeric axis
// of every position. Its random stream is owned by the decorator and seeded
// at construction, so two decorators with the same seed over the same
// source produce bit-identical offsets and no process-wide state is touched.
package mutator
