// Package inverse: sentinel errors and lifter constants.
//
// Errors (sentinel):
//
//	– ErrNilWitness      if the witness is nil.
//	– ErrNilFunc         if the map (or derivative matrix) is nil.
//	– ErrBadRadius       if a ball radius is not positive and finite.
//	– ErrBadBase         if the base point has the wrong dimension or lies
//	                     outside the witness domain.
//	– ErrDomainTooSmall  if the closed working ball around the base point
//	                     provably exceeds the witness domain.
//	– ErrOutOfReach      if a target lies outside the guaranteed image ball.
//	– ErrNoNeighborhood  if the strict-derivative probe exhausts its radii.
//
// Admissibility violations surface as approx.ErrNotAdmissible and a
// non-invertible derivative as linalg.ErrSingular; both are construction-
// time failures of the respective substrate, re-checked nowhere here.
package inverse

import "errors"

// Sentinel errors returned by the inversion pipeline.
var (
	// ErrNilWitness indicates a nil *approx.Witness.
	ErrNilWitness = errors.New("inverse: witness is nil")

	// ErrNilFunc indicates a nil map or derivative argument.
	ErrNilFunc = errors.New("inverse: function is nil")

	// ErrBadRadius indicates a non-positive or non-finite ball radius.
	ErrBadRadius = errors.New("inverse: radius must be positive and finite")

	// ErrBadBase indicates a base point of the wrong dimension or outside
	// the witness domain.
	ErrBadBase = errors.New("inverse: base point not usable with this witness")

	// ErrDomainTooSmall indicates that the closed ball B̄(base, ε) does not
	// fit inside the witness domain (detected for ball/whole domains; other
	// Domain implementations are the caller's responsibility).
	ErrDomainTooSmall = errors.New("inverse: working ball exceeds the witness domain")

	// ErrOutOfReach indicates a target y with dist(f(b), y) beyond the
	// guaranteed radius (1/N − c)·ε: no self-mapping license, no solve.
	ErrOutOfReach = errors.New("inverse: target outside the guaranteed image ball")

	// ErrNoNeighborhood indicates the strict-derivative lifter found no
	// radius on which the sampled approximation bound holds.
	ErrNoNeighborhood = errors.New("inverse: no admissible approximation neighborhood found")
)

// Lifter probe policy: radii r₀·2⁻ᵏ for k = 0..MaxShrinkSteps. The sampled
// check is a finite stand-in for the strict-differentiability guarantee
// that some neighborhood works; 40 halvings take the radius below 1e-12,
// past which float64 has nothing more to say.
const (
	// InitialProbeRadius is the first radius the lifter tries.
	InitialProbeRadius = 1.0

	// MaxShrinkSteps caps the number of halvings.
	MaxShrinkSteps = 40
)
