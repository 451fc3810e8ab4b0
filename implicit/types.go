package implicit

import "errors"

var (
	// ErrNilFunc is returned by Solve when Problem.F is nil.
	ErrNilFunc = errors.New("implicit: nil function")

	// ErrNilMatrix is returned by Solve when a partial-derivative matrix is
	// nil.
	ErrNilMatrix = errors.New("implicit: nil derivative matrix")

	// ErrBadShape is returned by Solve when A is not g×e, B is not g×g, or
	// F(x₀, y₀) does not have dimension g.
	ErrBadShape = errors.New("implicit: derivative shape does not match the problem dimensions")

	// ErrBadPoint is returned by Eval when the query dimensions do not
	// match the problem.
	ErrBadPoint = errors.New("implicit: query point has wrong dimension")
)
