package remesh

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTarget is returned when the requested vertex count cannot hold the boundary chain
	ErrInvalidTarget = errors.New("target vertex count smaller than boundary chain")

	// ErrEmptyTopFace is returned when no triangle passes the normal filter
	ErrEmptyTopFace = errors.New("no triangle faces the reference direction")

	// ErrDegenerateBoundary marks a triangle set whose boundary edges do not form one closed loop.
	// Resample recovers from it with the convex hull fallback.
	ErrDegenerateBoundary = errors.New("degenerate boundary")

	// ErrEmptyMesh is returned for inputs without triangles or usable boundary
	ErrEmptyMesh = errors.New("mesh has no usable geometry")

	// ErrTriangulation is returned when the selected points cannot be triangulated
	ErrTriangulation = errors.New("triangulation failed")
)

// TargetError reports a target vertex count below the boundary chain length
type TargetError struct {
	Target   int
	ChainLen int
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("target of %d vertices is smaller than the %d-point boundary chain; lower the spacing or raise the target",
		e.Target, e.ChainLen)
}

// Is lets errors.Is match ErrInvalidTarget
func (e *TargetError) Is(target error) bool {
	return target == ErrInvalidTarget
}
