package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// ErrCollinear is returned by FitCircle for points on a common line
var ErrCollinear = errors.New("points are collinear")

// CircleFit represents the result of fitting a circle to planar points
type CircleFit struct {
	Center orb.Point
	Radius float64
	StdDev float64 // Standard deviation of the radial residuals
}

// FitCircle fits a circle to planar points with the algebraic (Kasa) least-squares method.
//
// The points are centered on their mean first, which reduces the normal equations to
//
//	[Sxx Sxy] [D]     [Sxz]
//	[Sxy Syy] [E] = - [Syz],   F = -mean(z),   z = x²+y²
//
// for the circle x²+y²+Dx+Ey+F = 0.
func FitCircle(points []orb.Point) (*CircleFit, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("need at least 3 points to fit a circle")
	}

	n := float64(len(points))
	var mx, my float64
	for _, p := range points {
		mx += p[0]
		my += p[1]
	}
	mx /= n
	my /= n

	var sxx, syy, sxy, sxz, syz, sz float64
	for _, p := range points {
		x := p[0] - mx
		y := p[1] - my
		z := x*x + y*y
		sxx += x * x
		syy += y * y
		sxy += x * y
		sxz += x * z
		syz += y * z
		sz += z
	}

	det := sxx*syy - sxy*sxy
	if math.Abs(det) < 1e-12*math.Max(1, sxx*syy) {
		return nil, ErrCollinear
	}

	d := -(sxz*syy - syz*sxy) / det
	e := -(sxx*syz - sxy*sxz) / det
	f := -sz / n

	cx := -d / 2
	cy := -e / 2
	radius := math.Sqrt(cx*cx + cy*cy - f)

	var sumError float64
	for _, p := range points {
		dist := math.Hypot(p[0]-mx-cx, p[1]-my-cy)
		sumError += (dist - radius) * (dist - radius)
	}

	return &CircleFit{
		Center: orb.Point{cx + mx, cy + my},
		Radius: radius,
		StdDev: math.Sqrt(sumError / n),
	}, nil
}
