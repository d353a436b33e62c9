// Path-word catalog: closed-form formulas for the canonical Reeds-Shepp
// families, evaluated on a unit-radius problem with the goal expressed in
// the start frame as (x, y, phi).
//
// Each base word is written for its "L-first, forward-first" member; the
// remaining members of the family are generated by two involutions:
//
//   - timeflip — traverse the word in the opposite gear; equivalent to
//     solving (-x, y, -phi) and reversing every gear,
//   - reflect  — mirror the word across the x-axis; equivalent to solving
//     (x, -y, -phi) and swapping Left/Right.
//
// A formula may produce a negative magnitude for a turn or straight; the
// element constructor canonicalizes it into the opposite gear, which is
// how the classic formulation folds the "−" sub-variants into one branch.
package reedsshepp

import (
	"math"

	"github.com/katalvlaran/lvlpath/geom"
)

// domTol absorbs floating-point spill of inverse-trigonometric arguments
// just outside [-1, 1] (e.g. acos(1+1e-16)); anything further out of
// domain marks the word infeasible rather than producing NaN.
const domTol = 1e-9

const halfPi = math.Pi / 2

// element is a unit-radius motion primitive produced by a word formula.
// param is non-negative after canonicalization.
type element struct {
	steering Steering
	gear     Gear
	param    float64
}

// elem canonicalizes a signed magnitude into a non-negative element,
// flipping the gear when the formula yields a negative value.
func elem(param float64, s Steering, g Gear) element {
	if param < 0 {
		return element{steering: s, gear: g.reverse(), param: -param}
	}

	return element{steering: s, gear: g, param: param}
}

// wordFunc evaluates one catalog variant for the relative goal
// (x, y, phi); ok=false means the word is infeasible there.
type wordFunc func(x, y, phi float64) (elems []element, ok bool)

// safeAcos returns acos(v) with tolerance-based clamping at the domain
// boundary; ok=false when v is out of [-1, 1] beyond domTol.
func safeAcos(v float64) (float64, bool) {
	if v > 1 {
		if v > 1+domTol {
			return 0, false
		}
		v = 1
	}
	if v < -1 {
		if v < -1-domTol {
			return 0, false
		}
		v = -1
	}

	return math.Acos(v), true
}

// safeAsin mirrors safeAcos for asin.
func safeAsin(v float64) (float64, bool) {
	if v > 1 {
		if v > 1+domTol {
			return 0, false
		}
		v = 1
	}
	if v < -1 {
		if v < -1-domTol {
			return 0, false
		}
		v = -1
	}

	return math.Asin(v), true
}

// wrap is the canonical angle normalization shared with geom.
func wrap(a float64) float64 { return geom.NormalizeAngle(a) }

// --- base words ------------------------------------------------------------

// lpSpLp — CSC with equal turns: L+ S+ L+.
// Always defined: degenerate goals collapse to zero-length elements.
func lpSpLp(x, y, phi float64) ([]element, bool) {
	u, t := geom.Polar(x-math.Sin(phi), y-1+math.Cos(phi))
	v := wrap(phi - t)

	return []element{
		elem(t, Left, Forward),
		elem(u, Straight, Forward),
		elem(v, Left, Forward),
	}, true
}

// lpSpRp — CSC with opposite turns: L+ S+ R+.
func lpSpRp(x, y, phi float64) ([]element, bool) {
	rho, t1 := geom.Polar(x+math.Sin(phi), y-1-math.Cos(phi))
	if rho*rho < 4 {
		return nil, false
	}
	u := math.Sqrt(rho*rho - 4)
	t := wrap(t1 + math.Atan2(2, u))
	v := wrap(t - phi)

	return []element{
		elem(t, Left, Forward),
		elem(u, Straight, Forward),
		elem(v, Right, Forward),
	}, true
}

// lpRmLp — C|C|C: L+ R- L+.
func lpRmLp(x, y, phi float64) ([]element, bool) {
	rho, theta := geom.Polar(x-math.Sin(phi), y-1+math.Cos(phi))
	if rho > 4 {
		return nil, false
	}
	a, ok := safeAcos(rho / 4)
	if !ok {
		return nil, false
	}
	t := wrap(theta + halfPi + a)
	u := wrap(math.Pi - 2*a)
	v := wrap(phi - t - u)

	return []element{
		elem(t, Left, Forward),
		elem(u, Right, Backward),
		elem(v, Left, Forward),
	}, true
}

// lpRmLm — C|CC: L+ R- L-.
func lpRmLm(x, y, phi float64) ([]element, bool) {
	rho, theta := geom.Polar(x-math.Sin(phi), y-1+math.Cos(phi))
	if rho > 4 {
		return nil, false
	}
	a, ok := safeAcos(rho / 4)
	if !ok {
		return nil, false
	}
	t := wrap(theta + halfPi + a)
	u := wrap(math.Pi - 2*a)
	v := wrap(t + u - phi)

	return []element{
		elem(t, Left, Forward),
		elem(u, Right, Backward),
		elem(v, Left, Backward),
	}, true
}

// lpRpLm — CC|C: L+ R+ L-.
func lpRpLm(x, y, phi float64) ([]element, bool) {
	rho, theta := geom.Polar(x-math.Sin(phi), y-1+math.Cos(phi))
	if rho > 4 || rho < domTol {
		return nil, false
	}
	u, ok := safeAcos(1 - rho*rho/8)
	if !ok {
		return nil, false
	}
	a, ok := safeAsin(2 * math.Sin(u) / rho)
	if !ok {
		return nil, false
	}
	t := wrap(theta + halfPi - a)
	v := wrap(t - u - phi)

	return []element{
		elem(t, Left, Forward),
		elem(u, Right, Forward),
		elem(v, Left, Backward),
	}, true
}

// lpRpLmRm — CCu|CuC: L+ R+ L- R- with equal middle arcs.
func lpRpLmRm(x, y, phi float64) ([]element, bool) {
	rho, theta := geom.Polar(x+math.Sin(phi), y-1-math.Cos(phi))
	if rho > 4 {
		return nil, false
	}

	var (
		t, u, v float64
		a       float64
		ok      bool
	)
	if rho <= 2 {
		if a, ok = safeAcos((rho + 2) / 4); !ok {
			return nil, false
		}
		t = wrap(theta + halfPi + a)
		u = wrap(a)
		v = wrap(phi - t + 2*u)
	} else {
		if a, ok = safeAcos((rho - 2) / 4); !ok {
			return nil, false
		}
		t = wrap(theta + halfPi - a)
		u = wrap(math.Pi - a)
		v = wrap(phi - t + 2*u)
	}

	return []element{
		elem(t, Left, Forward),
		elem(u, Right, Forward),
		elem(u, Left, Backward),
		elem(v, Right, Backward),
	}, true
}

// lpRmLmRp — C|CuCu|C: L+ R- L- R+ with equal middle arcs.
func lpRmLmRp(x, y, phi float64) ([]element, bool) {
	rho, theta := geom.Polar(x+math.Sin(phi), y-1-math.Cos(phi))
	u1 := (20 - rho*rho) / 16
	if rho > 6 || rho < domTol || u1 < 0 || u1 > 1 {
		return nil, false
	}
	u, ok := safeAcos(u1)
	if !ok {
		return nil, false
	}
	a, ok := safeAsin(2 * math.Sin(u) / rho)
	if !ok {
		return nil, false
	}
	t := wrap(theta + halfPi + a)
	v := wrap(t - phi)

	return []element{
		elem(t, Left, Forward),
		elem(u, Right, Backward),
		elem(u, Left, Backward),
		elem(v, Right, Forward),
	}, true
}

// lpRmSmLm — C|C[π/2]SC: L+ R-(π/2) S- L-.
func lpRmSmLm(x, y, phi float64) ([]element, bool) {
	rho, theta := geom.Polar(x-math.Sin(phi), y-1+math.Cos(phi))
	if rho < 2 {
		return nil, false
	}
	u := math.Sqrt(rho*rho-4) - 2
	a := math.Atan2(2, u+2)
	t := wrap(theta + halfPi + a)
	v := wrap(t - phi + halfPi)

	return []element{
		elem(t, Left, Forward),
		elem(halfPi, Right, Backward),
		elem(u, Straight, Backward),
		elem(v, Left, Backward),
	}, true
}

// lpSpRpLm — CSC[π/2]|C: L+ S+ R+(π/2) L-.
func lpSpRpLm(x, y, phi float64) ([]element, bool) {
	rho, theta := geom.Polar(x-math.Sin(phi), y-1+math.Cos(phi))
	if rho < 2 {
		return nil, false
	}
	u := math.Sqrt(rho*rho-4) - 2
	a := math.Atan2(u+2, 2)
	t := wrap(theta + halfPi - a)
	v := wrap(t - phi - halfPi)

	return []element{
		elem(t, Left, Forward),
		elem(u, Straight, Forward),
		elem(halfPi, Right, Forward),
		elem(v, Left, Backward),
	}, true
}

// lpRmSmRm — C|C[π/2]SC ending on the mirror turn: L+ R-(π/2) S- R-.
func lpRmSmRm(x, y, phi float64) ([]element, bool) {
	rho, theta := geom.Polar(x+math.Sin(phi), y-1-math.Cos(phi))
	if rho < 2 {
		return nil, false
	}
	t := wrap(theta + halfPi)
	u := rho - 2
	v := wrap(phi - t - halfPi)

	return []element{
		elem(t, Left, Forward),
		elem(halfPi, Right, Backward),
		elem(u, Straight, Backward),
		elem(v, Right, Backward),
	}, true
}

// lpSpLpRm — CSC[π/2]|C starting on the mirror turn: L+ S+ L+(π/2) R-.
func lpSpLpRm(x, y, phi float64) ([]element, bool) {
	rho, theta := geom.Polar(x+math.Sin(phi), y-1-math.Cos(phi))
	if rho < 2 {
		return nil, false
	}
	t := wrap(theta)
	u := rho - 2
	v := wrap(phi - t - halfPi)

	return []element{
		elem(t, Left, Forward),
		elem(u, Straight, Forward),
		elem(halfPi, Left, Forward),
		elem(v, Right, Backward),
	}, true
}

// lpRmSmLmRp — C|C[π/2]SC[π/2]|C: L+ R-(π/2) S- L-(π/2) R+.
func lpRmSmLmRp(x, y, phi float64) ([]element, bool) {
	rho, theta := geom.Polar(x+math.Sin(phi), y-1-math.Cos(phi))
	if rho < 4 {
		return nil, false
	}
	u := math.Sqrt(rho*rho-4) - 4
	a := math.Atan2(2, u+4)
	t := wrap(theta + halfPi + a)
	v := wrap(t - phi)

	return []element{
		elem(t, Left, Forward),
		elem(halfPi, Right, Backward),
		elem(u, Straight, Backward),
		elem(halfPi, Left, Backward),
		elem(v, Right, Forward),
	}, true
}

// baseWords fixes the catalog enumeration order of the 12 families.
// The order is part of the tie-break contract: on exact length ties the
// earliest feasible variant wins.
var baseWords = []wordFunc{
	lpSpLp,
	lpSpRp,
	lpRmLp,
	lpRmLm,
	lpRpLm,
	lpRpLmRm,
	lpRmLmRp,
	lpRmSmLm,
	lpSpRpLm,
	lpRmSmRm,
	lpSpLpRm,
	lpRmSmLmRp,
}

// timeflip solves the gear-reversed problem (-x, y, -phi) and flips every
// element's gear.
func timeflip(w wordFunc) wordFunc {
	return func(x, y, phi float64) ([]element, bool) {
		elems, ok := w(-x, y, -phi)
		if !ok {
			return nil, false
		}
		for i := range elems {
			elems[i].gear = elems[i].gear.reverse()
		}

		return elems, true
	}
}

// reflect solves the mirrored problem (x, -y, -phi) and swaps Left/Right
// steering on every element.
func reflect(w wordFunc) wordFunc {
	return func(x, y, phi float64) ([]element, bool) {
		elems, ok := w(x, -y, -phi)
		if !ok {
			return nil, false
		}
		for i := range elems {
			elems[i].steering = elems[i].steering.mirror()
		}

		return elems, true
	}
}

// catalog is the full variant list: for each base word, in order —
// identity, timeflip, reflect, reflect∘timeflip. 48 variants total.
var catalog = buildCatalog()

func buildCatalog() []wordFunc {
	out := make([]wordFunc, 0, 4*len(baseWords))
	for _, w := range baseWords {
		out = append(out, w, timeflip(w), reflect(w), reflect(timeflip(w)))
	}

	return out
}
