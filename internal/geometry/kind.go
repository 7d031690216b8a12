package geometry

import "fmt"

// Kind identifies a question variant.
type Kind string

const (
	KindArea      Kind = "area"
	KindPerimeter Kind = "perimeter" // circumference for the circle
	KindMissing   Kind = "missing"   // one dimension hidden, inferred from a known quantity
	KindSymmetry  Kind = "symmetry"
)

// AllKinds returns every question kind.
func AllKinds() []Kind {
	return []Kind{KindArea, KindPerimeter, KindMissing, KindSymmetry}
}

// KindsFor returns the kinds that can be asked for a shape. The circle has
// infinitely many symmetry lines, so symmetry is excluded to keep every
// answer a small integer.
func KindsFor(s Shape) []Kind {
	if s == ShapeCircle {
		return []Kind{KindArea, KindPerimeter, KindMissing}
	}
	return AllKinds()
}

// ParseKind resolves a kind name as used in blueprints, manifests and flags.
func ParseKind(name string) (Kind, error) {
	for _, k := range AllKinds() {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown question kind %q", name)
}
