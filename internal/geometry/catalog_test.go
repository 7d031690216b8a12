package geometry

import "testing"

func TestTierRanges(t *testing.T) {
	tests := []struct {
		tier Tier
		low  int
		high int
	}{
		{TierEasy, 1, 10},
		{TierMedium, 11, 50},
		{TierDifficult, 51, 100},
	}
	for _, tt := range tests {
		low, high, ok := Range(tt.tier)
		if !ok {
			t.Fatalf("Range(%s) not defined", tt.tier)
		}
		if low != tt.low || high != tt.high {
			t.Errorf("Range(%s) = [%d,%d], want [%d,%d]", tt.tier, low, high, tt.low, tt.high)
		}
		if low <= 0 || low > high {
			t.Errorf("Range(%s) = [%d,%d] violates 0 < low <= high", tt.tier, low, high)
		}
	}
	if _, _, ok := Range(Tier("nightmare")); ok {
		t.Error("expected unknown tier to be rejected")
	}
}

func TestParseRoundTrips(t *testing.T) {
	for _, s := range AllShapes() {
		got, err := ParseShape(string(s))
		if err != nil {
			t.Errorf("ParseShape(%q): %v", s, err)
		}
		if got != s {
			t.Errorf("ParseShape(%q) = %q", s, got)
		}
	}
	for _, tier := range AllTiers() {
		if _, err := ParseTier(string(tier)); err != nil {
			t.Errorf("ParseTier(%q): %v", tier, err)
		}
	}
	for _, k := range AllKinds() {
		if _, err := ParseKind(string(k)); err != nil {
			t.Errorf("ParseKind(%q): %v", k, err)
		}
	}

	if _, err := ParseShape("rhombus"); err == nil {
		t.Error("expected ParseShape to reject a shape outside the catalogue")
	}
	if _, err := ParseTier("extreme"); err == nil {
		t.Error("expected ParseTier to reject an unknown tier")
	}
	if _, err := ParseKind("essay"); err == nil {
		t.Error("expected ParseKind to reject an unknown kind")
	}
}

func TestKindsFor_CircleExcludesSymmetry(t *testing.T) {
	kinds := KindsFor(ShapeCircle)
	if len(kinds) != 3 {
		t.Fatalf("expected 3 kinds for circle, got %d", len(kinds))
	}
	for _, k := range kinds {
		if k == KindSymmetry {
			t.Error("circle kinds must not include symmetry")
		}
	}
	if len(KindsFor(ShapeSquare)) != 4 {
		t.Error("square should allow all four kinds")
	}
}

func TestPolygonSides(t *testing.T) {
	if n, ok := PolygonSides(ShapePentagon); !ok || n != 5 {
		t.Errorf("PolygonSides(pentagon) = %d,%v", n, ok)
	}
	if n, ok := PolygonSides(ShapeHexagon); !ok || n != 6 {
		t.Errorf("PolygonSides(hexagon) = %d,%v", n, ok)
	}
	if _, ok := PolygonSides(ShapeSquare); ok {
		t.Error("square is not dispatched through the regular-polygon path")
	}
}

func TestShapeDisplayName(t *testing.T) {
	if got := ShapeDisplayName(ShapeEquilateral); got != "Equilateral Triangle" {
		t.Errorf("ShapeDisplayName = %q", got)
	}
	if got := ShapeDisplayName(Shape("blob")); got != "blob" {
		t.Errorf("unknown shapes fall back to their raw name, got %q", got)
	}
}
