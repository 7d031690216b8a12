package geometry

import "fmt"

// Tier is a difficulty tier controlling the magnitude of sampled dimensions.
type Tier string

const (
	TierEasy      Tier = "easy"
	TierMedium    Tier = "medium"
	TierDifficult Tier = "difficult"
)

// AllTiers returns the tiers in ascending difficulty order.
func AllTiers() []Tier {
	return []Tier{TierEasy, TierMedium, TierDifficult}
}

// Range returns the inclusive [low, high] dimension range (in cm) for a tier.
// Both bounds are positive and low <= high for every defined tier.
func Range(t Tier) (low, high int, ok bool) {
	switch t {
	case TierEasy:
		return 1, 10, true
	case TierMedium:
		return 11, 50, true
	case TierDifficult:
		return 51, 100, true
	default:
		return 0, 0, false
	}
}

// ParseTier resolves a tier name as used in blueprints, manifests and flags.
func ParseTier(name string) (Tier, error) {
	for _, t := range AllTiers() {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty tier %q", name)
}
