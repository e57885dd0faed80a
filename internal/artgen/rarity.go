package artgen

// Rarity tiers, least to most rare.
const (
	RarityCommon    = "Common"
	RarityRare      = "Rare"
	RarityEpic      = "Epic"
	RarityLegendary = "Legendary"
)

// Classify maps a hex fingerprint to a rarity tier by counting its
// letter digits (a-f). The thresholds are coarse but fixed: the same
// fingerprint must always land in the same tier.
func Classify(fingerprint string) string {
	letters := 0
	for _, c := range fingerprint {
		if c >= 'a' && c <= 'f' {
			letters++
		}
	}
	switch {
	case letters <= 2:
		return RarityCommon
	case letters <= 4:
		return RarityRare
	case letters <= 6:
		return RarityEpic
	default:
		return RarityLegendary
	}
}
