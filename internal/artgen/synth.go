package artgen

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

const canvas = 320

// Style names, selected by the first seed byte.
const (
	StyleHeatmap   = "heatmap"
	StyleGeometric = "geometric"
	StyleHelix     = "helix"
	StyleFractal   = "fractal"
)

// palettes are the five color schemes, selected by the second seed
// byte. Index 0 is the background; 1-3 are accent colors.
var palettes = [5][4]string{
	{"#0f172a", "#38bdf8", "#818cf8", "#f472b6"},
	{"#1a0b2e", "#7c3aed", "#c084fc", "#fbbf24"},
	{"#022c22", "#34d399", "#a7f3d0", "#fde68a"},
	{"#27272a", "#f87171", "#facc15", "#fb923c"},
	{"#082f49", "#22d3ee", "#94a3b8", "#e2e8f0"},
}

// StyleFor reports which art style a seed selects.
func StyleFor(seed []byte) string {
	seed = normalizeSeed(seed)
	switch seed[0] % 4 {
	case 0:
		return StyleHeatmap
	case 1:
		return StyleGeometric
	case 2:
		return StyleHelix
	default:
		return StyleFractal
	}
}

// Synthesize renders a deterministic SVG from the seed (the raw
// fingerprint bytes) and packages it as a base64 data URI for inline
// embedding in NFT metadata. The same seed always yields byte-identical
// output.
func Synthesize(seed []byte) string {
	svg := renderSVG(seed)
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

func renderSVG(seed []byte) string {
	seed = normalizeSeed(seed)
	palette := palettes[seed[1]%5]

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, canvas, canvas, canvas, canvas)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`, canvas, canvas, palette[0])

	switch seed[0] % 4 {
	case 0:
		drawHeatmap(&b, seed, palette)
	case 1:
		drawGeometric(&b, seed, palette)
	case 2:
		drawHelix(&b, seed, palette)
	default:
		drawFractal(&b, seed, palette)
	}

	b.WriteString(`</svg>`)
	return b.String()
}

// normalizeSeed guarantees enough bytes for every renderer. Fingerprint
// seeds are 32 bytes already; anything shorter is stretched by hashing.
func normalizeSeed(seed []byte) []byte {
	if len(seed) >= sha256.Size {
		return seed
	}
	sum := sha256.Sum256(seed)
	return sum[:]
}
