package artgen

import (
	"fmt"
	"math"
	"strings"
)

// drawHeatmap fills a grid of cells whose colors and opacities follow
// the seed bytes. The third seed byte picks the grid layout.
func drawHeatmap(b *strings.Builder, seed []byte, palette [4]string) {
	cols, rows := 8, 8
	switch seed[2] % 3 {
	case 1:
		cols, rows = 16, 4 // wide
	case 2:
		cols, rows = 4, 16 // tall
	}
	cw := canvas / cols
	ch := canvas / rows
	for i := 0; i < cols*rows; i++ {
		v := seed[i%len(seed)] ^ byte(i)
		x := (i % cols) * cw
		y := (i / cols) * ch
		fill := palette[1+int(v)%3]
		opacity := 0.2 + float64(v%180)/255.0
		fmt.Fprintf(b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" opacity="%.3f"/>`,
			x+1, y+1, cw-2, ch-2, fill, opacity)
	}
}

// drawGeometric scatters circles and rotated squares placed by
// consecutive seed byte pairs.
func drawGeometric(b *strings.Builder, seed []byte, palette [4]string) {
	for i := 0; i+1 < len(seed); i += 2 {
		x := int(seed[i]) * canvas / 256
		y := int(seed[i+1]) * canvas / 256
		size := 10 + int(seed[i]%6)*7
		fill := palette[1+(i/2)%3]
		if seed[i+1]%2 == 0 {
			fmt.Fprintf(b, `<circle cx="%d" cy="%d" r="%d" fill="%s" opacity="0.75"/>`,
				x, y, size, fill)
		} else {
			angle := int(seed[i]) % 90
			fmt.Fprintf(b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" opacity="0.75" transform="rotate(%d %d %d)"/>`,
				x-size/2, y-size/2, size, size, fill, angle, x, y)
		}
	}
}

// drawHelix draws two sinusoidal strands with periodic rungs, a nod to
// the genomic content the NFTs are minted from.
func drawHelix(b *strings.Builder, seed []byte, palette [4]string) {
	const steps = 24
	mid := float64(canvas) / 2
	phase := float64(seed[3]) / 255 * 2 * math.Pi
	amp := 55 + float64(seed[4]%55)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		y := 18 + t*(canvas-36)
		angle := phase + t*4*math.Pi
		x1 := mid + amp*math.Sin(angle)
		x2 := mid - amp*math.Sin(angle)
		if i%3 == 0 {
			fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2" opacity="0.55"/>`,
				x1, y, x2, y, palette[3])
		}
		r := 4 + int(seed[i%len(seed)]%5)
		fmt.Fprintf(b, `<circle cx="%.1f" cy="%.1f" r="%d" fill="%s"/>`, x1, y, r, palette[1])
		fmt.Fprintf(b, `<circle cx="%.1f" cy="%.1f" r="%d" fill="%s"/>`, x2, y, r, palette[2])
	}
}

// drawFractal subdivides the canvas into quadrants three levels deep,
// keeping or skipping each quadrant based on the seed.
func drawFractal(b *strings.Builder, seed []byte, palette [4]string) {
	fractalStep(b, seed, palette, 0, 0, canvas, 0)
}

func fractalStep(b *strings.Builder, seed []byte, palette [4]string, x, y, size, depth int) {
	if depth >= 3 || size < 24 {
		return
	}
	half := size / 2
	for q := 0; q < 4; q++ {
		qx := x + (q%2)*half
		qy := y + (q/2)*half
		v := seed[(depth*7+q*3+x/half)%len(seed)]
		if v%4 == 0 {
			continue
		}
		fill := palette[1+int(v)%3]
		fmt.Fprintf(b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" opacity="%.2f"/>`,
			qx+2, qy+2, half-4, half-4, fill, 0.3+float64(depth)*0.2)
		fractalStep(b, seed, palette, qx, qy, half, depth+1)
	}
}
