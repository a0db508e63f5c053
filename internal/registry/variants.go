package registry

import "github.com/vovakirdan/drmario/internal/games/drmario"

func init() {
	Register("classic", "Classic (runs of 3, diagonals)", drmario.DefaultRules)
	Register("nes", "NES (runs of 4, no diagonals)", func() drmario.Rules {
		return drmario.Rules{MinRun: 4, Diagonals: false}
	})
}
