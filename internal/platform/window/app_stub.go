//go:build !ebiten

package window

import (
	"github.com/vovakirdan/barigueira/internal/config"
	"github.com/vovakirdan/barigueira/internal/games/barigueira"
)

// Run reports ErrUnavailable in builds without the ebiten tag.
func Run(*barigueira.Game, config.Config, Options) error {
	return ErrUnavailable
}
