// Package asset provides gem sprites, decoded from PNG files or generated procedurally
package asset

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"

	"github.com/lixenwraith/vi-match/config"
)

// DefaultPattern names texture files by gem type
const DefaultPattern = "gem%d.png"

// Set holds one sprite per gem type, indexed by type ID
type Set []image.Image

// Error reports the sprite file that failed to load
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("load sprite %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// LoadDir decodes n sprites named by pattern from fsys
// The first failure aborts loading and is returned as *Error
func LoadDir(fsys fs.FS, pattern string, n int) (Set, error) {
	set := make(Set, n)
	for i := range n {
		name := fmt.Sprintf(pattern, i)
		img, err := decode(fsys, name)
		if err != nil {
			return nil, &Error{Path: name, Err: err}
		}
		set[i] = img
	}
	return set, nil
}

func decode(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("empty image")
	}
	return img, nil
}

// Load picks textures from the configured directory, or generates gems at size pixels
func Load(cfg config.Config, size int) (Set, error) {
	if dir := cfg.Display.Assets; dir != "" {
		return LoadDir(os.DirFS(dir), DefaultPattern, cfg.Board.Types)
	}
	palette := cfg.Palette()
	if len(palette) < cfg.Board.Types {
		return nil, fmt.Errorf("%w: palette has %d colors for %d types", config.ErrInvalid, len(palette), cfg.Board.Types)
	}
	return Generate(palette[:cfg.Board.Types], size), nil
}
