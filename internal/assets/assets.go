// Package assets resolves sprite names to images. Sprites are either read
// from a directory of PNG files or drawn procedurally as placeholders.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // PNG decoder for Load
	"io/fs"

	"github.com/vovakirdan/basket-fighter/internal/core"
)

// ErrMissing is returned when a sprite has no image.
var ErrMissing = errors.New("assets: sprite missing")

// Catalog maps every sprite the game draws to an image.
type Catalog map[core.SpriteID]image.Image

// FileName returns the file a sprite is loaded from.
func FileName(id core.SpriteID) string {
	return string(id) + ".png"
}

// Load decodes <name>.png from fsys for every sprite. Any missing or
// undecodable file fails the whole load.
func Load(fsys fs.FS) (Catalog, error) {
	cat := make(Catalog, len(core.AllSprites()))
	for _, id := range core.AllSprites() {
		img, err := decode(fsys, FileName(id))
		if err != nil {
			return nil, err
		}
		cat[id] = img
	}
	return cat, nil
}

func decode(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, name)
		}
		return nil, fmt.Errorf("assets: cannot open %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", name, err)
	}
	return img, nil
}

// Get returns the image for a sprite.
func (c Catalog) Get(id core.SpriteID) (image.Image, error) {
	img, ok := c[id]
	if !ok || img == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissing, id)
	}
	return img, nil
}

// Validate checks that every sprite the game uses is present.
func (c Catalog) Validate() error {
	for _, id := range core.AllSprites() {
		if _, err := c.Get(id); err != nil {
			return err
		}
	}
	return nil
}
