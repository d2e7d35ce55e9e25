package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/sync/errgroup"

	"github.com/OpticalFlyer/hud/ui"
)

// BuiltinFont names the Go Regular face compiled into the binary.
const BuiltinFont = "builtin:goregular"

// ErrUnknownAsset is returned for paths the loader has no decoder for.
var ErrUnknownAsset = errors.New("backend: unknown asset type")

var _ ui.ContentLoader = (*Loader)(nil)

// Loader serves images as *Texture and fonts as *Font, caching each asset
// after the first load.
type Loader struct {
	root     string
	fontSize float64

	cache map[string]any

	decodedMu sync.Mutex
	decoded   map[string]image.Image
}

// NewLoader creates a loader resolving relative paths against root.
func NewLoader(root string, fontSize float64) *Loader {
	if fontSize <= 0 {
		fontSize = 14
	}
	return &Loader{
		root:     root,
		fontSize: fontSize,
		cache:    make(map[string]any),
		decoded:  make(map[string]image.Image),
	}
}

// Load returns the asset at path. It must be called from the game goroutine.
func (l *Loader) Load(path string) (any, error) {
	if v, ok := l.cache[path]; ok {
		return v, nil
	}
	v, err := l.load(path)
	if err != nil {
		return nil, err
	}
	l.cache[path] = v
	return v, nil
}

func (l *Loader) load(path string) (any, error) {
	if path == BuiltinFont {
		return l.newFont(goregular.TTF)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ttf", ".otf":
		data, err := os.ReadFile(l.resolve(path))
		if err != nil {
			return nil, fmt.Errorf("reading font %s: %w", path, err)
		}
		return l.newFont(data)
	case ".png", ".jpg", ".jpeg":
		img, err := l.image(path)
		if err != nil {
			return nil, err
		}
		return &Texture{img: ebiten.NewImageFromImage(img)}, nil
	default:
		return nil, fmt.Errorf("loading %s: %w", path, ErrUnknownAsset)
	}
}

func (l *Loader) newFont(data []byte) (*Font, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return &Font{face: &text.GoTextFace{Source: src, Size: l.fontSize}}, nil
}

// image returns a preloaded image or decodes it now.
func (l *Loader) image(path string) (image.Image, error) {
	l.decodedMu.Lock()
	img, ok := l.decoded[path]
	delete(l.decoded, path)
	l.decodedMu.Unlock()
	if ok {
		return img, nil
	}
	return decodeFile(l.resolve(path))
}

// Preload decodes image assets concurrently so the first Load of each is
// cheap. Non-image paths are skipped.
func (l *Loader) Preload(ctx context.Context, paths ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, path := range paths {
		if !isImage(path) {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := decodeFile(l.resolve(path))
			if err != nil {
				return err
			}
			l.decodedMu.Lock()
			l.decoded[path] = img
			l.decodedMu.Unlock()
			return nil
		})
	}
	return g.Wait()
}

func (l *Loader) resolve(path string) string {
	if filepath.IsAbs(path) || l.root == "" {
		return path
	}
	return filepath.Join(l.root, path)
}

func isImage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", path, err)
	}
	return img, nil
}
