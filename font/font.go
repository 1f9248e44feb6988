// Package font keeps the fonts available for drawing. Faces register
// under a name; the first registered face becomes the default a
// framebuffer session picks up at acquisition.
package font

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/roman65536/tfblib/internal/consts"
	"github.com/roman65536/tfblib/internal/errors"
)

// BasicName is the name RegisterBasic registers the compiled-in
// fallback face under.
const BasicName = `basic`

// Registry failure variants.
var (
	ErrFontExists  = consts.ErrFontExists
	ErrFontUnknown = consts.ErrFontUnknown
)

// Registry is an ordered set of named faces.
type Registry struct {
	mu    sync.Mutex
	names []string
	faces map[string]xfont.Face
	def   string
}

func NewRegistry() *Registry {
	return &Registry{faces: map[string]xfont.Face{}}
}

// Register adds a face under name. Registration order is kept; the
// first registered face is the default until SetDefault. Duplicate
// names fail with ErrFontExists.
func (r *Registry) Register(name string, face xfont.Face) error {
	if r == nil {
		return errors.New(consts.ErrNilReceiver)
	}
	if len(name) == 0 || face == nil {
		return errors.New(consts.ErrNilParam)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.faces[name]; exists {
		return errors.Tag(consts.ErrFontExists, errors.Errorf(`%q`, name))
	}
	r.faces[name] = face
	r.names = append(r.names, name)
	return nil
}

// LoadTTF parses a TrueType font file, builds a face of the given point
// size and registers it under the file's base name, which is returned.
func (r *Registry) LoadTTF(path string, size float64) (string, error) {
	if r == nil {
		return ``, errors.New(consts.ErrNilReceiver)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ``, errors.New(err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return ``, errors.New(err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: size})
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if err := r.Register(name, face); err != nil {
		return ``, err
	}
	return name, nil
}

// RegisterBasic registers the compiled-in 7x13 face and returns its
// name. Registering it twice fails like any duplicate.
func (r *Registry) RegisterBasic() (string, error) {
	if err := r.Register(BasicName, basicfont.Face7x13); err != nil {
		return ``, err
	}
	return BasicName, nil
}

// Lookup returns the face registered under name.
func (r *Registry) Lookup(name string) (xfont.Face, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	face, ok := r.faces[name]
	return face, ok
}

// Default returns the explicitly chosen default face, else the first
// registered one.
func (r *Registry) Default() (xfont.Face, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	name := r.def
	if len(name) == 0 {
		if len(r.names) == 0 {
			return nil, false
		}
		name = r.names[0]
	}
	face, ok := r.faces[name]
	return face, ok
}

// SetDefault makes the named face the default. Unregistered names fail
// with ErrFontUnknown.
func (r *Registry) SetDefault(name string) error {
	if r == nil {
		return errors.New(consts.ErrNilReceiver)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.faces[name]; !ok {
		return errors.Tag(consts.ErrFontUnknown, errors.Errorf(`%q`, name))
	}
	r.def = name
	return nil
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

var defaultRegistry = NewRegistry()

// Package-level calls go to a shared registry.

func Register(name string, face xfont.Face) error { return defaultRegistry.Register(name, face) }

func LoadTTF(path string, size float64) (string, error) { return defaultRegistry.LoadTTF(path, size) }

func RegisterBasic() (string, error) { return defaultRegistry.RegisterBasic() }

func Lookup(name string) (xfont.Face, bool) { return defaultRegistry.Lookup(name) }

func Default() (xfont.Face, bool) { return defaultRegistry.Default() }

func SetDefault(name string) error { return defaultRegistry.SetDefault(name) }

func Names() []string { return defaultRegistry.Names() }
