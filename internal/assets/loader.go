package assets

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png" // PNG decoder for sprite images
	"io/fs"
	"os"
	"path"
	"sort"
	"sync"
)

//go:embed sprites/*.yaml
var builtinFS embed.FS

// Builtin returns the sprites shipped with the binary.
func Builtin() fs.FS {
	sub, err := fs.Sub(builtinFS, "sprites")
	if err != nil {
		panic(err) // embedded directory is always present
	}
	return sub
}

// Open returns the asset file system for dir. Files missing from dir fall
// back to the built-in sprites; an empty dir means built-in only.
func Open(dir string) fs.FS {
	if dir == "" {
		return Builtin()
	}
	return overlayFS{primary: os.DirFS(dir), fallback: Builtin()}
}

type overlayFS struct {
	primary, fallback fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return o.fallback.Open(name)
	}
	return f, err
}

// Report tells that one asset finished loading. Err is nil on success.
type Report struct {
	Name string
	Err  error
}

type entry struct {
	name string
	path string
}

// Loader loads registered sprites concurrently. Each registered asset
// produces exactly one Report per Load call.
type Loader struct {
	fsys fs.FS

	mu       sync.Mutex
	entries  []entry
	sprites  map[string]*Sprite
	reported map[string]bool
}

// NewLoader creates a loader reading from fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:     fsys,
		sprites:  make(map[string]*Sprite),
		reported: make(map[string]bool),
	}
}

// Add registers an asset. Registering a name again replaces its path.
func (l *Loader) Add(name, path string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].name == name {
			l.entries[i].path = path
			return
		}
	}
	l.entries = append(l.entries, entry{name: name, path: path})
}

// AddAll registers every name -> path pair, in name order.
func (l *Loader) AddAll(sprites map[string]string) {
	names := make([]string, 0, len(sprites))
	for name := range sprites {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		l.Add(name, sprites[name])
	}
}

// Names returns the registered asset names in registration order.
func (l *Loader) Names() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	names := make([]string, len(l.entries))
	for i, e := range l.entries {
		names[i] = e.name
	}
	return names
}

// Load starts loading every registered asset and returns a channel that
// receives one Report per asset and is closed afterwards. Assets not yet
// started when ctx is canceled report ctx.Err(). Failed assets are replaced
// by a placeholder so drawing never has to handle a missing sprite.
func (l *Loader) Load(ctx context.Context) <-chan Report {
	l.mu.Lock()
	entries := append([]entry(nil), l.entries...)
	for _, e := range entries {
		delete(l.reported, e.name)
	}
	l.mu.Unlock()

	reports := make(chan Report, len(entries))
	var wg sync.WaitGroup
	for _, e := range entries {
		wg.Add(1)
		go func(e entry) {
			defer wg.Done()

			var (
				s   *Sprite
				err error
			)
			if err = ctx.Err(); err == nil {
				s, err = l.load(e)
			}
			if err != nil {
				s = Placeholder(e.name)
			}

			l.mu.Lock()
			l.sprites[e.name] = s
			l.reported[e.name] = true
			l.mu.Unlock()

			reports <- Report{Name: e.name, Err: err}
		}(e)
	}

	go func() {
		wg.Wait()
		close(reports)
	}()
	return reports
}

// LoadAll loads every asset and waits for all of them. It returns the
// reports in registration order.
func (l *Loader) LoadAll(ctx context.Context) []Report {
	byName := make(map[string]Report)
	for r := range l.Load(ctx) {
		byName[r.Name] = r
	}

	names := l.Names()
	reports := make([]Report, 0, len(names))
	for _, name := range names {
		reports = append(reports, byName[name])
	}
	return reports
}

func (l *Loader) load(e entry) (*Sprite, error) {
	data, err := fs.ReadFile(l.fsys, e.path)
	if err != nil {
		return nil, wrapOpen(e.name, err)
	}

	s, err := DecodeSprite(e.name, data)
	if err != nil {
		return nil, err
	}

	if s.Image != "" {
		p := s.Image
		if !path.IsAbs(p) {
			p = path.Join(path.Dir(e.path), p)
		}
		img, err := l.decodeImage(p)
		if err != nil {
			return nil, wrapOpen(e.name, err)
		}
		s.Raster = img
	}
	return s, nil
}

func (l *Loader) decodeImage(p string) (image.Image, error) {
	f, err := l.fsys.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", p, err)
	}
	return img, nil
}

func wrapOpen(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("assets: load %q: %w: %w", name, ErrNotFound, err)
	}
	return fmt.Errorf("assets: load %q: %w", name, err)
}

// Sprite returns a loaded sprite, or a placeholder if it has not loaded.
func (l *Loader) Sprite(name string) *Sprite {
	l.mu.Lock()
	defer l.mu.Unlock()

	if s, ok := l.sprites[name]; ok {
		return s
	}
	return Placeholder(name)
}

// Pending returns how many registered assets have not reported yet.
func (l *Loader) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, e := range l.entries {
		if !l.reported[e.name] {
			n++
		}
	}
	return n
}

// AllReported reports whether every registered asset has reported.
func (l *Loader) AllReported() bool {
	return l.Pending() == 0
}
