// Package asset loads target images in the background and answers whether
// each one is ready to draw. A missing or broken image simply never becomes
// ready; callers draw a vector fallback instead.
package asset

import (
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"io"
	"io/fs"
	"sync"

	"github.com/charmbracelet/log"
)

// Store holds decoded images keyed by path.
type Store struct {
	fsys   fs.FS
	logger *log.Logger

	mu      sync.RWMutex
	images  map[string]image.Image
	pending map[string]struct{}
	wg      sync.WaitGroup
}

// NewStore creates a store reading from fsys. A nil fsys yields a store in
// which nothing ever becomes ready.
func NewStore(fsys fs.FS, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{
		fsys:    fsys,
		logger:  logger,
		images:  make(map[string]image.Image),
		pending: make(map[string]struct{}),
	}
}

// Load starts decoding path on a background goroutine. Repeated calls for
// the same path are ignored.
func (s *Store) Load(path string) {
	if path == "" || s.fsys == nil {
		return
	}
	s.mu.Lock()
	if _, ok := s.images[path]; ok {
		s.mu.Unlock()
		return
	}
	if _, ok := s.pending[path]; ok {
		s.mu.Unlock()
		return
	}
	s.pending[path] = struct{}{}
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.LoadSync(path); err != nil {
			s.logger.Debug("asset not loaded", "path", path, "err", err)
		}
	}()
}

// LoadSync decodes path on the calling goroutine.
func (s *Store) LoadSync(path string) error {
	defer func() {
		s.mu.Lock()
		delete(s.pending, path)
		s.mu.Unlock()
	}()

	if s.fsys == nil {
		return fmt.Errorf("load %s: no filesystem", path)
	}
	f, err := s.fsys.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	s.mu.Lock()
	s.images[path] = img
	s.mu.Unlock()
	s.logger.Debug("asset loaded", "path", path, "bounds", img.Bounds())
	return nil
}

// Ready reports whether path has finished loading.
func (s *Store) Ready(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.images[path]
	return ok
}

// Get returns the decoded image for path if it is ready.
func (s *Store) Get(path string) (image.Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.images[path]
	return img, ok
}

// Wait blocks until every background load started so far has finished.
func (s *Store) Wait() {
	s.wg.Wait()
}

// LoadAll starts loading every path.
func (s *Store) LoadAll(paths ...string) {
	for _, p := range paths {
		s.Load(p)
	}
}
