// pkg/resource/store.go
package resource

import (
	"fmt"
	"image"
	_ "image/png" // ship skin assets are PNG
	"os"
	"path/filepath"
	"sync"

	"github.com/maximillianbartolo/BSS/pkg/logging"
)

// Store loads and holds the simulator's optional assets and owns the sound
// volume policy. Missing assets are the expected case, not an error case:
// callers log a warning and fall back to procedural art or silence.
type Store struct {
	baseDir string
	logger  *logging.Logger

	mu     sync.RWMutex
	images map[string]image.Image

	masterVolume float64
	muted        bool
}

// NewStore creates an asset store rooted at baseDir with the given master
// volume (clamped into [0,1]).
func NewStore(baseDir string, masterVolume float64, logger *logging.Logger) *Store {
	return &Store{
		baseDir:      baseDir,
		logger:       logger,
		images:       make(map[string]image.Image),
		masterVolume: clampVolume(masterVolume),
	}
}

// Path resolves an asset name against the store's base directory.
func (s *Store) Path(name string) string {
	return filepath.Join(s.baseDir, name)
}

// Available reports whether the named asset file exists.
func (s *Store) Available(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// LoadImage decodes the named image file and caches it under name. A second
// call returns the cached decode.
func (s *Store) LoadImage(name string) (image.Image, error) {
	s.mu.RLock()
	img, ok := s.images[name]
	s.mu.RUnlock()
	if ok {
		return img, nil
	}

	f, err := os.Open(s.Path(name))
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", name, err)
	}
	defer f.Close()

	img, _, err = image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", name, err)
	}

	s.mu.Lock()
	s.images[name] = img
	s.mu.Unlock()

	s.logger.Debug("image loaded", "name", name)
	return img, nil
}

// Image returns a previously loaded image.
func (s *Store) Image(name string) (image.Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.images[name]
	return img, ok
}

// SetMasterVolume adjusts the sound-effect volume, clamped into [0,1].
func (s *Store) SetMasterVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.masterVolume = clampVolume(v)
}

// MasterVolume returns the current master sound-effect volume.
func (s *Store) MasterVolume() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.masterVolume
}

// SetMuted switches all sound effects off or back on.
func (s *Store) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = muted
}

// Muted reports whether sound effects are switched off.
func (s *Store) Muted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.muted
}

// EffectiveVolume scales a per-effect volume by the master volume, honoring
// mute. The result is always in [0,1].
func (s *Store) EffectiveVolume(effect float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.muted {
		return 0
	}
	return clampVolume(effect) * s.masterVolume
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
