package lexicon

import (
	"fmt"
	"log"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Store holds the active lexicon and supports atomic swaps, so a reload
// never observes a half-updated dictionary. Safe for concurrent readers.
type Store struct {
	mu      sync.RWMutex
	active  *Lexicon
	path    string
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewStore creates a store seeded with the given lexicon
func NewStore(lex *Lexicon) *Store {
	if lex == nil {
		lex = Default()
	}
	return &Store{active: lex}
}

// NewStoreFromFile creates a store backed by a lexicon file.
// Falls back to the built-in lexicon if the file cannot be loaded.
func NewStoreFromFile(path string) *Store {
	lex, err := LoadFile(path)
	if err != nil {
		log.Printf("[WARN] Failed to load lexicon from %s, using built-in defaults: %v", path, err)
		return NewStore(Default())
	}

	log.Printf("[INFO] Loaded lexicon version %s from %s", lex.Version, path)
	store := NewStore(lex)
	store.path = path
	return store
}

// Active returns the current lexicon
func (s *Store) Active() *Lexicon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Swap replaces the active lexicon
func (s *Store) Swap(lex *Lexicon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = lex
}

// Watch starts watching the backing file and reloads the lexicon on change.
// No-op for stores without a backing file.
func (s *Store) Watch() error {
	if s.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating lexicon watcher: %w", err)
	}

	if err := watcher.Add(s.path); err != nil {
		watcher.Close()
		return fmt.Errorf("watching lexicon file %s: %w", s.path, err)
	}

	s.watcher = watcher
	s.done = make(chan struct{})

	go s.watchLoop()
	return nil
}

// Stop stops the file watcher if one is running
func (s *Store) Stop() {
	if s.watcher == nil {
		return
	}
	close(s.done)
	s.watcher.Close()
	s.watcher = nil
}

func (s *Store) watchLoop() {
	for {
		select {
		case <-s.done:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			lex, err := LoadFile(s.path)
			if err != nil {
				// Keep the previous lexicon on a bad reload
				log.Printf("[WARN] Lexicon reload failed for %s: %v", s.path, err)
				continue
			}
			s.Swap(lex)
			log.Printf("[INFO] Reloaded lexicon version %s from %s", lex.Version, s.path)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[WARN] Lexicon watcher error: %v", err)
		}
	}
}
