package assets

import (
	"context"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/normanking/mouthsync/internal/bus"
	"github.com/normanking/mouthsync/internal/viseme"
)

// Store holds the active table set behind an atomic pointer. In-flight
// pipeline calls keep the snapshot they started with; a reload swaps the
// whole set at once.
type Store struct {
	current atomic.Pointer[viseme.Tables]
	path    string
	log     zerolog.Logger
}

// NewStore creates a Store seeded with the built-in default tables, then
// overlaid from the asset at path if one exists. An empty path means
// defaults only, no watching.
func NewStore(path string, log zerolog.Logger) (*Store, error) {
	s := &Store{
		path: path,
		log:  log.With().Str("component", "assets").Logger(),
	}
	s.current.Store(viseme.DefaultTables())

	if path != "" {
		if _, err := s.reload(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Tables returns the active table set. Implements mouthsync.TableSource.
func (s *Store) Tables() *viseme.Tables {
	return s.current.Load()
}

func (s *Store) reload() (*viseme.Tables, error) {
	t, err := Load(s.path)
	if err != nil {
		return nil, err
	}
	s.current.Store(t)
	return t, nil
}

// Watch reloads the asset file whenever it changes, until ctx ends. A
// reload that fails to parse keeps the previous table set active. Events
// are published on b (which may be nil) so interested parties can refresh.
func (s *Store) Watch(ctx context.Context, b *bus.EventBus) error {
	if s.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory: editors replace files rather than write in place.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return err
	}

	go s.watchLoop(ctx, watcher, b)
	return nil
}

func (s *Store) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, b *bus.EventBus) {
	defer watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Name != s.path || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			if _, err := s.reload(); err != nil {
				s.log.Warn().Err(err).Msg("table reload failed, keeping previous set")
				continue
			}
			s.log.Info().Str("path", s.path).Msg("viseme tables reloaded")
			if b != nil {
				// Synchronous so subscribers see this reload before the
				// next filesystem event is handled.
				b.PublishSync(bus.Event{
					Type: bus.EventTypeTablesReloaded,
					Data: map[string]any{"path": s.path},
				})
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.log.Warn().Err(err).Msg("table watcher error")
		}
	}
}
