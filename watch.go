package warp

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce is how long the file must stay quiet before a reload;
// editors and os.WriteFile often produce several events per save.
const reloadDebounce = 100 * time.Millisecond

// ConfigWatcher reloads a YAML config file whenever it changes on disk.
// Successfully parsed configs arrive on Configs; read or parse failures
// arrive on Errors and leave the previous config in place.
//
// The file's directory is watched rather than the file itself so editors
// that save by rename keep working.
type ConfigWatcher struct {
	Configs chan Config
	Errors  chan error

	path    string
	watcher *fsnotify.Watcher
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewConfigWatcher starts watching path.
func NewConfigWatcher(path string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch config %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch config %s: %w", path, err)
	}

	cw := &ConfigWatcher{
		Configs: make(chan Config, 4),
		Errors:  make(chan error, 4),
		path:    abs,
		watcher: w,
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go cw.run()
	return cw, nil
}

// Close stops the watcher and closes Configs and Errors. Safe to call more
// than once.
func (cw *ConfigWatcher) Close() error {
	var err error
	cw.once.Do(func() {
		close(cw.closeCh)
		err = cw.watcher.Close()
		<-cw.done
		close(cw.Configs)
		close(cw.Errors)
	})
	return err
}

func (cw *ConfigWatcher) run() {
	defer close(cw.done)
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			// Reload once the file has been quiet for reloadDebounce.
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			cfg, err := LoadConfigFile(cw.path)
			if err != nil {
				cw.sendErr(err)
				continue
			}
			select {
			case cw.Configs <- cfg:
			case <-cw.closeCh:
				return
			}
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.sendErr(err)
		case <-cw.closeCh:
			return
		}
	}
}

// sendErr delivers err without blocking the watch loop when nobody reads.
func (cw *ConfigWatcher) sendErr(err error) {
	select {
	case cw.Errors <- err:
	default:
	}
}
