package game

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long the behaviour file must stay quiet before a change
// is reported. Editors often truncate and rewrite, or save twice in a row.
const settleDelay = 100 * time.Millisecond

// Watcher reports when one file has settled after a change. It watches the
// parent directory so an editor replacing the file by rename is still seen.
type Watcher struct {
	fsw     *fsnotify.Watcher
	path    string
	settle  time.Duration
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:     fsw,
		path:    abs,
		settle:  settleDelay,
		Events:  make(chan string, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

// touches reports whether ev changes the watched file's content.
func (w *Watcher) touches(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Clean(ev.Name) == w.path
}

func (w *Watcher) run() {
	defer close(w.done)

	// The timer restarts on every change and only its expiry is reported,
	// so a burst of writes yields one event after the last of them.
	var timer *time.Timer
	var settled <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.touches(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.settle)
			} else {
				timer.Reset(w.settle)
			}
			settled = timer.C
		case <-settled:
			settled = nil
			select {
			case w.Events <- w.path:
			case <-w.closeCh:
				return
			default:
				// A reload is already pending and will read the latest content.
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
