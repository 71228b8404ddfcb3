// Package watch re-checks TR-701 sources when they change on disk.
package watch

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tliron/commonlog"
)

// Ext is the file extension of TR-701 sources found in watched directories.
const Ext = ".tr"

// Handler is called with the path of every new or modified file.
type Handler func(path string)

// Watcher polls files and directories for modification.
type Watcher struct {
	roots        []string
	handler      Handler
	stopCh       chan struct{}
	stopOnce     sync.Once
	pollInterval time.Duration
	modTimes     map[string]time.Time
	log          commonlog.Logger
}

func New(roots []string, handler Handler) *Watcher {
	return &Watcher{
		roots:        roots,
		handler:      handler,
		stopCh:       make(chan struct{}),
		pollInterval: 1 * time.Second,
		modTimes:     make(map[string]time.Time),
		log:          commonlog.GetLogger("tr701.watch"),
	}
}

// SetInterval changes the polling interval. It must be called before Start.
func (w *Watcher) SetInterval(d time.Duration) {
	if d > 0 {
		w.pollInterval = d
	}
}

// Start scans once and then keeps polling in the background until Stop.
func (w *Watcher) Start() {
	go w.run()
}

// Run scans once and then polls until Stop is called.
func (w *Watcher) Run() {
	w.run()
}

func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
}

func (w *Watcher) run() {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.Scan()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.Scan()
		}
	}
}

// Scan checks every root once and calls the handler for new or modified
// files. Files that disappeared are forgotten.
func (w *Watcher) Scan() {
	current := make(map[string]bool)

	for _, root := range w.roots {
		info, err := os.Stat(root)
		if err != nil {
			w.log.Warningf("watch %s: %s", root, err)
			continue
		}
		if !info.IsDir() {
			w.visit(root, info, current)
			continue
		}
		filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if info.IsDir() {
				if path != root && strings.HasPrefix(info.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) != Ext {
				return nil
			}
			w.visit(path, info, current)
			return nil
		})
	}

	for path := range w.modTimes {
		if !current[path] {
			delete(w.modTimes, path)
			w.log.Infof("removed %s", path)
		}
	}
}

func (w *Watcher) visit(path string, info os.FileInfo, current map[string]bool) {
	current[path] = true
	lastMod, known := w.modTimes[path]
	if known && !info.ModTime().After(lastMod) {
		return
	}
	w.modTimes[path] = info.ModTime()
	w.handler(path)
}
