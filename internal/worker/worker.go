package worker

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pavelaverin/linksight/internal/metrics"
	"github.com/pavelaverin/linksight/internal/store"
)

// Rebuild runs the full load→classify→index pipeline and returns a fresh
// store.
type Rebuild func() (*store.Store, error)

// Worker re-runs the pipeline on a ticker and swaps the result into the
// holder. Reloading keeps point-in-time derivations (dormancy) honest on a
// long-running process and picks up replaced export folders.
type Worker struct {
	Holder   *store.Holder
	Rebuild  Rebuild
	Ticker   *time.Ticker
	StopChan chan bool
	mu       sync.Mutex
	active   bool
}

func New(holder *store.Holder, rebuild Rebuild) *Worker {
	return &Worker{
		Holder:   holder,
		Rebuild:  rebuild,
		StopChan: make(chan bool),
	}
}

func (w *Worker) Start(interval time.Duration) {
	w.mu.Lock()
	if w.active {
		w.mu.Unlock()
		logrus.Warn("worker: reload already active, use Restart to change interval")
		return
	}
	w.active = true
	w.mu.Unlock()

	w.Ticker = time.NewTicker(interval)
	go func() {
		defer func() {
			w.mu.Lock()
			w.active = false
			w.mu.Unlock()
		}()
		for {
			select {
			case <-w.Ticker.C:
				w.ReloadOnce()
			case <-w.StopChan:
				w.Ticker.Stop()
				return
			}
		}
	}()
	logrus.WithField("interval", interval).Info("reload worker started")
}

func (w *Worker) Stop() {
	w.mu.Lock()
	if !w.active {
		w.mu.Unlock()
		logrus.Warn("worker: reload not active")
		return
	}
	w.mu.Unlock()

	w.StopChan <- true
	logrus.Info("reload worker stopped")
}

func (w *Worker) Restart(interval time.Duration) {
	w.Stop()
	w.Start(interval)
}

// ReloadOnce rebuilds the store and swaps it in. A failed rebuild keeps the
// previous store serving.
func (w *Worker) ReloadOnce() {
	started := time.Now()
	s, err := w.Rebuild()
	if err != nil {
		logrus.WithError(err).Error("reload failed, keeping previous store")
		return
	}
	w.Holder.Set(s)
	metrics.ObserveRebuild(s, time.Since(started))
	logrus.WithFields(logrus.Fields{
		"connections": len(s.Connections),
		"posts":       len(s.Posts),
		"took":        time.Since(started),
	}).Info("store reloaded")
}
