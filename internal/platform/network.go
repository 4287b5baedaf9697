package platform

import (
	"context"
	"net"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Probe reports whether the network is reachable.
type Probe func(ctx context.Context) bool

// DialProbe returns a Probe that opens and closes a TCP connection to addr.
func DialProbe(addr string, timeout time.Duration) Probe {
	return func(ctx context.Context) bool {
		d := net.Dialer{Timeout: timeout}
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}
}

// OfflineWatcher polls a Probe and reports connectivity changes.
type OfflineWatcher struct {
	probe    Probe
	interval time.Duration

	// only touched by the single in-flight watch command
	reported bool
	last     bool
}

// NewOfflineWatcher polls probe every interval.
func NewOfflineWatcher(probe Probe, interval time.Duration) *OfflineWatcher {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &OfflineWatcher{probe: probe, interval: interval}
}

// Install reports the current status to cb right away and then again every
// time it flips. Polling stops when ctx is done.
func (w *OfflineWatcher) Install(ctx context.Context, cb func(offline bool)) tea.Cmd {
	return w.watch(ctx, cb, false)
}

func (w *OfflineWatcher) watch(ctx context.Context, cb func(bool), wait bool) tea.Cmd {
	return func() tea.Msg {
		for {
			if wait {
				t := time.NewTimer(w.interval)
				select {
				case <-ctx.Done():
					t.Stop()
					return nil
				case <-t.C:
				}
			}
			wait = true

			offline := !w.probe(ctx)
			if ctx.Err() != nil {
				return nil
			}
			if w.reported && offline == w.last {
				continue
			}
			w.reported, w.last = true, offline
			return Event{
				Source: SourceNetwork,
				fire:   func() { cb(offline) },
				next:   w.watch(ctx, cb, true),
			}
		}
	}
}
