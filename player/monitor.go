package player

import (
	"math"
	"sync"
	"time"

	"github.com/yeahme49/plugin.video.embycon/log"
)

const (
	defaultPollInterval     = 500 * time.Millisecond
	defaultProgressInterval = 10 * time.Second

	// A position jump larger than this between two polls is treated as a seek
	// rather than normal playback advance.
	seekJumpThreshold = 5.0
)

// Monitor polls the player and synthesizes lifecycle callbacks on a Listener.
// All callbacks are delivered from the single polling goroutine, so listeners
// never see concurrent events.
type Monitor struct {
	player   Player
	listener Listener

	pollInterval     time.Duration
	progressInterval time.Duration

	stopCh   chan struct{}
	done     chan struct{}
	started  bool
	stopOnce sync.Once

	// polling state, owned by the run goroutine
	playing      bool
	paused       bool
	file         string
	lastPos      float64
	lastProgress time.Time
}

// NewMonitor creates a monitor for the given player and listener.
func NewMonitor(p Player, l Listener) *Monitor {
	return &Monitor{
		player:           p,
		listener:         l,
		pollInterval:     defaultPollInterval,
		progressInterval: defaultProgressInterval,
		stopCh:           make(chan struct{}),
		done:             make(chan struct{}),
	}
}

// Start launches the polling goroutine.
func (m *Monitor) Start() {
	m.started = true
	go m.run()
}

// Stop terminates the polling goroutine and blocks until it has exited. If
// playback was still active, the final stopped callback has been delivered by
// the time Stop returns, so callers may tear down immediately after.
func (m *Monitor) Stop() {
	if !m.started {
		return
	}
	m.stopOnce.Do(func() {
		close(m.stopCh)
	})
	<-m.done
}

func (m *Monitor) run() {
	defer close(m.done)

	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			if m.playing {
				m.playing = false
				m.listener.OnPlaybackStopped(m.file)
			}
			return
		case <-ticker.C:
			m.poll()
		}
	}
}

// poll inspects player state once and emits any callbacks the state transition implies.
func (m *Monitor) poll() {
	if !m.player.IsRunning() {
		if m.playing {
			m.playing = false
			m.listener.OnPlaybackStopped(m.file)
		}
		return
	}

	active, err := m.player.HasActivePlayback()
	if err != nil {
		log.Debugf("monitor: active check: %v", err)
		return
	}

	if !m.playing {
		if !active {
			return
		}
		file, err := m.player.GetPath()
		if err != nil {
			log.Debugf("monitor: path lookup: %v", err)
			return
		}
		m.playing = true
		m.paused = false
		m.file = file
		m.lastPos, _ = m.player.GetTimePos()
		m.lastProgress = time.Now()
		m.listener.OnPlaybackStarted(file)
		return
	}

	if !active {
		m.playing = false
		m.listener.OnPlaybackStopped(m.file)
		return
	}

	paused, err := m.player.GetPausedStatus()
	if err == nil && paused != m.paused {
		m.paused = paused
		if paused {
			m.listener.OnPlaybackPaused(m.file)
		} else {
			m.listener.OnPlaybackResumed(m.file)
		}
	}

	pos, err := m.player.GetTimePos()
	if err != nil {
		return
	}

	expected := m.lastPos
	if !m.paused {
		expected += m.pollInterval.Seconds()
	}
	if math.Abs(pos-expected) > seekJumpThreshold {
		m.listener.OnPlaybackSeek(m.file, pos)
	} else if time.Since(m.lastProgress) >= m.progressInterval {
		m.listener.OnPlaybackProgress(m.file, pos)
		m.lastProgress = time.Now()
	}
	m.lastPos = pos
}
