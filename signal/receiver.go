package signal

import (
	"bufio"
	"encoding/json"
	"errors"
	"net"
	"os"
	"sync"

	"github.com/yeahme49/plugin.video.embycon/log"
	"github.com/yeahme49/plugin.video.embycon/playback"
)

// Receiver listens on a unix socket for newline-delimited notification
// envelopes and dispatches decoded play requests, one at a time, to the
// handler. Internal submissions, like the advisor's play-next request, go
// through the same queue so external and internal requests never interleave.
type Receiver struct {
	socketPath string
	onPlay     func(playback.PlayRequest)

	queue    chan playback.PlayRequest
	listener net.Listener

	once sync.Once
	done chan struct{}
}

// NewReceiver creates a receiver that dispatches to onPlay.
func NewReceiver(socketPath string, onPlay func(playback.PlayRequest)) *Receiver {
	return &Receiver{
		socketPath: socketPath,
		onPlay:     onPlay,
		queue:      make(chan playback.PlayRequest, 16),
		done:       make(chan struct{}),
	}
}

// Start binds the socket and runs the accept and dispatch loops in the
// background. A stale socket file from a previous run is removed first.
func (r *Receiver) Start() error {
	_ = os.Remove(r.socketPath)

	listener, err := net.Listen("unix", r.socketPath)
	if err != nil {
		return err
	}
	r.listener = listener

	go r.acceptLoop()
	go r.dispatchLoop()

	log.Debugf("signal receiver listening on %s", r.socketPath)
	return nil
}

// Submit queues an internally generated play request. Returns false when the
// receiver is stopped or the queue is full.
func (r *Receiver) Submit(req playback.PlayRequest) bool {
	select {
	case <-r.done:
		return false
	case r.queue <- req:
		return true
	default:
		log.Error("signal queue full, dropping play request")
		return false
	}
}

// Stop closes the socket and ends dispatching. Safe to call more than once.
func (r *Receiver) Stop() {
	r.once.Do(func() {
		close(r.done)
		if r.listener != nil {
			_ = r.listener.Close()
		}
		_ = os.Remove(r.socketPath)
	})
}

func (r *Receiver) acceptLoop() {
	for {
		conn, err := r.listener.Accept()
		if err != nil {
			select {
			case <-r.done:
				return
			default:
			}
			if errors.Is(err, net.ErrClosed) {
				return
			}
			log.Errorf("signal accept: %v", err)
			continue
		}
		go r.readConn(conn)
	}
}

// readConn consumes envelopes from one connection. Notifications for other
// senders are silently dropped; malformed payloads are logged and dropped.
func (r *Receiver) readConn(conn net.Conn) {
	defer func() { _ = conn.Close() }()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 4096), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var notification Notification
		if err := json.Unmarshal(line, &notification); err != nil {
			log.Errorf("signal envelope: %v", err)
			continue
		}

		request, err := Decode(notification)
		if err != nil {
			if !errors.Is(err, ErrNotOurs) {
				log.Errorf("signal decode: %v", err)
			}
			continue
		}

		if !r.Submit(request) {
			return
		}
	}
}

// dispatchLoop hands queued requests to the handler sequentially.
func (r *Receiver) dispatchLoop() {
	for {
		select {
		case <-r.done:
			return
		case request := <-r.queue:
			r.onPlay(request)
		}
	}
}

// Send connects to the socket and delivers one play request. It is the
// client half of the receiver, used by a second process to hand off a play.
func Send(socketPath string, req playback.PlayRequest) error {
	notification, err := Encode(req)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	_, err = conn.Write(append(payload, '\n'))
	return err
}
