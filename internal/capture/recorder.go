package capture

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var (
	ErrPermissionDenied = errors.New("audio device permission denied")
	ErrDeviceNotFound   = errors.New("no audio device available")
	ErrRecorderBusy     = errors.New("a recording session is already active")
	ErrNotRecording     = errors.New("no recording session is active")
)

// AudioDevice grants access to a capture stream. Acquire fails when the
// user denies permission or no device exists.
type AudioDevice interface {
	Acquire(ctx context.Context) (AudioStream, error)
}

// AudioStream is an open capture stream. Close stops the capture, releases
// the underlying device and returns everything recorded so far.
type AudioStream interface {
	Format() string
	Close() ([]byte, error)
}

// Clip is one finished recording
type Clip struct {
	Data        []byte
	Format      string
	Duration    time.Duration
	AutoStopped bool
}

// Recorder drives a single capture session between two states, idle and
// recording. A deadline timer races the manual stop; whichever transition
// wins delivers the clip, the loser observes the idle state and does
// nothing.
type Recorder struct {
	device      AudioDevice
	maxDuration time.Duration
	onClip      func(Clip)
	logger      *slog.Logger

	mu        sync.Mutex
	recording bool
	stream    AudioStream
	timer     *time.Timer
	startedAt time.Time
}

// NewRecorder creates a recorder. onClip receives every finished clip,
// whether the session ended by manual stop or by hitting the deadline.
func NewRecorder(device AudioDevice, maxDuration time.Duration, onClip func(Clip)) *Recorder {
	return &Recorder{
		device:      device,
		maxDuration: maxDuration,
		onClip:      onClip,
		logger:      slog.Default().With("component", "recorder"),
	}
}

// Start acquires the device and begins a session. The session ends at the
// deadline unless Stop is called first. Failing to acquire the device
// leaves the recorder idle.
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		return ErrRecorderBusy
	}

	stream, err := r.device.Acquire(ctx)
	if err != nil {
		r.logger.Warn("failed to acquire audio device", "error", err)
		return err
	}

	r.recording = true
	r.stream = stream
	r.startedAt = time.Now()
	r.timer = time.AfterFunc(r.maxDuration, func() {
		if clip, err := r.finish(true); err == nil {
			r.logger.Info("recording stopped at deadline", "duration", clip.Duration)
			r.onClip(*clip)
		}
	})

	r.logger.Info("recording started", "max_duration", r.maxDuration)
	return nil
}

// Stop ends the session and delivers the clip. Stopping an idle recorder,
// including one the deadline already stopped, returns ErrNotRecording.
func (r *Recorder) Stop() (*Clip, error) {
	clip, err := r.finish(false)
	if err != nil {
		return nil, err
	}
	r.onClip(*clip)
	return clip, nil
}

// Recording reports whether a session is active
func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// finish performs the single recording-to-idle transition. The state check
// under the lock is what settles the race between the deadline timer and a
// manual stop.
func (r *Recorder) finish(autoStopped bool) (*Clip, error) {
	r.mu.Lock()

	if !r.recording {
		r.mu.Unlock()
		return nil, ErrNotRecording
	}

	r.recording = false
	stream := r.stream
	timer := r.timer
	startedAt := r.startedAt
	r.stream = nil
	r.timer = nil
	r.mu.Unlock()

	if !autoStopped {
		timer.Stop()
	}

	data, err := stream.Close()
	if err != nil {
		r.logger.Error("failed to close audio stream", "error", err)
		return nil, err
	}

	return &Clip{
		Data:        data,
		Format:      stream.Format(),
		Duration:    time.Since(startedAt),
		AutoStopped: autoStopped,
	}, nil
}
