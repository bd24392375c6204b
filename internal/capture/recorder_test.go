package capture

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// fakeDevice hands out fakeStreams and records how often it was acquired
type fakeDevice struct {
	mu         sync.Mutex
	acquireErr error
	acquired   int
	streams    []*fakeStream
}

func (d *fakeDevice) Acquire(ctx context.Context) (AudioStream, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.acquireErr != nil {
		return nil, d.acquireErr
	}

	d.acquired++
	stream := &fakeStream{data: []byte("audio-bytes")}
	d.streams = append(d.streams, stream)
	return stream, nil
}

type fakeStream struct {
	mu     sync.Mutex
	data   []byte
	closed bool
}

func (s *fakeStream) Format() string {
	return "webm"
}

func (s *fakeStream) Close() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return s.data, nil
}

func (s *fakeStream) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// RecorderTestSuite is the test suite for the capture recorder
type RecorderTestSuite struct {
	suite.Suite
	device *fakeDevice
	clips  chan Clip
}

func TestRecorderTestSuite(t *testing.T) {
	suite.Run(t, new(RecorderTestSuite))
}

func (s *RecorderTestSuite) SetupTest() {
	s.device = &fakeDevice{}
	s.clips = make(chan Clip, 4)
}

func (s *RecorderTestSuite) newRecorder(maxDuration time.Duration) *Recorder {
	return NewRecorder(s.device, maxDuration, func(clip Clip) {
		s.clips <- clip
	})
}

func (s *RecorderTestSuite) TestStartStop_DeliversClip() {
	recorder := s.newRecorder(time.Minute)

	require.NoError(s.T(), recorder.Start(context.Background()))
	s.True(recorder.Recording())

	clip, err := recorder.Stop()
	require.NoError(s.T(), err)

	s.Equal([]byte("audio-bytes"), clip.Data)
	s.Equal("webm", clip.Format)
	s.False(clip.AutoStopped)
	s.False(recorder.Recording())
	s.True(s.device.streams[0].Closed(), "device must be released on stop")

	delivered := <-s.clips
	s.Equal(clip.Data, delivered.Data)
}

func (s *RecorderTestSuite) TestDeadline_StopsSession() {
	recorder := s.newRecorder(20 * time.Millisecond)

	require.NoError(s.T(), recorder.Start(context.Background()))

	select {
	case clip := <-s.clips:
		s.True(clip.AutoStopped)
		s.Equal([]byte("audio-bytes"), clip.Data)
	case <-time.After(time.Second):
		s.Fail("deadline never fired")
	}

	s.False(recorder.Recording())
	s.True(s.device.streams[0].Closed(), "device must be released at the deadline")

	// The losing manual stop observes the idle state
	_, err := recorder.Stop()
	s.ErrorIs(err, ErrNotRecording)
}

func (s *RecorderTestSuite) TestManualStop_WinsOverDeadline() {
	recorder := s.newRecorder(100 * time.Millisecond)

	require.NoError(s.T(), recorder.Start(context.Background()))

	clip, err := recorder.Stop()
	require.NoError(s.T(), err)
	s.False(clip.AutoStopped)

	// Give a cancelled timer the chance to misfire
	time.Sleep(200 * time.Millisecond)
	s.Len(s.clips, 1, "exactly one clip per session")
}

func (s *RecorderTestSuite) TestStop_WhenIdle() {
	recorder := s.newRecorder(time.Minute)

	_, err := recorder.Stop()
	s.ErrorIs(err, ErrNotRecording)
}

func (s *RecorderTestSuite) TestStart_WhileRecording() {
	recorder := s.newRecorder(time.Minute)

	require.NoError(s.T(), recorder.Start(context.Background()))
	err := recorder.Start(context.Background())
	s.ErrorIs(err, ErrRecorderBusy)
	s.Equal(1, s.device.acquired, "a busy recorder never reacquires the device")

	_, err = recorder.Stop()
	s.NoError(err)
}

func (s *RecorderTestSuite) TestStart_DeviceErrors() {
	testCases := []struct {
		name string
		err  error
	}{
		{"permission denied", ErrPermissionDenied},
		{"device not found", ErrDeviceNotFound},
		{"driver failure", errors.New("driver exploded")},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.device.acquireErr = tc.err
			recorder := s.newRecorder(time.Minute)

			err := recorder.Start(context.Background())
			s.ErrorIs(err, tc.err)
			s.False(recorder.Recording(), "a failed start leaves the recorder idle")
		})
	}
}

func (s *RecorderTestSuite) TestRestart_AfterStop() {
	recorder := s.newRecorder(time.Minute)

	require.NoError(s.T(), recorder.Start(context.Background()))
	_, err := recorder.Stop()
	require.NoError(s.T(), err)

	require.NoError(s.T(), recorder.Start(context.Background()))
	s.Equal(2, s.device.acquired)

	_, err = recorder.Stop()
	s.NoError(err)
}
