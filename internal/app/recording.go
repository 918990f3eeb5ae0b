package app

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Recorder receives the start and end of a dictation recording. The
// audio and transcription pipeline lives behind it.
type Recorder interface {
	StartRecording(id uuid.UUID)
	StopRecording(id uuid.UUID)
}

// recordingState turns hotkey actions into recorder calls. Toggle flips
// the state; hold start and end map to start and stop.
type recordingState struct {
	mu       sync.Mutex
	recorder Recorder
	active   bool
	id       uuid.UUID
}

func newRecordingState(r Recorder) *recordingState {
	return &recordingState{recorder: r}
}

func (s *recordingState) toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		s.stopLocked()
	} else {
		s.startLocked()
	}
}

func (s *recordingState) start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		s.startLocked()
	}
}

func (s *recordingState) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		s.stopLocked()
	}
}

func (s *recordingState) startLocked() {
	s.active = true
	s.id = uuid.New()
	log.Printf("Recording %s started", s.id)
	s.recorder.StartRecording(s.id)
}

func (s *recordingState) stopLocked() {
	s.active = false
	log.Printf("Recording %s stopped", s.id)
	s.recorder.StopRecording(s.id)
}

// Recording reports whether a recording is in progress.
func (s *recordingState) Recording() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// notifyingRecorder stands in for the audio pipeline and tells the user
// when recording starts and stops. Notices are sent off the hotkey path.
type notifyingRecorder struct {
	notify func(title, message string)
}

func (r notifyingRecorder) StartRecording(uuid.UUID) {
	go r.notify("Recording", "Dictation recording started.")
}

func (r notifyingRecorder) StopRecording(uuid.UUID) {
	go r.notify("Recording", "Dictation recording stopped.")
}
