package pulse

import (
	"go.uber.org/zap"
)

// Sequencer runs task sequences. A sequence runs once it was started
// and is removed from the sequencer as soon as it has finished.
type Sequencer struct {
	running  []*Sequence
	updating bool
	logger   *zap.Logger
}

// NewSequencer creates a new Sequencer. A nil logger disables logging.
func NewSequencer(logger *zap.Logger) *Sequencer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Sequencer{logger: logger}
}

// Create returns a new, empty sequence. The sequence does not run until Start is called.
func (s *Sequencer) Create() *Sequence {
	return &Sequence{sequencer: s}
}

// Running returns the number of running sequences.
func (s *Sequencer) Running() int {
	return len(s.running)
}

// Update advances all running sequences by one cycle. Sequences started during
// the update are first advanced during the next update.
func (s *Sequencer) Update(clock *Clock) {
	s.updating = true
	defer func() { s.updating = false }()

	count := len(s.running)

	for idx := count - 1; idx >= 0; idx-- {
		seq := s.running[idx]
		if seq.finished {
			continue
		}

		if seq.Update(clock) {
			s.logger.Debug("Sequence finished",
				zap.Int("index", seq.current),
				zap.Int("tasks", len(seq.tasks)))
		}
	}

	// remove finished sequences in a second pass
	for idx := len(s.running) - 1; idx >= 0; idx-- {
		if seq := s.running[idx]; seq.finished {
			seq.started = false
			s.running = append(s.running[:idx], s.running[idx+1:]...)
		}
	}
}

// Clear stops and removes all running sequences. If called by a task,
// the sequences are removed at the end of the current update.
func (s *Sequencer) Clear() {
	for _, seq := range s.running {
		seq.Stop()
	}

	if s.updating {
		return
	}

	for _, seq := range s.running {
		seq.started = false
	}

	clear(s.running)
	s.running = s.running[:0]
}

// TaskDescriptor is the recipe for a task within a sequence.
type TaskDescriptor struct {
	Factory TaskFactory
}

// Sequence is an ordered chain of tasks, executed one task at a time.
//
// A sequence is a small state machine: its states are the indices of its tasks
// plus a terminal state. When the active task finishes, the sequence advances
// to the next index. Goto jumps to an arbitrary index instead. The sequence
// terminates once its index leaves the range of tasks.
type Sequence struct {
	sequencer *Sequencer

	tasks   []TaskDescriptor
	current int

	// the active task instance, created lazily from tasks[current]
	task Task

	// set by Goto, reset at the beginning of each cycle
	jumped bool

	started  bool
	finished bool
}

// Add appends a task to the sequence and returns its index,
// which can later be used as a target for Goto.
func (s *Sequence) Add(factory TaskFactory) int {
	if factory == nil {
		panic("sequence: task factory must not be nil")
	}

	s.tasks = append(s.tasks, TaskDescriptor{Factory: factory})
	return len(s.tasks) - 1
}

// Do adds a task that calls the callback every frame until it returns true.
func (s *Sequence) Do(callback func() bool) int {
	return s.Add(func(*Clock) Task {
		return NewTask(callback)
	})
}

// Once adds a task that calls the callback exactly once.
func (s *Sequence) Once(callback func()) int {
	return s.Do(func() bool {
		if callback != nil {
			callback()
		}

		return true
	})
}

// Interval adds an IntervalTask running for the given number of steps.
func (s *Sequence) Interval(steps float64, callback IntervalFunc) int {
	// fail now and not when the task is instantiated
	validateSteps(steps)

	return s.Add(func(clock *Clock) Task {
		return NewIntervalTask(clock, steps, callback)
	})
}

// Goto continues the sequence at the given index. The active task is discarded
// and the automatic advance is suppressed for the current cycle.
// Jumping outside the range of tasks terminates the sequence.
func (s *Sequence) Goto(index int) {
	s.jumped = true
	s.current = index
	s.task = nil
}

// Index returns the index of the current task.
func (s *Sequence) Index() int {
	return s.current
}

// Len returns the number of tasks in this sequence.
func (s *Sequence) Len() int {
	return len(s.tasks)
}

// Start adds the sequence to the running sequences of its sequencer.
// Starting a running sequence has no effect.
func (s *Sequence) Start() {
	if s.started {
		// a stopped sequence might not have been removed yet
		s.finished = false
		return
	}

	s.started = true
	s.finished = false
	s.sequencer.running = append(s.sequencer.running, s)
}

// Stop terminates the sequence. It is removed from its sequencer during the next update.
func (s *Sequence) Stop() {
	s.finished = true
	s.task = nil
}

// Finished returns true once the sequence reached its terminal state.
func (s *Sequence) Finished() bool {
	return s.finished
}

// Update runs one cycle of the sequence and returns true if the
// sequence has reached its terminal state.
func (s *Sequence) Update(clock *Clock) bool {
	if s.finished {
		return true
	}

	if !s.inRange() {
		return s.finish()
	}

	if s.task == nil {
		s.task = s.tasks[s.current].Factory(clock)
		if s.task == nil {
			panic("sequence: task factory returned nil")
		}
	}

	s.jumped = false

	if !s.task.Update(clock) {
		if !s.jumped {
			s.current += 1
		}

		s.task = nil
	}

	if !s.inRange() {
		return s.finish()
	}

	// the task might have stopped its own sequence
	return s.finished
}

func (s *Sequence) inRange() bool {
	return s.current >= 0 && s.current < len(s.tasks)
}

func (s *Sequence) finish() bool {
	if s.sequencer != nil && (s.current < 0 || s.current > len(s.tasks)) {
		s.sequencer.logger.Debug("Sequence jumped out of range",
			zap.Int("index", s.current),
			zap.Int("tasks", len(s.tasks)))
	}

	s.finished = true
	s.task = nil
	return true
}
