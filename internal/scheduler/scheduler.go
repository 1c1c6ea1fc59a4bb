// internal/scheduler/scheduler.go
package scheduler

// FrameFunc вызывается один раз за кадр с прошедшим временем в секундах.
type FrameFunc func(deltaTime float64)

// Task - повторяющаяся задача кадра. Живёт, пока не вызван Stop.
type Task struct {
	fn      FrameFunc
	stopped bool
}

// Stop снимает задачу с расписания. Повторный вызов ничего не делает.
func (t *Task) Stop() {
	if t != nil {
		t.stopped = true
	}
}

// Stopped сообщает, снята ли задача.
func (t *Task) Stopped() bool {
	return t == nil || t.stopped
}

// Scheduler - явный цикл кадров. Бэкенд зовёт Tick раз за кадр,
// виджеты регистрируют в нём свои обновления через Start.
type Scheduler struct {
	tasks        []*Task
	maxDeltaTime float64
	frames       uint64
}

// New создаёт планировщик. maxDeltaTime <= 0 отключает ограничение шага.
func New(maxDeltaTime float64) *Scheduler {
	return &Scheduler{maxDeltaTime: maxDeltaTime}
}

// Start ставит fn в расписание начиная со следующего Tick.
func (s *Scheduler) Start(fn FrameFunc) *Task {
	task := &Task{fn: fn}
	s.tasks = append(s.tasks, task)
	return task
}

// Tick выполняет все активные задачи в порядке регистрации.
// Задачи, добавленные во время Tick, начнут работу со следующего кадра;
// снятые во время Tick больше не вызываются.
func (s *Scheduler) Tick(deltaTime float64) {
	if deltaTime < 0 {
		deltaTime = 0
	}
	if s.maxDeltaTime > 0 && deltaTime > s.maxDeltaTime {
		deltaTime = s.maxDeltaTime
	}
	s.frames++

	current := s.tasks
	for _, task := range current {
		if task.stopped {
			continue
		}
		task.fn(deltaTime)
	}

	// Убираем снятые задачи, сохраняя добавленные во время кадра.
	alive := s.tasks[:0:0]
	for _, task := range s.tasks {
		if !task.stopped {
			alive = append(alive, task)
		}
	}
	s.tasks = alive
}

// StopAll снимает все задачи.
func (s *Scheduler) StopAll() {
	for _, task := range s.tasks {
		task.stopped = true
	}
	s.tasks = nil
}

// Len возвращает число активных задач.
func (s *Scheduler) Len() int {
	n := 0
	for _, task := range s.tasks {
		if !task.stopped {
			n++
		}
	}
	return n
}

// Frames возвращает число выполненных кадров.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}
