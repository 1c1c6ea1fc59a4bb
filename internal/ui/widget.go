// internal/ui/widget.go
package ui

import (
	"log"

	"github.com/google/uuid"

	"go-portfolio-fx/internal/event"
	"go-portfolio-fx/internal/scheduler"
	"go-portfolio-fx/pkg/render"
)

// Widget - элемент страницы с явным жизненным циклом. Всё, что виджет
// получил в Mount (подписки, кадровая задача), он отдаёт в Unmount.
type Widget interface {
	Mount(dispatcher *event.Dispatcher, sched *scheduler.Scheduler)
	Unmount()
	Draw(canvas render.Canvas)
}

// lifecycle хранит подписки и кадровую задачу виджета.
type lifecycle struct {
	id         string
	kind       string
	dispatcher *event.Dispatcher
	listener   event.Listener
	task       *scheduler.Task
}

func newLifecycle(kind string) lifecycle {
	return lifecycle{id: uuid.NewString(), kind: kind}
}

// mount подписывает listener на types и запускает frame, если он задан.
// Повторный mount без unmount ничего не делает.
func (l *lifecycle) mount(d *event.Dispatcher, s *scheduler.Scheduler, listener event.Listener, frame scheduler.FrameFunc, types ...event.EventType) {
	if l.dispatcher != nil || l.task != nil {
		log.Printf("ui: %s %s already mounted", l.kind, l.id)
		return
	}
	if d != nil {
		l.dispatcher = d
		l.listener = listener
		for _, t := range types {
			d.Subscribe(t, listener)
		}
	}
	if s != nil && frame != nil {
		l.task = s.Start(frame)
	}
	log.Printf("ui: %s %s mounted", l.kind, l.id)
}

// unmount снимает подписки и останавливает задачу. Безопасен при повторном вызове.
func (l *lifecycle) unmount() {
	if l.dispatcher == nil && l.task == nil {
		return
	}
	l.task.Stop()
	l.task = nil
	if l.dispatcher != nil {
		l.dispatcher.UnsubscribeAll(l.listener)
	}
	l.dispatcher = nil
	l.listener = nil
	log.Printf("ui: %s %s unmounted", l.kind, l.id)
}

// dispatch отправляет событие, если виджет смонтирован.
func (l *lifecycle) dispatch(e event.Event) {
	if l.dispatcher != nil {
		l.dispatcher.Dispatch(e)
	}
}

// Mounted сообщает, смонтирован ли виджет.
func (l *lifecycle) Mounted() bool {
	return l.dispatcher != nil || l.task != nil
}

// ID возвращает идентификатор экземпляра для логов.
func (l *lifecycle) ID() string {
	return l.id
}

func pointData(e event.Event) (float64, float64, bool) {
	p, ok := e.Data.(event.Point)
	return p.X, p.Y, ok
}

func sizeData(e event.Event) (int, int, bool) {
	s, ok := e.Data.(event.Size)
	return s.Width, s.Height, ok
}
