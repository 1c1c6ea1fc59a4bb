package audio

// Sounds - звуковые эффекты страницы. Виджеты получают его снаружи
// и не знают, есть ли за ним настоящий динамик.
type Sounds interface {
	Init() error
	Dispose()

	PlayHover()
	PlayClick()
	PlaySuccess()
	PlayNotification()
	PlayScroll()

	Enable()
	Disable()
	Toggle() bool
	Enabled() bool
}

// Nop - беззвучная реализация для тестов и режима -mute.
type Nop struct {
	enabled bool
}

func (n *Nop) Init() error       { return nil }
func (n *Nop) Dispose()          {}
func (n *Nop) PlayHover()        {}
func (n *Nop) PlayClick()        {}
func (n *Nop) PlaySuccess()      {}
func (n *Nop) PlayNotification() {}
func (n *Nop) PlayScroll()       {}
func (n *Nop) Enable()           { n.enabled = true }
func (n *Nop) Disable()          { n.enabled = false }
func (n *Nop) Enabled() bool     { return n.enabled }

func (n *Nop) Toggle() bool {
	n.enabled = !n.enabled
	return n.enabled
}

var (
	_ Sounds = (*SoundManager)(nil)
	_ Sounds = (*Nop)(nil)
)
