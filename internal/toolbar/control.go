package toolbar

// Kind distinguishes how an action control is rendered
type Kind int

const (
	Button Kind = iota
	MenuItem
)

func (k Kind) String() string {
	switch k {
	case Button:
		return "button"
	case MenuItem:
		return "menu"
	default:
		return "unknown"
	}
}

// ActionControl is anything whose enabled state follows the selection
type ActionControl interface {
	SetEnabled(enabled bool)
}

// Control is the default ActionControl: a button or a menu trigger
type Control struct {
	ID    string
	Kind  Kind
	Label string

	// OnUpdate, when set, is called after every SetEnabled so the owner
	// can re-render the control
	OnUpdate func(c *Control)

	enabled bool
}

// NewControl creates a disabled control
func NewControl(id string, kind Kind, label string) *Control {
	return &Control{ID: id, Kind: kind, Label: label}
}

// SetEnabled sets the enabled state and triggers an update
func (c *Control) SetEnabled(enabled bool) {
	c.enabled = enabled
	if c.OnUpdate != nil {
		c.OnUpdate(c)
	}
}

// Enabled reports the current state
func (c *Control) Enabled() bool {
	return c.enabled
}
