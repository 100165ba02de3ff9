package wire

// DefaultCompositorEndpoint is the well-known compositor endpoint name.
const DefaultCompositorEndpoint = "compositor"

// DefaultListenerEndpoint is the name the shell registers for lifecycle events.
const DefaultListenerEndpoint = "shell.taskbar"

// Client sends requests to the compositor. Every call opens a fresh
// connection, so a Client holds no socket between calls.
type Client struct {
	compositor string
}

// NewClient creates a client for the given compositor endpoint name.
func NewClient(compositor string) *Client {
	if compositor == "" {
		compositor = DefaultCompositorEndpoint
	}
	return &Client{compositor: compositor}
}

// Endpoint returns the compositor endpoint name.
func (c *Client) Endpoint() string { return c.compositor }

// RegisterAsTaskbar asks the compositor to forward lifecycle events to the
// named listener.
func (c *Client) RegisterAsTaskbar(listener string) error {
	return Send(c.compositor, EncodeRegisterTaskbar(listener))
}

// SendWindowOp sends a MINIMIZE_WINDOW or RESTORE_WINDOW request. No reply
// is expected.
func (c *Client) SendWindowOp(windowID uint32, op Opcode) error {
	record, err := EncodeWindowOp(WindowOp{Op: op, WindowID: windowID})
	if err != nil {
		return err
	}
	return Send(c.compositor, record)
}

// Notify delivers a lifecycle event to a registered listener. It is used by
// the compositor side of the protocol.
func Notify(listener string, ev LifecycleEvent) error {
	return Send(listener, EncodeLifecycleEvent(ev))
}
