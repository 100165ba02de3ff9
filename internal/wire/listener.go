package wire

// Listener receives lifecycle events addressed to the shell.
type Listener struct {
	ep *Endpoint
}

// Listen binds the shell's inbound endpoint.
func Listen(name string) (*Listener, error) {
	if name == "" {
		name = DefaultListenerEndpoint
	}
	ep, err := Bind(name)
	if err != nil {
		return nil, err
	}
	return &Listener{ep: ep}, nil
}

// Poll drains every queued lifecycle event without blocking. Records that
// fail to decode are skipped and reported through dropped.
func (l *Listener) Poll() (events []LifecycleEvent, dropped int, err error) {
	err = l.ep.Drain(func(record []byte) {
		ev, decErr := DecodeLifecycleEvent(record)
		if decErr != nil {
			dropped++
			return
		}
		events = append(events, ev)
	})
	return events, dropped, err
}

// Path returns the socket path backing the listener.
func (l *Listener) Path() string { return l.ep.Path() }

// Close unbinds the listener.
func (l *Listener) Close() error { return l.ep.Close() }
