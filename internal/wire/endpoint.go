package wire

import (
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/1broseidon/glasshell/internal/runtimepath"
)

// Endpoint is a bound datagram socket that is drained without blocking.
type Endpoint struct {
	conn *net.UnixConn
	raw  syscall.RawConn
	path string
	buf  [MaxRecordSize]byte
}

// Bind creates the named endpoint in the runtime directory, replacing a stale
// socket file left by a previous run.
func Bind(name string) (*Endpoint, error) {
	path, err := runtimepath.EndpointPath(name)
	if err != nil {
		return nil, err
	}

	if info, err := os.Lstat(path); err == nil && info.Mode()&os.ModeSocket != 0 {
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("failed to remove stale endpoint %s: %w", path, err)
		}
	}

	conn, err := net.ListenUnixgram("unixgram", &net.UnixAddr{Name: path, Net: "unixgram"})
	if err != nil {
		return nil, fmt.Errorf("failed to bind endpoint %s: %w", path, err)
	}
	if err := os.Chmod(path, 0600); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to set endpoint permissions: %w", err)
	}
	raw, err := conn.SyscallConn()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to access endpoint %s: %w", path, err)
	}

	return &Endpoint{conn: conn, raw: raw, path: path}, nil
}

// Path returns the socket path backing the endpoint.
func (e *Endpoint) Path() string { return e.path }

// Drain hands every queued datagram to handle and returns as soon as the
// queue is empty. Read errors other than "would block" end the drain and are
// returned.
func (e *Endpoint) Drain(handle func(record []byte)) error {
	for {
		n, err := e.recv()
		if err != nil {
			if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) {
				return nil
			}
			return err
		}
		if n == 0 {
			return nil
		}
		handle(e.buf[:n])
	}
}

func (e *Endpoint) recv() (int, error) {
	var (
		n     int
		opErr error
	)
	err := e.raw.Read(func(fd uintptr) bool {
		n, _, opErr = unix.Recvfrom(int(fd), e.buf[:], unix.MSG_DONTWAIT)
		return true
	})
	if err != nil {
		return 0, err
	}
	return n, opErr
}

// Close releases the socket and removes its file.
func (e *Endpoint) Close() error {
	err := e.conn.Close()
	if rmErr := os.Remove(e.path); rmErr != nil && !os.IsNotExist(rmErr) && err == nil {
		err = rmErr
	}
	return err
}

// Send performs a connect-send-drop delivery of one record to the named
// endpoint.
func Send(endpoint string, record []byte) error {
	path, err := runtimepath.EndpointPath(endpoint)
	if err != nil {
		return err
	}
	conn, err := net.DialUnix("unixgram", nil, &net.UnixAddr{Name: path, Net: "unixgram"})
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", endpoint, err)
	}
	defer conn.Close()

	if _, err := conn.Write(record); err != nil {
		return fmt.Errorf("failed to send to %s: %w", endpoint, err)
	}
	return nil
}
