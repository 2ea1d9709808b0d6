package ipc

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ehsaniara/botvisor/internal/botvisor/supervisor"
	"github.com/ehsaniara/botvisor/pkg/errors"
	"github.com/ehsaniara/botvisor/pkg/logger"
)

// Dialer connects to a supervisor daemon; every Connect opens a new socket connection.
// Its timeout bounds the dial and every call whose context carries no deadline.
type Dialer struct {
	socketPath string
	timeout    time.Duration
	logger     *logger.Logger
}

func NewDialer(socketPath string, timeout time.Duration) *Dialer {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Dialer{
		socketPath: socketPath,
		timeout:    timeout,
		logger:     logger.WithField("component", "ipc-client"),
	}
}

func (d *Dialer) Connect(ctx context.Context) (supervisor.Session, error) {
	dialer := net.Dialer{Timeout: d.timeout}
	conn, err := dialer.DialContext(ctx, "unix", d.socketPath)
	if err != nil {
		return nil, errors.Upstream("connect supervisor", fmt.Errorf("failed to connect to supervisor socket %s: %w", d.socketPath, err))
	}
	d.logger.Debug("connected to supervisor", "socket", d.socketPath)
	return newClient(conn, d.timeout, d.logger), nil
}

// Client is one connection to the supervisor daemon. Requests on a client are serialized.
type Client struct {
	mu      sync.Mutex
	conn    net.Conn
	reader  *bufio.Reader
	closed  bool
	timeout time.Duration
	logger  *logger.Logger
}

func newClient(conn net.Conn, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		conn:    conn,
		reader:  bufio.NewReaderSize(conn, 64*1024),
		timeout: timeout,
		logger:  log,
	}
}

func (c *Client) Start(ctx context.Context, spec supervisor.StartSpec) (supervisor.ProcessInfo, error) {
	resp, err := c.call(ctx, Message{Operation: OpStart, Name: spec.Name, Start: &spec})
	if err != nil {
		return supervisor.ProcessInfo{}, err
	}
	return processOf(resp)
}

func (c *Client) List(ctx context.Context) ([]supervisor.ProcessInfo, error) {
	resp, err := c.call(ctx, Message{Operation: OpList})
	if err != nil {
		return nil, err
	}
	return resp.Processes, nil
}

func (c *Client) Describe(ctx context.Context, name string) (supervisor.ProcessInfo, error) {
	resp, err := c.call(ctx, Message{Operation: OpDescribe, Name: name})
	if err != nil {
		return supervisor.ProcessInfo{}, err
	}
	return processOf(resp)
}

func (c *Client) Stop(ctx context.Context, name string) (supervisor.ProcessInfo, error) {
	resp, err := c.call(ctx, Message{Operation: OpStop, Name: name})
	if err != nil {
		return supervisor.ProcessInfo{}, err
	}
	return processOf(resp)
}

func (c *Client) Tail(ctx context.Context, name string, lines int) ([]string, error) {
	resp, err := c.call(ctx, Message{Operation: OpTail, Name: name, Lines: lines})
	if err != nil {
		return nil, err
	}
	if resp.Lines == nil {
		return []string{}, nil
	}
	return resp.Lines, nil
}

// Ping checks the daemon answers on this connection.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.call(ctx, Message{Operation: OpPing})
	return err
}

// Close closes the connection
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}

func (c *Client) call(ctx context.Context, msg Message) (*Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, errors.ErrSessionClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	msg.RequestID = uuid.NewString()
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode message: %w", err)
	}
	data = append(data, '\n')

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(c.timeout)
	}
	if err := c.conn.SetDeadline(deadline); err != nil {
		return nil, c.broken(fmt.Errorf("set deadline: %w", err))
	}

	if _, err := c.conn.Write(data); err != nil {
		return nil, c.broken(fmt.Errorf("failed to write to supervisor socket: %w", err))
	}

	line, err := c.reader.ReadBytes('\n')
	if err != nil {
		return nil, c.broken(fmt.Errorf("failed to read response: %w", err))
	}

	var resp Response
	if err := json.Unmarshal(line, &resp); err != nil {
		return nil, c.broken(fmt.Errorf("failed to decode response: %w", err))
	}
	if resp.RequestID != msg.RequestID {
		return nil, c.broken(fmt.Errorf("response id %q does not match request %q", resp.RequestID, msg.RequestID))
	}

	if !resp.Success {
		return nil, remoteError(resp)
	}
	return &resp, nil
}

// broken closes a connection whose stream position is no longer known. Caller holds c.mu.
func (c *Client) broken(err error) error {
	c.logger.Warn("supervisor connection failed", "error", err)
	c.closed = true
	_ = c.conn.Close()
	return errors.Upstream("supervisor call", err)
}

func remoteError(resp Response) error {
	kind := errors.Kind(resp.Code)
	if kind == "" || kind == errors.KindUnknown {
		return errors.New(resp.Error)
	}
	return errors.WithKind(kind, "", "", resp.Error)
}

func processOf(resp *Response) (supervisor.ProcessInfo, error) {
	if resp.Process == nil {
		return supervisor.ProcessInfo{}, errors.Upstream("supervisor call", fmt.Errorf("response without process"))
	}
	return *resp.Process, nil
}
