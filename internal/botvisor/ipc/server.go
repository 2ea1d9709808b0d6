package ipc

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/ehsaniara/botvisor/internal/botvisor/supervisor"
	"github.com/ehsaniara/botvisor/pkg/errors"
	"github.com/ehsaniara/botvisor/pkg/logger"
)

// Server handles IPC communication via Unix socket
type Server struct {
	socketPath  string
	backend     supervisor.Backend
	listener    net.Listener
	mu          sync.Mutex
	connections map[string]net.Conn
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	logger      *logger.Logger
}

func NewServer(socketPath string, backend supervisor.Backend) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		socketPath:  socketPath,
		backend:     backend,
		connections: make(map[string]net.Conn),
		ctx:         ctx,
		cancel:      cancel,
		logger:      logger.WithField("component", "ipc-server"),
	}
}

// Start begins listening for IPC connections
func (s *Server) Start() error {
	// a stale socket from a previous run blocks Listen
	if err := os.RemoveAll(s.socketPath); err != nil {
		return fmt.Errorf("failed to remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create Unix listener: %w", err)
	}
	s.listener = listener

	if err := os.Chmod(s.socketPath, 0660); err != nil {
		_ = listener.Close()
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	s.logger.Info("supervisor socket listening", "socket", s.socketPath)

	s.wg.Add(1)
	go s.acceptLoop()
	return nil
}

// Stop closes the listener and every open connection, then removes the socket file.
func (s *Server) Stop() error {
	s.cancel()

	if s.listener != nil {
		_ = s.listener.Close()
	}

	s.mu.Lock()
	for _, conn := range s.connections {
		_ = conn.Close()
	}
	s.mu.Unlock()

	s.wg.Wait()
	return os.RemoveAll(s.socketPath)
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.ctx.Done():
				return
			default:
			}
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			s.logger.Error("accept failed, closing supervisor socket", "error", err)
			return
		}

		s.wg.Add(1)
		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	connID := uuid.NewString()
	s.mu.Lock()
	s.connections[connID] = conn
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.connections, connID)
		s.mu.Unlock()
	}()

	log := s.logger.WithField("conn", connID[:8])
	log.Debug("client connected")

	enc := json.NewEncoder(conn)
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 64*1024), maxMessageSize)

	for scanner.Scan() {
		var msg Message
		var response *Response
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
			response = &Response{Success: false, Error: "invalid JSON: " + err.Error(), Code: string(errors.KindValidation)}
		} else {
			response = s.processMessage(msg)
		}

		if err := enc.Encode(response); err != nil {
			log.Debug("failed to write response", "error", err)
			return
		}
	}
	log.Debug("client disconnected")
}

func (s *Server) processMessage(msg Message) *Response {
	ctx := s.ctx

	switch msg.Operation {
	case OpStart:
		if msg.Start == nil {
			return s.makeError(msg.RequestID, errors.Validation("start", fmt.Errorf("start spec is required")))
		}
		info, err := s.backend.Start(ctx, *msg.Start)
		if err != nil {
			return s.makeError(msg.RequestID, err)
		}
		return &Response{RequestID: msg.RequestID, Success: true, Process: &info}

	case OpList:
		list, err := s.backend.List(ctx)
		if err != nil {
			return s.makeError(msg.RequestID, err)
		}
		return &Response{RequestID: msg.RequestID, Success: true, Processes: list}

	case OpDescribe:
		info, err := s.backend.Describe(ctx, msg.Name)
		if err != nil {
			return s.makeError(msg.RequestID, err)
		}
		return &Response{RequestID: msg.RequestID, Success: true, Process: &info}

	case OpStop:
		info, err := s.backend.Stop(ctx, msg.Name)
		if err != nil {
			return s.makeError(msg.RequestID, err)
		}
		return &Response{RequestID: msg.RequestID, Success: true, Process: &info}

	case OpTail:
		lines, err := s.backend.Tail(ctx, msg.Name, msg.Lines)
		if err != nil {
			return s.makeError(msg.RequestID, err)
		}
		return &Response{RequestID: msg.RequestID, Success: true, Lines: lines}

	case OpPing:
		return &Response{RequestID: msg.RequestID, Success: true}

	default:
		return s.makeError(msg.RequestID, errors.Validation("dispatch", fmt.Errorf("unknown operation: %s", msg.Operation)))
	}
}

func (s *Server) makeError(requestID string, err error) *Response {
	return &Response{
		RequestID: requestID,
		Success:   false,
		Error:     err.Error(),
		Code:      string(errors.KindOf(err)),
	}
}
