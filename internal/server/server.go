package server

import (
	"encoding/hex"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	anetserver "github.com/andrei-cloud/anet/server"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/andrei-cloud/go_cmac/internal/logging"
)

// Version string reported by the NC diagnostics command.
const firmware = "go_cmac-1.0.0"

// logAdapter implements anet.Logger using zerolog.
type logAdapter struct{}

// Server wraps the anet TCP server and the MAC command logic.
type Server struct {
	address     string
	srv         *anetserver.Server
	activeConns int32
}

func (l logAdapter) Print(v ...any) {
	log.Info().Msg(fmt.Sprint(v...))
}

func (l logAdapter) Printf(format string, v ...any) {
	log.Info().Msgf(format, v...)
}

func (l logAdapter) Infof(format string, v ...any) {
	log.Info().Msgf(format, v...)
}

func (l logAdapter) Warnf(format string, v ...any) {
	log.Warn().Msgf(format, v...)
}

func (l logAdapter) Errorf(format string, v ...any) {
	log.Error().Msgf(format, v...)
}

// NewServer configures and returns the MAC server instance.
func NewServer(address string) (*Server, error) {
	cfg := &anetserver.ServerConfig{
		MaxConns:        100,
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     0 * time.Second, // disable idle connection closure.
		ShutdownTimeout: 5 * time.Second,
		Logger:          logAdapter{},
	}

	s := &Server{address: address}
	handler := anetserver.HandlerFunc(s.handle)
	srv, err := anetserver.NewServer(address, handler, cfg)
	if err != nil {
		return nil, fmt.Errorf("server setup failed: %w", err)
	}
	s.srv = srv

	return s, nil
}

// Start begins listening for connections.
func (s *Server) Start() error {
	log.Info().Str("address", s.address).Msg("server started")
	return s.srv.Start()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	return s.srv.Stop()
}

// formatData returns ascii string if all bytes are printable, else hex string.
func formatData(data []byte) string {
	for _, b := range data {
		if b < 32 || b > 126 {
			return hex.EncodeToString(data)
		}
	}

	return string(data)
}

// incrementCode returns the response command code by incrementing the second
// character (MG -> MH, ZZ -> ZA).
func incrementCode(cmd string) string {
	b := []byte(cmd)
	if len(b) < 2 {
		return cmd
	}
	if b[1] == 'Z' {
		b[1] = 'A'
	} else {
		b[1]++
	}

	return string(b)
}

// errorResponse constructs an unknown-command response with code 68.
func errorResponse(cmd string) []byte {
	return []byte(incrementCode(cmd) + "68")
}

// handle dispatches a framed request to the matching command executor.
func (s *Server) handle(conn *anetserver.ServerConn, data []byte) ([]byte, error) {
	client := conn.Conn.RemoteAddr().String()
	atomic.AddInt32(&s.activeConns, 1)
	defer atomic.AddInt32(&s.activeConns, -1)

	requestID := uuid.NewString()
	start := time.Now()

	if len(data) < 2 {
		log.Error().
			Str("request_id", requestID).
			Str("client_ip", client).
			Msg("malformed request")

		return nil, errors.New("malformed request")
	}

	cmd := string(data[:2])
	payload := data[2:]
	active := int(atomic.LoadInt32(&s.activeConns))

	logging.LogRequest(requestID, client, cmd, commandDescription(cmd), len(payload), active)

	var resp []byte
	switch cmd {
	case "MG":
		resp = executeMG(payload)
	case "MV":
		resp = executeMV(payload)
	case "PG":
		resp = executePG(payload)
	case "NC":
		resp = []byte("ND00" + firmware)
	default:
		log.Warn().
			Str("event", "unknown_command").
			Str("request_id", requestID).
			Str("client_ip", client).
			Str("command", cmd).
			Msg("command not recognized, responding with error code")
		resp = errorResponse(cmd)
	}

	logging.LogResponse(
		requestID,
		client,
		cmd,
		string(resp[:2]),
		string(resp[2:4]),
		int(atomic.LoadInt32(&s.activeConns)),
	)

	log.Debug().
		Str("event", "handle_done").
		Str("request_id", requestID).
		Str("response", formatData(resp)).
		Str("duration", time.Since(start).String()).
		Msg("completed request handling")

	return resp, nil
}

// commandDescription maps command codes to log descriptions.
func commandDescription(cmd string) string {
	switch cmd {
	case "MG":
		return "Generate MAC"
	case "MV":
		return "Verify MAC"
	case "PG":
		return "AES-CMAC-PRF-128"
	case "NC":
		return "Diagnostics"
	default:
		return "Unknown command"
	}
}
