//nolint:all
package server_test

import (
	"net"
	"testing"
	"time"

	"github.com/andrei-cloud/anet"
	"github.com/stretchr/testify/require"

	server "github.com/andrei-cloud/go_cmac/internal/server"
)

const testAddr = "127.0.0.1:1800"

// startTestServer starts the MAC server for testing.
func startTestServer(t *testing.T) *server.Server {
	t.Helper()

	srv, err := server.NewServer(testAddr)
	require.NoError(t, err, "failed to initialize server")

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		require.NoError(t, err, "server start error")
	case <-time.After(1 * time.Second):
		// Allow some time for the server to start
	}

	time.Sleep(100 * time.Millisecond)

	return srv
}

// newTestBroker wires an anet pool and broker against the test server.
func newTestBroker(t *testing.T) anet.Broker {
	t.Helper()

	factory := func(addr string) (anet.PoolItem, error) {
		conn, err := net.DialTimeout("tcp", addr, 500*time.Millisecond)
		if err != nil {
			return nil, err
		}

		if err := conn.SetDeadline(time.Now().Add(2 * time.Second)); err != nil {
			conn.Close()

			return nil, err
		}

		return conn, nil
	}

	pool := anet.NewPool(1, factory, testAddr, nil)
	t.Cleanup(func() { pool.Close() })

	broker := anet.NewBroker([]anet.Pool{pool}, 1, nil, nil)
	go broker.Start()
	t.Cleanup(func() { broker.Close() })

	return broker
}

// TestGenerateMACOverTCP verifies the MG command reproduces the RFC 4493
// 16-byte-message vector over the wire.
func TestGenerateMACOverTCP(t *testing.T) {
	srv := startTestServer(t)
	defer srv.Stop()

	broker := newTestBroker(t)

	req := []byte(
		"MGA162B7E151628AED2A6ABF7158809CF4F3C;6BC1BEE22E409F96E93D7E117393172A",
	)
	resp, err := broker.Send(&req)
	require.NoError(t, err, "MG request failed")

	require.Equal(t, "MH00070A16B46B4D4144F79BDD9DD04A287C", string(resp))
}

// TestVerifyMACOverTCP checks both outcomes of the MV command.
func TestVerifyMACOverTCP(t *testing.T) {
	srv := startTestServer(t)
	defer srv.Stop()

	broker := newTestBroker(t)

	match := []byte(
		"MVA2B7E151628AED2A6ABF7158809CF4F3C;6BC1BEE22E409F96E93D7E117393172A;" +
			"070A16B46B4D4144F79BDD9DD04A287C",
	)
	resp, err := broker.Send(&match)
	require.NoError(t, err, "MV request failed")
	require.Equal(t, "MW00", string(resp))

	tampered := []byte(
		"MVA2B7E151628AED2A6ABF7158809CF4F3C;6BC1BEE22E409F96E93D7E117393172A;" +
			"FF0A16B46B4D4144F79BDD9DD04A287C",
	)
	resp, err = broker.Send(&tampered)
	require.NoError(t, err, "MV request failed")
	require.Equal(t, "MW01", string(resp))
}

// TestDiagnosticsOverTCP verifies the NC command reports the service version.
func TestDiagnosticsOverTCP(t *testing.T) {
	srv := startTestServer(t)
	defer srv.Stop()

	broker := newTestBroker(t)

	req := []byte("NC")
	resp, err := broker.Send(&req)
	require.NoError(t, err, "NC request failed")

	require.Equal(t, "ND00", string(resp[:4]))
	require.NotEmpty(t, string(resp[4:]))
}

// TestUnknownCommand verifies the server responds with incremented code and
// 68 for unknown commands.
func TestUnknownCommand(t *testing.T) {
	srv := startTestServer(t)
	defer srv.Stop()

	broker := newTestBroker(t)

	req := []byte("ZZ0123")
	resp, err := broker.Send(&req)
	require.NoError(t, err, "unknown command request failed")

	require.Equal(t, "ZA68", string(resp))
}
