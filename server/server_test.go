package server_test

import (
	"net"
	"testing"
	"time"

	"github.com/arcweave/graphpipe/server"
	"github.com/arcweave/graphpipe/wire"
	"github.com/stretchr/testify/require"
)

func TestPipelineServerEndToEnd(t *testing.T) {
	s, err := server.NewPipelineServer("127.0.0.1:0", nil)
	require.NoError(t, err)
	go s.Serve()
	defer s.Shutdown()

	conn, err := net.Dial("tcp", s.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	req := wire.PipelineRequest{
		Seed: 1, MaxWeight: 10, Vertices: 3,
		Edges: []wire.EdgeTriple{
			{U: 0, V: 1, W: 1},
			{U: 1, V: 2, W: 1},
			{U: 2, V: 0, W: 1},
		},
	}
	require.NoError(t, wire.WritePipelineRequest(conn, req))

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	buf := make([]byte, 4096)
	n, err := conn.Read(buf)
	require.NoError(t, err)
	report := string(buf[:n])
	require.Contains(t, report, "=== PIPELINE PROCESSING RESULTS ===")
	require.Contains(t, report, "MaxClique: Size=3")
}

func TestDispatchServerEndToEnd(t *testing.T) {
	s, err := server.NewDispatchServer("127.0.0.1:0", nil)
	require.NoError(t, err)
	go s.Serve()
	defer s.Shutdown()

	conn, err := net.Dial("tcp", s.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	req := wire.SingleShotRequest{
		AlgorithmID: 4,
		Vertices:    3,
		AdjacencyMatrix: []int32{
			0, 1, 1,
			1, 0, 1,
			1, 1, 0,
		},
	}
	require.NoError(t, wire.WriteSingleShotRequest(conn, req))

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	ok, body, err := wire.ReadSingleShotResponse(conn)
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, body, "size=3")
}

func TestDispatchServerMultipleRequestsPerConnection(t *testing.T) {
	s, err := server.NewDispatchServer("127.0.0.1:0", nil)
	require.NoError(t, err)
	go s.Serve()
	defer s.Shutdown()

	conn, err := net.Dial("tcp", s.Addr().String())
	require.NoError(t, err)
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	for i := 0; i < 3; i++ {
		req := wire.SingleShotRequest{
			AlgorithmID:     1,
			Vertices:        3,
			AdjacencyMatrix: []int32{0, 1, 0, 1, 0, 1, 0, 1, 0},
		}
		require.NoError(t, wire.WriteSingleShotRequest(conn, req))
		ok, _, err := wire.ReadSingleShotResponse(conn)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestDispatchServerUnknownIDRepliesFailure(t *testing.T) {
	// The wire layer rejects ids outside 1..5 before a request ever
	// reaches dispatch, so the "Factory Error:" in-band string is only
	// observable through dispatch.Registry.Run directly, covered in
	// the dispatch package's own tests.
	s, err := server.NewDispatchServer("127.0.0.1:0", nil)
	require.NoError(t, err)
	go s.Serve()
	defer s.Shutdown()

	conn, err := net.Dial("tcp", s.Addr().String())
	require.NoError(t, err)
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	req := wire.SingleShotRequest{AlgorithmID: 9, Vertices: 2}
	require.NoError(t, wire.WriteSingleShotRequest(conn, req))

	ok, _, err := wire.ReadSingleShotResponse(conn)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLeaderFollowerServerHandlesMultipleClients(t *testing.T) {
	s, err := server.NewLeaderFollowerServer("127.0.0.1:0", 4, nil)
	require.NoError(t, err)
	go s.Serve()
	defer s.Shutdown()

	addr := s.Addr().String()
	for i := 0; i < 6; i++ {
		conn, err := net.Dial("tcp", addr)
		require.NoError(t, err)
		conn.SetReadDeadline(time.Now().Add(5 * time.Second))

		req := wire.SingleShotRequest{
			AlgorithmID:     5,
			Vertices:        3,
			AdjacencyMatrix: []int32{0, 1, 0, 1, 0, 1, 0, 1, 0},
		}
		require.NoError(t, wire.WriteSingleShotRequest(conn, req))

		ok, body, err := wire.ReadSingleShotResponse(conn)
		require.NoError(t, err)
		require.True(t, ok)
		require.Contains(t, body, "CliqueCount")
		conn.Close()
	}
}
