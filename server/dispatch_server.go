package server

import (
	"errors"
	"io"
	"log"
	"net"

	"github.com/arcweave/graphpipe/core"
	"github.com/arcweave/graphpipe/dispatch"
	"github.com/arcweave/graphpipe/metrics"
	"github.com/arcweave/graphpipe/wire"
)

// DispatchServer handles one structured request per read, replying on
// the same connection and looping for as many sequential requests as
// the client sends before closing.
type DispatchServer struct {
	listener net.Listener
	registry *dispatch.Registry
	m        *metrics.Metrics
}

// NewDispatchServer binds addr and builds the fixed strategy registry.
// m may be nil, in which case connection counts are not observed.
func NewDispatchServer(addr string, m *metrics.Metrics) (*DispatchServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &DispatchServer{listener: ln, registry: dispatch.NewRegistry(), m: m}, nil
}

// Serve runs the accept loop until Shutdown closes the listener.
func (s *DispatchServer) Serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return err
		}
		go s.handleConn(conn)
	}
}

func (s *DispatchServer) handleConn(conn net.Conn) {
	defer conn.Close()
	if s.m != nil {
		s.m.ConnectionsOpen.Inc()
		defer s.m.ConnectionsOpen.Dec()
	}
	serveDispatchRequests(s.registry, conn)
}

// serveDispatchRequests loops reading single-shot requests off conn and
// replying on it until a read or write fails, at which point the
// connection is done. Shared by DispatchServer and
// LeaderFollowerServer, which both hand off an accepted connection to
// the same request/reply loop.
func serveDispatchRequests(registry *dispatch.Registry, conn net.Conn) {
	for {
		req, err := wire.ReadSingleShotRequest(conn)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			log.Printf("server: dispatch: bad request: %v", err)
			_ = wire.WriteSingleShotResponse(conn, false, "")
			return
		}

		g, buildErr := buildGraphFromRequest(req)
		if buildErr != nil {
			log.Printf("server: dispatch: graph build: %v", buildErr)
			if err := wire.WriteSingleShotResponse(conn, false, ""); err != nil {
				return
			}
			continue
		}

		result := registry.Run(g, int(req.AlgorithmID))
		g.Destroy()

		if err := wire.WriteSingleShotResponse(conn, true, result); err != nil {
			return
		}
	}
}

func buildGraphFromRequest(req wire.SingleShotRequest) (*core.Graph, error) {
	g, err := core.Create(int(req.Vertices))
	if err != nil {
		return nil, err
	}

	if wire.IsWeightedForm(req.AlgorithmID) {
		for _, e := range req.Edges {
			if err := g.AddEdge(int(e.U), int(e.V), int(e.W)); err != nil {
				log.Printf("server: dispatch: edge (%d,%d) skipped: %v", e.U, e.V, err)
			}
		}
		return g, nil
	}

	n := int(req.Vertices)
	for u := 0; u < n; u++ {
		for v := u; v < n; v++ {
			if req.AdjacencyMatrix[u*n+v] != 0 {
				if err := g.AddEdge(u, v, 1); err != nil {
					log.Printf("server: dispatch: edge (%d,%d) skipped: %v", u, v, err)
				}
			}
		}
	}
	return g, nil
}

// Shutdown closes the listener.
func (s *DispatchServer) Shutdown() error {
	return s.listener.Close()
}

// Addr returns the server's bound address.
func (s *DispatchServer) Addr() net.Addr {
	return s.listener.Addr()
}
