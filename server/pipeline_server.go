package server

import (
	"log"
	"net"

	"github.com/arcweave/graphpipe/core"
	"github.com/arcweave/graphpipe/metrics"
	"github.com/arcweave/graphpipe/pipeline"
	"github.com/arcweave/graphpipe/wire"
)

// PipelineServer accepts connections, parses each inbound pipeline
// request, and submits the resulting job to an internal Pipeline. The
// connection itself becomes the job's client channel; the pipeline's
// terminal stage writes the report and closes it.
type PipelineServer struct {
	listener net.Listener
	pipe     *pipeline.Pipeline
}

// NewPipelineServer binds addr and starts the pipeline's stage
// workers. m may be nil, in which case the pipeline runs with
// instrumentation disabled.
func NewPipelineServer(addr string, m *metrics.Metrics) (*PipelineServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	opts := []pipeline.Option{}
	if m != nil {
		opts = append(opts, pipeline.WithMetrics(m))
	}
	return &PipelineServer{listener: ln, pipe: pipeline.New(opts...)}, nil
}

// Serve runs the accept loop until Shutdown is called, at which point
// the listener's Accept call returns an error and the loop exits.
func (s *PipelineServer) Serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return err
		}
		go s.acceptOne(conn)
	}
}

// acceptOne parses one connection's request and pushes the job onto
// stage 1's queue. This goroutine's job ends the moment the job enters
// the pipeline; it never touches the connection again.
func (s *PipelineServer) acceptOne(conn net.Conn) {
	req, err := wire.ReadPipelineRequest(conn)
	if err != nil {
		log.Printf("server: pipeline: bad request: %v", err)
		_ = conn.Close()
		return
	}

	g, err := core.Create(int(req.Vertices))
	if err != nil {
		log.Printf("server: pipeline: graph create: %v", err)
		_ = conn.Close()
		return
	}
	for _, e := range req.Edges {
		if err := g.AddEdge(int(e.U), int(e.V), int(e.W)); err != nil {
			log.Printf("server: pipeline: edge (%d,%d) skipped: %v", e.U, e.V, err)
		}
	}

	if !s.pipe.Submit(g, conn) {
		g.Destroy()
		_ = conn.Close()
	}
}

// Shutdown closes the listener and stops the pipeline's stage workers,
// letting in-flight jobs finish their current stage.
func (s *PipelineServer) Shutdown() error {
	err := s.listener.Close()
	s.pipe.Shutdown()
	return err
}

// Addr returns the server's bound address, for tests that bind to
// port 0.
func (s *PipelineServer) Addr() net.Addr {
	return s.listener.Addr()
}
