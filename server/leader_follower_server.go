package server

import (
	"net"
	"sync"

	"github.com/arcweave/graphpipe/dispatch"
	"github.com/arcweave/graphpipe/metrics"
)

// DefaultPoolSize is the reference leader-follower worker count.
const DefaultPoolSize = 4

// LeaderFollowerServer is a fixed pool of workers sharing one listening
// socket. Exactly one worker is leader and blocks in Accept at any
// time; on accepting a connection the leader promotes the next worker
// (round-robin) before handling the connection itself. Every worker,
// including worker 0, runs the identical loop below; there is no
// separate main-thread accept path.
type LeaderFollowerServer struct {
	listener net.Listener
	registry *dispatch.Registry
	poolSize int
	m        *metrics.Metrics

	mu            sync.Mutex
	cond          *sync.Cond
	currentLeader int
	shutdown      bool

	wg sync.WaitGroup
}

// NewLeaderFollowerServer binds addr and prepares a pool of poolSize
// workers. m may be nil, in which case connection counts are not
// observed. Call Serve to start the workers.
func NewLeaderFollowerServer(addr string, poolSize int, m *metrics.Metrics) (*LeaderFollowerServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	s := &LeaderFollowerServer{
		listener: ln,
		registry: dispatch.NewRegistry(),
		poolSize: poolSize,
		m:        m,
	}
	s.cond = sync.NewCond(&s.mu)
	return s, nil
}

// Serve starts all poolSize workers and blocks until Shutdown wakes
// them all and they exit.
func (s *LeaderFollowerServer) Serve() {
	for id := 0; id < s.poolSize; id++ {
		s.wg.Add(1)
		go s.workerLoop(id)
	}
	s.wg.Wait()
}

func (s *LeaderFollowerServer) workerLoop(id int) {
	defer s.wg.Done()
	for {
		s.mu.Lock()
		for s.currentLeader != id && !s.shutdown {
			s.cond.Wait()
		}
		if s.shutdown {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		conn, err := s.listener.Accept()
		if err != nil {
			// Shutdown closed the listener out from under the current
			// leader; every other worker already saw shutdown via the
			// broadcast above.
			return
		}

		s.mu.Lock()
		s.currentLeader = (s.currentLeader + 1) % s.poolSize
		s.cond.Broadcast()
		s.mu.Unlock()

		func() {
			defer conn.Close()
			if s.m != nil {
				s.m.ConnectionsOpen.Inc()
				defer s.m.ConnectionsOpen.Dec()
			}
			serveDispatchRequests(s.registry, conn)
		}()
	}
}

// Shutdown closes the listener and broadcasts shutdown to every
// waiting follower; the current leader notices on its next Accept
// error.
func (s *LeaderFollowerServer) Shutdown() error {
	s.mu.Lock()
	s.shutdown = true
	s.mu.Unlock()
	s.cond.Broadcast()
	err := s.listener.Close()
	s.wg.Wait()
	return err
}

// Addr returns the server's bound address.
func (s *LeaderFollowerServer) Addr() net.Addr {
	return s.listener.Addr()
}
