// Command client drives a pipeline-server or dispatch-server (or
// lf-server, which speaks the same single-shot protocol) with a
// deterministically generated random graph, for manual testing.
package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"time"

	"github.com/arcweave/graphpipe/core"
	"github.com/arcweave/graphpipe/graphgen"
	"github.com/arcweave/graphpipe/wire"
)

func main() {
	mode := flag.String("mode", "pipeline", "pipeline or dispatch")
	addr := flag.String("addr", "127.0.0.1:9000", "server address")
	vertices := flag.Int("vertices", 5, "number of vertices")
	edges := flag.Int("edges", 6, "number of edges to request")
	seed := flag.Int64("seed", 1, "random seed")
	maxWeight := flag.Int("max-weight", 10, "maximum edge weight")
	algorithmID := flag.Int("algorithm", 3, "algorithm id for dispatch mode (1..5)")
	flag.Parse()

	g, err := graphgen.Generate(*seed, *vertices, *edges, *maxWeight)
	if err != nil {
		log.Printf("client: generated graph is short of requested edges: %v", err)
	}

	conn, err := net.DialTimeout("tcp", *addr, 5*time.Second)
	if err != nil {
		log.Fatalf("client: dial: %v", err)
	}
	defer conn.Close()

	switch *mode {
	case "pipeline":
		if err := runPipeline(conn, g, *seed, *maxWeight); err != nil {
			log.Fatalf("client: pipeline: %v", err)
		}
	case "dispatch":
		if err := runDispatch(conn, g, *algorithmID); err != nil {
			log.Fatalf("client: dispatch: %v", err)
		}
	default:
		fmt.Fprintln(os.Stderr, "client: mode must be pipeline or dispatch")
		os.Exit(2)
	}
}

func runPipeline(conn net.Conn, g *core.Graph, seed int64, maxWeight int) error {
	req := wire.PipelineRequest{
		Seed:      int32(seed),
		MaxWeight: int32(maxWeight),
		Vertices:  int32(g.N()),
		Edges:     edgeTriples(g),
	}
	if err := wire.WritePipelineRequest(conn, req); err != nil {
		return err
	}

	buf := make([]byte, 8192)
	n, err := conn.Read(buf)
	if err != nil {
		return err
	}
	fmt.Print(string(buf[:n]))
	return nil
}

func runDispatch(conn net.Conn, g *core.Graph, algorithmID int) error {
	req := wire.SingleShotRequest{
		AlgorithmID: int32(algorithmID),
		Vertices:    int32(g.N()),
	}
	if wire.IsWeightedForm(req.AlgorithmID) {
		req.Edges = edgeTriples(g)
	} else {
		req.AdjacencyMatrix = adjacencyMatrix(g)
	}
	if err := wire.WriteSingleShotRequest(conn, req); err != nil {
		return err
	}

	ok, body, err := wire.ReadSingleShotResponse(conn)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("request failed")
		return nil
	}
	fmt.Println(body)
	return nil
}

func edgeTriples(g *core.Graph) []wire.EdgeTriple {
	var triples []wire.EdgeTriple
	for u := 0; u < g.N(); u++ {
		for _, inc := range g.Incidences(u) {
			if inc.To >= u {
				triples = append(triples, wire.EdgeTriple{U: int32(u), V: int32(inc.To), W: int32(inc.Weight)})
			}
		}
	}
	return triples
}

func adjacencyMatrix(g *core.Graph) []int32 {
	n := g.N()
	m := make([]int32, n*n)
	for u := 0; u < n; u++ {
		for _, inc := range g.Incidences(u) {
			m[u*n+inc.To] = 1
			m[inc.To*n+u] = 1
		}
	}
	return m
}
