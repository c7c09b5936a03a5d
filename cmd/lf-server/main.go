// Command lf-server runs the leader-follower worker pool front-end: a
// fixed set of workers shares the listening socket, with exactly one
// leader blocked in accept at any time.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/arcweave/graphpipe/metrics"
	"github.com/arcweave/graphpipe/server"
)

func main() {
	poolSize := flag.Int("pool-size", server.DefaultPoolSize, "number of leader-follower workers")
	metricsAddr := flag.String("metrics-addr", "", "if set, serve Prometheus metrics on this address")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: lf-server [-pool-size N] [-metrics-addr host:port] <port>")
		os.Exit(2)
	}
	port, err := strconv.Atoi(flag.Arg(0))
	if err != nil || port < 1 || port > 65535 {
		fmt.Fprintln(os.Stderr, "lf-server: port must be in [1, 65535]")
		os.Exit(2)
	}

	var m *metrics.Metrics
	if *metricsAddr != "" {
		m = metrics.Init()
		go func() {
			if err := http.ListenAndServe(*metricsAddr, metrics.Handler()); err != nil {
				log.Printf("lf-server: metrics listener: %v", err)
			}
		}()
	}

	srv, err := server.NewLeaderFollowerServer(fmt.Sprintf(":%d", port), *poolSize, m)
	if err != nil {
		log.Printf("lf-server: listen: %v", err)
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT)
	go func() {
		<-sigCh
		log.Println("lf-server: shutdown requested")
		if err := srv.Shutdown(); err != nil {
			log.Printf("lf-server: shutdown: %v", err)
		}
	}()

	srv.Serve()
	log.Println("lf-server: stopped")
}
