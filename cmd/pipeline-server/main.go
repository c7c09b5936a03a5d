// Command pipeline-server runs the bounded-queue pipeline front-end:
// every accepted connection becomes one job run through MST, MaxFlow,
// MaxClique, and CliqueCount in sequence.
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
	metricsAddr := flag.String("metrics-addr", "", "if set, serve Prometheus metrics on this address")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pipeline-server [-metrics-addr host:port] <port>")
		os.Exit(2)
	}
	port, err := strconv.Atoi(flag.Arg(0))
	if err != nil || port < 1 || port > 65535 {
		fmt.Fprintln(os.Stderr, "pipeline-server: port must be in [1, 65535]")
		os.Exit(2)
	}

	var m *metrics.Metrics
	if *metricsAddr != "" {
		m = metrics.Init()
		go func() {
			if err := http.ListenAndServe(*metricsAddr, metrics.Handler()); err != nil {
				log.Printf("pipeline-server: metrics listener: %v", err)
			}
		}()
	}

	srv, err := server.NewPipelineServer(fmt.Sprintf(":%d", port), m)
	if err != nil {
		log.Printf("pipeline-server: listen: %v", err)
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT)
	go func() {
		<-sigCh
		log.Println("pipeline-server: shutdown requested")
		if err := srv.Shutdown(); err != nil {
			log.Printf("pipeline-server: shutdown: %v", err)
		}
	}()

	if err := srv.Serve(); err != nil {
		log.Println("pipeline-server: stopped")
	}
}
