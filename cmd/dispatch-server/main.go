// Command dispatch-server runs the per-connection single-shot
// dispatch front-end: each request names one algorithm id and gets
// exactly one reply.
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
		fmt.Fprintln(os.Stderr, "usage: dispatch-server [-metrics-addr host:port] <port>")
		os.Exit(2)
	}
	port, err := strconv.Atoi(flag.Arg(0))
	if err != nil || port < 1 || port > 65535 {
		fmt.Fprintln(os.Stderr, "dispatch-server: port must be in [1, 65535]")
		os.Exit(2)
	}

	var m *metrics.Metrics
	if *metricsAddr != "" {
		m = metrics.Init()
		go func() {
			if err := http.ListenAndServe(*metricsAddr, metrics.Handler()); err != nil {
				log.Printf("dispatch-server: metrics listener: %v", err)
			}
		}()
	}

	srv, err := server.NewDispatchServer(fmt.Sprintf(":%d", port), m)
	if err != nil {
		log.Printf("dispatch-server: listen: %v", err)
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT)
	go func() {
		<-sigCh
		log.Println("dispatch-server: shutdown requested")
		if err := srv.Shutdown(); err != nil {
			log.Printf("dispatch-server: shutdown: %v", err)
		}
	}()

	if err := srv.Serve(); err != nil {
		log.Println("dispatch-server: stopped")
	}
}
