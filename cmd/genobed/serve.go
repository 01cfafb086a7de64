package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/genobed/genobed/internal/server"
)

var (
	serveChromosomes []string
	serveHost        string
	servePort        int
)

var serveCmd = &cobra.Command{
	Use:   "serve <assembly>",
	Short: "Serve an assembly's interval operations over HTTP",
	Long: `Load an assembly and expose its chromosomes, gaps, filled regions
and the interval transforms over a JSON/BED HTTP API.

Examples:
  genobed serve sacCer3
  genobed serve hg38 --chromosomes chr1 --port 9000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := openGenome(cmd.Context(), args[0], serveChromosomes)
		if err != nil {
			return err
		}

		addr := fmt.Sprintf("%s:%d", serveHost, servePort)
		srv := &http.Server{
			Addr:         addr,
			Handler:      server.New(g).Handler(),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		done := make(chan struct{})
		go func() {
			<-quit
			log.Println("Server is shutting down...")
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.Printf("Shutdown error: %v", err)
			}
			close(done)
		}()

		log.Printf("Serving %s on http://%s", g.Assembly(), addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		<-done
		return nil
	},
}

func init() {
	serveCmd.Flags().StringSliceVar(&serveChromosomes, "chromosomes", nil,
		"Chromosomes to load (default: all after filters)")
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost",
		"Host to bind to")
	serveCmd.Flags().IntVar(&servePort, "port", 8080,
		"Port to listen on")
}
