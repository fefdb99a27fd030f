package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/andrei-cloud/go_cmac/internal/config"
	"github.com/andrei-cloud/go_cmac/internal/logging"
	"github.com/andrei-cloud/go_cmac/internal/server"
)

var (
	addr  string
	debug bool
	human bool
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MAC server",
	Long:  `Start the MAC server to process CMAC generate, verify and PRF commands over TCP.`,
	Run: func(_ *cobra.Command, _ []string) {
		logging.InitLogger(debug, human)

		if err := config.Initialize(); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize configuration")
		}

		// Flag overrides config.
		if addr == "" {
			cfg := config.Get()
			addr = fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		}

		// Initialize the server.
		srv, err := server.NewServer(addr)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize server")
		}

		// Ensure the stop channel is closed only once.
		var stopOnce sync.Once
		stopChan := make(chan os.Signal, 1)
		signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-stopChan
			log.Info().Msgf("signal %v received, shutting down server", sig)

			stopOnce.Do(func() {
				if err := srv.Stop(); err != nil {
					log.Error().Err(err).Msg("failed to stop server")
				}
				close(stopChan)
			})
		}()

		// Start the server.
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}

		// Block the main goroutine until a termination signal is received.
		<-stopChan

		log.Info().Msg("server stopped gracefully")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (host:port)")
	serveCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	serveCmd.Flags().BoolVar(&human, "human", false, "Enable human-readable logs")
}
