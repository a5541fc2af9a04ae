package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/nori-stack/docdb/pkg/config"
	"github.com/nori-stack/docdb/pkg/docdb"
	"github.com/nori-stack/docdb/pkg/logger"
	docdbweb "github.com/nori-stack/docdb/web/docdb"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts docdb and listens for HTTP calls",
	Long: `Starts docdb and listens for HTTP calls.
It will accept HTTP requests on localhost:8080 by default.
Use the --host and --port flags to change the listening option.

The SIGINT signal will trigger a graceful stop: it will wait for
in-flight requests to finish (in a limit of 30 seconds) before exiting.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.GetConfig()
		if err := logger.SetLevel(cfg.LogLevel); err != nil {
			return err
		}
		log := logger.WithNamespace("serve")

		reg := docdb.NewRegistry()

		e := echo.New()
		e.HideBanner = true
		e.GET("/_metrics", echo.WrapHandler(promhttp.Handler()))
		docdbweb.Routes(e.Group(""), reg)

		srv := &http.Server{
			Addr:         cfg.Addr(),
			Handler:      e,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		}

		errs := make(chan error, 1)
		go func() {
			log.Infof("listening on %s", cfg.Addr())
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errs <- err
			}
		}()

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt)

		select {
		case err := <-errs:
			return err
		case <-sigs:
			fmt.Println("\nReceived interrupt signal:")
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			fmt.Println("All settled, bye bye !")
			return nil
		}
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
