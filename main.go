package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "netra-portal",
		Short:         "Investigator portal and CLI for the N.E.T.R.A. backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := newLogger(viper.GetString("log_level"))
			if err != nil {
				return errors.Wrap(err, "building logger")
			}
			logger = l
			return nil
		},
	}

	root.PersistentFlags().String("backend", "", "Backend base URL (env NETRA_BACKEND_URL)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	_ = viper.BindPFlag("backend_url", root.PersistentFlags().Lookup("backend"))
	_ = viper.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newServeCommand(), newLoginCommand(), newSearchCommand(), newReportCommand(), newWatchCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web portal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	if _, err := refreshInterval(); err != nil {
		return err
	}
	if err := initFeatures(BasicListener{log: logger}); err != nil {
		return errors.Wrap(err, "starting feature flags")
	}
	if err := configure(); err != nil {
		return err
	}

	router := httprouter.New()
	addRoutes(router)

	var wg sync.WaitGroup
	wg.Add(1)
	srv := startServer(router, &wg)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	wg.Wait()
	return nil
}

func main() {
	loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCommand().ExecuteContext(ctx)
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
