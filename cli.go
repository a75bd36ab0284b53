package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/netra-cyber/netra-portal/aggregate"
	"github.com/netra-cyber/netra-portal/backend"
	"github.com/netra-cyber/netra-portal/models"
	"github.com/netra-cyber/netra-portal/refresh"
	"github.com/netra-cyber/netra-portal/render"
)

func cliClient() *backend.Client {
	return backend.New(viper.GetString("backend_url"), backend.WithLogger(logger))
}

func textOut(w io.Writer) *render.Text {
	f, ok := w.(*os.File)
	return render.NewText(w, ok && isatty.IsTerminal(f.Fd()))
}

func addTokenFlag(cmd *cobra.Command) {
	cmd.Flags().String("token", "", "Access token printed by the login command (env NETRA_TOKEN)")
}

// cliToken prefers --token over NETRA_TOKEN.
func cliToken(cmd *cobra.Command) (string, error) {
	token, _ := cmd.Flags().GetString("token")
	if token == "" {
		token = viper.GetString("token")
	}
	if token == "" {
		return "", errors.New("no access token: pass --token or set NETRA_TOKEN")
	}
	return token, nil
}

func newLoginCommand() *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and print an access token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tok, err := cliClient().Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok.AccessToken)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Officer username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newSearchCommand() *cobra.Command {
	var searchType string
	cmd := &cobra.Command{
		Use:   "search <identifier>",
		Short: "Search every record for a mobile number, UPI ID, account or FIR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := cliToken(cmd)
			if err != nil {
				return err
			}
			return runSearch(cmd.Context(), cliClient(), textOut(cmd.OutOrStdout()), token, args[0], searchType)
		},
	}
	cmd.Flags().StringVarP(&searchType, "type", "t", "auto", "Identifier type: auto, mobile, upi, account, fir or name")
	addTokenFlag(cmd)
	return cmd
}

func runSearch(ctx context.Context, client *backend.Client, out *render.Text, token, query, searchType string) error {
	res, err := client.UniversalSearch(ctx, token, query, searchType)
	if err != nil {
		return err
	}
	out.Search(aggregate.BuildSearchView(res))
	return nil
}

func newReportCommand() *cobra.Command {
	var withGraph bool
	cmd := &cobra.Command{
		Use:   "report <identifier>",
		Short: "Print the investigation report for an identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := cliToken(cmd)
			if err != nil {
				return err
			}
			return runReport(cmd.Context(), cliClient(), textOut(cmd.OutOrStdout()), token, args[0], withGraph)
		},
	}
	cmd.Flags().BoolVar(&withGraph, "graph", false, "Also print the network graph")
	addTokenFlag(cmd)
	return cmd
}

func runReport(ctx context.Context, client *backend.Client, out *render.Text, token, identifier string, withGraph bool) error {
	var (
		report models.InvestigationReport
		graph  models.NetworkGraph
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		report, err = client.InvestigationData(ctx, token, identifier)
		return err
	})
	if withGraph {
		g.Go(func() (err error) {
			graph, err = client.NetworkGraph(ctx, token, identifier)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out.Report(aggregate.BuildReportView(report))
	if withGraph {
		out.Graph(aggregate.BuildGraphView(identifier, graph))
	}
	return nil
}

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-print the financial dashboard on every refresh until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := cliToken(cmd)
			if err != nil {
				return err
			}
			interval, err := refreshInterval()
			if err != nil {
				return err
			}
			runWatch(cmd.Context(), cliClient(), textOut(cmd.OutOrStdout()), token, interval)
			return nil
		},
	}
	cmd.Flags().Duration("interval", 30*time.Second, "Refresh interval (env NETRA_REFRESH_INTERVAL)")
	_ = viper.BindPFlag("refresh_interval", cmd.Flags().Lookup("interval"))
	addTokenFlag(cmd)
	return cmd
}

// runWatch refreshes the dashboard until ctx is cancelled. Failed refreshes are logged and
// retried on the next tick.
func runWatch(ctx context.Context, client *backend.Client, out *render.Text, token string, interval time.Duration) {
	var tracker refresh.AlertTracker
	refresh.Loop(ctx, interval, func(ctx context.Context) {
		view, repeats, err := fetchDashboard(ctx, client, token)
		if err != nil {
			if ctx.Err() == nil {
				logger.Warn("dashboard refresh failed", zap.Error(err))
			}
			return
		}
		out.Dashboard(view, tracker.Observe(repeats.TotalRepeatEntities))
	})
}
