package main

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"nhl-cli/internal/config"
	"nhl-cli/internal/logging"
	"nhl-cli/internal/nhl"
	"nhl-cli/internal/views"
)

const appVersion = "dev"

func newClient() *nhl.Client {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "nhl-cli",
		Version: appVersion,
	})

	return nhl.NewClient(nhl.Config{
		BaseURL:    cfg.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
		Logger:     logger,
	})
}

func newRootCmd(client *nhl.Client) *cobra.Command {
	root := &cobra.Command{
		Use:           "nhl",
		Short:         "NHL schedules, standings, leaders, and box scores in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(&cobra.Command{
		Use:   "scores",
		Short: "Show recent game scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := &views.Scores{Provider: client}
			return view.Render(cmd.Context())
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "standings [format]",
		Short: "Show league standings (conference, wildcard, or league)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := "wildcard"
			if len(args) > 0 {
				format = args[0]
			}
			view := &views.Standings{Provider: client}
			return view.Render(cmd.Context(), format)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "leaders <category>",
		Short: "Show statistical leaders for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := &views.Leaders{Provider: client}
			return view.Render(cmd.Context(), args[0])
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "boxscores",
		Short: "Pick a recent game and view its box score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := &views.GamePicker{
				Provider: client,
				BoxScore: &views.BoxScore{Provider: client},
			}
			return view.Render(cmd.Context())
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "ovi",
		Short: "Track Ovechkin's chase of Gretzky's goal record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := &views.Ovi{Provider: client}
			return view.Render(cmd.Context())
		},
	})

	return root
}

func main() {
	root := newRootCmd(newClient())
	if err := root.Execute(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
