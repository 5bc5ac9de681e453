package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcoot/frogfen/internal/api/response"
)

func newHealthCmd() *cobra.Command {
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Long: `Check that the server is up and has a dictionary loaded.

With --wait, keep polling until the server is ready or the wait runs out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Health

			deadline := time.Now().Add(wait)
			for {
				err := client.Get("/api/v1/health", &result)
				if err == nil {
					break
				}
				if time.Now().After(deadline) {
					if wait > 0 {
						return fmt.Errorf("server not ready after %s: %w", wait, err)
					}
					return err
				}
				time.Sleep(250 * time.Millisecond)
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().DurationVar(&wait, "wait", 0, "How long to wait for the server to become ready")
	return cmd
}
