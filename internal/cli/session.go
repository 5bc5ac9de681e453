package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/frogfen/internal/api/request"
	"github.com/mcoot/frogfen/internal/api/response"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session commands",
	}

	cmd.AddCommand(newSessionNewCmd())
	cmd.AddCommand(newSessionGetCmd())
	cmd.AddCommand(newSessionListCmd())
	cmd.AddCommand(newSessionUseCmd())
	cmd.AddCommand(newSessionDeleteCmd())

	return cmd
}

// sessionFromArgs picks the session named on the command line, falling back
// to the current session
func sessionFromArgs(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return cfg.RequireSession()
}

func newSessionNewCmd() *cobra.Command {
	var seed string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new session and make it current",
		Long:  "Start a new session. Without --seed you get today's daily board.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.CreateSessionRequest{Seed: seed}
			var result response.Session

			if err := client.Post("/api/v1/sessions", req, &result); err != nil {
				return err
			}

			if err := cfg.SaveSession(result.ID); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&seed, "seed", "", "Board seed (default: today's date)")
	return cmd
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show a session (default: the current one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := sessionFromArgs(args)
			if err != nil {
				return err
			}

			var result response.Session
			if err := client.Get("/api/v1/sessions/"+url.PathEscape(id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newSessionListCmd() *cobra.Command {
	var seed string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions played on a seed (default: today's)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/sessions"
			if seed != "" {
				path += "?seed=" + url.QueryEscape(seed)
			}

			var result response.SessionList
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&seed, "seed", "", "Board seed")
	return cmd
}

func newSessionUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <id>",
		Short: "Make an existing session current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Session
			if err := client.Get("/api/v1/sessions/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			if err := cfg.SaveSession(result.ID); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage("Current session: " + result.ID)
			return nil
		},
	}
}

func newSessionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a session (default: the current one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := sessionFromArgs(args)
			if err != nil {
				return err
			}

			if err := client.Delete("/api/v1/sessions/"+url.PathEscape(id), nil, nil); err != nil {
				return err
			}

			if id == cfg.Session {
				if err := cfg.ClearSession(); err != nil {
					return err
				}
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage("Session deleted")
			return nil
		},
	}
}
