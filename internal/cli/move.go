package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/frogfen/internal/api/request"
	"github.com/mcoot/frogfen/internal/api/response"
)

func sessionPath(suffix string) (string, error) {
	id, err := cfg.RequireSession()
	if err != nil {
		return "", err
	}
	return "/api/v1/sessions/" + url.PathEscape(id) + suffix, nil
}

func parseInts(names []string, args []string) ([]int, error) {
	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", names[i], err)
		}
		values[i] = v
	}
	return values, nil
}

func newPlaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "place <tile> <row> <col>",
		Short: "Move a rack tile onto the board",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts([]string{"tile", "row", "col"}, args)
			if err != nil {
				return err
			}

			path, err := sessionPath("/placements")
			if err != nil {
				return err
			}

			req := request.PlaceTileRequest{TileID: v[0], Row: v[1], Col: v[2]}
			var result response.Session

			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newUnplaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unplace <row> <col>",
		Short: "Return a tile placed this turn to the rack",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts([]string{"row", "col"}, args)
			if err != nil {
				return err
			}

			path, err := sessionPath("/placements")
			if err != nil {
				return err
			}

			req := request.UnplaceTileRequest{Row: v[0], Col: v[1]}
			var result response.Session

			if err := client.Delete(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Return every tile placed this turn to the rack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/placements")
			if err != nil {
				return err
			}

			var result response.Session
			if err := client.Delete(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit",
		Short: "Submit the tiles placed this turn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/submit")
			if err != nil {
				return err
			}

			var result response.MoveResult
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}
