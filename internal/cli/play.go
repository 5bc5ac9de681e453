package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/frogfen/internal/api/response"
	"github.com/mcoot/frogfen/internal/factory"
	"github.com/mcoot/frogfen/internal/model"
	"github.com/mcoot/frogfen/internal/services/game"
)

const playHelp = `Commands:
  place <tile> <row> <col>   move a rack tile onto the board (alias: p)
  unplace <row> <col>        take a tile back (alias: u)
  reset                      take every tile back
  submit                     submit the tiles placed this turn (alias: s)
  board                      show the board again (alias: b)
  help                       show this help
  quit                       leave the game (alias: q)`

func newPlayCmd() *cobra.Command {
	var seed, dictionaryPath, rulesPath string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a local game on the terminal, no server needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := "error"
			if cfg.Verbose {
				level = "debug"
			}
			logger, err := factory.NewLogger(os.Stderr, level, "text")
			if err != nil {
				return err
			}

			app, err := factory.New(factory.Config{RulesPath: rulesPath, Logger: logger})
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if err := app.DictionaryService.LoadFromFile(ctx, dictionaryPath); err != nil {
				return err
			}

			session, err := app.GameController.CreateSession(ctx, seed)
			if err != nil {
				return err
			}

			return RunPlay(ctx, app.GameController, session.ID, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&seed, "seed", "", "Board seed (default: today's date)")
	cmd.Flags().StringVar(&dictionaryPath, "dictionary", getEnvOrDefault("FROGFEN_DICTIONARY_PATH", "data/words.txt"), "Dictionary file")
	cmd.Flags().StringVar(&rulesPath, "rules", os.Getenv("FROGFEN_RULES_PATH"), "Rules YAML file (default: built-in rules)")
	return cmd
}

// RunPlay runs the interactive loop for one session until the game ends, the
// player quits or in is exhausted
func RunPlay(ctx context.Context, controller game.ControllerInterface, id model.SessionID, in io.Reader, out io.Writer) error {
	session, err := controller.GetSession(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, RenderSession(response.SessionFromModel(session)))
	fmt.Fprintln(out, playHelp)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		done, err := playCommand(ctx, controller, id, fields, out)
		if err != nil {
			var rej *model.RejectionError
			if errors.As(err, &rej) {
				fmt.Fprintln(out, rejectStyle.Render("Rejected: "+rej.Error()))
			} else {
				fmt.Fprintf(out, "Error: %s\n", err)
			}
			continue
		}
		if done {
			return nil
		}
	}
}

// playCommand runs one command line and reports whether the loop should stop
func playCommand(ctx context.Context, controller game.ControllerInterface, id model.SessionID, fields []string, out io.Writer) (bool, error) {
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	var session *model.Session
	var err error

	switch cmd {
	case "place", "p":
		if len(args) != 3 {
			return false, errors.New("usage: place <tile> <row> <col>")
		}
		v, err := parseInts([]string{"tile", "row", "col"}, args)
		if err != nil {
			return false, err
		}
		session, err = controller.PlaceTile(ctx, id, model.TileID(v[0]), model.Position{Row: v[1], Col: v[2]})
		if err != nil {
			return false, err
		}

	case "unplace", "u":
		if len(args) != 2 {
			return false, errors.New("usage: unplace <row> <col>")
		}
		v, err := parseInts([]string{"row", "col"}, args)
		if err != nil {
			return false, err
		}
		session, err = controller.UnplaceTile(ctx, id, model.Position{Row: v[0], Col: v[1]})
		if err != nil {
			return false, err
		}

	case "reset":
		session, err = controller.ResetPlacements(ctx, id)

	case "board", "b":
		session, err = controller.GetSession(ctx, id)

	case "submit", "s":
		result, err := controller.SubmitMove(ctx, id)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(out, RenderResult(response.AcceptedFromModel(result)))
		if result.Turn.IsOver() {
			return true, nil
		}
		session, err = controller.GetSession(ctx, id)
		if err != nil {
			return false, err
		}

	case "help", "h", "?":
		fmt.Fprintln(out, playHelp)
		return false, nil

	case "quit", "q", "exit":
		return true, nil

	default:
		return false, fmt.Errorf("unknown command %q (try help)", cmd)
	}

	if err != nil {
		return false, err
	}
	fmt.Fprintln(out, RenderBoard(response.BoardFromModel(session.Board)))
	fmt.Fprintln(out, RenderRack(sessionRack(session)))
	return false, nil
}

func sessionRack(s *model.Session) []response.Tile {
	tiles := make([]response.Tile, len(s.Rack.Tiles))
	for i, t := range s.Rack.Tiles {
		tiles[i] = response.TileFromModel(t)
	}
	return tiles
}
