package commands

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/bored/internal/printer"
)

// maxSummaryWidth truncates the activity column of the history table.
const maxSummaryWidth = 50

type HistoryCmd struct {
	flags *Flags
	clear bool
}

// NewHistoryCmd creates a new history command
func NewHistoryCmd(flags *Flags) *HistoryCmd {
	return &HistoryCmd{flags: flags}
}

// Register adds the history command to the application
func (cmd *HistoryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "history",
		Usage:     "View or clear past suggestions",
		UsageText: "bored [global options] history [options]",
		Description: `Lists recorded suggestion runs, newest first, with the participant
count, outcome and suggested activity. Use --clear to remove all entries.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "clear",
				Usage:       "clear all recorded runs",
				Destination: &cmd.clear,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *HistoryCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.New(c.Root().Writer)

	if cmd.clear {
		if err := cmd.flags.HistoryStore.Clear(ctx); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		p.Successf("Run history cleared")
		return nil
	}

	entries, err := cmd.flags.HistoryStore.List(ctx)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	if len(entries) == 0 {
		p.Infof("No run history")
		return nil
	}

	w := tabwriter.NewWriter(p.Writer(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tPARTICIPANTS\tSTATUS\tACTIVITY\tTIME")

	for _, e := range entries {
		status := p.StatusOK()
		if e.Failed() {
			status = p.StatusFailed("exit " + strconv.Itoa(e.ExitCode))
		}

		summary := e.Summary()
		if len(summary) > maxSummaryWidth {
			summary = summary[:maxSummaryWidth-3] + "..."
		}

		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			e.ID,
			e.Participants,
			status,
			summary,
			e.Timestamp.Format("2006-01-02 15:04:05"),
		)
	}

	return w.Flush()
}
