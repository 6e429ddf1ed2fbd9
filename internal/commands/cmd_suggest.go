package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/bored/internal/activity"
	"github.com/hay-kot/bored/internal/core/history"
	"github.com/hay-kot/bored/internal/core/participants"
	"github.com/hay-kot/bored/internal/printer"
)

// Output formats for the suggested activity.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Result is the outcome of a single suggestion run.
type Result struct {
	Participants int
	Activity     *activity.Activity
	Err          error
}

// ExitCode returns the process exit code for the run.
func (r Result) ExitCode() int {
	if r.Err != nil || r.Activity == nil {
		return 1
	}
	return 0
}

// Absent reports whether the run failed because the upstream had no activity.
func (r Result) Absent() bool {
	return errors.Is(r.Err, activity.ErrNoActivity)
}

type SuggestCmd struct {
	flags  *Flags
	format string
}

// NewSuggestCmd creates the suggest command, which is the default action.
func NewSuggestCmd(flags *Flags) *SuggestCmd {
	return &SuggestCmd{flags: flags}
}

// Flags returns the suggest flags for registration on the root command
func (cmd *SuggestCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "activity output format (text, json, markdown)",
			Sources:     cli.EnvVars("BORED_FORMAT"),
			Value:       FormatText,
			Local:       true,
			Destination: &cmd.format,
		},
	}
}

// Run fetches and prints one suggestion. Exported for use as default command.
func (cmd *SuggestCmd) Run(ctx context.Context, c *cli.Command) error {
	switch cmd.format {
	case FormatText, FormatJSON, FormatMarkdown:
	default:
		return fmt.Errorf("invalid format %q (want %s, %s or %s)", cmd.format, FormatText, FormatJSON, FormatMarkdown)
	}

	res := cmd.Suggest(ctx, printer.New(c.Root().Writer))
	cmd.record(ctx, res)

	switch {
	case res.ExitCode() == 0:
		return nil
	case res.Absent():
		// already reported on the console
		return cli.Exit("", res.ExitCode())
	default:
		return fmt.Errorf("suggest activity: %w", res.Err)
	}
}

// Suggest picks a participant count, fetches an activity for it and prints
// the outcome to p.
func (cmd *SuggestCmd) Suggest(ctx context.Context, p *printer.Printer) Result {
	var (
		cfg = cmd.flags.Config
		log = cmd.flags.Logger.With().Str("component", "suggest").Logger()
		rng = participants.Range{
			Min: cfg.ActivityParams.MinParticipants,
			Max: cfg.ActivityParams.MaxParticipants,
		}
	)

	log.Info().
		Int("min", rng.Min).
		Int("max", rng.Max).
		Bool("mock", cfg.BoredClient.UseMock).
		Msg("configured participant range")

	if err := rng.Validate(); err != nil {
		return Result{Err: err}
	}

	n := rng.Pick(cmd.flags.Rand)
	p.Printf("Retrieving activity suggestion for %d participant(s)...", n)

	ctx, cancel := context.WithTimeout(ctx, cfg.BoredClient.Timeout)
	defer cancel()

	a, err := cmd.flags.Service.GetActivity(ctx, n)
	if err != nil {
		if errors.Is(err, activity.ErrNoActivity) {
			log.Error().Err(err).Int("participants", n).Msg("unable to retrieve activity")
			p.Errorf("Unable to retrieve activity for %d participant(s).", n)
		} else {
			log.Error().Err(err).Int("participants", n).Msg("unhandled error while fetching activity")
		}
		return Result{Participants: n, Err: err}
	}

	p.Printf("Suggested activity:")
	switch cmd.format {
	case FormatJSON:
		err = p.JSON(a)
	case FormatMarkdown:
		err = p.Markdown(activityMarkdown(a))
	default:
		p.Card("Activity", activityFields(a))
	}
	if err != nil {
		return Result{Participants: n, Err: fmt.Errorf("write activity: %w", err)}
	}

	return Result{Participants: n, Activity: &a}
}

// record saves the run to history. Failures are logged, never fatal.
func (cmd *SuggestCmd) record(ctx context.Context, res Result) {
	if cmd.flags.HistoryStore == nil {
		return
	}

	entry := history.Entry{
		ID:           history.NewID(),
		Participants: res.Participants,
		Mock:         cmd.flags.Config.BoredClient.UseMock,
		Activity:     res.Activity,
		ExitCode:     res.ExitCode(),
		Timestamp:    time.Now(),
	}
	if res.Err != nil {
		entry.Error = res.Err.Error()
	}

	if err := cmd.flags.HistoryStore.Save(ctx, entry); err != nil {
		cmd.flags.Logger.Warn().Err(err).Msg("failed to record run history")
	}
}

func activityMarkdown(a activity.Activity) string {
	var b strings.Builder

	_, _ = fmt.Fprintf(&b, "## %s\n\n", a.Description)
	for _, f := range activityFields(a)[1:] {
		value := f.Value
		if value == "" {
			value = "_none_"
		}
		_, _ = fmt.Fprintf(&b, "- **%s:** %s\n", f.Key, value)
	}

	return b.String()
}

func activityFields(a activity.Activity) []printer.Field {
	return []printer.Field{
		{Key: "Description", Value: a.Description},
		{Key: "Type", Value: a.Type},
		{Key: "Participants", Value: strconv.Itoa(a.Participants)},
		{Key: "Price", Value: strconv.FormatFloat(a.Price, 'f', 2, 64)},
		{Key: "Link", Value: a.Link},
		{Key: "Key", Value: a.Key},
		{Key: "Accessibility", Value: strconv.FormatFloat(a.Accessibility, 'f', 2, 64)},
	}
}
