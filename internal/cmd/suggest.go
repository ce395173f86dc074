package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/renato0307/shotbook/internal/services"
	"github.com/renato0307/shotbook/internal/theme"
)

// SuggestCmd ranks candidates for the next shot
type SuggestCmd struct {
	Candidates   []string `arg:"" help:"Candidates as id or id:name"`
	IgnoreDays   *int     `help:"Exclude candidates who played within this many days"`
	LookbackDays *int     `help:"Window in days for the recent session count"`
	Slots        *int     `help:"Number of candidates to return"`
	Today        string   `help:"Reference date (YYYY-MM-DD), defaults to today"`
}

// Run executes the suggest command
func (s *SuggestCmd) Run(cli *CLI) error {
	candidates, err := parseParticipants(s.Candidates)
	if err != nil {
		return err
	}

	defaults := cli.Container.Config.Suggest
	req := services.SuggestRequest{
		Candidates:   candidates,
		IgnoreDays:   defaults.IgnoreDays,
		LookbackDays: defaults.LookbackDays,
		Slots:        defaults.Slots,
		Today:        s.Today,
	}
	if s.IgnoreDays != nil {
		req.IgnoreDays = *s.IgnoreDays
	}
	if s.LookbackDays != nil {
		req.LookbackDays = *s.LookbackDays
	}
	if s.Slots != nil {
		req.Slots = *s.Slots
	}

	result, err := cli.Container.SuggestionService.Suggest(context.Background(), req)
	if err != nil {
		return err
	}

	return renderSuggestion(result)
}

func renderSuggestion(result *services.SuggestResult) error {
	fmt.Println(theme.TitleStyle.Render(fmt.Sprintf("Suggestion for %s", result.Today)))
	fmt.Println(theme.MutedStyle.Render(fmt.Sprintf(
		"%d candidates, recent sessions counted since %s, ignore %d days",
		result.Considered, result.LookbackFrom, result.Request.IgnoreDays)))
	fmt.Println()

	if len(result.Ranking) == 0 {
		fmt.Println("No eligible candidates.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, theme.HeaderStyle.Render("#")+"\t"+
		theme.HeaderStyle.Render("PARTICIPANT")+"\t"+
		theme.HeaderStyle.Render("LAST PLAYED")+"\t"+
		theme.HeaderStyle.Render("DAYS")+"\t"+
		theme.HeaderStyle.Render("RECENT"))
	for _, r := range result.Ranking {
		days := theme.NeverStyle.Render("never")
		if r.DaysSinceLastPlayed != nil {
			days = strconv.Itoa(*r.DaysSinceLastPlayed)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			theme.RankStyle.Render(strconv.Itoa(r.Rank)),
			r.ParticipantName,
			r.LastPlayed.String(),
			days,
			r.RecentSessionCount)
	}
	return w.Flush()
}
