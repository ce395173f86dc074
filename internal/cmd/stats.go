package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/shotbook/internal/services"
	"github.com/renato0307/shotbook/internal/theme"
)

// StatsCmd shows the attendance summary
type StatsCmd struct {
	Format string `help:"Output format (table or json)" default:"table" enum:"table,json"`
	From   string `help:"Start date (YYYY-MM-DD), defaults to 30 days before --to"`
	To     string `help:"End date (YYYY-MM-DD), defaults to today"`
}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	result, err := cli.Container.AttendanceService.Stats(context.Background(), s.From, s.To)
	if err != nil {
		return err
	}

	switch s.Format {
	case "json":
		return s.renderJSON(result)
	default:
		return s.renderTable(result)
	}
}

// renderTable displays the summary in table format
func (s *StatsCmd) renderTable(result *services.StatsResult) error {
	fmt.Println(theme.TitleStyle.Render(fmt.Sprintf("Attendance %s to %s", result.From, result.To)))

	if len(result.Rows) == 0 {
		fmt.Println("No shots in range.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, theme.HeaderStyle.Render("PARTICIPANT")+"\t"+
		theme.HeaderStyle.Render("SESSIONS")+"\t"+
		theme.HeaderStyle.Render("LAST"))
	for _, row := range result.Rows {
		fmt.Fprintf(w, "%s\t%d\t%s\n", row.ParticipantName, row.SessionCount, row.LastDate)
	}
	return w.Flush()
}

func (s *StatsCmd) renderJSON(result *services.StatsResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
