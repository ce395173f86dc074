package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/shotbook/internal/domain"
	"github.com/renato0307/shotbook/internal/logging"
	"github.com/renato0307/shotbook/internal/theme"
)

// RecordCmd records a shot through the staged selection flow
type RecordCmd struct {
	Date   string `help:"Shot date (YYYY-MM-DD), prompted when empty"`
	Master string `help:"Master as id or id:name, prompted when empty"`
}

// Run executes the record command
func (r *RecordCmd) Run(cli *CLI) error {
	flows := cli.Container.FlowService
	key := localOperator()

	date := r.Date
	if date == "" {
		date = domain.Today()
	}
	master := r.Master
	var participants string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Value(&date).
				Validate(func(s string) error {
					if !domain.IsValidDate(s) {
						return fmt.Errorf("invalid date, use YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Title("Master").
				Description("id or id:name").
				Value(&master).
				Validate(func(s string) error {
					_, err := parseParticipant(s)
					return err
				}),
			huh.NewText().
				Title("Participants").
				Description("One per line, id or id:name").
				Value(&participants),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("record form failed: %w", err)
	}

	m, err := parseParticipant(master)
	if err != nil {
		return err
	}
	selected, err := parseParticipants(splitLines(participants))
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting record flow", "date", date, "master", m.ID, "participants", len(selected))

	if _, err := flows.StartRecord(true, key, date, m); err != nil {
		return err
	}
	sel, err := flows.Select(true, key, selected)
	if err != nil {
		flows.Cancel(key)
		return err
	}

	fmt.Println(theme.TitleStyle.Render(fmt.Sprintf("Shot on %s run by %s", sel.Params.Date, sel.Params.Master.Name)))
	for _, p := range sel.ParticipantList() {
		fmt.Printf("  - %s %s\n", p.DisplayName(), theme.MutedStyle.Render(p.ID))
	}
	fmt.Println()

	confirmed := false
	err = huh.NewConfirm().
		Title(fmt.Sprintf("Record shot with %d participants?", len(sel.Participants))).
		Affirmative("Record").
		Negative("Cancel").
		Value(&confirmed).
		Run()
	if err != nil || !confirmed {
		flows.Cancel(key)
		logging.Logger.Info("Record flow cancelled", "key", key.String())
		fmt.Println("Cancelled")
		return nil
	}

	result, err := flows.Confirm(context.Background(), true, key, key.OperatorID)
	if err != nil {
		flows.Cancel(key)
		return err
	}

	printShotRecorded(result.Shot)
	return nil
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == ',' }) {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
