package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/shotbook/internal/domain"
	"github.com/renato0307/shotbook/internal/logging"
	"github.com/renato0307/shotbook/internal/theme"
)

// ShotsCmd manages shots
type ShotsCmd struct {
	Add  ShotsAddCmd  `cmd:"add" help:"Record a shot non-interactively"`
	Del  ShotsDelCmd  `cmd:"del" help:"Delete a shot and its attendance"`
	List ShotsListCmd `cmd:"list" help:"List shots in a date range" default:"1"`
	Show ShotsShowCmd `cmd:"show" help:"Show one shot with its participants"`
}

// ShotsAddCmd records a shot from flags
type ShotsAddCmd struct {
	Date         string   `arg:"" help:"Shot date (YYYY-MM-DD)"`
	Master       string   `help:"Master as id or id:name" required:""`
	By           string   `help:"Operator id recorded as creator, defaults to the local user"`
	Participants []string `arg:"" help:"Participants as id or id:name"`
}

// Run executes the add command
func (s *ShotsAddCmd) Run(cli *CLI) error {
	master, err := parseParticipant(s.Master)
	if err != nil {
		return err
	}
	participants, err := parseParticipants(s.Participants)
	if err != nil {
		return err
	}

	createdBy := s.By
	if createdBy == "" {
		createdBy = localOperator().OperatorID
	}
	logging.Logger.Info("Executing shots add command", "date", s.Date, "master", master.ID, "participants", len(participants))

	shot, err := cli.Container.AttendanceService.RecordShot(context.Background(), domain.NewShot{
		CreatedByID: createdBy,
		Date:        s.Date,
		MasterID:    master.ID,
		MasterName:  master.DisplayName(),
	}, participants)
	if err != nil {
		return err
	}

	printShotRecorded(shot)
	return nil
}

// ShotsListCmd lists shots
type ShotsListCmd struct {
	From string `help:"Start date (YYYY-MM-DD), defaults to 30 days before --to"`
	To   string `help:"End date (YYYY-MM-DD), defaults to today"`
}

// Run executes the list command
func (s *ShotsListCmd) Run(cli *CLI) error {
	shots, err := cli.Container.AttendanceService.ListShots(context.Background(), s.From, s.To)
	if err != nil {
		return err
	}

	if len(shots) == 0 {
		fmt.Println("No shots in range.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, theme.HeaderStyle.Render("ID")+"\t"+
		theme.HeaderStyle.Render("DATE")+"\t"+
		theme.HeaderStyle.Render("MASTER")+"\t"+
		theme.HeaderStyle.Render("PLAYERS"))
	for _, shot := range shots {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", shot.ID, shot.Date, shot.MasterName, len(shot.Participants))
	}
	return w.Flush()
}

// ShotsShowCmd shows one shot
type ShotsShowCmd struct {
	ID int64 `arg:"" help:"Shot ID"`
}

// Run executes the show command
func (s *ShotsShowCmd) Run(cli *CLI) error {
	shot, err := cli.Container.AttendanceService.GetShot(context.Background(), s.ID)
	if err != nil {
		return err
	}

	fmt.Println(theme.TitleStyle.Render(fmt.Sprintf("Shot #%d", shot.ID)))
	fmt.Printf("%s %s\n", theme.LabelStyle.Render("Date:      "), shot.Date)
	fmt.Printf("%s %s (%s)\n", theme.LabelStyle.Render("Master:    "), shot.MasterName, shot.MasterID)
	fmt.Printf("%s %s\n", theme.LabelStyle.Render("Created by:"), shot.CreatedByID)
	fmt.Println()
	for _, p := range shot.Participants {
		fmt.Printf("  - %s %s\n", p.DisplayName(), theme.MutedStyle.Render(p.ID))
	}
	return nil
}

// ShotsDelCmd deletes a shot
type ShotsDelCmd struct {
	Force bool  `help:"Force deletion without confirmation" short:"f"`
	ID    int64 `arg:"" help:"Shot ID"`
}

// Run executes the del command
func (s *ShotsDelCmd) Run(cli *CLI) error {
	ctx := context.Background()
	logging.Logger.Info("Executing shots del command", "id", s.ID, "force", s.Force)

	shot, err := cli.Container.AttendanceService.GetShot(ctx, s.ID)
	if err != nil {
		return err
	}

	if !s.Force {
		confirmed := false
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Delete shot #%d on %s with %d participants?", shot.ID, shot.Date, len(shot.Participants))).
			Affirmative("Delete").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !confirmed {
			logging.Logger.Info("User cancelled shot deletion", "id", s.ID)
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cli.Container.AttendanceService.DeleteShot(ctx, true, s.ID); err != nil {
		return err
	}

	fmt.Println(theme.SuccessStyle.Render(fmt.Sprintf("Shot #%d deleted", s.ID)))
	return nil
}

func printShotRecorded(shot *domain.Shot) {
	fmt.Println(theme.SuccessStyle.Render(fmt.Sprintf("Shot #%d recorded for %s", shot.ID, shot.Date)))
	names := make([]string, len(shot.Participants))
	for i, p := range shot.Participants {
		names[i] = p.DisplayName()
	}
	fmt.Printf("%s %s\n", theme.LabelStyle.Render("Participants:"), strings.Join(names, ", "))
}

// parseParticipant parses "id" or "id:name"
func parseParticipant(raw string) (domain.Participant, error) {
	id, name, _ := strings.Cut(strings.TrimSpace(raw), ":")
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Participant{}, domain.NewValidationError("participant", fmt.Sprintf("invalid participant %q, use id or id:name", raw))
	}
	return domain.Participant{ID: id, Name: strings.TrimSpace(name)}, nil
}

func parseParticipants(raw []string) ([]domain.Participant, error) {
	out := make([]domain.Participant, 0, len(raw))
	for _, r := range raw {
		p, err := parseParticipant(r)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
