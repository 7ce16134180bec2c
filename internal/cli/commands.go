package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"calbook/internal/booking"
	"calbook/internal/domain"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <date> <time>",
		Short: "Add a 30-minute appointment (date dd/MM, time HH:mm)",
		Args:  exactArgs(2, "expecting date (dd/MM) and time (HH:mm)"),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0], time.Now())
			if err != nil {
				return err
			}
			start, err := domain.ParseTimeOfDay(args[1])
			if err != nil {
				return fmt.Errorf("invalid time %q: expecting HH:mm", args[1])
			}
			return runWithEngine(cmd, func(ctx context.Context, eng *booking.Engine) booking.Result {
				return eng.AddAppointment(ctx, date, start)
			})
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <date> <time>",
		Short: "Delete the appointment at date dd/MM and time HH:mm",
		Args:  exactArgs(2, "expecting date (dd/MM) and time (HH:mm)"),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0], time.Now())
			if err != nil {
				return err
			}
			start, err := domain.ParseTimeOfDay(args[1])
			if err != nil {
				return fmt.Errorf("invalid time %q: expecting HH:mm", args[1])
			}
			return runWithEngine(cmd, func(ctx context.Context, eng *booking.Engine) booking.Result {
				return eng.DeleteAppointment(ctx, date, start)
			})
		},
	}
}

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <date>",
		Short: "Find the next free 30-minute slot on date dd/MM",
		Args:  exactArgs(1, "expecting date (dd/MM)"),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0], time.Now())
			if err != nil {
				return err
			}
			return runWithEngine(cmd, func(ctx context.Context, eng *booking.Engine) booking.Result {
				return eng.FindAppointment(ctx, date)
			})
		},
	}
}

func newKeepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keep <time>",
		Short: "Reserve the first future day the HH:mm timeslot is free",
		Args:  exactArgs(1, "expecting time (HH:mm)"),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := domain.ParseTimeOfDay(args[0])
			if err != nil {
				return fmt.Errorf("invalid time %q: expecting HH:mm", args[0])
			}
			return runWithEngine(cmd, func(ctx context.Context, eng *booking.Engine) booking.Result {
				return eng.KeepTimeslot(ctx, start)
			})
		},
	}
}

func exactArgs(n int, hint string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("incorrect number of arguments for %s: %s", cmd.Name(), hint)
		}
		return nil
	}
}
