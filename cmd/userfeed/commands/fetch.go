package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"userfeed/internal/state"
)

func fetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the user list once and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := withSignal(cmd.Context())
			defer stop()

			sc := container.State
			done := make(chan state.UsersState, 1)
			unsub := sc.Subscribe(func(s state.UsersState) {
				if s.Loading {
					return
				}
				select {
				case done <- s:
				default:
				}
			})
			defer unsub()

			sc.Load()

			select {
			case s := <-done:
				printState(cmd, s)
				if s.ErrorMessage != "" {
					return errors.New(s.ErrorMessage)
				}
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	}
}

func printState(cmd *cobra.Command, s state.UsersState) {
	out := cmd.OutOrStdout()
	if s.ErrorMessage != "" {
		fmt.Fprintln(out, s.ErrorMessage)
		return
	}
	if len(s.Users) == 0 {
		fmt.Fprintln(out, "no users")
		return
	}
	for _, u := range s.Users {
		fmt.Fprintf(out, "%-8d %-30s %s\n", u.ID, u.Name, u.Email)
	}
}
