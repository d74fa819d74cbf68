package commands

import (
	"time"

	"github.com/spf13/cobra"

	"userfeed/internal/state"
)

func watchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reload the user list on an interval and print every outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval <= 0 {
				interval = time.Duration(cfg.Watch.IntervalSeconds) * time.Second
			}

			ctx, stop := withSignal(cmd.Context())
			defer stop()

			sc := container.State
			updates := make(chan state.UsersState, 16)
			unsub := sc.Subscribe(func(s state.UsersState) {
				select {
				case updates <- s:
				default:
				}
			})
			defer unsub()

			sc.Load()

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					sc.Load()
				case s := <-updates:
					if !s.Loading {
						printState(cmd, s)
					}
				}
			}
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "reload interval (default from WATCH_INTERVAL_SECONDS)")
	return cmd
}
