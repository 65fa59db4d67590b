package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

// watchSettle is how long the model file must be quiet before a re-run.
// Editors usually write a file in several steps.
const watchSettle = 200 * time.Millisecond

var (
	watchInterval    time.Duration
	watchSave        bool
	watchSprinklered bool
	watchOverrides   string
)

var watchCmd = &cobra.Command{
	Use:   "watch <model>",
	Short: "Re-plan whenever the model file changes",
	Long: `Plans the model once, then watches the file and plans it again each time
it is written. Re-runs are spaced at least --interval apart.

Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 2*time.Second, "minimum time between re-runs")
	watchCmd.Flags().BoolVar(&watchSave, "save", false, "save every run to history")
	watchCmd.Flags().BoolVar(&watchSprinklered, "sprinklered", false, "size for a sprinklered building")
	watchCmd.Flags().StringVar(&watchOverrides, "overrides", "", "extra override batch file to apply")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if planner == nil || modelLoader == nil {
		return errors.New("planner not configured")
	}

	target, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[0], err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file rather than
	// write it in place, which drops a watch on the file itself.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", target, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	replan := func(ctx context.Context) error {
		result, model, err := planFile(ctx, target, watchOverrides, watchSprinklered)
		if err != nil {
			return err
		}
		if watchSave {
			if err := saveRun(ctx, target, result, model); err != nil {
				return err
			}
		}
		cmd.Printf("\n--- %s ---\n", time.Now().Format(time.TimeOnly))
		newReport(cmd.OutOrStdout()).run(result, false)
		return nil
	}

	if err := replan(ctx); err != nil {
		cmd.PrintErrf("Error: %v\n", err)
	}
	cmd.Printf("\nWatching %s (Ctrl+C to stop)\n", target)

	limiter := rate.NewLimiter(rate.Every(watchInterval), 1)
	return watchLoop(ctx, watcher.Events, watcher.Errors, target, watchSettle, limiter, replan,
		func(err error) { cmd.PrintErrf("Error: %v\n", err) })
}

// watchLoop calls onChange after target changes. A burst of events inside
// the settle window collapses into one call, and calls are spaced by the
// limiter. It returns when ctx is done or either channel closes.
func watchLoop(
	ctx context.Context,
	events <-chan fsnotify.Event,
	errs <-chan error,
	target string,
	settle time.Duration,
	limiter *rate.Limiter,
	onChange func(context.Context) error,
	onError func(error),
) error {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !isModelChange(ev, target) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(settle)
			} else {
				timer.Reset(settle)
			}
			fire = timer.C

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			onError(err)

		case <-fire:
			fire = nil
			if err := limiter.Wait(ctx); err != nil {
				return nil
			}
			if err := onChange(ctx); err != nil {
				onError(err)
			}
		}
	}
}

// isModelChange reports whether ev rewrote the target file.
func isModelChange(ev fsnotify.Event, target string) bool {
	if filepath.Clean(ev.Name) != target {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
