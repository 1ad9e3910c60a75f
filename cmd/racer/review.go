package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/math-racer/internal/journal"
	"github.com/vovakirdan/math-racer/internal/platform/tui"
)

var (
	flagPlain bool
	flagLimit int
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review the problems you missed",
	Long: `Show the round journal: the most recent misses and the problems
you miss most often.

Examples:
  racer review
  racer review --plain
  racer review --plain --limit 5`,
	Args: cobra.NoArgs,
	Run:  runReview,
}

func init() {
	reviewCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive view")
	reviewCmd.Flags().IntVar(&flagLimit, "limit", 10, "Maximum rows per list")
}

func runReview(_ *cobra.Command, _ []string) {
	if flagJournal == "" {
		fmt.Fprintln(os.Stderr, "Error: no journal path given")
		os.Exit(1)
	}

	store, err := journal.Open(flagJournal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening round journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		err = printReview(store, flagLimit)
	} else {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		err = tui.RunReview(store, flagLimit, width, height)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printReview(store *journal.Store, limit int) error {
	misses, err := store.RecentMisses(limit)
	if err != nil {
		return err
	}
	stats, err := store.MissStats(limit)
	if err != nil {
		return err
	}

	fmt.Println("Recent misses")
	fmt.Println()
	if len(misses) == 0 {
		fmt.Println("No missed problems yet.")
		fmt.Println()
		fmt.Println("Play 'racer play' to build your history!")
		return nil
	}

	fmt.Printf("  %-10s  %-6s  %-6s  %s\n", "Problem", "Answer", "Chose", "Date")
	fmt.Printf("  %-10s  %-6s  %-6s  %s\n", "-------", "------", "-----", "----")
	for _, r := range misses {
		fmt.Printf("  %-10s  %-6d  %-6d  %s\n",
			fmt.Sprintf("%d + %d", r.Num1, r.Num2), r.Answer, r.Chosen,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Most missed")
	fmt.Println()
	fmt.Printf("  %-10s  %-6s  %-8s  %s\n", "Problem", "Misses", "Attempts", "Rate")
	fmt.Printf("  %-10s  %-6s  %-8s  %s\n", "-------", "------", "--------", "----")
	for _, s := range stats {
		fmt.Printf("  %-10s  %-6d  %-8d  %.0f%%\n",
			fmt.Sprintf("%d + %d", s.Num1, s.Num2), s.Misses, s.Attempts, s.MissRate()*100)
	}

	if total, err := store.Count(); err == nil {
		fmt.Println()
		fmt.Printf("Rounds played: %d\n", total)
	}
	return nil
}
