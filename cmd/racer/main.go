// racer is a terminal arithmetic racing game: steer into the lane whose
// number answers the sum before the options reach your car.
//
// Usage:
//
//	racer play              - Play in this terminal
//	racer serve             - Start SSH server for remote play
//	racer review            - Review the problems you missed
//	racer config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible problems
//	--config <path>   - Load a custom racer.yaml
//	--journal <path>  - Set journal path (default: ~/.racer/journal.db)
//	--log <path>      - Write logs to a file
//	--debug           - Log every round
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-racer/internal/journal"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagJournal string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "racer",
	Short: "Math Racer - race through sums in your terminal",
	Long: `Math Racer shows an addition problem and three answers falling down
three lanes. Steer your car into the lane with the right answer before
the answers reach it. One wrong answer ends the run.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  review   - Review the problems you missed
  config   - Print the default configuration

Examples:
  racer play
  racer play --seed 42
  racer serve --ssh :2222
  racer review --plain`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom racer.yaml")
	rootCmd.PersistentFlags().StringVar(&flagJournal, "journal", journal.DefaultPath, "Path to round journal database (empty disables it)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(configCmd)
}
