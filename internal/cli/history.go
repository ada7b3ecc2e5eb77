package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube/internal/app/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved scrambles and solves",
	RunE:  runHistory,
}

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 10, "Maximum entries per section")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if verbose {
		schema, err := db.CurrentVersion()
		if err != nil {
			return err
		}
		fmt.Println(statusStyle.Render(fmt.Sprintf("Database %s (schema v%d)", db.Path(), schema)))
		fmt.Println()
	}

	scrambles, err := storage.NewScrambleRepository(db).List(historyLimit)
	if err != nil {
		return err
	}
	solves, err := storage.NewSolveRepository(db).List(historyLimit)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Scrambles"))
	if len(scrambles) == 0 {
		fmt.Println(statusStyle.Render("  none"))
	}
	for _, rec := range scrambles {
		fmt.Printf("  %s  %dx%d  %s\n",
			rec.CreatedAt.Local().Format(time.DateTime), rec.CubeSize, rec.CubeSize,
			moveStyle.Render(rec.Notation))
	}

	fmt.Println()
	fmt.Println(titleStyle.Render("Solves"))
	if len(solves) == 0 {
		fmt.Println(statusStyle.Render("  none"))
	}
	for _, rec := range solves {
		fmt.Printf("  %s  %dx%d  %d moves in %dms  %s\n",
			rec.CreatedAt.Local().Format(time.DateTime), rec.CubeSize, rec.CubeSize,
			rec.MoveCount, rec.DurationMs, statusStyle.Render(rec.Method))
	}

	return nil
}
