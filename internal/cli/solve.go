package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/app/storage"
	"github.com/SeamusWaldron/nxcube/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube",
	Long: `Solve a cube scrambled by the given move sequence.

The solving method depends on cube size:
  2x2   depth-first search over the R, U and F faces
  3x3   Kociemba two-phase search
  4x4+  reduction: centers, edge pairing, then parity fixes

Use --last to solve the most recent scramble saved with 'cubectl scramble --save'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

var (
	solveSize int
	solveLast bool
	solveSave bool
	solveFile string
)

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVarP(&solveSize, "size", "n", 3, "Cube size (2-20)")
	solveCmd.Flags().BoolVar(&solveLast, "last", false, "Solve the last saved scramble")
	solveCmd.Flags().BoolVar(&solveSave, "save", false, "Save the solve to the database")
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "Load the cube state from a JSON file")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cube, scrambleID, scramble, err := loadSolveTarget(args)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Solving %dx%d cube", cube.Size(), cube.Size())))
	fmt.Println()
	fmt.Println(renderCube(cube))

	sol, err := solveCube(cube, scramble)
	if err != nil {
		return err
	}

	for i, step := range sol.Steps {
		fmt.Printf("%s %s\n", stepStyle.Render(fmt.Sprintf("Step %d:", i+1)), step.Description)
		if len(step.Moves) > 0 {
			fmt.Printf("  %s\n", moveStyle.Render(step.Notation()))
		}
		if verbose && step.Explanation != "" {
			fmt.Printf("  %s\n", statusStyle.Render(step.Explanation))
		}
	}
	fmt.Println()
	fmt.Println(sol.Summary())

	if solveSave {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		id, err := storage.NewSolveRepository(db).Create(
			cube.Size(), scrambleID, sol.Method,
			sol.StepCount(), sol.MoveCount(), sol.Duration.Milliseconds(), sol.Notation(),
		)
		if err != nil {
			return err
		}
		fmt.Println(statusStyle.Render("Saved solve " + id))
	}

	return nil
}

// loadSolveTarget builds the cube to solve from --last, --file, or a
// scramble argument. It returns the linked scramble ID (if any) and the
// scramble moves when they are known.
func loadSolveTarget(args []string) (*nxcube.Cube, string, []nxcube.Move, error) {
	if solveLast {
		db, err := openDB()
		if err != nil {
			return nil, "", nil, err
		}
		defer db.Close()

		rec, err := storage.NewScrambleRepository(db).GetLast()
		if err != nil {
			return nil, "", nil, err
		}
		if rec == nil {
			return nil, "", nil, fmt.Errorf("no saved scrambles; run 'cubectl scramble --save' first")
		}
		cube, err := nxcube.FromJSON([]byte(rec.StateJSON))
		if err != nil {
			return nil, "", nil, err
		}
		moves, err := nxcube.ParseAlgorithm(rec.Notation)
		if err != nil {
			return nil, "", nil, err
		}
		return cube, rec.ScrambleID, moves, nil
	}

	if solveFile != "" {
		data, err := os.ReadFile(solveFile)
		if err != nil {
			return nil, "", nil, err
		}
		cube, err := nxcube.FromJSON(data)
		if err != nil {
			return nil, "", nil, err
		}
		return cube, "", nil, nil
	}

	cube, err := nxcube.New(solveSize)
	if err != nil {
		return nil, "", nil, err
	}
	var moves []nxcube.Move
	if len(args) > 0 {
		moves, err = nxcube.ParseAlgorithm(args[0])
		if err != nil {
			return nil, "", nil, err
		}
		if err := cube.ApplyMoves(moves); err != nil {
			return nil, "", nil, err
		}
	}
	return cube, "", moves, nil
}

// solveCube dispatches to the size-appropriate solver.
func solveCube(cube *nxcube.Cube, scramble []nxcube.Move) (*solver.Solution, error) {
	switch size := cube.Size(); {
	case size == 2:
		return solver.Solve2x2(cube)
	case size == 3:
		return solve3x3(cube, scramble)
	default:
		return solveBig(cube)
	}
}

// solve3x3 runs the two-phase solver and falls back to inverting the
// scramble when it is known and the search fails.
func solve3x3(cube *nxcube.Cube, scramble []nxcube.Move) (*solver.Solution, error) {
	sol, err := solver.Solve3x3(cube)
	if err == nil {
		return sol, nil
	}
	if len(scramble) == 0 {
		return nil, err
	}
	return solver.Solve3x3With(cube, &solver.ReverseScramble{Scramble: scramble})
}

// solveBig runs the reduction pipeline on a 4x4+ cube: centers, edges, then
// parity fixes, accumulated into one solution.
func solveBig(cube *nxcube.Cube) (*solver.Solution, error) {
	work := cube.Clone()

	centers, err := solver.SolveCenters(work)
	if err != nil {
		return nil, err
	}
	if err := work.ApplyMoves(centers.AllMoves()); err != nil {
		return nil, err
	}

	edges, err := solver.SolveEdges(work)
	if err != nil {
		return nil, err
	}
	if err := work.ApplyMoves(edges.AllMoves()); err != nil {
		return nil, err
	}

	parity, err := solver.ResolveParity(work)
	if err != nil {
		return nil, err
	}

	combined := &solver.Solution{
		Steps:    append(append(centers.Steps, edges.Steps...), parity.Steps...),
		Duration: centers.Duration + edges.Duration + parity.Duration,
		Method:   "4x4+ Reduction Method",
	}
	return combined, nil
}
