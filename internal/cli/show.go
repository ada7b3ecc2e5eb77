package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
)

var showCmd = &cobra.Command{
	Use:   "show [algorithm]",
	Short: "Display a cube state",
	Long: `Display a cube as an unfolded net.

With an algorithm argument the moves are applied to a solved cube first.
With --file the state is loaded from a JSON file instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

var (
	showSize int
	showFile string
	showJSON bool
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVarP(&showSize, "size", "n", 3, "Cube size (2-20)")
	showCmd.Flags().StringVarP(&showFile, "file", "f", "", "Load the cube state from a JSON file")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the state as JSON instead of a net")
}

func runShow(cmd *cobra.Command, args []string) error {
	cube, err := loadShowTarget(args)
	if err != nil {
		return err
	}

	if showJSON {
		data, err := cube.ToJSONIndent()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(renderCube(cube))
	if cube.IsSolved() {
		fmt.Println(statusStyle.Render("Solved"))
	}
	return nil
}

func loadShowTarget(args []string) (*nxcube.Cube, error) {
	if showFile != "" {
		data, err := os.ReadFile(showFile)
		if err != nil {
			return nil, err
		}
		return nxcube.FromJSON(data)
	}

	cube, err := nxcube.New(showSize)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		moves, err := nxcube.ParseAlgorithm(args[0])
		if err != nil {
			return nil, err
		}
		if err := cube.ApplyMoves(moves); err != nil {
			return nil, err
		}
	}
	return cube, nil
}
