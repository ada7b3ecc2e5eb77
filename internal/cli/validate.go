package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a serialized cube state",
	Long: `Validate a cube state stored as JSON.

Reads from the given file, or from stdin when no file is given. Checks that
the document decodes and that every color appears exactly size*size times.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) > 0 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}

	cube, err := nxcube.FromJSON(data)
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Invalid: %v", err)))
		os.Exit(1)
	}
	if err := cube.Validate(); err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Invalid: %v", err)))
		os.Exit(1)
	}

	fmt.Printf("Valid %dx%d cube state", cube.Size(), cube.Size())
	if cube.IsSolved() {
		fmt.Print(" (solved)")
	}
	fmt.Println()
	return nil
}
