// cubectl - CLI toolkit for scrambling, solving and inspecting NxN cubes.
package main

import "github.com/SeamusWaldron/nxcube/internal/cli"

func main() {
	cli.Execute()
}
