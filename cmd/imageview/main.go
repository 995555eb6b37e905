// Command imageview renders and inspects image view scenes.
package main

import (
	"os"

	"github.com/go-drift/imageview/cmd/imageview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
