package cmd

import (
	"fmt"

	"github.com/go-drift/imageview/pkg/imageview"
	"github.com/go-drift/imageview/pkg/props"
)

func init() {
	RegisterCommand(&Command{
		Name:  "props",
		Short: "List supported view properties",
		Long: `List the property names accepted in a scene's props section.

Lengths are numbers in device-independent units; negative lengths are
ignored. Colors are ARGB numbers, "#RRGGBB", "#AARRGGBB" or color keywords.
resizeMode is one of cover, contain, stretch, center or repeat. source is a
map with uri and optional width, height and scale.`,
		Usage: "imageview props",
		Run:   runProps,
	})
}

func runProps(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("props takes no arguments")
	}
	for _, name := range props.NewManager(imageview.Options{}).Names() {
		fmt.Fprintln(stdout, name)
	}
	return nil
}
