package cmd

import (
	"fmt"

	"github.com/go-drift/imageview/pkg/imageview"
	"github.com/go-drift/imageview/pkg/layout"
)

func init() {
	RegisterCommand(&Command{
		Name:  "corners",
		Short: "Show resolved corners and borders",
		Long: `Show how a scene's corner radii and border edges resolve.

Logical start/end values depend on the layout direction, so the resolved
corners and edges are printed for both ltr and rtl. Values are in
device-independent units.

Flags:
  -scene FILE    Scene file to inspect (required)
  -config DIR    Directory holding imageview.yaml (default: working directory)`,
		Usage: "imageview corners -scene FILE [-config DIR]",
		Run:   runCorners,
	})
}

func runCorners(args []string) error {
	opts, err := parseSceneOptions(args)
	if err != nil {
		return err
	}
	sv, err := loadSceneView(opts)
	if err != nil {
		return err
	}
	printCorners(sv.view)
	return nil
}

func printCorners(view *imageview.Surface) {
	resolver := view.Resolver()
	restore := resolver.Direction()
	defer resolver.SetDirection(restore)

	for _, dir := range []layout.TextDirection{layout.TextDirectionLTR, layout.TextDirectionRTL} {
		resolver.SetDirection(dir)
		c := resolver.BorderRadii()
		fmt.Fprintf(stdout, "%s  radii    topLeft=%g topRight=%g bottomRight=%g bottomLeft=%g equal=%t\n",
			dir, c[0], c[1], c[2], c[3], resolver.HasEqualCorners())
		if compositor := view.Compositor(); compositor != nil {
			w := compositor.Widths(dir)
			colors := compositor.Colors(dir)
			fmt.Fprintf(stdout, "%s  borders  left=%g/%s top=%g/%s right=%g/%s bottom=%g/%s\n",
				dir, w.Left, colors[0].Hex(), w.Top, colors[1].Hex(), w.Right, colors[2].Hex(), w.Bottom, colors[3].Hex())
		}
	}
	fmt.Fprintf(stdout, "background %s (requested %s) elevation=%g\n",
		view.EffectiveBackgroundColor().Hex(), view.BackgroundColor().Hex(), view.Elevation())
}
