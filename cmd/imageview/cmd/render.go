package cmd

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/go-drift/imageview/cmd/imageview/internal/fileload"
	"github.com/go-drift/imageview/cmd/imageview/internal/scene"
	"github.com/go-drift/imageview/pkg/config"
	"github.com/go-drift/imageview/pkg/errors"
	"github.com/go-drift/imageview/pkg/graphics"
	"github.com/go-drift/imageview/pkg/imageview"
	"github.com/go-drift/imageview/pkg/layout"
	"github.com/go-drift/imageview/pkg/props"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a scene file to an image",
		Long: `Render the image view described by a scene file.

The output format follows the file extension: .png (default), .jpg/.jpeg,
.bmp or .tif/.tiff. The output is sized to the scene size multiplied by
display.density from imageview.yaml.

Flags:
  -scene FILE    Scene file to render (required)
  -o FILE        Output file (default: scene name with .png)
  -config DIR    Directory holding imageview.yaml (default: working directory)`,
		Usage: "imageview render -scene FILE [-o FILE] [-config DIR]",
		Run:   runRender,
	})
}

type sceneOptions struct {
	scene     string
	output    string
	configDir string
}

func parseSceneOptions(args []string) (sceneOptions, error) {
	var opts sceneOptions
	flags := []struct {
		dst   *string
		names []string
	}{
		{&opts.scene, []string{"-scene", "--scene"}},
		{&opts.output, []string{"-o", "--output"}},
		{&opts.configDir, []string{"-config", "--config"}},
	}

outer:
	for i := 0; i < len(args); i++ {
		for _, f := range flags {
			value, skip, ok, err := flagValue(args, i, f.names...)
			if err != nil {
				return opts, err
			}
			if ok {
				*f.dst = value
				i += skip
				continue outer
			}
		}
		if opts.scene == "" && !strings.HasPrefix(args[i], "-") {
			opts.scene = args[i]
			continue
		}
		return opts, fmt.Errorf("unknown flag %q", args[i])
	}
	if opts.scene == "" {
		return opts, fmt.Errorf("a scene file is required (-scene FILE)")
	}
	if opts.configDir == "" {
		dir, err := os.Getwd()
		if err != nil {
			return opts, err
		}
		opts.configDir = dir
	}
	return opts, nil
}

// sceneView is a view built from a scene file with its images loaded.
type sceneView struct {
	cfg   *config.Resolved
	scene *scene.Scene
	view  *imageview.Surface
}

func loadSceneView(opts sceneOptions) (*sceneView, error) {
	cfg, err := config.Resolve(opts.configDir)
	if err != nil {
		return nil, err
	}
	sc, err := scene.Load(opts.scene)
	if err != nil {
		return nil, err
	}

	loader := fileload.New(sc.Dir)
	manager := props.NewManager(cfg.ViewOptions(loader))
	view := manager.CreateView(nil)
	view.SetClipToOutline(cfg.ClipToOutline)
	view.SetBackgroundColor(cfg.Background)
	if err := manager.Update(view, sc.ViewProps()); err != nil {
		return nil, fmt.Errorf("scene %s: %w", opts.scene, err)
	}
	if n := loader.Flush(); n == 0 && view.Source() != nil {
		return nil, fmt.Errorf("scene %s: image %q could not be loaded", opts.scene, view.Source().URI)
	}
	return &sceneView{cfg: cfg, scene: sc, view: view}, nil
}

func runRender(args []string) error {
	opts, err := parseSceneOptions(args)
	if err != nil {
		return err
	}
	if opts.output == "" {
		opts.output = strings.TrimSuffix(opts.scene, filepath.Ext(opts.scene)) + ".png"
	}

	sv, err := loadSceneView(opts)
	if err != nil {
		return err
	}

	width, height := sv.scene.PixelSize(float64(sv.cfg.Density))
	canvas := graphics.NewRasterCanvasSize(width, height)
	sv.view.Paint(&layout.PaintContext{
		Canvas: canvas,
		Size:   graphics.Size{Width: float64(width), Height: float64(height)},
	})

	if err := save(canvas.Image(), opts.output); err != nil {
		return &errors.Error{Op: "cmd.render", Kind: errors.KindRender, Err: err}
	}
	errors.Logger().Debug("render: wrote image", slog.String("path", opts.output),
		slog.Int("width", width), slog.Int("height", height))
	fmt.Fprintf(stdout, "Wrote %s (%dx%d)\n", opts.output, width, height)
	return nil
}

// save encodes img with the format named by the file extension.
func save(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
