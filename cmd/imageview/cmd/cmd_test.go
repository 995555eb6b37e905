package cmd

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func writeSolidPNG(t *testing.T, path string, w, h int, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func rgba8(c color.Color) [4]uint32 {
	r, g, b, a := c.RGBA()
	return [4]uint32{r >> 8, g >> 8, b >> 8, a >> 8}
}

func TestPropsCommandListsNames(t *testing.T) {
	out := captureStdout(t)
	if err := run([]string{"props"}); err != nil {
		t.Fatalf("run(props) error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 27 {
		t.Errorf("listed %d props, want 27", len(lines))
	}
	if lines[0] != "backgroundColor" {
		t.Errorf("first prop = %q, want backgroundColor", lines[0])
	}
}

func TestUnknownCommand(t *testing.T) {
	captureStdout(t)
	if err := run([]string{"paint"}); err == nil {
		t.Error("run(paint) error = nil, want error")
	}
}

func TestVersion(t *testing.T) {
	out := captureStdout(t)
	if err := run([]string{"--version"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Errorf("version output = %q", out.String())
	}
}

func TestParseSceneOptions(t *testing.T) {
	opts, err := parseSceneOptions([]string{"-scene", "a.yaml", "-o=b.png", "--config", "/cfg"})
	if err != nil {
		t.Fatalf("parseSceneOptions() error = %v", err)
	}
	if opts.scene != "a.yaml" || opts.output != "b.png" || opts.configDir != "/cfg" {
		t.Errorf("opts = %+v", opts)
	}

	opts, err = parseSceneOptions([]string{"card.yaml"})
	if err != nil || opts.scene != "card.yaml" {
		t.Errorf("positional scene: opts = %+v, err = %v", opts, err)
	}

	for _, args := range [][]string{{}, {"-o"}, {"-scene", "a.yaml", "-x"}} {
		if _, err := parseSceneOptions(args); err == nil {
			t.Errorf("parseSceneOptions(%q) error = nil, want error", args)
		}
	}
}

func TestRenderScene(t *testing.T) {
	dir := t.TempDir()
	writeSolidPNG(t, filepath.Join(dir, "red.png"), 4, 4, color.RGBA{R: 255, A: 255})
	writeFile(t, filepath.Join(dir, "card.yaml"), `format: "1.0"
width: 20
height: 20
image: red.png
props:
  resizeMode: stretch
  borderWidth: 2
  borderColor: "#0000FF"
`)
	out := filepath.Join(dir, "card.png")
	captureStdout(t)

	err := run([]string{"render", "-scene", filepath.Join(dir, "card.yaml"), "-o", out, "-config", dir})
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	img := readPNG(t, out)
	if got := img.Bounds().Size(); got != image.Pt(20, 20) {
		t.Fatalf("output size = %v, want 20x20", got)
	}
	if got := rgba8(img.At(10, 10)); got != [4]uint32{255, 0, 0, 255} {
		t.Errorf("center pixel = %v, want opaque red", got)
	}
	if got := rgba8(img.At(0, 10)); got != [4]uint32{0, 0, 255, 255} {
		t.Errorf("border pixel = %v, want opaque blue", got)
	}
}

func TestRenderUsesConfigDensity(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "imageview.yaml"), "display:\n  density: 2\nrender:\n  background: \"#00FF00\"\n")
	writeFile(t, filepath.Join(dir, "empty.yaml"), "format: \"1\"\nwidth: 5\nheight: 3\n")
	out := filepath.Join(dir, "empty.png")
	captureStdout(t)

	if err := run([]string{"render", filepath.Join(dir, "empty.yaml"), "-config", dir}); err != nil {
		t.Fatalf("render error = %v", err)
	}
	img := readPNG(t, out)
	if got := img.Bounds().Size(); got != image.Pt(10, 6) {
		t.Errorf("output size = %v, want 10x6", got)
	}
	if got := rgba8(img.At(5, 3)); got != [4]uint32{0, 255, 0, 255} {
		t.Errorf("background pixel = %v, want opaque green", got)
	}
}

func TestRenderRejectsBadProps(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.yaml"), "format: \"1\"\nwidth: 5\nheight: 5\nprops:\n  resizeMode: fill\n")
	captureStdout(t)

	err := run([]string{"render", "-scene", filepath.Join(dir, "bad.yaml"), "-config", dir})
	if err == nil || !strings.Contains(err.Error(), "resizeMode") {
		t.Errorf("render error = %v, want resizeMode error", err)
	}
}

func TestCornersCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "corners.yaml"), `format: "1"
width: 10
height: 10
props:
  borderRadius: 4
  borderTopStartRadius: 10
  borderStartWidth: 3
  borderColor: red
`)
	out := captureStdout(t)

	if err := run([]string{"corners", "-scene", filepath.Join(dir, "corners.yaml"), "-config", dir}); err != nil {
		t.Fatalf("corners error = %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"ltr  radii    topLeft=10 topRight=4 bottomRight=4 bottomLeft=4 equal=false",
		"rtl  radii    topLeft=4 topRight=10 bottomRight=4 bottomLeft=4 equal=false",
		"ltr  borders  left=3/#FFFF0000 top=0/#FFFF0000 right=0/#FFFF0000 bottom=0/#FFFF0000",
		"rtl  borders  left=0/#FFFF0000 top=0/#FFFF0000 right=3/#FFFF0000 bottom=0/#FFFF0000",
		"background #00000000 (requested #00000000) elevation=0",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("corners output missing %q\n%s", want, got)
		}
	}
}
