// Command rnray is the driving program: it decodes a scene document (or an
// animation manifest) and produces rendered frame(s). Scene composition is
// data, not code -- nothing here is compiled in -- and the CLI itself stays
// thin glue: it assembles a render, it does not implement one.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli"

	"github.com/brightlin/rnray/internal/config"
	"github.com/brightlin/rnray/internal/host"
	"github.com/brightlin/rnray/internal/object"
	"github.com/brightlin/rnray/internal/render"
	"github.com/brightlin/rnray/internal/screen"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	object.SetImageLoader(host.LoadImage)
}

func main() {
	app := cli.NewApp()
	app.Name = "rnray"
	app.Usage = "render Reissner-Nordstrom geodesic scenes"
	app.Commands = []cli.Command{
		{
			Name:      "render",
			Usage:     "render a single scene document",
			ArgsUsage: "<scene.json>",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "output, o", Value: "out.png"},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return fmt.Errorf("expected exactly one scene document")
				}
				return renderScene(c.Args().Get(0), c.String("output"))
			},
		},
		{
			Name:      "animate",
			Usage:     "render every frame of an animation manifest",
			ArgsUsage: "<manifest.yaml>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return fmt.Errorf("expected exactly one animation manifest")
				}
				return renderAnimation(c.Args().Get(0))
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("rnray failed")
	}
}

func renderScene(path, outputPath string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := config.DecodeDocument(f)
	if err != nil {
		return err
	}

	scr, rnd, err := build(doc)
	if err != nil {
		return err
	}

	cam, err := doc.Camera.Build(float64(doc.Width) / float64(doc.Height))
	if err != nil {
		return fmt.Errorf("building camera: %w", err)
	}

	log.Info().Str("scene", path).Int("width", doc.Width).Int("height", doc.Height).Msg("rendering")
	rnd.StartRender(&cam)
	rnd.StepRender(doc.Height)

	return saveFrame(scr, outputPath)
}

func renderAnimation(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	anim, err := config.LoadAnimation(f)
	if err != nil {
		return err
	}

	sceneFile, err := os.Open(anim.Scene)
	if err != nil {
		return fmt.Errorf("opening %s: %w", anim.Scene, err)
	}
	defer sceneFile.Close()

	doc, err := config.DecodeDocument(sceneFile)
	if err != nil {
		return err
	}

	scr, rnd, err := build(doc)
	if err != nil {
		return err
	}

	cam, err := doc.Camera.Build(float64(doc.Width) / float64(doc.Height))
	if err != nil {
		return fmt.Errorf("building camera: %w", err)
	}

	bar := progressbar.Default(int64(anim.Frames - anim.StartFrame))
	for i := anim.StartFrame; i < anim.Frames; i++ {
		cam.Pos.Z = anim.CameraPhiAt(i)
		scr.Clear()
		rnd.StartRender(&cam)
		rnd.StepRender(doc.Height)

		if err := host.SaveBMP(scr, anim.OutputPath(i)); err != nil {
			return err
		}
		_ = bar.Add(1)
	}
	log.Info().Int("frames", anim.Frames-anim.StartFrame).Msg("animation complete")
	return nil
}

// build assembles a Screen and Renderer from a decoded scene document.
func build(doc *config.Document) (*screen.Screen, *render.Renderer, error) {
	scr := screen.New(doc.Width, doc.Height)

	rnd := render.New(scr, doc.Engine.Build())
	if doc.MaxSteps > 0 {
		rnd.MaxSteps = doc.MaxSteps
	}
	rnd.AntiAlias = doc.AntiAlias

	for _, obj := range doc.Scene.Objects {
		rnd.AddObject(obj)
	}

	return scr, rnd, nil
}

func saveFrame(scr *screen.Screen, path string) error {
	if strings.HasSuffix(path, ".bmp") {
		return host.SaveBMP(scr, path)
	}
	return host.SavePNG(scr, path)
}
