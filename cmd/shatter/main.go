package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/shatter"
	"github.com/osuushi/shatter/config"
	"github.com/osuushi/shatter/dbg"
	"github.com/osuushi/shatter/geom"
	"github.com/osuushi/shatter/outline"
	"github.com/osuushi/shatter/partition"
	"github.com/osuushi/shatter/sprite"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Shatter outlines or sprites and draw the fragments to a PNG.
//
// Outlines are read from SVG files (every <polygon> element) or from text
// files with one "x y" point per line and a blank line between polygons. A
// sprite PNG can be given instead, or as well, in which case the outline is
// in the sprite's local units and only opaque texels receive interior points.
var (
	app     = kingpin.New("shatter", "Cut 2D sprites into polygonal fragments.")
	verbose = app.Flag("verbose", "Log debug output.").Short('v').Bool()

	split        = app.Command("split", "Shatter outlines or a sprite and draw the fragments.")
	outlinePath  = split.Flag("outline", "SVG or point list file with the outline.").Short('i').ExistingFile()
	spritePath   = split.Flag("sprite", "Sprite PNG.").Short('s').ExistingFile()
	ppu          = split.Flag("ppu", "Texels per local unit for the sprite.").Default("100").Float64()
	settingsPath = split.Flag("config", "YAML settings file.").Short('c').ExistingFile()
	name         = split.Flag("name", "Explodable to take settings for.").Default("").String()
	strategy     = split.Flag("strategy", "Partition strategy (triangle or voronoi).").Default("").String()
	extraPoints  = split.Flag("extra-points", "Random interior points per partition.").Default("-1").Int()
	subshatter   = split.Flag("subshatter", "Subshatter steps.").Default("-1").Int()
	seed         = split.Flag("seed", "Sampler seed.").Action(markSeedSet).Int64()
	seedSet      bool
	output       = split.Flag("output", "PNG to draw the fragments to.").Short('o').Default("fragments.png").String()
	scale        = split.Flag("scale", "Pixels per unit in the drawing.").Default("40").Float64()
	show         = split.Flag("show", "Print the drawing to the terminal (iTerm only).").Bool()

	defaults = app.Command("defaults", "Print a settings file with the default values.")
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	switch command {
	case split.FullCommand():
		app.FatalIfError(runSplit(os.Stdout), "split")
	case defaults.FullCommand():
		file := &config.File{Defaults: config.Default()}
		app.FatalIfError(file.Write(os.Stdout), "defaults")
	}
}

func runSplit(out io.Writer) error {
	settings, err := loadSettings(*settingsPath, *name)
	if err != nil {
		return err
	}
	var seedOverride *int64
	if seedSet {
		seedOverride = seed
	}
	if err := applyOverrides(&settings, *strategy, *extraPoints, *subshatter, seedOverride); err != nil {
		return err
	}

	var outlines []geom.Polygon
	if *outlinePath != "" {
		if outlines, err = readOutlines(*outlinePath); err != nil {
			return err
		}
	}

	var polygons []geom.Polygon
	if *spritePath != "" {
		s, err := sprite.LoadPNG(*spritePath, *ppu)
		if err != nil {
			return err
		}
		if len(outlines) > 0 {
			s.Outline = outlines[0]
		}
		fragments, err := shatter.Shatter(s, settings)
		if err != nil {
			return err
		}
		for _, f := range fragments {
			polygons = append(polygons, f.Polygon)
			fmt.Fprintf(out, "%s  area %.4f  mass %.4f  triangles %d\n",
				dbg.Colorize(f.Index, fmt.Sprintf("%3d %s", f.Index, dbg.Name(f))),
				f.Area(), f.Mass, len(f.Mesh.Triangles)/3)
		}
	} else {
		if len(outlines) == 0 {
			return errors.New("need an outline or a sprite")
		}
		for _, o := range outlines {
			cut, err := shatter.Partition(o, settings)
			if err != nil {
				return err
			}
			polygons = append(polygons, cut...)
		}
		for i, poly := range polygons {
			fmt.Fprintf(out, "%s  area %.4f  points %d\n",
				dbg.Colorize(i, fmt.Sprintf("%3d", i)), geom.Area(poly), len(poly.Points))
		}
	}

	fmt.Fprintf(out, "%s fragments with %s strategy\n",
		aurora.Bold(len(polygons)), aurora.Cyan(settings.Strategy))
	slog.Debug("drawing fragments", "path", *output)
	if err := dbg.SavePNG(*output, polygons, *scale); err != nil {
		return err
	}
	if *show {
		return dbg.Show(polygons, *scale)
	}
	return nil
}

func loadSettings(path, name string) (config.Explodable, error) {
	if path == "" {
		return config.Default(), nil
	}
	file, err := config.LoadFile(path)
	if err != nil {
		return config.Explodable{}, errors.Wrapf(err, "settings %q", path)
	}
	return file.Lookup(name), nil
}

func markSeedSet(*kingpin.ParseContext) error {
	seedSet = true
	return nil
}

// Flags left at their defaults keep the values from the settings file. A nil
// seed was not given.
func applyOverrides(settings *config.Explodable, strategyName string, extra, steps int, seed *int64) error {
	if strategyName != "" {
		s, err := partition.ParseStrategy(strategyName)
		if err != nil {
			return err
		}
		settings.Strategy = s
	}
	if extra >= 0 {
		settings.ExtraPoints = extra
	}
	if steps >= 0 {
		settings.SubshatterSteps = steps
	}
	if seed != nil {
		settings.Seed = *seed
	}
	return settings.Validate()
}

func readOutlines(path string) ([]geom.Polygon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening outline")
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return outline.ReadSVG(f)
	}
	return outline.ReadPoints(f)
}
