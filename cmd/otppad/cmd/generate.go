package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	otp "github.com/TanGrumser/OTP"
	"github.com/TanGrumser/OTP/grid"
	"github.com/TanGrumser/OTP/screen"
	"github.com/TanGrumser/OTP/synth"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "create a challenge file and its rendered grids",
	Long: `generate builds a puzzle from the given seed and geometry, writes it
as a challenge file and renders mask.png, encrypted.png and preview.png
(the mask resting at offset 0,0) next to it. With --image the picture is
read from a raster file instead of the built-in demo image; anyone
solving the puzzle then needs the same file.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	def := otp.DefaultConfig()
	f := generateCmd.Flags()
	f.Uint32("seed", def.Seed, "mask generator seed")
	f.String("strategy", def.Strategy.String(), "mask strategy: uniform or coherent")
	f.Int("image-width", def.ImageWidth, "picture width in cells")
	f.Int("image-height", def.ImageHeight, "picture height in cells")
	f.Int("mask-width", def.MaskWidth, "mask width in cells")
	f.Int("mask-height", def.MaskHeight, "mask height in cells")
	f.Int("cell-size", def.CellSize, "cell edge length in pixels")
	f.String("solution", fmt.Sprintf("%d,%d", def.Solution.X, def.Solution.Y), "solution offset in cells, as x,y")
	f.Int("margin", def.Margin, "spare mask cells beyond the image at the solution")
	f.String("image", "", "raster file to use as the picture")
	f.String("fill", "", "fill the picture with one hex color, e.g. #c86432")
	f.StringP("out", "o", "challenge.otpc", "challenge file to write")
	f.Bool("reveal", false, "also render solved.png and compare.png")

	for _, name := range []string{
		"seed", "strategy", "image-width", "image-height",
		"mask-width", "mask-height", "cell-size", "solution", "margin",
	} {
		viper.BindPFlag(name, f.Lookup(name))
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	strategy, err := synth.ParseStrategy(viper.GetString("strategy"))
	if err != nil {
		return err
	}
	solution, err := parseOffset(viper.GetString("solution"))
	if err != nil {
		return err
	}

	cfg := otp.Config{
		Seed:        uint32(viper.GetInt64("seed")),
		ImageWidth:  viper.GetInt("image-width"),
		ImageHeight: viper.GetInt("image-height"),
		MaskWidth:   viper.GetInt("mask-width"),
		MaskHeight:  viper.GetInt("mask-height"),
		CellSize:    viper.GetInt("cell-size"),
		Solution:    solution,
		Margin:      viper.GetInt("margin"),
		Strategy:    strategy,
	}

	imagePath, _ := cmd.Flags().GetString("image")
	fill, _ := cmd.Flags().GetString("fill")
	ch := otp.Challenge{Config: cfg}
	var session *otp.Session
	switch {
	case imagePath != "":
		src, ierr := synth.IngestFile(imagePath, cfg.ImageWidth, cfg.ImageHeight)
		if ierr != nil {
			return ierr
		}
		session, err = ch.SessionWith(src)
	case fill != "":
		c, perr := grid.ParseColor(fill)
		if perr != nil {
			return perr
		}
		session, err = ch.SessionWith(grid.NewUniform(cfg.ImageWidth, cfg.ImageHeight, c))
	default:
		session, err = ch.Session()
	}
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	if err := ch.Save(out); err != nil {
		return err
	}

	dir := filepath.Dir(out)
	r := screen.Renderer{CellSize: cfg.CellSize, Border: true}
	if err := writeGrid(r, session.Mask(), filepath.Join(dir, "mask.png")); err != nil {
		return err
	}
	if err := writeGrid(r, session.Encrypted(), filepath.Join(dir, "encrypted.png")); err != nil {
		return err
	}
	if err := writeGrid(r, session.View(), filepath.Join(dir, "preview.png")); err != nil {
		return err
	}

	if reveal, _ := cmd.Flags().GetBool("reveal"); reveal {
		solved := session.ViewAt(cfg.Solution)
		if err := writeGrid(r, solved, filepath.Join(dir, "solved.png")); err != nil {
			return err
		}
		compare := r.SideBySide(session.Encrypted(), solved)
		if err := writePNGFile(filepath.Join(dir, "compare.png"), compare); err != nil {
			return err
		}
	}

	color.Green("wrote %s (seed %d, %s mask, solution %d,%d)",
		out, cfg.Seed, cfg.Strategy, cfg.Solution.X, cfg.Solution.Y)
	return nil
}
