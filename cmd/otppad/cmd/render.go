package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/TanGrumser/OTP/screen"
)

var renderCmd = &cobra.Command{
	Use:   "render <challenge>",
	Short: "composite a challenge at an offset and write a PNG",
	Long: `render rebuilds the puzzle from a challenge file, lays the mask at
the given offset and writes the composited view. At the solution offset
the picture appears; everywhere else the view stays noise.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	f := renderCmd.Flags()
	f.String("at", "0,0", "mask offset in cells, as x,y")
	f.String("image", "", "raster file the challenge was generated with")
	f.StringP("out", "o", "view.png", "output PNG")
	f.Bool("border", true, "darken cell edges in the output")
	f.Bool("compare", false, "render the encrypted grid beside the view")
}

func runRender(cmd *cobra.Command, args []string) error {
	imagePath, _ := cmd.Flags().GetString("image")
	session, ch, err := loadChallengeSession(args[0], imagePath)
	if err != nil {
		return err
	}

	at, _ := cmd.Flags().GetString("at")
	off, err := parseOffset(at)
	if err != nil {
		return err
	}

	border, _ := cmd.Flags().GetBool("border")
	r := screen.Renderer{CellSize: ch.Config.CellSize, Border: border}
	view := session.ViewAt(off)

	out, _ := cmd.Flags().GetString("out")
	if compare, _ := cmd.Flags().GetBool("compare"); compare {
		err = writePNGFile(out, r.SideBySide(session.Encrypted(), view))
	} else {
		err = writeGrid(r, view, out)
	}
	if err != nil {
		return err
	}

	if off == ch.Config.Solution {
		color.Green("wrote %s at the solution offset", out)
	} else {
		color.Yellow("wrote %s at %d,%d", out, off.X, off.Y)
	}
	return nil
}
