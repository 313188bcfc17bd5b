package cmd

import (
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	otp "github.com/TanGrumser/OTP"
	"github.com/TanGrumser/OTP/grid"
	"github.com/TanGrumser/OTP/screen"
	"github.com/TanGrumser/OTP/synth"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "otppad",
	Short: "generate and inspect one-time pad picture puzzles",
	Long: `otppad builds one-time pad picture puzzles: a source picture is
combined cell by cell with a pseudo-random mask, and the result only
becomes legible again when the mask is slid back to the secret offset.

A puzzle is stored as a small challenge file. Typical use:

	otppad generate -o puzzle.otpc
	otppad hint puzzle.otpc --at 0,0
	otppad render puzzle.otpc --at 16,16 -o view.png`,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./otppad.yaml)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("otppad")
	}
	viper.SetEnvPrefix("otppad")
	viper.AutomaticEnv()
	viper.ReadInConfig()
}

// loadChallengeSession opens a challenge file and builds its session. When
// imagePath is non-empty the picture is read from that file instead of the
// built-in demo image; it must match the challenge's image dimensions.
func loadChallengeSession(path, imagePath string) (*otp.Session, otp.Challenge, error) {
	ch, err := otp.LoadChallenge(path)
	if err != nil {
		return nil, otp.Challenge{}, err
	}
	if imagePath == "" {
		s, err := ch.Session()
		return s, ch, err
	}
	img, err := synth.IngestFile(imagePath, ch.Config.ImageWidth, ch.Config.ImageHeight)
	if err != nil {
		return nil, otp.Challenge{}, err
	}
	s, err := ch.SessionWith(img)
	return s, ch, err
}

// parseOffset reads "x,y" into an offset.
func parseOffset(s string) (grid.Offset, error) {
	var off grid.Offset
	if _, err := fmt.Sscanf(s, "%d,%d", &off.X, &off.Y); err != nil {
		return grid.Offset{}, fmt.Errorf("bad offset %q, want x,y", s)
	}
	return off, nil
}

func writePNGFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return screen.WritePNG(f, img)
}

func writeGrid(r screen.Renderer, g *grid.Grid, path string) error {
	return writePNGFile(path, r.Render(g))
}
