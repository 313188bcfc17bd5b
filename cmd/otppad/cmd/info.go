package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	otp "github.com/TanGrumser/OTP"
)

var infoCmd = &cobra.Command{
	Use:   "info <challenge>",
	Short: "print the fields of a challenge file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().Bool("reveal", false, "also print the solution offset")
}

func runInfo(cmd *cobra.Command, args []string) error {
	ch, err := otp.LoadChallenge(args[0])
	if err != nil {
		return err
	}
	cfg := ch.Config

	color.Cyan("%s", args[0])
	fmt.Printf("  seed       %d\n", cfg.Seed)
	fmt.Printf("  strategy   %s\n", cfg.Strategy)
	fmt.Printf("  image      %dx%d cells\n", cfg.ImageWidth, cfg.ImageHeight)
	fmt.Printf("  mask       %dx%d cells\n", cfg.MaskWidth, cfg.MaskHeight)
	fmt.Printf("  cell size  %dpx\n", cfg.CellSize)
	fmt.Printf("  margin     %d\n", cfg.Margin)
	if reveal, _ := cmd.Flags().GetBool("reveal"); reveal {
		fmt.Printf("  solution   %d,%d\n", cfg.Solution.X, cfg.Solution.Y)
	}
	return nil
}
