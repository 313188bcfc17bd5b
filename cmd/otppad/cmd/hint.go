package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/TanGrumser/OTP/tracker"
)

var hintCmd = &cobra.Command{
	Use:   "hint <challenge>",
	Short: "point from an offset toward the solution",
	Long: `hint reports which way the solution lies from the given mask offset,
as a compass arrow plus a proximity word. At the solution it confirms
the alignment instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runHint,
}

func init() {
	rootCmd.AddCommand(hintCmd)
	hintCmd.Flags().String("at", "0,0", "mask offset in cells, as x,y")
}

func runHint(cmd *cobra.Command, args []string) error {
	session, _, err := loadChallengeSession(args[0], "")
	if err != nil {
		return err
	}

	at, _ := cmd.Flags().GetString("at")
	off, err := parseOffset(at)
	if err != nil {
		return err
	}

	hint := session.HintAt(off)
	if hint == tracker.SolvedHint {
		color.Green(hint)
	} else {
		color.Yellow(hint)
	}
	return nil
}
