package main

import "github.com/TanGrumser/OTP/cmd/otppad/cmd"

func main() {
	cmd.Execute()
}
