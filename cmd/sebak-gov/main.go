package main

import (
	"boscoin.io/sebak-gov/cmd/sebak-gov/cmd"
)

func main() {
	cmd.Execute()
}
