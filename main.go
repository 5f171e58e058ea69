package main

import (
	_ "time/tzdata"

	"github.com/Tiliavir/paperdash/cmd"
)

func main() {
	cmd.Execute()
}
