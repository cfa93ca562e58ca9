package main

import "github.com/utakatalp/football-statistics/internal/cmd"

func main() {
	cmd.Execute()
}
