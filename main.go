package main

import "team-tracker.com/team-tracker/cmd"

func main() {
	cmd.Execute()
}
