package main

import "github.com/cjwinchester/co-redistricting-applicants/cmd"

func main() {
	cmd.Execute()
}
