package main

import "budgetd/cmd"

func main() {
	cmd.Execute()
}
