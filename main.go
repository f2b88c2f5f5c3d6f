package main

import "portfolioData/cmd"

func main() {
	cmd.Execute()
}
