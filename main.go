package main

import "github.com/EO-DataHub/eodhp-posts-filter/cmd"

func main() {
	cmd.Execute()
}
