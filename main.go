package main

import "diskpie/cmd"

func main() {
	cmd.Execute()
}
