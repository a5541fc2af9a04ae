package main

import "github.com/nori-stack/docdb/cmd"

func main() {
	cmd.Execute()
}
