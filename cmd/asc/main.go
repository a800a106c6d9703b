package main

import "ascend/cmd/asc/root"

func main() {
	root.Execute()
}
