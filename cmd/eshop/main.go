package main

import "eshop-fixtures/internal/cmd"

func main() {
	cmd.Execute()
}
