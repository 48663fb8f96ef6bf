package main

import (
	cmd "github.com/prasetya/naskah/cmd/naskah"
)

func main() {
	cmd.Execute()
}
