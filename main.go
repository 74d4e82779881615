package main

import "autismcare_backend/internals/cli"

func main() {
	cli.Execute()
}
