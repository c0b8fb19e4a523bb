// Command zoo queries and operates a zoo described by a layout file.
package main

import "github.com/ngoguened/zoo/internal/cli"

func main() {
	cli.Execute()
}
