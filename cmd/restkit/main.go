// Command restkit runs the demo echo server and exercises the REST client
// against it.
package main

import "github.com/kbukum/restkit/internal/cli"

func main() {
	cli.Execute()
}
