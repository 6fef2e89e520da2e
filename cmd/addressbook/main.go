package main

import (
	"fmt"
	"os"

	"gitlab.com/dirk.krummacker/addressbook/internal/cli"
)

// Usage example on the command line:
// > go run main.go exec edit n/Alex Yeoh p/91234567
// > DBHOST=localhost:3306 DBUSER=dirk DBPWD=bullo92 go run main.go repl
func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
