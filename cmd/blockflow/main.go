package main

import (
	"fmt"
	"os"

	_ "github.com/brimdata/blockflow/cmd/blockflow/distinct"
	"github.com/brimdata/blockflow/cmd/blockflow/root"
	_ "github.com/brimdata/blockflow/cmd/blockflow/sql"
)

func main() {
	if err := root.Blockflow.Exec(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
