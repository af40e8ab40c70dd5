package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gonuts/commander"

	"github.com/gcelano/ST2022/app"
	"github.com/gcelano/ST2022/webapi"
)

var cmd = &commander.Command{
	UsageLine: os.Args[0] + " app|api",
	Short:     "predict cognate reflexes as a standalone app or as an api server",
}

func init() {
	cmd.Subcommands = append(app.AllCommands().Subcommands, webapi.AllCommands().Subcommands...)
}

func exit(err error) {
	fmt.Printf("**error**: %v\n", err)
	os.Exit(1)
}

func main() {
	if err := cmd.Dispatch(context.Background(), os.Args[1:]); err != nil {
		exit(err)
	}
}
