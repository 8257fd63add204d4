package main

import (
	"log"

	"github.com/tpexpress/create-tpexpress/cli/cmd"
	"github.com/tpexpress/create-tpexpress/cli/util"
	"github.com/tpexpress/create-tpexpress/cli/version"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("%s", util.InternalError("Unhandled internal error: %s",
				version.GetVersion, r))
		}
	}()

	cmd.InitRoot()
	cmd.Execute()
}
