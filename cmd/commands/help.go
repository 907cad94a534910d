package commands

import "fmt"

const usage = `assetgate %s

usage:
  %s run <config.yml>      serve the asset gateway
  %s events <config.yml>   follow asset registration events
  %s version               print the version
  %s help                  print this message
`

func HandleHelp(args []string) {
	name := "assetgate"
	if len(args) > 0 {
		name = args[0]
	}

	fmt.Printf(usage, versionString(), name, name, name, name) //nolint
}
