package main

import (
	"github.com/opensvc/sfclient/core/sfctl"
)

func main() {
	sfctl.Execute()
}
