package main

import (
	"github.com/calebasbridge/personal-finance-app-sub001/cmd"
)

func main() {
	cmd.Execute()
}
