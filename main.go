package main

import (
	"os"

	"github.com/zhengshuai-xiao/hd/cmd"
	"github.com/zhengshuai-xiao/hd/internal"
)

var logger = internal.GetLogger("hd_main")

func main() {
	err := cmd.Main(os.Args)
	if err != nil {
		logger.Fatal(err)
	}
}
