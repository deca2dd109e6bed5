/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

*/
package main

import (
	"github.com/golang/glog"
	"github.com/kikimo/toadjacency/cmd/generate/cmd"
)

func main() {
	defer glog.Flush()

	cmd.Execute()
}
