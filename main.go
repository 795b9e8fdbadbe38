/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package main

import (
	"caixa/cmd"
)

func main() {
	cmd.Execute()
}
