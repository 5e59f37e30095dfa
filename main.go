package main

import "github.com/Preetu-Sharma/k8s-yaml-validator/cmd"

func main() {
	cmd.Execute()
}
