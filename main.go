package main

import "github.com/msarvaro/gastro-sub000/cmd"

func main() {
	cmd.Execute()
}
