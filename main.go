package main

import (
	"fmt"
	"os"
	"os/user"

	"cslex/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the cslex REPL, %s!\n", currentUser.Username)
	repl.Start(os.Stdin)
}
