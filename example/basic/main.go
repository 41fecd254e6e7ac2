// Package main demonstrates reading a password with hidden input.
package main

import (
	"fmt"
	"log"

	"github.com/passterm/passterm"
)

func main() {
	// Works interactively and with piped stdin alike:
	//
	//	./basic
	//	echo "hunter2" | ./basic
	if !passterm.IsTerminal(passterm.Stdin) {
		fmt.Println("stdin is redirected, reading the password transparently")
	}

	password, err := passterm.PromptSecret("Password: ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Read a %d-character password\n", len(password))

	name, err := passterm.PromptLineTTY("Your name: ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Hello, %s!\n", name)
}
