// Package main demonstrates masked password entry.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/passterm/passterm"
)

func main() {
	password, err := passterm.ReadSecretMasked("Password: ")
	if err != nil {
		if errors.Is(err, passterm.ErrInterrupted) {
			fmt.Println("Cancelled")
			return
		}
		log.Fatal(err)
	}
	fmt.Printf("Read a %d-character password\n", len(password))
}
