// Command passhash prompts for a password on the terminal (without echo)
// and prints its Argon2id PHC hash, for seeding credentials out of band.
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/dkravchenko/identity-service/internal/server/auth"
	"github.com/dkravchenko/identity-service/internal/server/config"
)

func main() {

	cfg := config.LoadConfig()

	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		log.Fatalf("reading password: %v", err)
	}

	hasher := auth.NewHasher(auth.Argon2idParams{
		Time:      cfg.ArgonTime,
		MemoryKiB: cfg.ArgonMemoryKiB,
		Threads:   cfg.ArgonThreads,
		SaltLen:   16,
		KeyLen:    32,
	})

	hash, err := hasher.Hash(string(password))
	if err != nil {
		log.Fatalf("hashing password: %v", err)
	}

	fmt.Println(hash)
}
