package config

import (
	"flag"
	"os"
	"time"

	"github.com/dkravchenko/identity-service/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-d string   PostgreSQL DSN
//	-s string   token HMAC secret key
//	-t int      session token validity, minutes
//	-m int      Argon2id memory cost, KiB
//	-i int      Argon2id time cost (iterations)
//	-p int      Argon2id parallelism
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. The token
// validity flag is accepted as an integer in minutes and converted to a
// time.Duration.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-m", "-i", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidityDuration := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token_validity_duration (in minutes)")
	argonMemory := fs.Int("m", int(config.ArgonMemoryKiB), "argon2id memory cost (KiB)")
	argonTime := fs.Int("i", int(config.ArgonTime), "argon2id time cost (iterations)")
	argonThreads := fs.Int("p", int(config.ArgonThreads), "argon2id parallelism")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidityDuration) * time.Minute
	config.ArgonMemoryKiB = uint32(*argonMemory)
	config.ArgonTime = uint32(*argonTime)
	config.ArgonThreads = uint8(*argonThreads)
}
