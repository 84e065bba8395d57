// main.go - mlkemtool: a small hex-I/O front end over the ML-KEM core.
//
// Wraps the library core behind a urfave/cli command set and logs
// through a structured logger rather than fmt.Println.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/cryptoproj/mlkem"
)

var log zerolog.Logger

func main() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	app := &cli.App{
		Name:  "mlkemtool",
		Usage: "generate ML-KEM keys and exercise encapsulation/decapsulation over hex",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "param-set",
				Value: "768",
				Usage: "parameter set: 512, 768, or 1024",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "keygen",
				Usage: "generate an (ek, dk) pair and print them as hex",
				Action: func(c *cli.Context) error {
					p, err := paramSet(c.String("param-set"))
					if err != nil {
						return err
					}
					seed := make([]byte, 2*mlkem.SymSize)
					if _, err := rand.Read(seed); err != nil {
						return err
					}
					ek, dk, err := p.KeyGen(seed)
					if err != nil {
						return err
					}
					log.Info().Str("param_set", p.Name()).Int("ek_size", len(ek)).Int("dk_size", len(dk)).Msg("generated key pair")
					fmt.Println("ek:", hex.EncodeToString(ek))
					fmt.Println("dk:", hex.EncodeToString(dk))
					return nil
				},
			},
			{
				Name:      "encaps",
				Usage:     "encapsulate against a hex-encoded encapsulation key",
				ArgsUsage: "<ek-hex>",
				Action: func(c *cli.Context) error {
					p, err := paramSet(c.String("param-set"))
					if err != nil {
						return err
					}
					ek, err := hex.DecodeString(c.Args().First())
					if err != nil {
						return fmt.Errorf("decoding ek: %w", err)
					}
					seed := make([]byte, mlkem.SymSize)
					if _, err := rand.Read(seed); err != nil {
						return err
					}
					K, ct, err := p.Encapsulate(ek, seed)
					if err != nil {
						return err
					}
					log.Info().Str("param_set", p.Name()).Int("ct_size", len(ct)).Msg("encapsulated")
					fmt.Println("K: ", hex.EncodeToString(K))
					fmt.Println("ct:", hex.EncodeToString(ct))
					return nil
				},
			},
			{
				Name:      "decaps",
				Usage:     "decapsulate a hex-encoded ciphertext against a hex-encoded decapsulation key",
				ArgsUsage: "<dk-hex> <ct-hex>",
				Action: func(c *cli.Context) error {
					p, err := paramSet(c.String("param-set"))
					if err != nil {
						return err
					}
					if c.Args().Len() < 2 {
						return fmt.Errorf("decaps requires <dk-hex> <ct-hex>")
					}
					dk, err := hex.DecodeString(c.Args().Get(0))
					if err != nil {
						return fmt.Errorf("decoding dk: %w", err)
					}
					ct, err := hex.DecodeString(c.Args().Get(1))
					if err != nil {
						return fmt.Errorf("decoding ct: %w", err)
					}
					K, err := p.Decapsulate(dk, ct)
					if err != nil {
						return err
					}
					log.Info().Str("param_set", p.Name()).Msg("decapsulated")
					fmt.Println("K:", hex.EncodeToString(K))
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("mlkemtool failed")
		os.Exit(1)
	}
}

func paramSet(name string) (*mlkem.ParameterSet, error) {
	switch name {
	case "512":
		return mlkem.KEM512, nil
	case "768":
		return mlkem.KEM768, nil
	case "1024":
		return mlkem.KEM1024, nil
	default:
		return nil, fmt.Errorf("unknown parameter set %q", name)
	}
}
