package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"talentflow/internal/config"
	"talentflow/pkg/utils"
)

func main() {
	app := &cli.App{
		Name:      "token",
		Usage:     "mint a JWT for the protected TalentFlow routes",
		ArgsUsage: "<subject>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "root", Value: ".", Usage: "project root holding .env and config/"},
			&cli.StringFlag{Name: "role", Value: utils.RoleRecruiter},
			&cli.DurationFlag{Name: "ttl", Usage: "token lifetime, auth.token_ttl when zero"},
		},
		Action: func(c *cli.Context) error {
			subject := c.Args().First()
			if subject == "" {
				return errors.New("subject is required")
			}

			loader, err := config.NewLoader(c.String("root"))
			if err != nil {
				return err
			}
			auth := loader.Config().Auth
			ttl := auth.TokenTTL
			if c.Duration("ttl") > 0 {
				ttl = c.Duration("ttl")
			}

			token, err := utils.NewTokenManager(auth.JWTSecret, ttl).CreateToken(subject, c.String("role"))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, token)
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
