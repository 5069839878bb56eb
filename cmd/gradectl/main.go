// Command gradectl provisions a gradebook database: it applies migrations
// and manages user accounts.
package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/yigit/gradebook/internal/app/migrations"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/app/repositories"
	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/bootstrap"
	"github.com/yigit/gradebook/internal/db"
	"github.com/yigit/gradebook/internal/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "gradectl",
		Usage: "gradebook administration",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   bootstrap.DefaultConfigPath,
				EnvVars: []string{"CONFIG_PATH"},
				Usage:   "path to the YAML configuration file",
			},
		},
		Commands: []*cli.Command{
			migrateCommand(),
			userCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("gradectl failed")
		os.Exit(1)
	}
}

// connect loads the configuration and opens the database
func connect(c *cli.Context) (*db.PostgresDB, error) {
	cfg, _, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"))
	if err != nil {
		return nil, err
	}
	return db.NewPostgresDB(cfg)
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply pending schema migrations",
		Action: func(c *cli.Context) error {
			database, err := connect(c)
			if err != nil {
				return err
			}
			defer database.Close()

			applied, err := migrations.NewMigrator(database).Migrate(c.Context)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(c.App.Writer, "schema is up to date")
				return nil
			}
			for _, name := range applied {
				fmt.Fprintln(c.App.Writer, "applied", name)
			}
			return nil
		},
	}
}

func userCommand() *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "manage accounts",
		Subcommands: []*cli.Command{
			{
				Name:  "add",
				Usage: "create an account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true},
					&cli.StringFlag{Name: "role", Aliases: []string{"r"}, Value: string(models.RoleTeacher), Usage: "admin or teacher"},
				},
				Action: func(c *cli.Context) error {
					return withAuthService(c, func(ctx context.Context, svc services.AuthService) error {
						user, err := svc.CreateUser(ctx, c.String("username"), c.String("password"), models.Role(c.String("role")))
						if err != nil {
							return err
						}
						fmt.Fprintf(c.App.Writer, "created %s (%s)\n", user.Username, user.Role)
						return nil
					})
				},
			},
			{
				Name:  "list",
				Usage: "list accounts",
				Action: func(c *cli.Context) error {
					return withAuthService(c, func(ctx context.Context, svc services.AuthService) error {
						users, err := svc.ListUsers(ctx)
						if err != nil {
							return err
						}
						w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
						fmt.Fprintln(w, "USERNAME\tROLE\tCREATED")
						for _, u := range users {
							fmt.Fprintf(w, "%s\t%s\t%s\n", u.Username, u.Role, u.CreatedAt.Format("2006-01-02 15:04"))
						}
						return w.Flush()
					})
				},
			},
		},
	}
}

func withAuthService(c *cli.Context, fn func(ctx context.Context, svc services.AuthService) error) error {
	database, err := connect(c)
	if err != nil {
		return err
	}
	defer database.Close()

	repos := repositories.NewRepositories()
	return fn(c.Context, services.NewAuthService(database, repos.UserRepository, logger.Get()))
}
