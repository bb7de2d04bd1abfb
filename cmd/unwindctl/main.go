// Command unwindctl runs maintenance tasks against the Unwind database:
// schema migrations, purging of soft-deleted schedules and admin promotion.
// It is meant for operators and cron jobs, not for the request path.
//
// Usage:
//
//	unwindctl migrate up|down|status
//	unwindctl cleanup [--retention-days=N]
//	unwindctl promote --email=user@example.com
//
// Configuration is read the same way as the server (CONFIG_PATH, env, .env).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/heartmarshall/unwind-backend/internal/app"
)

var cli struct {
	Version kong.VersionFlag `help:"Print version and exit."`
	Timeout time.Duration    `help:"Deadline for the whole command." default:"5m"`

	Migrate struct {
		Up     MigrateUpCmd     `cmd:"" help:"Apply all pending migrations."`
		Down   MigrateDownCmd   `cmd:"" help:"Roll back the most recent migration."`
		Status MigrateStatusCmd `cmd:"" help:"List migrations and whether they are applied."`
	} `cmd:"" help:"Manage the database schema."`
	Cleanup CleanupCmd `cmd:"" help:"Permanently remove schedules soft-deleted before the retention window."`
	Promote PromoteCmd `cmd:"" help:"Grant the admin role to a user."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("unwindctl"),
		kong.Description("Maintenance commands for the Unwind backend."),
		kong.UsageOnError(),
		kong.Vars{"version": app.BuildVersion()},
	)

	env, err := newEnv(cli.Timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = kctx.Run(env)
	env.close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
