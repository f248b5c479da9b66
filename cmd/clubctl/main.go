// cmd/clubctl/main.go
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dangerclosesec/clubmap/internal/auth"
	"github.com/dangerclosesec/clubmap/internal/config"
	"github.com/dangerclosesec/clubmap/internal/database"
	"github.com/dangerclosesec/clubmap/internal/export"
	"github.com/dangerclosesec/clubmap/internal/migration"
	"github.com/dangerclosesec/clubmap/internal/repository"
	"github.com/dangerclosesec/clubmap/internal/service"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// env is what every subcommand works against.
type env struct {
	cfg *config.Config
	db  *gorm.DB
}

func openEnv(ctx context.Context, dbPath string) (*env, error) {
	cfg := config.Load()
	if dbPath != "" {
		cfg.Database.URL = ""
		cfg.Database.Path = dbPath
	}

	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Keep stdout for command output.
	db = db.Session(&gorm.Session{Logger: logger.Default.LogMode(logger.Silent)})
	return &env{cfg: cfg, db: db}, nil
}

func (e *env) close() {
	_ = database.Close(e.db)
}

func (e *env) migrator() (*migration.Migrator, error) {
	sqlDB, err := e.db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}
	return migration.NewMigrator(sqlDB, e.cfg.Dialect()), nil
}

func newRootCmd() *cobra.Command {
	var dbPath string

	rootCmd := &cobra.Command{
		Use:           "clubctl",
		Short:         "clubctl manages the club directory store",
		Long:          `clubctl migrates the schema, manages reviewer accounts, and imports or exports the club directory.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "SQLite file to use instead of DATABASE_URL / DB_PATH")

	withEnv := func(run func(cmd *cobra.Command, args []string, e *env) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context(), dbPath)
			if err != nil {
				return err
			}
			defer e.close()
			return run(cmd, args, e)
		}
	}

	rootCmd.AddCommand(
		newMigrateCmd(withEnv),
		newAdminCmd(withEnv),
		newExportCmd(withEnv),
		newClubCmd(withEnv),
	)
	return rootCmd
}

type envRunner func(run func(cmd *cobra.Command, args []string, e *env) error) func(*cobra.Command, []string) error

func newMigrateCmd(withEnv envRunner) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or revert schema migrations",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: withEnv(func(cmd *cobra.Command, _ []string, e *env) error {
			m, err := e.migrator()
			if err != nil {
				return err
			}
			applied, err := m.Up(cmd.Context())
			if err != nil {
				return err
			}
			version, err := m.CurrentVersion(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s), schema at version %d\n", applied, version)
			return nil
		}),
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Revert the most recent migration",
		Args:  cobra.NoArgs,
		RunE: withEnv(func(cmd *cobra.Command, _ []string, e *env) error {
			m, err := e.migrator()
			if err != nil {
				return err
			}
			reverted, err := m.Down(cmd.Context())
			if err != nil {
				return err
			}
			version, err := m.CurrentVersion(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reverted %d migration(s), schema at version %d\n", reverted, version)
			return nil
		}),
	})

	return migrateCmd
}

func newAdminService(e *env) *service.AdminService {
	return service.NewAdminService(
		repository.NewAdminUserRepository(e.db),
		auth.NewPasswordHasher(),
		auth.NewTokenManager(e.cfg.JWT.Secret, e.cfg.JWT.ExpiryPeriod),
	)
}

func newAdminCmd(withEnv envRunner) *cobra.Command {
	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage reviewer accounts",
	}

	var input service.CreateAdminInput
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a reviewer account",
		Args:  cobra.NoArgs,
		RunE: withEnv(func(cmd *cobra.Command, _ []string, e *env) error {
			var err error
			if input.Password, err = readPassword(cmd); err != nil {
				return err
			}
			admin, err := newAdminService(e).Create(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created admin %q (id %d)\n", admin.Username, admin.ID)
			return nil
		}),
	}
	createCmd.Flags().StringVar(&input.Username, "username", "", "Account username")
	createCmd.Flags().StringVar(&input.Email, "email", "", "Account email")
	addPasswordFlags(createCmd)
	for _, name := range []string{"username", "email"} {
		_ = createCmd.MarkFlagRequired(name)
	}

	var username string
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Print a signed reviewer token",
		Long:  `Verify the account password and print a bearer token for the review API.`,
		Args:  cobra.NoArgs,
		RunE: withEnv(func(cmd *cobra.Command, _ []string, e *env) error {
			password, err := readPassword(cmd)
			if err != nil {
				return err
			}
			out, err := newAdminService(e).IssueToken(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Token)
			fmt.Fprintf(cmd.ErrOrStderr(), "Token for %q expires %s\n", out.Admin.Username, out.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
			return nil
		}),
	}
	tokenCmd.Flags().StringVar(&username, "username", "", "Account username")
	addPasswordFlags(tokenCmd)
	_ = tokenCmd.MarkFlagRequired("username")

	adminCmd.AddCommand(createCmd, tokenCmd)
	return adminCmd
}

// passwordEnv is read when neither password flag is given.
const passwordEnv = "CLUBCTL_PASSWORD"

func addPasswordFlags(cmd *cobra.Command) {
	cmd.Flags().String("password", "", "Account password (visible in process listings; prefer --password-stdin or "+passwordEnv+")")
	cmd.Flags().Bool("password-stdin", false, "Read the account password from the first line of stdin")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")
}

// readPassword takes the password from stdin, the --password flag or the
// CLUBCTL_PASSWORD environment variable, in that order.
func readPassword(cmd *cobra.Command) (string, error) {
	if fromStdin, _ := cmd.Flags().GetBool("password-stdin"); fromStdin {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading password from stdin: %w", err)
		}
		if password := strings.TrimRight(line, "\r\n"); password != "" {
			return password, nil
		}
		return "", errors.New("no password on stdin")
	}

	if password, _ := cmd.Flags().GetString("password"); password != "" {
		return password, nil
	}
	if password := os.Getenv(passwordEnv); password != "" {
		return password, nil
	}
	return "", fmt.Errorf("a password is required: use --password-stdin, %s or --password", passwordEnv)
}

func newExportCmd(withEnv envRunner) *cobra.Command {
	var out string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the public clubs.json",
		Args:  cobra.NoArgs,
		RunE: withEnv(func(cmd *cobra.Command, _ []string, e *env) error {
			list, err := service.NewClubService(repository.NewStore(e.db)).List(cmd.Context(), service.ListClubsInput{})
			if err != nil {
				return err
			}

			if out == "-" {
				return export.WriteClubs(cmd.Context(), list.Items, cmd.OutOrStdout())
			}

			path := out
			if path == "" {
				path = filepath.Join(e.cfg.Static.PublicDir, "data", "clubs.json")
			}
			if err := export.WriteFile(cmd.Context(), list.Items, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d club(s) to %s\n", len(list.Items), path)
			return nil
		}),
	}
	exportCmd.Flags().StringVarP(&out, "out", "o", "", `Output path, "-" for stdout (default <PUBLIC_DIR>/data/clubs.json)`)
	return exportCmd
}

func newClubCmd(withEnv envRunner) *cobra.Command {
	clubCmd := &cobra.Command{
		Use:   "club",
		Short: "Manage published clubs directly",
	}

	var reviewer string
	importCmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Seed clubs from a JSON array",
		Long:  `Import clubs from a JSON array in the clubs.json shape. Entries whose name and school already exist are skipped.`,
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(func(cmd *cobra.Command, args []string, e *env) error {
			inputs, err := readClubs(args[0])
			if err != nil {
				return err
			}

			result, err := service.NewClubService(repository.NewStore(e.db)).Import(cmd.Context(), inputs, reviewer)
			if result != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d club(s), skipped %d existing\n", result.Created, result.Skipped)
				for _, ie := range result.Errors {
					fmt.Fprintf(cmd.OutOrStdout(), "  - entry %d (%s): %s\n", ie.Index, ie.Name, ie.Message)
				}
			}
			return err
		}),
	}
	importCmd.Flags().StringVar(&reviewer, "verified-by", "import", "Reviewer recorded on imported clubs")

	clubCmd.AddCommand(importCmd)
	return clubCmd
}

func readClubs(path string) ([]service.ClubInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	var inputs []service.ClubInput
	if err := json.Unmarshal(raw, &inputs); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return inputs, nil
}
