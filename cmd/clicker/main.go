package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-extras/cobraflags"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/sbilibin2017/clicker/internal/logger"
	"github.com/sbilibin2017/clicker/internal/migrations"
	"github.com/sbilibin2017/clicker/internal/models"
	"github.com/sbilibin2017/clicker/internal/repositories"
	"github.com/sbilibin2017/clicker/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the client
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// errAdminRequired is returned when admin commands run with a player account.
var errAdminRequired = errors.New("admin privileges required")

// Storage and logging flags
const (
	dbDriverFlag   = "db-driver"
	sqlitePathFlag = "sqlite-path"
	dsnFlag        = "dsn"
	logLevelFlag   = "log-level"
	logFileFlag    = "log-file"
)

// Account flags
const (
	usernameFlag = "username"
	passwordFlag = "password"
)

func storageFlags() map[string]cobraflags.Flag {
	return map[string]cobraflags.Flag{
		dbDriverFlag: &cobraflags.StringFlag{
			Name:  dbDriverFlag,
			Value: repositories.DriverSQLite,
			Usage: "Database driver (sqlite, pgx)",
		},
		sqlitePathFlag: &cobraflags.StringFlag{
			Name:  sqlitePathFlag,
			Value: "clicker.db",
			Usage: "SQLite database file, used with --db-driver=sqlite",
		},
		dsnFlag: &cobraflags.StringFlag{
			Name:  dsnFlag,
			Value: "",
			Usage: "PostgreSQL connection string, used with --db-driver=pgx",
		},
		logLevelFlag: &cobraflags.StringFlag{
			Name:  logLevelFlag,
			Value: "warn",
			Usage: "Log level (debug, info, warn, error)",
		},
		logFileFlag: &cobraflags.StringFlag{
			Name:  logFileFlag,
			Value: "",
			Usage: "Optional rotated log file",
		},
	}
}

func accountFlags() map[string]cobraflags.Flag {
	return map[string]cobraflags.Flag{
		usernameFlag: &cobraflags.StringFlag{
			Name:  usernameFlag,
			Value: "",
			Usage: "Account username",
		},
		passwordFlag: &cobraflags.StringFlag{
			Name:  passwordFlag,
			Value: "",
			Usage: "Account password",
		},
	}
}

// withBackendFlags registers storage and, when account is set, credential
// flags on cmd.
func withBackendFlags(cmd *cobra.Command, account bool) *cobra.Command {
	cobraflags.RegisterMap(cmd, storageFlags())
	if account {
		cobraflags.RegisterMap(cmd, accountFlags())
	}
	return cmd
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "clicker",
		Short:        "Terminal clicker game",
		Long:         "Play the clicker game against the same database as the web application.",
		Version:      fmt.Sprintf("%s (commit %s, built %s)", buildVersion, buildCommit, buildDate),
		SilenceUsage: true,
	}

	root.AddCommand(
		newMigrateCommand(),
		newRegisterCommand(),
		newPlayCommand(),
		newLeaderboardCommand(),
		newAdminCommand(),
		newSettingsCommand(),
	)
	return root
}

// backend is the service graph shared by the commands.
type backend struct {
	db          *sqlx.DB
	applied     int
	auth        *services.AuthService
	game        *services.GameService
	leaderboard *services.LeaderboardService
	admin       *services.AdminService
}

// openBackend initializes logging, opens and migrates the database and
// builds the services.
func openBackend(ctx context.Context, cmd *cobra.Command) (*backend, error) {
	flags := cmd.Flags()
	logLevel, _ := flags.GetString(logLevelFlag)
	logFile, _ := flags.GetString(logFileFlag)
	if err := logger.Initialize(logLevel, logFile); err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	driver, _ := flags.GetString(dbDriverFlag)
	var dsn string
	switch driver {
	case repositories.DriverSQLite:
		path, _ := flags.GetString(sqlitePathFlag)
		dsn = repositories.SQLiteDSN(path)
	case repositories.DriverPgx:
		dsn, _ = flags.GetString(dsnFlag)
		if dsn == "" {
			return nil, fmt.Errorf("--%s is required with --%s=%s", dsnFlag, dbDriverFlag, repositories.DriverPgx)
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := repositories.Open(ctx, driver, dsn, 4, 2)
	if err != nil {
		return nil, err
	}

	applied, err := migrations.Up(ctx, db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	txGetter := repositories.TxFromContext
	userRead := repositories.NewUserReadRepository(db, txGetter)
	userWrite := repositories.NewUserWriteRepository(db, txGetter)
	saveWrite := repositories.NewSaveWriteRepository(db, txGetter)
	leaderboard := services.NewLeaderboardService(repositories.NewLeaderboardReadRepository(db, txGetter), nil)

	return &backend{
		db:      db,
		applied: applied,
		auth:    services.NewAuthService(userRead, userWrite, nil, nil, nil),
		game: services.NewGameService(
			repositories.NewSaveReadRepository(db, txGetter), saveWrite,
			repositories.NewUpgradeReadRepository(db, txGetter), repositories.NewUpgradeWriteRepository(db, txGetter),
			repositories.NewTxRunner(db),
			nil, nil,
		),
		leaderboard: leaderboard,
		admin:       services.NewAdminService(userRead, userWrite, saveWrite, leaderboard, nil, ""),
	}, nil
}

func (b *backend) Close() error {
	return b.db.Close()
}

// credentials returns the --username and --password values.
func credentials(cmd *cobra.Command) (string, string, error) {
	username, _ := cmd.Flags().GetString(usernameFlag)
	password, _ := cmd.Flags().GetString(passwordFlag)
	if username == "" || password == "" {
		return "", "", fmt.Errorf("--%s and --%s are required", usernameFlag, passwordFlag)
	}
	return username, password, nil
}

// signIn authenticates the command's credentials. With admin set, the
// account must carry the admin flag.
func (b *backend) signIn(ctx context.Context, cmd *cobra.Command, admin bool) (*models.UserDB, error) {
	username, password, err := credentials(cmd)
	if err != nil {
		return nil, err
	}

	user, err := b.auth.Authenticate(ctx, username, password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return nil, errors.New("invalid credentials")
	}
	if err != nil {
		return nil, err
	}

	if admin && !user.IsAdmin {
		logger.Log.Infow("unauthorized admin command attempt", "username", username)
		return nil, errAdminRequired
	}
	return user, nil
}
