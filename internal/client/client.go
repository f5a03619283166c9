// Package client implements the interactive terminal front-end. Input lines
// are parsed into Command values and dispatched against an explicit Session.
package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sbilibin2017/clicker/internal/logger"
	"github.com/sbilibin2017/clicker/internal/models"
	"github.com/sbilibin2017/clicker/internal/scoring"
	"github.com/sbilibin2017/clicker/internal/services"
	"github.com/sbilibin2017/clicker/internal/settings"
)

//go:generate mockgen -source=client.go -destination=client_mock.go -package=client

// Game is the save and upgrade store the client plays against.
type Game interface {
	State(ctx context.Context, userID int64) (*models.GameState, error)
	Upgrades(ctx context.Context) ([]models.UpgradeDB, error)
	Save(ctx context.Context, userID, score, clicks int64) error
	Purchase(ctx context.Context, userID, upgradeID int64) (*models.GameState, error)
}

// Leaderboard returns ranked players.
type Leaderboard interface {
	Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

// Session is the state of one signed-in player. Clicks are applied to Save
// in memory and written back on save, before a purchase and on quit.
type Session struct {
	UserID   int64
	Username string
	Save     models.GameSaveDB
	Owned    []models.OwnedUpgrade
	Settings settings.Settings
	// Dirty is set while Save holds clicks not yet written.
	Dirty bool
}

// Client dispatches commands.
type Client struct {
	game         Game
	leaderboard  Leaderboard
	settingsPath string
	out          io.Writer
}

// New creates a Client writing to out. Settings changes are written to
// settingsPath.
func New(game Game, leaderboard Leaderboard, settingsPath string, out io.Writer) *Client {
	return &Client{
		game:         game,
		leaderboard:  leaderboard,
		settingsPath: settingsPath,
		out:          out,
	}
}

// Start loads the player's save and owned upgrades.
func (c *Client) Start(ctx context.Context, user *models.UserDB, prefs settings.Settings) (*Session, error) {
	state, err := c.game.State(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("load game state: %w", err)
	}

	return &Session{
		UserID:   user.UserID,
		Username: user.Username,
		Save:     state.Save,
		Owned:    state.Owned,
		Settings: prefs,
	}, nil
}

// Run reads commands from in until quit or end of input. The save is written
// before Run returns, also when a command fails.
func (c *Client) Run(ctx context.Context, sess *Session, in io.Reader) error {
	fmt.Fprintf(c.out, "Welcome, %s! Type help for commands.\n", sess.Username)
	c.printStatus(sess)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			break
		}

		cmd, err := ParseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintln(c.out, err)
			continue
		}

		quit, err := c.Execute(ctx, sess, cmd)
		if err != nil {
			return errors.Join(err, c.save(ctx, sess))
		}
		if quit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Join(fmt.Errorf("read input: %w", err), c.save(ctx, sess))
	}
	return c.save(ctx, sess)
}

// Execute applies one command to sess. It reports whether the loop should
// stop. Only storage failures are returned; user mistakes are printed.
func (c *Client) Execute(ctx context.Context, sess *Session, cmd Command) (bool, error) {
	switch cmd.Kind {
	case CommandClick:
		var points int64
		for i := 0; i < cmd.Count; i++ {
			points += scoring.ApplyClick(&sess.Save, sess.Owned)
		}
		sess.Dirty = true
		fmt.Fprintf(c.out, "+%d points. Score: %d\n", points, sess.Save.Score)

	case CommandBuy:
		return false, c.buy(ctx, sess, cmd.UpgradeID)

	case CommandUpgrades:
		return false, c.printUpgrades(ctx, sess)

	case CommandStatus:
		c.printStatus(sess)

	case CommandSave:
		if err := c.save(ctx, sess); err != nil {
			return false, err
		}
		fmt.Fprintln(c.out, "Game saved.")

	case CommandLeaderboard:
		return false, c.printLeaderboard(ctx)

	case CommandSettings:
		c.printSettings(sess.Settings)

	case CommandVolume:
		sess.Settings.MusicVolume = cmd.Volume
		return false, c.storeSettings(sess.Settings)

	case CommandSoundEffects:
		sess.Settings.SoundEffects = cmd.Enabled
		return false, c.storeSettings(sess.Settings)

	case CommandHelp:
		c.printHelp()

	case CommandQuit:
		if err := c.save(ctx, sess); err != nil {
			return false, err
		}
		fmt.Fprintln(c.out, "Game saved. Bye!")
		return true, nil

	default:
		return false, fmt.Errorf("unhandled command kind %d", cmd.Kind)
	}

	return false, nil
}

// save writes pending clicks.
func (c *Client) save(ctx context.Context, sess *Session) error {
	if !sess.Dirty {
		return nil
	}
	if err := c.game.Save(ctx, sess.UserID, sess.Save.Score, sess.Save.Clicks); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	sess.Dirty = false
	logger.Log.Debugw("game saved", "userID", sess.UserID, "score", sess.Save.Score, "clicks", sess.Save.Clicks)
	return nil
}

func (c *Client) buy(ctx context.Context, sess *Session, upgradeID int64) error {
	if err := c.save(ctx, sess); err != nil {
		return err
	}

	state, err := c.game.Purchase(ctx, sess.UserID, upgradeID)
	switch {
	case errors.Is(err, services.ErrInsufficientScore):
		fmt.Fprintln(c.out, "Not enough points.")
		return nil
	case errors.Is(err, services.ErrUpgradeNotFound):
		fmt.Fprintln(c.out, "Upgrade not found.")
		return nil
	case err != nil:
		return fmt.Errorf("purchase upgrade: %w", err)
	}

	sess.Save = state.Save
	sess.Owned = state.Owned
	fmt.Fprintf(c.out, "Purchased! Score: %d, points per click: %d\n", sess.Save.Score, scoring.ClickPoints(sess.Owned))
	return nil
}

func (c *Client) storeSettings(s settings.Settings) error {
	if c.settingsPath != "" {
		if err := settings.Save(c.settingsPath, s); err != nil {
			return err
		}
	}
	c.printSettings(s)
	return nil
}

func (c *Client) printStatus(sess *Session) {
	fmt.Fprintf(c.out, "Score: %d  Clicks: %d  Points per click: %d\n",
		sess.Save.Score, sess.Save.Clicks, scoring.ClickPoints(sess.Owned))
	for _, u := range sess.Owned {
		fmt.Fprintf(c.out, "  %s x%d (+%d)\n", u.Name, u.Quantity, u.Increment*u.Quantity)
	}
}

func (c *Client) printUpgrades(ctx context.Context, sess *Session) error {
	upgrades, err := c.game.Upgrades(ctx)
	if err != nil {
		return fmt.Errorf("list upgrades: %w", err)
	}

	owned := make(map[int64]int64, len(sess.Owned))
	for _, u := range sess.Owned {
		owned[u.UpgradeID] = u.Quantity
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOST\tBONUS\tOWNED\t")
	for _, u := range upgrades {
		mark := ""
		if scoring.CanAfford(sess.Save.Score, u) {
			mark = "*"
		}
		fmt.Fprintf(w, "%d\t%s\t%d%s\t+%d\t%d\t\n", u.UpgradeID, u.Name, u.Cost, mark, u.Increment, owned[u.UpgradeID])
	}
	return w.Flush()
}

func (c *Client) printLeaderboard(ctx context.Context) error {
	entries, err := c.leaderboard.Top(ctx, services.IndexLeaderboardSize)
	if err != nil {
		return fmt.Errorf("load leaderboard: %w", err)
	}
	return PrintLeaderboard(c.out, entries)
}

// PrintLeaderboard writes entries as a ranked table.
func PrintLeaderboard(out io.Writer, entries []models.LeaderboardEntry) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tPLAYER\tSCORE\tCLICKS\t")
	for i, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t\n", i+1, e.Username, e.Score, e.Clicks)
	}
	return w.Flush()
}

func (c *Client) printSettings(s settings.Settings) {
	sfx := "off"
	if s.SoundEffects {
		sfx = "on"
	}
	fmt.Fprintf(c.out, "Music volume: %.2f  Sound effects: %s\n", s.MusicVolume, sfx)
}

func (c *Client) printHelp() {
	fmt.Fprint(c.out, `Commands:
  click [n]       click once or n times
  upgrades        list upgrades (* = affordable)
  buy <id>        buy an upgrade
  status          show score and owned upgrades
  save            write the save
  leaderboard     top 10 players
  settings        show settings
  volume <0..1>   set music volume
  sfx on|off      toggle sound effects
  quit            save and exit
`)
}
