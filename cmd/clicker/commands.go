package main

import (
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/sbilibin2017/clicker/internal/client"
	"github.com/sbilibin2017/clicker/internal/services"
	"github.com/sbilibin2017/clicker/internal/settings"
)

const (
	settingsFlag     = "settings"
	limitFlag        = "limit"
	userIDFlag       = "user-id"
	musicVolumeFlag  = "music-volume"
	soundEffectsFlag = "sound-effects"
)

func settingsPathFlag() map[string]cobraflags.Flag {
	return map[string]cobraflags.Flag{
		settingsFlag: &cobraflags.StringFlag{
			Name:  settingsFlag,
			Value: settings.DefaultPath,
			Usage: "Preferences file",
		},
	}
}

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := openBackend(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer b.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s).\n", b.applied)
			return nil
		},
	}
	return withBackendFlags(cmd, false)
}

func newRegisterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a player account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			username, password, err := credentials(cmd)
			if err != nil {
				return err
			}

			b, err := openBackend(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer b.Close()

			userID, err := b.auth.Register(cmd.Context(), username, password)
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				return errors.New("username already exists")
			case errors.Is(err, services.ErrInvalidInput):
				return errors.New("username must be 3-32 letters or digits and password 4-72 bytes")
			case err != nil:
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s (id %d).\n", username, userID)
			return nil
		},
	}
	return withBackendFlags(cmd, true)
}

func newPlayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			settingsPath, _ := cmd.Flags().GetString(settingsFlag)
			prefs, err := settings.Load(settingsPath)
			if err != nil {
				return err
			}

			b, err := openBackend(ctx, cmd)
			if err != nil {
				return err
			}
			defer b.Close()

			user, err := b.signIn(ctx, cmd, false)
			if err != nil {
				return err
			}

			cl := client.New(b.game, b.leaderboard, settingsPath, cmd.OutOrStdout())
			sess, err := cl.Start(ctx, user, prefs)
			if err != nil {
				return err
			}
			return cl.Run(ctx, sess, cmd.InOrStdin())
		},
	}
	cobraflags.RegisterMap(cmd, settingsPathFlag())
	return withBackendFlags(cmd, true)
}

func newLeaderboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Print players ranked by score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, _ := cmd.Flags().GetString(limitFlag)
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 0 {
				return fmt.Errorf("invalid --%s %q", limitFlag, raw)
			}

			b, err := openBackend(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer b.Close()

			entries, err := b.leaderboard.Top(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return client.PrintLeaderboard(cmd.OutOrStdout(), entries)
		},
	}
	cobraflags.RegisterMap(cmd, map[string]cobraflags.Flag{
		limitFlag: &cobraflags.StringFlag{
			Name:  limitFlag,
			Value: strconv.Itoa(services.IndexLeaderboardSize),
			Usage: "Number of players to show, 0 for all",
		},
	})
	return withBackendFlags(cmd, false)
}

func newAdminCommand() *cobra.Command {
	admin := &cobra.Command{
		Use:   "admin",
		Short: "Administrative commands, require an admin account",
	}
	admin.AddCommand(newAdminUsersCommand(), newAdminDeleteCommand())
	return admin
}

func newAdminUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List user accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			b, err := openBackend(ctx, cmd)
			if err != nil {
				return err
			}
			defer b.Close()

			if _, err := b.signIn(ctx, cmd, true); err != nil {
				return err
			}

			users, err := b.admin.ListUsers(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSERNAME\tADMIN\tCREATED\t")
			for _, u := range users {
				fmt.Fprintf(w, "%d\t%s\t%t\t%s\t\n", u.UserID, u.Username, u.IsAdmin, u.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return w.Flush()
		},
	}
	return withBackendFlags(cmd, true)
}

func newAdminDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a user with its save and upgrades",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			raw, _ := cmd.Flags().GetString(userIDFlag)
			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid --%s %q", userIDFlag, raw)
			}

			b, err := openBackend(ctx, cmd)
			if err != nil {
				return err
			}
			defer b.Close()

			self, err := b.signIn(ctx, cmd, true)
			if err != nil {
				return err
			}
			if self.UserID == userID {
				return errors.New("you cannot delete your own account")
			}

			err = b.admin.DeleteUser(ctx, userID)
			if errors.Is(err, services.ErrUserDoesNotExist) {
				return fmt.Errorf("user %d not found", userID)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "User %d deleted.\n", userID)
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, map[string]cobraflags.Flag{
		userIDFlag: &cobraflags.StringFlag{
			Name:  userIDFlag,
			Value: "",
			Usage: "ID of the user to delete",
		},
	})
	return withBackendFlags(cmd, true)
}

func newSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change client preferences",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the current preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString(settingsFlag)
			s, err := settings.Load(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "music_volume=%.2f sound_effects=%t\n", s.MusicVolume, s.SoundEffects)
			return nil
		},
	}
	cobraflags.RegisterMap(show, settingsPathFlag())

	save := &cobra.Command{
		Use:   "save",
		Short: "Write preferences, keeping values that are not given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			path, _ := flags.GetString(settingsFlag)

			s, err := settings.Load(path)
			if err != nil {
				return err
			}

			if flags.Changed(musicVolumeFlag) {
				raw, _ := flags.GetString(musicVolumeFlag)
				if s.MusicVolume, err = strconv.ParseFloat(raw, 64); err != nil {
					return fmt.Errorf("invalid --%s %q", musicVolumeFlag, raw)
				}
			}
			if flags.Changed(soundEffectsFlag) {
				raw, _ := flags.GetString(soundEffectsFlag)
				if s.SoundEffects, err = strconv.ParseBool(raw); err != nil {
					return fmt.Errorf("invalid --%s %q", soundEffectsFlag, raw)
				}
			}

			if err := settings.Save(path, s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Settings written to %s.\n", path)
			return nil
		},
	}
	cobraflags.RegisterMap(save, settingsPathFlag())
	cobraflags.RegisterMap(save, map[string]cobraflags.Flag{
		musicVolumeFlag: &cobraflags.StringFlag{
			Name:  musicVolumeFlag,
			Value: "",
			Usage: "Music volume between 0 and 1",
		},
		soundEffectsFlag: &cobraflags.StringFlag{
			Name:  soundEffectsFlag,
			Value: "",
			Usage: "Enable sound effects (true, false)",
		},
	})

	cmd.AddCommand(show, save)
	return cmd
}
