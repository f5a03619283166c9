package client

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CommandKind identifies a terminal action.
type CommandKind int

// Terminal actions
const (
	CommandClick CommandKind = iota + 1
	CommandBuy
	CommandUpgrades
	CommandStatus
	CommandSave
	CommandLeaderboard
	CommandSettings
	CommandVolume
	CommandSoundEffects
	CommandHelp
	CommandQuit
)

// Command is one parsed line of input.
type Command struct {
	Kind CommandKind

	// Count is the number of clicks for CommandClick.
	Count int
	// UpgradeID is the upgrade to buy for CommandBuy.
	UpgradeID int64
	// Volume is the new music volume for CommandVolume.
	Volume float64
	// Enabled toggles sound effects for CommandSoundEffects.
	Enabled bool
}

// maxClicksPerCommand caps "click N".
const maxClicksPerCommand = 1000

// ParseCommand turns an input line into a Command.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, errors.New("empty command")
	}

	name, args := fields[0], fields[1:]
	switch name {
	case "click", "c":
		cmd := Command{Kind: CommandClick, Count: 1}
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 || n > maxClicksPerCommand {
				return Command{}, fmt.Errorf("click count must be between 1 and %d", maxClicksPerCommand)
			}
			cmd.Count = n
		}
		return cmd, nil
	case "buy", "b":
		if len(args) != 1 {
			return Command{}, errors.New("usage: buy <upgrade id>")
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id < 1 {
			return Command{}, fmt.Errorf("invalid upgrade id %q", args[0])
		}
		return Command{Kind: CommandBuy, UpgradeID: id}, nil
	case "upgrades", "u":
		return Command{Kind: CommandUpgrades}, nil
	case "status", "s":
		return Command{Kind: CommandStatus}, nil
	case "save":
		return Command{Kind: CommandSave}, nil
	case "leaderboard", "top":
		return Command{Kind: CommandLeaderboard}, nil
	case "settings":
		return Command{Kind: CommandSettings}, nil
	case "volume":
		if len(args) != 1 {
			return Command{}, errors.New("usage: volume <0..1>")
		}
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil || v < 0 || v > 1 {
			return Command{}, errors.New("volume must be between 0 and 1")
		}
		return Command{Kind: CommandVolume, Volume: v}, nil
	case "sfx":
		if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
			return Command{}, errors.New("usage: sfx on|off")
		}
		return Command{Kind: CommandSoundEffects, Enabled: args[0] == "on"}, nil
	case "help", "?":
		return Command{Kind: CommandHelp}, nil
	case "quit", "exit", "q":
		return Command{Kind: CommandQuit}, nil
	}

	return Command{}, fmt.Errorf("unknown command %q, type help", name)
}
