// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration command for logdiff.
//
// Usage:
//   logdiff config               Show current configuration
//   logdiff config get <key>     Print one value (e.g. ui.theme)
//   logdiff config set <key> <value>
//   logdiff config path          Print the config file location
//   logdiff config keys          List all settable keys
package cli

import (
	"fmt"

	"github.com/jeranaias/logdiff/internal/config"
)

// HandleConfig dispatches the config subcommands.
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "", "show":
		return handleConfigShow(args)
	case "get":
		return handleConfigGet(args)
	case "set":
		return handleConfigSet(args)
	case "path":
		return handleConfigPath(args)
	case "keys":
		return handleConfigKeys(args)
	default:
		return NewValidationErrorWithExample(
			"subcommand", args.Subcommand,
			"unknown config subcommand",
			"logdiff config [show|get|set|path|keys]",
		)
	}
}

func handleConfigShow(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return NewCommandError("config", "show", "configuration unusable", err)
	}

	if args.JSON {
		return outputJSON(cfg)
	}

	fmt.Println(TitleStyle.Render("Configuration"))
	for _, key := range config.GetAllKeys() {
		value, err := cfg.Get(key)
		if err != nil {
			continue
		}
		fmt.Printf("%s %s\n",
			LabelStyle.Render(key),
			ValueStyle.Render(fmt.Sprintf("%v", value)))
	}
	return nil
}

func handleConfigGet(args Args) error {
	if args.ConfigKey == "" {
		return NewValidationErrorWithExample(
			"key", "",
			"a key is required",
			"logdiff config get ui.theme",
		)
	}

	cfg, err := config.Load()
	if err != nil {
		return NewCommandError("config", "get", "configuration unusable", err)
	}

	value, err := cfg.Get(args.ConfigKey)
	if err != nil {
		return NewNotFoundError("config key", args.ConfigKey)
	}

	if args.JSON {
		return outputJSON(map[string]interface{}{args.ConfigKey: value})
	}
	fmt.Printf("%v\n", value)
	return nil
}

func handleConfigSet(args Args) error {
	if args.ConfigKey == "" || args.ConfigVal == "" {
		return NewValidationErrorWithExample(
			"key", args.ConfigKey,
			"a key and value are required",
			"logdiff config set ui.theme dark",
		)
	}

	cfg, err := config.Load()
	if err != nil {
		return NewCommandError("config", "set", "configuration unusable", err)
	}

	if err := cfg.Set(args.ConfigKey, args.ConfigVal); err != nil {
		return NewValidationError(args.ConfigKey, args.ConfigVal, err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return NewValidationError(args.ConfigKey, args.ConfigVal, err.Error())
	}
	if err := config.Save(cfg); err != nil {
		return NewCommandError("config", "set", "cannot write config file", err)
	}

	fmt.Printf("%s %s = %s\n",
		SuccessStyle.Render("[OK]"),
		args.ConfigKey, args.ConfigVal)
	return nil
}

func handleConfigPath(args Args) error {
	path, err := config.ConfigPathTOML()
	if err != nil {
		return NewCommandError("config", "path", "cannot resolve config directory", err)
	}

	if args.JSON {
		return outputJSON(map[string]string{"path": path})
	}
	fmt.Println(path)
	return nil
}

func handleConfigKeys(args Args) error {
	keys := config.GetAllKeys()

	if args.JSON {
		return outputJSON(keys)
	}
	for _, key := range keys {
		fmt.Println(key)
	}
	return nil
}
