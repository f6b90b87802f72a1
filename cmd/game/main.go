package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/tomz197/emacsteroids/internal/config"
	"github.com/tomz197/emacsteroids/internal/logging"
	"github.com/tomz197/emacsteroids/internal/loop"
	"github.com/tomz197/emacsteroids/internal/share"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	logger, closeLog, err := logging.Open("game")
	if err != nil {
		return err
	}
	defer closeLog()

	switch config.GetEnv("GAME_PROFILE", "") {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	tuning, err := config.LoadTuning(config.GetEnv("GAME_TUNING", ""))
	if err != nil {
		return err
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	client, err := loop.NewClient(bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Logger:   logger,
		Term:     os.Getenv("TERM"),
		Username: os.Getenv("USER"),
		Tuning:   tuning,
		Link: share.Link{
			Base:    config.GetEnv("SHARE_BASE_URL", config.DefaultShareBaseURL),
			Text:    config.DefaultShareText,
			PageURL: config.GetEnv("PLAY_URL", config.DefaultPlayURL),
		},
	})
	if err != nil {
		return err
	}

	logger.Info("Starting local game", "width", tuning.Width, "height", tuning.Height)
	return client.Run(context.Background())
}
