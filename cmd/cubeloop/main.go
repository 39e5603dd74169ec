// Copyright © 2025 Cubeloop contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/cubeloop/main.go
// Summary: cubeloop binary: config, terminal setup and the frame loop.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/framegrace/cubeloop/config"
	"github.com/framegrace/cubeloop/cube"
	"github.com/framegrace/cubeloop/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type display interface {
	cube.Presenter
	Init() error
	Fini()
	Size() (int, int)
}

func run() error {
	fs := flag.NewFlagSet("cubeloop", flag.ContinueOnError)
	configPath := fs.String("config", "cubeloop.json", "Path to the JSON configuration")
	ansiOut := fs.Bool("ansi", false, "Write plain ANSI frames to stdout instead of using tcell")
	hud := fs.Bool("hud", false, "Overlay a frame-rate line on the top row")
	width := fs.Int("width", 0, "Override grid width in cells")
	height := fs.Int("height", 0, "Override grid height in cells")
	delayUS := fs.Int("delay", 0, "Override inter-frame delay in microseconds")
	logPath := fs.String("log", "cubeloop.log", "File to append logs to")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.Println("cubeloop starting")

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *delayUS > 0 {
		cfg.FrameDelayUS = *delayUS
	}
	if *hud {
		cfg.HUD = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var disp display
	var quit <-chan struct{}
	if *ansiOut {
		disp = term.NewANSIPresenter(os.Stdout)
	} else {
		tp, err := term.NewTcellPresenter()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		disp = tp
		quit = tp.Quit()
	}
	if err := disp.Init(); err != nil {
		return fmt.Errorf("init display: %w", err)
	}
	defer disp.Fini()

	// A zero dimension tracks the terminal at startup.
	if cfg.Width == 0 || cfg.Height == 0 {
		w, h := disp.Size()
		if cfg.Width == 0 {
			cfg.Width = w
		}
		if cfg.Height == 0 {
			cfg.Height = h
		}
	}

	scene, err := cube.NewScene(
		cfg.Width, cfg.Height, cfg.BackgroundRune(),
		cube.Camera{Distance: cfg.CameraDistance, Scale: cfg.Scale},
		cfg.SampleStep,
		cube.Angles{A: cfg.Spin.A, B: cfg.Spin.B, C: cfg.Spin.C},
		sceneCubes(cfg.Cubes),
	)
	if err != nil {
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigChan:
			log.Printf("stopping on signal %v", sig)
		case <-quitChan(quit):
			log.Println("stopping on quit key")
		}
		scene.Stop()
	}()

	var out cube.Presenter = disp
	if cfg.HUD {
		out = term.WithHUD(disp)
	}

	err = scene.Run(out, term.SleepPacer{}, time.Duration(cfg.FrameDelayUS)*time.Microsecond)
	log.Printf("cubeloop stopped after %d frames", scene.Frames())
	return err
}

func sceneCubes(specs []config.CubeSpec) []cube.Cube {
	cubes := make([]cube.Cube, len(specs))
	for i, s := range specs {
		cubes[i] = cube.Cube{Half: s.Half, Offset: s.Offset}
	}
	return cubes
}

// quitChan turns a possibly-nil channel into one that never fires.
func quitChan(ch <-chan struct{}) <-chan struct{} {
	if ch != nil {
		return ch
	}
	return make(chan struct{})
}
