//go:build !android

package app

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"curveswarm/internal/audio"
	"curveswarm/internal/config"
	"curveswarm/internal/render"
	"curveswarm/internal/swarm"
)

// RunDesktop opens the window and runs the frame loop until it closes.
func RunDesktop() error {
	runtime.LockOSThread()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel()}))

	settings, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	seed := settings.ResolveSeed()
	log.Info("starting", "seed", seed, "config", os.Getenv(config.EnvConfig))

	window, err := render.InitWindow(settings.WindowWidth, settings.WindowHeight, "curveswarm", settings.Fullscreen)
	if err != nil {
		return err
	}
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	var player *audio.Player
	if settings.Audio {
		if player, err = audio.New(audio.DefaultVolume, log); err != nil {
			log.Warn("audio init failed (continuing without sound)", "err", err)
		}
	}

	img := loadSettingsImage(settings, log)

	rend, err := render.NewRenderer(settings.ParticleSize, settings.SpriteColor())
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	fbW, fbH := window.GetFramebufferSize()
	scene, err := NewScene(settings, seed, img, fbW, fbH, log)
	if err != nil {
		return err
	}
	defer scene.Close()
	scene.OnTransition = func(kind swarm.GeneratorKind) { player.Chime(kind) }

	bg := settings.BackgroundColor()
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		if err := scene.Resize(fbW, fbH); err != nil {
			log.Warn("resize", "err", err)
		}

		scene.Update(dt)

		rend.BeginFrame(scene.ViewProjection(), bg, fbW, fbH)
		scene.Draw(rend)
		window.SwapBuffers()
	}
	return nil
}

func logLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(os.Getenv("CURVESWARM_LOG"))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
