// cmd/game/main.go
package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-sanity-survival/internal/app"
	"go-sanity-survival/internal/assets"
	"go-sanity-survival/internal/audio"
	"go-sanity-survival/internal/audio/ebitenout"
	"go-sanity-survival/internal/config"
	"go-sanity-survival/internal/defs"
	"go-sanity-survival/internal/logging"
	"go-sanity-survival/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type AppGame struct {
	stateMachine *state.StateMachine
	session      *state.Session
}

// Update передаёт машине состояний реальное время кадра. Длинные кадры
// не обрезаются: ядро само отбрасывает их целиком.
func (a *AppGame) Update() error {
	elapsed := a.session.Clock.Tick(time.Now())
	a.stateMachine.Update(elapsed)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight + config.HUDHeight
}

var (
	envFile     string
	catalogPath string
	noAudio     bool
	flagSeed    int64
	flagMuted   bool
	flagScale   float64
	flagLevel   string
	flagPprof   string
)

var rootCmd = &cobra.Command{
	Use:           "sanity-survival",
	Short:         "Arcade survival: keep your sanity for 20 levels",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings(envFile)
		if err != nil {
			return err
		}
		applyFlags(cmd, &settings)
		if err := settings.Validate(); err != nil {
			return err
		}
		return run(settings)
	},
}

// applyFlags переопределяет настройки только явно заданными флагами
func applyFlags(cmd *cobra.Command, s *config.Settings) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		s.Seed = flagSeed
	}
	if flags.Changed("muted") {
		s.Muted = flagMuted
	}
	if flags.Changed("scale") {
		s.WindowScale = flagScale
	}
	if flags.Changed("log-level") {
		s.LogLevel = flagLevel
	}
	if flags.Changed("pprof") {
		s.PprofAddr = flagPprof
	}
}

func run(settings config.Settings) error {
	logger := logging.New(settings.LogLevel, os.Stderr)

	if settings.PprofAddr != "" {
		go func() {
			logger.Warn().Err(http.ListenAndServe(settings.PprofAddr, nil)).Msg("pprof server stopped")
		}()
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	fonts, err := assets.NewFontManager()
	if err != nil {
		return err
	}

	game := app.NewGame(app.Options{
		Seed:    settings.Seed,
		Muted:   settings.Muted,
		Catalog: catalog,
		Logger:  logging.Component(logger, "game"),
	})

	var backend audio.Backend
	if !noAudio {
		out := ebitenout.New()
		defer out.Close()
		backend = out
	}
	sound, err := audio.NewManager(backend, settings.Muted, logging.Component(logger, "audio"))
	if err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, continuing silently")
		sound, _ = audio.NewManager(nil, settings.Muted, logging.Component(logger, "audio"))
	}
	sound.Subscribe(game.EventDispatcher)
	defer sound.Detach(game.EventDispatcher)

	session := state.NewSession(game, fonts, logging.Component(logger, "host"))
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, session))

	logger.Info().
		Int64("seed", game.Rng.Seed()).
		Bool("muted", settings.Muted).
		Msg("starting")

	ebiten.SetWindowSize(
		int(config.ScreenWidth*settings.WindowScale),
		int((config.ScreenHeight+config.HUDHeight)*settings.WindowScale),
	)
	ebiten.SetWindowTitle(settings.Title)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, session: session}); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}

func loadCatalog() (*defs.Catalog, error) {
	if catalogPath == "" {
		return defs.LoadBuiltin()
	}
	return defs.LoadFile(catalogPath)
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339

	rootCmd.Flags().StringVar(&envFile, "env", ".env", "Path to an env file with SANITY_* settings.")
	rootCmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to a JSON sprite catalog (built-in if empty).")
	rootCmd.Flags().BoolVar(&noAudio, "no-audio", false, "Do not open an audio device.")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Random seed (0 uses the clock).")
	rootCmd.Flags().BoolVar(&flagMuted, "muted", false, "Start with sound off.")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 1.0, "Window scale factor.")
	rootCmd.Flags().StringVar(&flagLevel, "log-level", "info", "Log level: debug, info, warn, error.")
	rootCmd.Flags().StringVar(&flagPprof, "pprof", "", "Address for the pprof server, e.g. localhost:6060.")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
