// dasher is a small side-scroller: jump the nebulae, reach the finish line.
//
// Usage:
//
//	dasher                       - Open the variant menu
//	dasher --variant jump        - Preselect a variant
//	dasher --skip-menu           - Start the variant straight away
//
// Flags:
//
//	--config <file>     - YAML tuning overrides per variant
//	--assets <dir>      - Directory holding textures/ (default: .)
//	--debug             - Show hitboxes and TPS/FPS (toggle with F3)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/automoto/dasher/assets"
	"github.com/automoto/dasher/config"
	"github.com/automoto/dasher/fonts"
	"github.com/automoto/dasher/scenes"
	"github.com/automoto/dasher/shared/dashconfig"
	"github.com/automoto/dasher/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game loop after the current update
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(start config.Variant) *Game {
	fonts.LoadDefaults(config.HUD.FontSize, config.Menu.FontSize, config.EndScreen.FontSize, config.Menu.TitleFontSize)

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewDasherScene(g, start)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var (
	flagVariant  string
	flagSkipMenu bool
	flagConfig   string
	flagAssets   string
	flagDebug    bool
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "dasher",
	Short: "Dasher - jump the nebulae, reach the finish line",
	Long: `Dasher is a small side-scroller. Space jumps; touching a nebula ends
the run, crossing the finish line wins it.

Variants:
  jump    - Scarfy, gravity and the jump button
  dodge   - Running animation and two nebulae
  dasher  - Parallax city, six nebulae and a finish line

Examples:
  dasher
  dasher --variant dodge --skip-menu
  dasher --config ./tuning.yaml --assets ./data`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagVariant, "variant", string(dashconfig.DefaultVariant), "Variant to preselect: jump, dodge or dasher")
	rootCmd.PersistentFlags().BoolVar(&flagSkipMenu, "skip-menu", false, "Start the variant without showing the menu")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML file of tuning overrides")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", ".", "Directory the textures/ folder is read from")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Show hitboxes and TPS/FPS")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)
	log.SetPrefix("dasher")

	config.C.AssetRoot = flagAssets
	config.C.TuningFile = flagConfig
	config.Debug.SkipMenu = flagSkipMenu
	config.Debug.Hitboxes = flagDebug

	start, err := prepareVariants(dashconfig.VariantID(flagVariant))
	if err != nil {
		return err
	}
	config.UseVariant(start)

	if err := systems.InitPersistence(); err != nil {
		log.Warn("could not initialize persistence", "err", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(start)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// prepareVariants applies the tuning file to every preset, loads each
// variant's textures and validates the result, so that a broken asset or
// tuning aborts before the window opens. It returns the variant to start.
func prepareVariants(startID dashconfig.VariantID) (config.Variant, error) {
	if _, err := dashconfig.Preset(startID); err != nil {
		return config.Variant{}, err
	}

	assets.Init(config.C.AssetRoot)

	var ready []config.Variant
	for _, v := range dashconfig.Presets() {
		if config.C.TuningFile != "" {
			if err := dashconfig.LoadOverrides(config.C.TuningFile, &v); err != nil {
				return config.Variant{}, err
			}
		}

		sizes, err := assets.Loader().LoadVariant(v)
		if err != nil {
			return config.Variant{}, fmt.Errorf("variant %s: %w", v.ID, err)
		}
		if err := v.ValidateSizes(sizes); err != nil {
			return config.Variant{}, err
		}

		log.Debug("variant ready", "variant", v.ID, "window", fmt.Sprintf("%dx%d", v.WindowWidth, v.WindowHeight), "obstacles", v.Obstacles.Count)
		ready = append(ready, v)
	}
	config.SetVariants(ready)
	log.Info("loaded variants", "count", len(ready), "assets", config.C.AssetRoot)

	return config.VariantByID(startID)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("dasher failed", "err", err)
		os.Exit(1)
	}
}
