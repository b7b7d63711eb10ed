// Command typewright is a menu-driven terminal front end for the quicktype
// code generator: pick languages and flags, point it at a file, URL, or
// pasted JSON, and review the highlighted result in a popup.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	typewright "github.com/qtwr/typewright"
	"github.com/qtwr/typewright/config"
	"github.com/qtwr/typewright/internal/logutil"
	"github.com/qtwr/typewright/menu"
)

var (
	flagConfig string
	flagTool   string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:           "typewright",
	Short:         "Menu-driven terminal front end for quicktype",
	Long:          "typewright wraps the quicktype code generator in a terminal menu:\npick source and target languages, toggle flags, and review the\nhighlighted output in a popup.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.config/typewright/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flagTool, "tool", "", "quicktype command override (e.g. \"npx quicktype\")")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "write debug logs to a file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.Version = typewright.Version()
	rootCmd.SetVersionTemplate(fmt.Sprintf("typewright v%s\n", typewright.Version()))
}

// loadConfig resolves the config path and applies command-line overrides.
func loadConfig() (config.Config, error) {
	path := flagConfig
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Default(), nil // no config dir; defaults still work
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if flagTool != "" {
		cfg.Tool = flagTool
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, closeLog, err := logutil.New(cfg.DebugLog, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()
	log.Debugw("starting", "version", typewright.Version())

	m := menu.New(menu.Config{
		App:   cfg,
		Style: menu.DefaultStyle(),
		Keys:  menu.DefaultKeyMap(),
		Log:   log,
	})

	_, err = tea.NewProgram(appModel{menu: m}, tea.WithAltScreen()).Run()
	return err
}

// appModel adapts the menu component to the tea.Model interface.
type appModel struct {
	menu menu.Model
}

func (a appModel) Init() tea.Cmd { return a.menu.Init() }

func (a appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.menu.Update(msg)
	a.menu = m
	return a, cmd
}

func (a appModel) View() string { return a.menu.View() }

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
