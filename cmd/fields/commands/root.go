package commands

import (
	"github.com/spf13/cobra"

	"fields/internal/app"
	"fields/internal/config"
	"fields/internal/log"
)

var (
	home    string
	cfgFile string
	debug   bool

	appCtx *app.App
	cfg    *config.Config
)

func Execute() error {
	root := &cobra.Command{
		Use:     "fields",
		Short:   "Field permit management and processing CLI",
		Version: "0.1.0",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := config.DefaultHome()
				if err != nil {
					return err
				}
				home = dir
			}

			if err := config.Init(home, cfgFile); err != nil {
				return err
			}
			var err error
			cfg, err = config.Load(home)
			if err != nil {
				return err
			}

			level := cfg.LogLevel
			if debug {
				level = "debug"
			}
			log.Configure(log.Config{Level: level})

			appCtx, err = app.NewWire(app.Config{
				Home:         cfg.Home,
				ScanPatterns: cfg.ScanPatterns,
			})
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.fields)")
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	root.AddCommand(
		helloCmd(),
		createFieldCmd(),
		listFieldsCmd(),
		readFileCmd(),
		summarizeCmd(),
		scanCmd(),
		convertCmd(),
		templateCmd(),
		statsCmd(),
		exportCmd(),
	)
	return root.Execute()
}
