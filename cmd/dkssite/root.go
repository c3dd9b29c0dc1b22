package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/dkssite"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:          "dkssite",
		Short:        "DKS Liberia website server",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./dkssite.yaml if present)")
	root.PersistentFlags().String("content", "data", "content directory")
	_ = v.BindPFlag("content.dir", root.PersistentFlags().Lookup("content"))

	root.AddCommand(newServeCmd(v), newCheckCmd(v), newVersionCmd())
	return root
}

// initConfig layers configuration: flags, then environment (a .env file in
// the working directory is loaded first), then the YAML config file, then
// defaults. Keys map to env vars with dots replaced by underscores, so
// session.secret is read from SESSION_SECRET.
func initConfig(v *viper.Viper, cfgFile string) error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("load .env: %w", err)
		}
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("dkssite")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("site.name", "")
	v.SetDefault("site.url", "")
	v.SetDefault("site.description", "")
	v.SetDefault("site.author", "")
	v.SetDefault("contact.email", "")
	v.SetDefault("contact.phone", "")
	v.SetDefault("contact.address", "")
	v.SetDefault("contact.delay", "")
	v.SetDefault("contact.rate_limit", 0)
	v.SetDefault("server.addr", ":3000")
	v.SetDefault("content.watch", false)
	v.SetDefault("stories.page_size", 6)
	v.SetDefault("session.secret", "")
	v.SetDefault("cookie.secure", false)
	v.SetDefault("log.level", "info")
}

// siteConfig builds the app configuration. Empty values fall back to the
// app's own defaults.
func siteConfig(v *viper.Viper) (dkssite.SiteConfig, error) {
	cfg := dkssite.SiteConfig{
		Name:             v.GetString("site.name"),
		URL:              v.GetString("site.url"),
		Description:      v.GetString("site.description"),
		Author:           v.GetString("site.author"),
		ContactEmail:     v.GetString("contact.email"),
		ContactPhone:     v.GetString("contact.phone"),
		ContactAddress:   v.GetString("contact.address"),
		ContactRateLimit: v.GetInt("contact.rate_limit"),
		Addr:             v.GetString("server.addr"),
		ContentDir:       v.GetString("content.dir"),
		WatchContent:     v.GetBool("content.watch"),
		PageSize:         v.GetInt("stories.page_size"),
		SessionSecret:    v.GetString("session.secret"),
		CookieSecure:     v.GetBool("cookie.secure"),
		LogLevel:         v.GetString("log.level"),
	}
	if s := v.GetString("contact.delay"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return cfg, fmt.Errorf("contact.delay: %w", err)
		}
		cfg.ContactDelay = d
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dkssite version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dkssite %s\n", version)
		},
	}
}
