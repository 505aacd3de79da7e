package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/eringen/newpost"
)

const (
	envPrefix      = "NEWPOST"
	configName     = ".newpost"
	configFileType = "yaml"
)

// configKeys are the persistent flags that map onto newpost.SiteConfig.
var configKeys = []string{"root", "posts-dir", "url", "layout", "index-file", "content-file"}

// bindConfig registers the persistent config flags on cmd and binds them,
// plus --verbose, to v.
func bindConfig(cmd *cobra.Command, v *viper.Viper) error {
	f := cmd.PersistentFlags()
	f.String("root", "", "Site root directory (default: current directory)")
	f.String("posts-dir", "", `Posts directory relative to the root (default "src/posts")`)
	f.String("url", "", `Canonical base URL (default "http://localhost:3000")`)
	f.String("layout", "", fmt.Sprintf("Index layout: %s (default %q)", strings.Join(newpost.Layouts(), ", "), newpost.LayoutPug))
	f.String("index-file", "", `Index document name (default "index.pug")`)
	f.String("content-file", "", `Content document name (default "content.md")`)
	f.String("config", "", "Config file (default: <root>/.newpost.yaml if present)")
	f.BoolP("verbose", "v", false, "Log debug output to stderr")

	for _, key := range append(configKeys, "config", "verbose") {
		if err := v.BindPFlag(key, f.Lookup(key)); err != nil {
			return fmt.Errorf("bind flag %s: %w", key, err)
		}
	}
	return nil
}

// loadConfig resolves the site configuration from flags, NEWPOST_* environment
// variables and the optional config file, in that order of precedence.
func loadConfig(v *viper.Viper) (newpost.SiteConfig, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfgFile := v.GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		root := v.GetString("root")
		if root == "" {
			root = "."
		}
		v.SetConfigName(configName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(root)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return newpost.SiteConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg newpost.SiteConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return newpost.SiteConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func newConfigCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(newpost.New(cfg).Config)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
