/*
Copyright © 2025 David Robbins <darobbins85@gmail.com>
*/

package main

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/fatih/structs"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var (
	// Store the result of binding cobra flags
	Config       string
	ConfigActual string
	Debug        bool

	LocalStore string
	ExportPath string

	ParsedConfig YamlConfig
)

// Build the cobra command that handles our command line tool.
var rootCmd = &cobra.Command{
	Use:   "wordpress-static",
	Short: "Convert a WordPress export into a static HTML site",
	Long: `
Moving a WordPress site to plain static hosting?  This tool parses a WordPress eXtended RSS (WXR)
export, writes out a static HTML version of the site, downloads the media attachments, and cleans
the generated HTML of WordPress/plugin leftovers so it works from any static file server.
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// You can bind cobra and viper in a few locations, but PersistentPreRunE on the root command works well
		if err := initializeConfig(cmd); err != nil {
			return fmt.Errorf("wordpress-static: failed to initialise config: %w", err)
		}
		return nil
	},
}

func init() {
	// Define cobra flags, the default value has the lowest (least significant) precedence
	rootCmd.PersistentFlags().StringVar(&Config, "config", "", "config file location (default: ~/.config/wordpress-static.yaml, respects WORDPRESS_STATIC_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "display debug output")
	rootCmd.PersistentFlags().StringVar(&LocalStore, "store", "site", "output directory for the generated site")
	rootCmd.PersistentFlags().StringVar(&ExportPath, "export", "", "path to the WordPress WXR export file")
}

func initializeConfig(cmd *cobra.Command) error {
	explicit := Config != "" || os.Getenv("WORDPRESS_STATIC_CONFIG") != ""

	if Config == "" {
		// Did the user provide an ENV?
		envConfig := os.Getenv("WORDPRESS_STATIC_CONFIG")
		if envConfig != "" {
			Config = envConfig
		} else {
			// As fallback, search for config in home XDG-ish directory
			Config = "~/.config/wordpress-static.yaml"
		}
	}
	config, err := homedir.Expand(Config)
	if err != nil {
		return fmt.Errorf("wordpress-static: unable to expand homedir: %w", err)
	}
	ConfigActual = config

	if _, err := os.Stat(ConfigActual); errors.Is(err, os.ErrNotExist) {
		if explicit {
			return fmt.Errorf("wordpress-static: specified config file does not exist: %w", err)
		}
		// no config file is fine, flags and defaults take over
		debugLog("No config file at %s, continuing without one.\n", ConfigActual)
		return nil
	}

	yamlFile, err := os.ReadFile(ConfigActual)
	if err != nil {
		return fmt.Errorf("wordpress-static: error reading config file: %w", err)
	}

	// I'd like to bark if a user sets a flag we don't recognise:
	if err := yaml.UnmarshalStrict(yamlFile, &ParsedConfig); err != nil {
		return fmt.Errorf("wordpress-static: issue parsing config file: %w", err)
	}

	// Bind the current command's flags to the parsed YAML
	if err := bindFlags(cmd, ParsedConfig); err != nil {
		return fmt.Errorf("wordpress-static: failed to bind flags: %w", err)
	}

	return nil
}

type YamlConfig struct {
	AlwaysDownload *bool `yaml:"always-download"`
	WithVCR        *bool `yaml:"with-vcr"`
	WriteMarkdown  *bool `yaml:"write-markdown"`
	Prune          *bool `yaml:"prune"`

	StorePath string `yaml:"store"`
	Export    string `yaml:"export"`
	Domain    string `yaml:"domain"`
	UserAgent string `yaml:"user-agent"`

	Workers *int `yaml:"workers"`
}

// Bind each cobra flag to its associated YAML configuration entry
func bindFlags(cmd *cobra.Command, v YamlConfig) error {
	for _, field := range structs.Fields(v) {
		key := field.Tag("yaml")
		if key == "" {
			return fmt.Errorf("wordpress-static: could not retrieve struct tag 'yaml'")
		}
		if flag := cmd.Flag(key); flag == nil {
			// hmm... the flag is unknown.  but that can legitimately happen if you're running
			// e.g. `generate` which has no `workers` flag but your YAML file does define it...
			continue
		}
		if !cmd.Flags().Changed(key) {
			switch field.Kind() {
			case reflect.Ptr:
				// YamlConfig only uses pointers for bools and ints
				switch value := field.Value().(type) {
				case *bool:
					if value != nil {
						cmd.Flags().Set(key, fmt.Sprintf("%v", *value))
					}
				case *int:
					if value != nil {
						cmd.Flags().Set(key, fmt.Sprintf("%d", *value))
					}
				default:
					return fmt.Errorf("wordpress-static: found unrecognised field: %+v", field)
				}

			case reflect.String:
				s, ok := field.Value().(string)
				if !ok {
					return fmt.Errorf("wordpress-static: found unrecognised field: %+v", field)
				}
				if s != "" {
					cmd.Flags().Set(key, s)
				}

			default:
				return fmt.Errorf("wordpress-static: found unrecognised field: %+v", field)
			}
		}
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Flags are only available after (or inside, presumably) the .Execute() thing.
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("wordpress-static: execution error: %w", err)
	}

	return nil
}
