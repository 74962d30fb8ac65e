package config

import "flag"

type CliConfig struct {
	ConfigFile string
	EnvFile    string
	Debug      bool
	Version    bool
}

// ParseArgs parses the command line. Lambda starts the binary without arguments, so every flag has a
// usable zero value.
func ParseArgs(name string, args []string) (*CliConfig, error) {
	cli := &CliConfig{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cli.ConfigFile, "config", "", "Path to the YAML config file")
	fs.StringVar(&cli.EnvFile, "env", DotEnvFile, "Path to a .env file loaded before reading the environment")
	fs.BoolVar(&cli.Debug, "d", false, "Enable debug mode")
	fs.BoolVar(&cli.Debug, "debug", false, "Enable debug mode")
	fs.BoolVar(&cli.Version, "v", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cli, nil
}
