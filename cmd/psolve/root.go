package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ledgerwatch/log/v3"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "PSOLVE"

type app struct {
	v   *viper.Viper
	log log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: log.New()}
	var cfgFile string
	root := &cobra.Command{
		Use:           "psolve",
		Short:         "Range queries, multiset intersections and Pascal's triangle",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, cfgFile)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, any format viper reads")
	root.PersistentFlags().String("log-level", "info", "one of trace, debug, info, warn, error, crit")
	a.bind("log.level", root.PersistentFlags().Lookup("log-level"))
	root.AddCommand(a.pascalCmd(), a.intersectCmd(), a.rangeCmd())
	return root
}

// bind key to f, so the flag, PSOLVE_<KEY> and the config file all set key.
func (a *app) bind(key string, f *pflag.Flag) {
	if err := a.v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

// init reads the config and sets up logging, it runs before every sub command.
func (a *app) init(cmd *cobra.Command, cfgFile string) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
	}
	lvl, err := log.LvlFromString(a.v.GetString("log.level"))
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.log = log.New("cmd", cmd.Name())
	a.log.SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(cmd.ErrOrStderr(), log.LogfmtFormat())))
	return nil
}

// ints reads key as a list of integers. A config file gives a list, PSOLVE_<KEY> gives a comma
// separated string and an int slice flag gives its "[1,2,3]" form.
func (a *app) ints(key string) ([]int, error) {
	switch v := a.v.Get(key).(type) {
	case nil:
		return nil, nil
	case []int:
		return append([]int(nil), v...), nil
	case string:
		res, err := parseInts(strings.Trim(strings.TrimSpace(v), "[]"))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		return res, nil
	default:
		res, err := cast.ToIntSliceE(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		return res, nil
	}
}

// parseInts parses a comma separated list of integers. Blank items are skipped.
func parseInts(s string) ([]int, error) {
	var res []int
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		i, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", s, err)
		}
		res = append(res, i)
	}
	return res, nil
}
