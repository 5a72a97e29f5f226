package main

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlags binds each config key to the named flag. A missing flag is a
// programming error, so it panics at init.
func bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for key, flag := range keys {
		f := fs.Lookup(flag)
		if f == nil {
			panic("unknown flag " + flag)
		}
		if err := viper.BindPFlag(key, f); err != nil {
			panic(err)
		}
	}
}
