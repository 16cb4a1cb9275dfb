package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ChristopherRabotin/orrery"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func testFlags(names ...string) *pflag.FlagSet {
	flags := pflag.NewFlagSet("orrery", pflag.ContinueOnError)
	for _, name := range names {
		switch name {
		case "catalog":
			flags.String(name, "", "")
		case "resolution":
			flags.Int(name, orrery.DefaultResolution, "")
		}
	}
	return flags
}

func TestBindFlags(t *testing.T) {
	if err := bindFlags(viper.New(), testFlags("catalog")); err == nil {
		t.Fatal("binding a missing flag should fail")
	}
	v := viper.New()
	orrery.SetDefaults(v)
	flags := testFlags("catalog", "resolution")
	if err := bindFlags(v, flags); err != nil {
		t.Fatal(err)
	}
	if err := flags.Set("resolution", "64"); err != nil {
		t.Fatal(err)
	}
	if v.GetInt("general.resolution") != 64 {
		t.Fatalf("flag not bound: %d", v.GetInt("general.resolution"))
	}
}

func TestSetupFromEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "conf.toml"), []byte("[general]\nresolution = 42\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(orrery.ConfigEnv, dir)
	v := viper.New()
	orrery.SetDefaults(v)
	flags := testFlags("catalog", "resolution")
	if err := bindFlags(v, flags); err != nil {
		t.Fatal(err)
	}
	s, conf, err := setup(v)
	if err != nil {
		t.Fatal(err)
	}
	if conf.Resolution != 42 || s.Name != "Sol" {
		t.Fatalf("configuration directory ignored: %+v", conf)
	}
	// Flags set on the command line override the file.
	flags.Set("resolution", "64")
	if _, conf, _ = setup(v); conf.Resolution != 64 {
		t.Fatalf("flag ignored: %d", conf.Resolution)
	}
}
