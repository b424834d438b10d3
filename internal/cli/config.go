package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"noticecheck/pkg/github"
)

// configFile is looked up in the working directory. Absence is not an
// error; the defaults match the project layout.
const configFile = ".noticecheck.toml"

type config struct {
	Manifest     string   `toml:"manifest"`      // dependency manifest path
	Notices      string   `toml:"notices"`       // notices file path
	LicenseFiles []string `toml:"license_files"` // candidate filenames at repo root
	Timeout      duration `toml:"timeout"`       // per-request HTTP timeout
}

// duration lets TOML carry values like timeout = "30s".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func defaultConfig() config {
	return config{
		Manifest: "MODULE.bazel",
		Notices:  "THIRD_PARTY_NOTICES",
		Timeout:  duration{github.DefaultTimeout},
	}
}

// loadConfig returns the defaults overlaid with any settings from
// .noticecheck.toml in the working directory.
func loadConfig() (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(configFile)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", configFile, err)
	}
	return cfg, nil
}
