// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultDirectory is the smoke suite of the e2e project
	DefaultDirectory = "e2e/tests/smoke"

	// DefaultSuffix selects the comprehensive spec files
	DefaultSuffix = "_comprehensive.spec.ts"
)

// 📚 Config represents the complete configuration
type Config struct {
	Directory string `json:"directory,omitempty" yaml:"directory,omitempty" hcl:"directory,optional"`
	Suffix    string `json:"suffix,omitempty" yaml:"suffix,omitempty" hcl:"suffix,optional"`
}

// 🏭 Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Directory: DefaultDirectory,
		Suffix:    DefaultSuffix,
	}
}

// 🔄 Merge overlays the non-empty fields of other onto cfg
func (cfg *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Directory != "" {
		cfg.Directory = other.Directory
	}
	if other.Suffix != "" {
		cfg.Suffix = other.Suffix
	}
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Directory == "" {
		return errors.Errorf("directory is required")
	}
	if cfg.Suffix == "" {
		return errors.Errorf("suffix is required")
	}
	if strings.ContainsAny(cfg.Suffix, `/\`) {
		return errors.Errorf("suffix %q must be a file name suffix, not a path", cfg.Suffix)
	}

	cfg.Directory = filepath.Clean(cfg.Directory)

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s/*%s", cfg.Directory, cfg.Suffix)
}
