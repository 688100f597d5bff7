// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	tifa "github.com/shutter-cp/blockpy/analyzer"
)

// SupportedMajor is the major version of the settings format this package reads.
const SupportedMajor = "v1"

var (
	// ErrInvalidVersion is returned for a version field that is not a semantic version.
	ErrInvalidVersion = errors.New("invalid settings version")

	// ErrUnsupportedVersion is returned for a settings format of another major version.
	ErrUnsupportedVersion = errors.New("unsupported settings version")
)

// Decode converts raw settings, as decoded from YAML or JSON into generic
// maps, into [Settings] and validates them.
func Decode(rawSettings any) (Settings, error) {
	s, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return Settings{}, err
	}

	if err := s.validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Parse reads settings from YAML or JSON text.
func Parse(data []byte) (Settings, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Settings{}, fmt.Errorf("can't parse settings: %w", err)
	}

	return Decode(raw)
}

// Load reads a settings file.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}

	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

func (s Settings) validate() error {
	if v := s.Version; v != nil {
		if !semver.IsValid(*v) {
			return fmt.Errorf("%w %q", ErrInvalidVersion, *v)
		}

		if major := semver.Major(*v); major != SupportedMajor {
			return fmt.Errorf("%w %s, want %s", ErrUnsupportedVersion, *v, SupportedMajor)
		}
	}

	var errs []error

	for _, name := range s.Disable {
		if _, err := tifa.ParseKind(name); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
