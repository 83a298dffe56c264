// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the translation files against the source code. It
// scans the Go sources for i18n.T() calls and compares them against the YAML
// locale files:
//
//   - a message ID used in code but missing from the primary locale is an error
//   - an ID of the primary locale missing from another locale is an error
//   - an ID no code uses is reported as orphaned (warning only)
//
// Calls like i18n.T("radix." + r.Name()) mark every ID with that prefix as
// used.
//
// Usage:
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

var (
	reKey       = regexp.MustCompile(`i18n\.T\("([^"]+)"\s*([,)+])`)
	skippedDirs = map[string]struct{}{"tools": {}, "_examples": {}, ".git": {}}
)

// usage lists the message IDs found in code. Prefixes are the constant
// parts of IDs built at run time.
type usage struct {
	Keys     map[string]struct{}
	Prefixes []string
}

func (u usage) uses(key string) bool {
	if _, ok := u.Keys[key]; ok {
		return true
	}
	for _, p := range u.Prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

// report is the outcome of one lint run.
type report struct {
	Undefined []string            // used in code, missing from the primary locale
	Missing   map[string][]string // locale file -> IDs missing there
	Orphaned  []string            // in the primary locale, unused
}

func (r report) failed() bool {
	return len(r.Undefined) > 0 || len(r.Missing) > 0
}

func main() {
	fmt.Println("🔍 Running i18n linter...")
	r, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	r.print(os.Stdout)
	if r.failed() {
		os.Exit(1)
	}
}

func lint(root, locales string) (report, error) {
	r := report{Missing: map[string][]string{}}

	used, err := findUsedKeys(root)
	if err != nil {
		return r, fmt.Errorf("finding used keys: %w", err)
	}

	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return r, fmt.Errorf("loading primary locale %s: %w", primaryLocale, err)
	}

	for key := range used.Keys {
		if _, ok := primary[key]; !ok {
			r.Undefined = append(r.Undefined, key)
		}
	}
	for key := range primary {
		if !used.uses(key) {
			r.Orphaned = append(r.Orphaned, key)
		}
	}
	sort.Strings(r.Undefined)
	sort.Strings(r.Orphaned)

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return r, fmt.Errorf("finding locale files: %w", err)
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return r, fmt.Errorf("loading %s: %w", file, err)
		}
		var missing []string
		for key := range primary {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			r.Missing[filepath.Base(file)] = missing
		}
	}
	return r, nil
}

func (r report) print(w io.Writer) {
	section := func(title string, keys []string, label string) {
		fmt.Fprintf(w, "--- %s ---\n", title)
		if len(keys) == 0 {
			fmt.Fprintln(w, "  ✨ None found.")
		}
		for _, key := range keys {
			fmt.Fprintf(w, "  - %s: %s\n", label, key)
		}
		fmt.Fprintln(w)
	}

	section("Undefined Keys (used in code, not in "+primaryLocale+")", r.Undefined, "Undefined")

	locales := make([]string, 0, len(r.Missing))
	for file := range r.Missing {
		locales = append(locales, file)
	}
	sort.Strings(locales)
	for _, file := range locales {
		section("Missing Keys in "+file, r.Missing[file], "Missing")
	}

	section("Orphaned Keys (not used in code)", r.Orphaned, "Orphaned")

	switch {
	case r.failed():
		fmt.Fprintln(w, "❌ Found issues that need to be addressed.")
	case len(r.Orphaned) > 0:
		fmt.Fprintln(w, "⚠️  Found orphaned keys. Please consider removing them.")
	default:
		fmt.Fprintln(w, "✅ All translation files are consistent!")
	}
}

// findUsedKeys scans all non-test .go files below root for i18n.T calls.
func findUsedKeys(root string) (usage, error) {
	u := usage{Keys: map[string]struct{}{}}
	prefixes := map[string]struct{}{}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if _, skip := skippedDirs[info.Name()]; skip && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range reKey.FindAllStringSubmatch(string(content), -1) {
			if match[2] == "+" {
				prefixes[match[1]] = struct{}{}
			} else {
				u.Keys[match[1]] = struct{}{}
			}
		}
		return nil
	})

	for p := range prefixes {
		u.Prefixes = append(u.Prefixes, p)
	}
	sort.Strings(u.Prefixes)
	return u, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into a flat set of dot-separated keys.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
