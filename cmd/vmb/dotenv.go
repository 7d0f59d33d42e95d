// ABOUTME: Loads VMB_* settings from .env files at startup without overriding the real environment.
// ABOUTME: Supports KEY=VALUE, quoted values, comments, and an optional "export " prefix.
package main

import (
	"bufio"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// parseDotEnv reads KEY=VALUE lines from r. Later keys replace earlier ones.
func parseDotEnv(r io.Reader) (map[string]string, error) {
	vars := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		vars[key] = unquote(strings.TrimSpace(value))
	}
	return vars, scanner.Err()
}

// unquote strips one pair of matching single or double quotes.
func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

// loadDotEnv sets variables from the file at path that are not already in
// the environment. A missing file is not an error.
func loadDotEnv(path string) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	vars, err := parseDotEnv(f)
	if err != nil {
		return err
	}
	for k, v := range vars {
		if _, exists := os.LookupEnv(k); !exists {
			os.Setenv(k, v)
		}
	}
	return nil
}

// loadDotEnvAuto loads .env from the working directory, then from next to
// the executable. The first file to set a key wins.
func loadDotEnvAuto() {
	var paths []string
	if wd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(wd, ".env"))
	}
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), ".env"))
	}
	loadDotEnvFiles(paths...)
}

// loadDotEnvFiles loads each path in order, logging files that exist but
// cannot be read.
func loadDotEnvFiles(paths ...string) {
	for _, p := range paths {
		if err := loadDotEnv(p); err != nil {
			log.Printf("dotenv load failed path=%s err=%v", p, err)
		}
	}
}
