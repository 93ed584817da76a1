package app

import (
    "errors"
    "fmt"
    "os"
    "strings"

    "github.com/joho/godotenv"
)

// LoadEnvFiles loads one or more dotenv files into the process environment.
// Later files override earlier ones and override variables already set.
// Missing files are skipped.
func LoadEnvFiles(paths ...string) error {
    for _, p := range paths {
        if strings.TrimSpace(p) == "" {
            continue
        }
        if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
            continue
        }
        if err := godotenv.Overload(p); err != nil {
            return fmt.Errorf("load %s: %w", p, err)
        }
    }
    return nil
}
