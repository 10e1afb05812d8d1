package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"tzconv/config"
	"tzconv/infras/otel"
	"tzconv/shared/constant"
	"tzconv/shared/failure"
	"tzconv/shared/timezone"
	"tzconv/shared/validator"
)

// Zone is the catalog of zone identifiers known to the host.
type Zone interface {
	ListAll(ctx context.Context) ([]string, error)
	IsValid(candidate string) bool
}

var defaultZoneInfoDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/lib/zoneinfo",
	"/usr/share/lib/zoneinfo",
}

// Subtrees holding duplicate copies of the database under other rules.
var skippedTrees = []string{"posix", "right"}

var skippedFiles = []string{"posixrules", "localtime", "leapseconds", "Factory"}

var errNotDir = errors.New("not a directory")

type repositoryImpl struct {
	dirs     []string
	fallback []string
	otel     otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Zone {
	return NewWithDirs(SearchDirs(cfg), timezone.FallbackZones(), otel)
}

// NewWithDirs builds a catalog over explicit directories and fallback list.
func NewWithDirs(dirs, fallback []string, otel otel.Otel) Zone {
	return &repositoryImpl{
		dirs:     dirs,
		fallback: fallback,
		otel:     otel,
	}
}

// SearchDirs returns the zoneinfo directories to walk: $ZONEINFO, the configured
// directories, then the usual system locations, without duplicates.
func SearchDirs(cfg *config.Config) []string {
	var dirs []string

	if env := os.Getenv("ZONEINFO"); env != constant.Empty {
		dirs = append(dirs, env)
	}

	dirs = append(dirs, cfg.App.Catalog.ZoneInfoDirs...)
	dirs = append(dirs, defaultZoneInfoDirs...)

	res := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		dir = filepath.Clean(dir)
		if !slices.Contains(res, dir) {
			res = append(res, dir)
		}
	}

	return res
}

// IsValid implements Zone.
func (r *repositoryImpl) IsValid(candidate string) bool {
	return validator.IsTimeZone(candidate)
}

// ListAll implements Zone.
func (r *repositoryImpl) ListAll(ctx context.Context) (zones []string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ListAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	seen := make(map[string]struct{})

	for _, dir := range r.dirs {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("listing zones: %w", err)
		}

		found, walkErr := r.walk(dir)
		if walkErr != nil {
			log.Debug().Err(walkErr).Str(constant.LogFieldDir, dir).Msg("Skipping zoneinfo directory")

			continue
		}

		scope.AddEvent("walked " + dir)

		for _, zone := range found {
			seen[zone] = struct{}{}
		}
	}

	if len(seen) == 0 {
		if len(r.fallback) == 0 {
			return nil, failure.ZoneCatalogUnavailable(nil) //nolint:wrapcheck
		}

		log.Warn().Strs("dirs", r.dirs).Msg("Could not enumerate the host time zone database, using the built-in zone list")

		zones = slices.Clone(r.fallback)
		slices.Sort(zones)

		return slices.Compact(zones), nil
	}

	zones = make([]string, 0, len(seen))
	for zone := range seen {
		zones = append(zones, zone)
	}

	slices.Sort(zones)

	scope.SetAttribute("catalog.size", len(zones))

	return zones, nil
}

func (r *repositoryImpl) walk(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat zoneinfo dir: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, errNotDir)
	}

	var zones []string

	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}

			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}

			return nil
		}

		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil //nolint:nilerr
		}

		rel = filepath.ToSlash(rel)

		if entry.IsDir() {
			if skipTree(rel) {
				return fs.SkipDir
			}

			return nil
		}

		if skipTree(rel) || !looksLikeZone(entry.Name()) {
			return nil
		}

		if r.IsValid(rel) {
			zones = append(zones, rel)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return zones, nil
}

func skipTree(rel string) bool {
	first, _, _ := strings.Cut(rel, "/")

	return slices.Contains(skippedTrees, first) || strings.HasPrefix(first, ".")
}

// looksLikeZone filters out the tables and metadata shipped next to the zone files.
func looksLikeZone(name string) bool {
	if slices.Contains(skippedFiles, name) || strings.Contains(name, ".") {
		return false
	}

	first := []rune(name)[0]

	return unicode.IsUpper(first)
}
