package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"dario.cat/mergo"

	"github.com/taskmill/taskmill/internal/ctxlog"
	"github.com/taskmill/taskmill/internal/fsutil"
)

// OverridePrefix marks argv keys that carry configuration overrides. The
// prefix is stripped before the key enters the merged mapping.
const OverridePrefix = "config:"

// FromFile locates filename across dirs and loads it into a flat mapping.
// The file format is chosen by extension: .hcl, .yaml or .yml. A missing
// file yields an empty mapping and no error.
func FromFile(ctx context.Context, dirs []string, filename string) (map[string]any, error) {
	logger := ctxlog.FromContext(ctx)

	path, ok := fsutil.TryFile(dirs, filename)
	if !ok {
		logger.Debug("No config file found, using empty config.", "filename", filename)
		return map[string]any{}, nil
	}
	logger.Debug("Loading config file.", "path", path)

	switch ext := filepath.Ext(path); ext {
	case ".hcl":
		return loadHCL(path)
	case ".yaml", ".yml":
		return loadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported config file format %q in %s", ext, path)
	}
}

// FromArgs extracts configuration overrides from the command-line
// argument mapping. Keys carrying the reserved prefix contribute an entry
// with the prefix stripped and the value kept verbatim; all other keys
// are ignored here.
func FromArgs(argv map[string]string) map[string]any {
	overrides := map[string]any{}
	for key, value := range argv {
		if name, ok := strings.CutPrefix(key, OverridePrefix); ok {
			overrides[name] = value
		}
	}
	return overrides
}

// Build produces the merged configuration mapping: file config first,
// shallow-merged with command-line overrides, command line winning on
// same-named keys.
func Build(ctx context.Context, dirs []string, filename string, argv map[string]string) (map[string]any, error) {
	merged, err := FromFile(ctx, dirs, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if err := mergo.Merge(&merged, FromArgs(argv), mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge command-line config: %w", err)
	}

	return merged, nil
}
