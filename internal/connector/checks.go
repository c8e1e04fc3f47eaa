package connector

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/afero"
)

// latestTag is the npm dist-tag accepted as a version pin without parsing.
const latestTag = "latest"

// requireEnvVar returns an error message when name is unset or empty.
func (b *Base) requireEnvVar(name string) string {
	if b.env.Get(name) == "" {
		return fmt.Sprintf("missing required variable: %s", name)
	}
	return ""
}

// requireFile returns an error message when path does not exist.
func (b *Base) requireFile(path string) string {
	if ok, _ := afero.Exists(b.fs, b.expandHome(path)); !ok {
		return fmt.Sprintf("file not found: %s", path)
	}
	return ""
}

// requireDirectory returns an error message when path does not exist or
// is not a directory.
func (b *Base) requireDirectory(path string) string {
	expanded := b.expandHome(path)
	if ok, _ := afero.Exists(b.fs, expanded); !ok {
		return fmt.Sprintf("directory not found: %s", path)
	}
	if ok, _ := afero.IsDir(b.fs, expanded); !ok {
		return fmt.Sprintf("path is not a directory: %s", path)
	}
	return ""
}

// expandHome replaces a leading "~" with the home directory.
func (b *Base) expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	return filepath.Join(b.home, path[1:])
}

// splitList splits a comma-separated value and trims every entry.
// Empty entries are kept so callers can tell "" from ",".
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// nonEmpty drops empty strings.
func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// hasLeadingInt reports whether s starts with an integer after optional
// whitespace and sign, the way a lenient integer parser reads it ("30s" passes).
func hasLeadingInt(s string) bool {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// versionVar is the optional pin for the launched package: the enabled var
// with "_ENABLED" replaced by "_VERSION" (GDRIVE_ENABLED → GDRIVE_VERSION).
func (b *Base) versionVar() string {
	return strings.TrimSuffix(b.EnabledVar(), "_ENABLED") + "_VERSION"
}

// packageRef returns the npm package reference passed to npx, honouring a
// version pin when one is set.
func (b *Base) packageRef() string {
	if pin := b.env.Get(b.versionVar()); pin != "" {
		return b.desc.Package + "@" + pin
	}
	if b.desc.DefaultTag != "" {
		return b.desc.Package + "@" + b.desc.DefaultTag
	}
	return b.desc.Package
}

// checkVersionPin warns when the version pin is neither "latest", a
// version, nor a version range.
func (b *Base) checkVersionPin(r *ValidationResult) {
	name := b.versionVar()
	pin := b.env.Get(name)
	if pin == "" || pin == latestTag {
		return
	}
	if _, err := semver.NewVersion(pin); err == nil {
		return
	}
	if _, err := semver.NewConstraint(pin); err == nil {
		return
	}
	r.addWarningf("%s=%q is not a version, range or %q; npx may fail to resolve it", name, pin, latestTag)
}
