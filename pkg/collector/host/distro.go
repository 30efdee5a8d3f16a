package host

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
)

// Distro holds the identification fields of /etc/os-release.
type Distro struct {
	Name            string
	Version         string
	ID              string
	IDLike          string
	VersionCodename string
	VersionID       string
	PrettyName      string
	HomeURL         string
	SupportURL      string
	BugReportURL    string
}

// Distro parses /etc/os-release. Lines without '=' are skipped, values
// lose one surrounding quote pair, and the first non-empty occurrence
// of a key wins. A missing file yields an empty record.
func (c *Collector) Distro(ctx context.Context) (*Distro, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info := &Distro{}
	f, err := os.Open(filepath.Join(c.etc(), "os-release"))
	if err != nil {
		return info, nil
	}
	defer f.Close()

	fields := map[string]*string{
		"NAME":             &info.Name,
		"VERSION":          &info.Version,
		"ID":               &info.ID,
		"ID_LIKE":          &info.IDLike,
		"VERSION_CODENAME": &info.VersionCodename,
		"VERSION_ID":       &info.VersionID,
		"PRETTY_NAME":      &info.PrettyName,
		"HOME_URL":         &info.HomeURL,
		"SUPPORT_URL":      &info.SupportURL,
		"BUG_REPORT_URL":   &info.BugReportURL,
	}

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = unquote(strings.TrimSpace(value))

		if dst, ok := fields[key]; ok && *dst == "" {
			*dst = value
		}
	}

	return info, sc.Err()
}

// unquote strips exactly one pair of surrounding double quotes. Short
// or unquoted values pass through untouched.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
