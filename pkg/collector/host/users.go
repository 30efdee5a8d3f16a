package host

import (
	"bufio"
	"context"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	gopshost "github.com/shirou/gopsutil/v4/host"
)

// User describes the invoking user plus account database totals.
type User struct {
	CurrentUser   string
	CurrentGroup  string
	HomeDirectory string
	Shell         string
	UserCount     int
	GroupCount    int
	LoggedIn      []string
}

// User resolves the current uid and gid to names and counts the entries
// of the passwd and group databases in one pass each. Logged-in users
// come from the utmp accounting database.
func (c *Collector) User(ctx context.Context) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info := &User{}
	if u, err := user.Current(); err == nil {
		info.CurrentUser = u.Username
		info.HomeDirectory = u.HomeDir
		if g, err := user.LookupGroupId(u.Gid); err == nil {
			info.CurrentGroup = g.Name
		}
	}

	info.UserCount, info.Shell = c.scanPasswd(os.Getuid())
	info.GroupCount = countEntries(filepath.Join(c.etc(), "group"))

	if users, err := gopshost.UsersWithContext(ctx); err == nil {
		seen := make(map[string]bool)
		for _, u := range users {
			if u.User != "" && !seen[u.User] {
				seen[u.User] = true
				info.LoggedIn = append(info.LoggedIn, u.User)
			}
		}
		sort.Strings(info.LoggedIn)
	}

	return info, nil
}

// scanPasswd counts /etc/passwd entries and picks up the login shell of
// the entry matching uid.
func (c *Collector) scanPasswd(uid int) (count int, shell string) {
	f, err := os.Open(filepath.Join(c.etc(), "passwd"))
	if err != nil {
		return 0, ""
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) < 7 {
			continue
		}
		count++
		if id, err := strconv.Atoi(fields[2]); err == nil && id == uid && shell == "" {
			shell = fields[6]
		}
	}
	return count, shell
}

func countEntries(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	count := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.Count(line, ":") >= 2 {
			count++
		}
	}
	return count
}
