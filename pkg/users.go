package pkg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultPasswdPath is the system account database.
const DefaultPasswdPath = "/etc/passwd"

type User struct {
	Name string
	Home string
}

func (u User) String() string {
	return u.Name + ":" + u.Home
}

// ReadUsers loads a passwd style account database. Blank lines,
// comments and lines with too few fields are skipped. An empty
// database is not an error.
func ReadUsers(path string) ([]User, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return parseUsers(file)
}

func parseUsers(r io.Reader) ([]User, error) {
	users := []User{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, ":")
		if len(parts) < 7 {
			logrus.WithField("entry", line).Debugln("skip malformed passwd entry")
			continue
		}
		users = append(users, User{
			Name: parts[0],
			Home: parts[5],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// WriteUsers emits one name:home line per user, sorted by the whole
// formatted line.
func WriteUsers(w io.Writer, users []User) {
	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, u.String())
	}
	sort.Strings(lines)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
