package git

import (
	"fmt"
	"net/url"
	"strings"
)

// Remote identifies a hosted repository parsed from a remote URL
type Remote struct {
	Host  string
	Owner string
	Repo  string
}

// ParseRemoteURL extracts host, owner and repository name from a git remote
// URL. Both common forms are supported:
//
//	git@github.com:org/repo.git
//	https://github.com/org/repo.git
func ParseRemoteURL(raw string) (Remote, error) {
	raw = strings.TrimSpace(raw)

	if rest, ok := strings.CutPrefix(raw, "git@"); ok {
		host, path, ok := strings.Cut(rest, ":")
		if ok {
			if remote, ok := splitOwnerRepo(host, path); ok {
				return remote, nil
			}
		}
	}

	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		parsed, err := url.Parse(raw)
		if err == nil {
			if remote, ok := splitOwnerRepo(parsed.Host, strings.TrimPrefix(parsed.Path, "/")); ok {
				return remote, nil
			}
		}
	}

	return Remote{}, fmt.Errorf("cannot parse git URL: %s", raw)
}

func splitOwnerRepo(host, path string) (Remote, bool) {
	path = strings.TrimSuffix(path, ".git")
	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Remote{}, false
	}
	return Remote{Host: host, Owner: parts[0], Repo: parts[1]}, true
}
