package versioning

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	ferrors "git.home.luguber.info/inful/frrdocs/internal/foundation/errors"
)

var tagPrefixes = []string{"frr-", "v"}

// TagVersion strips the release prefixes used by the project's tags.
// It returns false for tags that do not carry a version.
func TagVersion(tag string) (string, bool) {
	v := tag
	for _, p := range tagPrefixes {
		if strings.HasPrefix(v, p) {
			v = strings.TrimPrefix(v, p)
			break
		}
	}
	if v == "" || v[0] < '0' || v[0] > '9' {
		return "", false
	}
	if _, err := Parse(v); err != nil {
		return "", false
	}
	return v, true
}

// FromGit returns the highest version tag of the repository containing repoPath.
func FromGit(repoPath string) (string, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryGit, "open repository").
			WithContext("path", repoPath).
			Build()
	}
	tags, err := repo.Tags()
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryGit, "list tags").Build()
	}

	var (
		best     string
		bestTrip Triple
	)
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		v, ok := TagVersion(ref.Name().Short())
		if !ok {
			return nil
		}
		t, _ := Parse(v)
		if best == "" || bestTrip.Less(t) {
			best, bestTrip = v, t
		}
		return nil
	})
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryGit, "iterate tags").Build()
	}
	if best == "" {
		return "", ferrors.GitError("no version tags found").WithContext("path", repoPath).Build()
	}
	return best, nil
}
