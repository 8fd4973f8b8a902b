package cli

import (
	"github.com/ariel-frischer/changelog-updater/internal/changelog"
	"github.com/ariel-frischer/changelog-updater/internal/git"
)

// gitHistory adapts the git package to changelog.HistorySource. The
// repository is opened on each query so a missing repository surfaces as a
// history failure.
type gitHistory struct {
	dir string
}

func newGitHistory(dir string) *gitHistory {
	return &gitHistory{dir: dir}
}

func (h *gitHistory) RecentCommits(limit int) ([]changelog.Commit, error) {
	repo, err := git.Open(h.dir)
	if err != nil {
		return nil, err
	}

	infos, err := repo.RecentCommits(limit)
	if err != nil {
		return nil, err
	}

	commits := make([]changelog.Commit, len(infos))
	for i, info := range infos {
		commits[i] = changelog.Commit{ShortHash: info.ShortHash, Summary: info.Subject}
	}
	return commits, nil
}
