package git

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// ShortHashLength matches git's default abbreviation length. Unlike git's %h
// the prefix is never extended, so it is not guaranteed unique in large
// repositories.
const ShortHashLength = 7

// CommitInfo is a single entry of the history window.
type CommitInfo struct {
	Hash      string
	ShortHash string
	Subject   string
}

// RecentCommits returns up to limit non-merge commits reachable from HEAD,
// most recent first. Fewer commits are returned when the history is shorter.
func (r *Repository) RecentCommits(limit int) ([]CommitInfo, error) {
	if limit <= 0 {
		return nil, nil
	}

	from, err := r.headHash()
	if err != nil {
		return nil, err
	}

	iter, err := r.repo.Log(&git.LogOptions{
		From:  from,
		Order: git.LogOrderCommitterTime,
	})
	if err != nil {
		return nil, fmt.Errorf("reading log from %s: %w", from, err)
	}
	defer iter.Close()

	commits := make([]CommitInfo, 0, limit)
	err = iter.ForEach(func(c *object.Commit) error {
		if c.NumParents() > 1 {
			return nil
		}
		commits = append(commits, newCommitInfo(c))
		if len(commits) >= limit {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, fmt.Errorf("walking history: %w", err)
	}

	return commits, nil
}

func newCommitInfo(c *object.Commit) CommitInfo {
	hash := c.Hash.String()
	return CommitInfo{
		Hash:      hash,
		ShortHash: hash[:ShortHashLength],
		Subject:   subjectLine(c.Message),
	}
}

// subjectLine returns the first line of a commit message.
func subjectLine(message string) string {
	message = strings.TrimSpace(message)
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		message = message[:i]
	}
	return strings.TrimSpace(message)
}
