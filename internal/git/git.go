// Package git reads commit history for changelog-updater. It uses the go-git
// library so no git CLI is required on the host.
package git

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrNoHistory is returned when the repository has no commit at HEAD.
var ErrNoHistory = errors.New("repository has no commits")

// Repository wraps a go-git repository opened from a working directory.
type Repository struct {
	repo *git.Repository
}

// Open opens the git repository containing path, walking up the directory
// tree the way the git CLI does. If path is empty the current working
// directory is used.
func Open(path string) (*Repository, error) {
	repo, err := openRepo(path)
	if err != nil {
		return nil, err
	}
	return &Repository{repo: repo}, nil
}

// openRepo opens a git repository at the specified path or current working directory.
// It uses go-git's PlainOpenWithOptions with DetectDotGit enabled to traverse
// up the directory tree to find the repository root.
func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	return repo, nil
}

// headHash resolves HEAD, mapping an unborn branch to ErrNoHistory.
func (r *Repository) headHash() (plumbing.Hash, error) {
	head, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return plumbing.ZeroHash, ErrNoHistory
		}
		return plumbing.ZeroHash, fmt.Errorf("getting HEAD reference: %w", err)
	}
	return head.Hash(), nil
}
