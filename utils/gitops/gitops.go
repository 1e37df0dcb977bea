// Package gitops wraps the git operations the publish flow needs:
// repository setup, dirty-tree detection, stage-all commits, and
// pushing to a named remote that is created on first use.
package gitops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/victorrathore/flowgen/utils/config"
)

// Committer identity used for publish commits.
const (
	committerName  = "flowgen"
	committerEmail = "flowgen@localhost"
)

// Repo wraps a git repository rooted at a working directory.
type Repo struct {
	path string
	repo *git.Repository
}

// Open opens the repository at dir, initializing a fresh one if no
// repository exists there yet.
func Open(dir string) (*Repo, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		if !errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("failed to open repository at %s: %w", dir, err)
		}
		config.DebugLog("[Git] No repository at %s, initializing", dir)
		repo, err = git.PlainInit(dir, false)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize repository at %s: %w", dir, err)
		}
	}
	return &Repo{path: dir, repo: repo}, nil
}

// Path returns the working directory the repository is rooted at.
func (r *Repo) Path() string {
	return r.path
}

// EnsureBranch makes sure the named branch is the checked-out branch.
// On a repository with no commits yet, HEAD is pointed at the branch so
// the first commit lands on it.
func (r *Repo) EnsureBranch(name string) error {
	branch := plumbing.NewBranchReferenceName(name)

	head, err := r.repo.Head()
	if err != nil {
		if !errors.Is(err, plumbing.ErrReferenceNotFound) {
			return fmt.Errorf("failed to resolve HEAD: %w", err)
		}
		// Unborn HEAD: retarget it, like `git symbolic-ref HEAD`
		ref := plumbing.NewSymbolicReference(plumbing.HEAD, branch)
		if err := r.repo.Storer.SetReference(ref); err != nil {
			return fmt.Errorf("failed to point HEAD at %s: %w", name, err)
		}
		config.DebugLog("[Git] Pointed unborn HEAD at %s", name)
		return nil
	}

	if head.Name() == branch {
		return nil
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}

	err = wt.Checkout(&git.CheckoutOptions{Branch: branch})
	if err != nil {
		// Branch doesn't exist yet; create it from the current HEAD
		err = wt.Checkout(&git.CheckoutOptions{Branch: branch, Create: true})
		if err != nil {
			return fmt.Errorf("failed to check out branch %s: %w", name, err)
		}
	}

	config.DebugLog("[Git] Checked out branch %s", name)
	return nil
}

// IsDirty reports whether the working tree has uncommitted changes,
// including untracked files.
func (r *Repo) IsDirty() (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to open worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("failed to get worktree status: %w", err)
	}
	return !status.IsClean(), nil
}

// CommitAll stages every change in the working tree and commits it
// with the given message.
func (r *Repo) CommitAll(message string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}

	_, err = wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  committerName,
			Email: committerEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	config.DebugLog("[Git] Committed staged changes: %s", message)
	return nil
}

// EnsureRemote returns after guaranteeing that a remote with the given
// name exists, creating it at url if absent.
func (r *Repo) EnsureRemote(name, url string) error {
	_, err := r.repo.Remote(name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, git.ErrRemoteNotFound) {
		return fmt.Errorf("failed to look up remote %s: %w", name, err)
	}

	_, err = r.repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: name,
		URLs: []string{url},
	})
	if err != nil {
		return fmt.Errorf("failed to create remote %s: %w", name, err)
	}

	config.DebugLog("[Git] Created remote %s -> %s", name, url)
	return nil
}

// Push pushes the given branch to the named remote with a
// local-to-remote refspec. An already-up-to-date result is not an error.
func (r *Repo) Push(remote, branch string) error {
	refspec := gitconfig.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", branch, branch))

	err := r.repo.Push(&git.PushOptions{
		RemoteName: remote,
		RefSpecs:   []gitconfig.RefSpec{refspec},
	})
	if err != nil {
		if errors.Is(err, git.NoErrAlreadyUpToDate) {
			config.DebugLog("[Git] Remote %s already up to date", remote)
			return nil
		}
		return fmt.Errorf("failed to push %s to %s: %w", branch, remote, err)
	}

	config.DebugLog("[Git] Pushed %s to %s", branch, remote)
	return nil
}

// Publish runs the commit decision: if the working tree is dirty, stage
// everything, commit with message, make sure the remote exists, and
// push the branch. It reports whether anything was committed.
func (r *Repo) Publish(message, remote, url, branch string) (bool, error) {
	dirty, err := r.IsDirty()
	if err != nil {
		return false, err
	}
	if !dirty {
		return false, nil
	}

	if err := r.CommitAll(message); err != nil {
		return false, err
	}
	if err := r.EnsureRemote(remote, url); err != nil {
		return false, err
	}
	if err := r.Push(remote, branch); err != nil {
		return false, err
	}

	return true, nil
}

// EnsurePlaceholder creates the file at path with the given content if
// it does not already exist.
func EnsurePlaceholder(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write placeholder %s: %w", path, err)
	}

	config.VerboseLog("[Git] Created placeholder file %s", path)
	return nil
}
