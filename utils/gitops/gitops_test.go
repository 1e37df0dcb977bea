package gitops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenInitializesRepository(t *testing.T) {
	dir := t.TempDir()

	repo, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, repo.Path())

	_, err = os.Stat(filepath.Join(dir, ".git"))
	assert.NoError(t, err, "Open should have initialized a repository")

	// Opening again must reuse the existing repository
	_, err = Open(dir)
	assert.NoError(t, err)
}

func TestEnsureBranchOnEmptyRepository(t *testing.T) {
	dir := t.TempDir()
	repo, err := Open(dir)
	require.NoError(t, err)

	// Point the unborn HEAD at main, then make the first commit there
	require.NoError(t, repo.EnsureBranch("main"))

	writeFile(t, dir, "index.html", "<html></html>")
	require.NoError(t, repo.CommitAll("initial commit"))

	head, err := repo.repo.Head()
	require.NoError(t, err)
	assert.Equal(t, "refs/heads/main", head.Name().String())

	// Idempotent once the branch exists
	assert.NoError(t, repo.EnsureBranch("main"))
}

func TestIsDirty(t *testing.T) {
	dir := t.TempDir()
	repo, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, repo.EnsureBranch("main"))

	dirty, err := repo.IsDirty()
	require.NoError(t, err)
	assert.False(t, dirty, "fresh repository should be clean")

	// An untracked file counts as dirty
	writeFile(t, dir, "index.html", "<html></html>")
	dirty, err = repo.IsDirty()
	require.NoError(t, err)
	assert.True(t, dirty, "untracked files should make the tree dirty")

	require.NoError(t, repo.CommitAll("add index"))
	dirty, err = repo.IsDirty()
	require.NoError(t, err)
	assert.False(t, dirty, "tree should be clean after committing everything")

	// A modified tracked file counts as dirty too
	writeFile(t, dir, "index.html", "<html><body></body></html>")
	dirty, err = repo.IsDirty()
	require.NoError(t, err)
	assert.True(t, dirty)
}

func TestEnsureRemote(t *testing.T) {
	dir := t.TempDir()
	repo, err := Open(dir)
	require.NoError(t, err)

	url := "https://example.com/site.git"
	require.NoError(t, repo.EnsureRemote("origin", url))

	remote, err := repo.repo.Remote("origin")
	require.NoError(t, err)
	assert.Equal(t, []string{url}, remote.Config().URLs)

	// Second call is a no-op, even with a different URL
	assert.NoError(t, repo.EnsureRemote("origin", "https://example.com/other.git"))
	remote, err = repo.repo.Remote("origin")
	require.NoError(t, err)
	assert.Equal(t, []string{url}, remote.Config().URLs)
}

func TestPublishSkipsCleanTree(t *testing.T) {
	dir := t.TempDir()
	repo, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, repo.EnsureBranch("main"))

	writeFile(t, dir, "index.html", "<html></html>")
	require.NoError(t, repo.CommitAll("initial commit"))

	published, err := repo.Publish("update", "origin", "https://example.com/site.git", "main")
	require.NoError(t, err)
	assert.False(t, published, "Publish must not commit or push on a clean tree")
}

func TestEnsurePlaceholder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")

	require.NoError(t, EnsurePlaceholder(path, "<html></html>"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(content))

	// An existing file is left untouched
	writeFile(t, dir, "index.html", "edited")
	require.NoError(t, EnsurePlaceholder(path, "<html></html>"))
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "edited", string(content))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}
