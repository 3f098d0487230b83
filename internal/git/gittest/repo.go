package gittest

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/promptline/gitline/internal/git"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func init() {
	logrus.SetLevel(logrus.DebugLevel)
}

// NewTempRepo initializes a new git repository with reasonable defaults and a
// bare "origin" remote that main is pushed to.
func NewTempRepo(t *testing.T) *git.Repo {
	var dir string
	var remoteDir string
	if os.Getenv("GITLINE_TEST_PRESERVE_TEMP_REPO") != "" {
		var err error
		dir, err = os.MkdirTemp("", "repo")
		require.NoError(t, err)
		logrus.Infof("created git test repo: %s", dir)

		remoteDir, err = os.MkdirTemp("", "remote-repo")
		require.NoError(t, err)
		logrus.Infof("created git remote test repo: %s", remoteDir)
	} else {
		dir = filepath.Join(t.TempDir(), "local")
		require.NoError(t, os.MkdirAll(dir, 0755))

		remoteDir = filepath.Join(t.TempDir(), "remote")
		require.NoError(t, os.MkdirAll(remoteDir, 0755))
	}
	init := exec.Command("git", "init", "--initial-branch=main")
	init.Dir = dir

	err := init.Run()
	require.NoError(t, err, "failed to initialize git repository")

	remoteInit := exec.Command("git", "init", "--bare", "--initial-branch=main")
	remoteInit.Dir = remoteDir

	err = remoteInit.Run()
	require.NoError(t, err, "failed to initialize remote git repository")

	repo := git.OpenRepo(dir)
	ctx := context.Background()

	settings := map[string]string{
		"user.name":  "gitline-test",
		"user.email": "gitline-test@nonexistant",
	}
	for k, v := range settings {
		_, err = repo.Git(ctx, "config", k, v)
		require.NoErrorf(t, err, "failed to set config %s=%s", k, v)
	}

	_, err = repo.Git(ctx, "remote", "add", "origin", remoteDir)
	require.NoError(t, err, "failed to set remote")

	err = os.WriteFile(dir+"/README.md", []byte("# Hello World"), 0644)
	require.NoError(t, err, "failed to write README.md")

	_, err = repo.Git(ctx, "add", "README.md")
	require.NoError(t, err, "failed to stage README.md")

	_, err = repo.Git(ctx, "commit", "-m", "Initial commit")
	require.NoError(t, err, "failed to create initial commit")

	_, err = repo.Git(ctx, "push", "-u", "origin", "main")
	require.NoError(t, err, "failed to push to remote")

	return repo
}
