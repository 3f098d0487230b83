package gittest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/promptline/gitline/internal/git"
	"github.com/stretchr/testify/require"
)

func CreateFile(t *testing.T, repo *git.Repo, filename string, body []byte) string {
	fp := filepath.Join(repo.Dir(), filename)
	err := os.WriteFile(fp, body, 0644)
	require.NoError(t, err, "failed to write file: %s", filename)
	return fp
}

func AddFile(t *testing.T, repo *git.Repo, fp string) {
	_, err := repo.Git(context.Background(), "add", fp)
	require.NoError(t, err, "failed to add file: %s", fp)
}

func CommitFile(t *testing.T, repo *git.Repo, filename string, body []byte) {
	fp := CreateFile(t, repo, filename, body)
	AddFile(t, repo, fp)

	msg := fmt.Sprintf("write file %s", filename)
	_, err := repo.Git(context.Background(), "commit", "-m", msg)
	require.NoError(t, err, "failed to commit file: %s", filename)
}
