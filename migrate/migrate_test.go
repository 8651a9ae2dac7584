package migrate

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	rekeyerrors "github.com/mdblp/i18n-rekey/errors"
	"github.com/mdblp/i18n-rekey/messages"
	"github.com/mdblp/i18n-rekey/options"
	"github.com/mdblp/i18n-rekey/rewrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()
	bundle, err := messages.NewBundle()
	require.NoError(t, err)
	var buf bytes.Buffer
	return NewRunner(&buf, bundle, WithWidth(20)), &buf
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func readFile(t *testing.T, root, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
	require.NoError(t, err)
	return string(data)
}

func writeMapping(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keymap.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const appSource = "import { t } from 'i18next'\n\nconst a = t('Cancel')\nconst b = translate(\"Basal Rates\")\n// t('Cancel') in a comment is still a call\nalert('Cancel')\n"

const appSourceMigrated = "import { t } from 'i18next'\n\nconst a = t('cancel')\nconst b = translate(\"basal-rates\")\n// t('cancel') in a comment is still a call\nalert('Cancel')\n"

func sourceTree(t *testing.T) string {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"src/app.jsx":               appSource,
		"src/plain.ts":              "const label = 'Cancel'\n",
		"src/styles.css":            ".t('Cancel') {}\n",
		"node_modules/lib/index.js": "t('Cancel')\n",
		"dist/bundle.js":            "t('Cancel')\n",
	})
	return root
}

func TestSourceDirectoryRun(t *testing.T) {
	root := sourceTree(t)
	runner, out := newTestRunner(t)

	summary, err := runner.Source(&options.SourceConfig{Directory: root})
	require.NoError(t, err)

	if diff := cmp.Diff(appSourceMigrated, readFile(t, root, "src/app.jsx")); diff != "" {
		t.Errorf("migrated source mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "const label = 'Cancel'\n", readFile(t, root, "src/plain.ts"))
	assert.Equal(t, "t('Cancel')\n", readFile(t, root, "node_modules/lib/index.js"))
	assert.Equal(t, "t('Cancel')\n", readFile(t, root, "dist/bundle.js"))

	assert.Equal(t, 2, summary.Found)
	assert.Equal(t, 1, summary.Modified)
	assert.Equal(t, 1, summary.Unchanged)
	assert.Equal(t, 0, summary.Failed)
	assert.Contains(t, summary.Used, rewrite.Usage{OldKey: "Cancel", NewKey: "cancel", Count: 2})
	assert.Contains(t, summary.Used, rewrite.Usage{OldKey: "Basal Rates", NewKey: "basal-rates", Count: 1})
	assert.NotEmpty(t, summary.Unused)

	text := out.String()
	assert.Contains(t, text, "Found 2 source file(s)")
	assert.Contains(t, text, "✓ Modified: "+filepath.Join(root, "src", "app.jsx"))
	assert.Contains(t, text, "  'Cancel' -> 'cancel' (2 occurrence(s))")
	assert.Contains(t, text, "✓ 'Cancel' replaced 2 time(s)")
	assert.Contains(t, text, "⚠ Mapping: 'Carbs' -> 'carbs': new key is itself mapped to 'carbs-label'")
	assert.Contains(t, text, "✅ Done!")
}

func TestSourceDryRunLeavesDisk(t *testing.T) {
	root := sourceTree(t)
	runner, out := newTestRunner(t)

	summary, err := runner.Source(&options.SourceConfig{Directory: root, DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, appSource, readFile(t, root, "src/app.jsx"))
	assert.Equal(t, 1, summary.Modified)

	var changes []rewrite.Change
	for _, f := range summary.Files {
		changes = append(changes, f.Changes...)
	}
	assert.NotEmpty(t, changes)
	assert.Contains(t, out.String(), "🔍 DRY RUN MODE - No files will be modified")
	assert.Contains(t, out.String(), "→ Would modify: ")
	assert.Contains(t, out.String(), "💡 Run without --dry-run to apply changes")
}

func TestSourceSecondRunFindsNothing(t *testing.T) {
	root := sourceTree(t)

	runner, _ := newTestRunner(t)
	_, err := runner.Source(&options.SourceConfig{Directory: root})
	require.NoError(t, err)

	runner, _ = newTestRunner(t)
	summary, err := runner.Source(&options.SourceConfig{Directory: root})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Modified)
	assert.Equal(t, 2, summary.Unchanged)
}

func TestSourceZeroMatchDoesNotWrite(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"src/none.js": "console.log('nothing to see')\n"})
	path := filepath.Join(root, "src", "none.js")

	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(path, past, past))

	runner, _ := newTestRunner(t)
	summary, err := runner.Source(&options.SourceConfig{Directory: root})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Modified)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past), "file was rewritten")
	assert.Equal(t, "console.log('nothing to see')\n", readFile(t, root, "src/none.js"))
}

func TestSourceSingleFile(t *testing.T) {
	root := sourceTree(t)
	runner, out := newTestRunner(t)

	summary, err := runner.Source(&options.SourceConfig{File: filepath.Join(root, "src", "plain.ts")})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Found)
	assert.Equal(t, 0, summary.Modified)
	assert.Contains(t, out.String(), "No changes needed in "+filepath.Join(root, "src", "plain.ts"))
	assert.Equal(t, appSource, readFile(t, root, "src/app.jsx"))
}

func TestSourceCustomFunctionsAndExtensions(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"App.vue": "{{ $t('Cancel') }} {{ t('Cancel') }}\n",
		"app.js":  "$t('Cancel')\n",
	})
	runner, _ := newTestRunner(t)

	summary, err := runner.Source(&options.SourceConfig{
		Directory:  root,
		Functions:  []string{"$t"},
		Extensions: []string{".vue"},
		Mapping:    writeMapping(t, `{"Cancel": "cancel"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Found)
	assert.Equal(t, "{{ $t('cancel') }} {{ t('Cancel') }}\n", readFile(t, root, "App.vue"))
	assert.Equal(t, "$t('Cancel')\n", readFile(t, root, "app.js"))
}

func TestSourceBackupAndMode(t *testing.T) {
	root := sourceTree(t)
	path := filepath.Join(root, "src", "app.jsx")
	require.NoError(t, os.Chmod(path, 0600))
	backupDir := filepath.Join(t.TempDir(), "backup")

	runner, _ := newTestRunner(t)
	_, err := runner.Source(&options.SourceConfig{Directory: root, BackupDir: backupDir})
	require.NoError(t, err)

	assert.Equal(t, appSource, readFile(t, backupDir, "src/app.jsx"))
	assert.Equal(t, appSourceMigrated, readFile(t, root, "src/app.jsx"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestPathErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	runner, _ := newTestRunner(t)

	_, err := runner.Source(&options.SourceConfig{Directory: missing})
	assert.ErrorIs(t, err, rekeyerrors.ErrDirectoryNotFound)

	_, err = runner.Source(&options.SourceConfig{File: missing + ".js"})
	assert.ErrorIs(t, err, rekeyerrors.ErrFileNotFound)

	_, err = runner.Resource(&options.ResourceConfig{Directory: missing})
	assert.ErrorIs(t, err, rekeyerrors.ErrDirectoryNotFound)

	_, err = runner.Resource(&options.ResourceConfig{File: missing + ".json"})
	assert.ErrorIs(t, err, rekeyerrors.ErrFileNotFound)

	_, err = runner.Source(&options.SourceConfig{Directory: t.TempDir(), Mapping: missing + ".json"})
	assert.ErrorIs(t, err, rekeyerrors.ErrFailedToLoadMapping)

	_, err = runner.Resource(&options.ResourceConfig{Directory: t.TempDir(), Collision: "merge"})
	assert.ErrorIs(t, err, rekeyerrors.ErrInvalidCollisionMode)
}

func TestSourceNoFiles(t *testing.T) {
	runner, out := newTestRunner(t)
	summary, err := runner.Source(&options.SourceConfig{Directory: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Found)
	assert.Contains(t, out.String(), "No source files found")
}

func fileResult(t *testing.T, summary *Summary, path string) FileResult {
	t.Helper()
	for _, f := range summary.Files {
		if f.Path == path {
			return f
		}
	}
	t.Fatalf("no result for %s", path)
	return FileResult{}
}

func TestSourceInvalidEncodingFails(t *testing.T) {
	root := t.TempDir()
	const bad = "t('Cancel') // caf\xe9 \xff\n"
	writeFiles(t, root, map[string]string{
		"src/bad.js":  bad,
		"src/good.js": "t('Cancel')\n",
	})
	runner, out := newTestRunner(t)

	summary, err := runner.Source(&options.SourceConfig{
		Directory: root,
		Mapping:   writeMapping(t, `{"Cancel": "cancel"}`),
	})
	require.NoError(t, err)

	assert.Equal(t, bad, readFile(t, root, "src/bad.js"))
	assert.Equal(t, "t('cancel')\n", readFile(t, root, "src/good.js"))
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Modified)
	assert.Equal(t, []rewrite.Usage{{OldKey: "Cancel", NewKey: "cancel", Count: 1}}, summary.Used)

	result := fileResult(t, summary, filepath.Join(root, "src", "bad.js"))
	assert.False(t, result.Modified)
	assert.ErrorIs(t, result.Err, rekeyerrors.ErrInvalidEncoding)
	assert.Contains(t, out.String(), "is not valid UTF-8")
}

func TestSourceBackupFailureLeavesFile(t *testing.T) {
	root := sourceTree(t)
	path := filepath.Join(root, "src", "app.jsx")
	backupDir := filepath.Join(t.TempDir(), "backup")
	require.NoError(t, os.WriteFile(backupDir, []byte("not a directory"), 0644))

	runner, _ := newTestRunner(t)
	summary, err := runner.Source(&options.SourceConfig{
		File:      path,
		BackupDir: backupDir,
		Mapping:   writeMapping(t, `{"Cancel": "cancel"}`),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 0, summary.Modified)
	assert.Equal(t, appSource, readFile(t, root, "src/app.jsx"))
	assert.ErrorIs(t, summary.Files[0].Err, rekeyerrors.ErrFailedToBackupFile)
	assert.Empty(t, summary.Used)
	assert.Equal(t, []rewrite.Usage{{OldKey: "Cancel", NewKey: "cancel"}}, summary.Unused)
}

func TestMappingWarningsFollowTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		run   func(r *Runner, dir string) error
	}{
		{
			name:  "source",
			title: "Translation Key Replacer",
			run: func(r *Runner, dir string) error {
				_, err := r.Source(&options.SourceConfig{Directory: dir})
				return err
			},
		},
		{
			name:  "resource",
			title: "Translation Keys Updater",
			run: func(r *Runner, dir string) error {
				_, err := r.Resource(&options.ResourceConfig{Directory: dir})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner, out := newTestRunner(t)
			require.NoError(t, tt.run(runner, t.TempDir()))

			text := out.String()
			title := strings.Index(text, tt.title)
			warning := strings.Index(text, "⚠ Mapping:")
			require.GreaterOrEqual(t, title, 0)
			require.GreaterOrEqual(t, warning, 0)
			assert.Less(t, title, warning)
		})
	}
}
