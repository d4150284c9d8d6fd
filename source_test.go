package unparen

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/csfmt/unparen/internal/testutil"
)

// writeTree creates files under a temporary directory and returns its path.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		testutil.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "mkdir")
		testutil.NoError(t, os.WriteFile(path, []byte(content), 0o644), "write %s", name)
	}
	return root
}

func readAll(t *testing.T, src Source, path string) string {
	t.Helper()
	r, err := src.Open(path)
	testutil.NoError(t, err, "Open %s", path)
	defer func() { _ = r.Close() }()
	b, err := io.ReadAll(r)
	testutil.NoError(t, err, "ReadAll %s", path)
	return string(b)
}

func TestDirNonExistentPath(t *testing.T) {
	_, err := Dir("/this/path/does/not/exist/at/all")
	testutil.Error(t, err, "Dir with non-existent path should fail")
}

func TestDirNotADirectory(t *testing.T) {
	root := writeTree(t, map[string]string{"a.cs": "x;"})
	_, err := Dir(filepath.Join(root, "a.cs"))
	testutil.Error(t, err, "Dir with a file path should fail")
}

func TestMustDirPanicsOnError(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Error("MustDir with non-existent path should panic")
		}
	}()
	MustDir("/this/path/does/not/exist")
}

func TestDirListsOnlyTopLevelSources(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.cs":       "a;",
		"b.CSX":      "b;",
		"notes.txt":  "n",
		"sub/c.cs":   "c;",
		"Program.cs": "p;",
	})
	src := MustDir(root)
	files, err := src.ListFiles()
	testutil.NoError(t, err, "ListFiles")
	testutil.Len(t, files, 3, "files")
	testutil.Equal(t, "a;", readAll(t, src, filepath.Join(root, "a.cs")), "content")

	_, err = src.Open(filepath.Join(root, "sub", "c.cs"))
	testutil.True(t, errors.Is(err, fs.ErrNotExist), "nested file should not open, got %v", err)
}

func TestDirWithExtensions(t *testing.T) {
	root := writeTree(t, map[string]string{"a.cs": "a;", "b.txt": "b;"})
	files, err := MustDir(root, WithExtensions(".txt")).ListFiles()
	testutil.NoError(t, err, "ListFiles")
	testutil.SliceEqual(t, []string{filepath.Join(root, "b.txt")}, files, "files")
}

func TestDirTreeNonExistentPath(t *testing.T) {
	_, err := DirTree("/this/path/does/not/exist/at/all")
	testutil.Error(t, err, "DirTree with non-existent path should fail")
}

func TestMustDirTreePanicsOnError(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Error("MustDirTree with non-existent path should panic")
		}
	}()
	MustDirTree("/this/path/does/not/exist")
}

func TestDirTreeSkipsBuildOutput(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.cs":            "a;",
		"src/b.cs":        "b;",
		"src/deep/c.cs":   "c;",
		"bin/Debug/x.cs":  "x;",
		"obj/gen.cs":      "g;",
		"src/readme.md":   "r",
		".git/hooks/h.cs": "h;",
	})
	src := MustDirTree(root)
	files, err := src.ListFiles()
	testutil.NoError(t, err, "ListFiles")
	testutil.SliceEqual(t, []string{
		filepath.Join(root, "a.cs"),
		filepath.Join(root, "src", "b.cs"),
		filepath.Join(root, "src", "deep", "c.cs"),
	}, files, "files")
	testutil.Equal(t, "c;", readAll(t, src, files[2]), "content")

	_, err = src.Open(filepath.Join(root, "obj", "gen.cs"))
	testutil.True(t, errors.Is(err, fs.ErrNotExist), "skipped file should not open, got %v", err)
}

func TestDirTreeWithSkipDirs(t *testing.T) {
	root := writeTree(t, map[string]string{"bin/a.cs": "a;", "gen/b.cs": "b;"})
	files, err := MustDirTree(root, WithSkipDirs("gen")).ListFiles()
	testutil.NoError(t, err, "ListFiles")
	testutil.SliceEqual(t, []string{filepath.Join(root, "bin", "a.cs")}, files, "files")
}

func TestFilesSource(t *testing.T) {
	root := writeTree(t, map[string]string{"script": "s;"})
	path := filepath.Join(root, "script")
	src := Files(path)
	files, err := src.ListFiles()
	testutil.NoError(t, err, "ListFiles")
	testutil.SliceEqual(t, []string{path}, files, "extension is not checked")
	testutil.Equal(t, "s;", readAll(t, src, path), "content")

	_, err = src.Open(filepath.Join(root, "other"))
	testutil.True(t, errors.Is(err, fs.ErrNotExist), "unlisted path, got %v", err)
}

func TestFSSource(t *testing.T) {
	fsys := fstest.MapFS{
		"app/Main.cs":    {Data: []byte("Main();")},
		"app/obj/gen.cs": {Data: []byte("gen();")},
		"README.md":      {Data: []byte("readme")},
	}
	src := FS("embedded", fsys)
	files, err := src.ListFiles()
	testutil.NoError(t, err, "ListFiles")
	testutil.SliceEqual(t, []string{"embedded:app/Main.cs"}, files, "files")
	testutil.Equal(t, "Main();", readAll(t, src, files[0]), "content")

	_, err = src.Open("app/Main.cs")
	testutil.True(t, errors.Is(err, fs.ErrNotExist), "path without source name, got %v", err)
}

func TestMultiSource(t *testing.T) {
	root := writeTree(t, map[string]string{"a.cs": "a;"})
	fsys := fstest.MapFS{"b.cs": {Data: []byte("b;")}}
	dir := MustDir(root)
	src := Multi(dir, FS("mem", fsys), dir)

	files, err := src.ListFiles()
	testutil.NoError(t, err, "ListFiles")
	testutil.SliceEqual(t, []string{filepath.Join(root, "a.cs"), "mem:b.cs"}, files, "duplicates dropped")
	testutil.Equal(t, "a;", readAll(t, src, files[0]), "first source")
	testutil.Equal(t, "b;", readAll(t, src, files[1]), "second source")

	_, err = src.Open("missing.cs")
	testutil.True(t, errors.Is(err, fs.ErrNotExist), "missing path, got %v", err)
}
