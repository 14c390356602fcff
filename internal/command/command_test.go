package command

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhr3/rollsearch/rolling"
)

// run executes the tool and returns its exit status, stdout and log output.
func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	logs := bytes.NewBuffer(nil)
	Clog.SetOutput(logs)
	t.Cleanup(func() { Clog.SetOutput(os.Stderr) })

	stdout := bytes.NewBuffer(nil)
	stderr := bytes.NewBuffer(nil)
	code := Run(append([]string{"hstrstr"}, args...), stdout, stderr)
	return code, stdout.String(), logs.String()
}

func TestSearch(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"hello world", "world"}, "world\n"},
		{[]string{"hello world", "o w"}, "o world\n"},
		{[]string{"aaaa", "aa"}, "aaaa\n"},
		{[]string{"abc", "xyz"}, "NOT FOUND\n"},
		{[]string{"abc", "abcd"}, "NOT FOUND\n"},
		{[]string{"abc", ""}, "abc\n"},
		{[]string{"", ""}, "\n"},
		{[]string{"", "a"}, "NOT FOUND\n"},
		{[]string{"hello world", "world", "extra"}, "world\n"},
	}

	for _, tt := range tests {
		code, out, _ := run(t, tt.args...)
		assert.Equal(t, 0, code, "%q", tt.args)
		assert.Equal(t, tt.want, out, "%q", tt.args)
	}
}

func TestMissingArguments(t *testing.T) {
	code, out, logs := run(t)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, logs, "expected HAYSTACK and NEEDLE")

	code, _, _ = run(t, "haystack")
	assert.Equal(t, 1, code)
}

func TestIndexFlag(t *testing.T) {
	code, out, _ := run(t, "-i", "hello world", "world")
	assert.Equal(t, 0, code)
	assert.Equal(t, "6\n", out)

	_, out, _ = run(t, "--index", "hello world", "xyz")
	assert.Equal(t, NotFound+"\n", out)
}

func TestQuoteFlag(t *testing.T) {
	_, out, _ := run(t, "-q", "ab\xffcd", "b")
	assert.Equal(t, strconv.Quote("b\xffcd")+"\n", out)

	_, out, _ = run(t, "ab\xffcd", "b")
	assert.Equal(t, "b\xffcd\n", out)

	// ASCII output is printed as is
	_, out, _ = run(t, "-q", "plain text", "text")
	assert.Equal(t, "text\n", out)
}

func TestHashFlag(t *testing.T) {
	for _, name := range []string{"sum", "adler32", "buzhash32"} {
		code, out, _ := run(t, "--hash", name, "hello world", "world")
		assert.Equal(t, 0, code, name)
		assert.Equal(t, "world\n", out, name)

		_, out, _ = run(t, "--hash", name, "xbaab", "ab")
		assert.Equal(t, "ab\n", out, name)
	}

	code, out, logs := run(t, "--hash", "md5", "hello world", "world")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, logs, `unknown rolling hash "md5"`)
}

func TestVerboseFlag(t *testing.T) {
	_, out, logs := run(t, "-v", "xbaab", "ab")
	assert.Equal(t, "ab\n", out)
	assert.Contains(t, logs, "windows=4 candidates=2 collisions=1 compared=3")

	_, out, logs = run(t, "-v", "--hash", "buzhash32", "xbaab", "ab")
	assert.Equal(t, "ab\n", out)
	assert.Contains(t, logs, "only collected")
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestFileFlag(t *testing.T) {
	dir := t.TempDir()
	haystack := writeFile(t, dir, "haystack", "some text\x00with a needle inside")
	needle := writeFile(t, dir, "needle", "needle")
	missing := writeFile(t, dir, "missing", "pin")
	empty := writeFile(t, dir, "empty", "")

	code, out, _ := run(t, "-f", haystack, needle)
	assert.Equal(t, 0, code)
	assert.Equal(t, "needle inside\n", out)

	_, out, _ = run(t, "-f", "-i", haystack, needle)
	assert.Equal(t, "17\n", out)

	_, out, _ = run(t, "-f", haystack, missing)
	assert.Equal(t, NotFound+"\n", out)

	_, out, _ = run(t, "-f", haystack, empty)
	assert.Equal(t, "some text\x00with a needle inside\n", out)

	_, out, _ = run(t, "-f", empty, needle)
	assert.Equal(t, NotFound+"\n", out)

	_, out, _ = run(t, "-f", empty, empty)
	assert.Equal(t, "\n", out)
}

func TestFileFlagErrors(t *testing.T) {
	dir := t.TempDir()
	needle := writeFile(t, dir, "needle", "needle")

	code, out, logs := run(t, "-f", filepath.Join(dir, "nope"), needle)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, logs, "Failed to read haystack file")

	// the haystack is mapped before the needle fails
	code, _, logs = run(t, "-f", needle, filepath.Join(dir, "nope"))
	assert.Equal(t, 1, code)
	assert.Contains(t, logs, "Failed to read needle file")
	assert.NotContains(t, logs, "Failed to release")
}

func TestFileFlagUnsizedFiles(t *testing.T) {
	const path = "/proc/version"
	want, err := os.ReadFile(path)
	if err != nil || len(want) == 0 {
		t.Skipf("%s not readable: %v", path, err)
	}
	st, err := os.Stat(path)
	require.NoError(t, err)
	require.Zero(t, st.Size(), "procfs reports no size")

	code, out, _ := run(t, "-f", path, path)
	assert.Equal(t, 0, code)
	assert.Equal(t, string(want)+"\n", out)

	dir := t.TempDir()
	needle := writeFile(t, dir, "needle", string(want[1:]))
	_, out, _ = run(t, "-f", "-i", path, needle)
	assert.Equal(t, "1\n", out)

	// an unsized needle is read too
	_, out, _ = run(t, "-f", "-i", writeFile(t, dir, "haystack", "x"+string(want)), path)
	assert.Equal(t, "1\n", out)
}

func TestDashArguments(t *testing.T) {
	logs := bytes.NewBuffer(nil)
	Clog.SetOutput(logs)
	t.Cleanup(func() { Clog.SetOutput(os.Stderr) })

	stdout := bytes.NewBuffer(nil)
	stderr := bytes.NewBuffer(nil)
	code := Run([]string{"hstrstr", "-1+2", "+2"}, stdout, stderr)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Incorrect Usage")
	assert.Contains(t, stderr.String(), "HAYSTACK NEEDLE")
	assert.Contains(t, logs.String(), "use --")

	code, out, _ := run(t, "--", "-1+2", "+2")
	assert.Equal(t, 0, code)
	assert.Equal(t, "+2\n", out)

	_, out, _ = run(t, "-i", "--", "--x", "-")
	assert.Equal(t, "0\n", out)
}

func TestFindDefaultHashDoesNotAllocate(t *testing.T) {
	haystack := []byte(strings.Repeat("abcdefgh", 64) + "needle")
	needle := []byte("needle")
	f, err := rolling.Lookup(rolling.Default)
	require.NoError(t, err)

	for _, name := range []string{"", rolling.Default} {
		var pos int
		allocs := testing.AllocsPerRun(100, func() {
			pos = find(haystack, needle, name, f, false)
		})
		assert.Equal(t, 512, pos, name)
		assert.Zero(t, allocs, name)
	}

	// other hashes agree with the kernel
	for _, name := range rolling.Names() {
		f, err := rolling.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, 512, find(haystack, needle, name, f, false), name)
	}
}

func TestHelp(t *testing.T) {
	code, out, _ := run(t, "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "HAYSTACK NEEDLE")
	assert.Contains(t, out, "buzhash32")
}
