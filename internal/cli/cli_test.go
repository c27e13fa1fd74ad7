package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/bsearch-viz/internal/config"
	"github.com/rcliao/bsearch-viz/internal/model"
	"github.com/rcliao/bsearch-viz/internal/parse"
	"github.com/rcliao/bsearch-viz/internal/search"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(args)
	require.NoError(t, RootCmd.Execute())
	return out.String()
}

func setupEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("BSVIZ_DB", filepath.Join(dir, "lessons.db"))
}

func TestWriteResult_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, search.Run(model.Sequence{1, 3, 5, 7, 9, 11, 13, 15}, 7), "json"))

	var out runOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.True(t, out.Result.Found)
	assert.Equal(t, 3, out.Result.Index)
	assert.Equal(t, 1, out.Result.Comparisons)
	assert.Equal(t, model.Found, out.Result.Trace[0].Outcome)
	assert.Equal(t, 3, out.Final.Highlight)
}

func TestWriteResult_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, search.Run(model.Sequence{1, 3, 5, 7, 9, 11, 13, 15}, 2), "text"))
	assert.Contains(t, buf.String(), "Step 3:")
	assert.Contains(t, buf.String(), "Target 2 not found in the list.")
}

func TestWriteResult_HTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, search.Run(model.Sequence{1, 2}, 2), "html"))
	assert.True(t, strings.HasPrefix(buf.String(), "<!DOCTYPE html>"))
}

func TestWriteResult_UnknownFormat(t *testing.T) {
	err := writeResult(&bytes.Buffer{}, search.Run(model.Sequence{1}, 1), "yaml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestRandomCommand(t *testing.T) {
	setupEnv(t)
	a := execute(t, "random", "--size", "8", "--seed", "3")
	b := execute(t, "random", "--size", "8", "--seed", "3")
	assert.Equal(t, a, b)
	assert.Len(t, strings.Split(strings.TrimSpace(a), ","), 8)
}

func TestLessonAndRun(t *testing.T) {
	setupEnv(t)

	out := execute(t, "lesson", "put", "odds", "1,3,5,7,9,11,13,15", "--note", "week 1")
	var l model.Lesson
	require.NoError(t, json.Unmarshal([]byte(out), &l))
	assert.Equal(t, "odds", l.Name)
	assert.Equal(t, 1, l.Version)

	out = execute(t, "lesson", "list", "--names-only")
	assert.Equal(t, "odds\n", out)

	out = execute(t, "run", "--lesson", "odds", "--target", "2", "--format", "json")
	var res runOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Result.Found)
	assert.Equal(t, 3, res.Result.Comparisons)
	assert.True(t, res.Final.Excluded)
}

func TestSearchFromInput_ValidationError(t *testing.T) {
	prev := cfg
	cfg = &config.Config{Delimiter: ","}
	t.Cleanup(func() { cfg = prev })

	cmd := &cobra.Command{}
	addInputFlags(cmd)

	res, err := searchFromInput(cmd, []string{"5,3,1", "3"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Equal(t, parse.NotSorted, parse.KindOf(err))

	var buf bytes.Buffer
	printInputError(&buf, err)
	assert.Equal(t, "Error: "+err.Error()+"\n", buf.String())
	assert.True(t, strings.HasPrefix(buf.String(), "Error: the list must already be sorted"))
}

func TestSearchFromInput_Flags(t *testing.T) {
	prev := cfg
	cfg = &config.Config{Delimiter: ";"}
	t.Cleanup(func() { cfg = prev })

	cmd := &cobra.Command{}
	addInputFlags(cmd)
	require.NoError(t, cmd.Flags().Set("list", "1;3;5"))

	res, err := searchFromInput(cmd, []string{"5"})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 2, res.Index)
}

func TestPrintInputError_Other(t *testing.T) {
	var buf bytes.Buffer
	printInputError(&buf, errors.New("load lesson: not found: odds"))
	assert.Equal(t, "error: load lesson: not found: odds\n", buf.String())
}
