package jsonl

import (
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestJsonl_ReadsLinesInOrder(t *testing.T) {
	j := New(strings.NewReader(`{"a":1}` + "\n" + `{"a":2}` + "\n"))

	line, err := j.ReadLine()
	assert.NoError(t, err)
	assert.Equal(t, `{"a":1}`, line)

	line, err = j.ReadLine()
	assert.NoError(t, err)
	assert.Equal(t, `{"a":2}`, line)

	_, err = j.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestJsonl_SkipsBlankLinesAndTrims(t *testing.T) {
	j := New(strings.NewReader("\n  {\"a\":1}  \n\n\t\nx\n"))

	line, err := j.ReadLine()
	assert.NoError(t, err)
	assert.Equal(t, `{"a":1}`, line)

	line, err = j.ReadLine()
	assert.NoError(t, err)
	assert.Equal(t, "x", line)

	_, err = j.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestJsonl_Count(t *testing.T) {
	j := New(strings.NewReader("a\n\nb\nc"))

	count, err := j.Count()
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestJsonl_CountEmptySource(t *testing.T) {
	j := New(strings.NewReader(""))

	count, err := j.Count()
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestJsonl_FromPathFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, "/data/events.jsonl", []byte("a\nb\nc\n"), 0644)
	assert.NoError(t, err)

	j, err := FromPathFs(fs, "/data/events.jsonl")
	assert.NoError(t, err)
	defer j.Close()

	line, err := j.ReadLine()
	assert.NoError(t, err)
	assert.Equal(t, "a", line)

	count, err := j.Count()
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestJsonl_FromPathFs_MissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := FromPathFs(fs, "/nope.jsonl")
	assert.Error(t, err)
}

func TestJsonl_FromPathFs_SupportsLastN(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, "/data.jsonl", []byte("a\nb\nc\n"), 0644)
	assert.NoError(t, err)

	j, err := FromPathFs(fs, "/data.jsonl")
	assert.NoError(t, err)
	defer j.Close()

	window, err := j.LastN(2)
	assert.NoError(t, err)

	lines, err := window.Collect()
	assert.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, lines)
}

func TestJsonl_CloseWithoutFileIsNoop(t *testing.T) {
	j := New(strings.NewReader("a\n"))
	assert.NoError(t, j.Close())
}
