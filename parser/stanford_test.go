package parser

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	s := NewStanford("/opt/corenlp/*")
	args := s.parseArgs("story.txt")

	assert.Equal(t, []string{
		"-mx1024m", "-cp", "/opt/corenlp/*", parserClass,
		"-outputFormat", "penn", DefaultModel, "story.txt",
	}, args)
}

func TestConvertArgs(t *testing.T) {
	s := NewStanford("cp")
	s.Memory = "2g"
	assert.Equal(t, []string{
		"-mx2g", "-cp", "cp", converterClass,
		"-basic", "-conllx", "-treeFile", "t.tree",
	}, s.convertArgs("t.tree"))
}

func TestParseMissingInput(t *testing.T) {
	s := NewStanford("cp")
	_, err := s.Parse(context.Background(), filepath.Join(t.TempDir(), "none.txt"))
	assert.True(t, errors.Is(err, ErrUpstream))
}

func TestParseMissingJava(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "story.txt")
	require.NoError(t, os.WriteFile(input, []byte("Dogs bark."), 0o644))

	s := NewStanford("cp")
	s.Java = filepath.Join(dir, "no-such-java")
	s.WorkDir = filepath.Join(dir, "work")

	_, err := s.Parse(context.Background(), input)
	assert.True(t, errors.Is(err, ErrUpstream))
}

func TestParseWithStubJava(t *testing.T) {
	dir := t.TempDir()
	java := filepath.Join(dir, "java")
	script := "#!/bin/sh\n" +
		"case \"$*\" in\n" +
		"*-treeFile*) printf '1\\tGo\\tgo\\tVB\\tVB\\t_\\t0\\troot\\t_\\t_\\n\\n' ;;\n" +
		"*) echo '(ROOT (VP (VB Go)))' ;;\n" +
		"esac\n"
	require.NoError(t, os.WriteFile(java, []byte(script), 0o755))
	input := filepath.Join(dir, "story.txt")
	require.NoError(t, os.WriteFile(input, []byte("Go."), 0o644))

	s := NewStanford("cp")
	s.Java = java
	s.WorkDir = filepath.Join(dir, "work")

	out, err := s.Parse(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.WorkDir, ConllFile), out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "1\tGo\tgo\tVB\tVB\t_\t0\tROOT\t_\t_\n\n", string(data))

	tree, err := os.ReadFile(filepath.Join(s.WorkDir, treeFile))
	require.NoError(t, err)
	assert.Equal(t, "(ROOT (VP (VB Go)))\n", string(tree))
}

func TestRelabel(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "raw.conll")
	dst := filepath.Join(dir, "out.conll")
	require.NoError(t, os.WriteFile(src, []byte("1\tGo\tgo\tVB\tVB\t_\t0\troot\t_\t_\n\n"), 0o644))

	require.NoError(t, relabel(src, dst))
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "1\tGo\tgo\tVB\tVB\t_\t0\tROOT\t_\t_\n\n", string(data))
}
