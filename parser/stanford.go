// Package parser invokes an external constituency parser and converts its
// output to a tabular dependency parse.
package parser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/revelaction/idensity/conll"
)

var ErrUpstream = errors.New("upstream parser failed")

const (
	parserClass    = "edu.stanford.nlp.parser.lexparser.LexicalizedParser"
	converterClass = "edu.stanford.nlp.trees.EnglishGrammaticalStructure"

	DefaultModel  = "edu/stanford/nlp/models/lexparser/englishPCFG.ser.gz"
	DefaultMemory = "1024m"
	DefaultJava   = "java"

	treeFile      = "tmp.tree"
	rawConllFile  = "raw.conll"
	ConllFile     = "output.conll"
	parserErrFile = "error"
	convErrFile   = "conll.err"
)

// Stanford runs the Stanford lexicalized parser followed by the basic
// dependency converter.
type Stanford struct {
	Java string

	// ClassPath points at the CoreNLP jars, e.g. "~/apps/stanford-corenlp/*"
	ClassPath string

	Model  string
	Memory string

	// WorkDir receives the intermediate files. A temporary directory is
	// created when empty.
	WorkDir string
}

func NewStanford(classPath string) *Stanford {
	return &Stanford{
		Java:      DefaultJava,
		ClassPath: classPath,
		Model:     DefaultModel,
		Memory:    DefaultMemory,
	}
}

func (s *Stanford) parseArgs(input string) []string {
	return []string{
		"-mx" + s.Memory, "-cp", s.ClassPath, parserClass,
		"-outputFormat", "penn", s.Model, input,
	}
}

func (s *Stanford) convertArgs(tree string) []string {
	return []string{
		"-mx" + s.Memory, "-cp", s.ClassPath, converterClass,
		"-basic", "-conllx", "-treeFile", tree,
	}
}

// Parse parses the raw text file input and returns the path of the tabular
// parse, with root relations labelled ROOT. The parse and the stderr files
// of both steps live in WorkDir, or in a new temporary directory when
// WorkDir is empty. That directory is left in place on failure; on success
// removing it is up to the caller.
func (s *Stanford) Parse(ctx context.Context, input string) (string, error) {
	if _, err := os.Stat(input); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	dir := s.WorkDir
	if dir == "" {
		tmp, err := os.MkdirTemp("", "idensity-")
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		dir = tmp
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	tree := filepath.Join(dir, treeFile)
	if err := s.run(ctx, s.parseArgs(input), tree, filepath.Join(dir, parserErrFile)); err != nil {
		return "", fmt.Errorf("%w: parsing %s: %w", ErrUpstream, input, err)
	}

	raw := filepath.Join(dir, rawConllFile)
	if err := s.run(ctx, s.convertArgs(tree), raw, filepath.Join(dir, convErrFile)); err != nil {
		return "", fmt.Errorf("%w: converting %s: %w", ErrUpstream, tree, err)
	}

	out := filepath.Join(dir, ConllFile)
	if err := relabel(raw, out); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	log.Debug().Str("input", input).Str("output", out).Msg("upstream parse finished")
	return out, nil
}

func (s *Stanford) run(ctx context.Context, args []string, stdoutPath, stderrPath string) error {
	stdout, err := os.Create(stdoutPath)
	if err != nil {
		return err
	}
	defer stdout.Close()

	stderr, err := os.Create(stderrPath)
	if err != nil {
		return err
	}
	defer stderr.Close()

	cmd := exec.CommandContext(ctx, s.Java, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	log.Debug().Str("java", s.Java).Strs("args", args).Msg("running upstream parser")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w (see %s)", err, stderrPath)
	}
	return nil
}

func relabel(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if err := conll.RelabelRoot(in, out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
