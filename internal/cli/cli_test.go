package cli

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formlang/internal/grammar"
)

const testWorkbench = `
automata:
  lab:
    states: [q0, q1]
    alphabet: [a, b]
    start: q0
    accept: [q1]
    transitions:
      - {from: q0, symbol: a, to: [q1]}
      - {from: q1, symbol: b, to: [q1]}
  ends-in-ab:
    states: [q0, q1, q2]
    alphabet: [a, b]
    start: q0
    accept: [q2]
    transitions:
      - {from: q0, symbol: a, to: [q0, q1]}
      - {from: q0, symbol: b, to: [q0]}
      - {from: q1, symbol: b, to: [q2]}
  ends-in-ab-regex:
    regex: (a|b)*ab
grammars:
  lab:
    nonterminals: [S, A, C, D]
    terminals: [a, b, d]
    start: S
    productions:
      S: aA
      A: [bS, dD]
      D: [bC, aD]
      C: [a, bA]
  tail:
    text: |
      S -> aS | b
`

func writeWorkbench(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	path := writeWorkbench(t, testWorkbench)
	return runWith(t, path, args...)
}

func runWith(t *testing.T, path string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--file", path}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestAccepts(t *testing.T) {
	out, err := run(t, "accepts", "lab", "ab", "abbb", "ba", "")
	require.NoError(t, err)
	assert.Equal(t, "ab: accepted\nabbb: accepted\nba: rejected\nε: rejected\n", out)
}

func TestAcceptsSimulate(t *testing.T) {
	out, err := run(t, "accepts", "--simulate", "ends-in-ab", "aab")
	require.NoError(t, err)
	assert.Equal(t, "aab: accepted\n", out)
}

func TestAcceptsSeparator(t *testing.T) {
	out, err := run(t, "accepts", "--sep", ",", "lab", "a,b,b", "ab")
	require.NoError(t, err)
	assert.Equal(t, "a,b,b: accepted\nab: rejected\n", out)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "lab")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Finite Automaton:\n"))
	assert.Contains(t, out, "q0 --a--> {q1}\n")
	assert.Contains(t, out, "Deterministic: false\n")
	assert.Contains(t, out, "Single-valued: true\n")
	assert.Contains(t, out, "Reachable: q0, q1\n")
}

func TestDFA(t *testing.T) {
	out, err := run(t, "dfa", "ends-in-ab", "--format", "dot")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph G {\n"))
	assert.Contains(t, out, `label="{q0,q2}", shape=doublecircle`)

	out, err = run(t, "dfa", "ends-in-ab", "--minimize")
	require.NoError(t, err)
	assert.Contains(t, out, "Finite Automaton:")

	out, err = run(t, "dfa", "ends-in-ab", "--format", "mermaid", "--trace", "ab")
	require.NoError(t, err)
	assert.Contains(t, out, "class s1 current;")
}

func TestDFABadFormat(t *testing.T) {
	_, err := run(t, "dfa", "lab", "--format", "svg")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRegularGrammar(t *testing.T) {
	out, err := run(t, "regular-grammar", "lab")
	require.NoError(t, err)
	assert.Equal(t, "<q0> -> a\n<q1> -> b\nS -> <q0>\n", out)
}

func TestEquivalent(t *testing.T) {
	out, err := run(t, "equivalent", "ends-in-ab", "ends-in-ab-regex")
	require.NoError(t, err)
	assert.Equal(t, "ends-in-ab and ends-in-ab-regex are equivalent\n", out)

	out, err = run(t, "equivalent", "lab", "ends-in-ab")
	require.NoError(t, err)
	assert.Equal(t, "lab and ends-in-ab differ\n", out)
}

func TestClassify(t *testing.T) {
	out, err := run(t, "classify", "lab")
	require.NoError(t, err)
	assert.Equal(t, "Type-0 (Unrestricted)\n", out)

	out, err = run(t, "classify", "--show", "tail")
	require.NoError(t, err)
	assert.Equal(t, "S -> aS | b\nType-1 (Context-Sensitive)\n", out)
}

func TestGenerateIsReproducible(t *testing.T) {
	first, err := run(t, "generate", "tail", "--seed", "7", "--count", "6", "--depth", "5")
	require.NoError(t, err)
	second, err := run(t, "generate", "tail", "--seed", "7", "--count", "6", "--depth", "5")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	lines := strings.Split(strings.TrimSuffix(first, "\n"), "\n")
	require.Len(t, lines, 6)
	for _, l := range lines {
		assert.Regexp(t, `^(a{0,5}b?|ε)$`, l)
	}
}

func TestGenerateMatchesGenerateStrings(t *testing.T) {
	out, err := run(t, "generate", "tail", "--seed", "3", "--count", "8", "--depth", "4")
	require.NoError(t, err)

	g, err := grammar.Parse("S -> aS | b")
	require.NoError(t, err)
	var want strings.Builder
	for _, s := range g.GenerateStrings(rand.New(rand.NewSource(3)), 8, 4) {
		want.WriteString(showWord(s) + "\n")
	}
	assert.Equal(t, want.String(), out)

	from, err := run(t, "generate", "tail", "--seed", "3", "--count", "8", "--depth", "4", "--from", "S")
	require.NoError(t, err)
	assert.Equal(t, out, from)
}

func TestGenerateTree(t *testing.T) {
	out, err := run(t, "generate", "tail", "--seed", "1", "--count", "1", "--tree")
	require.NoError(t, err)
	assert.Contains(t, out, "(S ")
	assert.Contains(t, out, "  S -> ")
}

func TestGenerateNegativeCount(t *testing.T) {
	_, err := run(t, "generate", "tail", "--count", "-1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRegex(t *testing.T) {
	out, err := run(t, "regex", "(a|b)*ab", "bab", "aba", "")
	require.NoError(t, err)
	assert.Equal(t, "bab: match\naba: no match\nε: no match\n", out)

	out, err = run(t, "regex", "ab", "--format", "dot")
	require.NoError(t, err)
	assert.Contains(t, out, "s1 -> s2 [label=\"b\"];")

	_, err = run(t, "regex", "(ab")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestExpr(t *testing.T) {
	out, err := run(t, "expr", "x * (y + 2)", "--var", "x=3", "--var", "y=4")
	require.NoError(t, err)
	assert.Equal(t, "18\n", out)

	out, err = run(t, "expr", "--tree", "1 + 2 * 3")
	require.NoError(t, err)
	assert.Equal(t, "(1 + (2 * 3))\n7\n", out)

	out, err = run(t, "expr", "--tokens", "4/2")
	require.NoError(t, err)
	assert.Equal(t, "INTEGER(4)\nDIV(/)\nINTEGER(2)\nEOF\n2\n", out)
}

func TestExprErrors(t *testing.T) {
	_, err := run(t, "expr", "1 / 0")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "division by zero")

	_, err = run(t, "expr", "(1")
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestValidateAndList(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Equal(t, "✓ 3 automata, 2 grammars valid\n", out)

	out, err = run(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "automata:\n  ends-in-ab\n  ends-in-ab-regex\n  lab\ngrammars:\n  lab\n  tail\n", out)
}

func TestValidateReportsInvalidEntries(t *testing.T) {
	path := writeWorkbench(t, `
automata:
  broken:
    states: [q0]
    alphabet: [a]
    start: q0
    transitions:
      - {from: q0, symbol: z, to: [q0]}
`)
	out, err := runWith(t, path, "validate")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, `✗ automaton "broken": TRANSITION_SYMBOL_UNKNOWN`)
}

func TestLookupErrors(t *testing.T) {
	_, err := run(t, "accepts", "nope", "a")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = runWith(t, filepath.Join(t.TempDir(), "missing.yaml"), "list")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestVerboseLogsToStderr(t *testing.T) {
	path := writeWorkbench(t, testWorkbench)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{"-f", path, "-v", "check", "lab"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), "automaton built")
	assert.NotContains(t, out.String(), "automaton built")
}
