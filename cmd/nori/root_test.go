package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	for _, flag := range []string{"-v", "--version"} {
		stdout, _, err := execute(t, "테스트\n", flag)
		require.NoError(t, err)
		assert.Equal(t, version+"\n", stdout)
	}
}

func TestHelp(t *testing.T) {
	stdout, _, err := execute(t, "테스트\n", "-h")
	require.NoError(t, err)
	assert.Contains(t, stdout, "nori [OPTIONS] [INPUT_FILE]")
	assert.Contains(t, stdout, "--tokenize-mode")
	assert.Contains(t, stdout, "--char-mapping")
	// 入力は読まれない
	assert.NotContains(t, stdout, "테스트\t")
}

func TestConfigurationErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{name: "mode", args: []string{"-m", "split"}, message: "unexpected tokenization mode: split"},
		{name: "format", args: []string{"--output-format", "xml"}, message: "unexpected output format: xml"},
		{name: "dictionary", args: []string{"-u", "/nonexistent/userdict.txt"}, message: "unexpected user dictionary file: /nonexistent/userdict.txt"},
		{name: "flag", args: []string{"--bogus"}, message: "unknown flag: --bogus"},
		{name: "mapping", args: []string{"--char-mapping", "noequals"}, message: "unexpected char mapping: noequals"},
		{name: "args", args: []string{"a.txt", "b.txt"}, message: "accepts at most 1 arg(s)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, "테스트\n", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
			// cobraは使い方をSetOutの出力先に書く
			assert.Contains(t, stdout+stderr, "Usage:")
			assert.NotContains(t, stdout, "테스트\t")
			assert.NotContains(t, stdout, "EOS\n")
		})
	}
}

func TestMalformedUserDictionary(t *testing.T) {
	path := writeFile(t, "userdict.txt", "세종시 세종 군\n")
	stdout, _, err := execute(t, "테스트\n", "-u", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "segmentation must match the surface")
	assert.Empty(t, stdout)
}

func TestRunEmptyLines(t *testing.T) {
	input := writeFile(t, "input.txt", "\n\n")

	stdout, _, err := execute(t, "", input)
	require.NoError(t, err)
	assert.Equal(t, "EOS\nEOS\n", stdout)

	stdout, _, err = execute(t, "", "-o", "json", input)
	require.NoError(t, err)
	assert.Equal(t, "[]\n[]\n", stdout)
}

func TestRunStdin(t *testing.T) {
	stdout, _, err := execute(t, "오늘은 날씨가 좋다\n\n")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(stdout, "EOS\n"))
	assert.True(t, strings.HasSuffix(stdout, "EOS\nEOS\n"))
}

func TestRunMissingInputFile(t *testing.T) {
	_, _, err := execute(t, "", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestEnvironmentAndConfigFile(t *testing.T) {
	input := writeFile(t, "input.txt", "\n")

	t.Setenv("NORI_OUTPUT_FORMAT", "json")
	stdout, _, err := execute(t, "", input)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", stdout)

	// フラグは環境変数より優先される
	stdout, _, err = execute(t, "", "-o", "mecab", input)
	require.NoError(t, err)
	assert.Equal(t, "EOS\n", stdout)

	t.Setenv("NORI_OUTPUT_FORMAT", "")
	config := writeFile(t, "nori.yaml", "output-format: json\ntokenize-mode: mixed\n")
	stdout, _, err = execute(t, "", "--config", config, input)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", stdout)
}

func TestUserDictionaryFlag(t *testing.T) {
	dict := writeFile(t, "userdict.txt", "세종시 세종 시\n")
	stdout, _, err := execute(t, "세종시\n", "-m", "none", "-u", dict)
	require.NoError(t, err)
	assert.Equal(t, "세종시\tNNG,*,*,세종시,*,*,*,*\nEOS\n", stdout)
}

func TestCharMapping(t *testing.T) {
	stdout, _, err := execute(t, "ＡＢＣ\n", "-m", "none", "--char-mapping", "ＡＢＣ=abc")
	require.NoError(t, err)
	assert.Contains(t, stdout, "abc\t")
	assert.NotContains(t, stdout, "ＡＢＣ")
	assert.True(t, strings.HasSuffix(stdout, "EOS\n"))

	config := writeFile(t, "nori.yaml", "tokenize-mode: none\nchar-mapping:\n  - ＡＢＣ=abc\n")
	stdout, _, err = execute(t, "ＡＢＣ\n", "--config", config)
	require.NoError(t, err)
	assert.Contains(t, stdout, "abc\t")
	assert.NotContains(t, stdout, "ＡＢＣ")
}
