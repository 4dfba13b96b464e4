package jit

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeedsHeadersAndMacro(t *testing.T) {
	l := New("math.h", "stdio.h")
	src := l.Source()

	assert.True(t, strings.HasPrefix(src, "#include <math.h>\n#include <stdio.h>\n"))
	assert.Contains(t, src, "#define v(x) (*((float*)(x)))\n")
}

func TestAddForwardPrologue(t *testing.T) {
	l := New("math.h")
	fn := l.AddForward("forward", "float value;\nreturn value;\n")

	require.NotNil(t, fn)
	assert.Nil(t, *fn, "slot is back-patched only by CompileAndLoad")
	assert.Contains(t, l.Source(), "float forward(void) {\nfloat value;\nreturn value;\n}\n")
}

func TestAddBackwardPrologue(t *testing.T) {
	l := New("math.h")
	fn := l.AddBackward("backward", "")

	require.NotNil(t, fn)
	assert.Nil(t, *fn)
	assert.Contains(t, l.Source(), "void backward(float gradient) {\n}\n")
}

func TestCommands(t *testing.T) {
	l := New("math.h")
	l.Compiler = "cc"
	l.BaseName = "_grad"

	cmds := l.commands()
	require.Len(t, cmds, 2)

	compile, link := cmds[0], cmds[1]
	assert.Equal(t, "cc", compile[0])
	assert.Contains(t, compile, "-O2")
	assert.Contains(t, compile, "-c")
	assert.Equal(t, "_grad.c", compile[len(compile)-1])

	assert.Contains(t, link, "-shared")
	assert.Contains(t, link, archFlag())
	assert.Equal(t, link[len(link)-1], "_grad"+objectExt())
}

func TestCompileAndLoadMissingCompiler(t *testing.T) {
	l := New("math.h")
	l.Compiler = "gradjit-no-such-compiler"
	l.BaseName = filepath.Join(t.TempDir(), "_grad")
	l.AddForward("forward", "float value;\nreturn value;\n")

	err := l.CompileAndLoad()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCompile))
}

func TestCloseWithoutLoadIsNoop(t *testing.T) {
	l := New()
	assert.NoError(t, l.Close())
}
