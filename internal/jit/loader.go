// Package jit turns generated C source into callable function
// pointers.
//
// A Loader accumulates one C translation unit, writes it to disk,
// runs the external C compiler twice (object, then shared library),
// opens the resulting shared object and back-patches every registered
// function slot. The generated code addresses the caller's float
// cells by raw pointer, so the library must be loaded into the same
// process and node storage must not move while it is loaded.
package jit

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/ebitengine/purego"
)

// Errors surfaced by CompileAndLoad. All of them leave the engine
// fully usable in interpreted mode.
var (
	// ErrCompile reports a failed external compiler invocation.
	ErrCompile = errors.New("jit: compile failed")

	// ErrLibraryLoad reports that the shared object could not be opened.
	ErrLibraryLoad = errors.New("jit: library load failed")

	// ErrSymbolNotFound reports a registered entry point missing from
	// the loaded library.
	ErrSymbolNotFound = errors.New("jit: symbol not found")
)

// ForwardFunc is the signature of a generated forward entry point.
type ForwardFunc func() float32

// BackwardFunc is the signature of a generated backward entry point;
// the argument seeds the root gradient.
type BackwardFunc func(float32)

type registration struct {
	name     string
	register func(handle uintptr)
}

// Loader accumulates one C translation unit and loads it.
type Loader struct {
	// Compiler is the C compiler executable. Defaults to the system
	// toolchain (cc) on 64-bit non-Windows builds and tcc on 32-bit
	// or Windows ones.
	Compiler string

	// BaseName names the on-disk artifacts: BaseName.c, BaseName.o
	// (.lib on Windows) and BaseName.so (.dll). A relative BaseName
	// (the default) places them in the working directory. They are
	// overwritten on re-compile.
	BaseName string

	src    strings.Builder
	regs   []registration
	handle uintptr
}

// New returns a Loader whose buffer starts with one #include per
// header plus the v(x) macro every memory reference in generated code
// goes through.
func New(headers ...string) *Loader {
	l := &Loader{
		Compiler: defaultCompiler(),
		BaseName: "_grad",
	}
	for _, h := range headers {
		fmt.Fprintf(&l.src, "#include <%s>\n", h)
	}
	l.src.WriteString("#define v(x) (*((float*)(x)))\n")
	return l
}

// AddForward appends "float name(void) { body }" to the unit and
// returns the slot CompileAndLoad back-patches with the loaded entry
// point.
func (l *Loader) AddForward(name, body string) *ForwardFunc {
	fn := new(ForwardFunc)
	fmt.Fprintf(&l.src, "%sfloat %s(void) {\n%s}\n", exportMarker(), name, body)
	l.regs = append(l.regs, registration{
		name: name,
		register: func(handle uintptr) {
			purego.RegisterLibFunc(fn, handle, name)
		},
	})
	return fn
}

// AddBackward appends "void name(float gradient) { body }" to the
// unit and returns the slot CompileAndLoad back-patches.
func (l *Loader) AddBackward(name, body string) *BackwardFunc {
	fn := new(BackwardFunc)
	fmt.Fprintf(&l.src, "%svoid %s(float gradient) {\n%s}\n", exportMarker(), name, body)
	l.regs = append(l.regs, registration{
		name: name,
		register: func(handle uintptr) {
			purego.RegisterLibFunc(fn, handle, name)
		},
	})
	return fn
}

// Source returns the accumulated translation unit.
func (l *Loader) Source() string { return l.src.String() }

// CompileAndLoad writes the unit to BaseName.c, compiles it to a
// shared object, opens it and resolves every registered entry point.
// A previously loaded library is released first so the new artifacts
// can overwrite the old files.
func (l *Loader) CompileAndLoad() error {
	if err := l.Close(); err != nil {
		return err
	}

	if err := os.WriteFile(l.BaseName+".c", []byte(l.src.String()), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrCompile, err)
	}

	for _, argv := range l.commands() {
		out, err := exec.Command(argv[0], argv[1:]...).CombinedOutput()
		if err != nil {
			return fmt.Errorf("%w: %s: %v: %s", ErrCompile, strings.Join(argv, " "), err, out)
		}
	}

	path, err := filepath.Abs(l.BaseName + sharedExt())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLibraryLoad, err)
	}
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrLibraryLoad, path, err)
	}

	for _, reg := range l.regs {
		if _, err := purego.Dlsym(handle, reg.name); err != nil {
			purego.Dlclose(handle)
			return fmt.Errorf("%w: %s: %v", ErrSymbolNotFound, reg.name, err)
		}
	}
	for _, reg := range l.regs {
		reg.register(handle)
	}
	l.handle = handle
	return nil
}

// Close releases the loaded library, if any. Must happen before the
// shared object file is overwritten on platforms that lock it while
// loaded.
func (l *Loader) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := purego.Dlclose(l.handle)
	l.handle = 0
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLibraryLoad, err)
	}
	return nil
}

// commands returns the two compiler invocations: compile to object,
// then link to shared library.
func (l *Loader) commands() [][]string {
	flags := []string{"-O2", archFlag()}
	if runtime.GOOS != "windows" {
		flags = append(flags, "-fPIC")
	}
	obj := l.BaseName + objectExt()
	so := l.BaseName + sharedExt()

	compile := append([]string{l.Compiler}, flags...)
	compile = append(compile, "-c", "-o", obj, l.BaseName+".c")

	link := append([]string{l.Compiler}, flags...)
	if runtime.GOOS != "windows" {
		link = append(link, "-Wl,--no-as-needed", "-lm")
	}
	link = append(link, "-shared", "-o", so, obj)

	return [][]string{compile, link}
}

func defaultCompiler() string {
	if strconv.IntSize == 32 || runtime.GOOS == "windows" {
		return "tcc"
	}
	return "cc"
}

func archFlag() string {
	if strconv.IntSize == 32 {
		return "-m32"
	}
	return "-m64"
}

func objectExt() string {
	if runtime.GOOS == "windows" {
		return ".lib"
	}
	return ".o"
}

func sharedExt() string {
	if runtime.GOOS == "windows" {
		return ".dll"
	}
	return ".so"
}

func exportMarker() string {
	if runtime.GOOS == "windows" {
		return "__declspec(dllexport) "
	}
	return ""
}
