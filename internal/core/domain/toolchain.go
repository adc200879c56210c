package domain

// DefaultLangStd is the C++ language standard used when the manifest names none.
const DefaultLangStd = "c++2b"

// CompilerFamily identifies the vendor of a detected compiler.
type CompilerFamily string

const (
	// FamilyClang is LLVM clang++.
	FamilyClang CompilerFamily = "clang"
	// FamilyGCC is GNU g++.
	FamilyGCC CompilerFamily = "gcc"
	// FamilyMSVC is Microsoft cl.exe.
	FamilyMSVC CompilerFamily = "msvc"
	// FamilyUnknown is any compiler whose version banner was not recognized.
	FamilyUnknown CompilerFamily = "unknown"
)

// Compiler is a resolved C++ compiler.
type Compiler struct {
	Path    string
	Family  CompilerFamily
	Version string
}

// Toolchain is the set of tools and project-wide flags used to synthesize commands.
type Toolchain struct {
	Compiler string
	Archiver string
	Indexer  string
	LangStd  string
}

// NewToolchain returns a toolchain for the given compiler with the default archiver and indexer.
func NewToolchain(compiler, langStd string) Toolchain {
	if langStd == "" {
		langStd = DefaultLangStd
	}
	return Toolchain{
		Compiler: compiler,
		Archiver: "ar",
		Indexer:  "ranlib",
		LangStd:  langStd,
	}
}
