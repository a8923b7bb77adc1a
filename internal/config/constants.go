package config

const SourceFileExt = ".ginger"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".ginger"}

// Default input files, relative to the working directory.
const (
	DefaultCatalogFile = "Catalog.ginger"
	DefaultCodeFile    = "Code.ginger"
	ProjectFileName    = "ginger.yaml"
)

// Built-in type names recognized by the default host mapping
const (
	IntTypeName    = "Int"
	FloatTypeName  = "Float"
	StringTypeName = "String"
	BoolTypeName   = "Bool"
)

// Built-in function names
const (
	AddFuncName    = "add"
	SubFuncName    = "sub"
	MulFuncName    = "mul"
	DivFuncName    = "div"
	NegFuncName    = "neg"
	MaxFuncName    = "max"
	MinFuncName    = "min"
	ConcatFuncName = "concat"
	RepeatFuncName = "repeat"
	LengthFuncName = "length"
	UpperFuncName  = "upper"
	NotFuncName    = "not"
)
