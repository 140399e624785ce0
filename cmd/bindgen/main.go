// cmd/bindgen/main.go
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
)

// This binary is a code-generation tool.
//
// It reads a JSON spec naming a concrete type, its constructor and the Handler
// fields to pre-bind, then generates a wrapper constructor that calls the
// original one and assigns binder.Bind(obj, (*T).method) to each field.
//
// Key behaviors:
// - Reads spec JSON: package, implType, constructor, bound fields
// - Parses the constructor signature in the package directory and forwards its parameters
// - Locates the "owner" Go file (the file containing the go:generate for cmd/bindgen)
// - Reuses the owner file's imports that the forwarded parameter types reference
// - Ensures the binder import
// - Writes output atomically (temp file + rename) to avoid partial writes

// defaultBinderImport is used when spec.imports.binder is empty.
const defaultBinderImport = "github.com/sghaida/thisbind/binder"

// Bound describes one Handler field to fill with a pre-bound method.
type Bound struct {
	// Field is the binder.Handler field on the concrete type.
	Field string `json:"field"`

	// Method is the method with signature func() (string, error) bound into Field.
	Method string `json:"method"`
}

// Imports overrides import paths used by generated code.
type Imports struct {
	Binder string `json:"binder"`
}

// Spec is the full input schema consumed by the generator.
type Spec struct {
	Package     string  `json:"package"`
	ImplType    string  `json:"implType"`
	Constructor string  `json:"constructor"`
	FuncName    string  `json:"funcName"`
	Imports     Imports `json:"imports"`
	Bound       []Bound `json:"bound"`
}

// ImportSpec models one Go import: optional alias and full import path.
type ImportSpec struct {
	Alias string
	Path  string
}

// Param is one forwarded constructor parameter.
type Param struct {
	Name     string
	Type     string
	Variadic bool
}

// templateData is the input passed to the Go template.
type templateData struct {
	Spec        Spec
	ImportsList []ImportSpec
	Params      []Param
	BinderAlias string
}

// ParamList renders the parameter declarations.
func (d templateData) ParamList() string {
	parts := make([]string, 0, len(d.Params))
	for _, p := range d.Params {
		if p.Variadic {
			parts = append(parts, p.Name+" ..."+p.Type)
			continue
		}
		parts = append(parts, p.Name+" "+p.Type)
	}
	return strings.Join(parts, ", ")
}

// ArgList renders the forwarded arguments.
func (d templateData) ArgList() string {
	parts := make([]string, 0, len(d.Params))
	for _, p := range d.Params {
		if p.Variadic {
			parts = append(parts, p.Name+"...")
			continue
		}
		parts = append(parts, p.Name)
	}
	return strings.Join(parts, ", ")
}

// run executes the generator logic and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("bindgen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	specPath := flags.String("spec", "", "path to <type>.bind.json")
	outPath := flags.String("out", "", "output .gen.go file path")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*specPath) == "" || strings.TrimSpace(*outPath) == "" {
		_, _ = fmt.Fprintln(stderr, "usage: bindgen -spec <file.bind.json> -out <file.gen.go>")
		return 2
	}

	specBytes, err := os.ReadFile(*specPath)
	must(err)

	var spec Spec
	must(json.Unmarshal(specBytes, &spec))

	validateSpec(&spec)

	if strings.TrimSpace(spec.FuncName) == "" {
		spec.FuncName = "New" + spec.ImplType + "Bound"
	}
	if strings.TrimSpace(spec.Imports.Binder) == "" {
		spec.Imports.Binder = defaultBinderImport
	}

	generatedFilePath := filepath.Clean(*outPath)
	packageDir := filepath.Dir(generatedFilePath)

	params, err := constructorParams(&spec, packageDir)
	must(err)

	ownerGoFilePath, err := findOwnerGoGenerateFile(packageDir)
	if err != nil {
		// Without an owner file only the binder import is emitted.
		ownerGoFilePath = ""
	}

	importsList, binderAlias := resolveImports(ownerGoFilePath, &spec, params)

	data := templateData{
		Spec:        spec,
		ImportsList: importsList,
		Params:      params,
		BinderAlias: binderAlias,
	}

	var out strings.Builder
	must(genTemplate.Execute(&out, data))

	must(writeFileAtomic(generatedFilePath, []byte(out.String()), 0o644))
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// validateSpec validates semantic correctness of the input specification.
func validateSpec(spec *Spec) {
	var missingFields []string

	requireNonEmpty := func(fieldName, value string) {
		if strings.TrimSpace(value) == "" {
			missingFields = append(missingFields, fieldName)
		}
	}

	requireNonEmpty("package", spec.Package)
	requireNonEmpty("implType", spec.ImplType)
	requireNonEmpty("constructor", spec.Constructor)

	if len(spec.Bound) == 0 {
		missingFields = append(missingFields, "bound (must have at least 1)")
	}

	if len(missingFields) > 0 {
		panic(fmt.Errorf("spec missing required fields: %v", missingFields))
	}

	seenFields := make(map[string]struct{}, len(spec.Bound))
	for _, b := range spec.Bound {
		if b.Field == "" || b.Method == "" {
			panic(fmt.Errorf("each bound entry must have field/method; got: %+v", b))
		}
		if !token.IsIdentifier(b.Field) || !token.IsIdentifier(b.Method) {
			panic(fmt.Errorf("bound field/method must be identifiers; got: %+v", b))
		}
		if b.Field == b.Method {
			panic(fmt.Errorf("bound field and method cannot share a name: %s", b.Field))
		}
		if _, ok := seenFields[b.Field]; ok {
			panic(fmt.Errorf("duplicate bound field: %s", b.Field))
		}
		seenFields[b.Field] = struct{}{}
	}
}

// goSourceFiles lists non-test, non-generated Go files in dir.
func goSourceFiles(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		fileName := entry.Name()
		if !strings.HasSuffix(fileName, ".go") ||
			strings.HasSuffix(fileName, "_test.go") ||
			strings.HasSuffix(fileName, ".gen.go") {
			continue
		}
		files = append(files, filepath.Join(dir, fileName))
	}
	return files, nil
}

// findOwnerGoGenerateFile finds the Go source file in packageDir that contains a
// go:generate directive invoking cmd/bindgen.
func findOwnerGoGenerateFile(packageDir string) (string, error) {
	files, err := goSourceFiles(packageDir)
	if err != nil {
		return "", err
	}

	for _, filePath := range files {
		fileBytes, err := os.ReadFile(filePath)
		if err != nil {
			// Best-effort: unreadable file shouldn't break generation.
			continue
		}
		if bytes.Contains(fileBytes, []byte("go:generate")) && bytes.Contains(fileBytes, []byte("cmd/bindgen")) {
			return filePath, nil
		}
	}

	return "", fmt.Errorf("could not find owner file with go:generate invoking cmd/bindgen in %s", packageDir)
}

// constructorParams finds spec.Constructor among the free functions of sourceDir
// and returns its parameters, naming unnamed ones p0, p1, ...
//
// The constructor must return exactly *ImplType.
func constructorParams(spec *Spec, sourceDir string) ([]Param, error) {
	files, err := goSourceFiles(sourceDir)
	if err != nil {
		return nil, err
	}

	fileSet := token.NewFileSet()
	for _, filePath := range files {
		parsedFile, _ := parser.ParseFile(fileSet, filePath, nil, parser.AllErrors)
		if parsedFile == nil {
			continue
		}

		for _, declaration := range parsedFile.Decls {
			funcDecl, ok := declaration.(*ast.FuncDecl)
			if !ok || funcDecl.Recv != nil {
				continue
			}
			if funcDecl.Name == nil || funcDecl.Name.Name != spec.Constructor {
				continue
			}
			if !returnsImplPointer(funcDecl.Type, spec.ImplType) {
				return nil, fmt.Errorf("constructor %q must return *%s", spec.Constructor, spec.ImplType)
			}
			return paramsOf(funcDecl.Type), nil
		}
	}

	return nil, fmt.Errorf("constructor %q not found in %s", spec.Constructor, sourceDir)
}

func returnsImplPointer(fn *ast.FuncType, implType string) bool {
	if fn.Results == nil || len(fn.Results.List) != 1 || len(fn.Results.List[0].Names) > 1 {
		return false
	}
	star, ok := fn.Results.List[0].Type.(*ast.StarExpr)
	if !ok {
		return false
	}
	ident, ok := star.X.(*ast.Ident)
	return ok && ident.Name == implType
}

func paramsOf(fn *ast.FuncType) []Param {
	if fn.Params == nil {
		return nil
	}

	var params []Param
	for _, field := range fn.Params.List {
		typ := field.Type
		variadic := false
		if ellipsis, ok := typ.(*ast.Ellipsis); ok {
			typ = ellipsis.Elt
			variadic = true
		}
		typeString := types.ExprString(typ)

		if len(field.Names) == 0 {
			params = append(params, Param{Name: "p" + strconv.Itoa(len(params)), Type: typeString, Variadic: variadic})
			continue
		}
		for _, name := range field.Names {
			n := name.Name
			if n == "_" {
				n = "p" + strconv.Itoa(len(params))
			}
			params = append(params, Param{Name: n, Type: typeString, Variadic: variadic})
		}
	}
	return params
}

// readImportsFromFile parses imports from a Go file.
func readImportsFromFile(goFilePath string) ([]ImportSpec, error) {
	fileSet := token.NewFileSet()
	parsedFile, err := parser.ParseFile(fileSet, goFilePath, nil, parser.ImportsOnly)
	if err != nil {
		return nil, err
	}

	var imports []ImportSpec
	for _, importDecl := range parsedFile.Imports {
		importPath := strings.Trim(importDecl.Path.Value, `"`)
		importAlias := ""
		if importDecl.Name != nil {
			importAlias = importDecl.Name.Name
		}
		imports = append(imports, ImportSpec{Alias: importAlias, Path: importPath})
	}

	return imports, nil
}

func ensureImport(imports *[]ImportSpec, required ImportSpec) {
	for _, existing := range *imports {
		if existing.Path == required.Path {
			// Don't duplicate the path; keep existing alias as-is.
			return
		}
	}
	*imports = append(*imports, required)
}

func importDefaultIdent(importPath string) string {
	// Import paths always use forward slashes, even on Windows.
	return path.Base(strings.TrimSpace(importPath))
}

// importIdent is the identifier generated code uses to refer to imp.
func importIdent(imp ImportSpec) string {
	if imp.Alias != "" {
		return imp.Alias
	}
	return importDefaultIdent(imp.Path)
}

// referencesIdent reports whether a rendered type expression mentions ident as a package qualifier.
func referencesIdent(typeString, ident string) bool {
	expr, err := parser.ParseExpr(typeString)
	if err != nil {
		return strings.Contains(typeString, ident+".")
	}
	found := false
	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return !found
		}
		if x, ok := sel.X.(*ast.Ident); ok && x.Name == ident {
			found = true
		}
		return !found
	})
	return found
}

// resolveImports builds the final imports list for the generated file and the
// identifier to use for the binder package.
//
// Rules:
// - Keep owner-file imports only when a forwarded parameter type references them
// - Dot and blank imports are never carried over
// - Always ensure the binder import; reuse the owner's alias for it when present
func resolveImports(ownerFilePath string, spec *Spec, params []Param) ([]ImportSpec, string) {
	var importsFromOwner []ImportSpec
	if strings.TrimSpace(ownerFilePath) != "" {
		parsedOwnerImports, err := readImportsFromFile(ownerFilePath)
		if err == nil {
			importsFromOwner = parsedOwnerImports
		}
	}

	finalImports := make([]ImportSpec, 0, len(importsFromOwner)+1)
	binderAlias := importDefaultIdent(spec.Imports.Binder)

	for _, imp := range importsFromOwner {
		if imp.Path == spec.Imports.Binder {
			finalImports = append(finalImports, imp)
			binderAlias = importIdent(imp)
			continue
		}
		if imp.Alias == "." || imp.Alias == "_" {
			continue
		}
		ident := importIdent(imp)
		for _, p := range params {
			if referencesIdent(p.Type, ident) {
				ensureImport(&finalImports, imp)
				break
			}
		}
	}

	ensureImport(&finalImports, ImportSpec{Path: spec.Imports.Binder})
	return finalImports, binderAlias
}

// genTemplate is the Go source template used to generate the bound constructor.
var genTemplate = template.Must(
	template.New("bindgen").Parse(`// Code generated by bindgen; DO NOT EDIT.

package {{.Spec.Package}}

import (
{{- range .ImportsList}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)

// {{.Spec.FuncName}} calls {{.Spec.Constructor}} and pre-binds its handlers, so
// extracting any of them later keeps the receiver.
func {{.Spec.FuncName}}({{.ParamList}}) *{{.Spec.ImplType}} {
	obj := {{.Spec.Constructor}}({{.ArgList}})
	{{- range .Spec.Bound}}
	obj.{{.Field}} = {{$.BinderAlias}}.Bind(obj, (*{{$.Spec.ImplType}}).{{.Method}})
	{{- end}}
	return obj
}
`),
)

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes to a temporary file in the target directory and renames
// it over the target path, so readers never observe partial writes.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	targetDir := filepath.Dir(targetPath)

	tmpFile, err := createTempFile(targetDir, filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	return renameFile(tmpPath, targetPath)
}

// must panics if err is non-nil.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
