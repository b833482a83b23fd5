package options

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOption is returned when an option key is not one of the
// enumerated Option values.
var ErrUnknownOption = errors.New("unknown option")

// Kind is the value kind an Option accepts.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindResource
	KindList
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindResource:
		return "resource"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Option is a key from the closed set of generator knobs.
type Option int

const (
	ConfigFile Option = iota + 1
	Root
	NoComments
	Input
	LangDAML
	LangOWL
	LangRDFS
	Output
	Header
	Footer
	Marker
	PackageName
	Ontology
	ClassName
	ClassNameSuffix
	ClassDec
	Namespace
	Declarations
	PropertySection
	ClassSection
	IndividualsSection
	DatatypesSection
	NoProperties
	NoClasses
	NoIndividuals
	NoDatatypes
	NoHeader
	PropTemplate
	ClassTemplate
	IndividualTemplate
	DatatypeTemplate
	UpperCaseNames
	Include
	Encoding
	DOS
	UseInference
	StrictIndividuals
	IncludeSource
	NoStrict

	lastOption
)

type definition struct {
	name string
	kind Kind
	flag string
}

// definitions is indexed by Option; index 0 is unused.
var definitions = [...]definition{
	ConfigFile:         {"config_file", KindString, "-c"},
	Root:               {"root", KindResource, "-r"},
	NoComments:         {"no_comments", KindBool, "--nocomments"},
	Input:              {"input", KindResource, "-i"},
	LangDAML:           {"lang_daml", KindBool, "--daml"},
	LangOWL:            {"lang_owl", KindBool, "--owl"},
	LangRDFS:           {"lang_rdfs", KindBool, "--rdfs"},
	Output:             {"output", KindString, "-o"},
	Header:             {"header", KindString, "--header"},
	Footer:             {"footer", KindString, "--footer"},
	Marker:             {"marker", KindString, "--marker"},
	PackageName:        {"package_name", KindString, "--package"},
	Ontology:           {"ontology", KindBool, "--ontology"},
	ClassName:          {"class_name", KindString, "-n"},
	ClassNameSuffix:    {"classname_suffix", KindString, "--classnamesuffix"},
	ClassDec:           {"class_dec", KindString, "--classdec"},
	Namespace:          {"namespace", KindString, "-a"},
	Declarations:       {"declarations", KindString, "--declarations"},
	PropertySection:    {"property_section", KindString, "--propSection"},
	ClassSection:       {"class_section", KindString, "--classSection"},
	IndividualsSection: {"individuals_section", KindString, "--individualsSection"},
	DatatypesSection:   {"datatypes_section", KindString, "--datatypesSection"},
	NoProperties:       {"no_properties", KindBool, "--noproperties"},
	NoClasses:          {"no_classes", KindBool, "--noclasses"},
	NoIndividuals:      {"no_individuals", KindBool, "--noindividuals"},
	NoDatatypes:        {"no_datatypes", KindBool, "--nodatatypes"},
	NoHeader:           {"no_header", KindBool, "--noheader"},
	PropTemplate:       {"prop_template", KindString, "--propTemplate"},
	ClassTemplate:      {"class_template", KindString, "--classTemplate"},
	IndividualTemplate: {"individual_template", KindString, "--individualTemplate"},
	DatatypeTemplate:   {"datatype_template", KindString, "--datatypeTemplate"},
	UpperCaseNames:     {"uc_names", KindBool, "--uppercase"},
	Include:            {"include", KindList, "--include"},
	Encoding:           {"encoding", KindString, "-e"},
	DOS:                {"dos", KindBool, "--dos"},
	UseInference:       {"use_inf", KindBool, "--inference"},
	StrictIndividuals:  {"strict_individuals", KindBool, "--strictIndividuals"},
	IncludeSource:      {"include_source", KindBool, "--includeSource"},
	NoStrict:           {"no_strict", KindBool, "--nostrict"},
}

// byName maps normalized option names to their Option.
var byName = func() map[string]Option {
	m := make(map[string]Option, len(definitions))
	for _, o := range All() {
		m[normalizeName(o.String())] = o
	}
	return m
}()

// All returns every valid Option in declaration order.
func All() []Option {
	all := make([]Option, 0, int(lastOption)-1)
	for o := ConfigFile; o < lastOption; o++ {
		all = append(all, o)
	}
	return all
}

// Valid reports whether o is one of the enumerated options.
func (o Option) Valid() bool {
	return o > 0 && o < lastOption
}

// String returns the canonical snake_case name of the option.
func (o Option) String() string {
	if !o.Valid() {
		return fmt.Sprintf("option(%d)", int(o))
	}
	return definitions[o].name
}

// Kind returns the value kind of the option.
func (o Option) Kind() Kind {
	if !o.Valid() {
		return KindString
	}
	return definitions[o].kind
}

// Flag returns the command-line flag the external generator expects for o.
func (o Option) Flag() string {
	if !o.Valid() {
		return ""
	}
	return definitions[o].flag
}

// ParseOption looks up an option by name. Matching ignores case, underscores
// and dashes, so "PACKAGENAME", "package_name" and "packageName" are the same
// key.
func ParseOption(name string) (Option, error) {
	if o, ok := byName[normalizeName(name)]; ok {
		return o, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOption, name)
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("_", "", "-", "").Replace(name)
}
