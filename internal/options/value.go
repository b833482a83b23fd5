package options

import (
	"net/url"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// Resource is a URI or locator, e.g. the location of an input vocabulary.
type Resource string

// remoteSchemes are the schemes that are passed to the generator untouched.
var remoteSchemes = []string{"http:", "https:"}

// Scheme returns the lower-cased URI scheme, or "" for a bare path.
func (r Resource) Scheme() string {
	s := string(r)
	i := strings.Index(s, ":")
	if i <= 0 {
		return ""
	}
	// A one-letter scheme is a Windows drive letter, not a URI.
	if i == 1 {
		return ""
	}
	for _, c := range s[:i] {
		if !isSchemeChar(c) {
			return ""
		}
	}
	return strings.ToLower(s[:i])
}

// IsRemote reports whether r is an http or https locator.
func (r Resource) IsRemote() bool {
	return IsRemoteLocator(string(r))
}

// IsLocator reports whether r already carries one of the schemes the
// generator resolves itself (http, https or file).
func (r Resource) IsLocator() bool {
	return r.IsRemote() || strings.HasPrefix(string(r), "file:")
}

// LocalPath returns the filesystem path of a file: locator. Bare paths are
// returned as they are. ok is false for remote locators.
func (r Resource) LocalPath() (path string, ok bool) {
	s := string(r)
	if r.IsRemote() {
		return "", false
	}
	if !strings.HasPrefix(s, "file:") {
		return s, true
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", false
	}
	p := u.Path
	if p == "" {
		p = u.Opaque
	}
	return filepath.FromSlash(p), true
}

// FileResource returns a file: locator for an absolute path.
func FileResource(path string) Resource {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}
	return Resource(u.String())
}

// IsRemoteLocator reports whether s starts with a recognized network scheme.
func IsRemoteLocator(s string) bool {
	for _, scheme := range remoteSchemes {
		if strings.HasPrefix(s, scheme) {
			return true
		}
	}
	return false
}

func isSchemeChar(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'
}

// Value is a single option value. Exactly one of the fields is meaningful,
// selected by Kind.
type Value struct {
	kind Kind
	str  string
	b    bool
	list []string
}

// StringValue returns a string-kind value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// BoolValue returns a bool-kind value.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// ResourceValue returns a resource-kind value.
func ResourceValue(r Resource) Value { return Value{kind: KindResource, str: string(r)} }

// ListValue returns a list-kind value holding a copy of vs.
func ListValue(vs ...string) Value { return Value{kind: KindList, list: slices.Clone(vs)} }

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean held by a bool-kind value.
func (v Value) Bool() bool { return v.kind == KindBool && v.b }

// Resource returns the locator held by a resource-kind value.
func (v Value) Resource() (Resource, bool) {
	if v.kind != KindResource {
		return "", false
	}
	return Resource(v.str), true
}

// List returns the values held by the value. Scalars yield a one-element
// list.
func (v Value) List() []string {
	switch v.kind {
	case KindList:
		return slices.Clone(v.list)
	case KindBool:
		return []string{strconv.FormatBool(v.b)}
	default:
		return []string{v.str}
	}
}

// String returns the lexical form of the value. For lists it is the first
// element.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindList:
		if len(v.list) == 0 {
			return ""
		}
		return v.list[0]
	default:
		return v.str
	}
}

// present reports whether the value counts as set for override resolution.
func (v Value) present() bool {
	if v.kind == KindList {
		return len(v.list) > 0
	}
	return true
}
