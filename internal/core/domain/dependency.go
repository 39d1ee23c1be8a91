package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// DepMask is the set of version comparison outcomes a dependency accepts.
type DepMask uint8

const (
	// DepLess accepts versions lower than the dependency version.
	DepLess DepMask = 1 << iota
	// DepEqual accepts the dependency version itself.
	DepEqual
	// DepGreater accepts versions greater than the dependency version.
	DepGreater

	// DepRequire accepts any version.
	DepRequire = DepLess | DepEqual | DepGreater
)

// Dependency is a requested package name plus a version constraint.
// CLI arguments become dependencies with DepRequire; index entries may carry operators.
type Dependency struct {
	Name    InternedString
	Version InternedString
	Mask    DepMask
}

// NewDependency returns a dependency on any version of name.
func NewDependency(name string) Dependency {
	return Dependency{
		Name: NewInternedString(name),
		Mask: DepRequire,
	}
}

// ParseDependency parses "name", "name=1.0", "name>=1.0", "name<2" and similar forms.
func ParseDependency(s string) (Dependency, error) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, "<>=")
	if i < 0 {
		if err := ValidatePackageName(s); err != nil {
			return Dependency{}, err
		}
		return NewDependency(s), nil
	}

	name := s[:i]
	rest := s[i:]
	j := strings.IndexFunc(rest, func(r rune) bool { return r != '<' && r != '>' && r != '=' })
	if j < 0 {
		return Dependency{}, zerr.With(zerr.Wrap(ErrInvalidDependency, "missing version"), "dependency", s)
	}
	op, version := rest[:j], rest[j:]

	var mask DepMask
	switch op {
	case "=":
		mask = DepEqual
	case "<":
		mask = DepLess
	case ">":
		mask = DepGreater
	case "<=":
		mask = DepLess | DepEqual
	case ">=":
		mask = DepGreater | DepEqual
	default:
		return Dependency{}, zerr.With(zerr.Wrap(ErrInvalidDependency, "unknown operator "+op), "dependency", s)
	}

	if err := ValidatePackageName(name); err != nil {
		return Dependency{}, zerr.With(err, "dependency", s)
	}

	return Dependency{
		Name:    NewInternedString(name),
		Version: NewInternedString(version),
		Mask:    mask,
	}, nil
}

// SatisfiedBy reports whether a package version meets the constraint.
func (d Dependency) SatisfiedBy(version string) bool {
	if d.Mask == DepRequire || d.Version.String() == "" {
		return true
	}
	switch CompareVersions(version, d.Version.String()) {
	case VersionLess:
		return d.Mask&DepLess != 0
	case VersionGreater:
		return d.Mask&DepGreater != 0
	default:
		return d.Mask&DepEqual != 0
	}
}

// String renders the dependency back in its parseable form.
func (d Dependency) String() string {
	if d.Mask == DepRequire || d.Version.String() == "" {
		return d.Name.String()
	}
	var op string
	switch d.Mask {
	case DepEqual:
		op = "="
	case DepLess:
		op = "<"
	case DepGreater:
		op = ">"
	case DepLess | DepEqual:
		op = "<="
	case DepGreater | DepEqual:
		op = ">="
	}
	return d.Name.String() + op + d.Version.String()
}

// ValidatePackageName rejects empty names and names containing whitespace,
// path separators or constraint operators.
func ValidatePackageName(name string) error {
	if name == "" {
		return zerr.Wrap(ErrInvalidPackageName, "name is empty")
	}
	if strings.ContainsAny(name, "/\\ \t\n<>=~") {
		return zerr.With(zerr.Wrap(ErrInvalidPackageName, "name contains a separator, whitespace or operator"), "package", name)
	}
	return nil
}
