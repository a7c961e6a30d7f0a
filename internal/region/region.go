// Package region extracts named #region/#endregion sections from included
// source files.
package region

import (
	"errors"
	"fmt"
	"regexp"
)

const (
	reSpec       = `[!"#$%%&'()*+,\-./:;<=>?@[\\\]^_{|}~]`
	reLineBegin  = `(?m)^[[:blank:]]*`
	reLineEnd    = `*[[:blank:]]*\r?\n`
	regionFormat = reLineBegin + reSpec +
		`+[[:blank:]]*#region[[:blank:]]+%s[[:blank:]]*` +
		reSpec + reLineEnd
	namedendFormat = reLineBegin + reSpec +
		`+[[:blank:]]*#endregion[[:blank:]]+%s[[:blank:]]*` +
		reSpec + reLineEnd
)

var (
	reStart = regexp.MustCompile(reLineBegin + reSpec +
		`+[[:blank:]]*#region[[:blank:]]+[\w-]+[[:blank:]]*` +
		reSpec + reLineEnd)
	reEnd = regexp.MustCompile(reLineBegin + reSpec +
		`+[[:blank:]]*#endregion([[:blank:]]+[\w-]+)?[[:blank:]]*` +
		reSpec + reLineEnd)
)

var (
	// ErrNotFound is returned by [Extract] when the file has no region with
	// the requested name.
	ErrNotFound = errors.New("region not found")

	// ErrMissingEndregion is returned when a #region marker has no matching
	// #endregion.
	ErrMissingEndregion = errors.New("missing #endregion")
)

func marker(format string, name string) (*regexp.Regexp, error) {
	return regexp.Compile(fmt.Sprintf(format, regexp.QuoteMeta(name)))
}

// Extract returns the lines between the #region and #endregion markers with
// the given name. A named #endregion is preferred; otherwise the first
// #endregion after the start marker closes the region.
func Extract(source []byte, name string) ([]byte, error) {
	reBegin, err := marker(regionFormat, name)
	if err != nil {
		return nil, err
	}

	idxBegin := reBegin.FindIndex(source)
	if idxBegin == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	body := source[idxBegin[1]:]

	namedEnd, err := marker(namedendFormat, name)
	if err != nil {
		return nil, err
	}

	idxEnd := namedEnd.FindIndex(body)
	if idxEnd == nil {
		idxEnd = reEnd.FindIndex(body)
	}

	if idxEnd == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingEndregion, name)
	}

	return body[:idxEnd[0]], nil
}

// Outline strips the body of every region, keeping only the #region and
// #endregion markers, so an included file shows its structure.
func Outline(source []byte) ([]byte, error) {
	res := make([]byte, 0, len(source))
	idx := 0

	for idx < len(source) {
		idxStart := reStart.FindIndex(source[idx:])
		if idxStart == nil {
			break
		}

		start := idx + idxStart[1]

		idxEnd := reEnd.FindIndex(source[start:])
		if idxEnd == nil {
			return nil, ErrMissingEndregion
		}

		res = append(res, source[idx:start]...)
		res = append(res, source[start+idxEnd[0]:start+idxEnd[1]]...)

		idx = start + idxEnd[1]
	}

	return append(res, source[idx:]...), nil
}
