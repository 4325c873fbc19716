package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// Set with -ldflags "-X github.com/zhengshuai-xiao/hd/internal.revision=..."
var (
	version      = "1.0.0-dev"
	revision     = "$Format:%h$"
	revisionDate = "$Format:%as$"
)

type Semver struct {
	major, minor, patch uint64
	preRelease          string
	build               string
}

// Parse reads major[.minor[.patch]][-pre][+build]. It returns nil for
// anything else.
func Parse(vs string) *Semver {
	s := &Semver{}
	if i := strings.Index(vs, "+"); i >= 0 {
		vs, s.build = vs[:i], vs[i+1:]
	}
	if i := strings.Index(vs, "-"); i >= 0 {
		vs, s.preRelease = vs[:i], vs[i+1:]
	}
	parts := strings.Split(vs, ".")
	if len(parts) > 3 {
		return nil
	}
	nums := []*uint64{&s.major, &s.minor, &s.patch}
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil
		}
		*nums[i] = n
	}
	return s
}

func (s *Semver) String() string {
	str := fmt.Sprintf("%d.%d.%d", s.major, s.minor, s.patch)
	if s.preRelease != "" {
		str += "-" + s.preRelease
	}
	if s.build != "" {
		str += "+" + s.build
	}
	return str
}

// Version is what -V prints: the semantic version plus the revision it was
// built from, when known.
func Version() string {
	v := Parse(version)
	if v == nil {
		return version
	}
	if v.build == "" && !strings.HasPrefix(revision, "$Format") {
		v.build = revisionDate + "." + revision
	}
	return v.String()
}
