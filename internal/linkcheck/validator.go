package linkcheck

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// inlineLinkPattern matches [label](target). It is a textual match, not a
// markdown parse: links inside code spans and fenced blocks match too.
var inlineLinkPattern = regexp.MustCompile(`\[[^\]]+\]\(([^)]+)\)`)

var externalPrefixes = []string{"http://", "https://", "mailto:"}

// ExtractLinks returns the raw target of every inline link in text, in order.
func ExtractLinks(text string) []string {
	matches := inlineLinkPattern.FindAllStringSubmatch(text, -1)
	links := make([]string, 0, len(matches))
	for _, m := range matches {
		links = append(links, m[1])
	}
	return links
}

// StripFragment drops everything from the first '#'.
func StripFragment(link string) string {
	if i := strings.IndexByte(link, '#'); i >= 0 {
		return link[:i]
	}
	return link
}

// Classify decides how a fragment-stripped link is treated.
func Classify(link string) LinkKind {
	for _, prefix := range externalPrefixes {
		if strings.HasPrefix(link, prefix) {
			return LinkKindExternal
		}
	}
	if strings.TrimSpace(link) == "" {
		return LinkKindEmpty
	}
	return LinkKindLocal
}

// ResolveTarget joins link to docDir and returns the canonical absolute path
// it names. Absolute links are taken as-is. Symlinks are followed one
// component at a time and ".." applies to the already resolved prefix, so
// "alias/../x.md" lands next to the alias target, not next to the alias.
// Components that do not exist are appended unresolved.
func ResolveTarget(docDir, link string) string {
	path := filepath.FromSlash(link)
	if !filepath.IsAbs(path) {
		path = docDir + string(filepath.Separator) + path
	}
	if !filepath.IsAbs(path) {
		if wd, err := os.Getwd(); err == nil {
			path = wd + string(filepath.Separator) + path
		}
	}
	resolved, _ := walkSymlinks("", path, map[string]string{})
	return resolved
}

// walkSymlinks appends rest to the resolved prefix base component by
// component. seen maps each symlink already visited to its resolution; an
// empty value marks a link still being resolved, which means a loop. On a
// loop the remaining components are appended and ok is false.
func walkSymlinks(base, rest string, seen map[string]string) (resolved string, ok bool) {
	sep := string(filepath.Separator)
	if filepath.IsAbs(rest) {
		base = filepath.VolumeName(rest) + sep
		rest = rest[len(base):]
	}

	for rest != "" {
		var name string
		name, rest, _ = strings.Cut(rest, sep)
		switch name {
		case "", ".":
			continue
		case "..":
			base = filepath.Dir(base)
			continue
		}

		next := filepath.Join(base, name)
		info, err := os.Lstat(next)
		if err != nil || info.Mode()&fs.ModeSymlink == 0 {
			base = next
			continue
		}

		if prior, visited := seen[next]; visited {
			if prior != "" {
				base = prior
				continue
			}
			return filepath.Join(next, rest), false
		}
		target, err := os.Readlink(next)
		if err != nil {
			base = next
			continue
		}
		seen[next] = ""
		linked, complete := walkSymlinks(base, target, seen)
		if !complete {
			return filepath.Join(linked, rest), false
		}
		seen[next] = linked
		base = linked
	}
	return base, true
}

// ValidateDocument checks every inline link in text against the filesystem,
// treating docPath as the containing document. It never reads docPath itself,
// so the same inputs always produce the same report.
func ValidateDocument(docPath, text string) Report {
	if abs, err := filepath.Abs(docPath); err == nil {
		docPath = abs
	}
	docDir := filepath.Dir(docPath)

	report := Report{Document: docPath, Broken: []BrokenLink{}}
	for _, raw := range ExtractLinks(text) {
		link := StripFragment(raw)
		kind := Classify(link)
		report.Links.count(kind)
		if kind != LinkKindLocal {
			continue
		}

		target := ResolveTarget(docDir, link)
		if linkResolves(docDir, link, target) {
			continue
		}
		report.Broken = append(report.Broken, BrokenLink{Raw: raw, Target: target})
	}
	return report
}

// linkResolves applies the acceptance policy: an existing regular file, the
// same link with ".md" appended, or an existing directory (implicit index).
func linkResolves(docDir, link, target string) bool {
	if isRegularFile(target) {
		return true
	}
	if isRegularFile(ResolveTarget(docDir, link+DocExtension)) {
		return true
	}
	return isDirectory(target)
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
