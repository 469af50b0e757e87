// Package doc implements the two-level (section, key) document reader
// and writer (spec §4.8 / SPEC_FULL.md supplement 3-4), grounded
// directly on original_source/src/parse.cpp's parse()/write() and
// src/document.cpp's to_string().
package doc

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/quandangv/lini/internal/doclog"
	"github.com/quandangv/lini/internal/node"
	"github.com/quandangv/lini/internal/parse"
)

// excludedChars lists characters a section or key name may not contain
// (original_source/src/parse.cpp's excluded_chars). Note '.' is
// excluded here too: a raw document's names are flat, so a loaded key's
// path is at most two segments (section, then key); deeper paths come
// only from the engine's own operators (e.g. `clone`).
const excludedChars = "\t \"'=;#[](){}:.$\\%"
const commentChars = ";#"

// Document is a loaded config file: a node.Wrapper tree plus the
// (section, key) ordering needed to round-trip it back to text.
type Document struct {
	Root *node.Wrapper

	sectionOrder []string
	sectionSeen  map[string]bool
	sectionKeys  map[string][]string
}

func newDocument() *Document {
	return &Document{
		Root:        node.NewWrapper(),
		sectionSeen: make(map[string]bool),
		sectionKeys: make(map[string][]string),
	}
}

func (d *Document) ensureSection(name string) {
	if d.sectionSeen[name] {
		return
	}
	d.sectionSeen[name] = true
	d.sectionOrder = append(d.sectionOrder, name)
}

func (d *Document) recordKey(section, key string) {
	for _, k := range d.sectionKeys[section] {
		if k == key {
			return
		}
	}
	d.sectionKeys[section] = append(d.sectionKeys[section], key)
}

// DocError is one non-fatal problem found while loading a document.
type DocError struct {
	Location string
	Message  string
}

// ErrorList accumulates DocErrors across an entire Load call, the way
// original_source's errorlist does — a malformed line or key is
// reported and skipped rather than aborting the whole load.
type ErrorList struct {
	Errors []DocError
}

func (e *ErrorList) add(location, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	e.Errors = append(e.Errors, DocError{Location: location, Message: msg})
	doclog.Warnf("%s: %s", location, msg)
}

func (e ErrorList) Empty() bool { return len(e.Errors) == 0 }

func (e ErrorList) Error() string {
	var b strings.Builder
	for _, err := range e.Errors {
		fmt.Fprintf(&b, "%s: %s\n", err.Location, err.Message)
	}
	return b.String()
}

func validateName(name string) error {
	if i := strings.IndexAny(name, excludedChars); i >= 0 {
		return fmt.Errorf("invalid character %q in name %q", name[i], name)
	}
	return nil
}

// trimQuotes strips one matching pair of surrounding quotes from a raw
// document value, the same rule the parser applies to expression
// bodies — see parse.trimQuotes's doc comment. Applying it here too
// mirrors original_source's own redundant-looking double trim_quotes
// call (once in parse(), once again inside parse_raw).
func trimQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if (first == '"' || first == '\'') && first == last {
		return s[1 : len(s)-1]
	}
	return s
}

// Load reads a document from r. initialSection names the section that
// bare top-level keys (before any `[section]` header) belong to; pass
// "" for "no section" (flat top-level keys, original_source's default).
func Load(r io.Reader, initialSection string) (*Document, ErrorList) {
	d := newDocument()
	var errs ErrorList
	d.ensureSection(initialSection)
	currentSection := initialSection

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := strings.TrimLeft(raw, " \t")
		if line == "" || strings.IndexByte(commentChars, line[0]) >= 0 {
			continue
		}

		if len(line) >= 2 && line[0] == '[' && line[len(line)-1] == ']' {
			sec := strings.TrimSpace(line[1 : len(line)-1])
			if err := validateName(sec); err != nil {
				errs.add(fmt.Sprintf("line %d", lineNo), "%v", err)
				continue
			}
			currentSection = sec
			d.ensureSection(currentSection)
			continue
		}

		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			errs.add(fmt.Sprintf("line %d", lineNo), "unparsed line")
			continue
		}
		key := strings.TrimSpace(line[:eq])
		if err := validateName(key); err != nil {
			errs.add(fmt.Sprintf("line %d", lineNo), "invalid key: %v", err)
			continue
		}
		value := trimQuotes(strings.TrimSpace(line[eq+1:]))

		path := key
		if currentSection != "" {
			path = currentSection + "." + key
		}
		if _, err := parse.AddRaw(d.Root, path, value); err != nil {
			errs.add(fmt.Sprintf("key %s.%s", currentSection, key), "%v", err)
			continue
		}
		d.recordKey(currentSection, key)
	}

	d.optimizeAll(&errs)
	return d, errs
}

// optimizeAll replaces each loaded key's node with its Optimize()
// result when one is available (SPEC_FULL.md supplement 2), mirroring
// parse()'s post-load pass over doc.values in original_source.
func (d *Document) optimizeAll(errs *ErrorList) {
	for _, sec := range d.sectionOrder {
		for _, key := range d.sectionKeys[sec] {
			path := key
			if sec != "" {
				path = sec + "." + key
			}
			slot := d.Root.GetChildPtr(path)
			if slot == nil {
				continue
			}
			wrp, ok := slot.Value.(*node.Wrapper)
			if !ok || wrp.Value == nil {
				continue
			}
			if opt, ok := wrp.Value.(node.Optimizer); ok {
				if replaced, did := opt.Optimize(); did {
					wrp.Value = replaced
				}
			}
		}
	}
}

// WriteTo serializes the document back to text, evaluating each key
// through ctx (spec §4.8): a value with leading/trailing whitespace is
// quoted, and every literal "${" occurring in an otherwise-plain value is
// re-escaped with a backslash so reloading it doesn't re-trigger
// expression parsing — both rules lifted verbatim from
// original_source/src/parse.cpp's write().
func (d *Document) WriteTo(w io.Writer, ctx *node.EvalContext) error {
	bw := bufio.NewWriter(w)

	printSection := func(sec string) error {
		for _, key := range d.sectionKeys[sec] {
			path := key
			if sec != "" {
				path = sec + "." + key
			}
			slot := d.Root.GetChildPtr(path)
			var value string
			if slot != nil && slot.Value != nil {
				v, err := slot.Value.Get(ctx)
				if err == nil {
					value = v
				}
			}
			if _, err := fmt.Fprintf(bw, "%s = %s\n", key, formatValue(value)); err != nil {
				return err
			}
		}
		return nil
	}

	if d.sectionSeen[""] {
		if err := printSection(""); err != nil {
			return err
		}
	}
	for _, sec := range d.sectionOrder {
		if sec == "" {
			continue
		}
		if _, err := fmt.Fprintf(bw, "\n[%s]\n", sec); err != nil {
			return err
		}
		if err := printSection(sec); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func formatValue(value string) string {
	if value == "" {
		return ""
	}
	first, last := value[0], value[len(value)-1]
	if first == ' ' || first == '\t' || last == ' ' || last == '\t' {
		return `"` + value + `"`
	}
	return strings.ReplaceAll(value, "${", "\\${")
}
